package core

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	snakeCaseRe    = regexp.MustCompile(`[a-z0-9]_[a-z0-9]`)
	numericTokenRe = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)
)

// StatisticalScorer scores text on language-agnostic lexical and structural
// features. It exists to catch code in languages the pattern library does not
// know, trading precision for coverage: dense technical prose scores higher
// than ordinary prose, but still below real code.
type StatisticalScorer struct{}

// NewStatisticalScorer creates a statistical scorer.
func NewStatisticalScorer() *StatisticalScorer {
	return &StatisticalScorer{}
}

// Score sums the seven feature contributions and clamps the result to [0,1].
func (s *StatisticalScorer) Score(text string) float64 {
	if text == "" {
		return 0
	}

	score := 0.0

	density := charClassDensity(text, "{}()[];:=<>")
	switch {
	case density > 0.12:
		score += 0.25
	case density > 0.08:
		score += 0.15
	}

	if avg := averageLineLength(text); avg >= 20 && avg <= 80 {
		score += 0.15
	}

	if indentationRatio(text) > 0.3 {
		score += 0.20
	}

	if camelCaseTransitions(text)+len(snakeCaseRe.FindAllString(text, -1)) > 2 {
		score += 0.15
	}

	if charClassDensity(text, "+-*/%&|^~!<>=") > 0.05 {
		score += 0.10
	}

	if ratio := numericTokenRatio(text); ratio > 0.1 && ratio < 0.5 {
		score += 0.10
	}

	if bracketsBalanced(text) {
		score += 0.05
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func charClassDensity(text, class string) float64 {
	count := 0
	for _, r := range text {
		if strings.ContainsRune(class, r) {
			count++
		}
	}
	return float64(count) / float64(len(text))
}

func averageLineLength(text string) float64 {
	total := 0
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total += len(line)
		lines++
	}
	if lines == 0 {
		return 0
	}
	return float64(total) / float64(lines)
}

func indentationRatio(text string) float64 {
	indented := 0
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines++
		if line[0] == ' ' || line[0] == '\t' {
			indented++
		}
	}
	if lines == 0 {
		return 0
	}
	return float64(indented) / float64(lines)
}

func camelCaseTransitions(text string) int {
	count := 0
	prev := rune(0)
	for _, r := range text {
		if unicode.IsLower(prev) && unicode.IsUpper(r) {
			count++
		}
		prev = r
	}
	return count
}

func numericTokenRatio(text string) float64 {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0
	}
	numeric := 0
	for _, tok := range tokens {
		if numericTokenRe.MatchString(tok) {
			numeric++
		}
	}
	return float64(numeric) / float64(len(tokens))
}

// bracketsBalanced reports whether every opener of ()[]{} has a matching
// closer in correct nesting order with no unmatched closer left over.
func bracketsBalanced(text string) bool {
	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	for _, r := range text {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

package core

import (
	"strings"
	"testing"
)

func TestStatisticalScorerRange(t *testing.T) {
	scorer := NewStatisticalScorer()

	inputs := []string{
		"",
		"x",
		"function hello() { console.log('hi'); }",
		"An ordinary sentence without any symbols at all.",
		strings.Repeat("{}[]();=<>", 500),
		"\x00\xff garbage \xfe from OCR",
	}
	for _, text := range inputs {
		if score := scorer.Score(text); score < 0 || score > 1 {
			t.Errorf("Score(%q) = %v, outside [0,1]", text, score)
		}
	}
}

func TestStatisticalScorerEmptyText(t *testing.T) {
	if score := NewStatisticalScorer().Score(""); score != 0 {
		t.Errorf("empty text score = %v, want 0", score)
	}
}

func TestStatisticalScorerCodeBeatsProse(t *testing.T) {
	scorer := NewStatisticalScorer()

	code := "if (count > 0) {\n    total_sum += values[i];\n    keepGoing = checkNext(i);\n}"
	prose := "We talked about the schedule and agreed to meet again next week."

	codeScore := scorer.Score(code)
	proseScore := scorer.Score(prose)
	if codeScore <= proseScore {
		t.Errorf("code scored %v, prose scored %v; want code higher", codeScore, proseScore)
	}
}

func TestBracketsBalanced(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"balanced function", "function() { return [1, 2, 3]; }", true},
		{"missing closer", "function() { return [1, 2, 3; }", false},
		{"empty text", "", true},
		{"no brackets", "plain words only", true},
		{"wrong nesting order", "([)]", false},
		{"unmatched closer", "a) b", false},
		{"nested ok", "{[()]}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bracketsBalanced(tt.text); got != tt.want {
				t.Errorf("bracketsBalanced(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIndentationRatio(t *testing.T) {
	text := "top\n    indented\n\tindented too\nplain"
	if got := indentationRatio(text); got != 0.5 {
		t.Errorf("indentationRatio = %v, want 0.5", got)
	}
}

func TestCamelCaseTransitions(t *testing.T) {
	if got := camelCaseTransitions("getUserName plus innerValue"); got != 3 {
		t.Errorf("camelCaseTransitions = %d, want 3", got)
	}
}

func TestNumericTokenRatio(t *testing.T) {
	if got := numericTokenRatio("a 1 b 2.5"); got != 0.5 {
		t.Errorf("numericTokenRatio = %v, want 0.5", got)
	}
	if got := numericTokenRatio(""); got != 0 {
		t.Errorf("numericTokenRatio on empty = %v, want 0", got)
	}
}

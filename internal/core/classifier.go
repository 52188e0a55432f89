package core

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

var (
	treeCharsRe     = regexp.MustCompile("[│├└┬]|\\|--")
	filePatternRe   = regexp.MustCompile(`\b[\w.-]+\.(?:go|js|jsx|ts|tsx|py|java|rb|rs|c|cpp|h|hpp|cs|css|html|json|yaml|yml|md|txt|sh|sql|xml|toml|lock|png|jpg|svg)\b`)
	codeKeywordRe   = regexp.MustCompile(`\b(?:function|const|var|let|def|class|import|export|return|public|private|static|void|func|package|struct|interface|impl)\b`)
	shellPromptRe   = regexp.MustCompile(`(?m)^\s*(?:\$|%|>|❯|➜)\s+\S|(?m)^(?:PS )?[A-Z]:\\`)
	markdownRe      = regexp.MustCompile("(?m)^#{1,6}\\s+\\S|(?m)^```|\\*\\*[^*\\n]+\\*\\*")
	uiPhraseRe      = regexp.MustCompile(`(?i)^\s*(?:click|submit|cancel|save|open|close|delete|add|edit|sign\s?in|sign\s?up|log\s?in|log\s?out|ok|yes|no|next|back|continue|download|upload|search|settings|apply|confirm)\b[\w\s.]{0,24}$`)
	folderTokenRe   = regexp.MustCompile(`\b(?:src|lib|dist|build|test|tests|docs|node_modules|components|utils|assets|public|internal|cmd|pkg|vendor|config|scripts)/`)
	bulletLineRe    = regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)
	pathLineRe      = regexp.MustCompile(`^[\w.@~-]+(?:[\\/][\w.@~-]+)*\.\w{1,5}$`)
	commandVerbRe   = regexp.MustCompile(`(?m)^\s*\$?\s*(?:npm|npx|git|cd|ls|sudo|docker|kubectl|go|cargo|pip|python|node|yarn|pnpm|make|curl|wget|apt|brew|ssh|mkdir|rm|cat|echo)\b`)
	logLevelRe      = regexp.MustCompile(`\[(?:INFO|WARN|WARNING|ERROR|DEBUG|TRACE|FATAL)\]|\b(?:INFO|WARN|ERROR|DEBUG)[:\s]\s`)
	docKeywordRe    = regexp.MustCompile(`(?i)\b(?:usage|example|note|returns|parameters|arguments|installation|getting started|reference|see also|overview|description)\b`)
	commentMarkerRe = regexp.MustCompile(`(?m)^\s*(?://|/\*|\*\s|#\s)`)
)

// categoryOrder is the fixed evaluation order. It doubles as the tie-break:
// on equal scores the category evaluated first wins, so the order must not
// change without revisiting the classifier tests.
var categoryOrder = []Category{
	CategoryProjectStructure,
	CategoryFilePath,
	CategoryCode,
	CategoryTerminal,
	CategoryDocumentation,
	CategoryUIElement,
	CategoryRegularText,
}

// regularTextBaseScore guarantees that text matching nothing else still
// resolves to prose instead of an empty category.
const regularTextBaseScore = 0.3

type categoryScore struct {
	category Category
	score    float64
	subtype  string
}

// ContentClassifier assigns one of seven semantic categories to a piece of
// OCR text using hand-tuned rule combinations over cheap structural cues.
// It holds no mutable state and is safe for concurrent use.
type ContentClassifier struct {
	patterns *PatternScorer
	logger   *zap.Logger
}

// NewContentClassifier creates a content classifier. The pattern library is
// used to name the language of regions that classify as code.
func NewContentClassifier(library *PatternLibrary, logger *zap.Logger) *ContentClassifier {
	return &ContentClassifier{
		patterns: NewPatternScorer(library),
		logger:   logger,
	}
}

// Classify assigns exactly one category to the text. Any input is valid;
// the regular-text base score makes the result total.
func (c *ContentClassifier) Classify(text string) *ContentClassificationResult {
	features := extractFeatures(text)
	scores := c.scoreCategories(text, features)
	best := pickBest(scores)

	c.logger.Debug("Content classification complete",
		zap.String("category", string(best.category)),
		zap.Float64("confidence", best.score),
		zap.String("subtype", best.subtype))

	return &ContentClassificationResult{
		Category:   best.category,
		Confidence: best.score,
		Subtype:    best.subtype,
		Features:   features,
	}
}

// ClassifyBatch classifies each text independently, with no cross-text state
// or normalization across the batch.
func (c *ContentClassifier) ClassifyBatch(texts []string) []*ContentClassificationResult {
	results := make([]*ContentClassificationResult, len(texts))
	for i, text := range texts {
		results[i] = c.Classify(text)
	}
	return results
}

func extractFeatures(text string) ContentFeatures {
	return ContentFeatures{
		HasTreeChars:    treeCharsRe.MatchString(text),
		HasFilePattern:  filePatternRe.MatchString(text),
		HasCodeKeywords: codeKeywordRe.MatchString(text),
		HasShellPrompt:  shellPromptRe.MatchString(text),
		HasMarkdown:     markdownRe.MatchString(text),
		HasUIPattern:    uiPhraseRe.MatchString(text),
	}
}

func (c *ContentClassifier) scoreCategories(text string, features ContentFeatures) []categoryScore {
	lines := nonBlankLines(text)
	scores := make([]categoryScore, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		var s categoryScore
		switch category {
		case CategoryProjectStructure:
			s = scoreProjectStructure(text, lines, features)
		case CategoryFilePath:
			s = scoreFilePath(text, lines)
		case CategoryCode:
			s = c.scoreCode(text, lines, features)
		case CategoryTerminal:
			s = scoreTerminal(text, features)
		case CategoryDocumentation:
			s = scoreDocumentation(text, lines, features)
		case CategoryUIElement:
			s = scoreUIElement(text, lines, features)
		case CategoryRegularText:
			s = scoreRegularText(text)
		}
		s.category = category
		if s.score > 1.0 {
			s.score = 1.0
		}
		scores = append(scores, s)
	}
	return scores
}

// pickBest returns the strictly highest scoring category; ties resolve to the
// earlier entry in evaluation order.
func pickBest(scores []categoryScore) categoryScore {
	best := scores[0]
	for _, s := range scores[1:] {
		if s.score > best.score {
			best = s
		}
	}
	return best
}

func scoreProjectStructure(text string, lines []string, features ContentFeatures) categoryScore {
	score := 0.0
	subtype := "item_list"
	if features.HasTreeChars {
		score += 0.6
		subtype = "folder_tree"
	}
	if folderTokenRe.MatchString(text) {
		score += 0.2
	}
	if len(lines) >= 2 && features.HasFilePattern {
		score += 0.1
	}
	if len(bulletLineRe.FindAllString(text, -1)) >= 2 {
		score += 0.1
	}
	return categoryScore{score: score, subtype: subtype}
}

func scoreFilePath(text string, lines []string) categoryScore {
	if len(lines) != 1 {
		return categoryScore{}
	}
	line := strings.TrimSpace(lines[0])
	if len(line) > 120 || !pathLineRe.MatchString(line) {
		return categoryScore{}
	}
	score := 0.8
	if strings.ContainsAny(line, "/\\") {
		score += 0.1
	}
	ext := line[strings.LastIndex(line, ".")+1:]
	return categoryScore{score: score, subtype: ext + "_file"}
}

func (c *ContentClassifier) scoreCode(text string, lines []string, features ContentFeatures) categoryScore {
	score := 0.0
	if features.HasCodeKeywords {
		score += 0.4
	}
	if charClassDensity(text, "{}();=") > 0.04 {
		score += 0.3
	}
	if indentationRatio(text) > 0.2 {
		score += 0.1
	}

	subtype := ""
	if score > 0 {
		if _, language := c.patterns.Score(text); language != "" {
			subtype = language
			score += 0.1
		}
	}
	return categoryScore{score: score, subtype: subtype}
}

func scoreTerminal(text string, features ContentFeatures) categoryScore {
	score := 0.0
	subtype := ""
	if features.HasShellPrompt {
		score += 0.5
		subtype = "bash_command"
	}
	if commandVerbRe.MatchString(text) {
		score += 0.3
		if subtype == "" {
			subtype = "bash_command"
		}
	}
	if logLevelRe.MatchString(text) {
		score += 0.2
		if subtype == "" {
			subtype = "log_output"
		}
	}
	return categoryScore{score: score, subtype: subtype}
}

func scoreDocumentation(text string, lines []string, features ContentFeatures) categoryScore {
	score := 0.0
	subtype := "prose_doc"
	if features.HasMarkdown {
		score += 0.4
		subtype = "markdown"
	}
	if docKeywordRe.MatchString(text) {
		score += 0.2
	}
	if commentMarkerRe.MatchString(text) {
		score += 0.2
		if subtype == "prose_doc" {
			subtype = "code_comment"
		}
	}
	if len(lines) >= 3 {
		score += 0.1
	}
	return categoryScore{score: score, subtype: subtype}
}

func scoreUIElement(text string, lines []string, features ContentFeatures) categoryScore {
	if len(lines) != 1 {
		return categoryScore{}
	}
	line := strings.TrimSpace(lines[0])
	score := 0.0
	subtype := "label"
	if utf8.RuneCountInString(line) <= 40 {
		score += 0.3
	}
	if features.HasUIPattern {
		score += 0.3
		subtype = "action_label"
	}
	if isAllCaps(line) {
		score += 0.2
		subtype = "caps_label"
	}
	return categoryScore{score: score, subtype: subtype}
}

func scoreRegularText(text string) categoryScore {
	score := regularTextBaseScore
	if looksLikeSentence(text) {
		score += 0.2
	}
	if text != "" && charClassDensity(text, "{}()[];:=<>") < 0.05 {
		score += 0.1
	}
	return categoryScore{score: score}
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func looksLikeSentence(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(trimmed)
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	words := len(strings.Fields(trimmed))
	return unicode.IsUpper(first) && strings.ContainsRune(".!?", last) && words >= 4
}

func isAllCaps(line string) bool {
	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return letters >= 2
}

package core

import (
	"fmt"
	"regexp"
)

// PatternLibrary holds the static signature table for every supported
// language family. It is populated once at startup and read-only afterwards,
// so concurrent lookups need no locking.
type PatternLibrary struct {
	sets   []LanguagePatternSet
	byName map[string]int
}

// NewPatternLibrary builds the default signature table. Slice order is the
// stable family order used for deterministic iteration and tie-breaking.
func NewPatternLibrary() *PatternLibrary {
	sets := []LanguagePatternSet{
		family("javascript", 1.0,
			`\bfunction\s+\w*\s*\(`,
			`\bconsole\.\w+\s*\(`,
			`\b(?:const|let|var)\s+\w+\s*=`,
			`=>`,
			`\b(?:import|export)\s+.*\bfrom\b|\brequire\s*\(`,
		),
		family("typescript", 0.95,
			`:\s*(?:string|number|boolean|void|any)\b`,
			`\binterface\s+[A-Z]\w*`,
			`\btype\s+[A-Z]\w*\s*=`,
			`\bexport\s+(?:interface|type|enum)\b`,
			`<[A-Z]\w*>`,
		),
		family("python", 1.0,
			`\bdef\s+\w+\s*\(`,
			`\bimport\s+\w+|\bfrom\s+\w+\s+import\b`,
			`\bself\.`,
			`\bprint\s*\(`,
			`\b(?:elif|None|True|False)\b`,
		),
		family("go", 1.0,
			`\bfunc\s+\w+\s*\(`,
			`\bpackage\s+\w+`,
			`:=`,
			`\bfmt\.[A-Z]\w*\s*\(`,
			`\bgo\s+func\b|\bchan\s+\w+`,
		),
		family("java", 0.95,
			`\bpublic\s+(?:static\s+)?(?:void|class|final)\b`,
			`\bSystem\.out\.print`,
			`\bprivate\s+\w+\s+\w+\s*;`,
			`\bnew\s+[A-Z]\w*\s*\(`,
			`@Override\b`,
		),
		family("c_cpp", 0.9,
			`#include\s*[<"]`,
			`\bstd::\w+`,
			`\bint\s+main\s*\(`,
			`\bprintf\s*\(|\bcout\s*<<`,
			`\b(?:void|int|char)\s+\w+\s*\(`,
		),
		family("rust", 0.95,
			`\bfn\s+\w+\s*\(`,
			`\blet\s+mut\b`,
			`\bprintln!\s*\(`,
			`\bimpl\s+\w+`,
			`->\s*\w+\s*\{`,
		),
		family("shell", 0.85,
			`(?m)^\s*\$\s+\w+`,
			`\b(?:sudo|apt-get|yum|brew)\s+\w+`,
			`\b(?:cd|ls|mkdir|rm|cp|mv|grep|cat)\s+[\w./~-]`,
			`(?m)^#!/`,
			`\becho\s+`,
		),
		family("sql", 0.9,
			`(?i)\bSELECT\b.+\bFROM\b`,
			`(?i)\b(?:INSERT\s+INTO|UPDATE\s+\w+\s+SET|DELETE\s+FROM)\b`,
			`(?i)\b(?:CREATE|ALTER|DROP)\s+TABLE\b`,
			`(?i)\bWHERE\s+\w+\s*[=<>]`,
			`(?i)\b(?:INNER\s+JOIN|LEFT\s+JOIN|GROUP\s+BY|ORDER\s+BY)\b`,
		),
		family("html", 0.6,
			`</[a-z][\w-]*>`,
			`<(?:div|span|p|a|img|ul|li|table)\b`,
			`\bclass="[^"]*"`,
			`<!DOCTYPE\s+html`,
			`&[a-z]{2,6};`,
		),
		family("css", 0.5,
			`[.#][\w-]+\s*\{`,
			`\b[\w-]+\s*:\s*[^;{}]+;`,
			`@(?:media|import|keyframes)\b`,
			`#[0-9a-fA-F]{6}\b|#[0-9a-fA-F]{3}\b`,
			`\b\d+(?:px|em|rem|vh|vw)\b`,
		),
		family("json", 0.7,
			`"[\w-]+"\s*:\s*"`,
			`"[\w-]+"\s*:\s*[\d{[]`,
			`:\s*(?:true|false|null)\b`,
			`(?m)^\s*[{[]`,
		),
	}

	byName := make(map[string]int, len(sets))
	for i, set := range sets {
		byName[set.Name] = i
	}
	return &PatternLibrary{sets: sets, byName: byName}
}

func family(name string, weight float64, patterns ...string) LanguagePatternSet {
	signatures := make([]Signature, 0, len(patterns))
	for _, p := range patterns {
		signatures = append(signatures, Signature{
			Family:  name,
			Pattern: regexp.MustCompile(p),
		})
	}
	return LanguagePatternSet{Name: name, Weight: weight, Signatures: signatures}
}

// SignaturesFor returns the signatures registered for a family. Requesting an
// unregistered family is a configuration bug and panics.
func (l *PatternLibrary) SignaturesFor(name string) []Signature {
	i, ok := l.byName[name]
	if !ok {
		panic(fmt.Sprintf("pattern library: unregistered language family %q", name))
	}
	return l.sets[i].Signatures
}

// AllFamilies returns the registered family names in stable order.
func (l *PatternLibrary) AllFamilies() []string {
	names := make([]string, len(l.sets))
	for i, set := range l.sets {
		names[i] = set.Name
	}
	return names
}

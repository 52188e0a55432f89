package core

// PatternScorer scores text against the pattern library, reporting the best
// matching language family.
type PatternScorer struct {
	library *PatternLibrary
}

// NewPatternScorer creates a pattern scorer over the given library.
func NewPatternScorer(library *PatternLibrary) *PatternScorer {
	return &PatternScorer{library: library}
}

// Score computes the best weighted match fraction across all families and
// returns it with the winning family name. Families are evaluated in the
// library's stable order, so an exact tie resolves to the family registered
// first. Empty text scores 0 with no language.
func (s *PatternScorer) Score(text string) (float64, string) {
	if text == "" {
		return 0, ""
	}

	best := 0.0
	bestFamily := ""
	for _, set := range s.library.sets {
		matched := 0
		for _, sig := range set.Signatures {
			if sig.Pattern.MatchString(text) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		score := float64(matched) / float64(len(set.Signatures)) * set.Weight
		if score > best {
			best = score
			bestFamily = set.Name
		}
	}

	// Multiple independent signatures agreeing is stronger evidence than the
	// raw fraction suggests.
	if best > 0.3 {
		best *= 1.2
		if best > 1.0 {
			best = 1.0
		}
	}

	return best, bestFamily
}

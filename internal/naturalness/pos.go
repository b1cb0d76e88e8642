package naturalness

import "strings"

// POS is a coarse part-of-speech guess.
type POS int

const (
	Unknown POS = iota
	Noun
	Verb
	Adjective
)

func (p POS) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	default:
		return "unknown"
	}
}

// GuessPOS guesses the part of speech of the first word in phrase that a
// closed list or suffix rule recognises.
func (c *Checker) GuessPOS(phrase string) POS {
	for _, tok := range Tokenize(phrase) {
		if pos := c.guessWord(tok); pos != Unknown {
			return pos
		}
	}
	return Unknown
}

func (c *Checker) guessWord(w string) POS {
	switch {
	case c.verbs[w]:
		return Verb
	case c.nouns[w]:
		return Noun
	case c.adjectives[w]:
		return Adjective
	}
	if len(w) <= 4 {
		return Unknown
	}
	rules := c.cfg.PartOfSpeech
	if hasAnySuffix(w, rules.NounSuffixes) {
		return Noun
	}
	if hasAnySuffix(w, rules.AdjectiveSuffixes) {
		return Adjective
	}
	if hasAnySuffix(w, rules.VerbSuffixes) {
		return Verb
	}
	return Unknown
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

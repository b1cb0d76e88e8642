// Package naturalness holds the approximate heuristics used to judge answer
// alternatives: a structural check on the filled-in sentence, a coarse
// part-of-speech guess and a formality score. The heuristics catch gross
// mismatches only; they know nothing about counts or references.
package naturalness

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pthm/scenariolint/internal/config"
)

// Kind groups findings for reporting.
type Kind string

const (
	Structure Kind = "structure"
	Semantic  Kind = "semantic"
	Register  Kind = "register"
)

// Grade is how strongly a finding should be reported.
type Grade int

const (
	GradeWarning Grade = iota
	GradeError
)

// Finding is one heuristic observation.
type Finding struct {
	Kind    Kind
	Grade   Grade
	Message string
}

// Checker applies the heuristics with a fixed configuration.
type Checker struct {
	cfg    config.NaturalnessConfig
	stop   map[string]bool
	neg    map[string]bool
	formal map[string]bool
	casual map[string]bool

	verbs      map[string]bool
	nouns      map[string]bool
	adjectives map[string]bool
}

// New builds a Checker from the naturalness section of the config.
func New(cfg config.NaturalnessConfig) *Checker {
	return &Checker{
		cfg:    cfg,
		stop:   wordSet(cfg.StopWords),
		neg:    wordSet(cfg.Negations),
		formal: wordSet(cfg.FormalWords),
		casual: wordSet(cfg.CasualMarkers),

		verbs:      wordSet(cfg.PartOfSpeech.Verbs),
		nouns:      wordSet(cfg.PartOfSpeech.Nouns),
		adjectives: wordSet(cfg.PartOfSpeech.Adjectives),
	}
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// Tokenize splits text into lowercase word tokens. Apostrophes inside a
// word are kept so contractions stay one token.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(strings.ReplaceAll(f, "’", "'"), "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Fill replaces the k-th occurrence of token in text with values[k]. Blanks
// without a value are left in place.
func Fill(text, token string, values []string) string {
	if token == "" {
		return text
	}
	var sb strings.Builder
	k := 0
	for {
		i := strings.Index(text, token)
		if i < 0 {
			sb.WriteString(text)
			return sb.String()
		}
		sb.WriteString(text[:i])
		if k < len(values) && values[k] != "" {
			sb.WriteString(values[k])
		} else {
			sb.WriteString(token)
		}
		text = text[i+len(token):]
		k++
	}
}

// CheckStructure inspects a filled-in sentence for repeated words, stacked
// negation and implausible length. All findings are error grade.
func (c *Checker) CheckStructure(sentence string) []Finding {
	var findings []Finding
	tokens := Tokenize(sentence)

	if n := len(tokens); n < c.cfg.MinTokens || n > c.cfg.MaxTokens {
		findings = append(findings, Finding{
			Kind:    Structure,
			Grade:   GradeError,
			Message: fmt.Sprintf("sentence has %d words, expected %d-%d", n, c.cfg.MinTokens, c.cfg.MaxTokens),
		})
	}

	reported := make(map[string]bool)
	for i, tok := range tokens {
		if len(tok) <= 2 || c.stop[tok] || reported[tok] {
			continue
		}
		for j := i + 1; j <= i+c.cfg.DuplicateWindow && j < len(tokens); j++ {
			if tokens[j] == tok {
				reported[tok] = true
				findings = append(findings, Finding{
					Kind:    Structure,
					Grade:   GradeError,
					Message: fmt.Sprintf("word %q is repeated", tok),
				})
				break
			}
		}
	}

	negations := 0
	for _, tok := range tokens {
		if c.isNegation(tok) {
			negations++
		}
	}
	if negations > c.cfg.MaxNegations {
		findings = append(findings, Finding{
			Kind:    Structure,
			Grade:   GradeError,
			Message: fmt.Sprintf("sentence has %d negations", negations),
		})
	}

	return findings
}

func (c *Checker) isNegation(tok string) bool {
	if c.neg[tok] {
		return true
	}
	return c.neg["n't"] && strings.HasSuffix(tok, "n't")
}

// Compare checks an alternative against the primary answer in the context
// of its dialogue line: part-of-speech compatibility, formality gap, and
// formal vocabulary inside a casual exchange.
func (c *Checker) Compare(primary, alternative, context string) []Finding {
	var findings []Finding

	pa, pb := c.GuessPOS(primary), c.GuessPOS(alternative)
	if pa != Unknown && pb != Unknown && pa != pb {
		findings = append(findings, Finding{
			Kind:    Semantic,
			Grade:   GradeWarning,
			Message: fmt.Sprintf("%q looks like a %s but %q looks like a %s", alternative, pb, primary, pa),
		})
	}

	fa, fb := c.Formality(primary), c.Formality(alternative)
	if gap := fa - fb; gap > c.cfg.MaxFormalityGap || -gap > c.cfg.MaxFormalityGap {
		findings = append(findings, Finding{
			Kind:    Register,
			Grade:   GradeWarning,
			Message: fmt.Sprintf("formality of %q (%.2f) differs from %q (%.2f)", alternative, fb, primary, fa),
		})
	}

	if c.IsCasual(context) {
		for _, w := range c.FormalWords(alternative) {
			findings = append(findings, Finding{
				Kind:    Register,
				Grade:   GradeError,
				Message: fmt.Sprintf("formal word %q in a casual exchange", w),
			})
		}
	}

	return findings
}

// IsCasual reports whether text reads as a casual exchange: it contains a
// casual marker or a contraction.
func (c *Checker) IsCasual(text string) bool {
	for _, tok := range Tokenize(text) {
		if c.casual[tok] || strings.Contains(tok, "'") {
			return true
		}
	}
	return false
}

// FormalWords returns the closed-list formal words found in phrase.
func (c *Checker) FormalWords(phrase string) []string {
	var found []string
	for _, tok := range Tokenize(phrase) {
		if c.formal[tok] {
			found = append(found, tok)
		}
	}
	return found
}

// Formality estimates how formal a phrase is, from 0 (casual) to 1
// (formal). Plain vocabulary scores 0.5.
func (c *Checker) Formality(phrase string) float64 {
	score := 0.5
	for _, tok := range Tokenize(phrase) {
		switch {
		case c.formal[tok]:
			score += 0.3
		case c.casual[tok]:
			score -= 0.3
		case strings.Contains(tok, "'"):
			score -= 0.1
		case len(tok) > 9:
			score += 0.1
		}
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

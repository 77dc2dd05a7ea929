// Package adapter contains the infrastructure the domain layer relies on:
// part-of-speech tagging, the history log and graph persistence.
package adapter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "mutree.dev/pkg/mutree/internal/model"
)

// Tagger assigns a coarse category and a gender to a word. It must not
// fail: a word it cannot classify is reported as m.Unknown.
type Tagger interface {
	Tag(word string) (m.Category, m.Gender)
}

var (
	verbEndings      = []string{"ться", "тись", "ть", "ти", "чь"}
	adjectiveEndings = []string{"ый", "ий", "ой", "ая", "яя", "ое", "ее"}
)

// LexiconTagger looks words up in a lexicon and, optionally, guesses the
// category of unlisted Cyrillic words from their ending.
type LexiconTagger struct {
	lexicon    *Lexicon
	heuristics bool
}

// NewLexiconTagger creates a tagger over lexicon. A nil lexicon behaves as
// an empty one.
func NewLexiconTagger(lexicon *Lexicon, heuristics bool) *LexiconTagger {
	if lexicon == nil {
		lexicon = &Lexicon{}
	}

	return &LexiconTagger{
		lexicon:    lexicon,
		heuristics: heuristics,
	}
}

// Tag implements Tagger.
func (t *LexiconTagger) Tag(word string) (m.Category, m.Gender) {
	key := normalizeKey(word)
	if key == "" {
		return m.Unknown, m.GenderUnknown
	}

	if entry, ok := t.lexicon.Lookup(key); ok {
		return entry.Category(), entry.NounGender()
	}

	if !t.heuristics {
		return m.Unknown, m.GenderUnknown
	}

	return guessByEnding(key)
}

func normalizeKey(word string) string {
	return cases.Lower(language.Russian).String(strings.TrimSpace(m.StripMarker(word)))
}

// guessByEnding classifies a lower-cased word by its ending. Words that are
// not entirely Cyrillic letters stay Unknown.
func guessByEnding(word string) (m.Category, m.Gender) {
	for _, r := range word {
		if !unicode.Is(unicode.Cyrillic, r) || !unicode.IsLetter(r) {
			return m.Unknown, m.GenderUnknown
		}
	}

	if utf8.RuneCountInString(word) < 3 {
		return m.Other, m.GenderUnknown
	}

	for _, ending := range verbEndings {
		if strings.HasSuffix(word, ending) {
			return m.Verb, m.GenderUnknown
		}
	}

	for _, ending := range adjectiveEndings {
		if strings.HasSuffix(word, ending) {
			return m.Adjective, m.GenderUnknown
		}
	}

	return m.Noun, guessGender(word)
}

func guessGender(word string) m.Gender {
	last, _ := utf8.DecodeLastRuneInString(word)

	switch {
	case strings.ContainsRune("ая", last):
		return m.Feminine
	case strings.ContainsRune("оеё", last):
		return m.Neuter
	case last == 'ь':
		return m.GenderUnknown
	default:
		return m.Masculine
	}
}

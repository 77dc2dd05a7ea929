package adapter

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	m "mutree.dev/pkg/mutree/internal/model"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// LexiconEntry is the tag of one word.
type LexiconEntry struct {
	POS    string `yaml:"pos"`
	Gender string `yaml:"gender,omitempty"`
}

// Category returns the coarse category of the entry.
func (e LexiconEntry) Category() m.Category {
	return m.ParseCategory(e.POS)
}

// NounGender returns the gender of the entry. Only nouns carry one.
func (e LexiconEntry) NounGender() m.Gender {
	if e.Category() != m.Noun {
		return m.GenderUnknown
	}

	return m.ParseGender(e.Gender)
}

// Lexicon maps lower-case words to their tags.
type Lexicon struct {
	Words map[string]LexiconEntry `yaml:"words"`
}

// Lookup returns the entry for an already lower-cased word.
func (l *Lexicon) Lookup(word string) (LexiconEntry, bool) {
	entry, ok := l.Words[word]
	return entry, ok
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.Words)
}

// ParseLexicon decodes a YAML lexicon. Keys are lower-cased.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var raw Lexicon
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}

	lower := cases.Lower(language.Russian)
	lex := &Lexicon{Words: make(map[string]LexiconEntry, len(raw.Words))}

	for word, entry := range raw.Words {
		lex.Words[lower.String(word)] = entry
	}

	return lex, nil
}

// DefaultLexicon returns the lexicon bundled with the binary.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

// LoadLexicon reads a lexicon file. An empty path selects the bundled one.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	lex, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("lexicon loaded", "path", path, "words", lex.Len())

	return lex, nil
}

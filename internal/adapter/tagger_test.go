package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutree.dev/pkg/mutree/internal/model"
)

func newDefaultTagger(t *testing.T, heuristics bool) *LexiconTagger {
	t.Helper()

	lex, err := DefaultLexicon()
	require.NoError(t, err)

	return NewLexiconTagger(lex, heuristics)
}

func TestLexiconTagger_Lexicon(t *testing.T) {
	tagger := newDefaultTagger(t, false)

	tests := []struct {
		word     string
		category m.Category
		gender   m.Gender
	}{
		{"дом", m.Noun, m.Masculine},
		{"Дом", m.Noun, m.Masculine},
		{"мама", m.Noun, m.Feminine},
		{"окно", m.Noun, m.Neuter},
		{"бежать", m.Verb, m.GenderUnknown},
		{"?бежать?", m.Verb, m.GenderUnknown},
		{"красный", m.Adjective, m.GenderUnknown},
		{"быстро", m.Other, m.GenderUnknown},
		{"и", m.Other, m.GenderUnknown},
		{"абракадабра", m.Unknown, m.GenderUnknown},
		{"", m.Unknown, m.GenderUnknown},
		{"???", m.Unknown, m.GenderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			category, gender := tagger.Tag(tt.word)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.gender, gender)
		})
	}
}

func TestLexiconTagger_Heuristics(t *testing.T) {
	tagger := newDefaultTagger(t, true)

	tests := []struct {
		word     string
		category m.Category
		gender   m.Gender
	}{
		{"прыгать", m.Verb, m.GenderUnknown},
		{"смеяться", m.Verb, m.GenderUnknown},
		{"зелёный", m.Adjective, m.GenderUnknown},
		{"лампа", m.Noun, m.Feminine},
		{"облако", m.Noun, m.Neuter},
		{"забор", m.Noun, m.Masculine},
		{"тетрадь", m.Noun, m.GenderUnknown},
		{"ух", m.Other, m.GenderUnknown},
		{"house", m.Unknown, m.GenderUnknown},
		{"дом2", m.Unknown, m.GenderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			category, gender := tagger.Tag(tt.word)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.gender, gender)
		})
	}
}

func TestNewLexiconTagger_NilLexicon(t *testing.T) {
	tagger := NewLexiconTagger(nil, false)

	category, gender := tagger.Tag("дом")
	assert.Equal(t, m.Unknown, category)
	assert.Equal(t, m.GenderUnknown, gender)
}

package domain

import (
	"errors"
	"math/rand/v2"
	"testing"

	m "mutree.dev/pkg/mutree/internal/model"
)

type stubTag struct {
	category m.Category
	gender   m.Gender
}

// stubTagger tags known words from a map and everything else as fallback.
type stubTagger struct {
	words    map[string]stubTag
	fallback stubTag
}

func (s stubTagger) Tag(word string) (m.Category, m.Gender) {
	if tag, ok := s.words[word]; ok {
		return tag.category, tag.gender
	}

	return s.fallback.category, s.fallback.gender
}

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestStrategiesFor_EveryCategory(t *testing.T) {
	for _, category := range m.Categories() {
		if len(strategiesFor(category)) == 0 {
			t.Errorf("category %s has no strategies", category)
		}
	}
}

func TestMutator_Mutate_EveryCategoryChangesWord(t *testing.T) {
	words := []string{"дом", "слово", "бежать", "ночь", "красный", "ух"}

	for _, category := range m.Categories() {
		t.Run(category.String(), func(t *testing.T) {
			tagger := stubTagger{fallback: stubTag{category: category, gender: m.Masculine}}
			mutator := NewMutator(tagger, newTestRand(1))

			for range 50 {
				for _, word := range words {
					record, err := mutator.Mutate(word)
					if err != nil {
						t.Fatalf("Mutate(%q) error = %v", word, err)
					}

					if record.Produced == "" || record.Produced == word {
						t.Fatalf("Mutate(%q) produced %q", word, record.Produced)
					}

					if record.Category != category {
						t.Fatalf("Mutate(%q) category = %s, want %s", word, record.Category, category)
					}

					if record.Description == "" {
						t.Fatalf("Mutate(%q) has no description", word)
					}
				}
			}
		})
	}
}

func TestMutator_Mutate_EmptyAfterStripping(t *testing.T) {
	mutator := NewMutator(stubTagger{}, newTestRand(1))

	for _, word := range []string{"", "?", "???"} {
		record, err := mutator.Mutate(word)
		if !errors.Is(err, ErrInputInvalid) {
			t.Fatalf("Mutate(%q) error = %v, want ErrInputInvalid", word, err)
		}

		if record.Produced != word || record.Description != m.NoChange || record.Category != m.Unknown {
			t.Fatalf("Mutate(%q) record = %+v", word, record)
		}
	}
}

func TestMutator_Mutate_StripsMarkers(t *testing.T) {
	tagger := stubTagger{words: map[string]stubTag{"бежать": {category: m.Verb}}}
	mutator := NewMutator(tagger, newTestRand(3))

	record, err := mutator.Mutate("?бежать?")
	if err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	if record.Source != "бежать" {
		t.Errorf("Source = %q, want %q", record.Source, "бежать")
	}

	if record.Category != m.Verb {
		t.Errorf("Category = %s, want VERB", record.Category)
	}

	if record.Produced == "бежать" || record.Produced == "" {
		t.Errorf("Produced = %q", record.Produced)
	}
}

func TestMutator_Mutate_Deterministic(t *testing.T) {
	tagger := stubTagger{fallback: stubTag{category: m.Noun, gender: m.Feminine}}

	first := NewMutator(tagger, newTestRand(99))
	second := NewMutator(tagger, newTestRand(99))

	for range 20 {
		a, _ := first.Mutate("мама")
		b, _ := second.Mutate("мама")

		if a != b {
			t.Fatalf("same seed gave %+v and %+v", a, b)
		}
	}
}

// Package domain contains the mutation engine, the growth simulator and the
// workflows built on top of them.
package domain

import (
	"fmt"
	"math/rand/v2"

	"mutree.dev/pkg/mutree/internal/adapter"
	"mutree.dev/pkg/mutree/internal/domain/mutagens"
	m "mutree.dev/pkg/mutree/internal/model"
)

// Mutator turns one word into a new word form.
type Mutator interface {
	// Mutate strips markers from word, tags it and applies one randomly
	// chosen rule for its category. A word that is empty after stripping
	// yields an unchanged record and an error wrapping ErrInputInvalid.
	Mutate(word string) (m.MutationRecord, error)
}

type mutator struct {
	adapter.Tagger
	rng *rand.Rand
}

// NewMutator creates a Mutator that tags words with tagger and draws every
// random choice from rng.
func NewMutator(tagger adapter.Tagger, rng *rand.Rand) Mutator {
	return &mutator{
		Tagger: tagger,
		rng:    rng,
	}
}

func (mu *mutator) Mutate(word string) (m.MutationRecord, error) {
	clean := m.StripMarker(word)
	if clean == "" {
		return m.MutationRecord{
			Source:      word,
			Produced:    word,
			Category:    m.Unknown,
			Description: m.NoChange,
		}, fmt.Errorf("%w: %q is empty without markers", ErrInputInvalid, word)
	}

	category, gender := mu.Tag(clean)
	strategy := mutagens.Choose(mu.rng, strategiesFor(category))
	res := strategy.Apply(clean, gender, mu.rng)

	if res.Word == "" {
		res = mutagens.Result{Word: clean, Description: m.NoChange}
	}

	return m.MutationRecord{
		Source:      clean,
		Produced:    res.Word,
		Category:    category,
		Description: res.Description,
	}, nil
}

// strategiesFor returns the rule set of a category. Other and Unknown share
// the generic rules.
func strategiesFor(category m.Category) []mutagens.Strategy {
	switch category {
	case m.Noun:
		return mutagens.NounStrategies
	case m.Verb:
		return mutagens.VerbStrategies
	case m.Adjective:
		return mutagens.AdjectiveStrategies
	case m.Other, m.Unknown:
		return mutagens.GenericStrategies
	}

	return mutagens.GenericStrategies
}

package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"

	m "mutree.dev/pkg/mutree/internal/model"
)

// CorpusSampleSize is the number of seeds drawn from a corpus when no seed
// words are given.
const CorpusSampleSize = 5

// PrepareSeeds removes markers and surrounding space from every seed. An
// empty list, or a seed with nothing left after stripping, is
// ErrInputInvalid. Duplicates are kept once, in first-seen order.
func PrepareSeeds(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no seed words", ErrInputInvalid)
	}

	seeds := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))

	for _, word := range words {
		seed := strings.TrimSpace(m.StripMarker(word))
		if seed == "" {
			return nil, fmt.Errorf("%w: seed %q is empty without markers", ErrInputInvalid, word)
		}

		if seen[seed] {
			continue
		}

		seen[seed] = true
		seeds = append(seeds, seed)
	}

	return seeds, nil
}

// SampleCorpus draws up to CorpusSampleSize distinct words from corpus.
func SampleCorpus(rng *rand.Rand, corpus []string) ([]string, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: corpus is empty", ErrInputInvalid)
	}

	return sampleWords(rng, corpus, min(CorpusSampleSize, len(corpus))), nil
}

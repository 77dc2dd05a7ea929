package mutagens

import (
	"math/rand/v2"
	"strings"

	m "mutree.dev/pkg/mutree/internal/model"
)

const (
	feminineEnding    = "ая"
	comparativeEnding = "ее"
)

var (
	adjectiveSuffixes = []string{"ый", "ий", "ой"}
	// masculineEndings are the endings gender flip and comparative replace.
	masculineEndings = []string{"ый", "ий"}
)

// AdjectiveStrategies are the rules available to adjectives.
var AdjectiveStrategies = []Strategy{
	{Name: StrategySuffix, Apply: AdjectiveSuffix},
	{Name: StrategyGender, Apply: AdjectiveGender},
	{Name: StrategyComparative, Apply: AdjectiveComparative},
}

// AdjectiveSuffix appends an adjectival ending.
func AdjectiveSuffix(word string, _ m.Gender, rng *rand.Rand) Result {
	return addSuffix(word, pick(rng, adjectiveSuffixes))
}

// AdjectiveGender turns a masculine form into the feminine one. Words with
// another ending get the feminine ending appended.
func AdjectiveGender(word string, _ m.Gender, _ *rand.Rand) Result {
	if stem, ok := cutMasculineEnding(word); ok {
		return Result{Word: stem + feminineEnding, Description: "род: муж → жен"}
	}

	return addSuffix(word, feminineEnding)
}

// AdjectiveComparative builds a comparative form.
func AdjectiveComparative(word string, _ m.Gender, _ *rand.Rand) Result {
	if stem, ok := cutMasculineEnding(word); ok {
		ending := strings.TrimPrefix(word, stem)

		return Result{Word: stem + comparativeEnding, Description: "сравн. -" + ending + "+" + comparativeEnding}
	}

	return Result{Word: word + comparativeEnding, Description: "сравн. +" + comparativeEnding}
}

func cutMasculineEnding(word string) (string, bool) {
	for _, ending := range masculineEndings {
		if stem, ok := strings.CutSuffix(word, ending); ok {
			return stem, true
		}
	}

	return word, false
}

package mutagens

import (
	"math/rand/v2"

	m "mutree.dev/pkg/mutree/internal/model"
)

var (
	genericSuffixes = []string{"ик", "ок"}
	genericPrefixes = []string{"по", "за"}
)

// GenericStrategies are used for words without a usable category. They
// need no linguistic features.
var GenericStrategies = []Strategy{
	{Name: StrategySuffix, Apply: GenericSuffix},
	{Name: StrategyPrefix, Apply: GenericPrefix},
}

// GenericSuffix appends a neutral suffix.
func GenericSuffix(word string, _ m.Gender, rng *rand.Rand) Result {
	return addSuffix(word, pick(rng, genericSuffixes))
}

// GenericPrefix prepends a neutral prefix.
func GenericPrefix(word string, _ m.Gender, rng *rand.Rand) Result {
	return addPrefix(word, pick(rng, genericPrefixes))
}

package mutagens

import (
	"math/rand/v2"

	m "mutree.dev/pkg/mutree/internal/model"
)

var (
	nounSuffixAfterConsonant = genderPools{
		masc: []string{"ок", "ец", "ище"},
		fem:  []string{"ка", "ица", "очка"},
		neut: []string{"ко", "це"},
	}
	nounSuffixAfterVowel = genderPools{
		masc: []string{"к", "ц"},
		fem:  []string{"ка", "ца"},
		neut: []string{"ко", "цо"},
	}
	nounDiminutiveAfterConsonant = genderPools{
		masc: []string{"ёк", "ик", "очек"},
		fem:  []string{"ка", "очка", "енька"},
		neut: []string{"ко", "ечко"},
	}
	nounDiminutiveAfterVowel = genderPools{
		masc: []string{"ик", "ёк"},
		fem:  []string{"ка", "очка"},
		neut: []string{"ко", "ечко"},
	}
	nounPrefixes = []string{"по", "за", "на", "пере", "при"}
)

// NounStrategies are the rules available to nouns.
var NounStrategies = []Strategy{
	{Name: StrategySuffix, Apply: NounSuffix},
	{Name: StrategyPrefix, Apply: NounPrefix},
	{Name: StrategyDiminutive, Apply: NounDiminutive},
}

// NounSuffix appends a gender-dependent suffix. After a consonant the pool
// starts with a vowel; after a vowel it does not need one.
func NounSuffix(word string, gender m.Gender, rng *rand.Rand) Result {
	pools := nounSuffixAfterVowel
	if EndsWithConsonant(word) {
		pools = nounSuffixAfterConsonant
	}

	return addSuffix(word, pick(rng, pools.forGender(gender)))
}

// NounPrefix prepends a verbal prefix.
func NounPrefix(word string, _ m.Gender, rng *rand.Rand) Result {
	return addPrefix(word, pick(rng, nounPrefixes))
}

// NounDiminutive builds a diminutive. A final vowel is replaced by the
// suffix; after a consonant the suffix is appended.
func NounDiminutive(word string, gender m.Gender, rng *rand.Rand) Result {
	if EndsWithConsonant(word) {
		suffix := pick(rng, nounDiminutiveAfterConsonant.forGender(gender))

		return Result{Word: word + suffix, Description: "уменьш. +" + suffix}
	}

	stem, last := lastRune(word)
	suffix := pick(rng, nounDiminutiveAfterVowel.forGender(gender))

	return Result{Word: stem + suffix, Description: "уменьш. -" + last + "+" + suffix}
}

package mutagens

import (
	"math/rand/v2"
	"strings"

	m "mutree.dev/pkg/mutree/internal/model"
)

const (
	softSign          = 'ь'
	defaultVerbSuffix = "ить"
	alternationPrefix = "черед. "
)

var (
	verbPrefixes          = []string{"по", "за", "на", "пере", "при", "у"}
	verbSuffixes          = []string{"ить", "еть", "ать"}
	verbSuffixesAfterSoft = []string{"ить", "еть"}
	alternationSuffixes   = []string{"ать", "ить"}
)

// Alternation rewrites a trailing consonant or cluster.
type Alternation struct {
	From string
	To   string
}

// Alternations is checked in order; clusters come before the single letters
// they end with so that the longest match wins.
var Alternations = []Alternation{
	{From: "ск", To: "щ"},
	{From: "ст", To: "щ"},
	{From: "к", To: "ч"},
	{From: "г", To: "ж"},
	{From: "х", To: "ш"},
	{From: "т", To: "ч"},
	{From: "д", To: "ж"},
}

// VerbStrategies are the rules available to verbs.
var VerbStrategies = []Strategy{
	{Name: StrategyPrefix, Apply: VerbPrefix},
	{Name: StrategySuffix, Apply: VerbSuffix},
	{Name: StrategyAlternation, Apply: VerbAlternation},
}

// VerbPrefix prepends a verbal prefix.
func VerbPrefix(word string, _ m.Gender, rng *rand.Rand) Result {
	return addPrefix(word, pick(rng, verbPrefixes))
}

// VerbSuffix appends an infinitive ending, dropping a trailing soft sign of
// either case first.
func VerbSuffix(word string, _ m.Gender, rng *rand.Rand) Result {
	if stem, last := lastLetter(word); last == softSign {
		suffix := pick(rng, verbSuffixesAfterSoft)

		return Result{Word: stem + suffix, Description: "-" + string(softSign) + "+" + suffix}
	}

	return addSuffix(word, pick(rng, verbSuffixes))
}

// VerbAlternation applies the first matching consonant alternation and adds
// an infinitive ending. Without a match it falls back to the default ending.
func VerbAlternation(word string, _ m.Gender, rng *rand.Rand) Result {
	alternated, alt, ok := Alternate(word)
	if !ok {
		return addSuffix(word, defaultVerbSuffix)
	}

	suffix := pick(rng, alternationSuffixes)

	return Result{
		Word:        alternated + suffix,
		Description: alternationPrefix + alt.From + "→" + alt.To + " +" + suffix,
	}
}

// Alternate rewrites the ending of word with the first matching entry of
// Alternations. The word is returned unchanged when nothing matches.
func Alternate(word string) (string, Alternation, bool) {
	for _, alt := range Alternations {
		if stem, ok := strings.CutSuffix(word, alt.From); ok {
			return stem + alt.To, alt, true
		}
	}

	return word, Alternation{}, false
}

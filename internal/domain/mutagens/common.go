// Package mutagens holds the word-transformation rules of the mutation engine.
//
// Every rule is a pure function of the word, the noun gender and the random
// stream it draws its choices from.
package mutagens

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	m "mutree.dev/pkg/mutree/internal/model"
)

// consonants lists the lower-case Russian consonant letters.
const consonants = "бвгджзйклмнпрстфхцчшщ"

// Strategy names.
const (
	StrategySuffix      = "suffix"
	StrategyPrefix      = "prefix"
	StrategyDiminutive  = "diminutive"
	StrategyAlternation = "alternation"
	StrategyGender      = "gender"
	StrategyComparative = "comparative"
)

// Result is the outcome of applying one rule.
type Result struct {
	Word        string
	Description string
}

// Rule transforms a word. Gender is only meaningful for nouns.
type Rule func(word string, gender m.Gender, rng *rand.Rand) Result

// Strategy is a named rule.
type Strategy struct {
	Name  string
	Apply Rule
}

// Choose picks one strategy uniformly at random.
func Choose(rng *rand.Rand, strategies []Strategy) Strategy {
	return strategies[rng.IntN(len(strategies))]
}

// IsConsonant reports whether r is a Russian consonant, ignoring case.
func IsConsonant(r rune) bool {
	return strings.ContainsRune(consonants, unicode.ToLower(r))
}

// EndsWithConsonant reports whether the last letter of word is a consonant.
func EndsWithConsonant(word string) bool {
	r, _ := utf8.DecodeLastRuneInString(word)
	if r == utf8.RuneError {
		return false
	}

	return IsConsonant(r)
}

// lastLetter splits word into everything but the last rune and that rune
// lower-cased.
func lastLetter(word string) (string, rune) {
	r, size := utf8.DecodeLastRuneInString(word)
	if r == utf8.RuneError {
		return word, r
	}

	return word[:len(word)-size], unicode.ToLower(r)
}

// lastRune splits word into everything but the last rune and the last rune.
func lastRune(word string) (string, string) {
	_, size := utf8.DecodeLastRuneInString(word)
	return word[:len(word)-size], word[len(word)-size:]
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}

func addSuffix(word, suffix string) Result {
	return Result{Word: word + suffix, Description: "+" + suffix}
}

func addPrefix(word, prefix string) Result {
	return Result{Word: prefix + word, Description: prefix + "+"}
}

// genderPools holds one pool per gender; unknown gender shares the neuter pool.
type genderPools struct {
	masc, fem, neut []string
}

func (p genderPools) forGender(g m.Gender) []string {
	switch g {
	case m.Masculine:
		return p.masc
	case m.Feminine:
		return p.fem
	case m.Neuter, m.GenderUnknown:
		return p.neut
	}

	return p.neut
}

// Package model defines the data structures shared by the mutation engine,
// the growth simulator and the adapters around them.
package model

import "strings"

// Marker flags a word as uncertain in user input. It is removed before any
// tagging or mutation.
const Marker = "?"

// StripMarker removes every occurrence of Marker from word.
func StripMarker(word string) string {
	return strings.ReplaceAll(word, Marker, "")
}

// Category is the coarse part-of-speech tag the engine routes on.
type Category int

const (
	// Unknown is used when the tagger has no usable answer.
	Unknown Category = iota
	// Noun category.
	Noun
	// Verb category.
	Verb
	// Adjective category.
	Adjective
	// Other covers recognised tags the engine has no dedicated rules for
	// (adverbs, prepositions, pronouns, ...).
	Other
)

// Categories returns every Category value.
func Categories() []Category {
	return []Category{Unknown, Noun, Verb, Adjective, Other}
}

func (c Category) String() string {
	switch c {
	case Noun:
		return "NOUN"
	case Verb:
		return "VERB"
	case Adjective:
		return "ADJ"
	case Other:
		return "OTHER"
	case Unknown:
		return "UNKNOWN"
	}

	return "UNKNOWN"
}

// ParseCategory maps a tag name to a Category. Coarse names are accepted as
// well as the finer universal POS tags a tagger may produce; anything else
// is Unknown.
func ParseCategory(tag string) Category {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "NOUN", "PROPN":
		return Noun
	case "VERB", "AUX":
		return Verb
	case "ADJ", "ADJECTIVE":
		return Adjective
	case "OTHER", "ADV", "ADP", "PREP", "CONJ", "CCONJ", "SCONJ", "PRON", "NUM", "INTJ", "PART", "DET":
		return Other
	}

	return Unknown
}

// Gender is the grammatical gender of a noun.
type Gender int

const (
	// GenderUnknown is used when no gender could be determined.
	GenderUnknown Gender = iota
	// Masculine gender.
	Masculine
	// Feminine gender.
	Feminine
	// Neuter gender.
	Neuter
)

// Genders returns every Gender value.
func Genders() []Gender {
	return []Gender{GenderUnknown, Masculine, Feminine, Neuter}
}

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masc"
	case Feminine:
		return "fem"
	case Neuter:
		return "neut"
	case GenderUnknown:
		return "unknown"
	}

	return "unknown"
}

// ParseGender maps a gender name ("masc", "Fem", "neuter", ...) to a Gender.
func ParseGender(name string) Gender {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "masc", "masculine", "m":
		return Masculine
	case "fem", "feminine", "f":
		return Feminine
	case "neut", "neuter", "n":
		return Neuter
	}

	return GenderUnknown
}

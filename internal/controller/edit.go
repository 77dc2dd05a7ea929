package controller

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// EditSummary describes the letter-level edit turning from into to, e.g.
// "+по" or "-ь +ить". Unchanged stretches are omitted.
func EditSummary(from, to string) string {
	a := splitRunes(from)
	b := splitRunes(to)

	var parts []string

	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		removed := strings.Join(a[op.I1:op.I2], "")
		added := strings.Join(b[op.J1:op.J2], "")

		switch op.Tag {
		case 'd':
			parts = append(parts, "-"+removed)
		case 'i':
			parts = append(parts, "+"+added)
		case 'r':
			parts = append(parts, "-"+removed, "+"+added)
		}
	}

	if len(parts) == 0 {
		return "="
	}

	return strings.Join(parts, " ")
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

package layout

import (
	"sort"
	"strings"
	"unicode"
)

// NaturalLess compares reference designators the way a human reads them:
// runs of digits compare numerically, everything else case-insensitively.
// So A2 sorts before A10, and a1 equals A1.
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		aRun, aDigits, aRest := nextRun(a)
		bRun, bDigits, bRest := nextRun(b)

		if aDigits && bDigits {
			if c := compareNumeric(aRun, bRun); c != 0 {
				return c < 0
			}
		} else {
			al, bl := strings.ToLower(aRun), strings.ToLower(bRun)
			if al != bl {
				return al < bl
			}
		}

		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// nextRun splits off the leading run of digits or non-digits.
func nextRun(s string) (run string, digits bool, rest string) {
	digits = unicode.IsDigit(rune(s[0]))
	for i, r := range s {
		if unicode.IsDigit(r) != digits {
			return s[:i], digits, s[i:]
		}
	}
	return s, digits, ""
}

// compareNumeric compares two digit runs as integers of arbitrary
// length, so long designator numbers never overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// SortByReference orders footprint states by natural reference order.
func SortByReference(fps []FootprintState) {
	sort.SliceStable(fps, func(i, j int) bool {
		return NaturalLess(fps[i].Reference, fps[j].Reference)
	})
}

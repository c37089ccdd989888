// Package natsort orders strings the way a person reads them: runs of ASCII
// digits compare by numeric value, every other byte compares as-is.
//
//	"img2.png" < "img10.png"
//
// The comparison is case sensitive and independent of locale. Non-digit bytes
// are compared directly, which for UTF-8 input is the same as comparing by
// Unicode codepoint.
package natsort

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b in natural order.
//
// Digit runs of equal numeric value are ordered by run length, so "a01" sorts
// after "a1" and only identical strings compare equal.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			startA, startB := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareDigitRuns(a[startA:i], b[startB:j]); c != 0 {
				return c
			}
			continue
		}

		if ca != cb {
			return cmp.Compare(ca, cb)
		}
		i++
		j++
	}

	// Whichever string has input left over sorts last.
	return cmp.Compare(len(a)-i, len(b)-j)
}

// Less reports whether a sorts strictly before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts s in place in natural order. The sort is stable.
func Strings(s []string) {
	slices.SortStableFunc(s, Compare)
}

// compareDigitRuns compares two non-empty runs of ASCII digits by value,
// falling back to run length (fewer leading zeros first) on a tie.
func compareDigitRuns(x, y string) int {
	vx := strings.TrimLeft(x, "0")
	vy := strings.TrimLeft(y, "0")

	// Without leading zeros, a longer run is a larger number.
	if len(vx) != len(vy) {
		return cmp.Compare(len(vx), len(vy))
	}
	if c := strings.Compare(vx, vy); c != 0 {
		return c
	}
	return cmp.Compare(len(x), len(y))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package natsort

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b in natural order.
func Compare(a, b string) int {
	i, j := 0, 0
	for {
		ra, na, ni := nextRun(a, i)
		rb, nb, nj := nextRun(b, j)
		switch {
		case ra == "" && rb == "":
			return 0
		case ra == "":
			return -1
		case rb == "":
			return 1
		}

		var c int
		switch {
		case na && nb:
			c = compareDigits(ra, rb)
		case na:
			c = -1
		case nb:
			c = 1
		default:
			c = compareFold(ra, rb)
		}
		if c != 0 {
			return c
		}
		i, j = ni, nj
	}
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Equal reports whether a and b are indistinguishable in natural order.
func Equal(a, b string) bool { return Compare(a, b) == 0 }

// nextRun returns the run starting at or after byte offset i, whether it is
// numeric, and the offset just past it. An empty run means s is exhausted.
func nextRun(s string, i int) (string, bool, int) {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isDigit(r) || unicode.IsLetter(r) {
			break
		}
		i += size
	}
	if i >= len(s) {
		return "", false, i
	}

	start := i
	if isDigit(rune(s[i])) {
		for i < len(s) && isDigit(rune(s[i])) {
			i++
		}
		return s[start:i], true, i
	}
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += size
	}
	return s[start:i], false, i
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// compareDigits orders two digit runs by value without parsing them.
func compareDigits(a, b string) int {
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

func compareFold(a, b string) int {
	for a != "" && b != "" {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		la, lb := unicode.ToLower(ra), unicode.ToLower(rb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		a, b = a[sa:], b[sb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

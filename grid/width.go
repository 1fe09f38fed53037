package grid

import (
	"unicode"

	"golang.org/x/text/width"
)

// RuneWidth returns the number of cells a rune occupies: 0 for combining
// marks and non-printables, 2 for East Asian wide/fullwidth runes, 1
// otherwise
func RuneWidth(r rune) int {
	if r == 0 || !unicode.IsPrint(r) {
		return 0
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// StringWidth returns the total display width of a string in cells
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

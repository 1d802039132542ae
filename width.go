package vqonsole

import "unicode"

// RuneWidth returns the display width of a code point: -1 for C0/C1
// controls (excluding NUL), 0 for combining marks,
// most format characters, Hangul Jamo medials/finals, and ZERO WIDTH
// SPACE, 2 for East Asian Wide/Fullwidth ranges, and 1 otherwise.
//
// The table deliberately deviates from a generic East-Asian-Width
// lookup in a few places: SOFT HYPHEN keeps width 1 while every other
// format character is 0, and Hangul Jamo medials/finals are 0 though
// they are not combining marks.
func RuneWidth(cp rune) int {
	switch {
	case cp == 0:
		return 0
	case isC0OrC1(cp):
		return -1
	case isZeroWidth(cp):
		return 0
	case isEastAsianWide(cp):
		return 2
	default:
		return 1
	}
}

func isC0OrC1(cp rune) bool {
	return (cp >= 1 && cp <= 31) || (cp >= 0x7F && cp <= 0x9F)
}

func isZeroWidth(cp rune) bool {
	if unicode.Is(unicode.Mn, cp) || unicode.Is(unicode.Me, cp) {
		return true
	}
	if cp == 0x00AD {
		// SOFT HYPHEN is the one format character that keeps width 1.
		return false
	}
	if unicode.Is(unicode.Cf, cp) {
		return true
	}
	if cp >= 0x1160 && cp <= 0x11FF {
		return true
	}
	if cp == 0x200B {
		return true
	}
	return false
}

// wideRanges lists the East Asian Wide/Fullwidth blocks. Kept as a
// sorted table of inclusive [lo, hi] pairs so RuneWidth
// stays a simple linear/binary scan rather than a dependency on a
// Unicode properties package whose band boundaries drift by version.
var wideRanges = [][2]rune{
	{0x1100, 0x115F},   // Hangul Jamo initials
	{0x2329, 0x232A},   // angle brackets
	{0x2E80, 0x303E},   // CJK radicals, punctuation
	{0x3041, 0x33FF},   // Hiragana..CJK compatibility
	{0x3400, 0x4DBF},   // CJK extension A
	{0x4E00, 0x9FFF},   // CJK unified ideographs
	{0xA000, 0xA4CF},   // Yi syllables/radicals
	{0xAC00, 0xD7A3},   // Hangul syllables
	{0xF900, 0xFAFF},   // CJK compatibility ideographs
	{0xFE30, 0xFE4F},   // CJK compatibility forms
	{0xFF00, 0xFF60},   // fullwidth forms
	{0xFFE0, 0xFFE6},   // fullwidth signs
	{0x20000, 0x2FFFD}, // supplementary ideographic plane
	{0x30000, 0x3FFFD}, // tertiary ideographic plane
}

func isEastAsianWide(cp rune) bool {
	lo, hi := 0, len(wideRanges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := wideRanges[mid]
		switch {
		case cp < r[0]:
			hi = mid - 1
		case cp > r[1]:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

package vqonsole

// Rendition is a bitmask of text attributes held in a cell or in the
// screen's current attribute state.
type Rendition uint8

// Rendition bits. CURSOR is applied only when producing
// a snapshot — it is never stored in the live grid.
const (
	RenditionBold Rendition = 1 << iota
	RenditionBlink
	RenditionUnderline
	RenditionReverse
	RenditionCursor
)

// Palette layout: TABLE_COLORS = 2*(2+8) = 20 entries.
const (
	TableColors = 2 * (2 + 8)

	// Reserved default fg/bg slots.
	ColorDefaultFg = 0
	ColorDefaultBg = 1

	// ANSI normal colors occupy 2..9, bright variants 10..17; the
	// bright half sits one block of BaseColors above normal so SGR
	// 90-97 and the bold toggle share one offset. 18..19 are spare
	// reserved slots.
	colorAnsiBase = 2
	// BaseColors is the offset toggled by the BOLD rendition bit when
	// deriving the effective foreground color, and the offset
	// applied by the bright bit in setForeColor/setBackColor.
	BaseColors = 8
)

// PaletteEntry is one slot of the color table: an RGB triple plus flags
// describing how a display should treat it.
type PaletteEntry struct {
	R, G, B     uint8
	Transparent bool
	Bold        bool
}

// Cell is a single styled grid position: a Unicode code point plus
// palette indices for foreground/background and a rendition bitmask.
// A Cell with Codepoint == 0 is a "trailing slot" written after a wide
// (2-column) glyph; it always carries that glyph's colors and is
// skipped by text-extracting consumers.
type Cell struct {
	Codepoint uint32
	Fg        uint8
	Bg        uint8
	Rendition Rendition
}

// DefaultCell is a blank cell using the default palette slots and no
// rendition — the fill value for clears, new rows, and resize growth.
var DefaultCell = Cell{Codepoint: ' ', Fg: ColorDefaultFg, Bg: ColorDefaultBg}

// Equal reports componentwise equality.
func (c Cell) Equal(o Cell) bool {
	return c.Codepoint == o.Codepoint && c.Fg == o.Fg && c.Bg == o.Bg && c.Rendition == o.Rendition
}

// IsSpace reports whether the cell holds a space character.
func (c Cell) IsSpace() bool {
	return isSpaceRune(rune(c.Codepoint))
}

func isSpaceRune(r rune) bool {
	return r == ' '
}

// CharClass classifies a rune for word-selection purposes: spaces
// form their own class, "word characters" (alphanumerics
// plus the configurable word-character set) form another, and every
// other rune shares one remaining class, so any run of punctuation is
// one word regardless of which punctuation characters it mixes.
type CharClass rune

const (
	classSpace CharClass = ' '
	classWord  CharClass = 'a'
	// classOther is the class shared by every character that is
	// neither whitespace nor a word character. All such characters
	// compare equal to each other.
	classOther CharClass = 1
)

// DefaultWordCharacters is the default extra word-character set used
// by CharClassOf.
const DefaultWordCharacters = ":@-./_~"

// CharClassOf returns the class of r given an additional set of
// word characters (beyond alphanumerics). Two runes are "the same
// word" iff CharClassOf returns equal values for both.
func CharClassOf(r rune, wordCharacters string) CharClass {
	switch {
	case isSpaceRune(r):
		return classSpace
	case isAlnum(r) || containsRune(wordCharacters, r):
		return classWord
	default:
		return classOther
	}
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

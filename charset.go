package vqonsole

// charCodes is the VT100 code-page translation state for one screen:
// four G0..G3 charset slots, the slot currently selected (cuCs), and
// the graphic/pound/trans flags derived from the active designator.
// The Emulator keeps one charCodes per screen (primary, alternate).
type charCodes struct {
	charset [4]byte
	cuCs    int
	graphic bool
	pound   bool
	trans   [7]rune

	saGraphic bool
	saPound   bool
	saTrans   [7]rune
}

// defaultTrans is "[\]{|}~" read as code points, the identity
// translation used outside a national replacement character set.
var defaultTrans = [7]rune{'[', '\\', ']', '{', '|', '}', '~'}

// germanTrans and frenchTrans are the VT220 national replacement
// character sets selected by charset designators 'K' and 'R'.
var germanTrans = [7]rune{'Ä', 'Ö', 'Ü', 'ä', 'ö', 'ü', 'ß'}
var frenchTrans = [7]rune{'°', 'ç', '§', 'é', 'ù', 'è', '¨'}

func (c *charCodes) reset() {
	c.charset = [4]byte{'B', 'B', 'B', 'B'}
	c.cuCs = 0
	c.graphic = false
	c.pound = false
	c.trans = defaultTrans
	c.saGraphic = false
	c.saPound = false
	c.saTrans = defaultTrans
}

// setCharset records designator cs (e.g. '0', 'A', 'B', 'K', 'R') into
// slot n without activating it.
func (c *charCodes) setCharset(n int, cs byte) {
	c.charset[n&3] = cs
}

// useCharset activates slot n, recomputing the derived graphic/pound/
// trans flags from its designator.
func (c *charCodes) useCharset(n int) {
	c.cuCs = n & 3
	designator := c.charset[c.cuCs]
	c.graphic = designator == '0'
	c.pound = designator == 'A'
	switch designator {
	case 'K':
		c.trans = germanTrans
	case 'R':
		c.trans = frenchTrans
	default:
		c.trans = defaultTrans
	}
}

func (c *charCodes) setAndUseCharset(n int, cs byte) {
	c.setCharset(n, cs)
	c.useCharset(n)
}

func (c *charCodes) save() {
	c.saGraphic = c.graphic
	c.saPound = c.pound
	c.saTrans = c.trans
}

func (c *charCodes) restore() {
	c.graphic = c.saGraphic
	c.pound = c.saPound
	c.trans = c.saTrans
}

// apply runs a decoded code point through the VT100 graphics/pound/
// national-replacement filter for the active charset.
func (c *charCodes) apply(cp rune) rune {
	switch {
	case c.graphic && cp >= 0x5F && cp <= 0x7E:
		return vt100Graphics[cp-0x5F]
	case c.pound && cp == '#':
		return 0xA3 // £
	case cp >= '[' && cp <= ']':
		return c.trans[cp-'[']
	case cp >= '{' && cp <= '~':
		return c.trans[cp-'{'+3]
	default:
		return cp
	}
}

// vt100Graphics is the DEC Special Graphics charset (line drawing,
// block/scan-line glyphs) substituted for 0x5F..0x7E when a screen's
// G-set is designated '0'. This is the standard mapping shared by
// xterm, rxvt, and most VT100-compatible emulators, not specific to
// any one example repo.
var vt100Graphics = [32]rune{
	0x00A0, // _ blank
	'◆',    // `
	'▒',    // a
	0x2409, // b SYMBOL FOR HORIZONTAL TABULATION
	0x240C, // c SYMBOL FOR FORM FEED
	0x240D, // d SYMBOL FOR CARRIAGE RETURN
	0x240A, // e SYMBOL FOR LINE FEED
	'°',    // f
	'±',    // g
	0x2424, // h SYMBOL FOR NEWLINE
	0x240B, // i SYMBOL FOR VERTICAL TABULATION
	'┘',    // j
	'┐',    // k
	'┌',    // l
	'└',    // m
	'┼',    // n
	0x23BA, // o scan line 1
	0x23BB, // p scan line 3
	'─',    // q
	0x23BC, // r scan line 7
	0x23BD, // s scan line 9
	'├',    // t
	'┤',    // u
	'┴',    // v
	'┬',    // w
	'│',    // x
	'≤',    // y
	'≥',    // z
	'π',    // {
	'≠',    // |
	'£',    // }
	'·',    // ~
}

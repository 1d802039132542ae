package vqonsole

// DefaultPalette is the stock 20-entry color table:
// index 0 is the default foreground, 1 the default background, 2..9
// the ANSI normal colors, 10..17 the ANSI bright colors (reached by
// the BaseColors=8 offset), and 18/19 spare reserved slots.
var DefaultPalette = [TableColors]PaletteEntry{
	0:  {R: 0xe0, G: 0xe0, B: 0xe0},             // default foreground
	1:  {R: 0x00, G: 0x00, B: 0x00},             // default background
	2:  {R: 0x00, G: 0x00, B: 0x00},             // black
	3:  {R: 0xb2, G: 0x18, B: 0x18},             // red
	4:  {R: 0x18, G: 0xb2, B: 0x18},             // green
	5:  {R: 0xb2, G: 0x68, B: 0x18},             // yellow
	6:  {R: 0x18, G: 0x18, B: 0xb2},             // blue
	7:  {R: 0xb2, G: 0x18, B: 0xb2},             // magenta
	8:  {R: 0x18, G: 0xb2, B: 0xb2},             // cyan
	9:  {R: 0xb2, G: 0xb2, B: 0xb2},             // white
	10: {R: 0x68, G: 0x68, B: 0x68, Bold: true}, // bright black
	11: {R: 0xff, G: 0x54, B: 0x54, Bold: true}, // bright red
	12: {R: 0x54, G: 0xff, B: 0x54, Bold: true}, // bright green
	13: {R: 0xff, G: 0xff, B: 0x54, Bold: true}, // bright yellow
	14: {R: 0x54, G: 0x54, B: 0xff, Bold: true}, // bright blue
	15: {R: 0xff, G: 0x54, B: 0xff, Bold: true}, // bright magenta
	16: {R: 0x54, G: 0xff, B: 0xff, Bold: true}, // bright cyan
	17: {R: 0xff, G: 0xff, B: 0xff, Bold: true}, // bright white
	18: {R: 0xe0, G: 0xe0, B: 0xe0},             // reserved
	19: {R: 0x00, G: 0x00, B: 0x00},             // reserved
}

// ColorIndexFromANSI maps an ANSI 3-bit color (0..7), optionally
// combined with the bright bit (8), to a palette index.
func ColorIndexFromANSI(i int) uint8 {
	idx := (i & 7) + colorAnsiBase
	if i&8 != 0 {
		idx += BaseColors
	}
	return uint8(idx)
}

package vqonsole

// Token is the decoder's output: a single machine word identifying the
// shape of a decoded escape sequence, packed as `(T:8) | (A:8<<8) |
// (N:16<<16)`. T selects which of the ten token shapes this is; A and
// N carry the two small parameters the shape needs baked into the
// token itself, so the dispatch switch can match on literal
// constants. Larger or variable parameters travel alongside the token
// as dispatch's (p, q) arguments instead.
type Token uint32

const (
	tyChr    uint8 = 0
	tyCtl    uint8 = 1
	tyEsc    uint8 = 2
	tyEscCS  uint8 = 3
	tyEscDE  uint8 = 4
	tyCsiPS  uint8 = 5
	tyCsiPN  uint8 = 6
	tyCsiPR  uint8 = 7
	tyVt52   uint8 = 8
	tyCsiPG  uint8 = 9
)

func makeToken(t uint8, a byte, n uint16) Token {
	return Token(uint32(t) | uint32(a)<<8 | uint32(n)<<16)
}

// tokChr is the sole TY_CHR token; the code point travels as Dispatch's p argument.
var tokChr = makeToken(tyChr, 0, 0)

func tokCtl(a byte) Token       { return makeToken(tyCtl, a, 0) }
func tokEsc(a byte) Token       { return makeToken(tyEsc, a, 0) }
func tokEscCS(a, b byte) Token  { return makeToken(tyEscCS, a, uint16(b)) }
func tokEscDE(a byte) Token     { return makeToken(tyEscDE, a, 0) }
func tokCsiPS(a byte, n int) Token { return makeToken(tyCsiPS, a, uint16(n)) }
func tokCsiPN(a byte) Token     { return makeToken(tyCsiPN, a, 0) }
func tokCsiPR(a byte, n int) Token { return makeToken(tyCsiPR, a, uint16(n)) }
func tokVt52(a byte) Token      { return makeToken(tyVt52, a, 0) }
func tokCsiPG(a byte) Token     { return makeToken(tyCsiPG, a, 0) }

// Kind returns the token's shape selector (the low 8 bits).
func (t Token) Kind() uint8 { return uint8(t) }

// A returns the token's embedded final-byte/identifying parameter.
func (t Token) A() byte { return byte(t >> 8) }

// N returns the token's embedded numeric parameter, for the shapes
// that bake one in (CSI_PS, CSI_PR, ESC_CS).
func (t Token) N() uint16 { return uint16(t >> 16) }

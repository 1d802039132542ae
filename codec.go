package vqonsole

import "unicode/utf8"

// codec turns the raw PTY byte stream into code points, selectable
// between a locale (byte-is-codepoint) mode and UTF-8 (ESC % @ / ESC
// % G). A malformed UTF-8 lead byte or an overlong pending buffer
// emits U+FFFD and resynchronizes by dropping one byte.
type codec struct {
	utf8    bool
	pending []byte
}

func (c *codec) setCodec(n int) {
	c.utf8 = n == 1
	c.pending = c.pending[:0]
}

// decode feeds one byte and reports the decoded rune plus whether a
// full code point is now available; callers should keep feeding bytes
// while ok is false.
func (c *codec) decode(b byte) (rune, bool) {
	if !c.utf8 {
		return rune(b), true
	}
	c.pending = append(c.pending, b)
	if !utf8.FullRune(c.pending) {
		if len(c.pending) >= utf8.UTFMax {
			c.pending = c.pending[1:]
			return utf8.RuneError, true
		}
		return 0, false
	}
	r, size := utf8.DecodeRune(c.pending)
	c.pending = c.pending[size:]
	return r, true
}

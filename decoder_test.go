package vqonsole

import "testing"

// TestDecoderOSCTitleChange: ESC ] Ps ; Pt BEL dispatches a title
// change and resets the token buffer so subsequent bytes are
// interpreted fresh.
func TestDecoderOSCTitleChange(t *testing.T) {
	var gotPs int
	var gotPt string
	e := NewEmulator(5, 10, WithEmulatorTitleChanged(func(ps int, pt string) {
		gotPs, gotPt = ps, pt
	}))

	e.OnRcvBlock([]byte("\x1b]2;my title\x07"))

	if gotPs != 2 || gotPt != "my title" {
		t.Fatalf("changeTitle(%d, %q), want (2, %q)", gotPs, gotPt, "my title")
	}

	// The OSC's BEL must not itself ring the bell or leak into the
	// grid as a printable character.
	if e.Current().image[0][0].Codepoint != 0 && e.Current().image[0][0].Codepoint != ' ' {
		t.Errorf("OSC body leaked onto the grid: %+v", e.Current().image[0][0])
	}
}

// TestDecoderCancelResetsTokenBuffer: CAN aborts an in-progress
// escape sequence (emitting the VT100 checkerboard error glyph), and
// the byte that follows is reinterpreted from the ground state rather
// than as a continuation of the aborted CSI.
func TestDecoderCancelResetsTokenBuffer(t *testing.T) {
	e := NewEmulator(5, 10)
	// Start a CSI, cancel it with CAN, then print 'A' — the aborted
	// "\x1b[1" must not swallow the following character or treat 'A'
	// as its final byte.
	e.OnRcvBlock([]byte("\x1b[1\x18A"))

	scr := e.Current()
	if scr.image[0][0].Codepoint != 0x2592 {
		t.Errorf("expected CAN's error glyph at (0,0), got %+v", scr.image[0][0])
	}
	if scr.image[0][1].Codepoint != 'A' {
		t.Errorf("expected 'A' printed right after the cancelled CSI, got %+v", scr.image[0][1])
	}
}

// TestDecoderMultipleCSIArgsDispatchPerArg: each argument of a CSI
// sequence dispatches its own token — exercised via SGR's `1;31`
// setting bold and red in one sequence.
func TestDecoderMultipleCSIArgsDispatchPerArg(t *testing.T) {
	e := NewEmulator(5, 10)
	e.OnRcvBlock([]byte("\x1b[1;31mZ"))

	cell := e.Current().image[0][0]
	if cell.Codepoint != 'Z' {
		t.Fatalf("expected 'Z', got %+v", cell)
	}
	if cell.Fg != 11 {
		t.Errorf("fg = %d, want 11 (bold-toggled red)", cell.Fg)
	}
}

// TestDecoderCSIPrivateModeSetsAlternateScreen is a second look at the
// CSI_PR guard (s[2]=='?') via DECSET 1049, independent of the
// TestEmulatorAlternateScreen end-to-end scenario.
func TestDecoderCSIPrivateModeSetsAlternateScreen(t *testing.T) {
	e := NewEmulator(5, 10)
	e.OnRcvBlock([]byte("\x1b[?1049h"))
	if e.Current() != e.Alternate() {
		t.Fatalf("expected DECSET 1049 to switch to the alternate screen")
	}
}

// TestDecoderUnknownFinalByteIsAbsorbed: an unrecognized CSI final
// byte is logged and dropped, never propagated as a panic or a stray
// character.
func TestDecoderUnknownFinalByteIsAbsorbed(t *testing.T) {
	e := NewEmulator(5, 10)
	e.OnRcvBlock([]byte("\x1b[5zB"))

	if e.Current().image[0][0].Codepoint != 'B' {
		t.Errorf("expected 'B' printed after unknown CSI final byte, got %+v", e.Current().image[0][0])
	}
}

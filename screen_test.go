package vqonsole

import "testing"

func TestNewScreenDefaults(t *testing.T) {
	s := NewScreen(24, 80, nil)
	if s.Lines() != 24 || s.Columns() != 80 {
		t.Fatalf("got %dx%d, want 24x80", s.Lines(), s.Columns())
	}
	if !s.ModeSet(ModeWrap) || !s.ModeSet(ModeCursor) {
		t.Errorf("expected Wrap and Cursor modes set after reset")
	}
	if s.CursorX() != 0 || s.CursorY() != 0 {
		t.Errorf("expected cursor at origin, got (%d,%d)", s.CursorX(), s.CursorY())
	}
}

func TestBasicEcho(t *testing.T) {
	s := NewScreen(4, 10, NewHistory(5))
	s.ShowCharacter('h')
	s.ShowCharacter('i')

	if s.image[0][0].Codepoint != 'h' || s.image[0][1].Codepoint != 'i' {
		t.Fatalf("expected 'hi' on row 0")
	}
	if s.CursorX() != 2 || s.CursorY() != 0 {
		t.Errorf("cursor = (%d,%d), want (2,0)", s.CursorX(), s.CursorY())
	}
	if s.history.Lines() != 0 {
		t.Errorf("expected no history entries, got %d", s.history.Lines())
	}
}

func TestCursorBoundsStayInRange(t *testing.T) {
	s := NewScreen(5, 10, nil)
	s.CursorUp(10)
	if s.CursorY() != 0 {
		t.Errorf("cursorUp(10) at row 0 should stay at row 0, got %d", s.CursorY())
	}
	s.CursorDown(100)
	if s.CursorY() != s.lines-1 {
		t.Errorf("cursorDown should clamp to last row, got %d", s.CursorY())
	}
	s.CursorLeft(100)
	if s.CursorX() != 0 {
		t.Errorf("cursorLeft should clamp to 0, got %d", s.CursorX())
	}
	s.CursorRight(100)
	if s.CursorX() != s.columns-1 {
		t.Errorf("cursorRight should clamp to columns-1, got %d", s.CursorX())
	}
}

func TestSetCursorYNormalizesZero(t *testing.T) {
	s := NewScreen(5, 10, nil)
	s.SetCursorY(0)
	y0 := s.CursorY()
	s.SetCursorY(1)
	if s.CursorY() != y0 {
		t.Errorf("setCursorY(0) should equal setCursorY(1)")
	}
}

func TestSetMarginsRejectsInvalidRange(t *testing.T) {
	s := NewScreen(10, 10, nil)
	s.SetMargins(1, 10)
	if s.marginTop != 0 || s.marginBottom != 9 {
		t.Fatalf("unexpected margins after valid call: %d..%d", s.marginTop, s.marginBottom)
	}
	s.SetMargins(5, 3) // invalid: bot < top
	if s.marginTop != 0 || s.marginBottom != 9 {
		t.Errorf("invalid SetMargins should leave margins unchanged, got %d..%d", s.marginTop, s.marginBottom)
	}
}

func TestIndexAppendsExactlyOneHistoryLineAtBottomMargin(t *testing.T) {
	s := NewScreen(3, 4, NewHistory(5))
	s.curY = s.marginBottom
	s.Index()
	if s.history.Lines() != 1 {
		t.Fatalf("expected exactly one history line, got %d", s.history.Lines())
	}
}

func TestScrollIntoHistory(t *testing.T) {
	s := NewScreen(3, 4, NewHistory(5))
	feed := "aaaa\nbbbb\ncccc\ndddd\n"
	for _, r := range feed {
		if r == '\n' {
			s.curX = 0
			s.Index()
			continue
		}
		s.ShowCharacter(r)
	}

	if s.history.Lines() != 2 {
		t.Fatalf("expected 2 history lines, got %d", s.history.Lines())
	}
	if got := textOf(s.history.GetCells(0, 0, -1)); got != "aaaa" {
		t.Errorf("history line 0 = %q, want %q", got, "aaaa")
	}
	if got := textOf(s.history.GetCells(1, 0, -1)); got != "bbbb" {
		t.Errorf("history line 1 = %q, want %q", got, "bbbb")
	}
	if s.CursorY() != 2 {
		t.Errorf("expected cursor on row 2, got %d", s.CursorY())
	}
}

func TestSGRBoldRedTogglesBrightHalf(t *testing.T) {
	s := NewScreen(4, 10, nil)
	s.SetRendition(RenditionBold)
	s.SetForeColor(1) // ANSI red, not bright
	s.ShowCharacter('A')

	cell := s.image[0][0]
	if cell.Fg != 11 {
		t.Errorf("bold red fg = %d, want 11", cell.Fg)
	}
	// Bold is folded into the bright-half fg index; the effective
	// rendition stored in the cell carries only UNDERLINE|BLINK.
	if cell.Rendition != 0 {
		t.Errorf("stored rendition = %v, want 0 (bold lives in the fg index)", cell.Rendition)
	}
}

func TestClearToEntireLineResetsRenditionAndColor(t *testing.T) {
	s := NewScreen(5, 10, nil)
	s.SetRendition(RenditionBold)
	s.SetForeColor(1)
	s.ShowCharacter('A')
	s.SetDefaultRendition()
	s.ClearEntireLine()

	for x := 0; x < s.columns; x++ {
		c := s.image[0][x]
		if !c.IsSpace() || c.Rendition != 0 || c.Fg != ColorDefaultFg || c.Bg != ColorDefaultBg {
			t.Fatalf("cell %d not cleared to default: %+v", x, c)
		}
	}
}

func TestSetRenditionThenResetIsIdempotentOnOtherBits(t *testing.T) {
	s := NewScreen(4, 4, nil)
	s.SetRendition(RenditionBold | RenditionUnderline)
	s.ResetRendition(RenditionBold)
	if s.curRe&RenditionBold != 0 {
		t.Errorf("expected BOLD cleared")
	}
	if s.curRe&RenditionUnderline == 0 {
		t.Errorf("expected UNDERLINE left untouched")
	}
}

func TestSaveRestoreCursorRoundTrip(t *testing.T) {
	s := NewScreen(10, 10, nil)
	s.SetCursorYX(3, 4)
	s.SetRendition(RenditionBold)
	s.SetForeColor(2)
	s.SaveCursor()

	s.SetCursorYX(9, 9)
	s.SetDefaultRendition()
	s.RestoreCursor()

	if s.CursorX() != 3 || s.CursorY() != 2 {
		t.Errorf("cursor after restore = (%d,%d), want (3,2)", s.CursorX(), s.CursorY())
	}
	if s.curRe&RenditionBold == 0 {
		t.Errorf("expected BOLD restored")
	}
}

func TestSaveRestoreModeRoundTrip(t *testing.T) {
	s := NewScreen(10, 10, nil)
	s.SaveMode(ModeInsert)
	s.SetMode(ModeInsert)
	s.RestoreMode(ModeInsert)
	if s.ModeSet(ModeInsert) {
		t.Errorf("expected ModeInsert restored to its saved (false) value")
	}
}

func TestResetModeIdempotent(t *testing.T) {
	s := NewScreen(10, 10, nil)
	s.ResetMode(ModeInsert)
	s.ResetMode(ModeInsert)
	if s.ModeSet(ModeInsert) {
		t.Errorf("ModeInsert should remain unset")
	}
}

func TestClearSelectionFromSentinelIsNoop(t *testing.T) {
	s := NewScreen(10, 10, nil)
	s.ClearSelection()
	if s.hasSelection() {
		t.Errorf("expected no selection")
	}
}

func TestSelectionOrdersTopLeftAndBottomRight(t *testing.T) {
	s := NewScreen(10, 10, nil)
	s.SetSelBeginXY(5, 2)
	s.SetSelExtendXY(1, 1)
	if !s.selTopLeft.LessEqual(s.selBottomRight) {
		t.Fatalf("selTopLeft must sort before selBottomRight, got %+v .. %+v", s.selTopLeft, s.selBottomRight)
	}
}

func TestSelectedTextJoinsRowsWithSpaceByDefault(t *testing.T) {
	s := NewScreen(2, 5, nil)
	for i, r := range "hello" {
		s.image[0][i] = Cell{Codepoint: uint32(r)}
	}
	for i, r := range "world" {
		s.image[1][i] = Cell{Codepoint: uint32(r)}
	}
	s.SetSelBeginXY(0, 0)
	s.SetSelExtendXY(4, 1)

	if got := s.SelectedText(false); got != "hello world" {
		t.Errorf("SelectedText = %q, want %q", got, "hello world")
	}
	if got := s.SelectedText(true); got != "hello\nworld" {
		t.Errorf("SelectedText(preserve) = %q, want %q", got, "hello\nworld")
	}
}

func TestSelectedTextSkipsSeparatorAcrossWrappedLine(t *testing.T) {
	s := NewScreen(2, 5, nil)
	for i, r := range "hello" {
		s.image[0][i] = Cell{Codepoint: uint32(r)}
	}
	s.lineWrapped[0] = true
	for i, r := range "world" {
		s.image[1][i] = Cell{Codepoint: uint32(r)}
	}
	s.SetSelBeginXY(0, 0)
	s.SetSelExtendXY(4, 1)

	if got := s.SelectedText(true); got != "helloworld" {
		t.Errorf("SelectedText across wrap = %q, want %q", got, "helloworld")
	}
}

func TestResizePreservesTopLeftRectangle(t *testing.T) {
	s := NewScreen(5, 5, nil)
	for i, r := range "ABCDE" {
		s.image[0][i] = Cell{Codepoint: uint32(r)}
	}
	s.Resize(3, 3)

	if s.Lines() != 3 || s.Columns() != 3 {
		t.Fatalf("got %dx%d, want 3x3", s.Lines(), s.Columns())
	}
	for i, want := range []rune{'A', 'B', 'C'} {
		if rune(s.image[0][i].Codepoint) != want {
			t.Errorf("cell %d = %c, want %c", i, s.image[0][i].Codepoint, want)
		}
	}
}

func TestResizeClampsCursorAndClearsSelection(t *testing.T) {
	s := NewScreen(10, 10, nil)
	s.SetCursorYX(10, 10)
	s.SetSelBeginXY(0, 0)
	s.SetSelExtendXY(1, 1)

	s.Resize(4, 4)

	if s.CursorX() >= 4 || s.CursorY() >= 4 {
		t.Errorf("cursor not clamped after resize: (%d,%d)", s.CursorX(), s.CursorY())
	}
	if s.hasSelection() {
		t.Errorf("expected selection cleared after resize")
	}
}

func TestWideCharWrapsAtRowEnd(t *testing.T) {
	s := NewScreen(2, 4, NewHistory(5))
	cp := rune(0x4E2D) // 中, width 2
	for i := 0; i < 4; i++ {
		s.ShowCharacter(cp)
	}

	if s.image[0][0].Codepoint != uint32(cp) || s.image[0][1].Codepoint != 0 {
		t.Errorf("row 0 first glyph malformed: %+v %+v", s.image[0][0], s.image[0][1])
	}
	if s.image[0][2].Codepoint != uint32(cp) || s.image[0][3].Codepoint != 0 {
		t.Errorf("row 0 second glyph malformed: %+v %+v", s.image[0][2], s.image[0][3])
	}
	if !s.lineWrapped[0] {
		t.Errorf("expected row 0 wrap flag set")
	}
	if s.image[1][0].Codepoint != uint32(cp) || s.image[1][1].Codepoint != 0 {
		t.Errorf("row 1 first glyph malformed: %+v %+v", s.image[1][0], s.image[1][1])
	}
}

func TestCookedImageSnapshotIndependence(t *testing.T) {
	s := NewScreen(4, 10, nil)
	s.ShowCharacter('x')
	a := s.CookedImage()
	s.ShowCharacter('y')
	b := s.CookedImage()

	if a[0][0].Codepoint != 'x' {
		t.Fatalf("first snapshot mutated: %+v", a[0][0])
	}
	if b[0][1].Codepoint != 'y' {
		t.Fatalf("second snapshot missing new write: %+v", b[0][1])
	}
}

package vqonsole

import "strings"

// noSelection is the sentinel point meaning "no selection".
var noSelection = Point{Y: -1, X: -1}

func (s *Screen) hasSelection() bool {
	return s.selTopLeft != noSelection
}

// ClearSelection resets the selection to its sentinel, no-op state.
func (s *Screen) ClearSelection() {
	s.selBegin = noSelection
	s.selTopLeft = noSelection
	s.selBottomRight = noSelection
}

// SetBusySelecting records whether the display is actively dragging a
// selection.
func (s *Screen) SetBusySelecting(busy bool) { s.busySelecting = busy }
func (s *Screen) BusySelecting() bool        { return s.busySelecting }

func clickColumn(x, columns int) int {
	if x == columns {
		return columns - 1
	}
	return x
}

// SetSelBeginXY starts a selection at the given viewport position.
func (s *Screen) SetSelBeginXY(x, y int) {
	histLines, historyRows := s.historyViewRows()
	p := Point{Y: s.globalYForViewportRow(y, histLines, historyRows), X: clickColumn(x, s.columns)}
	s.selBegin = p
	s.selTopLeft = p
	s.selBottomRight = p
	s.busySelecting = true
}

// SetSelExtendXY extends the in-progress selection to the given
// viewport position, keeping selTopLeft as the lexicographically
// lesser endpoint.
func (s *Screen) SetSelExtendXY(x, y int) {
	histLines, historyRows := s.historyViewRows()
	p := Point{Y: s.globalYForViewportRow(y, histLines, historyRows), X: clickColumn(x, s.columns)}
	if p.Less(s.selBegin) {
		s.selTopLeft, s.selBottomRight = p, s.selBegin
	} else {
		s.selTopLeft, s.selBottomRight = s.selBegin, p
	}
}

// TestIsSelected reports whether the viewport position (x, y) lies
// within the current selection.
func (s *Screen) TestIsSelected(x, y int) bool {
	if !s.hasSelection() {
		return false
	}
	histLines, historyRows := s.historyViewRows()
	p := Point{Y: s.globalYForViewportRow(y, histLines, historyRows), X: x}
	return s.selTopLeft.LessEqual(p) && p.LessEqual(s.selBottomRight)
}

// liveGlobalY maps a live screen row (not viewport-scrolled) to the
// combined coordinate space, for editing operations that invalidate
// or translate a selection as the underlying cells change.
func (s *Screen) liveGlobalY(y int) int {
	histLines := 0
	if s.history != nil {
		histLines = s.history.Lines()
	}
	return y + histLines
}

// overlapSelection reports whether the screen-relative rectangle
// [(ay,ax), (by,bx)] intersects the current selection; clearing and
// scrolling code uses it to invalidate a selection whose cells are
// about to change.
func (s *Screen) overlapSelection(ay, ax, by, bx int) bool {
	if !s.hasSelection() {
		return false
	}
	a := Point{Y: s.liveGlobalY(ay), X: ax}
	b := Point{Y: s.liveGlobalY(by), X: bx}
	return subPoints(a, s.selBottomRight, s.columns) <= 0 &&
		subPoints(s.selTopLeft, b, s.columns) <= 0
}

// translateSelectionOnScroll keeps selection endpoints attached to
// their content when rows [top..bot] are shifted by delta (negative
// for ScrollUp, positive for ScrollDown); endpoints on rows whose
// content is shifted out of [top..bot] are invalidated.
func (s *Screen) translateSelectionOnScroll(top, bot, delta int) {
	if !s.hasSelection() {
		return
	}
	gTop, gBot := s.liveGlobalY(top), s.liveGlobalY(bot)

	var vacLo, vacHi int
	if delta < 0 {
		vacLo, vacHi = gTop, gTop-delta-1
	} else {
		vacLo, vacHi = gBot-delta+1, gBot
	}

	translate := func(p *Point) bool {
		if p.Y < gTop || p.Y > gBot {
			return true
		}
		if p.Y >= vacLo && p.Y <= vacHi {
			return false
		}
		*p = addPoints(*p, delta*s.columns, s.columns)
		return true
	}

	ok := translate(&s.selBegin)
	ok = translate(&s.selTopLeft) && ok
	ok = translate(&s.selBottomRight) && ok
	if !ok {
		s.ClearSelection()
	}
}

// SelectedText extracts the selection's text: it walks the selection
// across the history/screen boundary, joining rows with a newline or
// space depending on preserveLineBreak unless the row's wrap flag
// says the next row is a continuation, and trimming trailing
// whitespace from each emitted line.
func (s *Screen) SelectedText(preserveLineBreak bool) string {
	if !s.hasSelection() {
		return ""
	}
	histLines := 0
	if s.history != nil {
		histLines = s.history.Lines()
	}

	var out strings.Builder
	for y := s.selTopLeft.Y; y <= s.selBottomRight.Y; y++ {
		var row []Cell
		var wrapped bool
		if y < histLines {
			row = s.history.GetCells(y, 0, -1)
			wrapped = s.history.IsWrapped(y)
		} else {
			sy := y - histLines
			if sy < 0 || sy >= s.lines {
				continue
			}
			row = s.image[sy]
			wrapped = s.lineWrapped[sy]
		}

		startX := 0
		if y == s.selTopLeft.Y {
			startX = s.selTopLeft.X
		}
		endX := len(row)
		if y == s.selBottomRight.Y && s.selBottomRight.X+1 < endX {
			endX = s.selBottomRight.X + 1
		}

		var line strings.Builder
		for x := startX; x < endX; x++ {
			if row[x].Codepoint == 0 {
				continue // wide-char trailing slot
			}
			line.WriteRune(rune(row[x].Codepoint))
		}
		out.WriteString(strings.TrimRight(line.String(), " \t"))

		if y < s.selBottomRight.Y && !wrapped {
			if preserveLineBreak {
				out.WriteByte('\n')
			} else {
				out.WriteByte(' ')
			}
		}
	}
	return out.String()
}

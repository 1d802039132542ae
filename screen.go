package vqonsole

// Mode indexes one of the six per-screen boolean modes.
type Mode int

const (
	ModeOrigin Mode = iota
	ModeWrap
	ModeInsert
	ModeScreen
	ModeCursor
	ModeNewLine
	modeCount
)

// Screen is a rectangular grid of styled cells with cursor, margins,
// modes, tab stops, and a selection region, plus a handle to a shared
// History. Scrolling is bounded by the DECSTBM margins; a full-screen
// scroll additionally feeds the outgoing top line to the history.
type Screen struct {
	lines, columns int

	image       [][]Cell
	lineWrapped []bool

	curX, curY int
	curFg      uint8
	curBg      uint8
	curRe      Rendition

	effFg uint8
	effBg uint8
	effRe Rendition

	saveCurX, saveCurY int
	saveCurFg          uint8
	saveCurBg          uint8
	saveCurRe          Rendition

	marginTop, marginBottom int

	modes      [modeCount]bool
	savedModes [modeCount]bool

	tabs *tabStops

	history   *History
	histCursor int

	selBegin, selTopLeft, selBottomRight Point
	busySelecting                        bool

	wordCharacters string
}

// NewScreen creates a screen of the given size bound to hist, which
// may be nil for a screen with no scrollback (the alternate screen).
func NewScreen(lines, columns int, hist *History) *Screen {
	s := &Screen{
		lines:          lines,
		columns:        columns,
		history:        hist,
		wordCharacters: DefaultWordCharacters,
	}
	s.image = make([][]Cell, lines)
	s.lineWrapped = make([]bool, lines)
	for y := range s.image {
		s.image[y] = newBlankRow(columns, DefaultCell.Fg, DefaultCell.Bg, 0)
	}
	s.tabs = newTabStops(columns)
	s.Reset()
	return s
}

func newBlankRow(columns int, fg, bg uint8, re Rendition) []Cell {
	row := make([]Cell, columns)
	for i := range row {
		row[i] = Cell{Codepoint: ' ', Fg: fg, Bg: bg, Rendition: re}
	}
	return row
}

// Reset restores modes, margins, rendition, and cursor to their
// power-on defaults.
func (s *Screen) Reset() {
	s.curX, s.curY = 0, 0
	s.curFg, s.curBg, s.curRe = ColorDefaultFg, ColorDefaultBg, 0
	s.marginTop, s.marginBottom = 0, s.lines-1
	for i := range s.modes {
		s.modes[i] = false
	}
	s.modes[ModeWrap] = true
	s.modes[ModeCursor] = true
	s.savedModes = s.modes
	s.tabs.reset()
	s.ClearSelection()
	s.histCursor = 0
	s.updateEffectiveRendition()
}

func (s *Screen) Lines() int   { return s.lines }
func (s *Screen) Columns() int { return s.columns }
func (s *Screen) CursorX() int { return s.curX }
func (s *Screen) CursorY() int { return s.curY }

// History returns the scrollback this screen appends to, or nil.
func (s *Screen) History() *History { return s.history }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Cursor motion -------------------------------------------------

func (s *Screen) inRegion() bool {
	return s.curY >= s.marginTop && s.curY <= s.marginBottom
}

func (s *Screen) CursorUp(n int) {
	if n < 1 {
		n = 1
	}
	lo := 0
	if s.inRegion() {
		lo = s.marginTop
	}
	s.curY = clamp(s.curY-n, lo, s.lines-1)
}

func (s *Screen) CursorDown(n int) {
	if n < 1 {
		n = 1
	}
	hi := s.lines - 1
	if s.inRegion() {
		hi = s.marginBottom
	}
	s.curY = clamp(s.curY+n, 0, hi)
}

func (s *Screen) CursorLeft(n int) {
	if n < 1 {
		n = 1
	}
	s.curX = clamp(s.curX-n, 0, s.columns-1)
}

func (s *Screen) CursorRight(n int) {
	if n < 1 {
		n = 1
	}
	s.curX = clamp(s.curX+n, 0, s.columns-1)
}

// SetCursorX sets the 1-based column x (0 normalizes to 1).
func (s *Screen) SetCursorX(x int) {
	if x == 0 {
		x = 1
	}
	s.curX = clamp(x-1, 0, s.columns-1)
}

// SetCursorY sets the 1-based row y (0 normalizes to 1), offset by
// marginTop when ModeOrigin is set.
func (s *Screen) SetCursorY(y int) {
	if y == 0 {
		y = 1
	}
	row := y - 1
	if s.modes[ModeOrigin] {
		row += s.marginTop
	}
	s.curY = clamp(row, 0, s.lines-1)
}

func (s *Screen) SetCursorYX(y, x int) {
	s.SetCursorY(y)
	s.SetCursorX(x)
}

// SaveCursor implements DECSC.
func (s *Screen) SaveCursor() {
	s.saveCurX, s.saveCurY = s.curX, s.curY
	s.saveCurFg, s.saveCurBg, s.saveCurRe = s.curFg, s.curBg, s.curRe
}

// RestoreCursor implements DECRC.
func (s *Screen) RestoreCursor() {
	s.curX, s.curY = s.saveCurX, s.saveCurY
	s.curFg, s.curBg, s.curRe = s.saveCurFg, s.saveCurBg, s.saveCurRe
	s.updateEffectiveRendition()
}

// --- Scroll region ---------------------------------------------------

// SetMargins accepts 1-based top/bottom (DECSTBM). A zero argument
// on either side normalizes to the full screen extent
// (top=1, bot=lines) rather than being treated as out of range.
func (s *Screen) SetMargins(top, bot int) {
	if top == 0 {
		top = 1
	}
	if bot == 0 {
		bot = s.lines
	}
	t, b := top-1, bot-1
	if !(t >= 0 && t < b && b < s.lines) {
		logf("WARN", "invalid margins top=%d bot=%d (lines=%d)", top, bot, s.lines)
		return
	}
	s.marginTop, s.marginBottom = t, b
	if s.modes[ModeOrigin] {
		s.curX, s.curY = 0, s.marginTop
	} else {
		s.curX, s.curY = 0, 0
	}
}

// Index moves the cursor down one row, scrolling the margin region at
// the bottom margin. When the region spans the whole screen, the
// outgoing top line is appended to History first.
func (s *Screen) Index() {
	if s.curY == s.marginBottom {
		if s.marginTop == 0 && s.marginBottom == s.lines-1 {
			s.addHistoryLine()
		}
		s.ScrollUp(s.marginTop, 1)
		return
	}
	if s.curY < s.lines-1 {
		s.curY++
	}
}

// ReverseIndex moves the cursor up one row, scrolling the margin
// region at the top margin. No history interaction.
func (s *Screen) ReverseIndex() {
	if s.curY == s.marginTop {
		s.ScrollDown(s.marginTop, 1)
		return
	}
	if s.curY > 0 {
		s.curY--
	}
}

// ScrollUp shifts rows [fromY+n .. marginBottom] up to
// [fromY .. marginBottom-n], filling the vacated bottom rows with
// space cells in the effective rendition.
func (s *Screen) ScrollUp(fromY, n int) {
	bot := s.marginBottom
	if n <= 0 || fromY > bot {
		return
	}
	if n > bot-fromY+1 {
		n = bot - fromY + 1
	}
	for y := fromY; y <= bot-n; y++ {
		s.image[y] = s.image[y+n]
		s.lineWrapped[y] = s.lineWrapped[y+n]
	}
	for y := bot - n + 1; y <= bot; y++ {
		s.image[y] = newBlankRow(s.columns, s.effFg, s.effBg, s.effRe)
		s.lineWrapped[y] = false
	}
	s.translateSelectionOnScroll(fromY, bot, -n)
}

// ScrollDown shifts rows [fromY .. marginBottom-n] down to
// [fromY+n .. marginBottom], filling the vacated top rows.
func (s *Screen) ScrollDown(fromY, n int) {
	bot := s.marginBottom
	if n <= 0 || fromY > bot {
		return
	}
	if n > bot-fromY+1 {
		n = bot - fromY + 1
	}
	for y := bot; y >= fromY+n; y-- {
		s.image[y] = s.image[y-n]
		s.lineWrapped[y] = s.lineWrapped[y-n]
	}
	for y := fromY; y < fromY+n; y++ {
		s.image[y] = newBlankRow(s.columns, s.effFg, s.effBg, s.effRe)
		s.lineWrapped[y] = false
	}
	s.translateSelectionOnScroll(fromY, bot, n)
}

// --- Editing ---------------------------------------------------------

func (s *Screen) InsertChars(n int) {
	if n < 1 {
		n = 1
	}
	row := s.image[s.curY]
	for x := s.columns - 1; x >= s.curX+n; x-- {
		row[x] = row[x-n]
	}
	for x := s.curX; x < s.curX+n && x < s.columns; x++ {
		row[x] = Cell{Codepoint: ' ', Fg: s.effFg, Bg: s.effBg, Rendition: s.effRe}
	}
}

func (s *Screen) DeleteChars(n int) {
	if n < 1 {
		n = 1
	}
	row := s.image[s.curY]
	for x := s.curX; x < s.columns-n; x++ {
		row[x] = row[x+n]
	}
	for x := s.columns - n; x < s.columns; x++ {
		if x >= 0 {
			row[x] = Cell{Codepoint: ' ', Fg: s.effFg, Bg: s.effBg, Rendition: s.effRe}
		}
	}
}

func (s *Screen) EraseChars(n int) {
	if n < 1 {
		n = 1
	}
	row := s.image[s.curY]
	for x := s.curX; x < s.curX+n && x < s.columns; x++ {
		row[x] = Cell{Codepoint: ' ', Fg: s.effFg, Bg: s.effBg, Rendition: s.effRe}
	}
}

func (s *Screen) InsertLines(n int) {
	if n < 1 {
		n = 1
	}
	s.ScrollDown(s.curY, n)
}

func (s *Screen) DeleteLines(n int) {
	if n < 1 {
		n = 1
	}
	s.ScrollUp(s.curY, n)
}

func (s *Screen) clearRange(y, x0, x1 int) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > s.columns {
		x1 = s.columns
	}
	if s.overlapSelection(y, x0, y, x1-1) {
		s.ClearSelection()
	}
	row := s.image[y]
	for x := x0; x < x1; x++ {
		row[x] = Cell{Codepoint: ' ', Fg: s.effFg, Bg: s.effBg, Rendition: 0}
	}
}

func (s *Screen) ClearToEndOfLine()   { s.clearRange(s.curY, s.curX, s.columns) }
func (s *Screen) ClearToBeginOfLine() { s.clearRange(s.curY, 0, s.curX+1) }
func (s *Screen) ClearEntireLine()    { s.clearRange(s.curY, 0, s.columns) }

func (s *Screen) ClearToEndOfScreen() {
	s.clearRange(s.curY, s.curX, s.columns)
	for y := s.curY + 1; y < s.lines; y++ {
		s.clearRange(y, 0, s.columns)
	}
}

func (s *Screen) ClearToBeginOfScreen() {
	s.clearRange(s.curY, 0, s.curX+1)
	for y := 0; y < s.curY; y++ {
		s.clearRange(y, 0, s.columns)
	}
}

func (s *Screen) ClearEntireScreen() {
	for y := 0; y < s.lines; y++ {
		s.clearRange(y, 0, s.columns)
	}
}

// HelpAlign fills the entire screen with 'E' (DECALN).
func (s *Screen) HelpAlign() {
	for y := 0; y < s.lines; y++ {
		row := s.image[y]
		for x := 0; x < s.columns; x++ {
			row[x] = Cell{Codepoint: 'E', Fg: ColorDefaultFg, Bg: ColorDefaultBg}
		}
		s.lineWrapped[y] = false
	}
	s.ClearSelection()
}

// --- Cell emission -----------------------------------------------------

// ShowCharacter writes cp at the cursor, advancing the cursor and
// wrapping or clamping as configured, inserting a zero-codepoint
// trailing cell for each extra column of a wide glyph.
func (s *Screen) ShowCharacter(cp rune) {
	w := RuneWidth(cp)
	if w <= 0 {
		return
	}
	if s.curX+w > s.columns {
		if s.modes[ModeWrap] {
			s.lineWrapped[s.curY] = true
			s.curX = 0
			s.Index()
		} else {
			s.curX = s.columns - w
		}
	}
	if s.modes[ModeInsert] {
		s.InsertChars(w)
	}
	if s.overlapSelection(s.curY, s.curX, s.curY, s.curX) {
		s.ClearSelection()
	}

	row := s.image[s.curY]
	row[s.curX] = Cell{Codepoint: uint32(cp), Fg: s.effFg, Bg: s.effBg, Rendition: s.effRe}
	s.curX++
	for extra := 1; extra < w; extra++ {
		if s.curX >= s.columns {
			break
		}
		row[s.curX] = Cell{Codepoint: 0, Fg: s.effFg, Bg: s.effBg, Rendition: s.effRe}
		s.curX++
	}
}

// --- Rendition ---------------------------------------------------------

func (s *Screen) SetRendition(re Rendition) {
	s.curRe |= re
	s.updateEffectiveRendition()
}

func (s *Screen) ResetRendition(re Rendition) {
	s.curRe &^= re
	s.updateEffectiveRendition()
}

// SetForeColor maps an ANSI color 0..15 to a palette index.
func (s *Screen) SetForeColor(i int) {
	s.curFg = ColorIndexFromANSI(i)
	s.updateEffectiveRendition()
}

func (s *Screen) SetBackColor(i int) {
	s.curBg = ColorIndexFromANSI(i)
	s.updateEffectiveRendition()
}

func (s *Screen) SetForeColorToDefault() {
	s.curFg = ColorDefaultFg
	s.updateEffectiveRendition()
}

func (s *Screen) SetBackColorToDefault() {
	s.curBg = ColorDefaultBg
	s.updateEffectiveRendition()
}

func (s *Screen) SetDefaultRendition() {
	s.curFg, s.curBg = ColorDefaultFg, ColorDefaultBg
	s.curRe = 0
	s.updateEffectiveRendition()
}

// updateEffectiveRendition recomputes (effFg, effBg, effRe) from the
// current rendition state: REVERSE swaps fg/bg, then BOLD toggles the
// bright half of the palette via BaseColors. The stored effective
// rendition keeps only UNDERLINE and BLINK.
func (s *Screen) updateEffectiveRendition() {
	s.effRe = s.curRe & (RenditionUnderline | RenditionBlink)
	fg, bg := s.curFg, s.curBg
	if s.curRe&RenditionReverse != 0 {
		fg, bg = bg, fg
	}
	if s.curRe&RenditionBold != 0 {
		if fg >= colorAnsiBase+BaseColors {
			fg -= BaseColors
		} else if fg >= colorAnsiBase {
			fg += BaseColors
		}
	}
	s.effFg, s.effBg = fg, bg
}

// --- Modes ---------------------------------------------------------

func (s *Screen) SetMode(m Mode) {
	s.modes[m] = true
	if m == ModeOrigin {
		s.curX, s.curY = 0, s.marginTop
	}
}

func (s *Screen) ResetMode(m Mode) {
	s.modes[m] = false
	if m == ModeOrigin {
		s.curX, s.curY = 0, 0
	}
}

func (s *Screen) ModeSet(m Mode) bool { return s.modes[m] }

func (s *Screen) SaveMode(m Mode)    { s.savedModes[m] = s.modes[m] }
func (s *Screen) RestoreMode(m Mode) { s.modes[m] = s.savedModes[m] }

// --- Tab stops -------------------------------------------------------

// LineWrappedFlags returns a copy of the per-row wrap flags, for
// pushing to a Display alongside a cooked image.
func (s *Screen) LineWrappedFlags() []bool {
	out := make([]bool, len(s.lineWrapped))
	copy(out, s.lineWrapped)
	return out
}

func (s *Screen) Tabulate() {
	s.curX = s.tabs.next(s.curX)
}

func (s *Screen) ChangeTabStop(on bool) {
	s.tabs.changeTabStop(s.curX, on)
}

func (s *Screen) ClearTabStops() {
	s.tabs.clearAll()
}

// --- History append --------------------------------------------------

func (s *Screen) historyLineEnd(y int) int {
	if s.lineWrapped[y] {
		return s.columns
	}
	end := s.columns
	for end > 0 && s.image[y][end-1].Equal(DefaultCell) {
		end--
	}
	return end
}

// addHistoryLine appends screen row 0 to History (called from Index
// when the scroll region spans the whole screen) and keeps the
// selection and history-scroll cursor consistent.
func (s *Screen) addHistoryLine() {
	if s.history == nil {
		return
	}
	end := s.historyLineEnd(0)
	s.history.AddCells(s.image[0][:end], s.lineWrapped[0])

	if s.hasSelection() {
		s.selBegin = addPoints(s.selBegin, -s.columns, s.columns)
		s.selTopLeft = addPoints(s.selTopLeft, -s.columns, s.columns)
		s.selBottomRight = addPoints(s.selBottomRight, -s.columns, s.columns)
		if s.selTopLeft.Y < 0 {
			s.ClearSelection()
		}
	}

	if s.histCursor > 0 && !s.history.Full() {
		s.histCursor--
	}
}

// HistCursor returns the current scroll position into history (0 =
// viewing the live screen).
func (s *Screen) HistCursor() int { return s.histCursor }

func (s *Screen) SetHistCursor(c int) {
	max := 0
	if s.history != nil {
		max = s.history.Lines()
	}
	s.histCursor = clamp(c, 0, max)
}

// --- Resize ----------------------------------------------------------

// Resize reshapes the grid, preserving the top-left sub-rectangle,
// pushing rows above a shrunken screen into history, clamping the
// cursor, and resetting margins, tab stops, and the selection.
func (s *Screen) Resize(newLines, newColumns int) {
	if newLines < 1 {
		newLines = 1
	}
	if newColumns < 1 {
		newColumns = 1
	}

	// Step 1 scrolls on the full screen regardless of the current
	// margins, so it is done directly rather than through ScrollUp.
	for s.curY > newLines+1 {
		if s.history != nil {
			end := s.historyLineEnd(0)
			s.history.AddCells(s.image[0][:end], s.lineWrapped[0])
		}
		copy(s.image, s.image[1:])
		copy(s.lineWrapped, s.lineWrapped[1:])
		s.image[s.lines-1] = newBlankRow(s.columns, ColorDefaultFg, ColorDefaultBg, 0)
		s.lineWrapped[s.lines-1] = false
		s.curY--
	}

	newImage := make([][]Cell, newLines)
	newWrapped := make([]bool, newLines)
	for y := range newImage {
		newImage[y] = newBlankRow(newColumns, ColorDefaultFg, ColorDefaultBg, 0)
	}

	copyLines := min(s.lines, newLines)
	copyCols := min(s.columns, newColumns)
	for y := 0; y < copyLines; y++ {
		copy(newImage[y][:copyCols], s.image[y][:copyCols])
		newWrapped[y] = s.lineWrapped[y]
	}

	s.image = newImage
	s.lineWrapped = newWrapped
	s.lines = newLines
	s.columns = newColumns

	s.curX = clamp(s.curX, 0, newColumns-1)
	s.curY = clamp(s.curY, 0, newLines-1)

	s.marginTop, s.marginBottom = 0, newLines-1
	s.tabs = newTabStops(newColumns)
	s.ClearSelection()
}

// --- Cooked image ------------------------------------------------------

// CookedImage builds the display-ready snapshot: history-backed rows
// where the view is scrolled, reverse video, cursor overlay, and
// selection highlighting all merged into a freshly allocated grid
// sharing no storage with the live image.
func (s *Screen) CookedImage() [][]Cell {
	out := make([][]Cell, s.lines)
	histLines, historyRows := s.historyViewRows()

	for y := 0; y < s.lines; y++ {
		row := make([]Cell, s.columns)
		if y < historyRows {
			cells := s.history.GetCells(y+s.histCursor, 0, -1)
			for x := 0; x < s.columns; x++ {
				if x < len(cells) {
					row[x] = cells[x]
				} else {
					row[x] = Cell{Codepoint: ' ', Fg: ColorDefaultFg, Bg: ColorDefaultBg}
				}
			}
		} else {
			sy := y - historyRows
			if sy >= 0 && sy < s.lines {
				copy(row, s.image[sy])
			}
		}
		out[y] = row
	}

	if s.modes[ModeScreen] {
		for y := range out {
			for x := range out[y] {
				out[y][x].Fg, out[y][x].Bg = out[y][x].Bg, out[y][x].Fg
			}
		}
	}

	if s.modes[ModeCursor] {
		cy := historyRows + s.curY
		if cy >= 0 && cy < s.lines && s.curX >= 0 && s.curX < s.columns {
			out[cy][s.curX].Rendition |= RenditionCursor
		}
	}

	if s.hasSelection() {
		for y := 0; y < s.lines; y++ {
			g := s.globalYForViewportRow(y, histLines, historyRows)
			for x := 0; x < s.columns; x++ {
				p := Point{Y: g, X: x}
				if s.selTopLeft.LessEqual(p) && p.LessEqual(s.selBottomRight) {
					out[y][x].Fg, out[y][x].Bg = out[y][x].Bg, out[y][x].Fg
				}
			}
		}
	}

	return out
}

// historyViewRows returns the total history line count and how many
// of the current viewport's rows are backed by history given the
// scroll-back cursor.
func (s *Screen) historyViewRows() (histLines, historyRows int) {
	if s.history != nil {
		histLines = s.history.Lines()
	}
	historyRows = histLines - s.histCursor
	if historyRows < 0 {
		historyRows = 0
	}
	if historyRows > s.lines {
		historyRows = s.lines
	}
	return histLines, historyRows
}

// globalYForViewportRow maps a viewport row (0-indexed from the top
// of what's currently displayed, which may be scrolled into history)
// to the combined history+screen coordinate space selection endpoints
// live in.
func (s *Screen) globalYForViewportRow(y, histLines, historyRows int) int {
	if y < historyRows {
		return y + s.histCursor
	}
	return (y - historyRows) + histLines
}

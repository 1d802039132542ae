package vqonsole

import (
	"fmt"
	"os"
	"sync"
)

// EmulatorMode indexes the emulator-level boolean modes that sit
// above the per-screen modes Screen already owns: these affect which
// screen is current, how the decoder interprets ESC sequences (VT52
// vs ANSI), and how the Display should treat clicks, rather than any
// one Screen's cell/cursor state.
type EmulatorMode int

const (
	ModeAppScreen EmulatorMode = iota
	ModeAppCuKeys
	ModeAppKeyPad
	ModeMouse1000
	ModeAnsi
	emulatorModeCount
)

// NotifyState names the session-activity signals the scheduler and
// emulator raise.
type NotifyState int

const (
	NotifyNormal NotifyState = iota
	NotifyBell
	NotifyActivity
	NotifySilence
)

// Emulator is the VT102 core: it owns the primary and alternate
// Screens, the shared History, the decoder, the key translator, and
// the refresh scheduler, and is the sole place that knows how a
// decoded Token turns into a Screen mutation or a report back to the
// PTY.
type Emulator struct {
	mu sync.Mutex

	primary   *Screen
	alternate *Screen
	current   *Screen

	history *History

	charsets [2]charCodes

	dec *decoder
	cod codec

	keyTrans *KeyTranslator

	scheduler *refreshScheduler

	display Display
	pty     PTYHost

	modes      [emulatorModeCount]bool
	savedModes [emulatorModeCount]bool

	holdScreen bool
	connected  bool

	printer *printerPipe

	scrollbackMax int
	notifyState   func(NotifyState)
	onTitle       func(ps int, pt string)
}

// EmulatorOption configures an Emulator at construction time.
type EmulatorOption func(*Emulator)

func WithEmulatorDisplay(d Display) EmulatorOption {
	return func(e *Emulator) { e.display = d }
}

func WithEmulatorPTYHost(p PTYHost) EmulatorOption {
	return func(e *Emulator) { e.pty = p }
}

func WithEmulatorKeyTranslator(kt *KeyTranslator) EmulatorOption {
	return func(e *Emulator) { e.keyTrans = kt }
}

// WithEmulatorScrollback sets the primary screen's History capacity;
// the default is 1000 lines.
func WithEmulatorScrollback(maxLines int) EmulatorOption {
	return func(e *Emulator) { e.scrollbackMax = maxLines }
}

// WithEmulatorNotify installs the session-activity callback the
// scheduler and bell handler raise through.
func WithEmulatorNotify(f func(NotifyState)) EmulatorOption {
	return func(e *Emulator) { e.notifyState = f }
}

// WithEmulatorTitleChanged installs the OSC title/icon callback; the
// Display contract has no title method of its own, so Session is
// expected to supply this and fold it into whatever title bar it
// owns.
func WithEmulatorTitleChanged(f func(ps int, pt string)) EmulatorOption {
	return func(e *Emulator) { e.onTitle = f }
}

// NewEmulator builds an Emulator with the given screen size, wiring
// Noop providers for anything not supplied by opts.
func NewEmulator(lines, columns int, opts ...EmulatorOption) *Emulator {
	e := &Emulator{scrollbackMax: 1000, connected: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.display == nil {
		e.display = NoopDisplay{}
	}
	if e.pty == nil {
		e.pty = NoopPTYHost{}
	}
	if e.keyTrans == nil {
		e.keyTrans = DefaultKeyTranslator()
	}
	if e.notifyState == nil {
		e.notifyState = func(NotifyState) {}
	}

	e.history = NewHistory(e.scrollbackMax)
	e.primary = NewScreen(lines, columns, e.history)
	e.alternate = NewScreen(lines, columns, nil)
	e.current = e.primary
	e.dec = newDecoder(e)
	e.scheduler = newRefreshScheduler(e)
	e.printer = newPrinterPipe()

	e.Reset()
	return e
}

// Primary and Alternate expose the two screens directly, for display
// drivers and tests that need to inspect state the dispatch table
// doesn't surface (e.g. rendering both buffers in a debugger).
func (e *Emulator) Primary() *Screen   { return e.primary }
func (e *Emulator) Alternate() *Screen { return e.alternate }
func (e *Emulator) Current() *Screen   { return e.current }

// Reset restores the emulator, both screens, and both charset slots
// to power-on defaults.
func (e *Emulator) Reset() {
	e.dec.reset()
	e.charsets[0].reset()
	e.charsets[1].reset()
	e.primary.Reset()
	e.alternate.Reset()
	e.cod.setCodec(0)
	e.resetModes()
}

// resetModes clears the mouse/app-screen/app-cursor-key modes
// (saving each so a later restoreMode with no prior save is
// well-defined), clears LNM on both screens, and re-enters ANSI
// mode.
func (e *Emulator) resetModes() {
	e.resetMode(ModeMouse1000)
	e.saveMode(ModeMouse1000)
	e.resetMode(ModeAppScreen)
	e.saveMode(ModeAppScreen)
	e.resetMode(ModeAppCuKeys)
	e.saveMode(ModeAppCuKeys)
	e.primary.ResetMode(ModeNewLine)
	e.alternate.ResetMode(ModeNewLine)
	e.setMode(ModeAnsi)
	e.holdScreen = false
}

func (e *Emulator) currentCharsetIdx() int {
	if e.current == e.alternate {
		return 1
	}
	return 0
}

func (e *Emulator) currentCharset() *charCodes { return &e.charsets[e.currentCharsetIdx()] }

// AnsiMode reports whether the decoder should tokenize as ANSI (true)
// or VT52 (false).
func (e *Emulator) AnsiMode() bool { return e.modes[ModeAnsi] }

// --- Emulator-level mode set/reset/save/restore -----------------------

func (e *Emulator) setMode(m EmulatorMode) {
	e.modes[m] = true
	switch m {
	case ModeMouse1000:
		e.display.SetMouseMarks(false)
	case ModeAppScreen:
		e.alternate.ClearSelection()
		e.switchScreen(true)
	}
}

func (e *Emulator) resetMode(m EmulatorMode) {
	e.modes[m] = false
	switch m {
	case ModeMouse1000:
		e.display.SetMouseMarks(true)
	case ModeAppScreen:
		e.primary.ClearSelection()
		e.switchScreen(false)
	}
}

func (e *Emulator) saveMode(m EmulatorMode) { e.savedModes[m] = e.modes[m] }

func (e *Emulator) restoreMode(m EmulatorMode) {
	if e.savedModes[m] {
		e.setMode(m)
	} else {
		e.resetMode(m)
	}
}

func (e *Emulator) switchScreen(toAlternate bool) {
	if toAlternate {
		e.current = e.alternate
	} else {
		e.current = e.primary
	}
}

// setNewLineMode forwards LNM to both screens: unlike the other five
// per-screen modes (set directly on e.current via CSI_PR), LNM is
// dispatched as a non-private CSI_PS and applies regardless of which
// screen is active.
func (e *Emulator) setNewLineMode(on bool) {
	if on {
		e.primary.SetMode(ModeNewLine)
		e.alternate.SetMode(ModeNewLine)
	} else {
		e.primary.ResetMode(ModeNewLine)
		e.alternate.ResetMode(ModeNewLine)
	}
}

// --- Charset plumbing --------------------------------------------------

// designateCharset records designator cs into slot on both screens'
// charset tables and reactivates each one's own current slot: ESC
// sequences that designate a G-set apply regardless of which screen
// is showing, while SO/SI activation stays per-screen.
func (e *Emulator) designateCharset(slot int, cs byte) {
	e.charsets[0].setCharset(slot, cs)
	e.charsets[0].useCharset(e.charsets[0].cuCs)
	e.charsets[1].setCharset(slot, cs)
	e.charsets[1].useCharset(e.charsets[1].cuCs)
}

func (e *Emulator) useCharset(slot int) {
	e.currentCharset().useCharset(slot)
}

func (e *Emulator) setAndUseCharset(slot int, cs byte) {
	e.currentCharset().setAndUseCharset(slot, cs)
}

func (e *Emulator) saveCursor() {
	e.currentCharset().save()
	e.current.SaveCursor()
}

func (e *Emulator) restoreCursor() {
	e.currentCharset().restore()
	e.current.RestoreCursor()
}

func (e *Emulator) setMargins(top, bot int) {
	e.primary.SetMargins(top, bot)
	e.alternate.SetMargins(top, bot)
}

// changeTitle forwards an OSC title change: Ps=0 both, Ps=1 icon
// only, Ps=2 title only. The Display contract has no title surface,
// so this is an out-of-band callback a Session supplies.
func (e *Emulator) changeTitle(ps int, pt string) {
	if e.onTitle != nil {
		e.onTitle(ps, pt)
	}
}

// --- Reports back to the PTY -------------------------------------------

func (e *Emulator) sendString(s string) {
	e.pty.SendBytes([]byte(s))
}

func (e *Emulator) reportTerminalType() {
	if e.AnsiMode() {
		e.sendString("\x1b[?1;2c")
	} else {
		e.sendString("\x1b/Z")
	}
}

func (e *Emulator) reportSecondaryAttributes() {
	if e.AnsiMode() {
		e.sendString("\x1b[>0;115;0c")
	} else {
		e.sendString("\x1b/Z")
	}
}

func (e *Emulator) reportTerminalParams(p int) {
	e.sendString(fmt.Sprintf("\x1b[%d;1;1;112;112;1;0x", p))
}

func (e *Emulator) reportStatus() { e.sendString("\x1b[0n") }

// reportCursorPosition reports `ESC [Y;XR`, 1-based, row before
// column (CPR).
func (e *Emulator) reportCursorPosition() {
	e.sendString(fmt.Sprintf("\x1b[%d;%dR", e.current.CursorY()+1, e.current.CursorX()+1))
}

func (e *Emulator) reportAnswerBack() {
	e.sendString(os.Getenv("ANSWER_BACK"))
}

func (e *Emulator) reportErrorToken(tok Token, p, q int) {
	logf("WARN", "unhandled token kind=%d a=%q p=%d q=%d", tok.Kind(), tok.A(), p, q)
}

// --- Mouse, scroll lock, printer -----------------------------------------

// OnMouse sends an X10/X11-style mouse report: `ESC [M` followed by
// three bytes encoding button and 1-based column/row, each offset by
// 32 to stay in a printable range.
func (e *Emulator) OnMouse(button, cx, cy int) {
	if !e.connected {
		return
	}
	e.pty.SendBytes([]byte{0x1b, '[', 'M', byte(button + 32), byte(cx + 32), byte(cy + 32)})
}

// ScrollLock toggles XOFF/XON flow control to the child and, while
// locked, defers Display snapshots.
func (e *Emulator) ScrollLock(lock bool) {
	e.holdScreen = lock
	if lock {
		e.pty.SendBytes([]byte{0x13}) // XOFF, ^S
	} else {
		e.pty.SendBytes([]byte{0x11}) // XON, ^Q
		e.scheduler.releaseHold()
	}
}

func (e *Emulator) setPrinterMode(on bool) { e.printer.setMode(on) }

// --- Selection / resize / connection, driven by the Display ----------

func (e *Emulator) BeginSelection(x, y int)   { e.current.SetSelBeginXY(x, y) }
func (e *Emulator) ExtendSelection(x, y int)  { e.current.SetSelExtendXY(x, y) }
func (e *Emulator) IsBusySelecting() bool     { return e.current.BusySelecting() }
func (e *Emulator) TestIsSelected(x, y int) bool { return e.current.TestIsSelected(x, y) }
func (e *Emulator) ClearSelection()           { e.current.ClearSelection() }

func (e *Emulator) EndSelection(preserveLineBreak bool) {
	e.current.SetBusySelecting(false)
	e.display.SetSelection(e.current.SelectedText(preserveLineBreak))
}

// Resize propagates a new window size to both screens and the PTY
// host.
func (e *Emulator) Resize(lines, columns int) {
	e.mu.Lock()
	e.primary.Resize(lines, columns)
	e.alternate.Resize(lines, columns)
	e.mu.Unlock()
	e.pty.SetSize(lines, columns)
}

// SetConnected marks the emulator connected or not: a disconnected
// emulator drops outbound mouse reports, and reconnecting refreshes
// the mouse-marks mode on the display.
func (e *Emulator) SetConnected(connected bool) {
	e.connected = connected
	if connected {
		if e.modes[ModeMouse1000] {
			e.setMode(ModeMouse1000)
		} else {
			e.resetMode(ModeMouse1000)
		}
	}
}

// OnRcvBlock feeds a block of raw PTY bytes through the printer tap,
// the codec, and the decoder, coalescing the resulting screen
// mutations into Display snapshots.
func (e *Emulator) OnRcvBlock(data []byte) {
	e.scheduler.onRcvBlock(data)
}

// Flush forces any pending coalesced Display update out immediately.
func (e *Emulator) Flush() {
	e.scheduler.Flush()
}

// OnKeyPress resolves key (plus held modifiers) against the key
// translator and either runs a named command or sends text to the
// PTY.
func (e *Emulator) OnKeyPress(key Keysym, control, shift, alt bool) {
	entry, ok := e.keyTrans.FindEntry(key,
		e.current.ModeSet(ModeNewLine), e.AnsiMode(), e.modes[ModeAppCuKeys],
		control, shift, alt)
	if !ok {
		return
	}

	switch entry.Cmd {
	case CmdScrollLineUp:
		e.current.SetHistCursor(e.current.HistCursor() - 1)
		return
	case CmdScrollLineDown:
		e.current.SetHistCursor(e.current.HistCursor() + 1)
		return
	case CmdScrollPageUp:
		e.current.SetHistCursor(e.current.HistCursor() - e.current.Lines()/2)
		return
	case CmdScrollPageDown:
		e.current.SetHistCursor(e.current.HistCursor() + e.current.Lines()/2)
		return
	case CmdEmitClipboard:
		e.display.SetSelection(e.current.SelectedText(false))
	case CmdEmitSelection:
		e.display.SetSelection(e.current.SelectedText(true))
	case CmdScrollLock:
		e.ScrollLock(!e.holdScreen)
	case CmdSend:
		if alt {
			e.sendString("\x1b")
		}
		if control && len(entry.Text) > 0 {
			e.pty.SendBytes([]byte{entry.Text[0] & 0x1f})
		} else {
			e.pty.SendBytes([]byte(entry.Text))
		}
	default:
		// CmdPrevSession, CmdNextSession, CmdNewSession,
		// CmdActivateMenu, CmdMoveSessionLeft, CmdMoveSessionRight,
		// CmdRenameSession name session/window-manager actions with
		// no core state to mutate; a Display implementation observes
		// these by inspecting entry.Cmd itself if it needs to.
	}

	e.current.SetHistCursor(0)
}

// --- C0 control dispatch -------------------------------------------------

func (e *Emulator) dispatchCtl(a byte) {
	scr := e.current
	switch a {
	case 'E':
		e.reportAnswerBack()
	case 'G':
		e.bell()
	case 'H':
		scr.CursorLeft(1)
	case 'I':
		scr.Tabulate()
	case 'J', 'K', 'L':
		e.newLine()
	case 'M':
		scr.SetCursorX(1)
	case 'N':
		e.useCharset(1)
	case 'O':
		e.useCharset(0)
	case 'X', 'Z':
		scr.ShowCharacter(0x2592)
	default:
		// NUL, SOH, STX, ETX, EOT, ACK, DLE, DC1-DC4, NAK, SYN, ETB,
		// EM, FS, GS, RS, US: ignored.
	}
}

func (e *Emulator) bell() {
	e.display.Bell()
	e.notifyState(NotifyBell)
}

// newLine implements LF/VT/FF: index, plus a leading carriage return
// when LNM (ModeNewLine) is set.
func (e *Emulator) newLine() {
	if e.current.ModeSet(ModeNewLine) {
		e.current.SetCursorX(1)
	}
	e.current.Index()
}

// --- ESC dispatch --------------------------------------------------------

func (e *Emulator) dispatchEsc(a byte) {
	scr := e.current
	switch a {
	case 'D':
		scr.Index()
	case 'E':
		scr.SetCursorX(1)
		scr.Index()
	case 'H':
		scr.ChangeTabStop(true)
	case 'M':
		scr.ReverseIndex()
	case 'Z':
		e.reportTerminalType()
	case 'c':
		e.Reset()
	case 'n':
		e.useCharset(2)
	case 'o':
		e.useCharset(3)
	case '7':
		e.saveCursor()
	case '8':
		e.restoreCursor()
	case '=':
		e.setMode(ModeAppKeyPad)
	case '>':
		e.resetMode(ModeAppKeyPad)
	case '<':
		e.setMode(ModeAnsi)
	default:
		e.reportErrorToken(tokEsc(a), 0, 0)
	}
}

func (e *Emulator) dispatchEscCS(a, b byte) {
	if a == '%' {
		switch b {
		case 'G':
			e.cod.setCodec(1)
		case '@':
			e.cod.setCodec(0)
		default:
			e.reportErrorToken(tokEscCS(a, b), 0, 0)
		}
		return
	}

	var slot int
	switch a {
	case '(':
		slot = 0
	case ')':
		slot = 1
	case '*':
		slot = 2
	case '+':
		slot = 3
	default:
		e.reportErrorToken(tokEscCS(a, b), 0, 0)
		return
	}
	e.designateCharset(slot, b)
}

func (e *Emulator) dispatchEscDE(a byte) {
	switch a {
	case '8':
		e.current.HelpAlign()
	case '3', '4', '5', '6':
		// IGNORED: double-height/width line attributes, not modeled.
	default:
		e.reportErrorToken(tokEscDE(a), 0, 0)
	}
}

// --- CSI_PS dispatch (non-private final byte, one numeric arg) ----------

func (e *Emulator) dispatchCsiPS(a byte, n int) {
	scr := e.current
	switch a {
	case 'K':
		switch n {
		case 0:
			scr.ClearToEndOfLine()
		case 1:
			scr.ClearToBeginOfLine()
		case 2:
			scr.ClearEntireLine()
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	case 'J':
		switch n {
		case 0:
			scr.ClearToEndOfScreen()
		case 1:
			scr.ClearToBeginOfScreen()
		case 2:
			scr.ClearEntireScreen()
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	case 'g':
		switch n {
		case 0:
			scr.ChangeTabStop(false)
		case 3:
			scr.ClearTabStops()
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	case 'h':
		switch n {
		case 4:
			scr.SetMode(ModeInsert)
		case 20:
			e.setNewLineMode(true)
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	case 'i':
		switch n {
		case 0:
			// IGNORED: attached printer query.
		case 4:
			// Printer off. Normally consumed by the printer pipe's own
			// matcher; handled here too for the case where printer
			// mode was never successfully started.
			e.setPrinterMode(false)
		case 5:
			e.setPrinterMode(true)
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	case 'l':
		switch n {
		case 4:
			scr.ResetMode(ModeInsert)
		case 20:
			e.setNewLineMode(false)
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	case 's':
		if n == 0 {
			e.saveCursor()
		}
	case 'u':
		if n == 0 {
			e.restoreCursor()
		}
	case 'm':
		e.dispatchSGR(n)
	case 'n':
		switch n {
		case 5:
			e.reportStatus()
		case 6:
			e.reportCursorPosition()
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	case 'q':
		// IGNORED: keyboard LEDs 0..4, not modeled.
	case 'x':
		switch n {
		case 0:
			e.reportTerminalParams(2)
		case 1:
			e.reportTerminalParams(3)
		default:
			e.reportErrorToken(tokCsiPS(a, n), 0, 0)
		}
	default:
		e.reportErrorToken(tokCsiPS(a, n), 0, 0)
	}
}

// dispatchSGR implements `CSI Pm m`, the rendition/color operations
// addressed by the SGR numbering scheme.
func (e *Emulator) dispatchSGR(n int) {
	scr := e.current
	switch {
	case n == 0:
		scr.SetDefaultRendition()
	case n == 1:
		scr.SetRendition(RenditionBold)
	case n == 4:
		scr.SetRendition(RenditionUnderline)
	case n == 5:
		scr.SetRendition(RenditionBlink)
	case n == 7:
		scr.SetRendition(RenditionReverse)
	case n == 10 || n == 11 || n == 12:
		// IGNORED: Linux console font/mapping selection.
	case n == 22:
		scr.ResetRendition(RenditionBold)
	case n == 24:
		scr.ResetRendition(RenditionUnderline)
	case n == 25:
		scr.ResetRendition(RenditionBlink)
	case n == 27:
		scr.ResetRendition(RenditionReverse)
	case n >= 30 && n <= 37:
		scr.SetForeColor(n - 30)
	case n == 39:
		scr.SetForeColorToDefault()
	case n >= 40 && n <= 47:
		scr.SetBackColor(n - 40)
	case n == 49:
		scr.SetBackColorToDefault()
	case n >= 90 && n <= 97:
		scr.SetForeColor(n - 90 + 8)
	case n >= 100 && n <= 107:
		scr.SetBackColor(n - 100 + 8)
	default:
		e.reportErrorToken(tokCsiPS('m', n), 0, 0)
	}
}

// --- CSI_PN dispatch (non-private final byte, 1-2 positional args) ------

func (e *Emulator) dispatchCsiPN(a byte, p, q int) {
	scr := e.current
	switch a {
	case '@':
		scr.InsertChars(p)
	case 'A':
		scr.CursorUp(p)
	case 'B':
		scr.CursorDown(p)
	case 'C':
		scr.CursorRight(p)
	case 'D':
		scr.CursorLeft(p)
	case 'G':
		scr.SetCursorX(p)
	case 'H':
		scr.SetCursorYX(p, q)
	case 'L':
		scr.InsertLines(p)
	case 'M':
		scr.DeleteLines(p)
	case 'P':
		scr.DeleteChars(p)
	case 'X':
		scr.EraseChars(p)
	case 'c':
		e.reportTerminalType()
	case 'd':
		scr.SetCursorY(p)
	case 'f':
		scr.SetCursorYX(p, q)
	case 'r':
		e.setMargins(p, q)
	case 'y':
		// IGNORED: VT100 confidence test.
	default:
		e.reportErrorToken(tokCsiPN(a), p, q)
	}
}

// --- CSI_PR dispatch (DEC private mode set/reset/save/restore) ---------

func (e *Emulator) dispatchCsiPR(a byte, n int) {
	scr := e.current
	switch n {
	case 1:
		switch a {
		case 'h':
			e.setMode(ModeAppCuKeys)
		case 'l':
			e.resetMode(ModeAppCuKeys)
		case 's':
			e.saveMode(ModeAppCuKeys)
		case 'r':
			e.restoreMode(ModeAppCuKeys)
		}
	case 2:
		if a == 'l' {
			e.resetMode(ModeAnsi)
		}
	case 3:
		// IGNORED: 80/132 column switch.
	case 4:
		// IGNORED: soft scrolling.
	case 5:
		switch a {
		case 'h':
			scr.SetMode(ModeScreen)
		case 'l':
			scr.ResetMode(ModeScreen)
		}
	case 6:
		switch a {
		case 'h':
			scr.SetMode(ModeOrigin)
		case 'l':
			scr.ResetMode(ModeOrigin)
		case 's':
			scr.SaveMode(ModeOrigin)
		case 'r':
			scr.RestoreMode(ModeOrigin)
		}
	case 7:
		switch a {
		case 'h':
			scr.SetMode(ModeWrap)
		case 'l':
			scr.ResetMode(ModeWrap)
		case 's':
			scr.SaveMode(ModeWrap)
		case 'r':
			scr.RestoreMode(ModeWrap)
		}
	case 8, 9:
		// IGNORED: autorepeat, interlace.
	case 25:
		switch a {
		case 'h':
			scr.SetMode(ModeCursor)
		case 'l':
			scr.ResetMode(ModeCursor)
		}
	case 41:
		// IGNORED: obsolete xterm more(1) fix.
	case 47:
		switch a {
		case 'h':
			e.setMode(ModeAppScreen)
		case 'l':
			e.resetMode(ModeAppScreen)
		case 's':
			e.saveMode(ModeAppScreen)
		case 'r':
			e.restoreMode(ModeAppScreen)
		}
	case 1000, 1002, 1003:
		// xterm mouse-tracking variants (button-event/any-event);
		// treated identically.
		switch a {
		case 'h':
			e.setMode(ModeMouse1000)
		case 'l':
			e.resetMode(ModeMouse1000)
		case 's':
			e.saveMode(ModeMouse1000)
		case 'r':
			e.restoreMode(ModeMouse1000)
		}
	case 1001:
		if a == 'l' {
			e.resetMode(ModeMouse1000)
		}
		// IGNORED otherwise: hilite mouse tracking proper.
	case 1047:
		switch a {
		case 'h':
			e.setMode(ModeAppScreen)
		case 'l':
			e.alternate.ClearEntireScreen()
			e.resetMode(ModeAppScreen)
		case 's':
			e.saveMode(ModeAppScreen)
		case 'r':
			e.restoreMode(ModeAppScreen)
		}
	case 1048:
		switch a {
		case 'h', 's':
			e.saveCursor()
		case 'l', 'r':
			e.restoreCursor()
		}
	case 1049:
		switch a {
		case 'h':
			e.saveCursor()
			e.alternate.ClearEntireScreen()
			e.setMode(ModeAppScreen)
		case 'l':
			e.alternate.ClearEntireScreen()
			e.resetMode(ModeAppScreen)
			e.restoreCursor()
		}
	default:
		e.reportErrorToken(tokCsiPR(a, n), 0, 0)
	}
}

func (e *Emulator) dispatchCsiPG(a byte) {
	switch a {
	case 'c':
		e.reportSecondaryAttributes()
	default:
		e.reportErrorToken(tokCsiPG(a), 0, 0)
	}
}

// --- VT52 dispatch -------------------------------------------------------

func (e *Emulator) dispatchVt52(a byte, p, q int) {
	scr := e.current
	switch a {
	case 'A':
		scr.CursorUp(1)
	case 'B':
		scr.CursorDown(1)
	case 'C':
		scr.CursorRight(1)
	case 'D':
		scr.CursorLeft(1)
	case 'F':
		e.setAndUseCharset(0, '0')
	case 'G':
		e.setAndUseCharset(0, 'B')
	case 'H':
		scr.SetCursorYX(1, 1)
	case 'I':
		scr.ReverseIndex()
	case 'J':
		scr.ClearToEndOfScreen()
	case 'K':
		scr.ClearToEndOfLine()
	case 'Y':
		scr.SetCursorYX(p-31, q-31)
	case 'Z':
		e.reportTerminalType()
	case '<':
		e.setMode(ModeAnsi)
	case '=':
		e.setMode(ModeAppKeyPad)
	case '>':
		e.resetMode(ModeAppKeyPad)
	default:
		e.reportErrorToken(tokVt52(a), p, q)
	}
}

// dispatch is the decoder's sole entry point into the emulator:
// route a token to the shape-specific handler above, one switch per
// token shape keyed on Token.Kind().
func (e *Emulator) dispatch(tok Token, p, q int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch tok.Kind() {
	case tyChr:
		e.current.ShowCharacter(rune(p))
	case tyCtl:
		e.dispatchCtl(tok.A())
	case tyEsc:
		e.dispatchEsc(tok.A())
	case tyEscCS:
		e.dispatchEscCS(tok.A(), byte(tok.N()))
	case tyEscDE:
		e.dispatchEscDE(tok.A())
	case tyCsiPS:
		e.dispatchCsiPS(tok.A(), int(tok.N()))
	case tyCsiPN:
		e.dispatchCsiPN(tok.A(), p, q)
	case tyCsiPR:
		e.dispatchCsiPR(tok.A(), int(tok.N()))
	case tyVt52:
		e.dispatchVt52(tok.A(), p, q)
	case tyCsiPG:
		e.dispatchCsiPG(tok.A())
	default:
		e.reportErrorToken(tok, p, q)
	}
}

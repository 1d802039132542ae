package vqonsole

// PTYHost is the external pseudo-terminal host the core drives to
// spawn and talk to a child process. Implemented outside this
// package (see ptyhost/); the core only ever calls these
// three methods and otherwise receives bytes via Emulator.OnRcvBlock
// and exit notifications via whatever the host wires to Session.
type PTYHost interface {
	// Spawn starts program with args under a pseudo-terminal sized
	// lines x columns, with TERM=term in its environment.
	Spawn(program string, args []string, term string, lines, columns int) error
	// SetSize re-propagates a window size change to the child.
	SetSize(lines, columns int) error
	// SendBytes writes bytes to the PTY master (keyboard input, mode
	// reports, XON/XOFF).
	SendBytes(b []byte) error
}

// Display is the external render target the core pushes snapshots and
// out-of-band signals to, and the source of inbound selection/mouse
// events.
type Display interface {
	// SetImage delivers a freshly built cooked image sized
	// lines x columns.
	SetImage(cells [][]Cell, lines, columns int)
	// SetCursorPos reports the cursor's current viewport position.
	SetCursorPos(x, y int)
	// SetLineWrapped delivers the per-row wrap flags for the pushed image.
	SetLineWrapped(flags []bool)
	// SetScroll reports the scrollback cursor and total history length.
	SetScroll(cursor, total int)
	// SetSelection delivers extracted selection text (e.g. to the
	// display's clipboard/primary selection).
	SetSelection(text string)
	// Bell is called on BEL.
	Bell()
	// SetMouseMarks toggles the display's own click-to-select behavior
	// (on when MODE_Mouse1000 is not active).
	SetMouseMarks(on bool)
}

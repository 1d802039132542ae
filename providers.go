package vqonsole

// NoopPTYHost discards spawn/resize/write requests; useful for tests
// that drive Emulator.OnRcvBlock directly without a real child
// process.
type NoopPTYHost struct{}

func (NoopPTYHost) Spawn(program string, args []string, term string, lines, columns int) error {
	return nil
}
func (NoopPTYHost) SetSize(lines, columns int) error { return nil }
func (NoopPTYHost) SendBytes(b []byte) error         { return nil }

var _ PTYHost = NoopPTYHost{}

// NoopDisplay discards every snapshot and signal; the default when no
// Display is supplied to NewEmulator.
type NoopDisplay struct{}

func (NoopDisplay) SetImage(cells [][]Cell, lines, columns int) {}
func (NoopDisplay) SetCursorPos(x, y int)                       {}
func (NoopDisplay) SetLineWrapped(flags []bool)                 {}
func (NoopDisplay) SetScroll(cursor, total int)                 {}
func (NoopDisplay) SetSelection(text string)                    {}
func (NoopDisplay) Bell()                                       {}
func (NoopDisplay) SetMouseMarks(on bool)                       {}

var _ Display = NoopDisplay{}

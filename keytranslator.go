package vqonsole

// Keysym names a key the display recognizes, e.g. "Return", "F5",
// "A". The core treats it as an opaque string; only the keytab file
// and the display need to agree on spellings.
type Keysym string

// ModeBits packs the boolean context a key lookup is evaluated
// against: NewLine/Ansi/AppCuKeys describe emulator mode, the rest
// are held-down modifiers.
type ModeBits uint8

const (
	BitNewLine ModeBits = 1 << iota
	BitBsHack           // deprecated, parsed for compatibility only
	BitAnsi
	BitAppCuKeys
	BitControl
	BitShift
	BitAlt
)

// Command is the closed set of named keytab actions, plus CmdSend for
// literal text output.
type Command int

const (
	CmdSend Command = iota
	CmdEmitSelection
	CmdScrollPageUp
	CmdScrollPageDown
	CmdScrollLineUp
	CmdScrollLineDown
	CmdPrevSession
	CmdNextSession
	CmdNewSession
	CmdActivateMenu
	CmdMoveSessionLeft
	CmdMoveSessionRight
	CmdScrollLock
	CmdEmitClipboard
	CmdRenameSession
)

var commandNames = map[string]Command{
	"emitSelection":     CmdEmitSelection,
	"scrollPageUp":      CmdScrollPageUp,
	"scrollPageDown":    CmdScrollPageDown,
	"scrollLineUp":      CmdScrollLineUp,
	"scrollLineDown":    CmdScrollLineDown,
	"prevSession":       CmdPrevSession,
	"nextSession":       CmdNextSession,
	"newSession":        CmdNewSession,
	"activateMenu":      CmdActivateMenu,
	"moveSessionLeft":   CmdMoveSessionLeft,
	"moveSessionRight":  CmdMoveSessionRight,
	"scrollLock":        CmdScrollLock,
	"emitClipboard":     CmdEmitClipboard,
	"renameSession":     CmdRenameSession,
}

var modifierBits = map[string]ModeBits{
	"NewLine":   BitNewLine,
	"BsHack":    BitBsHack,
	"Ansi":      BitAnsi,
	"AppCuKeys": BitAppCuKeys,
	"Control":   BitControl,
	"Shift":     BitShift,
	"Alt":       BitAlt,
}

// KeyEntry is one parsed keytab assignment: key plus required
// mode/modifier bits (mask selects which bits of Bits matter), and
// the action to take when it matches.
type KeyEntry struct {
	Key  Keysym
	Bits ModeBits
	Mask ModeBits
	Cmd  Command
	Text string // used when Cmd == CmdSend
	Line int    // source line, for conflict diagnostics
}

func (e KeyEntry) matches(key Keysym, bits ModeBits) bool {
	m := e.Mask
	return e.Key == key && (e.Bits&m) == (bits&m)
}

// KeyTranslator holds a parsed keytab: a title plus an ordered table
// of entries, matched first-to-last.
type KeyTranslator struct {
	Title   string
	Source  string
	entries []KeyEntry
}

func newKeyTranslator(source string) *KeyTranslator {
	return &KeyTranslator{Source: source}
}

func encodeModeBits(newline, ansi, appCuKeys bool) ModeBits {
	var b ModeBits
	if newline {
		b |= BitNewLine
	}
	if ansi {
		b |= BitAnsi
	}
	if appCuKeys {
		b |= BitAppCuKeys
	}
	return b
}

func encodeModifierBits(control, shift, alt bool) ModeBits {
	var b ModeBits
	if control {
		b |= BitControl
	}
	if shift {
		b |= BitShift
	}
	if alt {
		b |= BitAlt
	}
	return b
}

// FindEntry encodes the query context into bits and returns the first
// entry whose key matches and whose masked bits agree.
func (kt *KeyTranslator) FindEntry(key Keysym, newline, ansi, appCuKeys, control, shift, alt bool) (KeyEntry, bool) {
	bits := encodeModeBits(newline, ansi, appCuKeys) | encodeModifierBits(control, shift, alt)
	for _, e := range kt.entries {
		if e.matches(key, bits) {
			return e, true
		}
	}
	return KeyEntry{}, false
}

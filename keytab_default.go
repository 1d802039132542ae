package vqonsole

import "strings"

// defaultKeytab is the built-in fallback translation table, used when
// no keytab file is supplied. The entries follow the classic konsole
// default.keytab: VT100 cursor/keypad sequences with Ansi and
// AppCuKeys variants, shifted Prior/Next and Up/Down bound to the
// scrollback commands, and DEL on Backspace.
const defaultKeytab = `keyboard "default"

key Escape          : "\E"
key Tab             : "\t"

key Return-Shift-NewLine : "\r"
key Return-Shift+NewLine : "\r\n"
key Return+Shift         : "\EOM"

key Backspace       : "\x7f"
key Delete          : "\E[3~"
key Insert          : "\E[2~"

key Home            : "\E[H"
key End             : "\E[F"

key Prior-Shift     : "\E[5~"
key Prior+Shift     : scrollPageUp
key Next-Shift      : "\E[6~"
key Next+Shift      : scrollPageDown

key Up+Shift        : scrollLineUp
key Down+Shift      : scrollLineDown

key Up-Shift-Ansi             : "\EA"
key Down-Shift-Ansi           : "\EB"
key Right-Shift-Ansi          : "\EC"
key Left-Shift-Ansi           : "\ED"
key Up-Shift+Ansi-AppCuKeys   : "\E[A"
key Down-Shift+Ansi-AppCuKeys : "\E[B"
key Right-Shift+Ansi-AppCuKeys: "\E[C"
key Left-Shift+Ansi-AppCuKeys : "\E[D"
key Up-Shift+Ansi+AppCuKeys   : "\EOA"
key Down-Shift+Ansi+AppCuKeys : "\EOB"
key Right-Shift+Ansi+AppCuKeys: "\EOC"
key Left-Shift+Ansi+AppCuKeys : "\EOD"

key F1              : "\E[11~"
key F2              : "\E[12~"
key F3              : "\E[13~"
key F4              : "\E[14~"
key F5              : "\E[15~"
key F6              : "\E[17~"
key F7              : "\E[18~"
key F8              : "\E[19~"
key F9              : "\E[20~"
key F10             : "\E[21~"
key F11             : "\E[23~"
key F12             : "\E[24~"

key Space+Control   : "\x00"
key ScrollLock      : scrollLock
`

// DefaultKeyTranslator parses the built-in table. The source is a
// compile-time constant, so a parse failure here is a bug, not a
// runtime condition; diagnostics still go through the usual keytab
// logging path.
func DefaultKeyTranslator() *KeyTranslator {
	kt, err := ParseKeytab(strings.NewReader(defaultKeytab), "<builtin>")
	if err != nil {
		return newKeyTranslator("<builtin>")
	}
	return kt
}

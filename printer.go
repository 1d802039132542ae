package vqonsole

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

// printerPipe routes child output to an external command while
// printer mode (CSI 5i / CSI 4i) is on.
type printerPipe struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	active bool

	// off recognizes the `ESC[4i` printer-off sequence byte by byte
	// while active, so printer output can be disabled mid-stream
	// without waiting for the decoder to re-tokenize it. Bytes of a
	// partial match are held in pending rather than written, so a
	// completed off-sequence never reaches the pipe at all.
	off     matchState
	pending []byte
}

type matchState int

const (
	matchIdle matchState = iota
	matchEsc
	matchBracket
	matchDigit
)

func newPrinterPipe() *printerPipe { return &printerPipe{} }

// defaultPrintCommand is the fallback print filter when PRINT_COMMAND
// is unset or empty.
const defaultPrintCommand = "cat > /dev/null"

// setMode starts or stops the print filter named by PRINT_COMMAND
// (default "cat > /dev/null").
func (p *printerPipe) setMode(on bool) {
	if on == p.active {
		return
	}
	if !on {
		p.stop()
		return
	}

	command := os.Getenv("PRINT_COMMAND")
	if strings.TrimSpace(command) == "" {
		command = defaultPrintCommand
	}

	cmd := exec.Command("/bin/sh", "-c", command)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		logf("WARN", "printer pipe: %v", err)
		return
	}
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		logf("WARN", "printer pipe start: %v", err)
		return
	}

	p.cmd = cmd
	p.stdin = stdin
	p.active = true
	p.off = matchIdle
	p.pending = p.pending[:0]
}

func (p *printerPipe) stop() {
	if p.stdin != nil {
		p.stdin.Close()
	}
	if p.cmd != nil {
		p.cmd.Wait()
	}
	p.cmd = nil
	p.stdin = nil
	p.active = false
	p.off = matchIdle
	p.pending = p.pending[:0]
}

// feed routes b to the print filter while active, watching for the
// `ESC [ 4 i` off-sequence inline so a well-formed document can turn
// printer mode off itself. Bytes of a partial match are buffered, not
// written: a completed off-sequence is swallowed whole, and an
// abandoned partial match is flushed to the pipe before matching
// restarts.
func (p *printerPipe) feed(b byte) {
	if !p.active {
		return
	}

	switch p.off {
	case matchEsc:
		if b == '[' {
			p.off = matchBracket
			p.pending = append(p.pending, b)
			return
		}
		p.flushPending()
	case matchBracket:
		if b == '4' {
			p.off = matchDigit
			p.pending = append(p.pending, b)
			return
		}
		p.flushPending()
	case matchDigit:
		if b == 'i' {
			p.pending = p.pending[:0]
			p.stop()
			return
		}
		p.flushPending()
	}

	if b == 0x1b {
		p.off = matchEsc
		p.pending = append(p.pending, b)
		return
	}
	p.off = matchIdle
	p.write([]byte{b})
}

func (p *printerPipe) flushPending() {
	p.off = matchIdle
	if len(p.pending) > 0 {
		p.write(p.pending)
		p.pending = p.pending[:0]
	}
}

func (p *printerPipe) write(b []byte) {
	if p.stdin != nil {
		p.stdin.Write(b)
	}
}

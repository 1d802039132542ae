// Package ptyhost is a concrete vqonsole.PTYHost backed by a real
// pseudo-terminal and child process: it spawns the child under a PTY
// and pushes its output to a Session for as long as the child lives.
package ptyhost

import (
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/cliofy/vqonsole"
	"github.com/creack/pty"
)

var _ vqonsole.PTYHost = (*Host)(nil)

// Host spawns one child process under a PTY and feeds its output to
// onData as it arrives, reporting exit status to onExit.
type Host struct {
	mu   sync.Mutex
	cmd  *exec.Cmd
	ptmx *os.File

	onData func([]byte)
	onExit func(status int)
}

// New creates a Host that calls onData for every block of output and
// onExit once, when the child process terminates. Both callbacks are
// invoked from a background goroutine.
func New(onData func([]byte), onExit func(status int)) *Host {
	return &Host{onData: onData, onExit: onExit}
}

// Spawn starts program under a PTY sized lines x columns, with
// TERM=term in its environment, and begins streaming its output.
func (h *Host) Spawn(program string, args []string, term string, lines, columns int) error {
	cmd := exec.Command(program, args...)
	cmd.Env = append(os.Environ(), "TERM="+term)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(lines), Cols: uint16(columns)}); err != nil {
		log.Printf("[WARN] ptyhost: initial Setsize failed: %v", err)
	}

	h.mu.Lock()
	h.cmd = cmd
	h.ptmx = ptmx
	h.mu.Unlock()

	go h.readLoop(ptmx)
	go h.waitLoop(cmd)
	return nil
}

func (h *Host) readLoop(ptmx *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			block := make([]byte, n)
			copy(block, buf[:n])
			h.onData(block)
		}
		if err != nil {
			return
		}
	}
}

func (h *Host) waitLoop(cmd *exec.Cmd) {
	err := cmd.Wait()
	status := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			status = exitErr.ExitCode()
		} else {
			status = -1
		}
	}
	h.onExit(status)
}

// SetSize propagates a window resize to the child's PTY.
func (h *Host) SetSize(lines, columns int) error {
	h.mu.Lock()
	ptmx := h.ptmx
	h.mu.Unlock()
	if ptmx == nil {
		return nil
	}
	return pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(lines), Cols: uint16(columns)})
}

// SendBytes writes to the PTY master (keyboard input, mode reports,
// XON/XOFF flow control).
func (h *Host) SendBytes(b []byte) error {
	h.mu.Lock()
	ptmx := h.ptmx
	h.mu.Unlock()
	if ptmx == nil {
		return nil
	}
	_, err := ptmx.Write(b)
	return err
}

// Close releases the PTY master; the child is left to its own exit
// handling via waitLoop.
func (h *Host) Close() error {
	h.mu.Lock()
	ptmx := h.ptmx
	h.mu.Unlock()
	if ptmx == nil {
		return nil
	}
	return ptmx.Close()
}

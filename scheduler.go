package vqonsole

import (
	"sync"
	"time"
)

// bulkTimeout and bulkCntLimit set the coalescing policy: a burst of
// output schedules at most one Display refresh per bulkTimeout,
// unless bulkCntLimit blocks arrive without a newline or more
// newlines than the screen has lines arrive, in which case the
// refresh fires immediately.
const (
	bulkTimeout  = 20 * time.Millisecond
	bulkCntLimit = 20
)

// refreshScheduler batches the Screen mutations a block of PTY bytes
// produces into a single Display update, instead of redrawing once
// per decoded token.
type refreshScheduler struct {
	mu sync.Mutex

	emu *Emulator

	timer   *time.Timer
	nlCount int
	inCount int

	// held is set when a flush was suppressed by scroll lock, so
	// unlocking can push the deferred snapshot out.
	held bool
}

func newRefreshScheduler(emu *Emulator) *refreshScheduler {
	return &refreshScheduler{emu: emu}
}

// onRcvBlock announces activity, cancels the pending timer, decodes
// the block through the printer tap, codec, and decoder while
// tracking the newline count, then either flushes immediately or
// re-arms the timer.
func (r *refreshScheduler) onRcvBlock(data []byte) {
	r.emu.notifyState(NotifyActivity)

	r.mu.Lock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.inCount++
	r.mu.Unlock()

	for _, b := range data {
		if r.emu.printer.active {
			// Printer passthrough: bytes go to the pipe, not the
			// screen, until the pipe's own matcher sees ESC[4i.
			r.emu.printer.feed(b)
			continue
		}

		cc, ok := r.emu.cod.decode(b)
		if !ok {
			continue
		}
		r.emu.dec.Feed(cc)

		if cc == '\n' {
			r.mu.Lock()
			r.nlCount++
			r.inCount = 0
			r.mu.Unlock()
		}
	}

	r.mu.Lock()
	displayLines := r.emu.current.Lines()
	immediate := r.nlCount > displayLines || r.inCount > bulkCntLimit
	r.mu.Unlock()

	if immediate {
		r.showBulk()
	} else {
		r.mu.Lock()
		r.timer = time.AfterFunc(bulkTimeout, r.showBulk)
		r.mu.Unlock()
	}
}

// showBulk builds a cooked image and pushes it plus cursor, wrap
// flags, and scroll state to the display, then resets the counters.
func (r *refreshScheduler) showBulk() {
	r.mu.Lock()
	r.nlCount = 0
	r.inCount = 0
	r.mu.Unlock()

	r.emu.mu.Lock()
	defer r.emu.mu.Unlock()
	if r.emu.holdScreen {
		// Scroll lock: keep decoding, defer the snapshot.
		r.mu.Lock()
		r.held = true
		r.mu.Unlock()
		return
	}
	r.showBulkLocked()
}

// releaseHold pushes out a snapshot that was suppressed while scroll
// lock was engaged. Called by Emulator.ScrollLock on unlock.
func (r *refreshScheduler) releaseHold() {
	r.mu.Lock()
	held := r.held
	r.held = false
	r.mu.Unlock()
	if held {
		r.showBulk()
	}
}

func (r *refreshScheduler) showBulkLocked() {
	scr := r.emu.current
	e := r.emu

	e.display.SetImage(scr.CookedImage(), scr.Lines(), scr.Columns())
	e.display.SetCursorPos(scr.CursorX(), scr.CursorY())
	e.display.SetLineWrapped(scr.LineWrappedFlags())

	total := 0
	if h := scr.History(); h != nil {
		total = h.Lines()
	}
	e.display.SetScroll(scr.HistCursor(), total)
}

// Flush forces any pending coalesced update out immediately; Session
// calls this during teardown so a final partial block isn't lost to
// an unfired timer.
func (r *refreshScheduler) Flush() {
	r.mu.Lock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.mu.Unlock()
	r.showBulk()
}

package vqonsole

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// silenceTimeout is the delay of inactivity after which a
// silence-monitoring Session fires NotifySilence.
const silenceTimeout = 10 * time.Second

// Session binds one PTYHost to one Emulator/Display pair and owns the
// window-title and activity/silence signals neither the PTYHost nor
// the Display contract carries on its own.
type Session struct {
	ID string

	mu sync.Mutex

	pty PTYHost
	Emu *Emulator

	title     string
	userTitle string
	iconText  string

	stateIconName string

	monitorActivity bool
	monitorSilence  bool
	silenceTimer    *time.Timer

	onUpdateTitle func()
	onState       func(NotifyState)
	onDone        func(status int)
}

// SessionOption configures a Session at construction time.
type SessionOption func(*Session)

func WithSessionID(id string) SessionOption {
	return func(s *Session) { s.ID = id }
}

func WithSessionTitleChanged(f func()) SessionOption {
	return func(s *Session) { s.onUpdateTitle = f }
}

func WithSessionStateChanged(f func(NotifyState)) SessionOption {
	return func(s *Session) { s.onState = f }
}

func WithSessionDone(f func(status int)) SessionOption {
	return func(s *Session) { s.onDone = f }
}

// WithSessionMonitorActivity enables NotifyActivity forwarding to
// onState immediately at construction, rather than requiring a
// separate SetMonitorActivity(true) call.
func WithSessionMonitorActivity(on bool) SessionOption {
	return func(s *Session) { s.monitorActivity = on }
}

// NewSession creates a Session of the given size bound to pty and
// display, wiring an Emulator whose notify/title callbacks route
// through the Session's own activity/silence/title bookkeeping.
func NewSession(lines, columns int, pty PTYHost, display Display, opts ...SessionOption) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		pty:      pty,
		iconText: "vqonsole",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.onUpdateTitle == nil {
		s.onUpdateTitle = func() {}
	}
	if s.onState == nil {
		s.onState = func(NotifyState) {}
	}
	if s.onDone == nil {
		s.onDone = func(int) {}
	}

	s.Emu = NewEmulator(lines, columns,
		WithEmulatorPTYHost(pty),
		WithEmulatorDisplay(display),
		WithEmulatorNotify(s.notifySessionState),
		WithEmulatorTitleChanged(s.setUserTitle),
	)
	return s
}

// Run spawns program under the session's PTY host, sized to the
// emulator's current screen.
func (s *Session) Run(program string, args []string, term string) error {
	return s.pty.Spawn(program, args, term, s.Emu.Current().Lines(), s.Emu.Current().Columns())
}

// OnRcvBlock forwards a block of PTY output to the emulator. A
// concrete PTYHost's read loop calls this as its data callback.
func (s *Session) OnRcvBlock(data []byte) {
	s.Emu.OnRcvBlock(data)
}

// Done reports child-process exit: it stops the silence timer,
// flushes any pending display update, clears the selection and calls
// the done callback. The emulator stays queryable; Done does not stop
// later OnRcvBlock calls from feeding it.
func (s *Session) Done(status int) {
	s.mu.Lock()
	if s.silenceTimer != nil {
		s.silenceTimer.Stop()
	}
	s.mu.Unlock()
	s.Emu.Flush()
	s.Emu.Current().ClearSelection()
	s.onDone(status)
}

// SetMonitorActivity toggles whether NotifyActivity is forwarded to
// onState at all.
func (s *Session) SetMonitorActivity(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitorActivity = on
}

// SetMonitorSilence toggles silence detection: enabling arms a
// one-shot timer that re-arms itself and fires NotifySilence every
// silenceTimeout of continuous inactivity.
func (s *Session) SetMonitorSilence(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.monitorSilence == on {
		return
	}
	s.monitorSilence = on
	if on {
		s.silenceTimer = time.AfterFunc(silenceTimeout, s.monitorTimerDone)
	} else if s.silenceTimer != nil {
		s.silenceTimer.Stop()
		s.silenceTimer = nil
	}
}

func (s *Session) monitorTimerDone() {
	s.onState(NotifySilence)
	s.mu.Lock()
	if s.monitorSilence {
		s.silenceTimer = time.AfterFunc(silenceTimeout, s.monitorTimerDone)
	}
	s.mu.Unlock()
}

// notifySessionState routes state changes from the emulator: activity
// resets the silence timer and is only forwarded onward when activity
// monitoring is enabled; every other state passes straight through.
// Silence detection runs whether or not activity is being forwarded.
func (s *Session) notifySessionState(state NotifyState) {
	if state == NotifyActivity {
		s.mu.Lock()
		if s.monitorSilence && s.silenceTimer != nil {
			s.silenceTimer.Stop()
			s.silenceTimer = time.AfterFunc(silenceTimeout, s.monitorTimerDone)
		}
		monitor := s.monitorActivity
		s.mu.Unlock()
		if !monitor {
			return
		}
	}
	s.onState(state)
}

// setUserTitle applies an OSC title/icon change: what=0 changes both,
// what=1 icon only, what=2 title only.
func (s *Session) setUserTitle(what int, caption string) {
	s.mu.Lock()
	if what == 0 || what == 2 {
		s.userTitle = caption
	}
	if what == 0 || what == 1 {
		s.iconText = caption
	}
	s.mu.Unlock()
	s.onUpdateTitle()
}

// FullTitle composes the title the child set via OSC 0/2 with the
// session's base title from SetTitle ("<osc title> - <base title>"),
// or returns the base title alone when the child has set none.
func (s *Session) FullTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userTitle != "" {
		return s.userTitle + " - " + s.title
	}
	return s.title
}

// SetTitle sets the session's base window title (the part not under
// the child's OSC control).
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	s.title = title
	s.mu.Unlock()
	s.onUpdateTitle()
}

func (s *Session) UserTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userTitle
}

func (s *Session) IconText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.iconText
}

// TestAndSetStateIconName reports whether newname differs from the
// previously recorded state icon, updating it if so — used to
// suppress redundant icon-change notifications.
func (s *Session) TestAndSetStateIconName(newname string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if newname != s.stateIconName {
		s.stateIconName = newname
		return true
	}
	return false
}

// SetConnected forwards connect/disconnect state to the emulator.
func (s *Session) SetConnected(connected bool) {
	s.Emu.SetConnected(connected)
}

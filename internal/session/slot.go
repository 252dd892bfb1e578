// Package session provides explicit ownership of the single active
// game run: a process-level slot holds at most one run handle, and
// installing a replacement disposes the previous one first. This keeps
// sensor subscriptions and tick scheduling from ever being duplicated
// across restarts.
package session

import "sync"

// Run is a disposable handle to one active game run. Dispose must
// release everything the run holds (sensor subscription, scheduled
// ticks) and must be safe to call more than once.
type Run interface {
	Dispose()
}

// Slot owns at most one active run.
type Slot struct {
	mu      sync.Mutex
	current Run
}

// Install disposes the currently held run (if any) and installs the
// replacement. Passing nil just disposes the current run.
func (s *Slot) Install(run Run) {
	s.mu.Lock()
	old := s.current
	s.current = run
	s.mu.Unlock()

	if old != nil {
		old.Dispose()
	}
}

// Current returns the active run, or nil when the slot is empty.
func (s *Slot) Current() Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Dispose empties the slot, disposing the held run.
func (s *Slot) Dispose() {
	s.Install(nil)
}

// RunFunc adapts a cleanup function into a Run. The function is
// invoked at most once, however many times Dispose is called.
type RunFunc struct {
	once sync.Once
	fn   func()
}

// NewRunFunc wraps fn as a once-guarded Run.
func NewRunFunc(fn func()) *RunFunc {
	return &RunFunc{fn: fn}
}

// Dispose invokes the cleanup function exactly once.
func (r *RunFunc) Dispose() {
	r.once.Do(func() {
		if r.fn != nil {
			r.fn()
		}
	})
}

package sensor

import (
	"context"
	"sync"
	"time"
)

// Emulator is a keyboard-driven orientation source. It holds a current
// beta angle and emits it at a fixed sensor rate; Nudge shifts the
// angle, so a single nudge larger than the gesture threshold reads as
// a tilt flick on the next emission.
type Emulator struct {
	rateHz   int
	nudgeDeg float64

	mu     sync.Mutex
	beta   float64
	cancel context.CancelFunc
}

// NewEmulator creates an emulator emitting rateHz samples per second.
// nudgeDeg is the angle step applied per Nudge call.
func NewEmulator(rateHz int, nudgeDeg float64) *Emulator {
	if rateHz <= 0 {
		rateHz = 30
	}
	return &Emulator{
		rateHz:   rateHz,
		nudgeDeg: nudgeDeg,
	}
}

// Start begins emitting samples. Starting an already-running emulator
// stops the previous subscription first, so at most one is ever live.
// The emulator never denies permission.
func (e *Emulator) Start(ctx context.Context) (<-chan Sample, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	out := make(chan Sample, 16)
	go e.run(ctx, out)
	return out, nil
}

func (e *Emulator) run(ctx context.Context, out chan<- Sample) {
	defer close(out)

	ticker := time.NewTicker(time.Second / time.Duration(e.rateHz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case out <- Reading(e.Current()):
			default:
				// Consumer is behind; drop rather than block.
			}
		}
	}
}

// Stop cancels the running subscription. Idempotent.
func (e *Emulator) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Current returns the emulated beta angle.
func (e *Emulator) Current() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.beta
}

// Nudge shifts the emulated angle by direction*nudgeDeg. The change is
// picked up by the next scheduled emission.
func (e *Emulator) Nudge(direction float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.beta += direction * e.nudgeDeg
}

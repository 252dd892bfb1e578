package beam

import "github.com/savelyev-an/tiltbeam/internal/core"

// Blinker alternates the beam color for a fixed number of cycles at a
// fixed tick interval, then restores the neutral color. Triggering
// while a blink is in progress is ignored (a flag, not a queue).
type Blinker struct {
	cycles   int
	interval int // Ticks per on/off phase

	active    bool
	color     core.Color
	on        bool
	counter   int
	remaining int // Phases left (two per cycle)
}

// NewBlinker creates a blinker running the given number of on/off
// cycles with the given phase length in ticks.
func NewBlinker(cycles, intervalTicks int) *Blinker {
	if cycles < 1 {
		cycles = 1
	}
	if intervalTicks < 1 {
		intervalTicks = 1
	}
	return &Blinker{
		cycles:   cycles,
		interval: intervalTicks,
	}
}

// Trigger starts a blink in the given color. Ignored while one is
// already running.
func (b *Blinker) Trigger(c core.Color) {
	if b.active {
		return
	}
	b.active = true
	b.color = c
	b.on = true
	b.counter = 0
	b.remaining = b.cycles * 2
}

// Advance moves the effect forward by one tick.
func (b *Blinker) Advance() {
	if !b.active {
		return
	}

	b.counter++
	if b.counter < b.interval {
		return
	}
	b.counter = 0

	b.remaining--
	if b.remaining <= 0 {
		b.active = false
		b.on = false
		return
	}
	b.on = !b.on
}

// Active reports whether a blink is in progress.
func (b *Blinker) Active() bool {
	return b.active
}

// Color returns the color the beam should render with right now:
// the blink color during an on phase, neutral otherwise.
func (b *Blinker) Color(neutral core.Color) core.Color {
	if b.active && b.on {
		return b.color
	}
	return neutral
}

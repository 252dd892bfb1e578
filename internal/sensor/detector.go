package sensor

import "math"

// Detector recognizes tilt gestures with a debounced-delta algorithm:
// a gesture fires when the movement across the sliding window exceeds
// the threshold AND enough time passed since the last accepted gesture.
// Small jitters stay below the threshold; the debounce rate-limits
// repeated triggers. Time is measured in simulation ticks so detection
// stays deterministic.
type Detector struct {
	window        Window
	thresholdDeg  float64
	debounceTicks uint64

	lastFire uint64
	fired    bool
}

// NewDetector creates a detector. thresholdDeg is the movement (in
// degrees) a gesture must exceed; debounceTicks is the minimum tick
// distance between accepted gestures.
func NewDetector(thresholdDeg float64, debounceTicks uint64, windowSize int) *Detector {
	return &Detector{
		window:        NewWindow(windowSize),
		thresholdDeg:  thresholdDeg,
		debounceTicks: debounceTicks,
	}
}

// Observe feeds one sample at the given tick and reports whether a
// qualifying gesture fired. Invalid samples are ignored entirely: they
// neither enter the window nor affect the debounce clock. The first
// gesture of a run is never debounced.
func (d *Detector) Observe(s Sample, now uint64) bool {
	if !s.Valid {
		return false
	}

	d.window.Push(s.Beta)

	// A flick can tilt either direction; only the magnitude matters.
	if math.Abs(d.window.Movement()) <= d.thresholdDeg {
		return false
	}
	if d.fired && now-d.lastFire < d.debounceTicks {
		return false
	}

	d.fired = true
	d.lastFire = now
	return true
}

// WindowLen returns how many samples the sliding window currently holds.
func (d *Detector) WindowLen() int {
	return d.window.Len()
}

// WindowValues returns the window's angles, oldest first.
func (d *Detector) WindowValues() []float64 {
	return d.window.Values()
}

// Reset clears the window and the debounce state for a fresh run.
func (d *Detector) Reset() {
	d.window.Reset()
	d.lastFire = 0
	d.fired = false
}

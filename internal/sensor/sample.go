// Package sensor models device-tilt input: orientation samples, the
// sliding window over recent readings, the debounced gesture detector,
// and the sources that deliver samples to the platform.
package sensor

// Sample is a single orientation reading. Beta is the front-to-back
// tilt angle in degrees. A reading with Valid=false means the sensor
// delivered no usable angle; consumers must ignore it without state
// change. A beta of 0 is a normal reading.
type Sample struct {
	Beta  float64
	Valid bool
}

// Reading creates a valid sample with the given beta angle.
func Reading(beta float64) Sample {
	return Sample{Beta: beta, Valid: true}
}

// Absent creates a sample representing a missing sensor value.
func Absent() Sample {
	return Sample{}
}

// DefaultWindowSize is the number of recent samples the gesture
// detector considers.
const DefaultWindowSize = 3

// Window is an ordered sliding window over the most recent tilt angles.
// When full, pushing a new angle evicts the oldest.
type Window struct {
	size  int
	betas []float64
}

// NewWindow creates a window holding at most size angles.
func NewWindow(size int) Window {
	if size < 2 {
		size = DefaultWindowSize
	}
	return Window{
		size:  size,
		betas: make([]float64, 0, size),
	}
}

// Push appends a beta angle, evicting the oldest when full.
func (w *Window) Push(beta float64) {
	if len(w.betas) == w.size {
		copy(w.betas, w.betas[1:])
		w.betas = w.betas[:w.size-1]
	}
	w.betas = append(w.betas, beta)
}

// Movement returns newest minus oldest angle, or 0 when fewer than
// two samples are present.
func (w *Window) Movement() float64 {
	if len(w.betas) < 2 {
		return 0
	}
	return w.betas[len(w.betas)-1] - w.betas[0]
}

// Len returns the number of samples currently held.
func (w *Window) Len() int {
	return len(w.betas)
}

// Values returns a copy of the held angles, oldest first.
func (w *Window) Values() []float64 {
	out := make([]float64, len(w.betas))
	copy(out, w.betas)
	return out
}

// Reset drops all held samples.
func (w *Window) Reset() {
	w.betas = w.betas[:0]
}

package sensor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Defaults at 60 FPS: 8 degree threshold, 200ms debounce = 12 ticks.
const (
	testThreshold = 8.0
	testDebounce  = 12
)

func newTestDetector() *Detector {
	return NewDetector(testThreshold, testDebounce, DefaultWindowSize)
}

func TestDetectorThresholdBoundary(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		fires  bool
	}{
		{"exactly 8 does not fire", []float64{0, 8}, false},
		{"just above 8 fires", []float64{0, 8.01}, true},
		{"negative flick fires", []float64{0, -9}, true},
		{"small jitter ignored", []float64{0, 3, 5}, false},
		{"accumulated across window fires", []float64{0, 5, 9}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDetector()
			fired := false
			for i, beta := range tc.deltas {
				if d.Observe(Reading(beta), uint64(i)) {
					fired = true
				}
			}
			assert.Equal(t, tc.fires, fired)
		})
	}
}

func TestDetectorDebounce(t *testing.T) {
	d := newTestDetector()

	// First gesture at tick 0 is never debounced.
	d.Observe(Reading(0), 0)
	require.True(t, d.Observe(Reading(20), 0), "first qualifying gesture must fire")

	// A second gesture 9 ticks (150ms) later must not register.
	assert.False(t, d.Observe(Reading(100), 9), "gesture 150ms after previous must be debounced")

	// At 12 ticks (200ms) the gesture registers again.
	assert.True(t, d.Observe(Reading(200), 12), "gesture 200ms after previous must fire")
}

func TestDetectorIgnoresInvalidSamples(t *testing.T) {
	d := newTestDetector()

	d.Observe(Reading(0), 0)
	assert.False(t, d.Observe(Absent(), 1), "invalid sample must not fire")
	assert.Equal(t, 1, d.WindowLen(), "invalid sample must not enter the window")

	// Zero beta is a real reading and does enter the window.
	d.Observe(Reading(0), 2)
	assert.Equal(t, 2, d.WindowLen())
}

func TestDetectorReset(t *testing.T) {
	d := newTestDetector()
	d.Observe(Reading(0), 5) // Baseline: a one-sample window has zero movement
	require.True(t, d.Observe(Reading(50), 5))

	d.Reset()
	assert.Equal(t, 0, d.WindowLen())

	// After reset the debounce state is gone: an immediate gesture fires.
	d.Observe(Reading(0), 6)
	assert.True(t, d.Observe(Reading(50), 6))
}

func TestLoadTrace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flicks.yaml")

	data := []byte(`samples:
  - at_ms: 100
    beta: 12.5
  - at_ms: 0
    beta: 1.0
  - at_ms: 50
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	trace, err := LoadTrace(path)
	require.NoError(t, err)
	require.Len(t, trace.Samples, 3)

	// Sorted by timestamp.
	assert.Equal(t, 0, trace.Samples[0].AtMS)
	assert.Equal(t, 50, trace.Samples[1].AtMS)
	assert.Equal(t, 100, trace.Samples[2].AtMS)

	// Point without beta becomes an invalid sample.
	assert.False(t, trace.Samples[1].Sample().Valid)
	assert.True(t, trace.Samples[2].Sample().Valid)
	assert.Equal(t, 12.5, trace.Samples[2].Sample().Beta)
}

func TestLoadTraceErrors(t *testing.T) {
	_, err := LoadTrace(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing trace file must refuse to start")

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("samples: []\n"), 0o600))
	_, err = LoadTrace(empty)
	assert.Error(t, err, "empty trace must be rejected")
}

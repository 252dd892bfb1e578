package sensor

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// TracePoint is one recorded sensor reading. A nil Beta marks a sample
// the sensor delivered without a usable angle.
type TracePoint struct {
	AtMS int      `yaml:"at_ms"`
	Beta *float64 `yaml:"beta"`
}

// Trace is a recorded sequence of orientation readings.
type Trace struct {
	Samples []TracePoint `yaml:"samples"`
}

// LoadTrace reads and parses a YAML trace file. Points are returned
// sorted by timestamp.
func LoadTrace(path string) (Trace, error) {
	var trace Trace

	data, err := os.ReadFile(path)
	if err != nil {
		return trace, fmt.Errorf("sensor: cannot read trace %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &trace); err != nil {
		return trace, fmt.Errorf("sensor: cannot parse trace %s: %w", path, err)
	}
	if len(trace.Samples) == 0 {
		return trace, fmt.Errorf("sensor: trace %s contains no samples", path)
	}

	sort.SliceStable(trace.Samples, func(i, j int) bool {
		return trace.Samples[i].AtMS < trace.Samples[j].AtMS
	})
	return trace, nil
}

// Sample converts a trace point to a Sample.
func (p TracePoint) Sample() Sample {
	if p.Beta == nil {
		return Absent()
	}
	return Reading(*p.Beta)
}

// Replay plays a recorded trace file on its original schedule.
// A missing or unreadable trace is the permission-denied path: Start
// returns the error and the game must not begin.
type Replay struct {
	path   string
	logger *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewReplay creates a replay source for the given trace file.
func NewReplay(path string, logger *log.Logger) *Replay {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Replay{
		path:   path,
		logger: logger,
	}
}

// Start loads the trace and begins replaying it. The returned channel
// closes when the trace runs out or the context is cancelled.
func (r *Replay) Start(ctx context.Context) (<-chan Sample, error) {
	trace, err := LoadTrace(r.path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	r.logger.Debug("trace loaded", "path", r.path, "samples", len(trace.Samples))

	out := make(chan Sample, 16)
	go r.run(ctx, trace, out)
	return out, nil
}

func (r *Replay) run(ctx context.Context, trace Trace, out chan<- Sample) {
	defer close(out)

	start := time.Now()
	for _, p := range trace.Samples {
		due := start.Add(time.Duration(p.AtMS) * time.Millisecond)
		if wait := time.Until(due); wait > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}

		select {
		case <-ctx.Done():
			return
		case out <- p.Sample():
		}
	}

	r.logger.Info("trace finished", "path", r.path)
}

// Stop cancels the running replay. Idempotent.
func (r *Replay) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

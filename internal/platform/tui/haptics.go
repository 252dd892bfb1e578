package tui

import (
	"io"
	"os"

	"github.com/savelyev-an/tiltbeam/internal/core"
)

// Haptics translates game feedback events into something the player
// can feel (or hear, in a terminal).
type Haptics interface {
	Feedback(e core.Event)
}

// BellHaptics plays the terminal bell: a double chime on a hit, a
// single one on a miss, so the outcome is distinguishable without
// looking.
type BellHaptics struct {
	w io.Writer
}

// NewBellHaptics creates bell-based feedback writing to stdout.
func NewBellHaptics() *BellHaptics {
	return &BellHaptics{w: os.Stdout}
}

func (b *BellHaptics) Feedback(e core.Event) {
	switch e {
	case core.EventHit:
		io.WriteString(b.w, "\a\a") //nolint:errcheck // Best-effort feedback
	case core.EventMiss:
		io.WriteString(b.w, "\a") //nolint:errcheck // Best-effort feedback
	}
}

// NoopHaptics discards all feedback. Used for SSH sessions where the
// bell would ring on the server.
type NoopHaptics struct{}

func (NoopHaptics) Feedback(core.Event) {}

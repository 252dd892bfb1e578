// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, sensor subscription and
// game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/savelyev-an/tiltbeam/internal/sensor"
)

// TickMsg is sent to trigger a game simulation tick. The generation
// lets the model discard ticks scheduled before a restart, so only
// one tick loop drives the simulation at a time.
type TickMsg struct {
	At  time.Time
	Gen int
}

// TiltMsg delivers one sensor sample to the game. It carries the
// generation of the subscription that produced it.
type TiltMsg struct {
	Sample sensor.Sample
	Gen    int
}

// sensorClosedMsg signals that the sample channel was closed.
type sensorClosedMsg struct {
	Gen int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

// waitSampleCmd blocks on the sample channel and converts the next
// sample into a TiltMsg.
func waitSampleCmd(samples <-chan sensor.Sample, gen int) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-samples
		if !ok {
			return sensorClosedMsg{Gen: gen}
		}
		return TiltMsg{Sample: s, Gen: gen}
	}
}

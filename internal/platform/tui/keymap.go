package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savelyev-an/tiltbeam/internal/core"
)

// isQuitKey reports whether the key should terminate the program.
func isQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// tiltDirection maps keyboard keys to emulated tilt nudges.
// Returns the direction (-1 left, +1 right) and whether the key is a
// tilt key at all.
func tiltDirection(msg tea.KeyMsg) (float64, bool) {
	switch msg.String() {
	case "left", "a":
		return -1, true
	case "right", "d":
		return 1, true
	}
	return 0, false
}

// mapKeyAction maps a key press to a game action once the round is
// running. The pre-arm "press any key" tap is handled by the caller.
func mapKeyAction(msg tea.KeyMsg, gameOver bool) core.Action {
	switch msg.String() {
	case "p", "esc":
		return core.ActionPause
	case "r":
		if gameOver {
			return core.ActionRestart
		}
	}

	return core.ActionNone
}

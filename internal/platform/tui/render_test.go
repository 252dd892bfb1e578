package tui

import (
	"strings"
	"testing"

	"github.com/savelyev-an/tiltbeam/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	palette := []core.Color{
		core.ColorDefault,
		core.ColorRed,
		core.ColorGreen,
		core.ColorYellow,
		core.ColorBlue,
		core.ColorMagenta,
		core.ColorCyan,
		core.ColorWhite,
		core.ColorBrightRed,
		core.ColorBrightGreen,
		core.ColorBrightYellow,
		core.ColorBrightBlue,
		core.ColorBrightMagenta,
		core.ColorBrightCyan,
		core.ColorBrightWhite,
		core.ColorOrange,
		core.ColorGray,
	}

	for _, c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style mapping", c)
		}
	}

	seen := make(map[core.Color]bool, len(palette))
	for _, c := range palette {
		if seen[c] {
			t.Errorf("color %d appears twice in the palette", c)
		}
		seen[c] = true
	}
}

func TestRenderScreenPreservesLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "beam", core.ColorBrightGreen)
	s.DrawTextColored(0, 2, "dial", core.ColorGray)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "beam") {
		t.Errorf("row 0 = %q, expected it to contain %q", lines[0], "beam")
	}
	if !strings.Contains(lines[2], "dial") {
		t.Errorf("row 2 = %q, expected it to contain %q", lines[2], "dial")
	}
}

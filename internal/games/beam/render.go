package beam

import (
	"fmt"
	"math"

	"github.com/savelyev-an/tiltbeam/internal/core"
)

// Visual characters for rendering
const (
	beamChar   = '█'
	beamTip    = '●'
	rimChar    = '·'
	zoneChar   = '▒'
	centerChar = '┼'
)

const neutralColor = core.ColorCyan

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawHUD(dst)
	g.drawDial(dst)

	switch {
	case !g.armed:
		drawCenteredPanel(dst, "TILT BEAM",
			"Flick when the beam crosses the top arc",
			"Press any key to start")
	case g.paused:
		drawCenteredPanel(dst, "PAUSED", "Press P to resume")
	case g.gameOver && g.won:
		drawCenteredPanel(dst, "YOU WIN!",
			fmt.Sprintf("Points: %d", g.points),
			"Press R to play again")
	case g.gameOver:
		drawCenteredPanel(dst, "GAME OVER",
			fmt.Sprintf("Points: %d", g.points),
			"Press R to restart")
	}
}

// drawHUD writes the lives and points counters on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Lives: %d ", g.lives))

	points := fmt.Sprintf(" Points: %d ", g.points)
	dst.DrawText(dst.Width()-len(points)-2, 0, points)
}

// drawDial draws the rim, the target arc, and the beam itself.
// Angle 0 is the top of the dial, increasing clockwise; the x radius
// is doubled to compensate for terminal cell aspect ratio.
func (g *Game) drawDial(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	ry := (h - 4) / 2
	if ry < 3 {
		ry = 3
	}
	rx := ry * 2
	if rx > (w-4)/2 {
		rx = (w - 4) / 2
	}
	cx := w / 2
	cy := 2 + ry

	// Rim ticks every 15 degrees.
	for deg := 0; deg < 360; deg += 15 {
		x, y := dialPoint(cx, cy, rx, ry, float64(deg), 1.0)
		dst.SetColored(x, y, rimChar, core.ColorGray)
	}

	// Target arc, boundaries inclusive.
	start := g.tuning.Beam.ZoneStartDeg
	end := g.tuning.Beam.ZoneEndDeg
	if start == 0 && end == 0 {
		start, end = 335, 25
	}
	for deg := start; deg < 360; deg += 2 {
		x, y := dialPoint(cx, cy, rx, ry, deg, 1.0)
		dst.SetColored(x, y, zoneChar, core.ColorGreen)
	}
	for deg := 0.0; deg <= end; deg += 2 {
		x, y := dialPoint(cx, cy, rx, ry, deg, 1.0)
		dst.SetColored(x, y, zoneChar, core.ColorGreen)
	}

	// Beam from center to rim in the current feedback color.
	color := neutralColor
	if g.blink != nil {
		color = g.blink.Color(neutralColor)
	}
	steps := rx
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x, y := dialPoint(cx, cy, rx, ry, g.rotation, t)
		dst.SetColored(x, y, beamChar, color)
	}
	tx, ty := dialPoint(cx, cy, rx, ry, g.rotation, 1.0)
	dst.SetColored(tx, ty, beamTip, color)

	dst.SetColored(cx, cy, centerChar, core.ColorWhite)
}

// dialPoint maps a dial angle and radial fraction to screen coordinates.
func dialPoint(cx, cy, rx, ry int, deg, t float64) (int, int) {
	rad := deg * math.Pi / 180
	x := cx + int(math.Round(math.Sin(rad)*float64(rx)*t))
	y := cy - int(math.Round(math.Cos(rad)*float64(ry)*t))
	return x, y
}

// drawCenteredPanel draws a boxed message in the center of the screen.
func drawCenteredPanel(dst *core.Screen, lines ...string) {
	w, h := dst.Width(), dst.Height()

	boxW := 0
	for _, line := range lines {
		if len(line) > boxW {
			boxW = len(line)
		}
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		x := boxX + (boxW-len(line))/2
		dst.DrawText(x, boxY+1+i*2, line)
	}
}

// Package beam implements the tilt-beam game: a beam sweeps around a
// dial and the player must flick the device (or the emulated tilt)
// exactly while the beam crosses the top arc. Hits score points and
// speed the beam up; misses cost lives.
package beam

import (
	"math"

	"github.com/savelyev-an/tiltbeam/internal/config"
	"github.com/savelyev-an/tiltbeam/internal/core"
	"github.com/savelyev-an/tiltbeam/internal/registry"
	"github.com/savelyev-an/tiltbeam/internal/sensor"
)

// Game implements the tilt-beam game logic.
type Game struct {
	cfg    core.RuntimeConfig
	tuning config.BeamConfig

	rotation float64 // Beam angle, always in [0, 360)
	speed    float64 // Degrees per tick, never decreases within a run
	lives    int
	points   int

	armed    bool // Set by the one-shot start tap
	gameOver bool
	won      bool
	paused   bool

	tick     uint64
	detector *sensor.Detector
	blink    *Blinker

	pending []core.Event
}

// Package-level config knobs, set by the CLI before game creation
// (same pattern as the other tuning-driven games on this platform).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom tuning file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset: easy, normal, hard.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new tilt-beam game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("beam", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "beam"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tilt Beam"
}

// Tuning returns the effective configuration after the last Reset.
func (g *Game) Tuning() config.BeamConfig {
	return g.tuning
}

// Armed reports whether the start gesture has fired.
func (g *Game) Armed() bool {
	return g.armed
}

// Reset initializes or restarts the game. All fields return to their
// defaults; the run stays disarmed until the start tap.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	tuning, err := config.LoadBeam(configPath)
	if err != nil {
		tuning = config.DefaultBeamConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBeamPreset(&tuning, config.DifficultyPreset(difficultyPreset))
	}
	g.tuning = tuning

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.detector = sensor.NewDetector(
		tuning.Gesture.ThresholdDeg,
		msToTicks(tuning.Gesture.DebounceMS, tickRate),
		tuning.Gesture.WindowSize,
	)
	g.blink = NewBlinker(
		tuning.Feedback.BlinkCycles,
		int(msToTicks(tuning.Feedback.BlinkIntervalMS, tickRate)),
	)

	g.rotation = 0
	g.speed = tuning.Beam.BaseSpeed
	g.lives = tuning.Rules.Lives
	g.points = 0
	g.armed = false
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tick = 0
	g.pending = nil
}

// Tilt consumes one orientation sample. Invalid samples are ignored
// without any state change. A qualifying gesture (movement above the
// threshold, outside the debounce interval) evaluates a hit against
// the current beam position.
func (g *Game) Tilt(s sensor.Sample) {
	if !g.armed || g.gameOver || g.paused {
		return
	}
	if g.detector.Observe(s, g.tick) {
		g.evaluateHit()
	}
}

// evaluateHit scores the gesture against the target arc.
func (g *Game) evaluateHit() {
	r := normalizeDeg(g.rotation)

	// The arc straddles 0: [zoneStart, 360) U [0, zoneEnd], inclusive.
	if r >= g.tuning.Beam.ZoneStartDeg || r <= g.tuning.Beam.ZoneEndDeg {
		g.points++
		g.blink.Trigger(core.ColorBrightGreen)
		g.pending = append(g.pending, core.EventHit)

		if step := g.tuning.Beam.SpeedStepPoints; step > 0 && g.points%step == 0 {
			g.speed += g.tuning.Beam.SpeedIncrement
		}
		return
	}

	g.lives--
	g.blink.Trigger(core.ColorBrightRed)
	g.pending = append(g.pending, core.EventMiss)

	if g.lives <= 0 {
		g.lives = 0
		g.endGame()
	}
}

// endGame freezes the run and decides the win/lose branch.
func (g *Game) endGame() {
	g.gameOver = true
	g.won = g.points > g.tuning.Rules.WinThreshold
	g.pending = append(g.pending, core.EventGameOver)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.cfg)
		return g.result()
	}

	if !g.armed {
		if in.Has(core.ActionTap) {
			g.armed = true
		}
		return g.result()
	}

	if g.gameOver {
		// Rotation stays frozen.
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	g.rotation = normalizeDeg(g.rotation + g.speed)
	g.blink.Advance()

	return g.result()
}

// result drains pending events into a StepResult.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Events: g.pending}
	g.pending = nil
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Points:   g.points,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// normalizeDeg wraps an angle into [0, 360).
func normalizeDeg(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// msToTicks converts a millisecond duration to simulation ticks,
// rounding to the nearest tick.
func msToTicks(ms, tickRate int) uint64 {
	if ms <= 0 {
		return 0
	}
	ticks := (ms*tickRate + 500) / 1000
	if ticks < 1 {
		ticks = 1
	}
	return uint64(ticks)
}

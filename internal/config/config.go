// Package config provides YAML-based game configuration loading and
// difficulty presets for the tiltbeam arcade.
package config

// BeamConfig contains all tuning for the tilt-beam game.
type BeamConfig struct {
	Beam     BeamTuning     `yaml:"beam"`
	Gesture  GestureTuning  `yaml:"gesture"`
	Rules    RulesTuning    `yaml:"rules"`
	Feedback FeedbackTuning `yaml:"feedback"`
	Sensor   SensorTuning   `yaml:"sensor"`
}

// BeamTuning defines the rotation and target-zone parameters.
type BeamTuning struct {
	BaseSpeed       float64 `yaml:"base_speed"`        // Degrees per tick at run start
	SpeedIncrement  float64 `yaml:"speed_increment"`   // Added every SpeedStepPoints points
	SpeedStepPoints int     `yaml:"speed_step_points"` // Points between speed bumps
	ZoneStartDeg    float64 `yaml:"zone_start_deg"`    // Hit arc lower bound (inclusive)
	ZoneEndDeg      float64 `yaml:"zone_end_deg"`      // Hit arc upper bound (inclusive), wraps through 0
}

// GestureTuning defines the tilt gesture detector parameters.
type GestureTuning struct {
	ThresholdDeg float64 `yaml:"threshold_deg"` // Movement must exceed this to fire
	DebounceMS   int     `yaml:"debounce_ms"`   // Minimum gap between accepted gestures
	WindowSize   int     `yaml:"window_size"`   // Sliding window length
}

// RulesTuning defines the win/lose rules.
type RulesTuning struct {
	Lives        int `yaml:"lives"`
	WinThreshold int `yaml:"win_threshold"` // Strictly more points than this wins
}

// FeedbackTuning defines the blink feedback effect.
type FeedbackTuning struct {
	BlinkCycles     int `yaml:"blink_cycles"`
	BlinkIntervalMS int `yaml:"blink_interval_ms"`
}

// SensorTuning defines the emulated sensor behavior.
type SensorTuning struct {
	RateHz   int     `yaml:"rate_hz"`   // Sample emission rate
	NudgeDeg float64 `yaml:"nudge_deg"` // Angle step per keyboard nudge
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyBeamPreset modifies the config based on a difficulty preset.
// Normal keeps the stock tuning untouched.
func ApplyBeamPreset(cfg *BeamConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Beam.BaseSpeed = 3.0
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Beam.BaseSpeed = 5.0
	}
}

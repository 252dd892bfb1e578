package config

import (
	_ "embed"
)

//go:embed defaults/beam.yaml
var defaultBeamYAML []byte

// DefaultBeamConfig returns the stock beam game configuration.
// The gesture and zone numbers are gameplay-tuned; changing them
// changes what counts as a hit.
func DefaultBeamConfig() BeamConfig {
	return BeamConfig{
		Beam: BeamTuning{
			BaseSpeed:       4.0,
			SpeedIncrement:  0.7,
			SpeedStepPoints: 5,
			ZoneStartDeg:    335,
			ZoneEndDeg:      25,
		},
		Gesture: GestureTuning{
			ThresholdDeg: 8,
			DebounceMS:   200,
			WindowSize:   3,
		},
		Rules: RulesTuning{
			Lives:        3,
			WinThreshold: 12,
		},
		Feedback: FeedbackTuning{
			BlinkCycles:     6,
			BlinkIntervalMS: 80,
		},
		Sensor: SensorTuning{
			RateHz:   30,
			NudgeDeg: 12,
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/robbo.yaml
var defaultRobboYAML []byte

// DefaultRobboConfig returns the hardcoded Robbo configuration.
func DefaultRobboConfig() RobboConfig {
	return RobboConfig{
		Level: "classic",
		Timing: TimingConfig{
			TickRate:          15,
			ShootEvery:        1,
			CreatureMoveEvery: 3,
		},
		Scoring: ScoringConfig{
			Bird:       50,
			LBear:      100,
			ClearBonus: 500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 9000,
			},
			Scaling: ScalingConfig{
				FireMultiplier: 2.0,
			},
		},
		Theme: map[string]string{
			"robbo":      "bright_yellow",
			"bird":       "bright_red",
			"lbear":      "orange",
			"moving_box": "bright_cyan",
			"box":        "yellow",
			"wall":       "gray",
			"bullet":     "bright_white",
			"laser_head": "bright_magenta",
			"gun":        "cyan",
		},
	}
}

// DefaultYAML returns the embedded default configuration.
func DefaultYAML() []byte {
	return defaultRobboYAML
}

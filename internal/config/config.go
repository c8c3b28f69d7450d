// Package config provides YAML-based game configuration loading and
// difficulty management for Robbo.
package config

// RobboConfig contains all configuration for the Robbo game.
type RobboConfig struct {
	Level      string            `yaml:"level"` // default level ID
	Timing     TimingConfig      `yaml:"timing"`
	Scoring    ScoringConfig     `yaml:"scoring"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
	Theme      map[string]string `yaml:"theme,omitempty"` // kind name -> color name
}

// TimingConfig defines the tick rate and the simulation cadences.
type TimingConfig struct {
	TickRate          int `yaml:"tick_rate"`           // ticks per second
	ShootEvery        int `yaml:"shoot_every"`         // firing is evaluated every N ticks
	CreatureMoveEvery int `yaml:"creature_move_every"` // creatures move every N ticks
}

// ScoringConfig defines the points awarded per destroyed kind.
type ScoringConfig struct {
	Bird       int `yaml:"bird"`
	LBear      int `yaml:"lbear"`
	ClearBonus int `yaml:"clear_bonus"` // awarded once when no creatures remain
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FireMultiplier      float64 `yaml:"fire_multiplier"`       // added to turret fire probability scale at max difficulty
	ShootEveryReduction int     `yaml:"shoot_every_reduction"` // shoot_every reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty input means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "robbo.yaml"

// Load loads the Robbo configuration.
// Search order: customPath -> ~/.robbo/configs/robbo.yaml -> ./configs/robbo.yaml -> embedded default
func Load(customPath string) (RobboConfig, error) {
	// Fields missing from a file keep their default values.
	cfg := DefaultRobboConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRobboYAML, &cfg); err != nil {
		return DefaultRobboConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

func tryFile(path string) (RobboConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RobboConfig{}, false
	}
	cfg := DefaultRobboConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RobboConfig{}, false
	}
	return cfg.normalized(), true
}

// normalized replaces non-positive cadences with their defaults.
func (c RobboConfig) normalized() RobboConfig {
	def := DefaultRobboConfig()
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.ShootEvery <= 0 {
		c.Timing.ShootEvery = def.Timing.ShootEvery
	}
	if c.Timing.CreatureMoveEvery <= 0 {
		c.Timing.CreatureMoveEvery = def.Timing.CreatureMoveEvery
	}
	if c.Level == "" {
		c.Level = def.Level
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".robbo", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RobboConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.CreatureMoveEvery = 4
		cfg.Scoring.ClearBonus /= 2
	case DifficultyHard:
		cfg.Timing.CreatureMoveEvery = 2
		cfg.Scoring.ClearBonus *= 2
	}
}

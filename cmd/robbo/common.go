package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robbo/internal/config"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo"
	"github.com/vovakirdan/tui-robbo/internal/logging"
	"github.com/vovakirdan/tui-robbo/internal/platform/tui"
	"github.com/vovakirdan/tui-robbo/internal/registry"
)

// loadConfig reads the game configuration and the difficulty preset flag.
func loadConfig() (config.RobboConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return cfg, preset, nil
}

// tickRate returns --fps when set, the configured rate otherwise.
func tickRate(cfg config.RobboConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Timing.TickRate
}

// newLogger builds the command logger. Interactive commands default to a
// file under ~/.robbo so log lines do not tear the alternate screen.
func newLogger(interactive bool, prefix string) (*logging.Logger, error) {
	opts := logging.Options{Level: flagLogLevel, File: flagLogFile, Prefix: prefix}
	if interactive && opts.File == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.File = filepath.Join(home, ".robbo", "robbo.log")
		}
	}
	return logging.New(opts)
}

// gameFactory creates games sharing cfg, one per level pick.
func gameFactory(cfg config.RobboConfig, logger *log.Logger) tui.GameFactory {
	return func(levelID string, preset config.DifficultyPreset) registry.Game {
		return robbo.New(robbo.Settings{
			Config:    cfg,
			Preset:    preset,
			LevelID:   levelID,
			LevelsDir: flagLevelsDir,
			Logger:    logger,
		})
	}
}

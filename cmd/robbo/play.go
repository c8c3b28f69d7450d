package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/levels"
	"github.com/vovakirdan/tui-robbo/internal/platform/tui"
	"github.com/vovakirdan/tui-robbo/internal/registry"
	"github.com/vovakirdan/tui-robbo/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play Robbo",
	Long: `Play a level. Without a level argument a level picker is shown.

Controls:
  Arrows/WASD  - Move (push boxes by walking into them)
  Space        - Fire in the facing direction
  P            - Pause
  R            - Restart (after the run ends)
  Esc/B        - Back to the level picker
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow creatures, turret fire ramps up from zero
  normal - Default pacing
  hard   - Fast creatures, turrets start aggressive
  fixed  - No progression, stays at config's initial level

Examples:
  robbo play
  robbo play classic
  robbo play arena --difficulty hard
  robbo play mylevel --levels-dir ./levels
  robbo play --config ./my-robbo.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(true, "robbo")
	if err != nil {
		return err
	}
	defer logger.Close()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = tickRate(cfg)
	rc.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if len(args) == 0 {
		lvls, err := levels.All(flagLevelsDir)
		if err != nil {
			return err
		}
		return tui.RunSession(rc, tui.SessionOptions{
			Store:   store,
			Levels:  lvls,
			NewGame: gameFactory(cfg, logger.Logger),
			Logger:  logger.Logger,
			User:    os.Getenv("USER"),
		})
	}

	levelID := args[0]
	if _, err := levels.Find(levelID, flagLevelsDir); err != nil {
		return fmt.Errorf("%w\nRun 'robbo levels' to see available levels", err)
	}

	robbo.SetDefaults(robbo.Settings{
		Config:    cfg,
		Preset:    preset,
		LevelID:   levelID,
		LevelsDir: flagLevelsDir,
		Logger:    logger.Logger,
	})
	game, err := registry.Create(robbo.GameID)
	if err != nil {
		return err
	}

	return tui.Run(game, store, rc, logger.Logger)
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/levels"
)

var (
	flagTicks     int
	flagSimBoard  bool
	flagSimEvents bool
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a level headless",
	Long: `Run a level without a terminal UI and no player input: creatures
wander and turrets fire until the run ends or --ticks is reached. The same
seed always produces the same result.

Examples:
  robbo sim --seed 42
  robbo sim arena --ticks 2000 --board
  robbo sim classic --events --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagSimBoard, "board", false, "Print the final board")
	simCmd.Flags().BoolVar(&flagSimEvents, "events", false, "Print every destruction")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, args []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(false, "robbo-sim")
	if err != nil {
		return err
	}
	defer logger.Close()

	levelID := cfg.Level
	if len(args) == 1 {
		levelID = args[0]
	}
	if levelID == "" {
		levelID = levels.DefaultID
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := robbo.New(robbo.Settings{
		Config:    cfg,
		Preset:    preset,
		LevelID:   levelID,
		LevelsDir: flagLevelsDir,
		Logger:    logger.Logger,
	})
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	if err := game.Err(); err != nil {
		return err
	}

	in := core.NewInputFrame()
	for i := 0; i < flagTicks; i++ {
		st := game.Step(in).State
		if flagSimEvents {
			tick := game.World().Clock.Tick()
			for _, d := range game.LastDestroyed() {
				fmt.Printf("tick %6d  %-9s (%2d,%2d)  %s\n", tick, d.Kind, d.Pos.X, d.Pos.Y, d.Cause)
			}
		}
		if st.GameOver {
			break
		}
	}

	fmt.Printf("seed=%d %s\n", seed, game.Snapshot())
	if flagSimBoard {
		fmt.Print(game.Board())
	}
	return nil
}

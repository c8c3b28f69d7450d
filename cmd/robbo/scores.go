package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-robbo/internal/games/robbo/levels"
	"github.com/vovakirdan/tui-robbo/internal/platform/tui"
	"github.com/vovakirdan/tui-robbo/internal/storage"
)

var (
	flagScoresTUI bool
	flagRuns      int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 scores and the recent runs of a level
(default: the configured level). With --tui the interactive scoreboard
is opened instead.

Examples:
  robbo scores
  robbo scores arena --runs 20
  robbo scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		lvls, err := levels.All(flagLevelsDir)
		if err != nil {
			return err
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err = tui.RunScoreboard(store, lvls, width, height)
		return err
	}

	levelID := levels.DefaultID
	if cfg, _, err := loadConfig(); err == nil && cfg.Level != "" {
		levelID = cfg.Level
	}
	if len(args) == 1 {
		levelID = args[0]
	}
	title := levelID
	if lvl, err := levels.Find(levelID, flagLevelsDir); err == nil && lvl.Name != "" {
		title = lvl.Name
	}

	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'robbo play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		if st, ok := stats[levelID]; ok {
			fmt.Println()
			fmt.Printf("Runs: %d  Won: %d  Best: %d  Average: %.0f\n", st.Runs, st.Wins, st.HighScore, st.AvgScore)
		}
	}

	if flagRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(levelID, flagRuns)
	if err != nil || len(runs) == 0 {
		return err
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %-4s  %6d pts  %6d ticks  %2d destroyed  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Score, r.Ticks, r.Destroyed, r.RunID.String()[:8])
	}
	return nil
}

// robbo is a terminal tile-grid arcade game: steer Robbo, push boxes and
// shoot the creatures before the turrets get you.
//
// Usage:
//
//	robbo play [level]       - Play a level (menu when no level is given)
//	robbo levels             - List available levels
//	robbo scores [level]     - Show high scores
//	robbo serve              - Start SSH server for remote play
//	robbo sim [level]        - Run a level headless and print the result
//
// Global flags:
//
//	--fps <rate>         - Tick rate (default: config timing.tick_rate)
//	--seed <value>       - RNG seed for reproducible runs
//	--db <path>          - Database path (default: ~/.robbo/scores.db)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log file for interactive commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "robbo",
	Short: "Robbo - a tile-grid arcade game in your terminal",
	Long: `Robbo is a terminal arcade game on a tile grid. Move Robbo around,
push boxes, and shoot birds and bears while wall turrets fire back.

Examples:
  robbo play
  robbo play classic --difficulty hard
  robbo levels --levels-dir ./levels
  robbo scores classic
  robbo serve --ssh :2222
  robbo sim arena --ticks 500 --seed 42`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config timing.tick_rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.robbo/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.robbo/robbo.log for interactive commands)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra level files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

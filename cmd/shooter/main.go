// shooter is a vertical arcade shooter played in the terminal.
//
// Usage:
//
//	shooter play             - Play at the chosen difficulty
//	shooter menu             - Start screen with difficulty picker and scores
//	shooter scores           - Show high scores
//	shooter sim              - Run a headless scripted session
//	shooter config           - Print the default game config
//	shooter list             - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

// logger writes to stderr so it never mixes with command output.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "shooter",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Star Shooter - a vertical arcade shooter in your terminal",
	Long: `Star Shooter is a terminal arcade shooter. Steer your ship along the
bottom of the screen, shoot down descending enemies, dodge their fire and
catch power-ups.

Available commands:
  play     - Play directly at a difficulty
  menu     - Start screen with difficulty picker
  scores   - View high scores
  sim      - Run a headless scripted session
  config   - Print the default config YAML
  list     - Show all available games

Examples:
  shooter play --difficulty hard
  shooter menu
  shooter scores --difficulty easy
  shooter sim --ticks 3600 --seed 42
  shooter config > ~/.arcade/configs/shooter.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// openStore opens the scores database. The game works without one, so a
// failure is logged and nil returned.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("opened scores database", "path", flagDBPath)
	return store
}

// applyGameFlags hands the game-specific flags to the shooter package
// before an instance is created.
func applyGameFlags() {
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficulty(flagDifficulty)
}

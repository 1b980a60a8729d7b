package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished runs.

Examples:
  shooter scores
  shooter scores --difficulty hard --limit 5
  shooter scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagScoresDifficulty != "" {
		tier, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			return err
		}
		flagScoresDifficulty = string(tier)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(shooter.GameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", flagDBPath)
		return nil
	}

	scores, err := store.TopScores(shooter.GameID, flagScoresDifficulty, flagScoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Star Shooter")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'shooter play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Kills", "Tier", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-5d  %-6s  %s\n",
			i+1, e.Score, e.Level, e.EnemiesDestroyed, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(shooter.GameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.0f  Enemies destroyed: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalDestroyed)
	}
	return nil
}

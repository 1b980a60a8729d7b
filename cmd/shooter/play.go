package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a session straight away.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - slow enemies with 1 hp, rare spawns
  medium  - the default
  hard    - fast enemies with 3 hp that fire every second

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, simCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")
	}
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	applyGameFlags()

	game, err := registry.Create(shooter.GameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	results, err := tui.Run(game, store, terminalConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if g, ok := game.(*shooter.Game); ok && g.ConfigError() != nil {
		logger.Warn("config could not be loaded, played with defaults", "error", g.ConfigError())
	}
	logResults(results)
	return nil
}

// logResults reports the sessions played once the terminal is restored.
func logResults(results []core.Result) {
	for _, r := range results {
		logger.Info("session finished",
			"difficulty", r.Difficulty,
			"score", r.Score,
			"level", r.Level,
			"destroyed", r.EnemiesDestroyed,
		)
	}
}

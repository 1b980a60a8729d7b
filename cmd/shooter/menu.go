package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to start.
Quitting a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start
  Tab          - High scores
  Q            - Quit

Examples:
  shooter menu
  shooter menu --fps 30
  shooter menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	initial, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	shooterCfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		logger.Warn("config could not be loaded, using defaults", "error", err)
		shooterCfg = config.DefaultShooterConfig()
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	var played int

	for {
		menuResult, err := tui.RunMenu(shooter.GameID, shooterCfg, initial, store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, shooter.GameID, "Star Shooter", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			break
		}

		initial = menuResult.Difficulty
		flagDifficulty = string(menuResult.Difficulty)
		applyGameFlags()

		game, err := registry.Create(shooter.GameID)
		if err != nil {
			return err
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		results, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		played += len(results)
	}

	logger.Debug("menu closed", "sessions", played)
	return nil
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	flagSimTicks int
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless scripted session",
	Long: `Run the game without a terminal UI using a scripted pilot that keeps
fire held and strafes across the arena. The run ends at game over or after
--ticks ticks. With the same --seed and config the result is identical.

Examples:
  shooter sim --seed 42
  shooter sim --ticks 36000 --difficulty hard
  shooter sim --seed 7 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
}

// strafeInput is the scripted pilot: fire held, sweeping left and right
// every period ticks.
func strafeInput(tick, period int) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionFire)
	if (tick/period)%2 == 0 {
		f.Set(core.ActionLeft)
	} else {
		f.Set(core.ActionRight)
	}
	return f
}

// simulate plays one scripted session and returns its result.
func simulate(game *shooter.Game, cfg core.RuntimeConfig, maxTicks int) core.Result {
	var final *core.Result
	game.SetGameOverHandler(func(r core.Result) { final = &r })
	game.Reset(cfg)

	for tick := 0; tick < maxTicks && final == nil; tick++ {
		game.Step(strafeInput(tick, 45))
	}

	if final != nil {
		return *final
	}
	return game.Result()
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	applyGameFlags()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := shooter.New()
	start := time.Now()
	result := simulate(game, cfg, flagSimTicks)
	if err := game.ConfigError(); err != nil {
		logger.Warn("config could not be loaded, simulated with defaults", "error", err)
	}

	logger.Info("simulation finished",
		"seed", cfg.Seed,
		"difficulty", result.Difficulty,
		"ticks", result.Ticks,
		"game_over", game.State().GameOver,
		"score", result.Score,
		"level", result.Level,
		"destroyed", result.EnemiesDestroyed,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if flagSimSave {
		store := openStore()
		if store == nil {
			return errors.New("cannot save result without a scores database")
		}
		defer store.Close()
		if _, err := store.SaveResult(result); err != nil {
			return err
		}
	}
	return nil
}

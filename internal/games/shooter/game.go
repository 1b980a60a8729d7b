// Package shooter implements a vertical arcade shooter.
// The player's ship moves along the bottom of the arena, shooting down
// descending enemies while dodging their fire and catching power-ups.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "shooter"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyTier stores the difficulty chosen via CLI or menu
var difficultyTier = config.DifficultyMedium

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the difficulty used by the next Reset.
// Unknown names fall back to medium.
func SetDifficulty(name string) {
	tier, err := config.ParseDifficulty(name)
	if err != nil {
		tier = config.DifficultyMedium
	}
	difficultyTier = tier
}

// Game adapts the World to the platform's game interface.
type Game struct {
	world      *World
	runtime    core.RuntimeConfig
	cfgErr     error // Last config load error; the game runs on defaults when set
	onGameOver func(core.Result)
}

// New creates a new shooter instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Shooter"
}

// Reset starts a new session. The background starfield of an earlier
// session is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	g.cfgErr = err

	rng := rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	var stars []Star
	if g.world != nil {
		stars = g.world.Stars
	}

	w, err := buildWorld(cfg, difficultyTier, rng, runtime.TickRate)
	if err != nil {
		g.cfgErr = err
	}
	if len(stars) > 0 {
		w.Stars = stars
	}
	g.world = w
	g.world.OnGameOver(g.onGameOver)
}

// buildWorld creates a world for tier. When cfg cannot serve the tier it
// returns a medium world on the default config along with the error.
func buildWorld(cfg config.ShooterConfig, tier config.DifficultyTier, rng Rand, tickRate int) (*World, error) {
	w, err := NewWorld(cfg, tier, rng, tickRate)
	if err == nil {
		return w, nil
	}
	fallback, ferr := NewWorld(config.DefaultShooterConfig(), config.DifficultyMedium, rng, tickRate)
	if ferr != nil {
		panic("shooter: default config rejected: " + ferr.Error())
	}
	return fallback, err
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// World exposes the simulation state for rendering and inspection.
func (g *Game) World() *World {
	return g.world
}

// SetGameOverHandler registers fn to be called once per session with the
// final result.
func (g *Game) SetGameOverHandler(fn func(core.Result)) {
	g.onGameOver = fn
	if g.world != nil {
		g.world.OnGameOver(fn)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Session.Over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	g.world.Tick(in)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Session
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		GameOver: s.Over,
		Paused:   !s.Running && !s.Over,
	}
}

// Result returns the summary of the current session.
func (g *Game) Result() core.Result {
	return g.world.Result()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

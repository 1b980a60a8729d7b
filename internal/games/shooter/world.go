package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Session holds the counters of one play-through.
type Session struct {
	Running          bool // False while paused or after game over
	Over             bool
	Score            int
	Level            int
	Health           int
	Ammo             int
	EnemiesDestroyed int
	Difficulty       config.DifficultyTier
	Ticks            int
	Now              time.Duration // Simulation clock
	FlashUntil       time.Duration // Hit indicator shown until this time
}

// World is the complete simulation state. It is owned by a single driver
// (the Game) and mutated only by Tick, so no locking is needed.
type World struct {
	cfg          config.ShooterConfig
	profile      config.DifficultyProfile
	spawner      *Spawner
	tickInterval time.Duration
	onGameOver   func(core.Result)

	Session      Session
	Player       Player
	Enemies      []Enemy
	EnemyBullets []Bullet
	PowerUps     []PowerUp
	Stars        []Star
}

// NewWorld creates a world and starts a session at the given difficulty.
// tickRate is the number of ticks per simulated second.
func NewWorld(cfg config.ShooterConfig, tier config.DifficultyTier, rng Rand, tickRate int) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	w := &World{
		cfg:          cfg,
		tickInterval: time.Second / time.Duration(tickRate),
	}
	w.spawner = NewSpawner(rng, &w.cfg)
	if err := w.Reset(tier); err != nil {
		return nil, err
	}
	return w, nil
}

// Config returns the configuration the world runs with.
func (w *World) Config() config.ShooterConfig {
	return w.cfg
}

// Profile returns the active difficulty profile.
func (w *World) Profile() config.DifficultyProfile {
	return w.profile
}

// OnGameOver registers the handler called once when health reaches zero.
func (w *World) OnGameOver(fn func(core.Result)) {
	w.onGameOver = fn
}

// Reset starts a fresh session. Counters return to their starting values,
// every entity list is emptied and pending timed effects are discarded.
// The starfield survives resets; it is only created the first time.
func (w *World) Reset(tier config.DifficultyTier) error {
	profile, err := w.cfg.Profile(tier)
	if err != nil {
		return err
	}
	w.profile = profile

	pc := w.cfg.Player
	w.Session = Session{
		Running:    true,
		Score:      0,
		Level:      1,
		Health:     pc.MaxHealth,
		Ammo:       pc.StartAmmo,
		Difficulty: tier,
	}
	w.Player = Player{
		Box: core.NewBox(
			w.cfg.Arena.Width/2-pc.Width/2,
			w.cfg.Arena.Height-pc.BottomOffset,
			pc.Width, pc.Height,
		),
		Speed:      pc.Speed,
		ShootDelay: w.baseShootDelay(),
	}
	w.Enemies = nil
	w.EnemyBullets = nil
	w.PowerUps = nil

	if len(w.Stars) == 0 {
		w.Stars = w.spawner.NewStars()
	}
	return nil
}

// IsGameOver reports whether the session has ended.
func (w *World) IsGameOver() bool {
	return w.Session.Health <= 0
}

// TogglePause flips the running flag. It has no effect after game over.
func (w *World) TogglePause() {
	if w.Session.Over {
		return
	}
	w.Session.Running = !w.Session.Running
}

// TakeDamage subtracts health unless the shield is up.
// Health never drops below zero.
func (w *World) TakeDamage(amount int) {
	if w.Player.Shield || amount <= 0 {
		return
	}
	w.Session.Health -= amount
	if w.Session.Health < 0 {
		w.Session.Health = 0
	}
	w.Session.FlashUntil = w.Session.Now + ms(w.cfg.Effects.DamageFlashMs)
}

// Flashing reports whether the hit indicator is showing.
func (w *World) Flashing() bool {
	return w.Session.Now < w.Session.FlashUntil
}

// Result summarizes the current session.
func (w *World) Result() core.Result {
	return core.Result{
		GameID:           GameID,
		Difficulty:       string(w.Session.Difficulty),
		Score:            w.Session.Score,
		Level:            w.Session.Level,
		EnemiesDestroyed: w.Session.EnemiesDestroyed,
		Ticks:            w.Session.Ticks,
	}
}

func (w *World) baseShootDelay() time.Duration {
	return ms(w.cfg.Player.ShootDelayMs)
}

// ms converts config milliseconds to a duration.
func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

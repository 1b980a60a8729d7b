package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DifficultyTier names a difficulty profile.
type DifficultyTier string

const (
	DifficultyEasy   DifficultyTier = "easy"
	DifficultyMedium DifficultyTier = "medium"
	DifficultyHard   DifficultyTier = "hard"
)

// Tiers lists the difficulty tiers in menu order.
var Tiers = []DifficultyTier{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ErrUnknownDifficulty is returned for a tier name that has no profile.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// DifficultyProfile is the immutable bundle of enemy constants for a tier.
type DifficultyProfile struct {
	EnemySpeed       float64 `yaml:"enemy_speed"`
	SpawnRate        int     `yaml:"spawn_rate"` // Spawn probability per tick is 1/spawn_rate
	EnemyHealth      int     `yaml:"enemy_health"`
	EnemyShootRateMs int     `yaml:"enemy_shoot_rate_ms"`
}

// SpawnChance returns the per-tick enemy spawn probability.
func (p DifficultyProfile) SpawnChance() float64 {
	if p.SpawnRate <= 0 {
		return 0
	}
	return 1 / float64(p.SpawnRate)
}

// ShootInterval returns the enemy fire interval.
func (p DifficultyProfile) ShootInterval() time.Duration {
	return time.Duration(p.EnemyShootRateMs) * time.Millisecond
}

// ParseDifficulty converts a user-supplied name into a tier.
// An empty name selects medium.
func ParseDifficulty(name string) (DifficultyTier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DifficultyMedium, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w %q (want easy, medium or hard)", ErrUnknownDifficulty, name)
}

// Profile returns the profile for a tier.
func (c ShooterConfig) Profile(tier DifficultyTier) (DifficultyProfile, error) {
	p, ok := c.Difficulty[tier]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w %q", ErrUnknownDifficulty, tier)
	}
	return p, nil
}

// Validate checks the config for values the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.New("config: player size must be positive")
	}
	if c.Player.Width+2*c.Player.EdgeMargin > c.Arena.Width {
		return errors.New("config: player does not fit in the arena")
	}
	if c.Player.MaxHealth <= 0 {
		return errors.New("config: player max_health must be positive")
	}
	if c.Player.StartAmmo < 0 {
		return errors.New("config: player start_ammo must not be negative")
	}
	if c.Bullets.PlayerSpeed >= 0 {
		return errors.New("config: bullets player_speed must be negative (upward)")
	}
	if c.Bullets.EnemySpeed <= 0 {
		return errors.New("config: bullets enemy_speed must be positive (downward)")
	}
	if c.Scoring.LevelStep <= 0 {
		return errors.New("config: scoring level_step must be positive")
	}
	switch c.Effects.Refresh {
	case RefreshReset, RefreshExtend:
	default:
		return fmt.Errorf("config: effects refresh must be %q or %q, got %q", RefreshReset, RefreshExtend, c.Effects.Refresh)
	}
	if len(c.Difficulty) == 0 {
		return errors.New("config: no difficulty profiles")
	}
	for tier, p := range c.Difficulty {
		if p.SpawnRate <= 0 || p.EnemyHealth <= 0 || p.EnemyShootRateMs <= 0 {
			return fmt.Errorf("config: difficulty %q has non-positive values", tier)
		}
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file
// cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:        50,
			Height:       60,
			Speed:        8,
			EdgeMargin:   10,
			BottomOffset: 100,
			MaxHealth:    100,
			StartAmmo:    30,
			ShootDelayMs: 300,
		},
		Bullets: BulletConfig{
			Width:       6,
			Height:      20,
			PlayerSpeed: -12,
			EnemySpeed:  7,
		},
		Enemies: EnemyConfig{
			MinSize:         40,
			SizeJitter:      20,
			SpeedJitter:     1,
			SpawnY:          -50,
			SpawnMargin:     50,
			CollisionDamage: 25,
			BulletDamage:    15,
			KillScore:       100,
		},
		PowerUps: PowerUpConfig{
			Size:                35,
			Speed:               3,
			SpawnRate:           400,
			MinScore:            500,
			SpawnY:              -40,
			SpawnMargin:         40,
			HealAmount:          25,
			AmmoAmount:          30,
			RapidFireDelayMs:    100,
			RapidFireDurationMs: 8000,  // 8 seconds
			ShieldDurationMs:    10000, // 10 seconds
		},
		Effects: EffectsConfig{
			Refresh:       RefreshReset,
			DamageFlashMs: 100,
		},
		Scoring: ScoringConfig{LevelStep: 500},
		Stars: StarConfig{
			Count:       200,
			MaxSize:     3,
			MinSpeed:    1,
			SpeedJitter: 2,
		},
		Difficulty: map[DifficultyTier]DifficultyProfile{
			DifficultyEasy:   {EnemySpeed: 2, SpawnRate: 90, EnemyHealth: 1, EnemyShootRateMs: 2000},
			DifficultyMedium: {EnemySpeed: 3, SpawnRate: 60, EnemyHealth: 2, EnemyShootRateMs: 1500},
			DifficultyHard:   {EnemySpeed: 4, SpawnRate: 40, EnemyHealth: 3, EnemyShootRateMs: 1000},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}

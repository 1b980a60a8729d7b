// Package config provides YAML-based game configuration loading and
// difficulty profiles for the shooter.
package config

// ShooterConfig contains all tuning for the shooter.
// Distances are world units (the default arena is 800x600), speeds are
// world units per tick and durations are milliseconds of simulation time.
type ShooterConfig struct {
	Arena      ArenaConfig                          `yaml:"arena"`
	Player     PlayerConfig                         `yaml:"player"`
	Bullets    BulletConfig                         `yaml:"bullets"`
	Enemies    EnemyConfig                          `yaml:"enemies"`
	PowerUps   PowerUpConfig                        `yaml:"powerups"`
	Effects    EffectsConfig                        `yaml:"effects"`
	Scoring    ScoringConfig                        `yaml:"scoring"`
	Stars      StarConfig                           `yaml:"stars"`
	Difficulty map[DifficultyTier]DifficultyProfile `yaml:"difficulty"`
}

// ArenaConfig defines the play area.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	EdgeMargin   float64 `yaml:"edge_margin"`   // Closest the ship gets to the side walls
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from ship top to arena bottom
	MaxHealth    int     `yaml:"max_health"`
	StartAmmo    int     `yaml:"start_ammo"`
	ShootDelayMs int     `yaml:"shoot_delay_ms"`
}

// BulletConfig defines bullets for both sides.
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"` // Negative = upward
	EnemySpeed  float64 `yaml:"enemy_speed"`  // Positive = downward
}

// EnemyConfig defines enemy spawning ranges and damage values.
type EnemyConfig struct {
	MinSize         float64 `yaml:"min_size"`
	SizeJitter      float64 `yaml:"size_jitter"`  // Size is min_size + U[0, size_jitter)
	SpeedJitter     float64 `yaml:"speed_jitter"` // Speed is profile speed + U[0, speed_jitter)
	SpawnY          float64 `yaml:"spawn_y"`
	SpawnMargin     float64 `yaml:"spawn_margin"` // x is U[0, arena width - spawn_margin)
	CollisionDamage int     `yaml:"collision_damage"`
	BulletDamage    int     `yaml:"bullet_damage"`
	KillScore       int     `yaml:"kill_score"`
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	Size                float64 `yaml:"size"`
	Speed               float64 `yaml:"speed"`
	SpawnRate           int     `yaml:"spawn_rate"` // One in spawn_rate ticks on average
	MinScore            int     `yaml:"min_score"`  // Score must exceed this before drops start
	SpawnY              float64 `yaml:"spawn_y"`
	SpawnMargin         float64 `yaml:"spawn_margin"`
	HealAmount          int     `yaml:"heal_amount"`
	AmmoAmount          int     `yaml:"ammo_amount"`
	RapidFireDelayMs    int     `yaml:"rapid_fire_delay_ms"`
	RapidFireDurationMs int     `yaml:"rapid_fire_duration_ms"`
	ShieldDurationMs    int     `yaml:"shield_duration_ms"`
}

// Refresh modes for re-collecting an active timed effect.
const (
	RefreshReset  = "reset"  // Restart the fixed duration from now
	RefreshExtend = "extend" // Add the fixed duration to the remaining time
)

// EffectsConfig defines how timed effects behave.
type EffectsConfig struct {
	Refresh       string `yaml:"refresh"`
	DamageFlashMs int    `yaml:"damage_flash_ms"`
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	LevelStep int `yaml:"level_step"` // Level advances when score reaches level * level_step
}

// StarConfig defines the background starfield.
type StarConfig struct {
	Count       int     `yaml:"count"`
	MaxSize     float64 `yaml:"max_size"`
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedJitter float64 `yaml:"speed_jitter"`
}

package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Rand is the source of uniform values in [0, 1) used by the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner decides each tick whether a new enemy or power-up enters the arena.
// Every call to Roll draws exactly two values, so the random stream advances
// the same way whether or not anything spawns.
type Spawner struct {
	rng Rand
	cfg *config.ShooterConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, cfg *config.ShooterConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Roll runs one tick of spawning.
// An enemy appears with probability 1/profile.SpawnRate. A power-up appears
// with probability 1/powerups.spawn_rate, but only once score exceeds
// powerups.min_score.
func (s *Spawner) Roll(profile config.DifficultyProfile, score int) (*Enemy, *PowerUp) {
	var enemy *Enemy
	var powerUp *PowerUp

	if s.rng.Float64() < profile.SpawnChance() {
		e := s.NewEnemy(profile)
		enemy = &e
	}

	pc := s.cfg.PowerUps
	roll := s.rng.Float64()
	if pc.SpawnRate > 0 && roll < 1/float64(pc.SpawnRate) && score > pc.MinScore {
		p := s.NewPowerUp()
		powerUp = &p
	}

	return enemy, powerUp
}

// NewEnemy creates an enemy above the top edge with attributes sampled
// around the profile.
func (s *Spawner) NewEnemy(profile config.DifficultyProfile) Enemy {
	ec := s.cfg.Enemies
	x := s.rng.Float64() * (s.cfg.Arena.Width - ec.SpawnMargin)
	w := ec.MinSize + s.rng.Float64()*ec.SizeJitter
	h := ec.MinSize + s.rng.Float64()*ec.SizeJitter
	speed := profile.EnemySpeed + s.rng.Float64()*ec.SpeedJitter
	hue := s.rng.Float64() * 60

	return Enemy{
		Box:        core.NewBox(x, ec.SpawnY, w, h),
		Speed:      speed,
		Health:     profile.EnemyHealth,
		NextShotAt: 0, // Fires on its first update
		ShootDelay: profile.ShootInterval(),
		Hue:        hue,
	}
}

// NewPowerUp creates a power-up of a uniformly chosen kind above the top edge.
func (s *Spawner) NewPowerUp() PowerUp {
	pc := s.cfg.PowerUps
	kind := PowerUpKind(int(s.rng.Float64() * float64(PowerUpKindCount)))
	if kind >= PowerUpKindCount {
		kind = PowerUpKindCount - 1
	}
	x := s.rng.Float64() * (s.cfg.Arena.Width - pc.SpawnMargin)

	return PowerUp{
		Box:   core.NewBox(x, pc.SpawnY, pc.Size, pc.Size),
		Speed: pc.Speed,
		Kind:  kind,
	}
}

// NewStars creates the background starfield.
func (s *Spawner) NewStars() []Star {
	sc := s.cfg.Stars
	stars := make([]Star, sc.Count)
	for i := range stars {
		stars[i] = Star{
			X:     s.rng.Float64() * s.cfg.Arena.Width,
			Y:     s.rng.Float64() * s.cfg.Arena.Height,
			Size:  s.rng.Float64() * sc.MaxSize,
			Speed: sc.MinSpeed + s.rng.Float64()*sc.SpeedJitter,
		}
	}
	return stars
}

// WrapStar moves a star that left the bottom back to the top at a new x.
func (s *Spawner) WrapStar(st *Star) {
	st.Y = 0
	st.X = s.rng.Float64() * s.cfg.Arena.Width
}

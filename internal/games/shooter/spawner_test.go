package shooter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func newTestSpawner(rng Rand) (*Spawner, config.ShooterConfig) {
	cfg := config.DefaultShooterConfig()
	return NewSpawner(rng, &cfg), cfg
}

func TestRollSpawnsEnemyBelowThreshold(t *testing.T) {
	tests := []struct {
		name      string
		tier      config.DifficultyTier
		roll      float64
		wantEnemy bool
	}{
		{"easy below 1/90", config.DifficultyEasy, 0.011, true},
		{"easy above 1/90", config.DifficultyEasy, 0.012, false},
		{"medium below 1/60", config.DifficultyMedium, 0.016, true},
		{"medium above 1/60", config.DifficultyMedium, 0.017, false},
		{"hard below 1/40", config.DifficultyHard, 0.024, true},
		{"hard at 1/40", config.DifficultyHard, 0.025, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, cfg := newTestSpawner(&seqRand{vals: []float64{tc.roll, 0.5}})
			profile, _ := cfg.Profile(tc.tier)

			enemy, powerUp := s.Roll(profile, 0)
			if (enemy != nil) != tc.wantEnemy {
				t.Errorf("enemy spawned = %v, expected %v", enemy != nil, tc.wantEnemy)
			}
			if powerUp != nil {
				t.Error("no power-up expected at score 0")
			}
		})
	}
}

func TestRollPowerUpNeedsScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		roll  float64
		want  bool
	}{
		{"score 500 is not enough", 500, 0.001, false},
		{"score 600 and lucky roll", 600, 0.001, true},
		{"score 600 and unlucky roll", 600, 0.0025, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// The first draw skips the enemy roll.
			s, cfg := newTestSpawner(&seqRand{vals: []float64{0.99, tc.roll, 0.5}})
			profile, _ := cfg.Profile(config.DifficultyMedium)

			_, powerUp := s.Roll(profile, tc.score)
			if (powerUp != nil) != tc.want {
				t.Errorf("power-up spawned = %v, expected %v", powerUp != nil, tc.want)
			}
		})
	}
}

func TestNewEnemyAttributes(t *testing.T) {
	s, cfg := newTestSpawner(&seqRand{vals: []float64{0.5, 0.5, 0.25, 0.5, 0.5}})
	profile, _ := cfg.Profile(config.DifficultyMedium)

	e := s.NewEnemy(profile)

	if e.Box.X != 375 || e.Box.Y != -50 {
		t.Errorf("enemy at (%g, %g), expected (375, -50)", e.Box.X, e.Box.Y)
	}
	if e.Box.W != 50 || e.Box.H != 45 {
		t.Errorf("enemy size %gx%g, expected 50x45", e.Box.W, e.Box.H)
	}
	if e.Speed != 3.5 {
		t.Errorf("Speed = %g, expected 3.5", e.Speed)
	}
	if e.Health != 2 {
		t.Errorf("Health = %d, expected 2", e.Health)
	}
	if e.ShootDelay != 1500*time.Millisecond || e.NextShotAt != 0 {
		t.Errorf("unexpected fire timing %v/%v", e.ShootDelay, e.NextShotAt)
	}
	if e.Hue != 30 {
		t.Errorf("Hue = %g, expected 30", e.Hue)
	}
}

func TestNewEnemyRanges(t *testing.T) {
	s, cfg := newTestSpawner(rand.New(rand.NewSource(3)))

	for _, tier := range config.Tiers {
		profile, _ := cfg.Profile(tier)
		for i := 0; i < 500; i++ {
			e := s.NewEnemy(profile)
			if e.Box.X < 0 || e.Box.X >= 750 {
				t.Fatalf("x %g out of [0, 750)", e.Box.X)
			}
			if e.Box.W < 40 || e.Box.W >= 60 || e.Box.H < 40 || e.Box.H >= 60 {
				t.Fatalf("size %gx%g out of [40, 60)", e.Box.W, e.Box.H)
			}
			if e.Speed < profile.EnemySpeed || e.Speed >= profile.EnemySpeed+1 {
				t.Fatalf("speed %g out of range for %s", e.Speed, tier)
			}
			if e.Health != profile.EnemyHealth {
				t.Fatalf("health %d, expected %d", e.Health, profile.EnemyHealth)
			}
		}
	}
}

func TestNewPowerUpKinds(t *testing.T) {
	tests := []struct {
		roll float64
		want PowerUpKind
	}{
		{0.0, PowerUpHealth},
		{0.24, PowerUpHealth},
		{0.25, PowerUpAmmo},
		{0.6, PowerUpRapidFire},
		{0.99, PowerUpShield},
	}

	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			s, _ := newTestSpawner(&seqRand{vals: []float64{tc.roll, 0.5}})
			p := s.NewPowerUp()

			if p.Kind != tc.want {
				t.Errorf("roll %g gave %s, expected %s", tc.roll, p.Kind, tc.want)
			}
			if p.Box.X != 380 || p.Box.Y != -40 || p.Box.W != 35 || p.Box.H != 35 || p.Speed != 3 {
				t.Errorf("unexpected power-up %+v", p)
			}
		})
	}
}

func TestNewPowerUpUniform(t *testing.T) {
	s, _ := newTestSpawner(rand.New(rand.NewSource(11)))

	counts := make(map[PowerUpKind]int)
	const n = 8000
	for i := 0; i < n; i++ {
		counts[s.NewPowerUp().Kind]++
	}

	for k := PowerUpHealth; k < PowerUpKindCount; k++ {
		if c := counts[k]; c < n/4-300 || c > n/4+300 {
			t.Errorf("%s drawn %d times out of %d", k, c, n)
		}
	}
}

func TestSpawnRateOverManyTicks(t *testing.T) {
	s, cfg := newTestSpawner(rand.New(rand.NewSource(5)))
	profile, _ := cfg.Profile(config.DifficultyHard)

	enemies := 0
	const n = 40000
	for i := 0; i < n; i++ {
		if e, _ := s.Roll(profile, 0); e != nil {
			enemies++
		}
	}

	// Expect about n/40 = 1000.
	if enemies < 850 || enemies > 1150 {
		t.Errorf("spawned %d enemies in %d ticks", enemies, n)
	}
}

func TestStarsWrap(t *testing.T) {
	s, cfg := newTestSpawner(constRand(0.5))

	stars := s.NewStars()
	if len(stars) != cfg.Stars.Count {
		t.Fatalf("expected %d stars, got %d", cfg.Stars.Count, len(stars))
	}
	st := stars[0]
	if st.Size != 1.5 || st.Speed != 2 {
		t.Errorf("unexpected star %+v", st)
	}

	st.Y = 700
	s.WrapStar(&st)
	if st.Y != 0 || st.X != 400 {
		t.Errorf("wrapped star at (%g, %g), expected (400, 0)", st.X, st.Y)
	}
}

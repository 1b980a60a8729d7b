package shooter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// enemyAt builds an enemy that will not fire during the test.
func enemyAt(x, y, size float64, speed float64, health int) Enemy {
	return Enemy{
		Box:        core.NewBox(x, y, size, size),
		Speed:      speed,
		Health:     health,
		NextShotAt: time.Hour,
		ShootDelay: time.Second,
	}
}

func playerBulletAt(x, y float64) Bullet {
	return Bullet{Box: core.NewBox(x, y, 6, 20), Speed: -12, Owner: OwnerPlayer}
}

func TestFireOnceScenario(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)

	w.Tick(hold(core.ActionFire))

	if w.Session.Ammo != 29 {
		t.Errorf("Ammo = %d, expected 29", w.Session.Ammo)
	}
	if len(w.Player.Bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(w.Player.Bullets))
	}
	b := w.Player.Bullets[0]
	// Fired from the nose, then advanced once within the same tick.
	if b.Box.X != 397 || b.Box.Y != 500-12 {
		t.Errorf("bullet at (%g, %g), expected (397, 488)", b.Box.X, b.Box.Y)
	}
	if b.Owner != OwnerPlayer || b.Speed >= 0 {
		t.Errorf("player bullet should move up, got %+v", b)
	}
}

func TestTryFireAtNose(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)

	if !w.TryFire() {
		t.Fatal("TryFire() should fire with ammo and no cooldown")
	}
	b := w.Player.Bullets[0]
	if b.Box.X != w.Player.Box.X+25-3 || b.Box.Y != w.Player.Box.Y {
		t.Errorf("bullet at (%g, %g), expected the nose", b.Box.X, b.Box.Y)
	}
	if w.TryFire() {
		t.Error("TryFire() should respect the cooldown")
	}
}

func TestFireCooldown(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)

	for i := 0; i < 60; i++ {
		w.Tick(hold(core.ActionFire))
	}
	// One second at 300ms cooldown: shots on ticks 1, 20, 39 and 58.
	if w.Session.Ammo != 26 {
		t.Errorf("Ammo = %d after one second of fire, expected 26", w.Session.Ammo)
	}
}

func TestFireWithoutAmmoIsNoop(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Session.Ammo = 0

	for i := 0; i < 30; i++ {
		w.Tick(hold(core.ActionFire))
	}
	if w.Session.Ammo != 0 {
		t.Errorf("Ammo = %d, expected 0", w.Session.Ammo)
	}
	if len(w.Player.Bullets) != 0 {
		t.Error("no bullet should be fired without ammo")
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)

	w.Tick(hold(core.ActionLeft))
	if w.Player.Box.X != 367 {
		t.Errorf("X = %g after one step left, expected 367", w.Player.Box.X)
	}

	for i := 0; i < 100; i++ {
		w.Tick(hold(core.ActionLeft))
	}
	if w.Player.Box.X != 10 {
		t.Errorf("X = %g, expected left bound 10", w.Player.Box.X)
	}

	for i := 0; i < 200; i++ {
		w.Tick(hold(core.ActionRight))
	}
	if w.Player.Box.X != 740 {
		t.Errorf("X = %g, expected right bound 740", w.Player.Box.X)
	}
}

func TestBulletsLeavingArenaAreDropped(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Player.Bullets = []Bullet{playerBulletAt(100, 5), playerBulletAt(200, 300)}
	w.EnemyBullets = []Bullet{
		{Box: core.NewBox(100, 598, 6, 20), Speed: 7, Owner: OwnerEnemy},
		{Box: core.NewBox(100, 100, 6, 20), Speed: 7, Owner: OwnerEnemy},
	}

	w.Tick(idle())

	if len(w.Player.Bullets) != 1 || w.Player.Bullets[0].Box.Y != 288 {
		t.Errorf("expected only the in-bounds player bullet, got %+v", w.Player.Bullets)
	}
	if len(w.EnemyBullets) != 1 || w.EnemyBullets[0].Box.Y != 107 {
		t.Errorf("expected only the in-bounds enemy bullet, got %+v", w.EnemyBullets)
	}
}

func TestEnemyDescentScenario(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Enemies = []Enemy{enemyAt(0, -50, 40, 3, 2)}

	for i := 0; i < 20; i++ {
		w.Tick(idle())
	}

	if len(w.Enemies) != 1 {
		t.Fatalf("enemy should remain live, got %d enemies", len(w.Enemies))
	}
	if y := w.Enemies[0].Box.Y; y != 10 {
		t.Errorf("enemy y = %g, expected 10", y)
	}
}

func TestEnemyRemovedBelowArena(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Enemies = []Enemy{enemyAt(0, 598, 40, 3, 2)}

	w.Tick(idle())

	if len(w.Enemies) != 0 {
		t.Error("enemy past the bottom edge should be removed")
	}
}

func TestEnemyFiresOnCooldown(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	e := enemyAt(0, 100, 40, 3, 2)
	e.NextShotAt = 0
	e.ShootDelay = 1500 * time.Millisecond
	w.Enemies = []Enemy{e}

	w.Tick(idle())

	if len(w.EnemyBullets) != 1 {
		t.Fatalf("enemy should fire on its first update, got %d bullets", len(w.EnemyBullets))
	}
	b := w.EnemyBullets[0]
	if b.Box.X != 17 || b.Box.Y != 143 || b.Owner != OwnerEnemy || b.Speed <= 0 {
		t.Errorf("unexpected enemy bullet %+v", b)
	}

	for i := 0; i < 60; i++ {
		w.Tick(idle())
	}
	// 61 ticks is just over one second, shorter than the 1.5s cooldown.
	shots := 0
	for _, b := range w.EnemyBullets {
		if b.Owner == OwnerEnemy {
			shots++
		}
	}
	if shots != 1 {
		t.Errorf("enemy fired %d times within its cooldown, expected 1", shots)
	}
}

func TestKillAwardsScore(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyEasy)
	w.Enemies = []Enemy{enemyAt(380, 300, 40, 3, 1)}
	w.Player.Bullets = []Bullet{playerBulletAt(397, 330)}

	w.Tick(idle())

	if w.Session.Score != 100 {
		t.Errorf("Score = %d, expected 100", w.Session.Score)
	}
	if w.Session.EnemiesDestroyed != 1 {
		t.Errorf("EnemiesDestroyed = %d, expected 1", w.Session.EnemiesDestroyed)
	}
	if len(w.Enemies) != 0 {
		t.Error("destroyed enemy should be removed")
	}
	if len(w.Player.Bullets) != 0 {
		t.Error("a lethal hit should consume the bullet")
	}
}

func TestNonLethalHitConsumesBullet(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Enemies = []Enemy{enemyAt(380, 300, 40, 3, 2)}
	w.Player.Bullets = []Bullet{playerBulletAt(397, 330)}

	w.Tick(idle())

	if len(w.Enemies) != 1 || w.Enemies[0].Health != 1 {
		t.Fatalf("enemy should survive with 1 health, got %+v", w.Enemies)
	}
	if len(w.Player.Bullets) != 0 {
		t.Error("the bullet should be consumed")
	}
	if w.Session.Score != 0 {
		t.Error("a non-lethal hit should not score")
	}
}

func TestFirstEnemyHitWins(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Enemies = []Enemy{
		enemyAt(380, 300, 40, 3, 2),
		enemyAt(385, 305, 40, 3, 2),
	}
	w.Player.Bullets = []Bullet{playerBulletAt(397, 330)}

	w.Tick(idle())

	if w.Enemies[0].Health != 1 {
		t.Errorf("first enemy health = %d, expected 1", w.Enemies[0].Health)
	}
	if w.Enemies[1].Health != 2 {
		t.Errorf("second enemy health = %d, expected untouched 2", w.Enemies[1].Health)
	}
}

func TestSecondBulletSkipsDestroyedEnemy(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyEasy)
	w.Enemies = []Enemy{enemyAt(380, 300, 40, 3, 1)}
	w.Player.Bullets = []Bullet{playerBulletAt(397, 330), playerBulletAt(400, 325)}

	w.Tick(idle())

	if w.Session.Score != 100 || w.Session.EnemiesDestroyed != 1 {
		t.Errorf("expected exactly one kill, got score %d destroyed %d", w.Session.Score, w.Session.EnemiesDestroyed)
	}
	if len(w.Player.Bullets) != 1 || w.Player.Bullets[0].Box.X != 400 {
		t.Errorf("second bullet should fly on, got %+v", w.Player.Bullets)
	}
}

func TestLevelProgression(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		level     int
		wantScore int
		wantLevel int
	}{
		{"below threshold", 300, 1, 400, 1},
		{"reaches 500", 400, 1, 500, 2},
		{"past 500 at level 2", 500, 2, 600, 2},
		{"reaches 1000", 900, 2, 1000, 3},
		{"reaches 1500", 1400, 3, 1500, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newQuietWorld(t, config.DifficultyMedium)
			w.Session.Score = tc.score
			w.Session.Level = tc.level

			w.scoreKill()

			if w.Session.Score != tc.wantScore || w.Session.Level != tc.wantLevel {
				t.Errorf("got score %d level %d, expected %d/%d",
					w.Session.Score, w.Session.Level, tc.wantScore, tc.wantLevel)
			}
		})
	}
}

func TestLevelAdvancesOncePerCrossing(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)

	levels := map[int]int{}
	for i := 0; i < 10; i++ {
		w.scoreKill()
		levels[w.Session.Score] = w.Session.Level
	}

	if levels[400] != 1 || levels[500] != 2 || levels[900] != 2 || levels[1000] != 3 {
		t.Errorf("unexpected level progression: %v", levels)
	}
}

func TestEnemyRamsPlayer(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Enemies = []Enemy{enemyAt(380, 470, 40, 3, 2)}

	w.Tick(idle())

	if len(w.Enemies) != 0 {
		t.Error("ramming enemy should be removed")
	}
	if w.Session.Health != 75 {
		t.Errorf("Health = %d, expected 75", w.Session.Health)
	}
}

func TestEnemyRamWhileShielded(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.ApplyPowerUp(PowerUpShield)
	w.Enemies = []Enemy{enemyAt(380, 470, 40, 3, 2)}

	w.Tick(idle())

	if len(w.Enemies) != 0 {
		t.Error("ramming enemy should be removed even when shielded")
	}
	if w.Session.Health != 100 {
		t.Errorf("Health = %d, shield should block the ram", w.Session.Health)
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.EnemyBullets = []Bullet{{Box: core.NewBox(400, 495, 6, 20), Speed: 7, Owner: OwnerEnemy}}

	w.Tick(idle())

	if w.Session.Health != 85 {
		t.Errorf("Health = %d, expected 85", w.Session.Health)
	}
	if len(w.EnemyBullets) != 0 {
		t.Error("the bullet should be removed on hit")
	}
}

func TestPowerUpPickup(t *testing.T) {
	tests := []struct {
		name       string
		kind       PowerUpKind
		health     int
		wantHealth int
		wantAmmo   int
	}{
		{"health from 50", PowerUpHealth, 50, 75, 30},
		{"health capped", PowerUpHealth, 90, 100, 30},
		{"ammo", PowerUpAmmo, 100, 100, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newQuietWorld(t, config.DifficultyMedium)
			w.Session.Health = tc.health
			w.PowerUps = []PowerUp{{Box: core.NewBox(380, 510, 35, 35), Speed: 3, Kind: tc.kind}}

			w.Tick(idle())

			if len(w.PowerUps) != 0 {
				t.Error("collected power-up should be removed")
			}
			if w.Session.Health != tc.wantHealth {
				t.Errorf("Health = %d, expected %d", w.Session.Health, tc.wantHealth)
			}
			if w.Session.Ammo != tc.wantAmmo {
				t.Errorf("Ammo = %d, expected %d", w.Session.Ammo, tc.wantAmmo)
			}
		})
	}
}

func TestPowerUpMissedFallsOut(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.PowerUps = []PowerUp{{Box: core.NewBox(0, 598, 35, 35), Speed: 3, Kind: PowerUpAmmo}}

	w.Tick(idle())

	if len(w.PowerUps) != 0 {
		t.Error("power-up past the bottom edge should be removed")
	}
	if w.Session.Ammo != 30 {
		t.Error("missed power-up should not apply")
	}
}

func TestGameOverReportsOnce(t *testing.T) {
	w := newQuietWorld(t, config.DifficultyMedium)
	w.Session.Health = 15
	w.Session.Score = 700
	w.Session.Level = 2
	w.Session.EnemiesDestroyed = 7

	var results []core.Result
	w.OnGameOver(func(r core.Result) { results = append(results, r) })

	w.EnemyBullets = []Bullet{{Box: core.NewBox(400, 495, 6, 20), Speed: 7, Owner: OwnerEnemy}}
	w.Tick(idle())

	if !w.IsGameOver() || !w.Session.Over || w.Session.Running {
		t.Fatalf("session should be over, got %+v", w.Session)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 game-over report, got %d", len(results))
	}
	r := results[0]
	if r.Score != 700 || r.Level != 2 || r.EnemiesDestroyed != 7 || r.GameID != GameID || r.Difficulty != "medium" {
		t.Errorf("unexpected result %+v", r)
	}

	ticks := w.Session.Ticks
	for i := 0; i < 10; i++ {
		w.Tick(hold(core.ActionFire))
	}
	if w.Session.Ticks != ticks {
		t.Error("no ticks should run after game over")
	}
	if len(results) != 1 {
		t.Error("game over should be reported only once")
	}
}

func TestCountersStayInRangeUnderRandomPlay(t *testing.T) {
	for _, tier := range config.Tiers {
		t.Run(string(tier), func(t *testing.T) {
			w, err := NewWorld(config.DefaultShooterConfig(), tier, rand.New(rand.NewSource(7)), 60)
			if err != nil {
				t.Fatal(err)
			}
			input := rand.New(rand.NewSource(99))
			actions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire}

			for i := 0; i < 20000 && !w.Session.Over; i++ {
				f := core.NewInputFrame()
				for _, a := range actions {
					if input.Intn(2) == 0 {
						f.Set(a)
					}
				}
				w.Tick(f)

				s := w.Session
				if s.Health < 0 || s.Health > 100 {
					t.Fatalf("tick %d: health %d out of range", s.Ticks, s.Health)
				}
				if s.Ammo < 0 {
					t.Fatalf("tick %d: ammo %d negative", s.Ticks, s.Ammo)
				}
				if s.Level < 1 {
					t.Fatalf("tick %d: level %d", s.Ticks, s.Level)
				}
				for _, e := range w.Enemies {
					if e.Health <= 0 {
						t.Fatalf("tick %d: dead enemy kept in the list", s.Ticks)
					}
				}
			}
		})
	}
}

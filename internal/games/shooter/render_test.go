package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func renderGame(g *Game) *core.Screen {
	scr := core.NewScreen(80, 25)
	g.Render(scr)
	return scr
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, 1)
	scr := renderGame(g)

	hud := scr.Row(0)
	for _, want := range []string{"HP 100", "Score 0", "Ammo 30", "Lvl 1", "MEDIUM"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q is missing %q", hud, want)
		}
	}

	g.World().ApplyPowerUp(PowerUpShield)
	g.World().ApplyPowerUp(PowerUpRapidFire)
	hud = renderGame(g).Row(0)
	if !strings.Contains(hud, "SHIELD 10s") || !strings.Contains(hud, "RAPID 8s") {
		t.Errorf("HUD %q should list active effects", hud)
	}
}

func TestRenderHUDFlashesOnDamage(t *testing.T) {
	g := newTestGame(t, 1)
	g.World().TakeDamage(15)

	scr := renderGame(g)
	if c := scr.GetCell(1, 0); c.Color != core.ColorBrightRed {
		t.Errorf("HUD color = %v while hit, expected bright red", c.Color)
	}
}

func TestRenderPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	scr := renderGame(g)

	if !strings.ContainsRune(scr.String(), ShipNoseChar) {
		t.Error("player ship should be drawn")
	}
	// 800 world units over 80 columns: the ship spans columns 37..42.
	row := -1
	for y := 1; y < scr.Height(); y++ {
		if strings.ContainsRune(scr.Row(y), ShipNoseChar) {
			row = y
			break
		}
	}
	if row < 0 {
		t.Fatal("nose row not found")
	}
	if got := scr.Get(40, row); got != ShipNoseChar {
		t.Errorf("nose at column 40 = %q", got)
	}
}

func TestRenderEntities(t *testing.T) {
	g := newTestGame(t, 1)
	w := g.World()
	w.Enemies = []Enemy{enemyAt(100, 100, 40, 3, 2)}
	w.PowerUps = []PowerUp{{Box: core.NewBox(600, 200, 35, 35), Speed: 3, Kind: PowerUpShield}}
	w.Player.Bullets = []Bullet{playerBulletAt(300, 300)}
	w.EnemyBullets = []Bullet{{Box: core.NewBox(500, 300, 6, 20), Speed: 7, Owner: OwnerEnemy}}

	out := renderGame(g).String()
	for _, r := range []rune{EnemyChar, PlayerShotChar, EnemyShotChar, PowerUpShield.Glyph()} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("screen should contain %q", r)
		}
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(hold(core.ActionPause))

	if out := renderGame(g).String(); !strings.Contains(out, "PAUSED") {
		t.Error("paused screen should say PAUSED")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	g.World().Session.Score = 1200
	g.World().TakeDamage(100)
	g.Step(idle())

	out := renderGame(g).String()
	for _, want := range []string{"GAME OVER", "Score: 1200", "Press R to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen is missing %q", want)
		}
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("game over should not show the pause box")
	}
}

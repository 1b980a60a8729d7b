package shooter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipNoseChar   = '▲'
	ShipBodyChar   = '█'
	ShieldChar     = '○'
	EnemyChar      = '▓'
	PlayerShotChar = '|'
	EnemyShotChar  = '!'
	StarSmallChar  = '.'
	StarLargeChar  = '*'
)

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 1

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy  float64
	offsetY int
}

func newViewport(w *World, dst *core.Screen) viewport {
	arena := w.cfg.Arena
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:      float64(dst.Width()) / arena.Width,
		sy:      float64(rows) / arena.Height,
		offsetY: hudRows,
	}
}

// rect converts a world box to the screen cells it covers.
// Every visible entity covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0+v.offsetY, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), int(y*v.sy) + v.offsetY
}

// Render draws the current world state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w := g.world
	v := newViewport(w, dst)

	g.drawStars(dst, v)
	for _, p := range w.PowerUps {
		r := v.rect(p.Box)
		c := powerUpColor(p.Kind)
		dst.DrawRect(r, '░', c.Dim())
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		dst.SetColor(cx, cy, p.Kind.Glyph(), c)
	}
	for _, e := range w.Enemies {
		dst.DrawRect(v.rect(e.Box), EnemyChar, core.WarmColor(e.Hue))
	}
	for _, b := range w.EnemyBullets {
		dst.DrawRect(v.rect(b.Box), EnemyShotChar, core.ColorBrightRed)
	}
	for _, b := range w.Player.Bullets {
		dst.DrawRect(v.rect(b.Box), PlayerShotChar, core.ColorBrightYellow)
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if !w.Session.Running && !w.Session.Over {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if w.Session.Over {
		s := w.Session
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d  Destroyed: %d", s.Score, s.Level, s.EnemiesDestroyed),
			"Press R to restart")
	}
}

func (g *Game) drawStars(dst *core.Screen, v viewport) {
	for _, st := range g.world.Stars {
		x, y := v.point(st.X, st.Y)
		if y < hudRows {
			continue
		}
		if st.Size >= 2 {
			dst.SetColor(x, y, StarLargeChar, core.ColorGray)
		} else {
			dst.SetColor(x, y, StarSmallChar, core.ColorGray.Dim())
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.world.Player
	r := v.rect(p.Box)

	dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), ShipBodyChar, core.ColorCyan)
	dst.SetColor(r.X+r.W/2, r.Y, ShipNoseChar, core.ColorBrightCyan)

	if p.Shield {
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColor(r.X-1, y, ShieldChar, core.ColorBrightCyan)
			dst.SetColor(r.Right(), y, ShieldChar, core.ColorBrightCyan)
		}
	}
}

// drawHUD writes health, score, ammo, level and active effects on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	s := w.Session

	color := core.ColorBrightWhite
	if w.Flashing() {
		color = core.ColorBrightRed
	}
	dst.DrawHLine(0, 0, dst.Width(), ' ', color)

	parts := []string{
		fmt.Sprintf("HP %d", s.Health),
		fmt.Sprintf("Score %d", s.Score),
		fmt.Sprintf("Ammo %d", s.Ammo),
		fmt.Sprintf("Lvl %d", s.Level),
	}
	if d := w.ShieldRemaining(); d > 0 {
		parts = append(parts, fmt.Sprintf("SHIELD %s", seconds(d)))
	}
	if d := w.RapidFireRemaining(); d > 0 {
		parts = append(parts, fmt.Sprintf("RAPID %s", seconds(d)))
	}
	dst.DrawTextColor(1, 0, strings.Join(parts, "  "), color)

	tier := strings.ToUpper(string(s.Difficulty))
	dst.DrawTextColor(dst.Width()-len(tier)-1, 0, tier, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := 3 + 2*len(lines)
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+2*i, l)
	}
}

func powerUpColor(k PowerUpKind) core.Color {
	switch k {
	case PowerUpHealth:
		return core.ColorBrightRed
	case PowerUpAmmo:
		return core.ColorBrightBlue
	case PowerUpRapidFire:
		return core.ColorBrightYellow
	case PowerUpShield:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.0fs", math.Ceil(d.Seconds()))
}

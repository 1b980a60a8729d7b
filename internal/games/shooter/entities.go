package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Owner tags which side fired a bullet. It doubles as the bullet's color tag.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Player is the single ship controlled by the user.
type Player struct {
	Box            core.Box
	Speed          float64
	Bullets        []Bullet      // Bullets fired by the player that are still in flight
	NextShotAt     time.Duration // Simulation time the cooldown ends
	ShootDelay     time.Duration // Current cooldown (shortened by rapid fire)
	Shield         bool
	ShieldUntil    time.Duration
	RapidFire      bool
	RapidFireUntil time.Duration
}

// Nose returns the spawn position of a player bullet of the given width.
func (p *Player) Nose(bulletW float64) (float64, float64) {
	return p.Box.CenterX() - bulletW/2, p.Box.Y
}

// Enemy is a descending hostile ship.
type Enemy struct {
	Box        core.Box
	Speed      float64
	Health     int
	NextShotAt time.Duration
	ShootDelay time.Duration
	Hue        float64 // Display hue in degrees, red to yellow
}

// Bullet is a projectile moving straight up or down.
type Bullet struct {
	Box   core.Box
	Speed float64 // Negative = upward (player), positive = downward (enemy)
	Owner Owner
}

// PowerUpKind is the effect granted by a power-up.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpAmmo
	PowerUpRapidFire
	PowerUpShield
	PowerUpKindCount // Sentinel for counting kinds
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpAmmo:
		return "ammo"
	case PowerUpRapidFire:
		return "rapidFire"
	case PowerUpShield:
		return "shield"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpHealth:
		return '♥'
	case PowerUpAmmo:
		return '≡'
	case PowerUpRapidFire:
		return '»'
	case PowerUpShield:
		return 'Ø'
	default:
		return '?'
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	Box   core.Box
	Speed float64
	Kind  PowerUpKind
}

// Star is a background particle. Stars scroll down and wrap to the top.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
}

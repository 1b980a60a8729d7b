package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// ApplyPowerUp grants the effect of a collected power-up.
// Health and ammo are permanent; rapid fire and shield are timed and
// revert on their own when the simulation clock passes their expiry.
func (w *World) ApplyPowerUp(kind PowerUpKind) {
	pc := w.cfg.PowerUps
	switch kind {
	case PowerUpHealth:
		w.Session.Health += pc.HealAmount
		if w.Session.Health > w.cfg.Player.MaxHealth {
			w.Session.Health = w.cfg.Player.MaxHealth
		}
	case PowerUpAmmo:
		w.Session.Ammo += pc.AmmoAmount
	case PowerUpRapidFire:
		w.Player.RapidFireUntil = w.refresh(w.Player.RapidFire, w.Player.RapidFireUntil, ms(pc.RapidFireDurationMs))
		w.Player.RapidFire = true
		w.Player.ShootDelay = ms(pc.RapidFireDelayMs)
	case PowerUpShield:
		w.Player.ShieldUntil = w.refresh(w.Player.Shield, w.Player.ShieldUntil, ms(pc.ShieldDurationMs))
		w.Player.Shield = true
	}
}

// refresh computes the new expiry of a timed effect.
// In reset mode a repeat pickup restarts the fixed duration; in extend mode
// it adds to what is left.
func (w *World) refresh(active bool, until, d time.Duration) time.Duration {
	if active && w.cfg.Effects.Refresh == config.RefreshExtend {
		return until + d
	}
	return w.Session.Now + d
}

// expireEffects reverts timed effects whose expiry has passed.
func (w *World) expireEffects() {
	now := w.Session.Now
	if w.Player.RapidFire && now >= w.Player.RapidFireUntil {
		w.Player.RapidFire = false
		w.Player.ShootDelay = w.baseShootDelay()
	}
	if w.Player.Shield && now >= w.Player.ShieldUntil {
		w.Player.Shield = false
	}
}

// ShieldRemaining returns the time left on the shield, or 0.
func (w *World) ShieldRemaining() time.Duration {
	if !w.Player.Shield {
		return 0
	}
	return w.Player.ShieldUntil - w.Session.Now
}

// RapidFireRemaining returns the time left on rapid fire, or 0.
func (w *World) RapidFireRemaining() time.Duration {
	if !w.Player.RapidFire {
		return 0
	}
	return w.Player.RapidFireUntil - w.Session.Now
}

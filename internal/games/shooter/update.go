package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// playerBulletDamage is the health an enemy loses per hit.
const playerBulletDamage = 1

// Tick advances the simulation by one frame. It does nothing unless the
// session is running.
func (w *World) Tick(in core.InputFrame) {
	if !w.Session.Running {
		return
	}

	w.Session.Ticks++
	w.Session.Now += w.tickInterval
	w.expireEffects()
	w.updateStars()

	w.movePlayer(in)
	if in.Has(core.ActionFire) {
		w.TryFire()
	}
	w.spawn()
	w.moveBullets()
	w.resolvePlayerHits()
	w.updateEnemies()
	w.resolveEnemyBullets()
	w.updatePowerUps()

	if w.IsGameOver() {
		w.endSession()
	}
}

// updateStars scrolls the background.
func (w *World) updateStars() {
	for i := range w.Stars {
		st := &w.Stars[i]
		st.Y += st.Speed
		if st.Y > w.cfg.Arena.Height {
			w.spawner.WrapStar(st)
		}
	}
}

// movePlayer applies held left/right input and keeps the ship inside the
// side margins.
func (w *World) movePlayer(in core.InputFrame) {
	p := &w.Player
	if in.Has(core.ActionLeft) {
		p.Box.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.Box.X += p.Speed
	}
	margin := w.cfg.Player.EdgeMargin
	p.Box.X = core.ClampF(p.Box.X, margin, w.cfg.Arena.Width-p.Box.W-margin)
}

// TryFire emits a player bullet at the ship's nose if the cooldown has
// elapsed and there is ammo. Firing with nothing in the magazine is a no-op.
// Returns whether a bullet was fired.
func (w *World) TryFire() bool {
	p := &w.Player
	if w.Session.Ammo <= 0 || w.Session.Now < p.NextShotAt {
		return false
	}

	bc := w.cfg.Bullets
	x, y := p.Nose(bc.Width)
	p.Bullets = append(p.Bullets, Bullet{
		Box:   core.NewBox(x, y, bc.Width, bc.Height),
		Speed: bc.PlayerSpeed,
		Owner: OwnerPlayer,
	})
	p.NextShotAt = w.Session.Now + p.ShootDelay
	w.Session.Ammo--
	return true
}

// spawn asks the spawner for new entities.
func (w *World) spawn() {
	enemy, powerUp := w.spawner.Roll(w.profile, w.Session.Score)
	if enemy != nil {
		w.Enemies = append(w.Enemies, *enemy)
	}
	if powerUp != nil {
		w.PowerUps = append(w.PowerUps, *powerUp)
	}
}

// moveBullets advances both bullet lists and drops bullets that left the
// arena vertically.
func (w *World) moveBullets() {
	kept := w.Player.Bullets[:0]
	for _, b := range w.Player.Bullets {
		b.Box.Y += b.Speed
		if b.Box.Y < 0 {
			continue
		}
		kept = append(kept, b)
	}
	w.Player.Bullets = kept

	keptEnemy := w.EnemyBullets[:0]
	for _, b := range w.EnemyBullets {
		b.Box.Y += b.Speed
		if b.Box.Y > w.cfg.Arena.Height {
			continue
		}
		keptEnemy = append(keptEnemy, b)
	}
	w.EnemyBullets = keptEnemy
}

// resolvePlayerHits matches player bullets against enemies in two phases.
//
// Phase one walks the bullets in order against the current enemy list and
// records which bullets are consumed and how much health each enemy has left.
// A bullet hits only the first live enemy it overlaps; an enemy killed by an
// earlier bullet this tick is no longer a target.
//
// Phase two applies the outcome: consumed bullets and dead enemies are
// removed and kills are scored in enemy order.
func (w *World) resolvePlayerHits() {
	if len(w.Player.Bullets) == 0 || len(w.Enemies) == 0 {
		return
	}

	health := make([]int, len(w.Enemies))
	for i, e := range w.Enemies {
		health[i] = e.Health
	}
	consumed := make([]bool, len(w.Player.Bullets))

	for bi, b := range w.Player.Bullets {
		for ei, e := range w.Enemies {
			if health[ei] <= 0 {
				continue
			}
			if b.Box.Overlaps(e.Box) {
				health[ei] -= playerBulletDamage
				consumed[bi] = true
				break
			}
		}
	}

	kept := w.Player.Bullets[:0]
	for bi, b := range w.Player.Bullets {
		if !consumed[bi] {
			kept = append(kept, b)
		}
	}
	w.Player.Bullets = kept

	alive := w.Enemies[:0]
	for ei, e := range w.Enemies {
		if health[ei] <= 0 {
			w.scoreKill()
			continue
		}
		e.Health = health[ei]
		alive = append(alive, e)
	}
	w.Enemies = alive
}

// scoreKill awards a destroyed enemy and advances the level each time the
// score reaches the next level threshold.
func (w *World) scoreKill() {
	w.Session.Score += w.cfg.Enemies.KillScore
	w.Session.EnemiesDestroyed++
	for w.Session.Score >= w.Session.Level*w.cfg.Scoring.LevelStep {
		w.Session.Level++
	}
}

// updateEnemies moves enemies, lets them fire and resolves rams.
func (w *World) updateEnemies() {
	bc := w.cfg.Bullets
	now := w.Session.Now

	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		e.Box.Y += e.Speed

		if now >= e.NextShotAt {
			w.EnemyBullets = append(w.EnemyBullets, Bullet{
				Box:   core.NewBox(e.Box.CenterX()-bc.Width/2, e.Box.Bottom(), bc.Width, bc.Height),
				Speed: bc.EnemySpeed,
				Owner: OwnerEnemy,
			})
			e.NextShotAt = now + e.ShootDelay
		}

		if w.Player.Box.Overlaps(e.Box) {
			w.TakeDamage(w.cfg.Enemies.CollisionDamage)
			continue
		}
		if e.Box.Y > w.cfg.Arena.Height {
			continue
		}
		alive = append(alive, e)
	}
	w.Enemies = alive
}

// resolveEnemyBullets applies hits from enemy bullets on the player.
func (w *World) resolveEnemyBullets() {
	kept := w.EnemyBullets[:0]
	for _, b := range w.EnemyBullets {
		if w.Player.Box.Overlaps(b.Box) {
			w.TakeDamage(w.cfg.Enemies.BulletDamage)
			continue
		}
		kept = append(kept, b)
	}
	w.EnemyBullets = kept
}

// updatePowerUps moves power-ups and applies the ones the player touches.
func (w *World) updatePowerUps() {
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		p.Box.Y += p.Speed
		if w.Player.Box.Overlaps(p.Box) {
			w.ApplyPowerUp(p.Kind)
			continue
		}
		if p.Box.Y > w.cfg.Arena.Height {
			continue
		}
		kept = append(kept, p)
	}
	w.PowerUps = kept
}

// endSession moves the session into its terminal state and reports the
// result once.
func (w *World) endSession() {
	if w.Session.Over {
		return
	}
	w.Session.Running = false
	w.Session.Over = true
	if w.onGameOver != nil {
		w.onGameOver(w.Result())
	}
}

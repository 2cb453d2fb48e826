package road

import "github.com/vovakirdan/roadrush/internal/core"

// resolveCollisions runs every frame after motion. The order is fixed: the
// player's obstacle hits are settled before bullets get a chance to remove
// the same obstacle.
func (e *Engine) resolveCollisions(dt float64) {
	e.collideObstacles()
	e.collideFuel()
	e.collidePowerUps()
	e.prog.tickInvincibility(dt)
	e.collideBullets()
}

// collideObstacles damages the car for each obstacle it touches. While
// invincible, obstacles pass through untouched.
func (e *Engine) collideObstacles() {
	if e.prog.invincible {
		return
	}
	combat := e.cfg.Combat
	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		if !o.Overlaps(e.player) {
			kept = append(kept, o)
			continue
		}
		e.prog.damage(combat.CrashDamage)
		e.prog.speedMultiplier += combat.CrashSpeedUp
		e.play(SoundCrash)
	}
	e.obstacles = kept
}

func (e *Engine) collideFuel() {
	combat := e.cfg.Combat
	kept := e.fuel[:0]
	for _, f := range e.fuel {
		if !f.Overlaps(e.player) {
			kept = append(kept, f)
			continue
		}
		e.prog.heal(combat.FuelHeal)
		e.prog.score += combat.FuelScore
		e.play(SoundCollect)
	}
	e.fuel = kept
}

// collidePowerUps refreshes the invincibility window; pickups never stack.
func (e *Engine) collidePowerUps() {
	kept := e.powerUps[:0]
	for _, p := range e.powerUps {
		if !p.Overlaps(e.player) {
			kept = append(kept, p)
			continue
		}
		e.prog.grantInvincibility(e.cfg.Combat.Invincibility)
		e.play(SoundPowerUp)
	}
	e.powerUps = kept
}

// collideBullets lets each bullet destroy at most one obstacle.
func (e *Engine) collideBullets() {
	if len(e.bullets) == 0 || len(e.obstacles) == 0 {
		return
	}

	hit := make([]bool, len(e.obstacles))
	keptBullets := e.bullets[:0]
	for _, b := range e.bullets {
		if i := firstUnhit(b, e.obstacles, hit); i >= 0 {
			hit[i] = true
			e.prog.score += e.cfg.Combat.KillScore
			continue
		}
		keptBullets = append(keptBullets, b)
	}
	e.bullets = keptBullets

	kept := e.obstacles[:0]
	for i, o := range e.obstacles {
		if !hit[i] {
			kept = append(kept, o)
		}
	}
	e.obstacles = kept
}

func firstUnhit(b core.RectF, obstacles []core.RectF, hit []bool) int {
	for i, o := range obstacles {
		if !hit[i] && b.Overlaps(o) {
			return i
		}
	}
	return -1
}

package road

import (
	"math"

	"github.com/vovakirdan/roadrush/internal/core"
)

// band is one of the two scrolling road backgrounds. Each is a full playfield
// tall and they are stacked so the road always tiles without gaps.
type band struct {
	Y float64
}

func newBands(height float64) [2]band {
	return [2]band{{Y: 0}, {Y: height}}
}

// scrollBands moves both bands down and re-stacks any band that left the
// bottom edge directly above the other one. Bands stay exactly one playfield
// apart, so a band is moved up by whole pairs even after a very long frame.
func (e *Engine) scrollBands(dt float64) {
	if e.height <= 0 {
		return
	}
	dy := e.cfg.Speeds.Background * dt * e.prog.totalSpeed()
	pair := 2 * e.height
	for i := range e.bands {
		b := &e.bands[i]
		b.Y -= dy
		if b.Y+e.height <= 0 {
			b.Y += (math.Floor(-(b.Y+e.height)/pair) + 1) * pair
		}
	}
}

// steer applies the steering intents and clamps the car to the playfield.
func (e *Engine) steer(dt float64, in Intents) {
	dx := e.cfg.Speeds.Car * dt * e.prog.totalSpeed()
	if in.SteerLeft {
		e.player.X -= dx
	}
	if in.SteerRight {
		e.player.X += dx
	}
	e.player.X = core.ClampF(e.player.X, 0, e.maxPlayerX())
}

func (e *Engine) maxPlayerX() float64 {
	if m := e.width - e.player.W; m > 0 {
		return m
	}
	return 0
}

// moveEntities advances every falling entity and bullet, then culls anything
// that has fully left the playfield.
func (e *Engine) moveEntities(dt float64) {
	total := e.prog.totalSpeed()
	speeds := e.cfg.Speeds

	fall(e.obstacles, speeds.Obstacle*dt*total)
	fall(e.fuel, speeds.Fuel*dt*total)
	fall(e.powerUps, speeds.PowerUp*dt*total)
	for i := range e.bullets {
		e.bullets[i].Y += speeds.Bullet * dt * total
	}

	e.obstacles = cullBelow(e.obstacles)
	e.fuel = cullBelow(e.fuel)
	e.powerUps = cullBelow(e.powerUps)

	kept := e.bullets[:0]
	for _, b := range e.bullets {
		if b.Y <= e.height {
			kept = append(kept, b)
		}
	}
	e.bullets = kept
}

func fall(rects []core.RectF, dy float64) {
	for i := range rects {
		rects[i].Y -= dy
	}
}

// cullBelow drops rects whose top edge is below the playfield.
func cullBelow(rects []core.RectF) []core.RectF {
	kept := rects[:0]
	for _, r := range rects {
		if r.Top() >= 0 {
			kept = append(kept, r)
		}
	}
	return kept
}

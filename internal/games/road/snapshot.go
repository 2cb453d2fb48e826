package road

import "github.com/vovakirdan/roadrush/internal/core"

// Snapshot is a read-only view of the engine for rendering. Slices are
// copies and may be kept by the caller.
type Snapshot struct {
	Width, Height float64

	Player    core.RectF
	Obstacles []core.RectF
	Fuel      []core.RectF
	PowerUps  []core.RectF
	Bullets   []core.RectF
	BandY     [2]float64

	Score               int
	DisplaySpeed        float64
	Health              float64
	MaxHealth           float64
	Invincible          bool
	InvincibleRemaining float64
	InvincibleDuration  float64

	Phase      Phase
	Difficulty string
	PlayerName string
}

// Snapshot returns the current render view.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:     e.width,
		Height:    e.height,
		Player:    e.player,
		Obstacles: copyRects(e.obstacles),
		Fuel:      copyRects(e.fuel),
		PowerUps:  copyRects(e.powerUps),
		Bullets:   copyRects(e.bullets),
		BandY:     [2]float64{e.bands[0].Y, e.bands[1].Y},

		Score:               e.prog.score,
		DisplaySpeed:        e.prog.totalSpeed(),
		Health:              e.prog.health,
		MaxHealth:           e.prog.maxHealth,
		Invincible:          e.prog.invincible,
		InvincibleRemaining: e.prog.invincibleRemaining,
		InvincibleDuration:  e.cfg.Combat.Invincibility,

		Phase:      e.prog.phase,
		Difficulty: e.opts.Difficulty.Title(),
		PlayerName: e.opts.PlayerName,
	}
}

func copyRects(rects []core.RectF) []core.RectF {
	out := make([]core.RectF, len(rects))
	copy(out, rects)
	return out
}

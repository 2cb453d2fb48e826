package road

import (
	"math/rand"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// spawnEps absorbs float drift from summing frame deltas, so a timer that has
// accumulated exactly one interval of ticks fires on that tick.
const spawnEps = 1e-9

// spawner runs three independent interval timers and drops new entities at
// the top edge of the playfield.
type spawner struct {
	rng *rand.Rand

	obstacleTimer float64
	fuelTimer     float64
	powerUpTimer  float64

	obstacleInterval float64
	fuelInterval     float64
	powerUpInterval  float64
}

func newSpawner(seed int64, spawn config.RoadSpawn, spawnRate float64) spawner {
	if spawnRate <= 0 {
		spawnRate = 1
	}
	return spawner{
		rng:              rand.New(rand.NewSource(seed)),
		obstacleInterval: spawn.ObstacleInterval / spawnRate,
		fuelInterval:     spawn.FuelInterval,
		powerUpInterval:  spawn.PowerUpInterval,
	}
}

// spawnAt returns a rect of the given size at the top of the playfield with a
// uniformly random horizontal offset.
func (s *spawner) spawnAt(size config.Size, width, height float64) core.RectF {
	x := 0.0
	if span := width - size.Width; span > 0 {
		x = s.rng.Float64() * span
	}
	return core.NewRectF(x, height, size.Width, size.Height)
}

// updateSpawns advances the timers; each category that passes its threshold
// spawns one entity and resets only its own timer.
func (e *Engine) updateSpawns(dt float64) {
	sp := &e.spawner
	sizes := e.cfg.Sizes

	sp.obstacleTimer += dt
	if sp.obstacleTimer > sp.obstacleInterval-spawnEps {
		e.obstacles = append(e.obstacles, sp.spawnAt(sizes.Obstacle, e.width, e.height))
		sp.obstacleTimer = 0
	}

	sp.fuelTimer += dt
	if sp.fuelTimer > sp.fuelInterval-spawnEps {
		e.fuel = append(e.fuel, sp.spawnAt(sizes.Fuel, e.width, e.height))
		sp.fuelTimer = 0
	}

	sp.powerUpTimer += dt
	if sp.powerUpTimer > sp.powerUpInterval-spawnEps {
		e.powerUps = append(e.powerUps, sp.spawnAt(sizes.PowerUp, e.width, e.height))
		sp.powerUpTimer = 0
	}
}

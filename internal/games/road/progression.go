package road

import (
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Phase is the run state machine: Running until health runs out, then GameOver
// until an explicit restart.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "gameover"
	}
	return "running"
}

// progression is the per-run scalar state: health, score, invincibility,
// crash speed-up and the difficulty multipliers fixed at run start.
type progression struct {
	phase     Phase
	submitted bool

	score               int
	health              float64
	maxHealth           float64
	invincible          bool
	invincibleRemaining float64
	speedMultiplier     float64

	difficultySpeed     float64
	difficultySpawnRate float64

	fireCooldown float64
}

func newProgression(combat config.RoadCombat, preset config.DifficultyPreset) progression {
	speed, rate := preset.Multipliers()
	return progression{
		phase:               PhaseRunning,
		health:              combat.MaxHealth,
		maxHealth:           combat.MaxHealth,
		speedMultiplier:     1,
		difficultySpeed:     speed,
		difficultySpawnRate: rate,
	}
}

// totalSpeed scales every motion in the playfield.
func (p *progression) totalSpeed() float64 {
	return p.speedMultiplier * p.difficultySpeed
}

func (p *progression) damage(amount float64) {
	p.health = core.ClampF(p.health-amount, 0, p.maxHealth)
}

func (p *progression) heal(amount float64) {
	p.health = core.ClampF(p.health+amount, 0, p.maxHealth)
}

func (p *progression) grantInvincibility(seconds float64) {
	p.invincible = true
	p.invincibleRemaining = seconds
}

// tickInvincibility runs once per frame.
func (p *progression) tickInvincibility(dt float64) {
	if !p.invincible {
		return
	}
	p.invincibleRemaining -= dt
	if p.invincibleRemaining <= 0 {
		p.invincibleRemaining = 0
		p.invincible = false
	}
}

// latchGameOver moves to GameOver when health is exhausted. It reports true
// only on the frame the transition happens and the score is not yet submitted.
func (p *progression) latchGameOver() bool {
	if p.phase != PhaseRunning || p.health > 0 {
		return false
	}
	p.phase = PhaseGameOver
	if p.submitted {
		return false
	}
	p.submitted = true
	return true
}

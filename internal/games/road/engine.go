// Package road implements Road Rush, a vertically scrolling driving game.
// The Engine holds the simulation; Game adapts it to the arcade registry and
// draws it into a terminal screen buffer.
package road

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Intents are the inputs active during one frame.
type Intents struct {
	SteerLeft  bool
	SteerRight bool
	Fire       bool
	Restart    bool
}

// Options configure one engine instance. Width and Height are the playfield
// size in world units, with y pointing up.
type Options struct {
	Width       float64
	Height      float64
	Difficulty  config.DifficultyPreset
	PlayerName  string
	SoundVolume float64
	Seed        int64

	Audio       AudioSink
	Leaderboard Leaderboard
	Logger      *log.Logger
}

// Engine is the frame-driven simulation. It is not safe for concurrent use;
// the caller steps it from a single loop.
type Engine struct {
	cfg  config.RoadConfig
	opts Options

	width, height float64

	player    core.RectF
	obstacles []core.RectF
	fuel      []core.RectF
	powerUps  []core.RectF
	bullets   []core.RectF
	bands     [2]band

	prog    progression
	spawner spawner
	runs    int64

	audio       AudioSink
	leaderboard Leaderboard
	log         *log.Logger
}

// NewEngine creates an engine ready to run its first frame.
func NewEngine(cfg config.RoadConfig, opts Options) *Engine {
	if opts.PlayerName == "" {
		opts.PlayerName = config.DefaultPlayerName
	}
	e := &Engine{
		cfg:         cfg,
		opts:        opts,
		width:       opts.Width,
		height:      opts.Height,
		audio:       opts.Audio,
		leaderboard: opts.Leaderboard,
		log:         opts.Logger,
	}
	if e.audio == nil {
		e.audio = nopAudio{}
	}
	if e.leaderboard == nil {
		e.leaderboard = nopLeaderboard{}
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	e.Restart()
	return e
}

// Restart discards every entity and all run state, then re-derives the
// difficulty multipliers.
func (e *Engine) Restart() {
	pw, ph := e.cfg.Player.Width, e.cfg.Player.Height
	e.player = core.NewRectF((e.width-pw)/2, e.cfg.Player.Y, pw, ph)
	e.player.X = core.ClampF(e.player.X, 0, e.maxPlayerX())

	e.obstacles = e.obstacles[:0]
	e.fuel = e.fuel[:0]
	e.powerUps = e.powerUps[:0]
	e.bullets = e.bullets[:0]
	e.bands = newBands(e.height)

	e.prog = newProgression(e.cfg.Combat, e.opts.Difficulty)
	// Each run gets its own stream so restarts do not replay the previous layout.
	e.spawner = newSpawner(e.opts.Seed+e.runs, e.cfg.Spawn, e.prog.difficultySpawnRate)
	e.runs++

	e.log.Debug("run started", "difficulty", e.opts.Difficulty, "seed", e.opts.Seed, "run", e.runs)
}

// Update advances the simulation by dt seconds. In GameOver only a restart
// intent has any effect.
func (e *Engine) Update(dt float64, in Intents) {
	if e.prog.phase == PhaseGameOver {
		if in.Restart {
			e.Restart()
		}
		return
	}
	if dt < 0 {
		dt = 0
	}

	e.scrollBands(dt)
	e.steer(dt, in)
	e.fire(dt, in.Fire)
	e.updateSpawns(dt)
	e.moveEntities(dt)
	e.resolveCollisions(dt)

	if e.prog.latchGameOver() {
		e.submitScore()
	}
}

// fire spawns a bullet above the car when the cooldown allows it. The
// cooldown counts down every frame whether or not fire was requested.
func (e *Engine) fire(dt float64, requested bool) {
	if requested && e.prog.fireCooldown <= 0 {
		size := e.cfg.Sizes.Bullet
		x := e.player.CenterX() - size.Width/2
		e.bullets = append(e.bullets, core.NewRectF(x, e.player.Top(), size.Width, size.Height))
		e.prog.fireCooldown = e.cfg.Combat.FireCooldown
		e.play(SoundShoot)
	}
	e.prog.fireCooldown -= dt
}

func (e *Engine) play(s Sound) {
	e.audio.Play(s, e.opts.SoundVolume*s.Gain())
}

// submitScore hands the final score over once; failures are only logged.
func (e *Engine) submitScore() {
	name := e.opts.PlayerName
	e.log.Info("game over", "player", name, "score", e.prog.score, "difficulty", e.opts.Difficulty)
	if err := e.leaderboard.Submit(name, e.prog.score); err != nil {
		e.log.Error("leaderboard submission failed", "player", name, "score", e.prog.score, "err", err)
	}
}

// Phase returns the current run phase.
func (e *Engine) Phase() Phase {
	return e.prog.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.prog.score
}

package road

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "road"

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyOverride replaces the settings difficulty when set via CLI
var difficultyOverride config.DifficultyPreset

var (
	settings  = config.DefaultSettings()
	audioSink AudioSink
	logger    = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the difficulty from settings; an empty
// string clears the override.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyOverride = ""
		return
	}
	difficultyOverride = config.ParseDifficulty(preset)
}

// SetSettings sets the player settings read at every Reset.
func SetSettings(s *config.Settings) {
	if s == nil {
		s = config.DefaultSettings()
	}
	settings = s
}

// SetAudioSink sets the sound output used by local games.
func SetAudioSink(sink AudioSink) {
	audioSink = sink
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the Engine to the registry: fixed ticks, key presses instead of
// held keys, pause, and terminal rendering.
type Game struct {
	engine  *Engine
	runtime core.RuntimeConfig
	cfg     config.RoadConfig

	difficulty config.DifficultyPreset
	playerName string
	showFPS    bool
	paused     bool

	// Remaining ticks a steer press stays active.
	leftHold  int
	rightHold int

	submitter registry.ScoreSubmitter
	fps       fpsMeter
}

// New creates a new Road Rush game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Rush"
}

// SetScoreSubmitter implements registry.ScoreReporter.
func (g *Game) SetScoreSubmitter(s registry.ScoreSubmitter) {
	g.submitter = s
}

// SetPlayerName implements registry.PlayerNamer. It takes precedence over
// the name stored in settings.
func (g *Game) SetPlayerName(name string) {
	g.playerName = name
}

// Reset builds a fresh engine sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRoad(configPath)
	if err != nil {
		logger.Warn("using default road config", "err", err)
		cfg = config.DefaultRoadConfig()
	}
	g.cfg = cfg

	g.difficulty = settings.Difficulty
	if difficultyOverride != "" {
		g.difficulty = difficultyOverride
	}
	name := settings.PlayerName
	if g.playerName != "" {
		name = g.playerName
	}
	g.showFPS = settings.ShowFPS
	g.paused = false
	g.leftHold, g.rightHold = 0, 0
	g.fps = fpsMeter{}

	rows := runtime.ScreenH - hudRows
	if rows < 1 {
		rows = 1
	}
	sink := audioSink
	if sink == nil {
		sink = nopAudio{}
	}

	g.engine = NewEngine(cfg, Options{
		Width:       float64(runtime.ScreenW) * cfg.Playfield.UnitsPerColumn,
		Height:      float64(rows) * cfg.Playfield.UnitsPerRow,
		Difficulty:  g.difficulty,
		PlayerName:  name,
		SoundVolume: settings.SoundVolume,
		Seed:        runtime.Seed,
		Audio:       sink,
		Leaderboard: LeaderboardFunc(g.submit),
		Logger:      logger,
	})
}

func (g *Game) submit(player string, score int) error {
	if g.submitter == nil {
		return nil
	}
	return g.submitter.SubmitScore(GameID, player, score, string(g.difficulty))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.Phase() == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.engine.Update(0, Intents{Restart: true})
			g.leftHold, g.rightHold = 0, 0
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	hold := g.cfg.Input.SteerHoldTicks
	if hold < 1 {
		hold = 1
	}
	if in.Has(core.ActionLeft) {
		g.leftHold, g.rightHold = hold, 0
	}
	if in.Has(core.ActionRight) {
		g.rightHold, g.leftHold = hold, 0
	}

	g.engine.Update(g.tickSeconds(), Intents{
		SteerLeft:  g.leftHold > 0,
		SteerRight: g.rightHold > 0,
		Fire:       in.Has(core.ActionFire),
	})

	if g.leftHold > 0 {
		g.leftHold--
	}
	if g.rightHold > 0 {
		g.rightHold--
	}
	if g.showFPS {
		g.fps.tick(time.Now())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) tickSeconds() float64 {
	if g.runtime.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(g.runtime.TickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// fpsMeter counts frames over one-second windows.
type fpsMeter struct {
	windowStart time.Time
	frames      int
	value       int
}

func (m *fpsMeter) tick(now time.Time) {
	if m.windowStart.IsZero() {
		m.windowStart = now
	}
	m.frames++
	if elapsed := now.Sub(m.windowStart); elapsed >= time.Second {
		m.value = int(float64(m.frames) / elapsed.Seconds())
		m.frames = 0
		m.windowStart = now
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

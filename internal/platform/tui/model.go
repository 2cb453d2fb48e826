package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/registry"
)

// Exit says why a game screen closed.
type Exit int

const (
	ExitQuit Exit = iota
	ExitMenu
	ExitScoreboard
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	exit       Exit
}

// NewModel creates a new Bubble Tea model for the given game. Games that
// report their own scores get submitter; a nil submitter is not attached.
func NewModel(game registry.Game, submitter registry.ScoreSubmitter, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if r, ok := game.(registry.ScoreReporter); ok && submitter != nil {
		r.SetScoreSubmitter(submitter)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.leave(ExitQuit)
	}

	idle := m.gameState.GameOver || m.gameState.Paused
	switch action {
	case core.ActionBack:
		if idle {
			return m.leave(ExitMenu)
		}
		// Esc while driving pauses first.
		m.inputFrame.Set(core.ActionPause)
	case core.ActionScoreboard:
		if m.gameState.GameOver {
			return m.leave(ExitScoreboard)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m Model) leave(e Exit) (tea.Model, tea.Cmd) {
	m.exit = e
	m.quitting = true
	return m, tea.Quit
}

// handleResize processes window resize events. A running game restarts at
// the new size since the playfield is derived from the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to ~/.roadrush/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Exit reports why the game screen closed.
func (m Model) Exit() Exit {
	return m.exit
}

// IsDone returns true once the player left the game screen.
func (m Model) IsDone() bool {
	return m.quitting
}

// Run plays game until the player leaves and reports where to go next.
func Run(game registry.Game, submitter registry.ScoreSubmitter, cfg core.RuntimeConfig) (Exit, error) {
	model := NewModel(game, submitter, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ExitQuit, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return ExitQuit, nil
	}
	return m.Exit(), nil
}

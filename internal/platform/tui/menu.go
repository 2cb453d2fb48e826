package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/storage"
)

// MenuChoice is the entry picked on the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuLeaderboard
	MenuSettings
	MenuQuit
)

// String returns the label shown on the menu.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuLeaderboard:
		return "Leaderboard"
	case MenuSettings:
		return "Settings"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuChoice
	cursor    int
	width     int
	height    int
	best      int
	player    string
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// MenuOptions configures what the menu shows.
type MenuOptions struct {
	GameID       string
	PlayerName   string
	HideSettings bool // SSH sessions have no per-user settings
}

// NewMenuModel creates a new menu model. The best score is read once from
// store, which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) MenuModel {
	items := []MenuChoice{MenuPlay, MenuLeaderboard, MenuSettings, MenuQuit}
	if opts.HideSettings {
		items = []MenuChoice{MenuPlay, MenuLeaderboard, MenuQuit}
	}

	best := 0
	if store != nil {
		if high, err := store.HighScore(opts.GameID); err == nil {
			best = high
		}
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      best,
		player:    opts.PlayerName,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionSelect:
		m.choice = m.items[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	var b strings.Builder

	top := (m.height - len(m.items) - 10) / 2
	if top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}

	b.WriteString(centerText(titleStyle.Render("R O A D   R U S H"), m.width))
	b.WriteString("\n\n")

	sub := "Dodge, shoot and refuel"
	if m.player != "" {
		sub = fmt.Sprintf("Driver: %s", m.player)
	}
	b.WriteString(centerText(hintStyle.Render(sub), m.width))
	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(hintStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.String() + "  "
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.String() + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(hintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry, MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) (MenuResult, error) {
	model := NewMenuModel(store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}

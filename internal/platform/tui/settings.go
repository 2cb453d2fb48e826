package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/config"
)

// volumeStep is the change per left/right press on the volume row.
const volumeStep = 0.05

type settingsField int

const (
	fieldName settingsField = iota
	fieldVolume
	fieldDifficulty
	fieldFPS
	fieldReset
	fieldBack
	fieldCount
)

// SettingsModel edits the player settings. Every change is saved at once.
type SettingsModel struct {
	settings  *config.Settings
	nameInput textinput.Model
	editing   bool
	cursor    settingsField
	keyMapper *KeyMapper
	width     int
	height    int
	err       error
	done      bool
	quitting  bool
}

// NewSettingsModel creates a settings screen for s.
func NewSettingsModel(s *config.Settings, width, height int) SettingsModel {
	ti := textinput.New()
	ti.CharLimit = config.MaxPlayerNameLen
	ti.Width = config.MaxPlayerNameLen + 1
	ti.Prompt = ""
	ti.SetValue(s.PlayerName)

	return SettingsModel{
		settings:  s,
		nameInput: ti,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateName(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// updateName feeds keys to the name input until enter or esc.
func (m SettingsModel) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.nameInput.Blur()
		m.settings.SetPlayerName(m.nameInput.Value())
		m.nameInput.SetValue(m.settings.PlayerName)
		m.save()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.nameInput.Blur()
		m.nameInput.SetValue(m.settings.PlayerName)
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.done = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + fieldCount) % fieldCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % fieldCount

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		switch m.cursor {
		case fieldName:
			m.editing = true
			m.nameInput.CursorEnd()
			return m, m.nameInput.Focus()
		case fieldReset:
			m.settings.ResetToDefaults()
			m.nameInput.SetValue(m.settings.PlayerName)
			m.save()
		case fieldBack:
			m.done = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}
	}

	return m, nil
}

// adjust changes the value under the cursor by one step in dir.
func (m *SettingsModel) adjust(dir int) {
	switch m.cursor {
	case fieldVolume:
		// Round to whole steps so repeated presses land on exact percentages.
		v := math.Round(m.settings.SoundVolume/volumeStep) + float64(dir)
		m.settings.SetSoundVolume(v * volumeStep)
	case fieldDifficulty:
		if dir < 0 {
			m.settings.Difficulty = m.settings.Difficulty.Prev()
		} else {
			m.settings.Difficulty = m.settings.Difficulty.Next()
		}
	case fieldFPS:
		m.settings.ShowFPS = !m.settings.ShowFPS
	default:
		return
	}
	m.save()
}

func (m *SettingsModel) save() {
	m.err = m.settings.Save()
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	name := m.settings.PlayerName
	if m.editing {
		name = m.nameInput.View()
	}
	fps := "Off"
	if m.settings.ShowFPS {
		fps = "On"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Player name", name},
		{"Sound volume", fmt.Sprintf("< %3d%% >", int(math.Round(m.settings.SoundVolume*100)))},
		{"Difficulty", fmt.Sprintf("< %s >", m.settings.Difficulty.Title())},
		{"Show FPS", fps},
		{"Reset to defaults", ""},
		{"Back", ""},
	}
	for i, row := range rows {
		line := fmt.Sprintf("%-18s %-20s", row.label, row.value)
		if settingsField(i) == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "Up/Down: Select  |  Left/Right: Change  |  Enter: Edit  |  Esc: Back"
	if m.editing {
		hint = "Enter: Save name  |  Esc: Cancel"
	}
	b.WriteString(centerText(hintStyle.Render(hint), m.width))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(centerText(errorStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// Err returns the last save error, if any.
func (m SettingsModel) Err() error {
	return m.err
}

// RunSettings runs the settings screen. Returns true if user wants to go
// back to menu, false if quitting.
func RunSettings(s *config.Settings, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewSettingsModel(s, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(SettingsModel)
	if !ok {
		return false, nil
	}
	return !m.IsQuitting(), nil
}

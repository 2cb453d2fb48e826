package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/registry"
	"github.com/vovakirdan/roadrush/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets    int
	steps     []core.InputFrame
	state     core.GameState
	submitter registry.ScoreSubmitter
	player    string
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.steps = append(g.steps, frame)
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) SetScoreSubmitter(s registry.ScoreSubmitter) { g.submitter = s }
func (g *stubGame) SetPlayerName(name string)                   { g.player = name }

type nopSubmitter struct{}

func (nopSubmitter) SubmitScore(string, string, int, string) error { return nil }

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelAttachesSubmitter(t *testing.T) {
	game := &stubGame{}
	NewModel(game, nopSubmitter{}, testConfig())
	if game.submitter == nil {
		t.Error("score submitter not attached")
	}

	other := &stubGame{}
	NewModel(other, nil, testConfig())
	if other.submitter != nil {
		t.Error("nil submitter should not be attached")
	}
}

func TestModelKeysReachNextTick(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m, _ = update(t, m, runeKey("a"))
	m, _ = update(t, m, runeKey("w"))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})

	if len(game.steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.steps))
	}
	if !game.steps[0].Has(core.ActionLeft) || !game.steps[0].Has(core.ActionFire) {
		t.Errorf("first step missing actions: %v", game.steps[0].Actions)
	}
	if len(game.steps[1].Actions) != 0 {
		t.Errorf("input should be cleared after a tick, got %v", game.steps[1].Actions)
	}
	if m.IsDone() {
		t.Error("model should still be running")
	}
}

func TestModelEscPausesThenLeaves(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, TickMsg{})
	if !game.state.Paused || m.IsDone() {
		t.Fatal("esc while driving should pause")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsDone() || m.Exit() != ExitMenu || cmd == nil {
		t.Errorf("esc while paused should return to menu, exit=%v done=%v", m.Exit(), m.IsDone())
	}
}

func TestModelGameOverExits(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		exit Exit
	}{
		{"leaderboard", runeKey("l"), ExitScoreboard},
		{"menu", runeKey("b"), ExitMenu},
		{"quit", runeKey("q"), ExitQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &stubGame{}
			m := NewModel(game, nil, testConfig())
			m.Init()
			game.state.GameOver = true
			m, _ = update(t, m, TickMsg{})

			m, _ = update(t, m, tt.key)
			if !m.IsDone() || m.Exit() != tt.exit {
				t.Errorf("exit = %v, done = %v; expected %v", m.Exit(), m.IsDone(), tt.exit)
			}
			if m.View() != "" {
				t.Error("view should be empty after leaving")
			}
		})
	}
}

func TestModelLeaderboardIgnoredWhileRunning(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	m.Init()
	m, _ = update(t, m, runeKey("l"))
	if m.IsDone() {
		t.Error("l should do nothing during a run")
	}
}

func TestModelRestartPassedToGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()
	game.state.GameOver = true

	m, _ = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})
	if !game.steps[0].Has(core.ActionRestart) {
		t.Error("restart should reach the game")
	}
}

func TestModelResizeResetsRunningGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if game.resets != 1 {
		t.Errorf("same size should not reset, resets = %d", game.resets)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if game.resets != 2 {
		t.Errorf("new size should reset, resets = %d", game.resets)
	}
	if !strings.HasPrefix(m.View(), "stub") {
		t.Errorf("view should render the game, got %q", m.View())
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), MenuOptions{GameID: "stub"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Choice() != MenuQuit || cmd == nil {
		t.Errorf("up from the top should wrap to Quit, got %v", m.Choice())
	}

	ssh := NewMenuModel(nil, testConfig(), MenuOptions{GameID: "stub", HideSettings: true})
	for _, item := range ssh.items {
		if item == MenuSettings {
			t.Error("settings should be hidden")
		}
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("stub", "Ana", 420, "normal")

	m := NewMenuModel(store, testConfig(), MenuOptions{GameID: "stub", PlayerName: "Ana"})
	view := m.View()
	if !strings.Contains(view, "Best: 420") || !strings.Contains(view, "Driver: Ana") {
		t.Errorf("menu view missing best score or driver:\n%s", view)
	}
}

func TestSettingsAdjustAndSave(t *testing.T) {
	path := t.TempDir() + "/settings.yaml"
	s, err := config.LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	m := NewSettingsModel(s, 80, 24)

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(SettingsModel)
	}

	// Volume row: default 0.7, one step down
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyLeft})
	if s.SoundVolume < 0.6499 || s.SoundVolume > 0.6501 {
		t.Errorf("volume = %f, expected 0.65", s.SoundVolume)
	}
	for i := 0; i < 30; i++ {
		press(tea.KeyMsg{Type: tea.KeyRight})
	}
	if s.SoundVolume != 1 {
		t.Errorf("volume should clamp at 1, got %f", s.SoundVolume)
	}

	// Difficulty row
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyRight})
	if s.Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %v, expected hard", s.Difficulty)
	}

	// FPS row
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyEnter})
	if !s.ShowFPS {
		t.Error("enter should toggle FPS")
	}

	if m.Err() != nil {
		t.Fatalf("save failed: %v", m.Err())
	}
	loaded, err := config.LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Difficulty != config.DifficultyHard || !loaded.ShowFPS || loaded.SoundVolume != 1 {
		t.Errorf("settings not persisted: %+v", loaded)
	}
}

func TestSettingsEditName(t *testing.T) {
	s := config.DefaultSettings()
	m := NewSettingsModel(s, 80, 24)

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(SettingsModel)
	}

	press(tea.KeyMsg{Type: tea.KeyEnter})
	for range len("Player") {
		press(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	press(runeKey("Zed"))
	// q is text while editing, not quit
	press(runeKey("q"))
	if m.IsQuitting() {
		t.Fatal("typing q in the name field should not quit")
	}
	press(tea.KeyMsg{Type: tea.KeyEnter})

	if s.PlayerName != "Zedq" {
		t.Errorf("PlayerName = %q, expected Zedq", s.PlayerName)
	}
}

func TestSettingsResetToDefaults(t *testing.T) {
	s := config.DefaultSettings()
	s.Difficulty = config.DifficultyEasy
	s.ShowFPS = true
	m := NewSettingsModel(s, 80, 24)
	m.cursor = fieldReset

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SettingsModel)
	if s.Difficulty != config.DifficultyNormal || s.ShowFPS {
		t.Errorf("reset did not restore defaults: %+v", s)
	}
}

func TestScoreboardClearNeedsConfirm(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("stub", "Ana", 100, "easy")
	store.SaveScore("stub", "Bo", 200, "hard")

	m := NewScoreboardModel(store, 80, 24, ScoreboardOptions{GameID: "stub"})
	if len(m.scores) != 2 || m.scores[0].Player != "Bo" {
		t.Fatalf("unexpected scores: %+v", m.scores)
	}
	if !strings.Contains(m.View(), "Hard") {
		t.Error("difficulty column missing from view")
	}

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}

	press(runeKey("c"))
	press(runeKey("n"))
	if len(m.scores) != 2 {
		t.Fatal("cancel should keep scores")
	}

	press(runeKey("c"))
	press(runeKey("y"))
	if len(m.scores) != 0 {
		t.Errorf("scores should be cleared, got %d", len(m.scores))
	}
	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("store still has scores, high = %d", high)
	}
}

func TestScoreboardReadOnly(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("stub", "Ana", 100, "easy")

	m := NewScoreboardModel(store, 80, 24, ScoreboardOptions{GameID: "stub", ReadOnly: true})
	next, _ := m.Update(runeKey("c"))
	m = next.(ScoreboardModel)
	if m.confirming {
		t.Error("read-only scoreboard should not offer clearing")
	}
}

func TestSessionFlow(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	lb := storage.NewLeaderboard(store, nil)

	s := NewSessionModel(SessionOptions{
		GameID:      "stub",
		Player:      "guest",
		Store:       store,
		Leaderboard: lb,
	}, testConfig())

	press := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	// Play is the first entry
	press(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("expected game screen, got %v", s.screen)
	}
	game, ok := s.game.game.(*stubGame)
	if !ok {
		t.Fatalf("unexpected game %T", s.game.game)
	}
	if game.player != "guest" || game.submitter == nil {
		t.Errorf("session should name the player and attach the leaderboard: %+v", game)
	}

	if s.opts.Leaderboard == lb || game.submitter != registry.ScoreSubmitter(s.opts.Leaderboard) {
		t.Error("session should submit through its own fork of the shared leaderboard")
	}

	if err := game.submitter.SubmitScore("stub", "guest", 50, "normal"); err != nil {
		t.Fatal(err)
	}
	game.state.GameOver = true
	press(TickMsg{})
	cmd := press(runeKey("l"))
	if s.screen != screenScoreboard || s.quitting {
		t.Fatalf("expected scoreboard screen, got %v", s.screen)
	}
	if len(s.scoreboard.scores) != 1 || s.scoreboard.scores[0].Score != 50 {
		t.Errorf("scoreboard should show the run that just ended, got %+v", s.scoreboard.scores)
	}
	if cmd != nil {
		if _, isQuit := cmd().(tea.QuitMsg); isQuit {
			t.Error("leaving the game must not end the session")
		}
	}

	press(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("expected menu screen, got %v", s.screen)
	}

	cmd = press(runeKey("q"))
	if !s.quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
}

func TestSessionsForkSharedLeaderboard(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	lb := storage.NewLeaderboard(store, nil)

	a := NewSessionModel(SessionOptions{GameID: "stub", Player: "a", Store: store, Leaderboard: lb}, testConfig())
	b := NewSessionModel(SessionOptions{GameID: "stub", Player: "b", Store: store, Leaderboard: lb}, testConfig())
	if a.opts.Leaderboard == nil || a.opts.Leaderboard == b.opts.Leaderboard {
		t.Error("each session needs its own leaderboard fork")
	}

	none := NewSessionModel(SessionOptions{GameID: "stub", Player: "c"}, testConfig())
	if none.opts.Leaderboard != nil {
		t.Error("a session without a leaderboard should not get one")
	}
}

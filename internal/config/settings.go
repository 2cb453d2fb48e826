package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values for player settings.
const (
	DefaultPlayerName  = "Player"
	DefaultSoundVolume = 0.7
	MaxPlayerNameLen   = 16
)

// Settings holds player preferences persisted between sessions.
type Settings struct {
	PlayerName  string           `yaml:"player_name"`
	SoundVolume float64          `yaml:"sound_volume"`
	Difficulty  DifficultyPreset `yaml:"difficulty"`
	ShowFPS     bool             `yaml:"show_fps"`

	path string
}

// DefaultSettings returns settings with default values and no backing file.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.ResetToDefaults()
	return s
}

// LoadSettings reads settings from path, or ~/.roadrush/settings.yaml when path is empty.
// A missing file yields defaults bound to that path.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = UserPath("settings.yaml")
	} else {
		expanded, err := ExpandHome(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	s := DefaultSettings()
	s.path = path
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// Save writes the settings back to their file.
func (s *Settings) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("cannot create settings directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", s.path, err)
	}
	return nil
}

// Path returns the backing file path, empty for in-memory settings.
func (s *Settings) Path() string {
	return s.path
}

// ResetToDefaults restores every preference to its default value.
func (s *Settings) ResetToDefaults() {
	s.PlayerName = DefaultPlayerName
	s.SoundVolume = DefaultSoundVolume
	s.Difficulty = DifficultyNormal
	s.ShowFPS = false
}

// SetSoundVolume stores the volume clamped to [0, 1].
func (s *Settings) SetSoundVolume(v float64) {
	s.SoundVolume = clampF(v, 0, 1)
}

// SetPlayerName stores a trimmed, length-limited name; blank names reset to the default.
func (s *Settings) SetPlayerName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName
	}
	if r := []rune(name); len(r) > MaxPlayerNameLen {
		name = string(r[:MaxPlayerNameLen])
	}
	s.PlayerName = name
}

func (s *Settings) normalize() {
	s.SetPlayerName(s.PlayerName)
	s.SetSoundVolume(s.SoundVolume)
	s.Difficulty = ParseDifficulty(string(s.Difficulty))
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

package config

import "strings"

// DifficultyPreset represents a named difficulty level chosen before a run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Difficulties lists the presets in menu order.
var Difficulties = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty converts a user-supplied name to a preset.
// Unknown or empty names resolve to normal.
func ParseDifficulty(name string) DifficultyPreset {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}

// Multipliers returns the fixed (speed, spawn rate) pair for the preset.
// A higher spawn rate means shorter obstacle spawn intervals.
func (p DifficultyPreset) Multipliers() (speed, spawnRate float64) {
	switch p {
	case DifficultyEasy:
		return 0.8, 1.5
	case DifficultyHard:
		return 1.3, 0.7
	default:
		return 1.0, 1.0
	}
}

// Title returns the display name for the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Next returns the following preset, wrapping around.
func (p DifficultyPreset) Next() DifficultyPreset {
	for i, d := range Difficulties {
		if d == p {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DifficultyNormal
}

// Prev returns the preceding preset, wrapping around.
func (p DifficultyPreset) Prev() DifficultyPreset {
	for i, d := range Difficulties {
		if d == p {
			return Difficulties[(i+len(Difficulties)-1)%len(Difficulties)]
		}
	}
	return DifficultyNormal
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRoad(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultRoadConfig() {
		t.Errorf("embedded YAML and DefaultRoadConfig() differ:\n%+v\n%+v", cfg, DefaultRoadConfig())
	}
}

func TestLoadRoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "road.yaml")
	data := []byte("speeds:\n  car: 650\ncombat:\n  crash_damage: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRoad(path)
	if err != nil {
		t.Fatalf("LoadRoad() failed: %v", err)
	}
	if cfg.Speeds.Car != 650 {
		t.Errorf("car speed = %f, expected 650", cfg.Speeds.Car)
	}
	if cfg.Combat.CrashDamage != 25 {
		t.Errorf("crash damage = %f, expected 25", cfg.Combat.CrashDamage)
	}
	if cfg.Speeds.Obstacle != 300 {
		t.Errorf("unset fields should keep defaults, obstacle speed = %f", cfg.Speeds.Obstacle)
	}
}

func TestLoadRoadErrors(t *testing.T) {
	if _, err := LoadRoad(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sizes:\n  bullet: { width: 0, height: 5 }\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRoad(path); err == nil {
		t.Error("zero-sized bullet should fail validation")
	}
}

func TestValidateRejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RoadConfig)
	}{
		{"crash damage", func(c *RoadConfig) { c.Combat.CrashDamage = -10 }},
		{"fuel heal", func(c *RoadConfig) { c.Combat.FuelHeal = -1 }},
		{"crash speed-up", func(c *RoadConfig) { c.Combat.CrashSpeedUp = -0.1 }},
		{"invincibility", func(c *RoadConfig) { c.Combat.Invincibility = -2 }},
		{"kill score", func(c *RoadConfig) { c.Combat.KillScore = -10 }},
		{"fire cooldown", func(c *RoadConfig) { c.Combat.FireCooldown = -0.5 }},
		{"car speed", func(c *RoadConfig) { c.Speeds.Car = -500 }},
		{"obstacle speed", func(c *RoadConfig) { c.Speeds.Obstacle = -300 }},
		{"bullet speed", func(c *RoadConfig) { c.Speeds.Bullet = -1 }},
		{"background speed", func(c *RoadConfig) { c.Speeds.Background = -1 }},
		{"steer hold", func(c *RoadConfig) { c.Input.SteerHoldTicks = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRoadConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("negative %s should fail validation", tt.name)
			}
		})
	}

	if err := DefaultRoadConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadRoadRejectsNegativeCrashDamage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg.yaml")
	if err := os.WriteFile(path, []byte("combat:\n  crash_damage: -10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRoad(path); err == nil {
		t.Error("negative crash damage should fail validation")
	}
}

func TestDifficultyMultipliers(t *testing.T) {
	tests := []struct {
		preset           DifficultyPreset
		speed, spawnRate float64
	}{
		{DifficultyEasy, 0.8, 1.5},
		{DifficultyNormal, 1.0, 1.0},
		{DifficultyHard, 1.3, 0.7},
	}

	for _, tc := range tests {
		speed, rate := tc.preset.Multipliers()
		if speed != tc.speed || rate != tc.spawnRate {
			t.Errorf("%s: Multipliers() = (%f, %f), expected (%f, %f)", tc.preset, speed, rate, tc.speed, tc.spawnRate)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		" HARD ": DifficultyHard,
		"normal": DifficultyNormal,
		"":       DifficultyNormal,
		"insane": DifficultyNormal,
	}
	for in, want := range tests {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestDifficultyCycle(t *testing.T) {
	if DifficultyHard.Next() != DifficultyEasy {
		t.Error("Next should wrap from hard to easy")
	}
	if DifficultyEasy.Prev() != DifficultyHard {
		t.Error("Prev should wrap from easy to hard")
	}
	if DifficultyEasy.Next() != DifficultyNormal {
		t.Error("Next of easy should be normal")
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDir is the per-user directory holding configs, settings, scores and logs.
const appDir = ".roadrush"

// LoadRoad loads Road Rush configuration.
// Search order: customPath -> ~/.roadrush/configs/road.yaml -> ./configs/road.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadRoad(customPath string) (RoadConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRoadConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRoad(data)
		if err != nil {
			return DefaultRoadConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "road.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRoad(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "road.yaml")); err == nil {
		if cfg, err := parseRoad(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRoad(defaultRoadYAML)
	if err != nil {
		return DefaultRoadConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRoad decodes YAML on top of the hardcoded defaults and validates it.
func parseRoad(data []byte) (RoadConfig, error) {
	cfg := DefaultRoadConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c RoadConfig) Validate() error {
	if c.Playfield.UnitsPerColumn <= 0 || c.Playfield.UnitsPerRow <= 0 {
		return fmt.Errorf("playfield units must be positive")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	sizes := map[string]Size{
		"obstacle": c.Sizes.Obstacle,
		"fuel":     c.Sizes.Fuel,
		"power_up": c.Sizes.PowerUp,
		"bullet":   c.Sizes.Bullet,
	}
	for name, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%s size must be positive", name)
		}
	}
	if c.Spawn.ObstacleInterval <= 0 || c.Spawn.FuelInterval <= 0 || c.Spawn.PowerUpInterval <= 0 {
		return fmt.Errorf("spawn intervals must be positive")
	}
	if c.Combat.MaxHealth <= 0 {
		return fmt.Errorf("max_health must be positive")
	}
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"speeds.car", c.Speeds.Car},
		{"speeds.obstacle", c.Speeds.Obstacle},
		{"speeds.fuel", c.Speeds.Fuel},
		{"speeds.power_up", c.Speeds.PowerUp},
		{"speeds.bullet", c.Speeds.Bullet},
		{"speeds.background", c.Speeds.Background},
		{"combat.crash_damage", c.Combat.CrashDamage},
		{"combat.crash_speed_up", c.Combat.CrashSpeedUp},
		{"combat.fuel_heal", c.Combat.FuelHeal},
		{"combat.fuel_score", float64(c.Combat.FuelScore)},
		{"combat.kill_score", float64(c.Combat.KillScore)},
		{"combat.invincibility", c.Combat.Invincibility},
		{"combat.fire_cooldown", c.Combat.FireCooldown},
		{"input.steer_hold_ticks", float64(c.Input.SteerHoldTicks)},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}
	return nil
}

// UserPath joins elem under ~/.roadrush, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, appDir}, elem...)...)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/road.yaml
var defaultRoadYAML []byte

// DefaultRoadConfig returns the default Road Rush configuration.
func DefaultRoadConfig() RoadConfig {
	return RoadConfig{
		Playfield: RoadPlayfield{
			UnitsPerColumn: 10,
			UnitsPerRow:    25,
		},
		Player: RoadPlayer{
			Y:      100,
			Width:  60,
			Height: 100,
		},
		Speeds: RoadSpeeds{
			Car:        500,
			Obstacle:   300,
			Fuel:       250,
			PowerUp:    220,
			Bullet:     700,
			Background: 200,
		},
		Sizes: RoadSizes{
			Obstacle: Size{Width: 60, Height: 50},
			Fuel:     Size{Width: 30, Height: 50},
			PowerUp:  Size{Width: 30, Height: 50},
			Bullet:   Size{Width: 10, Height: 25},
		},
		Spawn: RoadSpawn{
			ObstacleInterval: 1,
			FuelInterval:     2,
			PowerUpInterval:  5,
		},
		Combat: RoadCombat{
			MaxHealth:     100,
			CrashDamage:   20,
			CrashSpeedUp:  0.1,
			FuelHeal:      10,
			FuelScore:     5,
			KillScore:     10,
			Invincibility: 3,
			FireCooldown:  0.25,
		},
		Input: RoadInput{
			SteerHoldTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRoadYAML
}

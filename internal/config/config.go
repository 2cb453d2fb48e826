// Package config provides YAML-based game configuration loading, difficulty
// presets and persisted player settings.
package config

// RoadConfig contains all tunable parameters for Road Rush.
// Distances are world units, speeds are units per second, times are seconds.
type RoadConfig struct {
	Playfield RoadPlayfield `yaml:"playfield"`
	Player    RoadPlayer    `yaml:"player"`
	Speeds    RoadSpeeds    `yaml:"speeds"`
	Sizes     RoadSizes     `yaml:"sizes"`
	Spawn     RoadSpawn     `yaml:"spawn"`
	Combat    RoadCombat    `yaml:"combat"`
	Input     RoadInput     `yaml:"input"`
}

// RoadPlayfield maps terminal cells to world units.
type RoadPlayfield struct {
	UnitsPerColumn float64 `yaml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row"`
}

// RoadPlayer defines the car's fixed geometry.
type RoadPlayer struct {
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RoadSpeeds defines base speeds before multipliers are applied.
type RoadSpeeds struct {
	Car        float64 `yaml:"car"`
	Obstacle   float64 `yaml:"obstacle"`
	Fuel       float64 `yaml:"fuel"`
	PowerUp    float64 `yaml:"power_up"`
	Bullet     float64 `yaml:"bullet"`
	Background float64 `yaml:"background"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RoadSizes defines the fixed size of each entity category.
type RoadSizes struct {
	Obstacle Size `yaml:"obstacle"`
	Fuel     Size `yaml:"fuel"`
	PowerUp  Size `yaml:"power_up"`
	Bullet   Size `yaml:"bullet"`
}

// RoadSpawn defines spawn intervals.
// ObstacleInterval is divided by the difficulty spawn-rate multiplier.
type RoadSpawn struct {
	ObstacleInterval float64 `yaml:"obstacle_interval"`
	FuelInterval     float64 `yaml:"fuel_interval"`
	PowerUpInterval  float64 `yaml:"power_up_interval"`
}

// RoadCombat defines collision outcomes.
type RoadCombat struct {
	MaxHealth     float64 `yaml:"max_health"`
	CrashDamage   float64 `yaml:"crash_damage"`
	CrashSpeedUp  float64 `yaml:"crash_speed_up"`
	FuelHeal      float64 `yaml:"fuel_heal"`
	FuelScore     int     `yaml:"fuel_score"`
	KillScore     int     `yaml:"kill_score"`
	Invincibility float64 `yaml:"invincibility"`
	FireCooldown  float64 `yaml:"fire_cooldown"`
}

// RoadInput defines terminal input behaviour.
type RoadInput struct {
	// SteerHoldTicks keeps a steer key active for this many ticks after a
	// press, since terminals deliver key presses rather than key state.
	SteerHoldTicks int `yaml:"steer_hold_ticks"`
}

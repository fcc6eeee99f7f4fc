// Package config provides YAML-based game configuration loading for the
// platformer. Window title and resolution are compile-time constants in the
// game package and intentionally not configurable here.
package config

// GameConfig contains all tunable parameters for the platformer.
type GameConfig struct {
	Physics    Physics    `yaml:"physics"`
	Gameplay   Gameplay   `yaml:"gameplay"`
	Generation Generation `yaml:"generation"`
}

// Physics defines the movement parameters.
type Physics struct {
	PlayerSpeed float64 `yaml:"player_speed"` // Horizontal speed in units/sec
	AirControl  float64 `yaml:"air_control"`  // 1.0 = full control in air, 0.5 = half
	JumpSpeed   float64 `yaml:"jump_speed"`   // Vertical impulse on jump
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration in units/sec^2
}

// Gameplay defines run-level rules.
type Gameplay struct {
	Lives         int     `yaml:"lives"`          // Starting lives
	CollectRadius float64 `yaml:"collect_radius"` // Player-to-fruit pickup distance
}

// Generation defines the procedural platform placement parameters.
// The defaults reproduce the layouts the level generator was tuned for;
// changing them changes which candidate platforms get rejected.
type Generation struct {
	MinCount            int     `yaml:"min_count"`             // Fewest extra platforms per level
	MaxCount            int     `yaml:"max_count"`             // Most extra platforms per level
	MinWidth            float64 `yaml:"min_width"`             // Narrowest platform
	MaxWidth            float64 `yaml:"max_width"`             // Widest platform (exclusive)
	MinPlatformDistance float64 `yaml:"min_platform_distance"` // Minimum center-to-center distance
	MinVerticalGap      float64 `yaml:"min_vertical_gap"`      // Vertical clearance when horizontally close
	PlayerGapMargin     float64 `yaml:"player_gap_margin"`     // Extra horizontal clearance beyond player width
	AttemptsPerPlatform int     `yaml:"attempts_per_platform"` // Rejection-sampling budget multiplier
}

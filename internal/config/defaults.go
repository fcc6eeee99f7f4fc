package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default platformer configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: Physics{
			PlayerSpeed: 300.0,
			AirControl:  1.0,
			JumpSpeed:   700.0,
			Gravity:     2000.0,
		},
		Gameplay: Gameplay{
			Lives:         3,
			CollectRadius: 30.0,
		},
		Generation: Generation{
			MinCount:            6,
			MaxCount:            10,
			MinWidth:            120.0,
			MaxWidth:            220.0,
			MinPlatformDistance: 80.0,
			MinVerticalGap:      60.0,
			PlayerGapMargin:     30.0,
			AttemptsPerPlatform: 10,
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default pacing configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Jumper: JumperConfig{
			DelaysMS: []int{500, 1000, 1500},
			TurnMS:   []int{500, 1000, 1500},
		},
		Dropper: DropperConfig{
			WarmupMS: []int{500, 1000, 1500},
			DelaysMS: []int{500, 1000, 1500},
		},
	}
}

// InstantPlatformerConfig returns a configuration with every delay at zero.
// Used by tests and benchmarks that only care about the interleaving.
func InstantPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Jumper: JumperConfig{
			DelaysMS: []int{0},
			TurnMS:   []int{0},
		},
		Dropper: DropperConfig{
			WarmupMS: []int{0},
			DelaysMS: []int{0},
		},
	}
}

// Package config provides YAML-based pacing configuration and difficulty
// presets for the platformer simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PlatformerConfig contains all pacing configuration for a game session.
// Every delay list is sampled uniformly each time a delay is observed.
type PlatformerConfig struct {
	Jumper  JumperConfig  `yaml:"jumper"`
	Dropper DropperConfig `yaml:"dropper"`
}

// JumperConfig defines delays for the jumping character.
type JumperConfig struct {
	DelaysMS []int `yaml:"delays_ms"` // After every successful jump
	TurnMS   []int `yaml:"turn_ms"`   // Between two jump decisions
}

// DropperConfig defines delays for the tile dropper.
type DropperConfig struct {
	WarmupMS []int `yaml:"warmup_ms"` // Once, before the first drop
	DelaysMS []int `yaml:"delays_ms"` // After every non-fatal drop and between iterations
}

// Validate checks that every delay list is usable.
func (c PlatformerConfig) Validate() error {
	lists := []struct {
		name string
		ms   []int
	}{
		{"jumper.delays_ms", c.Jumper.DelaysMS},
		{"jumper.turn_ms", c.Jumper.TurnMS},
		{"dropper.warmup_ms", c.Dropper.WarmupMS},
		{"dropper.delays_ms", c.Dropper.DelaysMS},
	}

	var errs []error
	for _, l := range lists {
		if len(l.ms) == 0 {
			errs = append(errs, fmt.Errorf("config: %s must not be empty", l.name))
			continue
		}
		for _, v := range l.ms {
			if v < 0 {
				errs = append(errs, fmt.Errorf("config: %s contains negative delay %d", l.name, v))
				break
			}
		}
	}
	return errors.Join(errs...)
}

// Durations converts a list of milliseconds to durations.
func Durations(ms []int) []time.Duration {
	out := make([]time.Duration, len(ms))
	for i, v := range ms {
		out[i] = time.Duration(v) * time.Millisecond
	}
	return out
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// DropScaleForPreset returns the multiplier applied to dropper delays.
// Slower drops give the jumper more room to escape.
func DropScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.5
	default:
		return 1.0
	}
}

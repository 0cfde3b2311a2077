package config

import "math"

// ApplyPlatformerPreset scales the dropper delays for a difficulty preset.
// Jumper pacing is left untouched.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	scale := DropScaleForPreset(preset)
	if scale == 1.0 {
		return
	}
	cfg.Dropper.DelaysMS = scaleMS(cfg.Dropper.DelaysMS, scale)
	cfg.Dropper.WarmupMS = scaleMS(cfg.Dropper.WarmupMS, scale)
}

// scaleMS returns a scaled copy of ms, rounded to the nearest millisecond.
func scaleMS(ms []int, scale float64) []int {
	out := make([]int, len(ms))
	for i, v := range ms {
		out[i] = int(math.Round(float64(v) * scale))
	}
	return out
}

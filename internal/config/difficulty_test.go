package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, RespawnSlowdown: 1},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{"start", 0, 0.2},
		{"halfway", 500, 0.6},
		{"max", 1000, 1.0},
		{"beyond max", 5000, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Level(%d) = %v, want %v", tc.score, got, tc.want)
			}
		})
	}

	if got := d.Speed(400, 1000, 0); got != 600 {
		t.Errorf("Speed at max = %v, want 600", got)
	}
	if got := d.RespawnDelay(1.8, 1000, 0); math.Abs(got-2.8) > 1e-9 {
		t.Errorf("RespawnDelay at max = %v, want 2.8", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60},
	})

	if got := d.Level(99999, 30); got != 0.5 {
		t.Errorf("Level after 30s = %v, want 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(100, 100); got != 0.4 {
		t.Errorf("Level = %v, want initial 0.4", got)
	}

	d.SetEnabled(true)
	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

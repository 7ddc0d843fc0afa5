package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var runner RunnerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("runner"), &runner); err != nil {
		t.Fatalf("runner.yaml: %v", err)
	}
	want := DefaultRunnerConfig()
	if runner.Session != want.Session || runner.Hero != want.Hero || runner.Road != want.Road {
		t.Errorf("runner.yaml drifted from DefaultRunnerConfig:\n got %+v\nwant %+v", runner, want)
	}

	var patrol PatrolConfig
	if err := yaml.Unmarshal(GetDefaultYAML("patrol"), &patrol); err != nil {
		t.Fatalf("patrol.yaml: %v", err)
	}
	pw := DefaultPatrolConfig()
	if patrol.City != pw.City || patrol.Hero != pw.Hero || len(patrol.Issues) != len(pw.Issues) {
		t.Errorf("patrol.yaml drifted from DefaultPatrolConfig")
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("runner defaults: %v", err)
	}
	if err := DefaultPatrolConfig().Validate(); err != nil {
		t.Errorf("patrol defaults: %v", err)
	}
}

func TestRunnerValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero target", func(c *RunnerConfig) { c.Session.TargetRescues = 0 }},
		{"negative reward", func(c *RunnerConfig) { c.Session.RescueReward = -1 }},
		{"negative respawn delay", func(c *RunnerConfig) { c.Session.RespawnDelay = -0.5 }},
		{"zero speed", func(c *RunnerConfig) { c.Hero.AlternateSpeed = 0 }},
		{"zero obstacle radius", func(c *RunnerConfig) { c.Road.ObstacleRadius = 0 }},
		{"no citizens", func(c *RunnerConfig) { c.Road.CitizenCount = 0 }},
		{"zero lane limit", func(c *RunnerConfig) { c.Motion.LaneLimit = 0 }},
		{"inverted span", func(c *RunnerConfig) { c.Road.CitizenAhead = Span{Min: 10, Max: 5} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPatrolValidate(t *testing.T) {
	cfg := DefaultPatrolConfig()
	cfg.City.CitizenRadius = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("negative radius: got %v", err)
	}

	cfg = DefaultPatrolConfig()
	cfg.City.Width = 300
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("tiny city: got %v", err)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("session:\n  target_rescues: 3\nhero:\n  primary_speed: 500\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Session.TargetRescues != 3 {
		t.Errorf("TargetRescues = %d, want 3", cfg.Session.TargetRescues)
	}
	if cfg.Hero.PrimarySpeed != 500 {
		t.Errorf("PrimarySpeed = %v, want 500", cfg.Hero.PrimarySpeed)
	}
	// Keys missing from the file keep their defaults
	if cfg.Hero.AlternateSpeed != 620 {
		t.Errorf("AlternateSpeed = %v, want default 620", cfg.Hero.AlternateSpeed)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("session: [unclosed"), 0o644) //nolint:errcheck
	if _, err := LoadRunner(path); err == nil {
		t.Error("malformed YAML should fail")
	}

	path = filepath.Join(t.TempDir(), "invalid.yaml")
	os.WriteFile(path, []byte("session:\n  target_rescues: 0\n"), 0o644) //nolint:errcheck
	if _, err := LoadRunner(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero target should fail validation, got %v", err)
	}
}

func TestLoadPatrolEmptyIssuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patrol.yaml")
	os.WriteFile(path, []byte("issues: []\n"), 0o644) //nolint:errcheck

	cfg, err := LoadPatrol(path)
	if err != nil {
		t.Fatalf("LoadPatrol: %v", err)
	}
	if len(cfg.Issues) != len(DefaultIssues) {
		t.Errorf("Issues = %v, want the default pool", cfg.Issues)
	}
}

func TestApplyPresets(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}
	if cfg.Session.TargetRescues != 10 {
		t.Errorf("hard preset target = %d", cfg.Session.TargetRescues)
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, "")
	if cfg.Session != DefaultRunnerConfig().Session {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"nightmare", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

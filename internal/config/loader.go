package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadRunner loads lane runner configuration.
// Search order: customPath -> ~/.rescue/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg, err := load(customPath, "runner", defaultRunnerYAML, DefaultRunnerConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadPatrol loads city patrol configuration.
// Search order: customPath -> ~/.rescue/configs/patrol.yaml -> ./configs/patrol.yaml -> embedded default
func LoadPatrol(customPath string) (PatrolConfig, error) {
	cfg, err := load(customPath, "patrol", defaultPatrolYAML, DefaultPatrolConfig)
	if err != nil {
		return cfg, err
	}
	if len(cfg.Issues) == 0 {
		cfg.Issues = append([]string(nil), DefaultIssues...)
	}
	return cfg, cfg.Validate()
}

// load decodes YAML over the hard-coded defaults so a partial file only
// overrides the keys it names.
func load[T any](customPath, gameID string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	name := gameID + ".yaml"

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := fallback()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rescue", "configs", filename)
}

// Validate reports the first setting that would make the runner unplayable.
func (c RunnerConfig) Validate() error {
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	switch {
	case c.Hero.PrimarySpeed <= 0 || c.Hero.AlternateSpeed <= 0:
		return fmt.Errorf("runner: hero speeds must be positive: %w", ErrInvalid)
	case c.Motion.LaneLimit <= 0:
		return fmt.Errorf("runner: lane_limit must be positive: %w", ErrInvalid)
	case c.Road.ObstacleRadius <= 0 || c.Road.CitizenRadius <= 0:
		return fmt.Errorf("runner: radii must be positive: %w", ErrInvalid)
	case c.Road.CitizenCount < 1:
		return fmt.Errorf("runner: citizen_count must be at least 1: %w", ErrInvalid)
	case c.Road.ObstacleAhead.Max < c.Road.ObstacleAhead.Min ||
		c.Road.CitizenAhead.Max < c.Road.CitizenAhead.Min ||
		c.Road.RescuedAhead.Max < c.Road.RescuedAhead.Min:
		return fmt.Errorf("runner: span max below min: %w", ErrInvalid)
	}
	return nil
}

// Validate reports the first setting that would make the patrol unplayable.
func (c PatrolConfig) Validate() error {
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("patrol: %w", err)
	}
	switch {
	case c.Hero.WalkSpeed <= 0 || c.Hero.SprintSpeed <= 0:
		return fmt.Errorf("patrol: hero speeds must be positive: %w", ErrInvalid)
	case c.City.CitizenRadius <= 0:
		return fmt.Errorf("patrol: citizen_radius must be positive: %w", ErrInvalid)
	case c.City.CitizenCount < 1:
		return fmt.Errorf("patrol: citizen_count must be at least 1: %w", ErrInvalid)
	case c.City.Width <= 2*c.City.SpawnMargin || c.City.Height <= 2*c.City.SpawnMargin:
		return fmt.Errorf("patrol: city smaller than spawn margins: %w", ErrInvalid)
	}
	return nil
}

func (s SessionConfig) validate() error {
	switch {
	case s.TargetRescues < 1:
		return fmt.Errorf("target_rescues must be at least 1: %w", ErrInvalid)
	case s.RescueReward < 0:
		return fmt.Errorf("rescue_reward must not be negative: %w", ErrInvalid)
	case s.RespawnDelay < 0:
		return fmt.Errorf("respawn_delay must not be negative: %w", ErrInvalid)
	}
	return nil
}

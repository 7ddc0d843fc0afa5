package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/patrol.yaml
var defaultPatrolYAML []byte

// DefaultRunnerConfig returns the default lane runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Session: SessionConfig{
			TargetRescues: 8,
			RescueReward:  80,
			RespawnDelay:  1.8,
		},
		Reach: ReachConfig{
			Primary:   60,
			Alternate: 80,
		},
		Motion: MotionConfig{
			SmoothingRate: 9,
			LaneLimit:     520,
			MaxDelta:      0.033,
		},
		Hero: RunnerHero{
			PrimarySpeed:   460,
			AlternateSpeed: 620,
			StartY:         -320,
			LaneStep:       180,
		},
		Road: RunnerRoad{
			ObstacleCount:   14,
			ObstacleSpacing: 220,
			ObstacleStart:   80,
			ObstacleRadius:  70,
			CitizenCount:    8,
			CitizenSpacing:  380,
			CitizenStart:    200,
			CitizenRadius:   35,
			RecycleBehind:   440,
			ObstacleAhead:   Span{Min: 900, Max: 1600},
			CitizenAhead:    Span{Min: 900, Max: 2000},
			RescuedAhead:    Span{Min: 1200, Max: 2200},
		},
		Scoring: RunnerScoring{
			DistanceRate:    0.08,
			SupportInterval: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultIssues is the built-in pool of citizen issues for the patrol.
var DefaultIssues = []string{
	"Cat stuck on a roof",
	"Broken traffic light",
	"Lost child at the square",
	"Stalled car on the bridge",
	"Flooded underpass",
	"Fallen tree on the road",
}

// DefaultPatrolConfig returns the default city patrol configuration.
func DefaultPatrolConfig() PatrolConfig {
	return PatrolConfig{
		Session: SessionConfig{
			TargetRescues: 10,
			RescueReward:  10,
			RespawnDelay:  1.8,
		},
		Reach: ReachConfig{
			Primary:   76,
			Alternate: 76,
		},
		Motion: MotionConfig{
			SmoothingRate: 9,
			MaxDelta:      0.033,
		},
		City: PatrolCity{
			Width:         3200,
			Height:        2200,
			EdgeMargin:    30,
			SpawnMargin:   200,
			CitizenCount:  11,
			CitizenRadius: 14,
		},
		Hero: PatrolHero{
			WalkSpeed:   300,
			SprintSpeed: 420,
			HoldWindow:  0.15,
			ArriveDist:  6,
		},
		Messages: PatrolMessages{
			Short: 2.0,
			Long:  2.6,
		},
		Issues: append([]string(nil), DefaultIssues...),
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				RespawnSlowdown: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "patrol":
		return defaultPatrolYAML
	default:
		return nil
	}
}

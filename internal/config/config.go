// Package config provides YAML-based game configuration loading and
// difficulty management for the rescue games.
package config

// SessionConfig holds the win condition and rescue timing shared by all games.
type SessionConfig struct {
	TargetRescues int     `yaml:"target_rescues"`
	RescueReward  int     `yaml:"rescue_reward"`
	RespawnDelay  float64 `yaml:"respawn_delay"` // Seconds of running time
}

// ReachConfig is the extra interaction reach of each hero form,
// added to the citizen's own radius.
type ReachConfig struct {
	Primary   float64 `yaml:"primary"`
	Alternate float64 `yaml:"alternate"`
}

// MotionConfig defines frame integration parameters.
type MotionConfig struct {
	SmoothingRate float64 `yaml:"smoothing_rate"`
	LaneLimit     float64 `yaml:"lane_limit"`
	MaxDelta      float64 `yaml:"max_delta"`
}

// RunnerConfig contains all configuration for the lane runner.
type RunnerConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Reach      ReachConfig      `yaml:"reach"`
	Motion     MotionConfig     `yaml:"motion"`
	Hero       RunnerHero       `yaml:"hero"`
	Road       RunnerRoad       `yaml:"road"`
	Scoring    RunnerScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerHero defines hero parameters for the lane runner.
type RunnerHero struct {
	PrimarySpeed   float64 `yaml:"primary_speed"`   // Robot forward speed
	AlternateSpeed float64 `yaml:"alternate_speed"` // Vehicle forward speed
	StartY         float64 `yaml:"start_y"`
	LaneStep       float64 `yaml:"lane_step"` // Lateral shift per steer input
}

// RunnerRoad defines entity layout along the road.
type RunnerRoad struct {
	ObstacleCount   int     `yaml:"obstacle_count"`
	ObstacleSpacing float64 `yaml:"obstacle_spacing"`
	ObstacleStart   float64 `yaml:"obstacle_start"`
	ObstacleRadius  float64 `yaml:"obstacle_radius"`
	CitizenCount    int     `yaml:"citizen_count"`
	CitizenSpacing  float64 `yaml:"citizen_spacing"`
	CitizenStart    float64 `yaml:"citizen_start"`
	CitizenRadius   float64 `yaml:"citizen_radius"`
	RecycleBehind   float64 `yaml:"recycle_behind"` // Distance behind the hero before an entity is moved ahead
	ObstacleAhead   Span    `yaml:"obstacle_ahead"`
	CitizenAhead    Span    `yaml:"citizen_ahead"`
	RescuedAhead    Span    `yaml:"rescued_ahead"`
}

// RunnerScoring defines distance scoring and support calls.
type RunnerScoring struct {
	DistanceRate    float64 `yaml:"distance_rate"`    // Points per world unit travelled
	SupportInterval float64 `yaml:"support_interval"` // Minimum seconds between support calls, 0 disables
}

// Span is an inclusive [Min, Max] range of world units.
type Span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PatrolConfig contains all configuration for the city patrol.
type PatrolConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Reach      ReachConfig      `yaml:"reach"`
	Motion     MotionConfig     `yaml:"motion"`
	City       PatrolCity       `yaml:"city"`
	Hero       PatrolHero       `yaml:"hero"`
	Messages   PatrolMessages   `yaml:"messages"`
	Issues     []string         `yaml:"issues"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PatrolCity defines the bounded city area.
type PatrolCity struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	EdgeMargin    float64 `yaml:"edge_margin"`  // Hero is kept this far from the edges
	SpawnMargin   float64 `yaml:"spawn_margin"` // Citizens spawn this far from the edges
	CitizenCount  int     `yaml:"citizen_count"`
	CitizenRadius float64 `yaml:"citizen_radius"`
}

// PatrolHero defines hero movement for the city patrol.
type PatrolHero struct {
	WalkSpeed   float64 `yaml:"walk_speed"`
	SprintSpeed float64 `yaml:"sprint_speed"`
	HoldWindow  float64 `yaml:"hold_window"` // Seconds a direction key stays held without key-up events
	ArriveDist  float64 `yaml:"arrive_distance"`
}

// PatrolMessages defines how long status messages stay visible.
type PatrolMessages struct {
	Short float64 `yaml:"short"`
	Long  float64 `yaml:"long"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	RespawnSlowdown float64 `yaml:"respawn_slowdown"` // Seconds added to the respawn delay at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI or settings value to a preset.
// Unknown values return the empty preset, meaning "use the config file".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Session.TargetRescues = 6
		cfg.Road.ObstacleCount = 10
	case DifficultyHard:
		cfg.Session.TargetRescues = 10
		cfg.Road.ObstacleCount = 18
	}
}

// ApplyPatrolPreset modifies the config based on a difficulty preset.
func ApplyPatrolPreset(cfg *PatrolConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Reach.Primary += 30
	case DifficultyHard:
		cfg.Session.TargetRescues += 5
	}
}

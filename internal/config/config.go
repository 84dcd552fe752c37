// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

// InvadersConfig contains all configuration for the invaders game.
// Distances are world units, speeds world units per second.
type InvadersConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Formation  FormationConfig  `yaml:"formation"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the world size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"` // bottom edge of the ship
	Speed  float64 `yaml:"speed"`
	Name   string  `yaml:"name"`
}

// ProjectileConfig defines player shots.
type ProjectileConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	MaxInFlight int     `yaml:"max_in_flight"`
}

// FormationConfig defines the alien grid and its movement.
type FormationConfig struct {
	Columns         int     `yaml:"columns"`
	Rows            int     `yaml:"rows"`
	AlienWidth      float64 `yaml:"alien_width"`
	AlienHeight     float64 `yaml:"alien_height"`
	GapX            float64 `yaml:"gap_x"`
	GapY            float64 `yaml:"gap_y"`
	Top             float64 `yaml:"top"`
	Speed           float64 `yaml:"speed"`
	DescentInterval float64 `yaml:"descent_interval"` // seconds, 0 disables descent
	DescentStep     float64 `yaml:"descent_step"`
}

// GameplayConfig defines scoring and input feel.
type GameplayConfig struct {
	PointsPerAlien int `yaml:"points_per_alien"`
	MaxNameLength  int `yaml:"max_name_length"`
	MoveHoldTicks  int `yaml:"move_hold_ticks"` // ticks a single key press keeps the ship moving
	FireCooldown   int `yaml:"fire_cooldown"`   // ticks between shots
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
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to formation speed at max difficulty
	DescentReduction float64 `yaml:"descent_reduction"` // Fraction of the descent interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. The empty string
// means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return "", true
	default:
		return "", false
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

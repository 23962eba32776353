// Package config provides YAML-based tuning for the shooter: movement speeds,
// spawn parameters, scoring and the per-level difficulty tables.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for configurations that break the
// difficulty invariants (ascending thresholds, non-increasing tables).
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ShooterConfig contains all tuning for the shooter.
type ShooterConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Laser     LaserConfig     `yaml:"laser"`
	Meteor    MeteorConfig    `yaml:"meteor"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Levels    LevelsConfig    `yaml:"levels"`
	Stars     StarsConfig     `yaml:"stars"`
	Timing    TimingConfig    `yaml:"timing"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Cells per second
	Lives int     `yaml:"lives"`
}

// LaserConfig defines player projectiles.
type LaserConfig struct {
	Speed float64 `yaml:"speed"` // Cells per second, upward
}

// MeteorConfig defines falling meteors.
type MeteorConfig struct {
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Drift         float64 `yaml:"drift"`           // Max horizontal component of the direction
	MinSpin       float64 `yaml:"min_spin"`        // Degrees per second
	MaxSpin       float64 `yaml:"max_spin"`        // Degrees per second
	Lifetime      float64 `yaml:"lifetime"`        // Seconds before forced despawn
	SpawnMinAbove float64 `yaml:"spawn_min_above"` // Rows above the top edge
	SpawnMaxAbove float64 `yaml:"spawn_max_above"`
	DespawnMargin float64 `yaml:"despawn_margin"` // Rows past the view before culling
}

// ExplosionConfig defines the explosion animation.
type ExplosionConfig struct {
	FPS float64 `yaml:"fps"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	SurvivalPoints   int     `yaml:"survival_points"`   // Awarded per survival interval
	SurvivalInterval float64 `yaml:"survival_interval"` // Seconds
	KillPoints       int     `yaml:"kill_points"`
}

// LevelsConfig defines the difficulty step tables.
// Entry i of each table applies to level i+1; levels past the end reuse the last entry.
type LevelsConfig struct {
	Thresholds      []int   `yaml:"thresholds"`        // Ascending score thresholds, first must be 0
	SpawnIntervalMS []int   `yaml:"spawn_interval_ms"` // Non-increasing
	CooldownMS      []int   `yaml:"cooldown_ms"`       // Non-increasing
	SpeedStep       float64 `yaml:"speed_step"`        // Meteor speed added per level above 1
}

// StarsConfig defines the static background.
type StarsConfig struct {
	Count int `yaml:"count"`
}

// TimingConfig defines frame time handling.
type TimingConfig struct {
	MaxFrameTime float64 `yaml:"max_frame_time"` // Seconds; longer frames are clamped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Validate checks the invariants the game relies on.
func (c ShooterConfig) Validate() error {
	if c.Player.Lives < 1 {
		return fmt.Errorf("%w: player.lives must be at least 1", ErrInvalidConfig)
	}
	if c.Player.Speed <= 0 || c.Laser.Speed <= 0 {
		return fmt.Errorf("%w: player.speed and laser.speed must be positive", ErrInvalidConfig)
	}
	if c.Meteor.MinSpeed <= 0 || c.Meteor.MaxSpeed < c.Meteor.MinSpeed {
		return fmt.Errorf("%w: meteor speeds must satisfy 0 < min_speed <= max_speed", ErrInvalidConfig)
	}
	if c.Meteor.MaxSpin < c.Meteor.MinSpin {
		return fmt.Errorf("%w: meteor.max_spin below min_spin", ErrInvalidConfig)
	}
	if c.Scoring.SurvivalInterval <= 0 {
		return fmt.Errorf("%w: scoring.survival_interval must be positive", ErrInvalidConfig)
	}
	if c.Explosion.FPS <= 0 {
		return fmt.Errorf("%w: explosion.fps must be positive", ErrInvalidConfig)
	}
	return c.Levels.Validate()
}

// Validate checks the level tables.
func (l LevelsConfig) Validate() error {
	if len(l.Thresholds) == 0 || l.Thresholds[0] != 0 {
		return fmt.Errorf("%w: levels.thresholds must start with 0", ErrInvalidConfig)
	}
	for i := 1; i < len(l.Thresholds); i++ {
		if l.Thresholds[i] <= l.Thresholds[i-1] {
			return fmt.Errorf("%w: levels.thresholds must be strictly ascending (index %d)", ErrInvalidConfig, i)
		}
	}
	if err := validateTable("spawn_interval_ms", l.SpawnIntervalMS, 1); err != nil {
		return err
	}
	if err := validateTable("cooldown_ms", l.CooldownMS, 0); err != nil {
		return err
	}
	if l.SpeedStep < 0 {
		return fmt.Errorf("%w: levels.speed_step must not be negative", ErrInvalidConfig)
	}
	return nil
}

func validateTable(name string, table []int, floor int) error {
	if len(table) == 0 {
		return fmt.Errorf("%w: levels.%s must not be empty", ErrInvalidConfig, name)
	}
	for i, v := range table {
		if v < floor {
			return fmt.Errorf("%w: levels.%s[%d] = %d is below %d", ErrInvalidConfig, name, i, v, floor)
		}
		if i > 0 && v > table[i-1] {
			return fmt.Errorf("%w: levels.%s must be non-increasing (index %d)", ErrInvalidConfig, name, i)
		}
	}
	return nil
}

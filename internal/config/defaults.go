package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hardcoded configuration, identical to the
// embedded defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Speed: 30,
			Lives: 3,
		},
		Laser: LaserConfig{
			Speed: 30,
		},
		Meteor: MeteorConfig{
			MinSpeed:      9,
			MaxSpeed:      14,
			Drift:         0.5,
			MinSpin:       50,
			MaxSpin:       300,
			Lifetime:      12,
			SpawnMinAbove: 2,
			SpawnMaxAbove: 6,
			DespawnMargin: 3,
		},
		Explosion: ExplosionConfig{
			FPS: 30,
		},
		Scoring: ScoringConfig{
			SurvivalPoints:   10,
			SurvivalInterval: 1,
			KillPoints:       20,
		},
		Levels: LevelsConfig{
			Thresholds:      []int{0, 300, 600, 900, 1200, 1500, 1800, 2100},
			SpawnIntervalMS: []int{600, 500, 400, 320, 260, 210, 170, 140},
			CooldownMS:      []int{400, 380, 360, 340, 320, 300, 280, 260},
			SpeedStep:       0.1,
		},
		Stars: StarsConfig{
			Count: 20,
		},
		Timing: TimingConfig{
			MaxFrameTime: 0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}

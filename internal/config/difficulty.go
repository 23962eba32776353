package config

import "time"

// LevelFor returns the 1-based level for a score: one plus the number of
// thresholds after the first that the score has reached.
func (l LevelsConfig) LevelFor(score int) int {
	level := 1
	for _, t := range l.Thresholds[1:] {
		if score < t {
			break
		}
		level++
	}
	return level
}

// MaxLevel returns the highest reachable level.
func (l LevelsConfig) MaxLevel() int {
	return max(len(l.Thresholds), 1)
}

// SpawnInterval returns the meteor spawn interval for a level.
func (l LevelsConfig) SpawnInterval(level int) time.Duration {
	return time.Duration(stepValue(l.SpawnIntervalMS, level)) * time.Millisecond
}

// Cooldown returns the minimum time between two laser shots for a level.
func (l LevelsConfig) Cooldown(level int) time.Duration {
	return time.Duration(stepValue(l.CooldownMS, level)) * time.Millisecond
}

// SpeedMultiplier returns the meteor speed factor for a level.
func (l LevelsConfig) SpeedMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	return 1.0 + float64(level-1)*l.SpeedStep
}

// stepValue looks up a 1-based level in a table, clamping to its ends.
func stepValue(table []int, level int) int {
	if len(table) == 0 {
		return 0
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// Easy and hard scale the interval and cooldown tables, which keeps them
// non-increasing; fixed pins the game at level 1.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Levels.SpawnIntervalMS = scaleTable(cfg.Levels.SpawnIntervalMS, 1.3)
		cfg.Levels.CooldownMS = scaleTable(cfg.Levels.CooldownMS, 0.8)
		cfg.Meteor.MinSpeed *= 0.85
		cfg.Meteor.MaxSpeed *= 0.85
	case DifficultyHard:
		cfg.Levels.SpawnIntervalMS = scaleTable(cfg.Levels.SpawnIntervalMS, 0.7)
		cfg.Levels.CooldownMS = scaleTable(cfg.Levels.CooldownMS, 1.2)
		cfg.Meteor.MinSpeed *= 1.2
		cfg.Meteor.MaxSpeed *= 1.2
	case DifficultyFixed:
		cfg.Levels.Thresholds = []int{0}
	}
}

func scaleTable(table []int, k float64) []int {
	out := make([]int, len(table))
	for i, v := range table {
		out[i] = max(int(float64(v)*k), 1)
	}
	return out
}

// MaxFrame returns the longest tick the simulation accepts.
func (t TimingConfig) MaxFrame() time.Duration {
	return seconds(t.MaxFrameTime)
}

// Interval returns the survival award interval.
func (s ScoringConfig) Interval() time.Duration {
	return seconds(s.SurvivalInterval)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Spawner is a repeating meteor timer. The interval is looked up from the
// level on every update, so a level change takes effect on the running timer.
type Spawner struct {
	levels  config.LevelsConfig
	elapsed time.Duration
}

// NewSpawner creates a spawner driven by the level tables.
func NewSpawner(levels config.LevelsConfig) *Spawner {
	return &Spawner{levels: levels}
}

// Update advances the timer by dt. On expiry it reports true and restarts
// from zero, so at most one meteor is released per tick.
func (s *Spawner) Update(dt time.Duration, level int) bool {
	if dt > 0 {
		s.elapsed += dt
	}
	if s.elapsed < s.levels.SpawnInterval(level) {
		return false
	}
	s.elapsed = 0
	return true
}

// Elapsed returns the time since the last spawn.
func (s *Spawner) Elapsed() time.Duration {
	return s.elapsed
}

// Reset restarts the timer.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// newMeteor rolls a meteor just above the top edge of a view width cells wide.
func newMeteor(rng *rand.Rand, cfg config.ShooterConfig, level int, width float64, s *assets.Sprite) Entity {
	w, h := float64(s.Width()), float64(s.Height())

	left := uniform(rng, 0, max(width-w, 0))
	above := uniform(rng, cfg.Meteor.SpawnMinAbove, cfg.Meteor.SpawnMaxAbove)
	speed := uniform(rng, cfg.Meteor.MinSpeed, cfg.Meteor.MaxSpeed) * cfg.Levels.SpeedMultiplier(level)
	drift := uniform(rng, -cfg.Meteor.Drift, cfg.Meteor.Drift)
	spin := uniform(rng, cfg.Meteor.MinSpin, cfg.Meteor.MaxSpin)
	if rng.Intn(2) == 0 {
		spin = -spin
	}

	return Entity{
		Kind: KindMeteor,
		Pos:  core.V(left+w/2, -above-h/2),
		Vel:  core.V(drift, 1).Scale(speed),
		Spin: spin,
	}
}

// uniform returns a value in [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

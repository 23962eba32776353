package shooter

import (
	"time"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Weapon gates laser fire behind a level-dependent cooldown.
// It holds a single last-fire timestamp; missed shots are not queued.
type Weapon struct {
	levels     config.LevelsConfig
	laserSpeed float64
	lastFire   time.Duration
	fired      bool
}

// NewWeapon creates a weapon firing lasers at the given upward speed.
func NewWeapon(levels config.LevelsConfig, laserSpeed float64) *Weapon {
	return &Weapon{levels: levels, laserSpeed: laserSpeed}
}

// TryFire fires a laser from origin when the cooldown for level has passed
// since the last shot. The first shot is always allowed.
func (w *Weapon) TryFire(now time.Duration, level int, origin core.Vec2) (Entity, bool) {
	if w.fired && now-w.lastFire < w.levels.Cooldown(level) {
		return Entity{}, false
	}
	w.fired = true
	w.lastFire = now
	return Entity{
		Kind: KindLaser,
		Pos:  origin,
		Vel:  core.V(0, -w.laserSpeed),
	}, true
}

// Ready reports whether a shot at now would fire.
func (w *Weapon) Ready(now time.Duration, level int) bool {
	return !w.fired || now-w.lastFire >= w.levels.Cooldown(level)
}

// Reset forgets the last shot.
func (w *Weapon) Reset() {
	w.fired = false
	w.lastFire = 0
}

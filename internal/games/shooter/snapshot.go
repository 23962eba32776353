package shooter

import "math"

// Snapshot is a flat copy of the session used for determinism checks.
// Floats are stored as their IEEE bits so equal snapshots hash equally.
type Snapshot struct {
	Tick   uint64
	State  int
	Paused bool
	Score  int
	Lives  int
	Level  int
	Clock  int64 // Nanoseconds
	Spawn  int64 // Nanoseconds since the last spawn

	PlayerX, PlayerY uint64
	Invulnerable     uint64

	// Each live entity is 7 words: Kind, Pos.X, Pos.Y, Vel.X, Vel.Y, Rotation, Frame.
	EntityCount int
	EntityData  []uint64
}

// Snapshot returns the current session as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		State:        int(g.state),
		Paused:       g.paused,
		Score:        g.progress.Score(),
		Lives:        g.progress.Lives(),
		Level:        g.progress.Level(),
		Clock:        int64(g.clock),
		Spawn:        int64(g.spawner.Elapsed()),
		PlayerX:      math.Float64bits(g.player.Pos.X),
		PlayerY:      math.Float64bits(g.player.Pos.Y),
		Invulnerable: math.Float64bits(g.player.Invulnerable),
	}

	for _, a := range []*Arena{g.meteors, g.lasers, g.explosions, g.stars} {
		a.Each(func(_ int, e *Entity) {
			snap.EntityCount++
			snap.EntityData = append(snap.EntityData,
				uint64(e.Kind),
				math.Float64bits(e.Pos.X),
				math.Float64bits(e.Pos.Y),
				math.Float64bits(e.Vel.X),
				math.Float64bits(e.Vel.Y),
				math.Float64bits(e.Rotation),
				math.Float64bits(e.Frame),
			)
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for quick comparison.
func (snap Snapshot) Hash() uint64 {
	var h uint64 = 17
	h = h*31 + snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Clock) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawn) //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + snap.Invulnerable
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	for _, v := range snap.EntityData {
		h = h*31 + v
	}
	return h
}

package shooter

import (
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Integrate returns pos advanced by vel over dt seconds.
func Integrate(pos, vel core.Vec2, dt float64) core.Vec2 {
	return pos.Add(vel.Scale(dt))
}

// AdvanceRotation returns rot advanced by spin over dt, wrapped to [0, 360).
func AdvanceRotation(rot, spin, dt float64) float64 {
	r := math.Mod(rot+spin*dt, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r -= 360
	}
	return r
}

// MovePlayer moves a ship of the given size along dir. dir is normalized
// first so diagonals are not faster, and the result keeps the ship's box
// inside bounds.
func MovePlayer(pos, dir core.Vec2, speed, dt float64, size core.Vec2, bounds core.RectF) core.Vec2 {
	next := Integrate(pos, dir.Normalize().Scale(speed), dt)
	return clampCenter(next, size, bounds)
}

func clampCenter(pos, size core.Vec2, bounds core.RectF) core.Vec2 {
	return core.Vec2{
		X: clampAxis(pos.X, size.X, bounds.X, bounds.W),
		Y: clampAxis(pos.Y, size.Y, bounds.Y, bounds.H),
	}
}

// clampAxis keeps a span of length size centered at c inside [lo, lo+span].
// A span too short for the object pins it to the middle.
func clampAxis(c, size, lo, span float64) float64 {
	if size >= span {
		return lo + span/2
	}
	return core.ClampF(c, lo+size/2, lo+span-size/2)
}

// OffScreen reports whether box no longer touches view grown by margin on
// every side. It only flags; the caller decides what to remove.
func OffScreen(box, view core.RectF, margin float64) bool {
	return !box.Intersects(view.Inflate(margin, margin))
}

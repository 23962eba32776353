package shooter

import (
	"math"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Kind tags the variant an Entity represents.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindMeteor
	KindLaser
	KindExplosion
	KindStar
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMeteor:
		return "meteor"
	case KindLaser:
		return "laser"
	case KindExplosion:
		return "explosion"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is the one record type for every object in the playfield.
// Fields a kind does not use stay zero.
type Entity struct {
	Kind Kind
	Pos  core.Vec2 // Center, in cells
	Vel  core.Vec2 // Cells per second

	Rotation float64 // Degrees in [0, 360)
	Spin     float64 // Degrees per second, signed
	Age      float64 // Seconds since spawn
	Frame    float64 // Fractional animation frame

	alive bool
}

// Player is the ship. Lives are tracked by Progression.
type Player struct {
	Entity
	Speed        float64
	Invulnerable float64 // Seconds of damage immunity left
}

// sprite returns the image an entity is currently drawn and collided with.
func sprite(lib *assets.Library, e *Entity) *assets.Sprite {
	switch e.Kind {
	case KindPlayer:
		return lib.Player
	case KindMeteor:
		return lib.Meteor[rotationFrame(e.Rotation, len(lib.Meteor))]
	case KindLaser:
		return lib.Laser
	case KindExplosion:
		i := core.Clamp(int(e.Frame), 0, len(lib.Explosion)-1)
		return lib.Explosion[i]
	default:
		return lib.Star
	}
}

// rotationFrame maps an angle onto one of n evenly spaced rotation frames.
func rotationFrame(rotation float64, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(rotation / 360 * float64(n))
	return ((i % n) + n) % n
}

// box returns the bounding box of a sprite centered at pos.
func box(pos core.Vec2, s *assets.Sprite) core.RectF {
	w, h := float64(s.Width()), float64(s.Height())
	return core.RectF{X: pos.X - w/2, Y: pos.Y - h/2, W: w, H: h}
}

// origin returns the cell of the sprite's top-left corner.
func origin(pos core.Vec2, s *assets.Sprite) (int, int) {
	b := box(pos, s)
	return cell(b.X), cell(b.Y)
}

func cell(v float64) int {
	return int(math.Floor(v + 0.5))
}

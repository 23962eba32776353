package core

// EventKind identifies something noteworthy that happened during a tick.
// The platform reacts to events (sound, logging); the game never does I/O itself.
type EventKind int

const (
	EventLaserFired EventKind = iota
	EventMeteorDestroyed
	EventPlayerDamaged
	EventExplosion
	EventGameOver
	EventLevelUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaserFired:
		return "LaserFired"
	case EventMeteorDestroyed:
		return "MeteorDestroyed"
	case EventPlayerDamaged:
		return "PlayerDamaged"
	case EventExplosion:
		return "Explosion"
	case EventGameOver:
		return "GameOver"
	case EventLevelUp:
		return "LevelUp"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence reported in a StepResult.
type Event struct {
	Kind EventKind
	Pos  Vec2 // Where it happened, when meaningful
}

// CountEvents returns how many events of the given kind are in events.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

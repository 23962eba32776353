package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestArenaSpawnKillReuse(t *testing.T) {
	a := NewArena(KindMeteor)
	i0 := a.Spawn(Entity{Pos: core.V(1, 1)})
	i1 := a.Spawn(Entity{Pos: core.V(2, 2)})
	i2 := a.Spawn(Entity{Pos: core.V(3, 3)})

	if a.Live() != 3 || a.Len() != 3 {
		t.Fatalf("Live() = %d, Len() = %d, expected 3 and 3", a.Live(), a.Len())
	}
	if a.At(i1).Kind != KindMeteor {
		t.Error("Spawn should stamp the arena kind")
	}

	if !a.Kill(i1) {
		t.Fatal("Kill of a live slot returned false")
	}
	if a.Kill(i1) {
		t.Error("second Kill of the same slot should return false")
	}
	if a.At(i1) != nil {
		t.Error("dead slot should read as nil")
	}
	if a.At(i0) == nil || a.At(i2) == nil {
		t.Error("killing one slot must not disturb the others")
	}

	if reused := a.Spawn(Entity{Pos: core.V(9, 9)}); reused != i1 {
		t.Errorf("Spawn reused slot %d, expected dead slot %d", reused, i1)
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d after reuse, expected 3", a.Len())
	}
}

func TestArenaKillDuringEach(t *testing.T) {
	a := NewArena(KindLaser)
	for i := range 5 {
		a.Spawn(Entity{Pos: core.V(float64(i), 0)})
	}
	seen := 0
	a.Each(func(i int, e *Entity) {
		seen++
		if i%2 == 0 {
			a.Kill(i)
		}
	})
	if seen != 5 {
		t.Errorf("Each visited %d entities, expected 5", seen)
	}
	if a.Live() != 2 {
		t.Errorf("Live() = %d, expected 2", a.Live())
	}
}

func TestArenaCompact(t *testing.T) {
	a := NewArena(KindExplosion)
	for range 4 {
		a.Spawn(Entity{})
	}
	a.Kill(1)
	a.Kill(2)
	a.Kill(3)
	a.Compact()

	if a.Len() != 1 {
		t.Fatalf("Len() = %d after Compact, expected 1", a.Len())
	}
	// The only free slot left inside the arena is none, so a spawn appends.
	if i := a.Spawn(Entity{}); i != 1 {
		t.Errorf("Spawn after Compact = %d, expected 1", i)
	}
	if a.Live() != 2 {
		t.Errorf("Live() = %d, expected 2", a.Live())
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena(KindStar)
	a.Spawn(Entity{})
	a.Spawn(Entity{})
	a.Kill(0)
	a.Reset()
	if a.Len() != 0 || a.Live() != 0 {
		t.Errorf("after Reset Len() = %d, Live() = %d", a.Len(), a.Live())
	}
	if i := a.Spawn(Entity{}); i != 0 {
		t.Errorf("Spawn after Reset = %d, expected 0", i)
	}
}

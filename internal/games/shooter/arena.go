package shooter

// Arena owns every entity of one kind. Slots are stable: removing an entity
// only marks its slot dead, so indices held during a pass stay valid. Dead
// slots are reused by later spawns.
type Arena struct {
	kind  Kind
	items []Entity
	free  []int
	live  int
}

// NewArena creates an empty arena for one kind.
func NewArena(kind Kind) *Arena {
	return &Arena{kind: kind}
}

// Spawn stores e and returns its slot.
func (a *Arena) Spawn(e Entity) int {
	e.Kind = a.kind
	e.alive = true
	a.live++
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.items[i] = e
		return i
	}
	a.items = append(a.items, e)
	return len(a.items) - 1
}

// Kill marks slot i dead. It returns false if the slot was already dead.
func (a *Arena) Kill(i int) bool {
	if i < 0 || i >= len(a.items) || !a.items[i].alive {
		return false
	}
	a.items[i].alive = false
	a.free = append(a.free, i)
	a.live--
	return true
}

// At returns the entity in slot i, or nil when the slot is dead.
func (a *Arena) At(i int) *Entity {
	if i < 0 || i >= len(a.items) || !a.items[i].alive {
		return nil
	}
	return &a.items[i]
}

// Len returns the number of slots, live or dead.
func (a *Arena) Len() int {
	return len(a.items)
}

// Live returns the number of live entities.
func (a *Arena) Live() int {
	return a.live
}

// Each calls fn for every live entity in slot order.
// fn may kill entities but must not spawn into the same arena.
func (a *Arena) Each(fn func(i int, e *Entity)) {
	for i := range a.items {
		if a.items[i].alive {
			fn(i, &a.items[i])
		}
	}
}

// Compact drops trailing dead slots.
func (a *Arena) Compact() {
	n := len(a.items)
	for n > 0 && !a.items[n-1].alive {
		n--
	}
	if n == len(a.items) {
		return
	}
	a.items = a.items[:n]
	kept := a.free[:0]
	for _, i := range a.free {
		if i < n {
			kept = append(kept, i)
		}
	}
	a.free = kept
}

// Reset removes every entity.
func (a *Arena) Reset() {
	a.items = a.items[:0]
	a.free = a.free[:0]
	a.live = 0
}

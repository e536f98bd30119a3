package linearprobing

import (
	"fmt"

	"github.com/gostonefire/symtab/internal/utils"
)

// slot - One position in the table
type slot[K, V any] struct {
	state uint8
	key   K
	value V
}

// probeIteration - Implements Linear Probing, the slot after probe wrapping around at the end of the table
func (L *Table[K, V]) probeIteration(probe int) int {
	probe++
	if probe >= L.capacity {
		probe -= L.capacity
	}

	return probe
}

// probingForGet - Is the Linear Probing algorithm for finding the slot of a live entry.
// Tombstones and slots holding other keys are passed, an empty slot ends the search.
func (L *Table[K, V]) probingForGet(key K) (slotNo int, found bool) {
	probe := utils.BucketNo(L.hasher, key, L.capacity)

	// At most one full pass, a table without empty slots must not loop forever
	for n := 0; n < L.capacity; n++ {
		s := &L.slots[probe]
		switch s.state {
		case SlotEmpty:
			return
		case SlotOccupied:
			if L.cmp(key, s.key) == 0 {
				slotNo = probe
				found = true
				return
			}
		}

		probe = L.probeIteration(probe)
	}

	return
}

// probingForSet - Is the Linear Probing algorithm for finding a slot to put key in.
// If the key exists its slot is returned with found set to true. Otherwise the first tombstone passed on the way
// is returned, or if there was none, the empty slot that ended the search. slotNo is -1 if the table is full.
func (L *Table[K, V]) probingForSet(key K) (slotNo int, found bool) {
	slotNo = -1
	deletedSlot := -1
	probe := utils.BucketNo(L.hasher, key, L.capacity)

	for n := 0; n < L.capacity; n++ {
		s := &L.slots[probe]
		switch s.state {
		case SlotEmpty:
			if deletedSlot >= 0 {
				slotNo = deletedSlot
			} else {
				slotNo = probe
			}
			return

		case SlotOccupied:
			if L.cmp(key, s.key) == 0 {
				slotNo = probe
				found = true
				return
			}

		case SlotDeleted:
			if deletedSlot < 0 {
				deletedSlot = probe
			}
		}

		probe = L.probeIteration(probe)
	}

	// A full pass without meeting the key, a tombstone is as good as an empty slot
	slotNo = deletedSlot
	return
}

// add - Puts a new entry in the table, growing it first if needed.
// If the key already exists and overwrite is true the value is replaced.
func (L *Table[K, V]) add(key K, value V, overwrite bool) (old V, replaced bool) {
	if L.LoadFactor() >= GrowLoadFactor {
		L.resize(2 * L.capacity)
	}

	// Below GrowLoadFactor at least one slot is empty or a tombstone
	slotNo, found := L.probingForSet(key)
	if slotNo < 0 {
		panic(fmt.Sprintf("no free slot for a new entry at size %d and capacity %d", L.size, L.capacity))
	}

	s := &L.slots[slotNo]
	if found {
		if overwrite {
			old = s.value
			s.value = value
			replaced = true
		}
		return
	}

	if s.state == SlotDeleted {
		L.nDeleted--
	}
	s.state = SlotOccupied
	s.key = key
	s.value = value
	L.size++

	return
}

// resize - Rebuilds the table with newCapacity slots.
// Every live entry is put into a fresh table, which rehashes it for the new capacity without any tombstones,
// then the fresh table's slots, size and capacity are adopted.
func (L *Table[K, V]) resize(newCapacity int) {
	if newCapacity < MinCapacity {
		newCapacity = MinCapacity
	}

	fresh := &Table[K, V]{
		slots:    make([]slot[K, V], newCapacity),
		capacity: newCapacity,
		hasher:   L.hasher,
		cmp:      L.cmp,
	}

	for i := range L.slots {
		if L.slots[i].state == SlotOccupied {
			fresh.Put(L.slots[i].key, L.slots[i].value)
		}
	}

	L.slots, fresh.slots = fresh.slots, nil
	L.capacity = fresh.capacity
	L.size = fresh.size
	L.nDeleted = 0
}

// isReleased - True for a nil table or one that has been destroyed
func (L *Table[K, V]) isReleased() bool {
	return L == nil || L.slots == nil
}

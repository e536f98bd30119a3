package linearprobing

import (
	"github.com/gostonefire/symtab/crt"
	"github.com/gostonefire/symtab/interfaces"
	"github.com/gostonefire/symtab/internal/utils"
	"github.com/pkg/errors"
)

// Table - Represents a hash table using the Linear Probing Collision Resolution Technique.
// It uses one flat array of slots. In case of a collision it probes slot after slot, wrapping around, until the key
// or an empty slot is found. Deleted entries leave tombstones behind so that probe sequences stay intact.
// The table doubles its capacity when half full and halves it when the load factor drops to 1/8.
type Table[K, V any] struct {
	slots    []slot[K, V]
	capacity int
	size     int
	nDeleted int
	hasher   interfaces.Hasher[K]
	cmp      interfaces.Comparator[K]
	release  interfaces.ReleaseFunc[K, V]
}

// New - Returns a pointer to a new, empty, linear probing hash table.
//   - capacity is the initial number of slots, it has to be higher than 0 (zero)
//   - hasher maps a key to its home slot given the current capacity
//   - cmp decides whether two keys are the same (0)
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is of type crt.InvalidArgument if any argument is unusable
func New[K, V any](capacity int, hasher interfaces.Hasher[K], cmp interfaces.Comparator[K]) (table *Table[K, V], err error) {
	err = utils.CheckTableArguments(capacity, hasher, cmp)
	if err != nil {
		return
	}

	table = &Table[K, V]{
		slots:    make([]slot[K, V], capacity),
		capacity: capacity,
		hasher:   hasher,
		cmp:      cmp,
	}

	return
}

// SetReleaseFunc - Sets the function used to release payload data on removals requested with destroyData
func (L *Table[K, V]) SetReleaseFunc(release interfaces.ReleaseFunc[K, V]) {
	if L == nil {
		return
	}
	L.release = release
}

// Put - Updates the value of an existing key or adds a new entry.
// If the load factor is at or above GrowLoadFactor the table is first doubled.
//
// It returns:
//   - old is the previous value if the key already existed
//   - replaced is true if an existing value was overwritten
func (L *Table[K, V]) Put(key K, value V) (old V, replaced bool) {
	if L.isReleased() {
		return
	}

	old, replaced = L.add(key, value, true)

	return
}

// Insert - Adds a new entry unless the key already exists, in which case the value is left untouched
func (L *Table[K, V]) Insert(key K, value V) {
	if L.isReleased() {
		return
	}

	_, _ = L.add(key, value, false)
}

// Get - Returns the value stored for key, found is false if there is no such key
func (L *Table[K, V]) Get(key K) (value V, found bool) {
	if L.isReleased() {
		return
	}

	slotNo, found := L.probingForGet(key)
	if found {
		value = L.slots[slotNo].value
	}

	return
}

// Contains - Returns true if key is stored in the table
func (L *Table[K, V]) Contains(key K) bool {
	_, found := L.Get(key)
	return found
}

// Delete - Turns the slot of key into a tombstone, if the key exists.
// If the load factor then is at or below ShrinkLoadFactor the table is halved, but never below MinCapacity.
//   - destroyData set to true passes the removed key and value to the release function
func (L *Table[K, V]) Delete(key K, destroyData bool) {
	if L.isReleased() {
		return
	}

	slotNo, found := L.probingForGet(key)
	if !found {
		return
	}

	s := L.slots[slotNo]
	L.slots[slotNo] = slot[K, V]{state: SlotDeleted}
	L.size--
	L.nDeleted++

	if destroyData && L.release != nil {
		L.release(s.key, s.value)
	}

	if L.LoadFactor() <= ShrinkLoadFactor && L.capacity > MinCapacity {
		L.resize(L.capacity / 2)
	}
}

// Resize - Rebuilds the table with newCapacity slots, rehashing every live entry and dropping all tombstones.
// The resulting capacity can end up bigger than requested if newCapacity is too small to hold the entries
// below GrowLoadFactor.
//
// It returns:
//   - err which is of type crt.InvalidArgument if newCapacity is not higher than 0 (zero)
func (L *Table[K, V]) Resize(newCapacity int) (err error) {
	if newCapacity <= 0 {
		err = errors.Wrapf(crt.InvalidArgument{}, "new capacity must be a positive value higher than 0 (zero), got %d", newCapacity)
		return
	}
	if L.isReleased() {
		return
	}

	L.resize(newCapacity)

	return
}

// Clear - Empties every slot, tombstones included. The capacity is kept.
//   - destroyData set to true passes every removed key and value to the release function
func (L *Table[K, V]) Clear(destroyData bool) {
	if L.isReleased() {
		return
	}

	for i := range L.slots {
		if destroyData && L.release != nil && L.slots[i].state == SlotOccupied {
			L.release(L.slots[i].key, L.slots[i].value)
		}
		L.slots[i] = slot[K, V]{}
	}
	L.size = 0
	L.nDeleted = 0
}

// Destroy - Clears the table and drops its slots. Any later operation behaves as on an absent table.
func (L *Table[K, V]) Destroy(destroyData bool) {
	if L.isReleased() {
		return
	}

	L.Clear(destroyData)
	L.slots = nil
	L.capacity = 0
}

// Size - Returns the number of live entries
func (L *Table[K, V]) Size() int {
	if L == nil {
		return 0
	}
	return L.size
}

// Capacity - Returns the number of slots
func (L *Table[K, V]) Capacity() int {
	if L == nil {
		return 0
	}
	return L.capacity
}

// LoadFactor - Returns size / capacity
func (L *Table[K, V]) LoadFactor() float64 {
	return utils.LoadFactor(L.Size(), L.Capacity())
}

// IsEmpty - Returns true if the table holds no live entries
func (L *Table[K, V]) IsEmpty() bool {
	return L.Size() == 0
}

// Utilization - Returns the number of empty, occupied and deleted (tombstone) slots
func (L *Table[K, V]) Utilization() (nEmpty, nOccupied, nDeleted int) {
	if L == nil {
		return
	}

	nOccupied = L.size
	nDeleted = L.nDeleted
	nEmpty = L.capacity - nOccupied - nDeleted

	return
}

// Keys - Returns a snapshot of all keys in slot order
func (L *Table[K, V]) Keys() (keys []K) {
	if L.isReleased() {
		return
	}

	keys = make([]K, 0, L.size)
	L.Traverse(func(key K, _ V) { keys = append(keys, key) })

	return
}

// Traverse - Calls visit for every live entry in slot order
func (L *Table[K, V]) Traverse(visit interfaces.Visitor[K, V]) {
	if L.isReleased() || visit == nil {
		return
	}

	for i := range L.slots {
		if L.slots[i].state == SlotOccupied {
			visit(L.slots[i].key, L.slots[i].value)
		}
	}
}

// Hasher - Returns the hasher the table was created with
func (L *Table[K, V]) Hasher() interfaces.Hasher[K] {
	if L == nil {
		return nil
	}
	return L.hasher
}

// Comparator - Returns the comparator the table was created with
func (L *Table[K, V]) Comparator() interfaces.Comparator[K] {
	if L == nil {
		return nil
	}
	return L.cmp
}

// Merge - Inserts every live entry of src into dest. Keys already present in dest keep dest's value.
func Merge[K, V any](dest, src *Table[K, V]) {
	if dest.isReleased() || src.isReleased() {
		return
	}

	// dest may be src, take the slots as they are now
	slots := src.slots
	for i := range slots {
		if slots[i].state == SlotOccupied {
			dest.Insert(slots[i].key, slots[i].value)
		}
	}
}

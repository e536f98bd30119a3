package orderedchaining

import (
	"github.com/gostonefire/symtab/interfaces"
	"github.com/gostonefire/symtab/internal/chain"
	"github.com/gostonefire/symtab/internal/utils"
)

// Table - Represents a hash table using Separate Chaining where every bucket's chain is kept in ascending key order.
// Lookups for absent keys stop as soon as a bigger key is met, at the cost of insertions having to find their place.
// The capacity never changes.
type Table[K, V any] struct {
	buckets  []*chain.Node[K, V]
	capacity int
	size     int
	hasher   interfaces.Hasher[K]
	cmp      interfaces.Comparator[K]
	release  interfaces.ReleaseFunc[K, V]
}

// New - Returns a pointer to a new, empty, ordered chaining hash table.
//   - capacity is the number of buckets, it has to be higher than 0 (zero)
//   - hasher maps a key to a bucket number given the capacity
//   - cmp orders keys within a bucket
func New[K, V any](capacity int, hasher interfaces.Hasher[K], cmp interfaces.Comparator[K]) (table *Table[K, V], err error) {
	err = utils.CheckTableArguments(capacity, hasher, cmp)
	if err != nil {
		return
	}

	table = &Table[K, V]{
		buckets:  make([]*chain.Node[K, V], capacity),
		capacity: capacity,
		hasher:   hasher,
		cmp:      cmp,
	}

	return
}

// SetReleaseFunc - Sets the function used to release payload data on removals requested with destroyData
func (O *Table[K, V]) SetReleaseFunc(release interfaces.ReleaseFunc[K, V]) {
	if O == nil {
		return
	}
	O.release = release
}

// Put - Updates the value of an existing key or links a new entry in front of the first bigger key.
//
// It returns:
//   - old is the previous value if the key already existed
//   - replaced is true if an existing value was overwritten
func (O *Table[K, V]) Put(key K, value V) (old V, replaced bool) {
	if O.isReleased() {
		return
	}

	bucketNo := utils.BucketNo(O.hasher, key, O.capacity)
	previous, node := O.position(bucketNo, key)
	if node != nil && O.cmp(key, node.Key) == 0 {
		old = node.Value
		node.Value = value
		replaced = true
		return
	}

	O.link(bucketNo, previous, &chain.Node[K, V]{Key: key, Value: value, Next: node})

	return
}

// Insert - Adds a new entry at its ordered position unless the key already exists
func (O *Table[K, V]) Insert(key K, value V) {
	if O.isReleased() {
		return
	}

	bucketNo := utils.BucketNo(O.hasher, key, O.capacity)
	previous, node := O.position(bucketNo, key)
	if node != nil && O.cmp(key, node.Key) == 0 {
		return
	}

	O.link(bucketNo, previous, &chain.Node[K, V]{Key: key, Value: value, Next: node})
}

// Get - Returns the value stored for key, found is false if there is no such key
func (O *Table[K, V]) Get(key K) (value V, found bool) {
	if O.isReleased() {
		return
	}

	_, node := O.position(utils.BucketNo(O.hasher, key, O.capacity), key)
	if node != nil && O.cmp(key, node.Key) == 0 {
		value = node.Value
		found = true
	}

	return
}

// Contains - Returns true if key is stored in the table
func (O *Table[K, V]) Contains(key K) bool {
	_, found := O.Get(key)
	return found
}

// Delete - Unlinks the entry with key, if it exists.
//   - destroyData set to true passes the removed key and value to the release function
func (O *Table[K, V]) Delete(key K, destroyData bool) {
	if O.isReleased() {
		return
	}

	bucketNo := utils.BucketNo(O.hasher, key, O.capacity)
	previous, node := O.position(bucketNo, key)
	if node == nil || O.cmp(key, node.Key) != 0 {
		return
	}

	if previous == nil {
		O.buckets[bucketNo] = node.Next
	} else {
		previous.Next = node.Next
	}
	node.Next = nil
	O.size--

	if destroyData && O.release != nil {
		O.release(node.Key, node.Value)
	}
}

// Clear - Removes every entry, the capacity is kept
func (O *Table[K, V]) Clear(destroyData bool) {
	if O.isReleased() {
		return
	}

	var release func(K, V)
	if destroyData {
		release = O.release
	}

	for i := range O.buckets {
		chain.Release(O.buckets[i], release)
		O.buckets[i] = nil
	}
	O.size = 0
}

// Destroy - Clears the table and drops its buckets. Any later operation behaves as on an absent table.
func (O *Table[K, V]) Destroy(destroyData bool) {
	if O.isReleased() {
		return
	}

	O.Clear(destroyData)
	O.buckets = nil
	O.capacity = 0
}

// Size - Returns the number of entries
func (O *Table[K, V]) Size() int {
	if O == nil {
		return 0
	}
	return O.size
}

// Capacity - Returns the number of buckets
func (O *Table[K, V]) Capacity() int {
	if O == nil {
		return 0
	}
	return O.capacity
}

// LoadFactor - Returns size / capacity
func (O *Table[K, V]) LoadFactor() float64 {
	return utils.LoadFactor(O.Size(), O.Capacity())
}

// IsEmpty - Returns true if the table holds no entries
func (O *Table[K, V]) IsEmpty() bool {
	return O.Size() == 0
}

// Keys - Returns a snapshot of all keys, bucket by bucket and ascending within each bucket
func (O *Table[K, V]) Keys() (keys []K) {
	if O.isReleased() {
		return
	}

	keys = make([]K, 0, O.size)
	O.Traverse(func(key K, _ V) { keys = append(keys, key) })

	return
}

// Traverse - Calls visit for every entry, bucket by bucket and ascending within each bucket
func (O *Table[K, V]) Traverse(visit interfaces.Visitor[K, V]) {
	if O.isReleased() || visit == nil {
		return
	}

	for _, head := range O.buckets {
		iter := chain.NewRecords(head)
		for iter.HasNext() {
			node := iter.Next()
			visit(node.Key, node.Value)
		}
	}
}

// BucketSizes - Returns the length of every bucket's chain
func (O *Table[K, V]) BucketSizes() (sizes []int) {
	if O.isReleased() {
		return
	}

	sizes = make([]int, O.capacity)
	for i, head := range O.buckets {
		sizes[i] = chain.Len(head)
	}

	return
}

// Hasher - Returns the hasher the table was created with
func (O *Table[K, V]) Hasher() interfaces.Hasher[K] {
	if O == nil {
		return nil
	}
	return O.hasher
}

// Comparator - Returns the comparator the table was created with
func (O *Table[K, V]) Comparator() interfaces.Comparator[K] {
	if O == nil {
		return nil
	}
	return O.cmp
}

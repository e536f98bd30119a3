package separatechaining

import (
	"github.com/gostonefire/symtab/interfaces"
	"github.com/gostonefire/symtab/internal/chain"
	"github.com/gostonefire/symtab/internal/utils"
)

// Table - Represents a hash table using the Separate Chaining Collision Resolution Technique.
// It uses a fixed array of buckets where each bucket is the head of a singly linked chain of entries.
// New entries are prepended to their chain and the capacity never changes.
type Table[K, V any] struct {
	buckets  []*chain.Node[K, V]
	capacity int
	size     int
	hasher   interfaces.Hasher[K]
	cmp      interfaces.Comparator[K]
	release  interfaces.ReleaseFunc[K, V]
}

// New - Returns a pointer to a new, empty, separate chaining hash table.
//   - capacity is the number of buckets, it has to be higher than 0 (zero)
//   - hasher maps a key to a bucket number given the capacity
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
		buckets:  make([]*chain.Node[K, V], capacity),
		capacity: capacity,
		hasher:   hasher,
		cmp:      cmp,
	}

	return
}

// SetReleaseFunc - Sets the function used to release payload data on removals requested with destroyData
func (S *Table[K, V]) SetReleaseFunc(release interfaces.ReleaseFunc[K, V]) {
	if S == nil {
		return
	}
	S.release = release
}

// Put - Updates the value of an existing key or adds a new entry at the head of the key's chain.
//
// It returns:
//   - old is the previous value if the key already existed
//   - replaced is true if an existing value was overwritten
func (S *Table[K, V]) Put(key K, value V) (old V, replaced bool) {
	if S.isReleased() {
		return
	}

	bucketNo := utils.BucketNo(S.hasher, key, S.capacity)
	if node := S.find(bucketNo, key); node != nil {
		old = node.Value
		node.Value = value
		replaced = true
		return
	}

	S.buckets[bucketNo] = &chain.Node[K, V]{Key: key, Value: value, Next: S.buckets[bucketNo]}
	S.size++

	return
}

// Insert - Adds a new entry unless the key already exists, in which case the table is left untouched
func (S *Table[K, V]) Insert(key K, value V) {
	if S.isReleased() {
		return
	}

	bucketNo := utils.BucketNo(S.hasher, key, S.capacity)
	if S.find(bucketNo, key) != nil {
		return
	}

	S.buckets[bucketNo] = &chain.Node[K, V]{Key: key, Value: value, Next: S.buckets[bucketNo]}
	S.size++
}

// Get - Returns the value stored for key, found is false if there is no such key
func (S *Table[K, V]) Get(key K) (value V, found bool) {
	if S.isReleased() {
		return
	}

	if node := S.find(utils.BucketNo(S.hasher, key, S.capacity), key); node != nil {
		value = node.Value
		found = true
	}

	return
}

// Contains - Returns true if key is stored in the table
func (S *Table[K, V]) Contains(key K) bool {
	_, found := S.Get(key)
	return found
}

// Delete - Unlinks the entry with key from its chain, if it exists.
//   - destroyData set to true passes the removed key and value to the release function
func (S *Table[K, V]) Delete(key K, destroyData bool) {
	if S.isReleased() {
		return
	}

	bucketNo := utils.BucketNo(S.hasher, key, S.capacity)

	var previous *chain.Node[K, V]
	node := S.buckets[bucketNo]
	for node != nil && S.cmp(key, node.Key) != 0 {
		previous = node
		node = node.Next
	}
	if node == nil {
		return
	}

	if previous == nil {
		S.buckets[bucketNo] = node.Next
	} else {
		previous.Next = node.Next
	}
	node.Next = nil
	S.size--

	if destroyData && S.release != nil {
		S.release(node.Key, node.Value)
	}
}

// Clear - Removes every entry, the capacity is kept
//   - destroyData set to true passes every removed key and value to the release function
func (S *Table[K, V]) Clear(destroyData bool) {
	if S.isReleased() {
		return
	}

	var release func(K, V)
	if destroyData {
		release = S.release
	}

	for i := range S.buckets {
		chain.Release(S.buckets[i], release)
		S.buckets[i] = nil
	}
	S.size = 0
}

// Destroy - Clears the table and drops its buckets. Any later operation behaves as on an absent table.
func (S *Table[K, V]) Destroy(destroyData bool) {
	if S.isReleased() {
		return
	}

	S.Clear(destroyData)
	S.buckets = nil
	S.capacity = 0
}

// Size - Returns the number of entries
func (S *Table[K, V]) Size() int {
	if S == nil {
		return 0
	}
	return S.size
}

// Capacity - Returns the number of buckets
func (S *Table[K, V]) Capacity() int {
	if S == nil {
		return 0
	}
	return S.capacity
}

// LoadFactor - Returns size / capacity
func (S *Table[K, V]) LoadFactor() float64 {
	return utils.LoadFactor(S.Size(), S.Capacity())
}

// IsEmpty - Returns true if the table holds no entries
func (S *Table[K, V]) IsEmpty() bool {
	return S.Size() == 0
}

// Keys - Returns a snapshot of all keys, bucket by bucket and in chain order within each bucket
func (S *Table[K, V]) Keys() (keys []K) {
	if S.isReleased() {
		return
	}

	keys = make([]K, 0, S.size)
	S.Traverse(func(key K, _ V) { keys = append(keys, key) })

	return
}

// Traverse - Calls visit for every entry, bucket by bucket and in chain order within each bucket
func (S *Table[K, V]) Traverse(visit interfaces.Visitor[K, V]) {
	if S.isReleased() || visit == nil {
		return
	}

	for _, head := range S.buckets {
		iter := chain.NewRecords(head)
		for iter.HasNext() {
			node := iter.Next()
			visit(node.Key, node.Value)
		}
	}
}

// BucketSizes - Returns the length of every bucket's chain
func (S *Table[K, V]) BucketSizes() (sizes []int) {
	if S.isReleased() {
		return
	}

	sizes = make([]int, S.capacity)
	for i, head := range S.buckets {
		sizes[i] = chain.Len(head)
	}

	return
}

// Hasher - Returns the hasher the table was created with
func (S *Table[K, V]) Hasher() interfaces.Hasher[K] {
	if S == nil {
		return nil
	}
	return S.hasher
}

// Comparator - Returns the comparator the table was created with
func (S *Table[K, V]) Comparator() interfaces.Comparator[K] {
	if S == nil {
		return nil
	}
	return S.cmp
}

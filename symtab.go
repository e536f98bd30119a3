package symtab

import (
	"github.com/gostonefire/symtab/crt"
	"github.com/gostonefire/symtab/interfaces"
	"github.com/gostonefire/symtab/linearprobing"
	"github.com/gostonefire/symtab/orderedchaining"
	"github.com/gostonefire/symtab/separatechaining"
	"github.com/pkg/errors"
)

// HashTable - Interface shared by every collision resolution technique implementation
type HashTable[K, V any] interface {
	SetReleaseFunc(release interfaces.ReleaseFunc[K, V])
	Put(key K, value V) (old V, replaced bool)
	Insert(key K, value V)
	Get(key K) (value V, found bool)
	Contains(key K) bool
	Delete(key K, destroyData bool)
	Clear(destroyData bool)
	Destroy(destroyData bool)
	Size() int
	Capacity() int
	LoadFactor() float64
	IsEmpty() bool
	Keys() []K
	Traverse(visit interfaces.Visitor[K, V])
	Hasher() interfaces.Hasher[K]
	Comparator() interfaces.Comparator[K]
}

// HashTableInfo - Information structure containing some information about the hash table created
//   - Technique is the collision resolution technique, one of the constants in package crt
//   - TechniqueName is the readable name of Technique
//   - Capacity is the number of buckets or slots at creation time
//   - Resizable is true if the table changes capacity on its own as entries come and go
type HashTableInfo struct {
	Technique     int
	TechniqueName string
	Capacity      int
	Resizable     bool
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Capacity is the number of buckets or slots
//   - LoadFactor is Records / Capacity
//   - Tombstones is the number of deleted slots still taking part in probing, always 0 (zero) for chaining tables
//   - BucketDistribution is the number of entries whose key hashes to each bucket or home slot
type HashTableStat struct {
	Records            int
	Capacity           int
	LoadFactor         float64
	Tombstones         int
	BucketDistribution []int
}

// NewHashTable - Returns a new, empty, hash table using the requested collision resolution technique.
//   - technique is one of crt.SeparateChaining, crt.OrderedChaining or crt.LinearProbing
//   - capacity is the initial number of buckets or slots, it has to be higher than 0 (zero)
//   - hasher maps a key to a bucket number in the range [0, capacity)
//   - cmp returns 0 (zero) for equal keys, the ordered chaining technique also uses its sign
//
// It returns:
//   - hashTable is the created table
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the table created
//   - err is of type crt.UnknownTechnique or crt.InvalidArgument if the table could not be created
func NewHashTable[K, V any](
	technique int,
	capacity int,
	hasher interfaces.Hasher[K],
	cmp interfaces.Comparator[K],
) (
	hashTable HashTable[K, V],
	hashTableInfo HashTableInfo,
	err error,
) {
	switch technique {
	case crt.SeparateChaining:
		var table *separatechaining.Table[K, V]
		table, err = separatechaining.New[K, V](capacity, hasher, cmp)
		if err != nil {
			return
		}
		hashTable = table

	case crt.OrderedChaining:
		var table *orderedchaining.Table[K, V]
		table, err = orderedchaining.New[K, V](capacity, hasher, cmp)
		if err != nil {
			return
		}
		hashTable = table

	case crt.LinearProbing:
		var table *linearprobing.Table[K, V]
		table, err = linearprobing.New[K, V](capacity, hasher, cmp)
		if err != nil {
			return
		}
		hashTable = table

	default:
		err = errors.Wrapf(crt.UnknownTechnique{}, "technique %d", technique)
		return
	}

	hashTableInfo = HashTableInfo{
		Technique:     technique,
		TechniqueName: crt.Name(technique),
		Capacity:      capacity,
		Resizable:     technique == crt.LinearProbing,
	}

	return
}

// techniqueOf - Returns the collision resolution technique behind a hash table, 0 (zero) if not one of ours
func techniqueOf[K, V any](hashTable HashTable[K, V]) int {
	switch hashTable.(type) {
	case *separatechaining.Table[K, V]:
		return crt.SeparateChaining
	case *orderedchaining.Table[K, V]:
		return crt.OrderedChaining
	case *linearprobing.Table[K, V]:
		return crt.LinearProbing
	}

	return 0
}

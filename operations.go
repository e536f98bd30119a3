package symtab

import (
	"github.com/gostonefire/symtab/crt"
	"github.com/gostonefire/symtab/interfaces"
	"github.com/gostonefire/symtab/internal/utils"
	"github.com/pkg/errors"
)

// utilizer - Implemented by tables that keep tombstones around
type utilizer interface {
	Utilization() (nEmpty, nOccupied, nDeleted int)
}

// Stat - Walks through every entry of the table and produces a HashTableStat struct with information.
// The bucket distribution is computed from each key's home bucket, so for linear probing it shows how the hasher
// spreads keys rather than where displaced entries ended up.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set HashTableStat.BucketDistribution to nil.
//
// It returns:
//   - hashTableStat is a pointer to the statistics
//   - err is of type crt.InvalidArgument if hashTable is nil
func Stat[K, V any](hashTable HashTable[K, V], includeDistribution bool) (hashTableStat *HashTableStat, err error) {
	if hashTable == nil {
		err = errors.Wrap(crt.InvalidArgument{}, "hash table can not be nil")
		return
	}

	var hts HashTableStat
	hts.Capacity = hashTable.Capacity()
	hts.LoadFactor = hashTable.LoadFactor()

	if includeDistribution {
		hts.BucketDistribution = make([]int, hts.Capacity)
	}

	hasher := hashTable.Hasher()
	hashTable.Traverse(func(key K, _ V) {
		hts.Records++
		if includeDistribution {
			hts.BucketDistribution[utils.BucketNo(hasher, key, hts.Capacity)]++
		}
	})

	if u, ok := hashTable.(utilizer); ok {
		_, _, hts.Tombstones = u.Utilization()
	}

	hashTableStat = &hts
	return
}

// Merge - Inserts every entry of src into dest. Keys already present in dest keep dest's value.
// The tables may use different techniques, but must agree on what makes two keys equal.
// The entries of src are collected before dest is touched, so dest and src may be the same table.
func Merge[K, V any](dest, src HashTable[K, V]) {
	if dest == nil || src == nil {
		return
	}

	keys := make([]K, 0, src.Size())
	values := make([]V, 0, src.Size())
	src.Traverse(func(key K, value V) {
		keys = append(keys, key)
		values = append(values, value)
	})

	for i := range keys {
		dest.Insert(keys[i], values[i])
	}
}

// RehashConf - Is a struct used in the call to Rehash holding configuration for the new table.
//   - Technique is the collision resolution technique to use, 0 (zero) keeps the technique of the source table
//   - Capacity is the initial capacity of the new table, 0 (zero) keeps the current capacity of the source table
//   - Hasher is the hasher to use, nil keeps the hasher of the source table
type RehashConf[K any] struct {
	Technique int
	Capacity  int
	Hasher    interfaces.Hasher[K]
}

// Rehash - Is used when an existing table needs to reflect new conditions as compared to when it was first created.
// For instance if the first estimate of capacity was way off and chains got long, or a better hasher has been found
// for the particular set of keys, or another collision resolution technique fits the workload better.
//
// A new table is created and every entry of src is inserted into it. The source table is left untouched, it is up to
// the caller to destroy it once the new table has taken over.
//   - src is the table to copy entries from
//   - rehashConf is an instance of the RehashConf struct
//
// It returns:
//   - hashTable is the new table
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the new table
//   - err is of type crt.InvalidArgument or crt.UnknownTechnique if the new table could not be created
func Rehash[K, V any](src HashTable[K, V], rehashConf RehashConf[K]) (hashTable HashTable[K, V], hashTableInfo HashTableInfo, err error) {
	if src == nil || src.Capacity() == 0 {
		err = errors.Wrap(crt.InvalidArgument{}, "source hash table is absent or destroyed")
		return
	}

	technique := rehashConf.Technique
	if technique == 0 {
		technique = techniqueOf(src)
	}
	capacity := rehashConf.Capacity
	if capacity == 0 {
		capacity = src.Capacity()
	}
	hasher := rehashConf.Hasher
	if hasher == nil {
		hasher = src.Hasher()
	}

	hashTable, hashTableInfo, err = NewHashTable[K, V](technique, capacity, hasher, src.Comparator())
	if err != nil {
		return
	}

	Merge(hashTable, src)

	return
}

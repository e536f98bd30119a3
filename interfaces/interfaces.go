package interfaces

import "golang.org/x/exp/constraints"

// Comparator - Three-way comparison of two keys. It returns a negative number if a sorts before b, zero if
// they are the same logical key and a positive number if a sorts after b.
// It must define a strict total order over every key ever stored in one container.
type Comparator[K any] func(a, b K) int

// Hasher - Given key and the current capacity of a hash table it returns an index between 0 and capacity - 1.
// The result has to be deterministic for a fixed key and capacity, but will normally change with the capacity,
// which is why tables rehash every entry when they are resized.
type Hasher[K any] func(key K, capacity int) int

// Visitor - Called once per entry during a traversal. It must not mutate the container it is visiting.
type Visitor[K, V any] func(key K, value V)

// ReleaseFunc - Releases caller owned payload data when an entry is removed with destroyData set
type ReleaseFunc[K, V any] func(key K, value V)

// OrderedComparator - Returns a Comparator for any type supporting the < and > operators
func OrderedComparator[K constraints.Ordered]() Comparator[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

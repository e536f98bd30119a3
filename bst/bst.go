package bst

import (
	"github.com/gostonefire/symtab/crt"
	"github.com/gostonefire/symtab/interfaces"
	"github.com/pkg/errors"
)

// node - One entry of the tree, owning its two subtrees
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Tree - Represents an ordered map implemented as a plain, unbalanced, binary search tree.
// Every key in the left subtree of a node sorts before the node's key and every key in the right subtree sorts after it.
// The height depends on insertion order and degrades to the number of entries for sorted input.
type Tree[K, V any] struct {
	root    *node[K, V]
	cmp     interfaces.Comparator[K]
	release interfaces.ReleaseFunc[K, V]
}

// New - Returns a pointer to a new, empty, tree ordered by cmp.
//
// It returns:
//   - tree which is a pointer to the created instance
//   - err which is of type crt.InvalidArgument if cmp is nil
func New[K, V any](cmp interfaces.Comparator[K]) (tree *Tree[K, V], err error) {
	if cmp == nil {
		err = errors.Wrap(crt.InvalidArgument{}, "comparator can not be nil")
		return
	}

	tree = &Tree[K, V]{cmp: cmp}

	return
}

// SetReleaseFunc - Sets the function used to release payload data on removals requested with destroyData
func (T *Tree[K, V]) SetReleaseFunc(release interfaces.ReleaseFunc[K, V]) {
	if T == nil {
		return
	}
	T.release = release
}

// Comparator - Returns the comparator the tree was created with
func (T *Tree[K, V]) Comparator() interfaces.Comparator[K] {
	if T == nil {
		return nil
	}
	return T.cmp
}

// Put - Updates the value of an existing key in place or adds a new leaf.
//
// It returns:
//   - old is the previous value if the key already existed
//   - replaced is true if an existing value was overwritten
func (T *Tree[K, V]) Put(key K, value V) (old V, replaced bool) {
	if T.isReleased() {
		return
	}

	parent, n := T.search(key)
	if n != nil {
		old = n.value
		n.value = value
		replaced = true
		return
	}

	T.attach(parent, &node[K, V]{key: key, value: value})

	return
}

// Insert - Adds a new leaf unless the key already exists, in which case the tree is left untouched
func (T *Tree[K, V]) Insert(key K, value V) {
	if T.isReleased() {
		return
	}

	parent, n := T.search(key)
	if n != nil {
		return
	}

	T.attach(parent, &node[K, V]{key: key, value: value})
}

// Get - Returns the value stored for key, found is false if there is no such key
func (T *Tree[K, V]) Get(key K) (value V, found bool) {
	if T.isReleased() {
		return
	}

	if _, n := T.search(key); n != nil {
		value = n.value
		found = true
	}

	return
}

// Contains - Returns true if key is stored in the tree
func (T *Tree[K, V]) Contains(key K) bool {
	_, found := T.Get(key)
	return found
}

// Delete - Removes key from the tree, if it exists.
// A node with at most one child is spliced out. A node with two children takes over the key and value of its
// in-order predecessor, which is then removed from the left subtree (Hibbard deletion).
//   - destroyData set to true passes the removed key and value to the release function
func (T *Tree[K, V]) Delete(key K, destroyData bool) {
	if T.isReleased() {
		return
	}

	T.root = T.delete(T.root, key, destroyData)
}

// Clear - Removes every entry
//   - destroyData set to true passes every removed key and value to the release function
func (T *Tree[K, V]) Clear(destroyData bool) {
	if T.isReleased() {
		return
	}

	var release func(K, V)
	if destroyData {
		release = T.release
	}

	T.unlinkAll(T.root, release)
	T.root = nil
}

// Destroy - Clears the tree and detaches its comparator. Any later operation behaves as on an absent tree.
func (T *Tree[K, V]) Destroy(destroyData bool) {
	if T.isReleased() {
		return
	}

	T.Clear(destroyData)
	T.cmp = nil
}

// Size - Returns the number of entries, counted by walking the tree
func (T *Tree[K, V]) Size() int {
	if T.isReleased() {
		return 0
	}

	return T.subtreeSize(T.root)
}

// Height - Returns the number of edges on the longest path from the root to a leaf.
// Both an empty tree and a single node have height 0 (zero).
func (T *Tree[K, V]) Height() int {
	if T.isReleased() {
		return 0
	}

	return height(T.root)
}

// IsEmpty - Returns true if the tree holds no entries
func (T *Tree[K, V]) IsEmpty() bool {
	return T.isReleased() || T.root == nil
}

// TraverseInOrder - Calls visit for every entry in ascending key order
func (T *Tree[K, V]) TraverseInOrder(visit interfaces.Visitor[K, V]) {
	if T.isReleased() || visit == nil {
		return
	}

	walkInOrder(T.root, func(n *node[K, V]) bool {
		visit(n.key, n.value)
		return true
	})
}

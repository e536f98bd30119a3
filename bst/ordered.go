package bst

import (
	"github.com/golang-collections/collections/stack"
)

// Min - Returns the smallest key, found is false for an empty tree
func (T *Tree[K, V]) Min() (key K, found bool) {
	if T.IsEmpty() {
		return
	}

	return minNode(T.root).key, true
}

// Max - Returns the largest key, found is false for an empty tree
func (T *Tree[K, V]) Max() (key K, found bool) {
	if T.IsEmpty() {
		return
	}

	return maxNode(T.root).key, true
}

// DeleteMin - Removes the entry with the smallest key, if any.
// The leftmost node is replaced by its right subtree.
func (T *Tree[K, V]) DeleteMin(destroyData bool) {
	if T.IsEmpty() {
		return
	}

	var parent *node[K, V]
	n := T.root
	for n.left != nil {
		parent = n
		n = n.left
	}

	if parent == nil {
		T.root = n.right
	} else {
		parent.left = n.right
	}
	n.right = nil

	T.releaseEntry(n, destroyData)
}

// DeleteMax - Removes the entry with the largest key, if any.
// The rightmost node is replaced by its left subtree.
func (T *Tree[K, V]) DeleteMax(destroyData bool) {
	if T.IsEmpty() {
		return
	}

	var parent *node[K, V]
	n := T.root
	for n.right != nil {
		parent = n
		n = n.right
	}

	if parent == nil {
		T.root = n.left
	} else {
		parent.right = n.left
	}
	n.left = nil

	T.releaseEntry(n, destroyData)
}

// Floor - Returns the largest key less than or equal to key, found is false if there is none
func (T *Tree[K, V]) Floor(key K) (floor K, found bool) {
	if T.isReleased() {
		return
	}

	n := T.root
	for n != nil {
		c := T.cmp(key, n.key)
		if c == 0 {
			return n.key, true
		}
		if c < 0 {
			n = n.left
		} else {
			floor, found = n.key, true
			n = n.right
		}
	}

	return
}

// Ceiling - Returns the smallest key greater than or equal to key, found is false if there is none
func (T *Tree[K, V]) Ceiling(key K) (ceiling K, found bool) {
	if T.isReleased() {
		return
	}

	n := T.root
	for n != nil {
		c := T.cmp(key, n.key)
		if c == 0 {
			return n.key, true
		}
		if c > 0 {
			n = n.right
		} else {
			ceiling, found = n.key, true
			n = n.left
		}
	}

	return
}

// Rank - Returns the number of keys strictly less than key. The key itself does not have to be in the tree.
func (T *Tree[K, V]) Rank(key K) (rank int) {
	if T.isReleased() {
		return
	}

	n := T.root
	for n != nil {
		c := T.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			rank += 1 + T.subtreeSize(n.left)
			n = n.right
		default:
			rank += T.subtreeSize(n.left)
			return
		}
	}

	return
}

// Predecessor - Returns the largest key strictly less than key, which does not have to be in the tree itself.
// If key is found this is the max of its left subtree, otherwise the last node where the search went right.
// found is false if no key is smaller.
func (T *Tree[K, V]) Predecessor(key K) (predecessor K, found bool) {
	if T.isReleased() {
		return
	}

	var candidate *node[K, V]
	n := T.root
	for n != nil {
		c := T.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			candidate = n
			n = n.right
		default:
			if n.left != nil {
				return maxNode(n.left).key, true
			}
			if candidate != nil {
				return candidate.key, true
			}
			return
		}
	}

	if candidate != nil {
		return candidate.key, true
	}

	return
}

// Successor - Returns the smallest key strictly greater than key, which does not have to be in the tree itself.
// found is false if no key is bigger.
func (T *Tree[K, V]) Successor(key K) (successor K, found bool) {
	if T.isReleased() {
		return
	}

	var candidate *node[K, V]
	n := T.root
	for n != nil {
		c := T.cmp(key, n.key)
		switch {
		case c > 0:
			n = n.right
		case c < 0:
			candidate = n
			n = n.left
		default:
			if n.right != nil {
				return minNode(n.right).key, true
			}
			if candidate != nil {
				return candidate.key, true
			}
			return
		}
	}

	if candidate != nil {
		return candidate.key, true
	}

	return
}

// Keys - Returns all keys in ascending order
func (T *Tree[K, V]) Keys() (keys []K) {
	if T.isReleased() {
		return
	}

	keys = make([]K, 0)
	walkInOrder(T.root, func(n *node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})

	return
}

// KeysRange - Returns the keys k with low <= k <= high in ascending order.
// Subtrees entirely below low are never entered and the walk stops at the first key above high.
func (T *Tree[K, V]) KeysRange(low, high K) (keys []K) {
	if T.isReleased() {
		return
	}

	keys = make([]K, 0)
	if T.cmp(low, high) > 0 {
		return
	}

	pending := stack.New()
	current := T.root
	for current != nil || pending.Len() > 0 {
		for current != nil {
			if T.cmp(current.key, low) < 0 {
				current = current.right
				continue
			}
			pending.Push(current)
			current = current.left
		}
		if pending.Len() == 0 {
			return
		}

		n := pending.Pop().(*node[K, V])
		if T.cmp(n.key, high) > 0 {
			return
		}
		keys = append(keys, n.key)
		current = n.right
	}

	return
}

// KeysLE - Returns the keys less than or equal to key in ascending order
func (T *Tree[K, V]) KeysLE(key K) (keys []K) {
	if T.isReleased() {
		return
	}

	keys = make([]K, 0)
	walkInOrder(T.root, func(n *node[K, V]) bool {
		if T.cmp(n.key, key) > 0 {
			return false
		}
		keys = append(keys, n.key)
		return true
	})

	return
}

// SubtreeSize - Returns the number of entries in the subtree rooted at key, 0 (zero) if key is not in the tree
func (T *Tree[K, V]) SubtreeSize(key K) int {
	if T.isReleased() {
		return 0
	}

	_, n := T.search(key)

	return T.subtreeSize(n)
}

// IsBST - Checks that every key lies strictly between min and max and that the ordering holds at every node.
// An absent or destroyed tree counts as empty and passes.
func (T *Tree[K, V]) IsBST(min, max K) bool {
	if T.isReleased() {
		return true
	}

	return T.isBST(T.root, &min, &max)
}

// Valid - Checks the ordering of the whole tree without outer bounds
func (T *Tree[K, V]) Valid() bool {
	if T.isReleased() {
		return true
	}

	return T.isBST(T.root, nil, nil)
}

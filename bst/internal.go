package bst

import (
	"github.com/golang-collections/collections/stack"
)

// isReleased - True for a nil tree or one that has been destroyed
func (T *Tree[K, V]) isReleased() bool {
	return T == nil || T.cmp == nil
}

// search - Walks down from the root looking for key.
// It returns the node holding key (nil if absent) and the last node visited before it, which is where a new
// node for key would be attached.
func (T *Tree[K, V]) search(key K) (parent, n *node[K, V]) {
	n = T.root
	for n != nil {
		c := T.cmp(key, n.key)
		if c == 0 {
			return
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	return
}

// attach - Hangs a new leaf under parent on the side given by the comparator, or makes it root if parent is nil
func (T *Tree[K, V]) attach(parent, leaf *node[K, V]) {
	if parent == nil {
		T.root = leaf
		return
	}

	if T.cmp(leaf.key, parent.key) < 0 {
		parent.left = leaf
	} else {
		parent.right = leaf
	}
}

// delete - Removes key from the subtree rooted at n and returns the new root of that subtree
func (T *Tree[K, V]) delete(n *node[K, V], key K, destroyData bool) *node[K, V] {
	if n == nil {
		return nil
	}

	c := T.cmp(key, n.key)
	switch {
	case c < 0:
		n.left = T.delete(n.left, key, destroyData)
	case c > 0:
		n.right = T.delete(n.right, key, destroyData)
	case n.left != nil && n.right != nil:
		// The predecessor's payload moves up, only the payload of n goes away
		T.releaseEntry(n, destroyData)
		predecessor := maxNode(n.left)
		n.key = predecessor.key
		n.value = predecessor.value
		n.left = T.delete(n.left, predecessor.key, false)
	default:
		T.releaseEntry(n, destroyData)
		child := n.left
		if child == nil {
			child = n.right
		}
		n.left, n.right = nil, nil
		return child
	}

	return n
}

// releaseEntry - Passes the payload of n to the release function if asked to and one is set
func (T *Tree[K, V]) releaseEntry(n *node[K, V], destroyData bool) {
	if destroyData && T.release != nil {
		T.release(n.key, n.value)
	}
}

// unlinkAll - Takes a subtree apart using an explicit stack, so degenerate trees can not exhaust the call stack
func (T *Tree[K, V]) unlinkAll(root *node[K, V], release func(K, V)) {
	if root == nil {
		return
	}

	work := stack.New()
	work.Push(root)
	for work.Len() > 0 {
		n := work.Pop().(*node[K, V])
		if n.left != nil {
			work.Push(n.left)
		}
		if n.right != nil {
			work.Push(n.right)
		}
		if release != nil {
			release(n.key, n.value)
		}
		n.left, n.right = nil, nil
	}
}

// walkInOrder - Visits the nodes of a subtree in ascending key order until visit returns false
func walkInOrder[K, V any](root *node[K, V], visit func(n *node[K, V]) bool) {
	work := stack.New()
	current := root
	for current != nil || work.Len() > 0 {
		for current != nil {
			work.Push(current)
			current = current.left
		}

		n := work.Pop().(*node[K, V])
		if !visit(n) {
			return
		}
		current = n.right
	}
}

// subtreeSize - Counts the nodes of a subtree
func (T *Tree[K, V]) subtreeSize(root *node[K, V]) (size int) {
	walkInOrder(root, func(*node[K, V]) bool {
		size++
		return true
	})

	return
}

// height - Returns the height of a subtree, 0 (zero) for an empty subtree or a leaf
func height[K, V any](n *node[K, V]) int {
	if n == nil || (n.left == nil && n.right == nil) {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minNode - Returns the leftmost node of a non empty subtree
func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode - Returns the rightmost node of a non empty subtree
func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// bounds - A subtree waiting to be checked together with the open interval its keys must fall into
type bounds[K, V any] struct {
	n        *node[K, V]
	min, max *K
}

// isBST - Checks the ordering of every key in the subtree against its open interval (nil means unbounded)
func (T *Tree[K, V]) isBST(root *node[K, V], min, max *K) bool {
	work := stack.New()
	work.Push(bounds[K, V]{n: root, min: min, max: max})
	for work.Len() > 0 {
		b := work.Pop().(bounds[K, V])
		if b.n == nil {
			continue
		}
		if b.min != nil && T.cmp(*b.min, b.n.key) >= 0 {
			return false
		}
		if b.max != nil && T.cmp(b.n.key, *b.max) >= 0 {
			return false
		}

		key := b.n.key
		work.Push(bounds[K, V]{n: b.n.left, min: b.min, max: &key})
		work.Push(bounds[K, V]{n: b.n.right, min: &key, max: b.max})
	}

	return true
}

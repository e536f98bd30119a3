package chain

// Node - One entry in a bucket's singly linked collision chain
type Node[K, V any] struct {
	Key   K
	Value V
	Next  *Node[K, V]
}

// Records - Is used to iterate over the nodes of a chain one by one.
type Records[K, V any] struct {
	next *Node[K, V]
}

// NewRecords - Returns a pointer to a new Records struct starting at head
func NewRecords[K, V any](head *Node[K, V]) *Records[K, V] {
	return &Records[K, V]{next: head}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (R *Records[K, V]) HasNext() bool {
	return R.next != nil
}

// Next - Returns the next node, or nil if the chain is exhausted.
func (R *Records[K, V]) Next() (node *Node[K, V]) {
	node = R.next
	if node != nil {
		R.next = node.Next
	}

	return
}

// Len - Counts the nodes of a chain
func Len[K, V any](head *Node[K, V]) (n int) {
	for node := head; node != nil; node = node.Next {
		n++
	}

	return
}

// Release - Unlinks every node of a chain, calling release (if not nil) for each entry.
func Release[K, V any](head *Node[K, V], release func(K, V)) {
	for head != nil {
		node := head
		head = head.Next
		if release != nil {
			release(node.Key, node.Value)
		}
		node.Next = nil
	}
}

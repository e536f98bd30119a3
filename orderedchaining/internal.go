package orderedchaining

import "github.com/gostonefire/symtab/internal/chain"

// position - Walks the ordered chain of a bucket and stops at the first node whose key is not less than key.
// It returns that node (nil at the end of the chain) together with the node before it (nil at the head).
func (O *Table[K, V]) position(bucketNo int, key K) (previous, node *chain.Node[K, V]) {
	node = O.buckets[bucketNo]
	for node != nil && O.cmp(node.Key, key) < 0 {
		previous = node
		node = node.Next
	}

	return
}

// link - Links newNode after previous, or as new head of the bucket if previous is nil
func (O *Table[K, V]) link(bucketNo int, previous, newNode *chain.Node[K, V]) {
	if previous == nil {
		O.buckets[bucketNo] = newNode
	} else {
		previous.Next = newNode
	}
	O.size++
}

// isReleased - True for a nil table or one that has been destroyed
func (O *Table[K, V]) isReleased() bool {
	return O == nil || O.buckets == nil
}

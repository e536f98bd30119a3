package separatechaining

import "github.com/gostonefire/symtab/internal/chain"

// find - Scans the chain of a bucket for a node with a key equal to key, nil if there is none
func (S *Table[K, V]) find(bucketNo int, key K) *chain.Node[K, V] {
	iter := chain.NewRecords(S.buckets[bucketNo])
	for iter.HasNext() {
		node := iter.Next()
		if S.cmp(key, node.Key) == 0 {
			return node
		}
	}

	return nil
}

// isReleased - True for a nil table or one that has been destroyed
func (S *Table[K, V]) isReleased() bool {
	return S == nil || S.buckets == nil
}

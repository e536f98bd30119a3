package bst

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/gostonefire/symtab/crt"
	"github.com/gostonefire/symtab/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func newIntTree(t *testing.T, keys ...int) *Tree[int, string] {
	tree, err := New[int, string](interfaces.OrderedComparator[int]())
	require.NoError(t, err, "create new tree")

	for _, key := range keys {
		tree.Put(key, fmt.Sprintf("v%d", key))
	}

	return tree
}

func TestNew(t *testing.T) {
	t.Run("creates an empty tree", func(t *testing.T) {
		// Execute
		tree := newIntTree(t)

		// Check
		assert.True(t, tree.IsEmpty(), "tree is empty")
		assert.Equal(t, 0, tree.Size(), "no entries")
		assert.Equal(t, 0, tree.Height(), "empty tree has height 0")
		assert.NotNil(t, tree.Comparator(), "comparator kept")
	})

	t.Run("rejects a nil comparator", func(t *testing.T) {
		// Execute
		tree, err := New[int, string](nil)

		// Check
		assert.ErrorIs(t, err, crt.InvalidArgument{}, "nil comparator")
		assert.Nil(t, tree, "no tree")
	})
}

func TestTree_Scenario(t *testing.T) {
	// Prepare
	tree := newIntTree(t, 5, 3, 8, 1, 4, 7, 9)

	// Check
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Keys(), "keys in ascending order")
	assert.Equal(t, 7, tree.Size(), "seven entries")
	assert.Equal(t, 2, tree.Height(), "balanced by insertion order")
	minKey, found := tree.Min()
	assert.True(t, found, "min exists")
	assert.Equal(t, 1, minKey, "min key")
	maxKey, found := tree.Max()
	assert.True(t, found, "max exists")
	assert.Equal(t, 9, maxKey, "max key")
	assert.True(t, tree.Valid(), "ordering holds")

	// Execute
	tree.Delete(5, false)

	// Check
	_, found = tree.Get(5)
	assert.False(t, found, "deleted key gone")
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, tree.Keys(), "remaining keys")
	assert.True(t, tree.Valid(), "ordering holds after delete")
	assert.Equal(t, 4, tree.root.key, "predecessor took the root")
}

func TestTree_Put(t *testing.T) {
	t.Run("overwrites in place", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t, 2, 1, 3)

		// Execute
		old, replaced := tree.Put(1, "one")

		// Check
		assert.True(t, replaced, "value replaced")
		assert.Equal(t, "v1", old, "old value returned")
		value, found := tree.Get(1)
		assert.True(t, found, "key found")
		assert.Equal(t, "one", value, "new value")
		assert.Equal(t, 3, tree.Size(), "size unchanged")
	})

	t.Run("insert keeps an existing value", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t, 2)

		// Execute
		tree.Insert(2, "two")
		tree.Insert(4, "four")

		// Check
		value, _ := tree.Get(2)
		assert.Equal(t, "v2", value, "existing value kept")
		assert.True(t, tree.Contains(4), "new key added")
		assert.Equal(t, 2, tree.Size(), "two entries")
	})

	t.Run("sorted input degrades to a list", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t)

		// Execute
		for i := 0; i < 100; i++ {
			tree.Put(i, "")
		}

		// Check
		assert.Equal(t, 99, tree.Height(), "height equals entries minus one")
		assert.Equal(t, 100, tree.Size(), "all entries counted")
		assert.True(t, tree.Valid(), "ordering holds")
	})
}

func TestTree_Delete(t *testing.T) {
	t.Run("leaf, single child and missing key", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t, 5, 3, 8, 1, 4, 7, 9, 6)

		// Execute
		tree.Delete(1, false)
		tree.Delete(7, false)
		tree.Delete(100, false)

		// Check
		assert.Equal(t, []int{3, 4, 5, 6, 8, 9}, tree.Keys(), "remaining keys")
		assert.Equal(t, 6, tree.root.right.left.key, "child of 7 moved up")
		assert.True(t, tree.Valid(), "ordering holds")
	})

	t.Run("releases only the removed payload", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t, 5, 3, 8, 1, 4)
		var released []int
		tree.SetReleaseFunc(func(key int, _ string) { released = append(released, key) })

		// Execute
		tree.Delete(3, true)
		tree.Delete(8, false)

		// Check
		assert.Equal(t, []int{3}, released, "payload of 3 released once")
		value, found := tree.Get(1)
		assert.True(t, found, "predecessor still reachable")
		assert.Equal(t, "v1", value, "predecessor payload intact")
	})

	t.Run("last entry empties the tree", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t, 1)

		// Execute
		tree.Delete(1, false)

		// Check
		assert.True(t, tree.IsEmpty(), "tree is empty")
		_, found := tree.Min()
		assert.False(t, found, "no min")
	})
}

func TestTree_DeleteMinMax(t *testing.T) {
	// Prepare
	tree := newIntTree(t, 5, 3, 8, 4, 9)
	var released []int
	tree.SetReleaseFunc(func(key int, _ string) { released = append(released, key) })

	// Execute
	tree.DeleteMin(true)
	tree.DeleteMax(true)

	// Check
	assert.Equal(t, []int{4, 5, 8}, tree.Keys(), "min and max removed")
	assert.Equal(t, []int{3, 9}, released, "both released")

	// Execute
	tree.DeleteMin(false)
	tree.DeleteMin(false)
	tree.DeleteMin(false)
	tree.DeleteMin(false)
	tree.DeleteMax(false)

	// Check
	assert.True(t, tree.IsEmpty(), "tree drained")
}

func TestTree_OrderedQueries(t *testing.T) {
	tree := newIntTree(t, 50, 30, 70, 20, 40, 60, 80)

	t.Run("floor and ceiling", func(t *testing.T) {
		floor, found := tree.Floor(45)
		assert.True(t, found, "floor exists")
		assert.Equal(t, 40, floor, "floor of 45")

		floor, _ = tree.Floor(50)
		assert.Equal(t, 50, floor, "floor of present key")

		_, found = tree.Floor(10)
		assert.False(t, found, "no floor below min")

		ceiling, found := tree.Ceiling(45)
		assert.True(t, found, "ceiling exists")
		assert.Equal(t, 50, ceiling, "ceiling of 45")

		_, found = tree.Ceiling(81)
		assert.False(t, found, "no ceiling above max")
	})

	t.Run("rank", func(t *testing.T) {
		assert.Equal(t, 0, tree.Rank(20), "rank of min")
		assert.Equal(t, 3, tree.Rank(50), "rank of root")
		assert.Equal(t, 4, tree.Rank(55), "rank of absent key")
		assert.Equal(t, 7, tree.Rank(100), "rank above max")
	})

	t.Run("predecessor and successor", func(t *testing.T) {
		predecessor, found := tree.Predecessor(50)
		assert.True(t, found, "root has predecessor")
		assert.Equal(t, 40, predecessor, "max of left subtree")

		predecessor, _ = tree.Predecessor(60)
		assert.Equal(t, 50, predecessor, "nearest ancestor")

		_, found = tree.Predecessor(20)
		assert.False(t, found, "min has no predecessor")

		predecessor, found = tree.Predecessor(45)
		assert.True(t, found, "absent key has predecessor")
		assert.Equal(t, 40, predecessor, "largest smaller key")

		_, found = tree.Predecessor(5)
		assert.False(t, found, "nothing below min")

		successor, _ := tree.Successor(40)
		assert.Equal(t, 50, successor, "nearest ancestor")

		successor, _ = tree.Successor(50)
		assert.Equal(t, 60, successor, "min of right subtree")

		_, found = tree.Successor(80)
		assert.False(t, found, "max has no successor")

		successor, _ = tree.Successor(65)
		assert.Equal(t, 70, successor, "absent key has successor")
	})

	t.Run("ranges", func(t *testing.T) {
		assert.Equal(t, []int{30, 40, 50, 60}, tree.KeysRange(25, 60), "inclusive range")
		assert.Equal(t, []int{}, tree.KeysRange(61, 69), "empty range")
		assert.Equal(t, []int{}, tree.KeysRange(60, 25), "inverted range")
		assert.Equal(t, []int{}, tree.KeysRange(81, 90), "range above every key")
		assert.Equal(t, []int{}, tree.KeysRange(1, 10), "range below every key")
		assert.Equal(t, []int{}, tree.KeysRange(41, 49), "range inside a gap")
		assert.Equal(t, []int{80}, tree.KeysRange(80, 1000), "range starting at max")

		small := newIntTree(t, 5, 3, 8)
		assert.NotPanics(t, func() { small.KeysRange(10, 20) }, "range above a small tree")
		assert.Equal(t, []int{}, small.KeysRange(10, 20), "nothing above max")
		assert.Equal(t, []int{}, small.KeysRange(6, 7), "nothing in the gap")
		assert.Equal(t, []int{20, 30, 40}, tree.KeysLE(45), "keys up to 45")
		assert.Equal(t, []int{}, tree.KeysLE(5), "nothing below min")
	})

	t.Run("subtree size", func(t *testing.T) {
		assert.Equal(t, 7, tree.SubtreeSize(50), "whole tree")
		assert.Equal(t, 3, tree.SubtreeSize(70), "right subtree")
		assert.Equal(t, 1, tree.SubtreeSize(80), "leaf")
		assert.Equal(t, 0, tree.SubtreeSize(55), "absent key")
	})

	t.Run("bounds check", func(t *testing.T) {
		assert.True(t, tree.IsBST(0, 100), "inside bounds")
		assert.False(t, tree.IsBST(20, 100), "bounds are open")
		assert.False(t, tree.IsBST(0, 70), "key above max bound")
	})
}

func TestTree_Valid(t *testing.T) {
	// Prepare
	tree := newIntTree(t, 50, 30, 70, 20, 40)

	// Execute
	tree.root.left.right.key = 55

	// Check
	assert.False(t, tree.Valid(), "grandchild on wrong side of root")
}

func TestTree_TraverseInOrder(t *testing.T) {
	// Prepare
	tree := newIntTree(t, 2, 1, 3)
	var visited []string

	// Execute
	tree.TraverseInOrder(func(key int, value string) {
		visited = append(visited, fmt.Sprintf("%d=%s", key, value))
	})

	// Check
	assert.Equal(t, []string{"1=v1", "2=v2", "3=v3"}, visited, "ascending visit")
}

func TestTree_ClearAndDestroy(t *testing.T) {
	t.Run("clear releases every payload", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t, 5, 3, 8, 1)
		released := 0
		tree.SetReleaseFunc(func(int, string) { released++ })

		// Execute
		tree.Clear(true)

		// Check
		assert.Equal(t, 4, released, "all released")
		assert.True(t, tree.IsEmpty(), "tree empty")
		tree.Put(1, "again")
		assert.Equal(t, 1, tree.Size(), "still usable")
	})

	t.Run("clear handles degenerate trees", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t)
		for i := 0; i < 10000; i++ {
			tree.Put(i, "")
		}

		// Execute
		tree.Clear(false)

		// Check
		assert.True(t, tree.IsEmpty(), "tree empty")
	})

	t.Run("destroyed and nil trees degrade gracefully", func(t *testing.T) {
		// Prepare
		tree := newIntTree(t, 1, 2)
		tree.Destroy(false)
		var nilTree *Tree[int, string]

		for _, tr := range []*Tree[int, string]{tree, nilTree} {
			// Execute
			tr.Put(3, "v3")
			tr.Insert(4, "v4")
			tr.Delete(1, true)
			tr.DeleteMin(true)
			tr.DeleteMax(true)
			tr.Clear(true)
			tr.Destroy(true)
			tr.SetReleaseFunc(nil)

			// Check
			_, found := tr.Get(3)
			assert.False(t, found, "nothing stored")
			assert.True(t, tr.IsEmpty(), "empty")
			assert.Equal(t, 0, tr.Size(), "size zero")
			assert.Equal(t, 0, tr.Height(), "height zero")
			assert.Nil(t, tr.Keys(), "no keys")
			assert.Equal(t, 0, tr.Rank(3), "rank zero")
			_, found = tr.Floor(3)
			assert.False(t, found, "no floor")
			assert.True(t, tr.Valid(), "vacuously ordered")
			assert.True(t, tr.IsBST(0, 10), "vacuously within bounds")
		}
	})
}

func TestTree_AgainstTreeMap(t *testing.T) {
	// Prepare
	rnd := rand.New(rand.NewSource(42))
	tree := newIntTree(t)
	oracle := treemap.NewWithIntComparator()

	// Execute
	for i := 0; i < 5000; i++ {
		key := rnd.Intn(500)
		switch rnd.Intn(4) {
		case 0, 1:
			tree.Put(key, fmt.Sprintf("v%d", i))
			oracle.Put(key, fmt.Sprintf("v%d", i))
		case 2:
			tree.Delete(key, false)
			oracle.Remove(key)
		case 3:
			floor, found := tree.Floor(key)
			expected, _ := oracle.Floor(key)
			assert.Equal(t, expected != nil, found, "floor existence of %d", key)
			if found {
				assert.Equal(t, expected, floor, "floor of %d", key)
			}
			ceiling, found := tree.Ceiling(key)
			expected, _ = oracle.Ceiling(key)
			assert.Equal(t, expected != nil, found, "ceiling existence of %d", key)
			if found {
				assert.Equal(t, expected, ceiling, "ceiling of %d", key)
			}
		}
	}

	// Check
	require.Equal(t, oracle.Size(), tree.Size(), "same size")
	keys := tree.Keys()
	for i, key := range oracle.Keys() {
		assert.Equal(t, key, keys[i], "key at position %d", i)
		value, _ := tree.Get(keys[i])
		expected, _ := oracle.Get(key)
		assert.Equal(t, expected, value, "value of %d", keys[i])
	}
	assert.True(t, tree.Valid(), "ordering holds")
	if minKey, found := tree.Min(); found {
		expected, _ := oracle.Min()
		assert.Equal(t, expected, minKey, "min key")
	}
}

func TestTree_KeysRangeAgainstSortedKeys(t *testing.T) {
	// Prepare
	rnd := rand.New(rand.NewSource(7))
	tree := newIntTree(t)
	var sorted []int
	for i := 0; i < 200; i++ {
		key := rnd.Intn(1000)
		if !tree.Contains(key) {
			sorted = append(sorted, key)
		}
		tree.Put(key, "")
	}
	slices.Sort(sorted)

	for i := 0; i < 2000; i++ {
		// Execute
		low := rnd.Intn(1200) - 100
		high := low + rnd.Intn(300)
		keys := tree.KeysRange(low, high)

		// Check
		expected := make([]int, 0)
		for _, key := range sorted {
			if key >= low && key <= high {
				expected = append(expected, key)
			}
		}
		assert.Equal(t, expected, keys, "keys in [%d, %d]", low, high)
	}
}

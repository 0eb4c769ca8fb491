package treers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Horki/treers"
)

func TestBTreeEmpty(t *testing.T) {
	tree := treers.NewBTree[int, int]()
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.Size())
	// height is a tracked counter, 0 by convention for the empty tree
	h, ok := tree.Height()
	require.True(t, ok)
	require.Equal(t, 0, h)
	_, ok = tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)
	_, ok = tree.Get(1)
	require.False(t, ok)
	require.Empty(t, treers.Traverse[int, int](tree, treers.LevelOrder))
}

func TestBTreeSmall(t *testing.T) {
	tree := treers.NewBTree[int, int]()
	tree.Put(1, 4)
	tree.Put(2, 1)
	tree.Put(3, 3)
	tree.Put(4, 5)

	require.Equal(t, 4, tree.Size())
	// the fourth insert overflows the root leaf and splits it
	h, _ := tree.Height()
	require.Equal(t, 1, h)
	require.Equal(t, []int{1, 2, 3, 4}, keysOf(treers.Traverse[int, int](tree, treers.InOrder)))
	for k, want := range map[int]int{1: 4, 2: 1, 3: 3, 4: 5} {
		v, ok := tree.Get(k)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
}

func TestBTreeThousandAscending(t *testing.T) {
	tree := treers.NewBTree[uint64, uint64]()
	for i := uint64(1); i <= 1000; i++ {
		tree.Put(i, i+1)
	}

	require.Equal(t, 1000, tree.Size())
	h, ok := tree.Height()
	require.True(t, ok)
	require.Equal(t, 8, h)
	minKey, _ := tree.Min()
	require.Equal(t, uint64(1), minKey)
	maxKey, _ := tree.Max()
	require.Equal(t, uint64(1000), maxKey)
	v, ok := tree.Get(501)
	require.True(t, ok)
	require.Equal(t, uint64(502), v)
	_, ok = tree.Get(1001)
	require.False(t, ok)
}

// Descending insertion drives the separator-refresh path: every new
// key is a new global minimum.
func TestBTreeThousandDescending(t *testing.T) {
	tree := treers.NewBTree[uint64, uint64]()
	for i := uint64(1000); i >= 1; i-- {
		tree.Put(i, i+1)
	}

	require.Equal(t, 1000, tree.Size())
	h, _ := tree.Height()
	require.Equal(t, 8, h)
	minKey, _ := tree.Min()
	require.Equal(t, uint64(1), minKey)
	maxKey, _ := tree.Max()
	require.Equal(t, uint64(1000), maxKey)
	for i := uint64(1); i <= 1000; i++ {
		v, ok := tree.Get(i)
		require.True(t, ok)
		require.Equal(t, i+1, v)
	}
}

func TestBTreeInsertIfAbsent(t *testing.T) {
	tree := treers.NewBTree[string, int]()
	tree.Put("a", 1)
	tree.Put("a", 99)
	require.Equal(t, 1, tree.Size())
	v, ok := tree.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	// duplicates must not change size even deep in a grown tree
	numbered := treers.NewBTree[int, int]()
	for i := 1; i <= 100; i++ {
		numbered.Put(i, i)
	}
	for i := 1; i <= 100; i++ {
		numbered.Put(i, -i)
	}
	require.Equal(t, 100, numbered.Size())
	v, _ = numbered.Get(42)
	require.Equal(t, 42, v)
}

// Pairs live only in the leaves, which all sit at the same depth, so
// every traversal order emits them in ascending key order and exactly
// once.
func TestBTreeTraversalOrdersCoincide(t *testing.T) {
	tree := treers.NewBTree[int, int]()
	for _, k := range []int{42, 7, 19, 3, 88, 55, 1, 100, 64, 27} {
		tree.Put(k, k*2)
	}
	want := []int{1, 3, 7, 19, 27, 42, 55, 64, 88, 100}
	for _, order := range []treers.Order{treers.PreOrder, treers.InOrder, treers.PostOrder, treers.LevelOrder} {
		require.Equal(t, want, keysOf(treers.Traverse[int, int](tree, order)), "order %s", order)
	}
}

func TestBTreeMustGet(t *testing.T) {
	tree := treers.NewBTree[int, int]()
	tree.Put(1, 42)
	require.Equal(t, 42, treers.MustGet[int, int](tree, 1))
	require.Panics(t, func() {
		treers.MustGet[int, int](tree, 2)
	})
}

func TestBTreeZeroValue(t *testing.T) {
	var tree treers.BTree[int, int]
	_, ok := tree.Get(1)
	require.False(t, ok)
	tree.Put(1, 10)
	tree.Put(2, 20)
	require.Equal(t, 2, tree.Size())
	v, ok := tree.Get(2)
	require.True(t, ok)
	require.Equal(t, 20, v)
}

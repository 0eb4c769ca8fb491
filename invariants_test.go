package treers

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkRedBlack walks the whole tree and asserts the red-black
// invariants: red links lean left, no node has two red children, every
// root-to-nil path crosses the same number of black links and the
// root's incoming link is black.
func checkRedBlack[K cmp.Ordered, V any](t *testing.T, tree *RBTree[K, V]) {
	t.Helper()
	require.False(t, tree.root.isRed(), "root link must be black")
	blackDepth(t, tree.root)
}

func blackDepth[K cmp.Ordered, V any](t *testing.T, n *rbNode[K, V]) int {
	t.Helper()
	if n == nil {
		return 0
	}
	require.False(t, n.right.isRed(), "red link leaning right at key %v", n.key)
	require.False(t, n.left.isRed() && n.right.isRed(), "two red child links at key %v", n.key)
	if n.left.isRed() {
		require.False(t, n.left.left.isRed(), "two consecutive red links below key %v", n.key)
	}
	lb := blackDepth(t, n.left)
	rb := blackDepth(t, n.right)
	require.Equal(t, lb, rb, "black imbalance at key %v", n.key)
	require.Equal(t, n.left.count()+n.right.count()+1, n.size, "stale size at key %v", n.key)
	if n.isRed() {
		return lb
	}
	return lb + 1
}

// checkBTree asserts the multiway invariants: uniform leaf depth,
// internal fanout between 2 and M, and each separator key equal to the
// smallest key reachable through its child.
func checkBTree[K cmp.Ordered, V any](t *testing.T, tree *BTree[K, V]) {
	t.Helper()
	if tree.root == nil || tree.n == 0 {
		return
	}
	checkBTreeNode(t, tree.root, tree.height)
}

func checkBTreeNode[K cmp.Ordered, V any](t *testing.T, x *btreeNode[K, V], ht int) K {
	t.Helper()
	if ht == 0 {
		require.Greater(t, x.m, 0, "empty leaf node")
		for j := 0; j < x.m; j++ {
			require.Nil(t, x.entries[j].child, "leaf entry with a child")
			if j > 0 {
				require.Less(t, x.entries[j-1].key, x.entries[j].key, "leaf keys out of order")
			}
		}
		return x.entries[0].key
	}
	require.GreaterOrEqual(t, x.m, 2, "internal node with fewer than 2 children")
	require.LessOrEqual(t, x.m, btreeOrder, "internal node over order")
	for j := 0; j < x.m; j++ {
		require.NotNil(t, x.entries[j].child, "internal entry without a child")
		childMin := checkBTreeNode(t, x.entries[j].child, ht-1)
		require.Equal(t, childMin, x.entries[j].key,
			"separator key does not match the smallest key of its child")
		if j > 0 {
			require.Less(t, x.entries[j-1].key, x.entries[j].key, "separator keys out of order")
		}
	}
	return x.entries[0].key
}

func checkBSTSizes[K cmp.Ordered, V any](t *testing.T, n *bstNode[K, V]) int {
	t.Helper()
	if n == nil {
		return 0
	}
	got := 1 + checkBSTSizes(t, n.left) + checkBSTSizes(t, n.right)
	require.Equal(t, got, n.size, "stale size at key %v", n.key)
	return got
}

func shuffled(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	keys := rng.Perm(n)
	for i := range keys {
		keys[i]++
	}
	return keys
}

func TestRBTreeBalanceInvariants(t *testing.T) {
	orders := map[string][]int{
		"ascending":  ascending(1, 1000),
		"descending": descending(1000, 1),
		"shuffled":   shuffled(42, 1000),
	}
	for name, keys := range orders {
		t.Run(name, func(t *testing.T) {
			tree := NewRBTree[int, int]()
			for _, k := range keys {
				tree.Put(k, k)
				checkRedBlack(t, tree)
			}
			require.Equal(t, 1000, tree.Size())
		})
	}
}

func TestBTreeDepthAndSeparatorInvariants(t *testing.T) {
	orders := map[string][]int{
		"ascending":  ascending(1, 1000),
		"descending": descending(1000, 1),
		"shuffled":   shuffled(7, 1000),
	}
	for name, keys := range orders {
		t.Run(name, func(t *testing.T) {
			tree := NewBTree[int, int]()
			for i, k := range keys {
				tree.Put(k, k)
				if i%97 == 0 {
					checkBTree(t, tree)
				}
			}
			checkBTree(t, tree)
			require.Equal(t, 1000, tree.Size())
		})
	}
}

func TestBSTSizeCaching(t *testing.T) {
	tree := NewBST[int, int]()
	for _, k := range shuffled(3, 500) {
		tree.Put(k, k)
	}
	require.Equal(t, 500, checkBSTSizes(t, tree.root))
}

func ascending(from, to int) []int {
	keys := make([]int, 0, to-from+1)
	for k := from; k <= to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func descending(from, to int) []int {
	keys := make([]int, 0, from-to+1)
	for k := from; k >= to; k-- {
		keys = append(keys, k)
	}
	return keys
}

// Package treers provides ordered key-value containers backed by three
// tree structures sharing one contract: an unbalanced binary search
// tree, a 2-3-4 multiway balanced tree and a left-leaning red-black
// tree. All three are insert/lookup/traverse only; none supports
// deletion. Instances are not safe for concurrent mutation, callers
// must serialize writers.
package treers

import (
	"cmp"
	"fmt"
)

// Pair is one key-value entry produced by a traversal.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Map is the ordered-map contract implemented by every structure in
// this package. Key absence is not an error; lookups report it through
// the ok result.
//
// Put follows insert-if-absent semantics: inserting a key that is
// already present keeps the first inserted value and leaves Size
// unchanged.
type Map[K cmp.Ordered, V any] interface {
	// Size returns the number of entries.
	Size() int
	// Get returns the value stored under key, if any.
	Get(key K) (V, bool)
	// Put inserts key with value unless key is already present.
	Put(key K, value V)
	// Height returns the edge count of the longest root-to-leaf path.
	// ok is false when the structure cannot report a height for the
	// empty tree, distinguishing "no nodes" from a single node at
	// height 0.
	Height() (h int, ok bool)
	// IsEmpty reports whether Size is 0.
	IsEmpty() bool
	// Contains reports whether key is present.
	Contains(key K) bool
	// Min returns the smallest key, Max the largest. ok is false iff
	// the tree is empty.
	Min() (K, bool)
	Max() (K, bool)
}

// Tree extends Map with per-order visit hooks consumed by Traverse.
// Each hook appends pairs to out in its respective order. LevelOrder
// appends only the entries living at the given depth below the root.
type Tree[K cmp.Ordered, V any] interface {
	Map[K, V]
	PreOrder(out *[]Pair[K, V])
	InOrder(out *[]Pair[K, V])
	PostOrder(out *[]Pair[K, V])
	LevelOrder(out *[]Pair[K, V], level int)
}

// Order selects one of the four traversal orders.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	case LevelOrder:
		return "level"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a name accepted on the command line to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	case "level":
		return LevelOrder, nil
	default:
		return 0, fmt.Errorf("unknown traversal order %q", s)
	}
}

// Traverse walks t in the given order and returns the materialized
// sequence of pairs. The result is a snapshot: it stays valid if t is
// mutated afterwards. Traversal never mutates t.
//
// Level order runs one depth-limited pass per level, from the root's
// level down to the deepest, so every populated entry is visited
// exactly once.
func Traverse[K cmp.Ordered, V any](t Tree[K, V], order Order) []Pair[K, V] {
	out := make([]Pair[K, V], 0, t.Size())
	switch order {
	case PreOrder:
		t.PreOrder(&out)
	case InOrder:
		t.InOrder(&out)
	case PostOrder:
		t.PostOrder(&out)
	case LevelOrder:
		if h, ok := t.Height(); ok {
			for level := 0; level <= h; level++ {
				t.LevelOrder(&out, level)
			}
		}
	}
	return out
}

// MustGet returns the value stored under key and panics when the key
// is absent. Callers that cannot tolerate the abort must use Get.
func MustGet[K cmp.Ordered, V any](m Map[K, V], key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(fmt.Sprintf("treers: missing entry for key %v", key))
	}
	return v
}

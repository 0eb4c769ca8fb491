package treers

import "cmp"

// btreeOrder is M, the maximum number of entries per node. Nodes split
// when they fill up to M, promoting the upper M/2 entries into a new
// sibling. Must be even and at least 4.
const btreeOrder = 4

// BTree is a 2-3-4 style multiway balanced tree. Key-value pairs live
// only in leaf entries at height 0; entries above that pair a
// separator key with a child subtree, and every internal entry's key
// equals the smallest key reachable through its child. All leaves sit
// at the same depth, so lookups are bounded by the tracked height.
//
// The zero value is an empty tree ready to use.
type BTree[K cmp.Ordered, V any] struct {
	root *btreeNode[K, V]
	// height counts internal levels. It increments exactly once per
	// root split and never decreases; it is authoritative, since the
	// node shape alone cannot recompute it cheaply.
	height int
	n      int
}

type btreeNode[K cmp.Ordered, V any] struct {
	m       int // entries in use
	entries [btreeOrder]btreeEntry[K, V]
}

// btreeEntry is either a leaf entry (value set, child nil) or an
// internal entry (child set, value zero).
type btreeEntry[K cmp.Ordered, V any] struct {
	key   K
	value V
	child *btreeNode[K, V]
}

// NewBTree returns an empty multiway balanced tree of order 4.
func NewBTree[K cmp.Ordered, V any]() *BTree[K, V] {
	return &BTree[K, V]{root: &btreeNode[K, V]{}}
}

var _ Tree[int, int] = (*BTree[int, int])(nil)

func (t *BTree[K, V]) Size() int {
	return t.n
}

func (t *BTree[K, V]) IsEmpty() bool {
	return t.n == 0
}

func (t *BTree[K, V]) Get(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	return t.root.get(key, t.height)
}

func (t *BTree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put inserts key with value. A key already present keeps its first
// value and the tree is left untouched. A root split wraps the old
// root and its new sibling under a fresh root and is the only event
// that grows the height.
func (t *BTree[K, V]) Put(key K, value V) {
	if t.root == nil {
		t.root = &btreeNode[K, V]{}
	}
	if _, ok := t.root.get(key, t.height); ok {
		return
	}
	u := t.root.insert(key, value, t.height)
	t.n++
	if u == nil {
		return
	}
	root := &btreeNode[K, V]{m: 2}
	root.entries[0] = btreeEntry[K, V]{key: t.root.entries[0].key, child: t.root}
	root.entries[1] = btreeEntry[K, V]{key: u.entries[0].key, child: u}
	t.root = root
	t.height++
}

// Height reports the tracked counter. By convention the empty tree has
// height 0 here, unlike the measured binary variants.
func (t *BTree[K, V]) Height() (int, bool) {
	return t.height, true
}

func (t *BTree[K, V]) Min() (K, bool) {
	if t.n == 0 {
		var zero K
		return zero, false
	}
	x := t.root
	for ht := t.height; ht > 0; ht-- {
		x = x.entries[0].child
	}
	return x.entries[0].key, true
}

func (t *BTree[K, V]) Max() (K, bool) {
	if t.n == 0 {
		var zero K
		return zero, false
	}
	x := t.root
	for ht := t.height; ht > 0; ht-- {
		x = x.entries[x.m-1].child
	}
	return x.entries[x.m-1].key, true
}

// The user-visible pairs all live in leaves ordered left to right, so
// the three depth-first orders coincide: each emits the leaf entries
// in ascending key order.

func (t *BTree[K, V]) PreOrder(out *[]Pair[K, V]) {
	if t.root != nil {
		t.root.walkLeaves(out, t.height)
	}
}

func (t *BTree[K, V]) InOrder(out *[]Pair[K, V]) {
	if t.root != nil {
		t.root.walkLeaves(out, t.height)
	}
}

func (t *BTree[K, V]) PostOrder(out *[]Pair[K, V]) {
	if t.root != nil {
		t.root.walkLeaves(out, t.height)
	}
}

// LevelOrder emits the entries at the given depth. Levels above the
// leaves hold only separator entries, which carry no values, so pairs
// appear exactly once, at level == height.
func (t *BTree[K, V]) LevelOrder(out *[]Pair[K, V], level int) {
	if t.root != nil {
		t.root.levelOrder(out, level, t.height)
	}
}

func (x *btreeNode[K, V]) get(key K, ht int) (V, bool) {
	if ht == 0 {
		for j := 0; j < x.m; j++ {
			if x.entries[j].key == key {
				return x.entries[j].value, true
			}
		}
		var zero V
		return zero, false
	}
	for j := 0; j < x.m; j++ {
		if j+1 == x.m || key < x.entries[j+1].key {
			return x.entries[j].child.get(key, ht-1)
		}
	}
	var zero V
	return zero, false
}

// insert places key/value at the proper position of the current level.
// A non-nil return is the "right half" sibling produced by a split of
// this node, to be linked in by the caller.
func (x *btreeNode[K, V]) insert(key K, value V, ht int) *btreeNode[K, V] {
	var j int
	entry := btreeEntry[K, V]{key: key, value: value}
	if ht == 0 {
		for j = 0; j < x.m; j++ {
			if key < x.entries[j].key {
				break
			}
		}
	} else {
		for j = 0; j < x.m; j++ {
			if j+1 == x.m || key < x.entries[j+1].key {
				u := x.entries[j].child.insert(key, value, ht-1)
				if key < x.entries[j].key {
					// key is the subtree's new minimum
					x.entries[j].key = key
				}
				j++
				if u == nil {
					return nil
				}
				entry = btreeEntry[K, V]{key: u.entries[0].key, child: u}
				break
			}
		}
	}
	copy(x.entries[j+1:x.m+1], x.entries[j:x.m])
	x.entries[j] = entry
	x.m++
	if x.m < btreeOrder {
		return nil
	}
	return x.split()
}

// split moves the trailing M/2 entries into a new sibling.
func (x *btreeNode[K, V]) split() *btreeNode[K, V] {
	u := &btreeNode[K, V]{m: btreeOrder / 2}
	x.m = btreeOrder / 2
	for j := 0; j < btreeOrder/2; j++ {
		u.entries[j] = x.entries[btreeOrder/2+j]
		x.entries[btreeOrder/2+j] = btreeEntry[K, V]{}
	}
	return u
}

func (x *btreeNode[K, V]) walkLeaves(out *[]Pair[K, V], ht int) {
	if ht == 0 {
		for j := 0; j < x.m; j++ {
			*out = append(*out, Pair[K, V]{x.entries[j].key, x.entries[j].value})
		}
		return
	}
	for j := 0; j < x.m; j++ {
		x.entries[j].child.walkLeaves(out, ht-1)
	}
}

func (x *btreeNode[K, V]) levelOrder(out *[]Pair[K, V], level, ht int) {
	if level == 0 {
		if ht == 0 {
			for j := 0; j < x.m; j++ {
				*out = append(*out, Pair[K, V]{x.entries[j].key, x.entries[j].value})
			}
		}
		return
	}
	if ht == 0 {
		return
	}
	for j := 0; j < x.m; j++ {
		x.entries[j].child.levelOrder(out, level-1, ht-1)
	}
}

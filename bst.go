package treers

import "cmp"

// BST is the unbalanced binary search tree, the baseline the balanced
// structures are measured against. No rebalancing ever happens, so the
// height is unbounded: inserting keys in sorted order degenerates into
// a linked list with height == size-1.
//
// The zero value is an empty tree ready to use.
type BST[K cmp.Ordered, V any] struct {
	root *bstNode[K, V]
}

type bstNode[K cmp.Ordered, V any] struct {
	key   K
	value V
	size  int // entries in the subtree rooted here
	left  *bstNode[K, V]
	right *bstNode[K, V]
}

// NewBST returns an empty unbalanced search tree.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] {
	return &BST[K, V]{}
}

var _ Tree[int, int] = (*BST[int, int])(nil)

func (t *BST[K, V]) Size() int {
	return t.root.count()
}

func (t *BST[K, V]) IsEmpty() bool {
	return t.root == nil
}

func (t *BST[K, V]) Get(key K) (V, bool) {
	return t.root.get(key)
}

func (t *BST[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put inserts key with value. A key already present keeps its first
// value; only the cached sizes on the search path are touched.
func (t *BST[K, V]) Put(key K, value V) {
	t.root = t.root.put(key, value)
}

// Height is measured on demand by a deepest-path walk; it is not
// cached. The empty tree has no height.
func (t *BST[K, V]) Height() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.depth() - 1, true
}

func (t *BST[K, V]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

func (t *BST[K, V]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

func (t *BST[K, V]) PreOrder(out *[]Pair[K, V]) {
	t.root.preOrder(out)
}

func (t *BST[K, V]) InOrder(out *[]Pair[K, V]) {
	t.root.inOrder(out)
}

func (t *BST[K, V]) PostOrder(out *[]Pair[K, V]) {
	t.root.postOrder(out)
}

func (t *BST[K, V]) LevelOrder(out *[]Pair[K, V], level int) {
	t.root.levelOrder(out, level)
}

// Invert mirrors the tree in place, swapping the left and right
// subtree of every node. It deliberately breaks the key ordering.
func (t *BST[K, V]) Invert() {
	t.root.invert()
}

func (n *bstNode[K, V]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *bstNode[K, V]) get(key K) (V, bool) {
	if n == nil {
		var zero V
		return zero, false
	}
	switch {
	case key < n.key:
		return n.left.get(key)
	case key > n.key:
		return n.right.get(key)
	default:
		return n.value, true
	}
}

func (n *bstNode[K, V]) put(key K, value V) *bstNode[K, V] {
	if n == nil {
		return &bstNode[K, V]{key: key, value: value, size: 1}
	}
	switch {
	case key < n.key:
		n.left = n.left.put(key, value)
	case key > n.key:
		n.right = n.right.put(key, value)
	}
	n.size = 1 + n.left.count() + n.right.count()
	return n
}

func (n *bstNode[K, V]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

func (n *bstNode[K, V]) preOrder(out *[]Pair[K, V]) {
	if n == nil {
		return
	}
	*out = append(*out, Pair[K, V]{n.key, n.value})
	n.left.preOrder(out)
	n.right.preOrder(out)
}

func (n *bstNode[K, V]) inOrder(out *[]Pair[K, V]) {
	if n == nil {
		return
	}
	n.left.inOrder(out)
	*out = append(*out, Pair[K, V]{n.key, n.value})
	n.right.inOrder(out)
}

func (n *bstNode[K, V]) postOrder(out *[]Pair[K, V]) {
	if n == nil {
		return
	}
	n.left.postOrder(out)
	n.right.postOrder(out)
	*out = append(*out, Pair[K, V]{n.key, n.value})
}

func (n *bstNode[K, V]) levelOrder(out *[]Pair[K, V], level int) {
	if n == nil {
		return
	}
	if level == 0 {
		*out = append(*out, Pair[K, V]{n.key, n.value})
		return
	}
	n.left.levelOrder(out, level-1)
	n.right.levelOrder(out, level-1)
}

func (n *bstNode[K, V]) invert() {
	if n == nil {
		return
	}
	n.left.invert()
	n.right.invert()
	n.left, n.right = n.right, n.left
}

package treers

import "cmp"

// RBTree is a left-leaning red-black tree: a binary encoding of a 2-3
// tree where a red link glues two keys into a logical 3-node and red
// links always lean left. The balance invariants are restored on the
// unwind of the recursive insert by rotations and color flips, so the
// height stays logarithmic under every insertion order.
//
// The zero value is an empty tree ready to use.
type RBTree[K cmp.Ordered, V any] struct {
	root *rbNode[K, V]
}

type rbNode[K cmp.Ordered, V any] struct {
	key   K
	value V
	red   bool // the link from the parent to this node is red
	size  int
	left  *rbNode[K, V]
	right *rbNode[K, V]
}

// NewRBTree returns an empty left-leaning red-black tree.
func NewRBTree[K cmp.Ordered, V any]() *RBTree[K, V] {
	return &RBTree[K, V]{}
}

var _ Tree[int, int] = (*RBTree[int, int])(nil)

func (t *RBTree[K, V]) Size() int {
	return t.root.count()
}

func (t *RBTree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Get descends by comparison exactly like the unbalanced tree; color
// is irrelevant to read-only queries.
func (t *RBTree[K, V]) Get(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

func (t *RBTree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put inserts key with value, keeping the first value on a duplicate
// key. The root's incoming link is forced black after every insert;
// it has no parent, so it can never be red.
func (t *RBTree[K, V]) Put(key K, value V) {
	t.root = t.root.put(key, value)
	t.root.red = false
}

// Height is the plain deepest-path measurement over all links, red and
// black alike. The empty tree has no height.
func (t *RBTree[K, V]) Height() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.depth() - 1, true
}

func (t *RBTree[K, V]) Min() (K, bool) {
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

func (t *RBTree[K, V]) Max() (K, bool) {
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

func (t *RBTree[K, V]) PreOrder(out *[]Pair[K, V]) {
	t.root.preOrder(out)
}

func (t *RBTree[K, V]) InOrder(out *[]Pair[K, V]) {
	t.root.inOrder(out)
}

func (t *RBTree[K, V]) PostOrder(out *[]Pair[K, V]) {
	t.root.postOrder(out)
}

func (t *RBTree[K, V]) LevelOrder(out *[]Pair[K, V], level int) {
	t.root.levelOrder(out, level)
}

func (n *rbNode[K, V]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *rbNode[K, V]) isRed() bool {
	return n != nil && n.red
}

// put is the recursive insert. New links start red. The fix-up steps
// on the unwind run in a fixed order: left-rotate a right-leaning red
// link, right-rotate the top of two consecutive left-leaning reds,
// then color-flip a node with two red children. The flip is the only
// step that propagates redness toward the root.
func (n *rbNode[K, V]) put(key K, value V) *rbNode[K, V] {
	if n == nil {
		return &rbNode[K, V]{key: key, value: value, red: true, size: 1}
	}
	switch {
	case key < n.key:
		n.left = n.left.put(key, value)
	case key > n.key:
		n.right = n.right.put(key, value)
	}
	if n.right.isRed() && !n.left.isRed() {
		n = n.rotateLeft()
	}
	if n.left.isRed() && n.left.left.isRed() {
		n = n.rotateRight()
	}
	if n.left.isRed() && n.right.isRed() {
		n.flipColors()
	}
	n.size = n.left.count() + n.right.count() + 1
	return n
}

// rotateLeft promotes the right child; ownership of its left subtree
// transfers to the demoted node. The promoted node inherits the old
// root's color and the link between the two turns red.
func (h *rbNode[K, V]) rotateLeft() *rbNode[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.red = h.red
	h.red = true
	x.size = h.size
	h.size = h.left.count() + h.right.count() + 1
	return x
}

// rotateRight is the mirror image, undoing a chain of two left-leaning
// red links.
func (h *rbNode[K, V]) rotateRight() *rbNode[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.red = h.red
	h.red = true
	x.size = h.size
	h.size = h.left.count() + h.right.count() + 1
	return x
}

// flipColors splits a temporary 4-node, pushing the red link one level
// up. Both children must be red when called.
func (h *rbNode[K, V]) flipColors() {
	h.red = true
	h.left.red = false
	h.right.red = false
}

func (n *rbNode[K, V]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

func (n *rbNode[K, V]) preOrder(out *[]Pair[K, V]) {
	if n == nil {
		return
	}
	*out = append(*out, Pair[K, V]{n.key, n.value})
	n.left.preOrder(out)
	n.right.preOrder(out)
}

func (n *rbNode[K, V]) inOrder(out *[]Pair[K, V]) {
	if n == nil {
		return
	}
	n.left.inOrder(out)
	*out = append(*out, Pair[K, V]{n.key, n.value})
	n.right.inOrder(out)
}

func (n *rbNode[K, V]) postOrder(out *[]Pair[K, V]) {
	if n == nil {
		return
	}
	n.left.postOrder(out)
	n.right.postOrder(out)
	*out = append(*out, Pair[K, V]{n.key, n.value})
}

func (n *rbNode[K, V]) levelOrder(out *[]Pair[K, V], level int) {
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

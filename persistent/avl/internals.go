package avl

/*
Remarks:
--------

- We use a programming-style reminiscent of functional programming: a node is
  never mutated after construction; every structural change builds fresh nodes
  along the spine from the change site up to the root, re-using all untouched
  subtrees by reference.

- A nil *node is the empty tree and has height 0.

- rebalance is the one place where the AVL invariant is restored. It is called
  on the way up from every insertion/deletion site, once per ancestor.

*/

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node holds one binding. Immutable after construction.
type node[K constraints.Ordered, V comparable] struct {
	left, right *node[K, V]
	key         K
	value       V
	height      int // cached: 1 + max(height(left), height(right))
}

// ht is the height of a possibly-empty subtree.
func (n *node[K, V]) ht() int {
	if n == nil {
		return 0
	}
	return n.height
}

// mk constructs a node with a freshly computed height. No balancing.
func mk[K constraints.Ordered, V comparable](left *node[K, V], k K, v V, right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		left:   left,
		key:    k,
		value:  v,
		right:  right,
		height: 1 + max(left.ht(), right.ht()),
	}
}

// rebalance joins left and right around binding ⟨k,v⟩ and restores the AVL
// invariant with a single or double rotation where necessary.
//
// Precondition: left and right each satisfy the AVL invariant, and their
// heights differ by at most 2 (at most one insertion or deletion happened
// below since the node was balanced). A wider gap means the tree is corrupt
// and is treated as a fatal internal-consistency failure.
func rebalance[K constraints.Ordered, V comparable](left *node[K, V], k K, v V, right *node[K, V]) *node[K, V] {
	hl, hr := left.ht(), right.ht()
	assertThat(hl <= hr+2 && hr <= hl+2,
		"height gap %d exceeds the single-update window, tree is corrupt", hl-hr)
	if hl > hr+1 {
		assertThat(left != nil, "height %d of empty subtree, tree is corrupt", hl)
		ll, lr := left.left, left.right
		if ll.ht() >= lr.ht() {
			tracer().Debugf("rebalance: single right rotation at ⟨%v⟩", k)
			return mk(ll, left.key, left.value, mk(lr, k, v, right))
		}
		assertThat(lr != nil, "left-right rotation through empty subtree, tree is corrupt")
		tracer().Debugf("rebalance: left-right rotation at ⟨%v⟩ through ⟨%v⟩", k, lr.key)
		return mk(
			mk(ll, left.key, left.value, lr.left),
			lr.key, lr.value,
			mk(lr.right, k, v, right),
		)
	}
	if hr > hl+1 {
		assertThat(right != nil, "height %d of empty subtree, tree is corrupt", hr)
		rl, rr := right.left, right.right
		if rr.ht() >= rl.ht() {
			tracer().Debugf("rebalance: single left rotation at ⟨%v⟩", k)
			return mk(mk(left, k, v, rl), right.key, right.value, rr)
		}
		assertThat(rl != nil, "right-left rotation through empty subtree, tree is corrupt")
		tracer().Debugf("rebalance: right-left rotation at ⟨%v⟩ through ⟨%v⟩", k, rl.key)
		return mk(
			mk(left, k, v, rl.left),
			rl.key, rl.value,
			mk(rl.right, right.key, right.value, rr),
		)
	}
	return mk(left, k, v, right)
}

// insert returns the subtree n with ⟨k,v⟩ bound, rebalancing every node on
// the way back up. An existing binding for k is replaced.
func insert[K constraints.Ordered, V comparable](n *node[K, V], k K, v V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: k, value: v, height: 1}
	}
	switch {
	case k == n.key:
		return &node[K, V]{left: n.left, key: k, value: v, right: n.right, height: n.height}
	case k < n.key:
		return rebalance(insert(n.left, k, v), n.key, n.value, n.right)
	default:
		return rebalance(n.left, n.key, n.value, insert(n.right, k, v))
	}
}

// remove returns the subtree n without a binding for k. Deleting an inner
// node substitutes the minimum binding of its right subtree (the successor).
func remove[K constraints.Ordered, V comparable](n *node[K, V], k K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch {
	case k == n.key:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := n.right.min()
		tracer().Debugf("remove: substituting ⟨%v⟩ for inner ⟨%v⟩", succ.key, k)
		return rebalance(n.left, succ.key, succ.value, removeMin(n.right))
	case k < n.key:
		return rebalance(remove(n.left, k), n.key, n.value, n.right)
	default:
		return rebalance(n.left, n.key, n.value, remove(n.right, k))
	}
}

// removeMin returns n without its leftmost binding.
func removeMin[K constraints.Ordered, V comparable](n *node[K, V]) *node[K, V] {
	assertThat(n != nil, "attempt to remove minimum of empty subtree")
	if n.left == nil {
		return n.right
	}
	return rebalance(removeMin(n.left), n.key, n.value, n.right)
}

// min walks to the leftmost node of a non-empty subtree.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max walks to the rightmost node of a non-empty subtree.
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// find descends by three-way comparison.
func (n *node[K, V]) find(k K) (*node[K, V], bool) {
	for n != nil {
		switch {
		case k == n.key:
			return n, true
		case k < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil, false
}

// --- In-order traversal ----------------------------------------------------

func (n *node[K, V]) forEach(f func(K, V)) {
	if n == nil {
		return
	}
	n.left.forEach(f)
	f(n.key, n.value)
	n.right.forEach(f)
}

// forAll short-circuits at the first violation.
func (n *node[K, V]) forAll(p func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.forAll(p) && p(n.key, n.value) && n.right.forAll(p)
}

// exists short-circuits at the first hit.
func (n *node[K, V]) exists(p func(K, V) bool) bool {
	if n == nil {
		return false
	}
	return n.left.exists(p) || p(n.key, n.value) || n.right.exists(p)
}

func (n *node[K, V]) count() int {
	if n == nil {
		return 0
	}
	return n.left.count() + 1 + n.right.count()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("avl: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package avl

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered/option"
	"github.com/npillmayer/ordered/persistent/list"
	"golang.org/x/exp/constraints"
)

// Map is a persistent ordered map from K to V. An empty instance is usable
// as an empty map:
//
//     m := avl.Map[int, string]{}
//     m = m.With(42, "Galaxy")
//     value, found := m.Find(42)   // returns "Galaxy"
//
// Map values are immutable; With and WithDeleted return new incarnations and
// leave the receiver usable and unchanged. A Map may therefore be shared and
// read concurrently without synchronization.
type Map[K constraints.Ordered, V comparable] struct {
	root *node[K, V]
}

// Binding is one key-value pair of a map.
type Binding[K constraints.Ordered, V comparable] struct {
	Key   K
	Value V
}

// Singleton returns a map holding the single binding ⟨k,v⟩.
func Singleton[K constraints.Ordered, V comparable](k K, v V) Map[K, V] {
	return Map[K, V]{root: &node[K, V]{key: k, value: v, height: 1}}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for the empty map.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Len returns the number of bindings of m. O(n).
func (m Map[K, V]) Len() int {
	return m.root.count()
}

// Height returns the height of the underlying tree; 0 for the empty map.
// With n bindings it is bounded by O(log n).
func (m Map[K, V]) Height() int {
	return m.root.ht()
}

// Contains is true iff m holds a binding for key.
func (m Map[K, V]) Contains(key K) bool {
	_, found := m.root.find(key)
	return found
}

// Find locates a key in a map, if present, and returns the value associated
// with the key. If key is not bound, the zero value for type V will be
// returned, together with found=false.
func (m Map[K, V]) Find(key K) (V, bool) {
	if n, found := m.root.find(key); found {
		return n.value, true
	}
	var none V
	return none, false
}

// Get is the Option-typed counterpart of Find.
func (m Map[K, V]) Get(key K) option.Option[V] {
	return option.Of(m.Find(key))
}

// With returns a copy of a map with a new key inserted, which is associated
// with value. If a binding for key is already present, the associated value
// will be replaced (in a new incarnation of the map, nevertheless). If the
// present value equals the new one, m is returned unchanged.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	if n, found := m.root.find(key); found && n.value == value {
		return m // no need for modification
	}
	tracer().Debugf("insert: key = %v", key)
	return Map[K, V]{root: insert(m.root, key, value)}
}

// WithDeleted returns a copy of a map with key deleted, if present, together
// with its associated value. If key is not found, m is returned unchanged.
func (m Map[K, V]) WithDeleted(key K) Map[K, V] {
	if _, found := m.root.find(key); !found {
		return m // no need for modification
	}
	tracer().Debugf("delete: key = %v", key)
	return Map[K, V]{root: remove(m.root, key)}
}

// ForEach calls f on every binding, in increasing key order.
func (m Map[K, V]) ForEach(f func(K, V)) {
	m.root.forEach(f)
}

// ForAll is true iff p holds for every binding. Visits bindings in increasing
// key order and stops at the first violation. Vacuously true for the empty map.
func (m Map[K, V]) ForAll(p func(K, V) bool) bool {
	return m.root.forAll(p)
}

// Exists is true iff p holds for at least one binding. Visits bindings in
// increasing key order and stops at the first hit.
func (m Map[K, V]) Exists(p func(K, V) bool) bool {
	return m.root.exists(p)
}

// Filter returns a map holding exactly the bindings of m satisfying p.
func (m Map[K, V]) Filter(p func(K, V) bool) Map[K, V] {
	var r Map[K, V]
	m.root.forEach(func(k K, v V) {
		if p(k, v) {
			r = r.With(k, v)
		}
	})
	return r
}

// Partition splits m into (bindings satisfying p, bindings not satisfying p)
// in a single traversal.
func (m Map[K, V]) Partition(p func(K, V) bool) (Map[K, V], Map[K, V]) {
	var yes, no Map[K, V]
	m.root.forEach(func(k K, v V) {
		if p(k, v) {
			yes = yes.With(k, v)
		} else {
			no = no.With(k, v)
		}
	})
	return yes, no
}

// Bindings returns all bindings of m as a list, in increasing key order.
func (m Map[K, V]) Bindings() list.List[Binding[K, V]] {
	l := list.List[Binding[K, V]]{}
	// walk right-to-left, consing onto the front, so the list ends up in
	// increasing key order
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		walk(n.right)
		l = list.Cons(Binding[K, V]{Key: n.key, Value: n.value}, l)
		walk(n.left)
	}
	walk(m.root)
	return l
}

// First returns the binding with the minimum key, if any. O(log n).
func (m Map[K, V]) First() option.Option[Binding[K, V]] {
	if m.root == nil {
		return option.None[Binding[K, V]]()
	}
	n := m.root.min()
	return option.Some(Binding[K, V]{Key: n.key, Value: n.value})
}

// Last returns the binding with the maximum key, if any. O(log n).
func (m Map[K, V]) Last() option.Option[Binding[K, V]] {
	if m.root == nil {
		return option.None[Binding[K, V]]()
	}
	n := m.root.max()
	return option.Some(Binding[K, V]{Key: n.key, Value: n.value})
}

// Peek returns some binding of m, if any, with no ordering guarantee (it
// happens to be the root binding). O(1).
func (m Map[K, V]) Peek() option.Option[Binding[K, V]] {
	if m.root == nil {
		return option.None[Binding[K, V]]()
	}
	return option.Some(Binding[K, V]{Key: m.root.key, Value: m.root.value})
}

func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	first := true
	m.root.forEach(func(k K, v V) {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v:%v", k, v)
		first = false
	})
	sb.WriteRune('}')
	return sb.String()
}

// --- Package-level operations ----------------------------------------------
//
// Operations which introduce additional type parameters cannot be methods in
// Go and live here as package-level functions.

// Fold folds f over the bindings of m in increasing key order, starting
// with zero.
func Fold[K constraints.Ordered, V comparable, A any](m Map[K, V], zero A, f func(A, K, V) A) A {
	acc := zero
	m.root.forEach(func(k K, v V) {
		acc = f(acc, k, v)
	})
	return acc
}

// Equal is true iff a and b hold equal bindings.
func Equal[K constraints.Ordered, V comparable](a, b Map[K, V]) bool {
	return list.Equal(a.Bindings(), b.Bindings())
}

// MapKeys returns a map with every key transformed by f, keeping values.
// If f maps two keys to the same image, the binding with the greater original
// key wins: bindings are folded in increasing original-key order and later
// ones overwrite earlier ones.
func MapKeys[K, W constraints.Ordered, V comparable](m Map[K, V], f func(K) W) Map[W, V] {
	var r Map[W, V]
	m.root.forEach(func(k K, v V) {
		r = r.With(f(k), v)
	})
	return r
}

// MapValues returns a map with every value transformed by f, keeping keys.
func MapValues[K constraints.Ordered, V, W comparable](m Map[K, V], f func(V) W) Map[K, W] {
	var r Map[K, W]
	m.root.forEach(func(k K, v V) {
		r = r.With(k, f(v))
	})
	return r
}

// MapBindings returns a map with every binding transformed by f. The
// collision policy of MapKeys applies.
func MapBindings[K constraints.Ordered, V comparable, W constraints.Ordered, X comparable](
	m Map[K, V], f func(K, V) (W, X)) Map[W, X] {
	var r Map[W, X]
	m.root.forEach(func(k K, v V) {
		r = r.With(f(k, v))
	})
	return r
}

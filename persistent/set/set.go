package set

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered/option"
	"github.com/npillmayer/ordered/persistent/avl"
	"github.com/npillmayer/ordered/persistent/list"
	"golang.org/x/exp/constraints"
)

// unit is the value type of the underlying map; elements are its keys.
type unit = struct{}

// Set is a persistent ordered set of elements of type V. An empty instance
// is usable as an empty set, i.e. this is legal:
//
//     s := set.Set[string]{}.With("a").With("b")
//
type Set[V constraints.Ordered] struct {
	m avl.Map[V, unit]
}

// Singleton returns a one-element set.
func Singleton[V constraints.Ordered](v V) Set[V] {
	return Set[V]{m: avl.Singleton(v, unit{})}
}

// New builds a set from vs. Duplicates collapse to a single element.
func New[V constraints.Ordered](vs ...V) Set[V] {
	var s Set[V]
	for _, v := range vs {
		s = s.With(v)
	}
	return s
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for the empty set.
func (s Set[V]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Len returns the number of elements of s.
func (s Set[V]) Len() int {
	return s.m.Len()
}

// Contains is true iff v is an element of s.
func (s Set[V]) Contains(v V) bool {
	return s.m.Contains(v)
}

// With returns a set with v added. s is unchanged.
func (s Set[V]) With(v V) Set[V] {
	return Set[V]{m: s.m.With(v, unit{})}
}

// WithDeleted returns a set with v removed, if present. If v is not an
// element, s is returned unchanged.
func (s Set[V]) WithDeleted(v V) Set[V] {
	return Set[V]{m: s.m.WithDeleted(v)}
}

// Union returns the set of elements contained in s or in other.
func (s Set[V]) Union(other Set[V]) Set[V] {
	tracer().Debugf("union of %d and %d elements", s.Len(), other.Len())
	r := other
	s.ForEach(func(v V) {
		r = r.With(v)
	})
	return r
}

// Intersection returns the set of elements contained in both s and other.
func (s Set[V]) Intersection(other Set[V]) Set[V] {
	var r Set[V]
	s.ForEach(func(v V) {
		if other.Contains(v) {
			r = r.With(v)
		}
	})
	return r
}

// Difference returns the set of elements contained in s but not in other.
func (s Set[V]) Difference(other Set[V]) Set[V] {
	var r Set[V]
	s.ForEach(func(v V) {
		if !other.Contains(v) {
			r = r.With(v)
		}
	})
	return r
}

// SubsetOf is true iff every element of s is an element of other.
func (s Set[V]) SubsetOf(other Set[V]) bool {
	return s.ForAll(other.Contains)
}

// ForEach calls f on every element, in increasing order.
func (s Set[V]) ForEach(f func(V)) {
	s.m.ForEach(func(v V, _ unit) {
		f(v)
	})
}

// ForAll is true iff p holds for every element. Stops at the first violation.
func (s Set[V]) ForAll(p func(V) bool) bool {
	return s.m.ForAll(func(v V, _ unit) bool {
		return p(v)
	})
}

// Exists is true iff p holds for at least one element. Stops at the first hit.
func (s Set[V]) Exists(p func(V) bool) bool {
	return s.m.Exists(func(v V, _ unit) bool {
		return p(v)
	})
}

// Filter returns the set of elements of s satisfying p.
func (s Set[V]) Filter(p func(V) bool) Set[V] {
	return Set[V]{m: s.m.Filter(func(v V, _ unit) bool {
		return p(v)
	})}
}

// Partition splits s into (elements satisfying p, elements not satisfying p)
// in a single traversal.
func (s Set[V]) Partition(p func(V) bool) (Set[V], Set[V]) {
	yes, no := s.m.Partition(func(v V, _ unit) bool {
		return p(v)
	})
	return Set[V]{m: yes}, Set[V]{m: no}
}

// Elements returns the elements of s as a list, in increasing order.
func (s Set[V]) Elements() list.List[V] {
	return list.Map(s.m.Bindings(), func(b avl.Binding[V, unit]) V {
		return b.Key
	})
}

// Min returns the minimum element of s, if any.
func (s Set[V]) Min() option.Option[V] {
	return element(s.m.First())
}

// Max returns the maximum element of s, if any.
func (s Set[V]) Max() option.Option[V] {
	return element(s.m.Last())
}

// Peek returns some element of s, if any, with no ordering guarantee. O(1).
func (s Set[V]) Peek() option.Option[V] {
	return element(s.m.Peek())
}

func element[V constraints.Ordered](b option.Option[avl.Binding[V, unit]]) option.Option[V] {
	return option.Map(func(b avl.Binding[V, unit]) V {
		return b.Key
	}, b)
}

func (s Set[V]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	first := true
	s.ForEach(func(v V) {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
		first = false
	})
	sb.WriteRune('}')
	return sb.String()
}

// --- Package-level operations ----------------------------------------------

// Equal is true iff a and b contain the same elements.
func Equal[V constraints.Ordered](a, b Set[V]) bool {
	return avl.Equal(a.m, b.m)
}

// Map returns the set of images of s under f. If f is not injective,
// colliding images collapse to a single element.
func Map[V, W constraints.Ordered](s Set[V], f func(V) W) Set[W] {
	return Set[W]{m: avl.MapKeys(s.m, f)}
}

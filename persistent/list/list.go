package list

import (
	"fmt"
	"strings"

	"github.com/ansel1/merry"
	merry2 "github.com/ansel1/merry/v2"
	"github.com/npillmayer/ordered/option"
)

// ErrEmptyCollection flags Head or Tail being called on the empty list.
// Errors returned by this package match it under merry.Is.
var ErrEmptyCollection = merry2.Sentinel("empty collection")

// List is an immutable chain of cons-cells. The zero value is the empty list,
// i.e. this is legal:
//
//     l := list.List[int]{}
//     l = list.Cons(7, l)
//
type List[T any] struct {
	head *cell[T]
}

// cell is a classic cons-cell. Cells are never mutated once a list holding
// them has been handed out.
type cell[T any] struct {
	car T
	cdr *cell[T]
}

// Empty returns the empty list for element type T.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Singleton returns a one-element list.
func Singleton[T any](x T) List[T] {
	return List[T]{head: &cell[T]{car: x}}
}

// New builds a list containing xs, in the given order.
func New[T any](xs ...T) List[T] {
	l := List[T]{}
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// Cons returns a list with x prepended to l. l is unchanged and shares its
// cells with the new list. O(1), no traversal.
func Cons[T any](x T, l List[T]) List[T] {
	return List[T]{head: &cell[T]{car: x, cdr: l.head}}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements of l.
func (l List[T]) Len() int {
	var n int
	for c := l.head; c != nil; c = c.cdr {
		n++
	}
	return n
}

// Head returns the front element of l. Calling Head on the empty list is an
// error (ErrEmptyCollection); check IsEmpty first to avoid it.
func (l List[T]) Head() (T, error) {
	if l.head == nil {
		var none T
		return none, merry.Here(ErrEmptyCollection)
	}
	return l.head.car, nil
}

// Tail returns l without its front element. Calling Tail on the empty list is
// an error (ErrEmptyCollection).
func (l List[T]) Tail() (List[T], error) {
	if l.head == nil {
		return l, merry.Here(ErrEmptyCollection)
	}
	return List[T]{head: l.head.cdr}, nil
}

// First returns the front element of l, if any. The non-failing counterpart
// of Head.
func (l List[T]) First() option.Option[T] {
	if l.head == nil {
		return option.None[T]()
	}
	return option.Some(l.head.car)
}

// ForEach calls f on every element, in list order.
func (l List[T]) ForEach(f func(T)) {
	for c := l.head; c != nil; c = c.cdr {
		f(c.car)
	}
}

// ForAll is true iff p holds for every element. Stops at the first violation.
// Vacuously true for the empty list.
func (l List[T]) ForAll(p func(T) bool) bool {
	for c := l.head; c != nil; c = c.cdr {
		if !p(c.car) {
			return false
		}
	}
	return true
}

// Exists is true iff p holds for at least one element. Stops at the first hit.
func (l List[T]) Exists(p func(T) bool) bool {
	for c := l.head; c != nil; c = c.cdr {
		if p(c.car) {
			return true
		}
	}
	return false
}

// Reverse returns a list with the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	r := List[T]{}
	for c := l.head; c != nil; c = c.cdr {
		r = Cons(c.car, r)
	}
	return r
}

func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('(')
	for c := l.head; c != nil; c = c.cdr {
		if c != l.head {
			sb.WriteRune(' ')
		}
		fmt.Fprintf(&sb, "%v", c.car)
	}
	sb.WriteRune(')')
	return sb.String()
}

// --- Package-level operations ----------------------------------------------
//
// Operations which introduce a second type parameter cannot be methods in Go
// and live here as package-level functions.

// Fold folds f over l left-to-right, starting with zero.
func Fold[T, A any](l List[T], zero A, f func(A, T) A) A {
	acc := zero
	for c := l.head; c != nil; c = c.cdr {
		acc = f(acc, c.car)
	}
	return acc
}

// FoldRight folds f over l right-to-left, starting with zero. Recursive; the
// call stack grows with the length of l.
func FoldRight[T, A any](l List[T], zero A, f func(T, A) A) A {
	return foldRight(l.head, zero, f)
}

func foldRight[T, A any](c *cell[T], zero A, f func(T, A) A) A {
	if c == nil {
		return zero
	}
	return f(c.car, foldRight(c.cdr, zero, f))
}

// Map returns the list of f applied to each element of l, order-preserving.
func Map[T, S any](l List[T], f func(T) S) List[S] {
	r := List[S]{}
	var last *cell[S]
	for c := l.head; c != nil; c = c.cdr {
		fresh := &cell[S]{car: f(c.car)}
		if last == nil {
			r.head = fresh
		} else {
			last.cdr = fresh // fresh cells, not yet shared
		}
		last = fresh
	}
	return r
}

// Contains is true iff x is an element of l.
func Contains[T comparable](l List[T], x T) bool {
	for c := l.head; c != nil; c = c.cdr {
		if c.car == x {
			return true
		}
	}
	return false
}

// Append returns a list with the elements of l2 following those of l1.
// Neither input is modified; the cells of l1 are rebuilt, the cells of l2 are
// shared. Cost is proportional to the length of l1.
func Append[T any](l1, l2 List[T]) List[T] {
	if l1.head == nil {
		return l2
	}
	tracer().Debugf("append: rebuilding %d cells", l1.Len())
	r := List[T]{}
	var last *cell[T]
	for c := l1.head; c != nil; c = c.cdr {
		fresh := &cell[T]{car: c.car}
		if last == nil {
			r.head = fresh
		} else {
			last.cdr = fresh
		}
		last = fresh
	}
	last.cdr = l2.head
	return r
}

// Equal is true iff l1 and l2 contain equal elements in equal order.
func Equal[T comparable](l1, l2 List[T]) bool {
	c, d := l1.head, l2.head
	for c != nil && d != nil {
		if c.car != d.car {
			return false
		}
		c, d = c.cdr, d.cdr
	}
	return c == nil && d == nil
}

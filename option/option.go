/*
Package option provides an explicit optional-value type.

Lookups in the persistent collections of this module distinguish between
"legitimately absent" and "must not happen". The former is modelled as an
Option, the latter as a panic. An Option is either Some(x) or None, and is
deconstructed with a Matcher in a switch statement:

    var v int
    switch m := opt.Match(); m {
    case m.Some(&v):
        // use v
    case m.None():
        // absent
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

// Option is a value of type T that may be absent.
type Option[T any] interface {
	Match() Matcher[T]
	// IsNone is true iff no value is present.
	IsNone() bool
	// OrElse returns the contained value, or def if none is present.
	OrElse(def T) T
	// Map applies f to the contained value, if present.
	Map(f func(T) T) Option[T]
}

type option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](x T) Option[T] {
	return option[T]{value: x, present: true}
}

// None is the absent value for type T.
func None[T any]() Option[T] {
	return option[T]{}
}

// Of bridges Go's comma-ok idiom to an Option: Of(v, true) is Some(v),
// Of(v, false) is None.
func Of[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

func (o option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

func (o option[T]) IsNone() bool {
	return !o.present
}

func (o option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o option[T]) Map(f func(T) T) Option[T] {
	if o.present {
		return Some(f(o.value))
	}
	return o
}

// Map applies f to the value contained in x, if any, possibly changing the
// value's type.
func Map[T, S any](f func(T) S, x Option[T]) Option[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return Some(f(v))
	case m.None():
	}
	return None[S]()
}

// AndThen chains a partial computation onto an optional value.
func AndThen[T, S any](f func(T) Option[S], x Option[T]) Option[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return f(v)
	case m.None():
	}
	return None[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher deconstructs an Option in a switch statement; see the package
// documentation for the pattern.
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

type matcher[T any] struct {
	o option[T]
}

func (om matcher[T]) Some(v *T) Matcher[T] {
	if om.o.present {
		*v = om.o.value
		return om
	}
	return nil
}

func (om matcher[T]) None() Matcher[T] {
	if !om.o.present {
		return om
	}
	return nil
}

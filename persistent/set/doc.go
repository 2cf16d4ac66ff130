/*
Package set implements a persistent (immutable) ordered set, derived from
the persistent map of package avl.

A set is a map from its elements to a unit value; every set operation is an
algebraic composition of map operations. Like its underlying map, a set is a
value: With and WithDeleted return new incarnations, old ones stay valid, and
any incarnation may be shared and read concurrently without synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.set'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.set")
}

/*
Package list implements a persistent (immutable) singly-linked list.

Lists are built from cons-cells. Cells are never mutated after creation,
therefore any number of lists may share a common suffix, and prepending to
a list leaves the original usable and unchanged:

    l := list.New(2, 3)
    m := list.Cons(1, l)     // (1 2 3); l still is (2 3)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.list'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.list")
}

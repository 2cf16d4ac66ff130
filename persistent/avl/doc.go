/*
Package avl implements a persistent (immutable) ordered map, backed by a
height-balanced binary search tree (AVL tree).

Every modifying operation returns a new map and leaves the receiver intact.
Old and new incarnations share all unchanged subtrees, which bounds the cost
of an update by the height of the tree, O(log n). Keys are kept in strict
increasing order; traversals visit bindings in key order.

An empty instance is usable as an empty map, i.e. this is legal:

    m := avl.Map[int, string]{}.With(1, "one")

A good introduction to AVL trees and their rebalancing rotations may be found
at https://en.wikipedia.org/wiki/AVL_tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.avl'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.avl")
}

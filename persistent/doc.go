/*
Package persistent is the parent for a family of persistent ordered
collections: a singly-linked list, an ordered map backed by a height-balanced
search tree, and an ordered set derived from the map.

Persistent data structures are immutable: every modification returns a new
incarnation and leaves the old one intact. They offer structural sharing,
which means that two incarnations which are mostly copies of each other share
most of the memory they take up. Updates therefore cost O(log n) for the map
and set, and O(k) for the k list cells actually rebuilt, never a full copy.

Because no incarnation is ever mutated, any of them may be shared freely
between goroutines and read concurrently without locks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

/*
Package ordmap offers ordered maps, i.e. maps which keep their keys sorted.

Ordered Maps

An ordered map associates unique keys with values, like a Go map does, but
keeps all keys sorted according to a strict ordering. This allows ordered
iteration in either direction, cheap access to the smallest and largest key,
and set algebra between maps built on the same ordering.

	m := ordmap.From(ordmap.P(1, "a"), ordmap.P(2, "b"), ordmap.P(3, "c"))
	m.Remove(2)
	fmt.Println(m) // {1:"a",3:"c"}

Maps are backed by a red-black tree (package rbtree), giving O(log n) point
operations:

	Operation       |   Map         |  Go map
	----------------+---------------+--------
	Get / Contains  |   O(log n)    |   O(1)
	Insert / Remove |   O(log n)    |   O(1)
	Front / Back    |   O(log n)    |   O(n)
	Ordered walk    |   O(n)        |   O(n log n)
	Union etc.      |   O(n+m)      |   O(n+m), unordered

Set algebra (Intersect, Union, SymmetricDifference, Difference, Compare) is
defined on keys and requires both maps to share the same order identity, see
rbtree.Config.Order.

Maps are not safe for concurrent use. Every mutation invalidates all cursors
and value references handed out before.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer with key 'ordmap'.
func T() tracing.Trace {
	return tracing.Select("ordmap")
}

// MapError is an error type for the ordmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged whenever a key required to be present is missing.
const ErrKeyNotFound = MapError("key not found")

// ErrEmptyMap is flagged when accessing the front or back of an empty map.
const ErrEmptyMap = MapError("map is empty")

// ErrIncompatibleOrder is flagged when combining maps whose keys are ordered
// by different comparators.
const ErrIncompatibleOrder = MapError("maps have incompatible key orders")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

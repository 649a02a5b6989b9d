/*
Package rbtree provides the red-black tree engine backing ordered maps.

The package is the structural core of ordmap: it owns all nodes of a tree,
keeps them balanced and offers ordered traversal. It is intentionally narrow.
Dictionary-style conveniences and set algebra live in the parent package.

Structure:
  - nodes are held in an arena owned by the tree and linked by slot indices,
  - slot 0 of every arena is the sentinel: black, self-linked, used both as the
    universal leaf and as the parent of the root,
  - the caller supplies a strict "less" comparator and optionally an
    allocator capability which is consulted for every single node,
  - insertion and deletion restore the red-black properties with the
    classic fixup passes (no recursion, O(log n)),
  - cursors and iterator functions walk in ascending or descending order,
  - `Check` validates every structural invariant and is meant for tests.

Trees are not safe for concurrent use. Any mutation invalidates every
cursor and every value reference obtained from the tree before.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

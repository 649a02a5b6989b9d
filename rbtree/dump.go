package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Labeler renders a node's key and value for diagnostic output.
type Labeler[K, V any] func(key K, value V) string

func defaultLabel[K, V any](key K, _ V) string {
	return fmt.Sprintf("%v", key)
}

// walkPre visits all nodes in pre-order. side is 'L' or 'R' for the position
// below the parent, and 0 for the root.
func (t *Tree[K, V]) walkPre(fn func(r ref, depth int, side byte)) {
	var walk func(r ref, depth int, side byte)
	walk = func(r ref, depth int, side byte) {
		if r == sentinel {
			return
		}
		fn(r, depth, side)
		walk(t.nodes[r].left, depth+1, 'L')
		walk(t.nodes[r].right, depth+1, 'R')
	}
	walk(t.root, 0, 0)
}

// dumpLine formats one node of a structural dump, without the color tag.
func (t *Tree[K, V]) dumpLine(r ref, depth int, side byte, label Labeler[K, V]) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("    ", depth))
	if side != 0 {
		b.WriteByte(side)
		b.WriteString(": ")
	}
	b.WriteString(label(t.nodes[r].key, t.nodes[r].value))
	return b.String()
}

// Dump writes the structure of the tree to w, one node per line in
// pre-order. Each line is indented by the node's depth and shows the side
// below its parent, the node label and its color:
//
//	2 (black)
//	    L: 1 (red)
//	    R: 3 (red)
//
// If label is nil, keys are printed with %v.
func (t *Tree[K, V]) Dump(w io.Writer, label Labeler[K, V]) {
	if label == nil {
		label = defaultLabel[K, V]
	}
	if t.IsEmpty() {
		io.WriteString(w, "(empty)\n")
		return
	}
	t.walkPre(func(r ref, depth int, side byte) {
		fmt.Fprintf(w, "%s (%s)\n", t.dumpLine(r, depth, side, label), t.nodes[r].color)
	})
}

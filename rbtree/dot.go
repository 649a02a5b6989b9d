package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Leaf pointers to the sentinel are drawn as small
// black dots.
func (t *Tree[K, V]) ToDot(w io.Writer, label Labeler[K, V]) {
	if label == nil {
		label = defaultLabel[K, V]
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	nilid := 0 // ids for sentinel leaves, above all slot numbers
	if t != nil {
		nilid = len(t.nodes)
	}
	t.walkPre(func(r ref, _ int, _ byte) {
		n := &t.nodes[r]
		fmt.Fprintf(&nodelist, "\"%d\" [label=%q %s];\n", r, label(n.key, n.value), nodeDotStyles(n.color))
		for _, child := range [2]ref{n.left, n.right} {
			if child == sentinel {
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", r, nilid)
				nilid++
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", r, child)
		}
	})
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=circle,fixedsize=true,width=.1]"
}

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=circle"
	if c == red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#cccccc\""
	}
	return s
}

package ordmap

import (
	"fmt"
	"io"
	"strings"
)

// String renders all entries in ascending key order as
//
//	{1:"a",3:"c"}
//
// with keys and values formatted by %#v.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%#v:%#v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}

func keyLabel[K, V any](key K, _ V) string {
	return fmt.Sprintf("%#v", key)
}

// Dump writes the tree structure of m to w, one node per line, indented by
// depth (for debugging purposes).
func (m *Map[K, V]) Dump(w io.Writer) {
	m.readable().Dump(w, keyLabel[K, V])
}

// DumpConsole writes the tree structure of m to stdout, highlighting red
// nodes if stdout is a terminal.
func (m *Map[K, V]) DumpConsole() {
	m.readable().DumpConsole(keyLabel[K, V])
}

// Dot outputs the tree structure of m in Graphviz DOT format.
func (m *Map[K, V]) Dot(w io.Writer) {
	m.readable().ToDot(w, keyLabel[K, V])
}

// HTML renders the tree structure of m as nested HTML lists.
func (m *Map[K, V]) HTML(w io.Writer) error {
	return m.readable().WriteHTML(w, keyLabel[K, V])
}

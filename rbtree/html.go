package rbtree

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML renders the structure of the tree as nested HTML lists.
// Every node becomes an <li> with class "red" or "black" and a "data-side"
// attribute of "L" or "R"; missing children of inner nodes are rendered as
// empty <li class="nil">. The outermost element is <ul class="rbtree">.
func (t *Tree[K, V]) WriteHTML(w io.Writer, label Labeler[K, V]) error {
	if label == nil {
		label = defaultLabel[K, V]
	}
	root := element(atom.Ul, "rbtree")
	if !t.IsEmpty() {
		root.AppendChild(t.htmlNode(t.root, "", label))
	}
	return html.Render(w, root)
}

func (t *Tree[K, V]) htmlNode(r ref, side string, label Labeler[K, V]) *html.Node {
	n := &t.nodes[r]
	if r == sentinel {
		li := element(atom.Li, "nil")
		li.Attr = append(li.Attr, html.Attribute{Key: "data-side", Val: side})
		return li
	}
	li := element(atom.Li, n.color.String())
	if side != "" {
		li.Attr = append(li.Attr, html.Attribute{Key: "data-side", Val: side})
	}
	li.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.key, n.value)})
	if n.left != sentinel || n.right != sentinel {
		ul := element(atom.Ul, "")
		ul.AppendChild(t.htmlNode(n.left, "L", label))
		ul.AppendChild(t.htmlNode(n.right, "R", label))
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

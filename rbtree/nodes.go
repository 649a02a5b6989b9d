package rbtree

// color is the inline red/black tag of a node. The zero value is black,
// which makes a zeroed slot a valid sentinel.
type color uint8

const (
	black color = iota
	red
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// ref identifies a node by its slot in the tree's arena.
type ref uint32

// sentinel is the slot of the shared leaf/root-parent node of every tree.
const sentinel ref = 0

type node[K, V any] struct {
	key    K
	value  V
	color  color
	left   ref
	right  ref
	parent ref
}

// nd returns the node at slot r. The pointer must not be held across an
// allocation, as the arena may be re-allocated.
func (t *Tree[K, V]) nd(r ref) *node[K, V] {
	return &t.nodes[r]
}

func (t *Tree[K, V]) isRed(r ref) bool {
	return t.nodes[r].color == red
}

func (t *Tree[K, V]) minimum(r ref) ref {
	for t.nodes[r].left != sentinel {
		r = t.nodes[r].left
	}
	return r
}

func (t *Tree[K, V]) maximum(r ref) ref {
	for t.nodes[r].right != sentinel {
		r = t.nodes[r].right
	}
	return r
}

// successor returns the in-order successor of r, or the sentinel if r holds
// the maximum key.
func (t *Tree[K, V]) successor(r ref) ref {
	if t.nodes[r].right != sentinel {
		return t.minimum(t.nodes[r].right)
	}
	p := t.nodes[r].parent
	for p != sentinel && r == t.nodes[p].right {
		r = p
		p = t.nodes[p].parent
	}
	return p
}

// predecessor returns the in-order predecessor of r, or the sentinel if r
// holds the minimum key.
func (t *Tree[K, V]) predecessor(r ref) ref {
	if t.nodes[r].left != sentinel {
		return t.maximum(t.nodes[r].left)
	}
	p := t.nodes[r].parent
	for p != sentinel && r == t.nodes[p].left {
		r = p
		p = t.nodes[p].parent
	}
	return p
}

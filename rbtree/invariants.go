package rbtree

// Check validates the structural tree invariants:
//
//   - the sentinel is black and links to itself,
//   - the root of a non-empty tree is black and has the sentinel as parent,
//   - child and parent links agree,
//   - no red node has a red child,
//   - every path from a node to a leaf has the same number of black nodes,
//   - keys are strictly ascending in-order,
//   - the size equals the number of reachable nodes.
//
// This checker is intended for tests. Any error it returns is an assertion
// failure marked as ErrCorruptTree.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return corrupt("nil tree")
	}
	s := t.nodes[sentinel]
	if s.color != black {
		return corrupt("sentinel is red")
	}
	if s.left != sentinel || s.right != sentinel || s.parent != sentinel {
		return corrupt("sentinel links (%d,%d,%d) do not point to itself", s.left, s.right, s.parent)
	}
	if t.root == sentinel {
		if t.size != 0 {
			return corrupt("empty tree has size %d", t.size)
		}
		return nil
	}
	if t.nodes[t.root].color != black {
		return corrupt("root is red")
	}
	if t.nodes[t.root].parent != sentinel {
		return corrupt("root has parent %d", t.nodes[t.root].parent)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return corrupt("size mismatch (%d reachable != %d)", count, t.size)
	}
	return t.checkOrder()
}

// checkNode validates the subtree at r and returns its node count and black
// height (the sentinel counting as one black node).
func (t *Tree[K, V]) checkNode(r ref) (count int, blackHeight int, err error) {
	if r == sentinel {
		return 0, 1, nil
	}
	if int(r) >= len(t.nodes) {
		return 0, 0, corrupt("node ref %d out of arena bounds", r)
	}
	n := &t.nodes[r]
	for _, child := range [2]ref{n.left, n.right} {
		if child == sentinel {
			continue
		}
		if int(child) >= len(t.nodes) || t.nodes[child].parent != r {
			return 0, 0, corrupt("child %d of node %d does not link back", child, r)
		}
		if n.color == red && t.nodes[child].color == red {
			return 0, 0, corrupt("red node %d has red child %d", r, child)
		}
	}
	lcount, lheight, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, corrupt("node %d has unequal black heights (%d != %d)", r, lheight, rheight)
	}
	if n.color == black {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}

func (t *Tree[K, V]) checkOrder() error {
	prev := sentinel
	for x := t.minimum(t.root); x != sentinel; x = t.successor(x) {
		if prev != sentinel && !t.cfg.Less(t.nodes[prev].key, t.nodes[x].key) {
			return corrupt("keys of nodes %d and %d are not strictly ascending", prev, x)
		}
		prev = x
	}
	return nil
}

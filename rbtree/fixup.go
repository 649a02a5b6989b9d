package rbtree

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *Tree[K, V]) rotateLeft(x ref) {
	y := t.nodes[x].right
	b := t.nodes[y].left
	t.nodes[x].right = b
	if b != sentinel {
		t.nodes[b].parent = x
	}
	t.replaceChild(t.nodes[x].parent, x, y)
	t.nodes[y].left = x
	t.nodes[x].parent = y
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *Tree[K, V]) rotateRight(y ref) {
	x := t.nodes[y].left
	b := t.nodes[x].right
	t.nodes[y].left = b
	if b != sentinel {
		t.nodes[b].parent = y
	}
	t.replaceChild(t.nodes[y].parent, y, x)
	t.nodes[x].right = y
	t.nodes[y].parent = x
}

// replaceChild makes x take the place of old below p.
// x's parent link is set unconditionally, even for the sentinel.
func (t *Tree[K, V]) replaceChild(p, old, x ref) {
	switch {
	case p == sentinel:
		t.root = x
	case t.nodes[p].left == old:
		t.nodes[p].left = x
	default:
		t.nodes[p].right = x
	}
	t.nodes[x].parent = p
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
func (t *Tree[K, V]) transplant(u, v ref) {
	t.replaceChild(t.nodes[u].parent, u, v)
}

// insertFixup restores the red-black properties after z has been linked as a
// red leaf. Only the red-red property may be violated, at z and its parent;
// every iteration either fixes it or moves it up two levels.
func (t *Tree[K, V]) insertFixup(z ref) {
	for t.isRed(t.nodes[z].parent) {
		p := t.nodes[z].parent
		g := t.nodes[p].parent // p is red, so it is not the root
		if p == t.nodes[g].left {
			u := t.nodes[g].right
			if t.isRed(u) { // case 1: recolor, move up
				t.nodes[p].color = black
				t.nodes[u].color = black
				t.nodes[g].color = red
				z = g
				continue
			}
			if z == t.nodes[p].right { // case 2: inner child
				z = p
				t.rotateLeft(z)
				p = t.nodes[z].parent
			}
			t.nodes[p].color = black // case 3: outer child
			t.nodes[g].color = red
			t.rotateRight(g)
		} else {
			u := t.nodes[g].left
			if t.isRed(u) {
				t.nodes[p].color = black
				t.nodes[u].color = black
				t.nodes[g].color = red
				z = g
				continue
			}
			if z == t.nodes[p].left {
				z = p
				t.rotateRight(z)
				p = t.nodes[z].parent
			}
			t.nodes[p].color = black
			t.nodes[g].color = red
			t.rotateLeft(g)
		}
	}
	t.nodes[t.root].color = black
}

// deleteFixup resolves the black deficiency ("double black") at x after a
// black node has been spliced out. x may be the sentinel, in which case its
// parent link has been set by transplant.
func (t *Tree[K, V]) deleteFixup(x ref) {
	for x != t.root && !t.isRed(x) {
		p := t.nodes[x].parent
		if x == t.nodes[p].left {
			w := t.nodes[p].right
			if t.isRed(w) { // case 1: red sibling
				t.nodes[w].color = black
				t.nodes[p].color = red
				t.rotateLeft(p)
				w = t.nodes[p].right
			}
			if !t.isRed(t.nodes[w].left) && !t.isRed(t.nodes[w].right) { // case 2
				t.nodes[w].color = red
				x = p
				continue
			}
			if !t.isRed(t.nodes[w].right) { // case 3: near child red
				t.nodes[t.nodes[w].left].color = black
				t.nodes[w].color = red
				t.rotateRight(w)
				w = t.nodes[p].right
			}
			t.nodes[w].color = t.nodes[p].color // case 4: far child red
			t.nodes[p].color = black
			t.nodes[t.nodes[w].right].color = black
			t.rotateLeft(p)
			x = t.root
		} else {
			w := t.nodes[p].left
			if t.isRed(w) {
				t.nodes[w].color = black
				t.nodes[p].color = red
				t.rotateRight(p)
				w = t.nodes[p].left
			}
			if !t.isRed(t.nodes[w].left) && !t.isRed(t.nodes[w].right) {
				t.nodes[w].color = red
				x = p
				continue
			}
			if !t.isRed(t.nodes[w].left) {
				t.nodes[t.nodes[w].right].color = black
				t.nodes[w].color = red
				t.rotateLeft(w)
				w = t.nodes[p].left
			}
			t.nodes[w].color = t.nodes[p].color
			t.nodes[p].color = black
			t.nodes[t.nodes[w].left].color = black
			t.rotateRight(p)
			x = t.root
		}
	}
	t.nodes[x].color = black
}

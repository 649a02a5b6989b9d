package rbtree

// Cursor is a position within a tree's in-order sequence. The position
// past either end of the sequence is the end cursor, represented by the
// sentinel.
//
// Cursors are comparable: a cursor has run off the sequence iff it equals
// End(). Any mutation of the tree invalidates all of its cursors.
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	at   ref
}

// First returns a cursor at the smallest key, or End() for an empty tree.
func (t *Tree[K, V]) First() Cursor[K, V] {
	if t.IsEmpty() {
		return t.End()
	}
	return Cursor[K, V]{tree: t, at: t.minimum(t.root)}
}

// Last returns a cursor at the largest key, or End() for an empty tree.
func (t *Tree[K, V]) Last() Cursor[K, V] {
	if t.IsEmpty() {
		return t.End()
	}
	return Cursor[K, V]{tree: t, at: t.maximum(t.root)}
}

// End returns the end cursor of t.
func (t *Tree[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{tree: t, at: sentinel}
}

// Seek returns a cursor at key, or End() if key is not present.
func (t *Tree[K, V]) Seek(key K) Cursor[K, V] {
	x, _ := t.find(key)
	return Cursor[K, V]{tree: t, at: x}
}

// Valid reports whether the cursor is positioned at a key.
func (c Cursor[K, V]) Valid() bool {
	return c.tree != nil && c.at != sentinel
}

// Key returns the key at the cursor. Calling Key on the end cursor is a
// programming error.
func (c Cursor[K, V]) Key() K {
	assert(c.Valid(), "cursor: key of end cursor")
	return c.tree.nodes[c.at].key
}

// Value returns the value at the cursor. Calling Value on the end cursor is a
// programming error.
func (c Cursor[K, V]) Value() V {
	assert(c.Valid(), "cursor: value of end cursor")
	return c.tree.nodes[c.at].value
}

// Next returns a cursor at the following key, or End() after the largest key.
func (c Cursor[K, V]) Next() Cursor[K, V] {
	assert(c.Valid(), "cursor: advancing end cursor")
	return Cursor[K, V]{tree: c.tree, at: c.tree.successor(c.at)}
}

// Prev returns a cursor at the preceding key, or End() before the smallest key.
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	assert(c.Valid(), "cursor: retreating end cursor")
	return Cursor[K, V]{tree: c.tree, at: c.tree.predecessor(c.at)}
}

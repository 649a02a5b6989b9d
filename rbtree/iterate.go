package rbtree

import "iter"

// ForEach calls fn for every key in ascending order.
func (t *Tree[K, V]) ForEach(fn func(key K, value V)) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for x := t.minimum(t.root); x != sentinel; x = t.successor(x) {
		fn(t.nodes[x].key, t.nodes[x].value)
	}
}

// ForEachReverse calls fn for every key in descending order.
func (t *Tree[K, V]) ForEachReverse(fn func(key K, value V)) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for x := t.maximum(t.root); x != sentinel; x = t.predecessor(x) {
		fn(t.nodes[x].key, t.nodes[x].value)
	}
}

// All returns an iterator over all key/value pairs in ascending key order.
//
// The tree must not be mutated while iterating.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.IsEmpty() {
			return
		}
		for x := t.minimum(t.root); x != sentinel; x = t.successor(x) {
			if !yield(t.nodes[x].key, t.nodes[x].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all key/value pairs in descending key
// order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.IsEmpty() {
			return
		}
		for x := t.maximum(t.root); x != sentinel; x = t.predecessor(x) {
			if !yield(t.nodes[x].key, t.nodes[x].value) {
				return
			}
		}
	}
}

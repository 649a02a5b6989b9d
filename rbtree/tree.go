package rbtree

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Tree is a red-black tree mapping keys K to values V, ordered by the
// comparator of its Config.
//
// All nodes are kept in an arena owned by the tree. Slot 0 of the arena is the
// sentinel, so a tree created by New is never without nodes; it is empty iff
// the root is the sentinel.
type Tree[K, V any] struct {
	cfg   Config[K]
	nodes []node[K, V] // nodes[0] is the sentinel
	free  []ref        // recycled slots
	root  ref
	size  int
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K, V]{cfg: cfg}
	t.reset()
	return t, nil
}

// reset drops the arena, leaving a fresh sentinel.
func (t *Tree[K, V]) reset() {
	t.nodes = make([]node[K, V], 1, 16)
	t.free = nil
	t.root = sentinel
	t.size = 0
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Order returns the order identity of the tree's comparator.
func (t *Tree[K, V]) Order() string {
	return t.cfg.Order
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == sentinel
}

// Height returns the length of the longest path from the root to a leaf,
// counted in nodes. An empty tree has height 0.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	var height func(ref) int
	height = func(r ref) int {
		if r == sentinel {
			return 0
		}
		return 1 + max(height(t.nodes[r].left), height(t.nodes[r].right))
	}
	return height(t.root)
}

// find locates the node holding key. It never reports the sentinel as a hit.
func (t *Tree[K, V]) find(key K) (ref, bool) {
	x := t.root
	for x != sentinel {
		n := &t.nodes[x]
		switch {
		case t.cfg.Less(key, n.key):
			x = n.left
		case t.cfg.Less(n.key, key):
			x = n.right
		default:
			return x, true
		}
	}
	return sentinel, false
}

// Get returns the value stored for key.
func (t *Tree[K, V]) Get(key K) (value V, ok bool) {
	if t == nil {
		return
	}
	if x, found := t.find(key); found {
		return t.nodes[x].value, true
	}
	return
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	if t == nil {
		return false
	}
	_, found := t.find(key)
	return found
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.IsEmpty() {
		return
	}
	n := t.nd(t.minimum(t.root))
	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if t.IsEmpty() {
		return
	}
	n := t.nd(t.maximum(t.root))
	return n.key, n.value, true
}

// Put stores value for key. If key is already present, its value is
// overwritten in place and inserted is false.
//
// If the allocator refuses a new node, the tree is left unchanged and the
// allocator's error is returned.
func (t *Tree[K, V]) Put(key K, value V) (inserted bool, err error) {
	_, inserted, err = t.Slot(key, value, true)
	return
}

// Slot locates the value slot for key, inserting key with value if it is
// absent. For a present key, the stored value is replaced by value only if
// overwrite is set.
//
// The returned pointer is valid until the next mutation of the tree.
func (t *Tree[K, V]) Slot(key K, value V, overwrite bool) (slot *V, inserted bool, err error) {
	y := sentinel
	x := t.root
	left := false
	for x != sentinel {
		y = x
		n := &t.nodes[x]
		switch {
		case t.cfg.Less(key, n.key):
			x, left = n.left, true
		case t.cfg.Less(n.key, key):
			x, left = n.right, false
		default:
			if overwrite {
				n.value = value
			}
			return &n.value, false, nil
		}
	}
	z, err := t.alloc(key, value)
	if err != nil {
		return nil, false, err
	}
	t.nodes[z].parent = y
	switch {
	case y == sentinel:
		t.root = z
	case left:
		t.nodes[y].left = z
	default:
		t.nodes[y].right = z
	}
	t.size++
	t.insertFixup(z)
	// rotations relink nodes but never move keys, z still holds key
	return &t.nodes[z].value, true, nil
}

// Appender inserts keys known to arrive in strictly ascending order, all of
// them larger than the keys already in the tree. Every key is linked below
// the previous maximum without a search. As red-black insertion rebalances
// in amortized constant time, building a tree of n keys this way is O(n).
//
// An Appender is invalidated by any other mutation of its tree.
type Appender[K, V any] struct {
	tree *Tree[K, V]
	last ref // current maximum
}

// Appender returns an appender positioned behind the largest key of t.
func (t *Tree[K, V]) Appender() *Appender[K, V] {
	return &Appender[K, V]{tree: t, last: t.maximum(t.root)}
}

// Append inserts key with value behind the current maximum. Appending a key
// not larger than every key of the tree is a programming error.
//
// If the allocator refuses a new node, the tree is left unchanged and the
// allocator's error is returned.
func (a *Appender[K, V]) Append(key K, value V) error {
	t := a.tree
	assert(a.last == sentinel || t.cfg.Less(t.nodes[a.last].key, key),
		"appender: keys not in strictly ascending order")
	z, err := t.alloc(key, value)
	if err != nil {
		return err
	}
	t.nodes[z].parent = a.last
	if a.last == sentinel {
		t.root = z
	} else {
		t.nodes[a.last].right = z
	}
	t.size++
	t.insertFixup(z)
	a.last = z
	return nil
}

// Delete removes key from the tree and reports whether it was present.
//
// A node with two children is not unlinked itself: its key and value are
// replaced by those of its in-order successor, which is unlinked instead.
func (t *Tree[K, V]) Delete(key K) bool {
	if t == nil {
		return false
	}
	z, found := t.find(key)
	if !found {
		return false
	}
	y := z
	if t.nodes[z].left != sentinel && t.nodes[z].right != sentinel {
		y = t.minimum(t.nodes[z].right)
	}
	// y has at most one child, which is x (possibly the sentinel)
	x := t.nodes[y].left
	if x == sentinel {
		x = t.nodes[y].right
	}
	spliced := t.nodes[y].color
	t.transplant(y, x)
	if y != z {
		t.nodes[z].key = t.nodes[y].key
		t.nodes[z].value = t.nodes[y].value
	}
	if spliced == black {
		t.deleteFixup(x)
	}
	t.nodes[sentinel] = node[K, V]{}
	t.release(y)
	t.size--
	return true
}

// Clear removes all keys. Nodes are destroyed in post-order.
func (t *Tree[K, V]) Clear() {
	if t == nil || t.root == sentinel {
		return
	}
	tracer().Debugf("rbtree: clearing %d nodes", t.size)
	var destroy func(ref)
	destroy = func(r ref) {
		if r == sentinel {
			return
		}
		destroy(t.nodes[r].left)
		destroy(t.nodes[r].right)
		t.release(r)
	}
	destroy(t.root)
	t.reset()
}

// Clone returns a deep copy of the tree, sharing the configuration.
// Every copied node is drawn from the allocator; if it refuses, no copy is
// made and the error is returned.
func (t *Tree[K, V]) Clone() (*Tree[K, V], error) {
	if t == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "nil tree")
	}
	for i := 0; i < t.size; i++ {
		if err := t.cfg.Allocator.Allocate(); err != nil {
			for ; i > 0; i-- {
				t.cfg.Allocator.Release()
			}
			return nil, err
		}
	}
	tracer().Debugf("rbtree: cloning %d nodes", t.size)
	return &Tree[K, V]{
		cfg:   t.cfg,
		nodes: slices.Clone(t.nodes),
		free:  slices.Clone(t.free),
		root:  t.root,
		size:  t.size,
	}, nil
}

// Move transfers all nodes to a new tree and leaves t empty. Nodes are
// handed over, not copied, so the allocator is not involved.
func (t *Tree[K, V]) Move() *Tree[K, V] {
	moved := *t
	t.reset()
	return &moved
}

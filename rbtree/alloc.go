package rbtree

import (
	"github.com/cockroachdb/errors"
)

// Allocator is the capability a tree consults before it creates a node and
// after it has destroyed one. Calls are always for a single node.
//
// Allocate returns an error to refuse the allocation; the tree then leaves
// its structure untouched and reports the error to its caller.
type Allocator interface {
	Allocate() error
	Release()
}

// Budget is an Allocator limiting the number of live nodes. A Budget may be
// shared between trees, which then draw from a common limit. Budget is not
// safe for concurrent use.
type Budget struct {
	max   int
	inUse int
}

// NewBudget creates an allocator granting at most max live nodes.
func NewBudget(max int) *Budget {
	return &Budget{max: max}
}

// Allocate is part of interface Allocator.
func (b *Budget) Allocate() error {
	if b.inUse >= b.max {
		return errors.Wrapf(ErrAllocation, "budget of %d nodes exhausted", b.max)
	}
	b.inUse++
	return nil
}

// Release is part of interface Allocator.
func (b *Budget) Release() {
	assert(b.inUse > 0, "budget released more nodes than allocated")
	b.inUse--
}

// InUse returns the number of nodes currently drawn from the budget.
func (b *Budget) InUse() int { return b.inUse }

// Max returns the limit of the budget.
func (b *Budget) Max() int { return b.max }

// unbounded is the allocator of trees configured without one.
type unbounded struct{}

func (unbounded) Allocate() error { return nil }
func (unbounded) Release()        {}

// --- Arena -----------------------------------------------------------------

// alloc creates a detached red node in a free slot.
func (t *Tree[K, V]) alloc(key K, value V) (ref, error) {
	if err := t.cfg.Allocator.Allocate(); err != nil {
		tracer().Infof("rbtree: allocation refused: %v", err)
		return sentinel, err
	}
	var r ref
	if index := len(t.free) - 1; index >= 0 {
		r = t.free[index]
		t.free = t.free[:index]
	} else {
		t.nodes = append(t.nodes, node[K, V]{})
		r = ref(len(t.nodes) - 1)
	}
	t.nodes[r] = node[K, V]{
		key:    key,
		value:  value,
		color:  red,
		left:   sentinel,
		right:  sentinel,
		parent: sentinel,
	}
	return r, nil
}

// release destroys the node at r and puts its slot on the free list.
func (t *Tree[K, V]) release(r ref) {
	assert(r != sentinel, "attempt to release the sentinel")
	t.nodes[r] = node[K, V]{} // clear to allow GC of key and value
	t.free = append(t.free, r)
	t.cfg.Allocator.Release()
}

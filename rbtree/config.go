package rbtree

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Config configures a red-black tree.
type Config[K any] struct {
	// Less reports whether a strictly precedes b. It has to be a strict total
	// order over K and must not change during the lifetime of a tree.
	Less func(a, b K) bool
	// Order names the ordering established by Less. Trees with equal Order
	// strings are considered to be ordered by the same comparator, which is
	// a precondition for merging them.
	Order string
	// Allocator, if set, is consulted for every single node created or
	// destroyed. A nil Allocator never refuses.
	Allocator Allocator
}

// NaturalOrder returns a configuration ordering keys by Go's `<` operator.
func NaturalOrder[K constraints.Ordered]() Config[K] {
	var k K
	return Config[K]{
		Less:  func(a, b K) bool { return a < b },
		Order: fmt.Sprintf("natural:%T", k),
	}
}

// normalized fills in defaults for unset optional fields.
func (cfg Config[K]) normalized() Config[K] {
	if cfg.Allocator == nil {
		cfg.Allocator = unbounded{}
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Less == nil {
		return errors.Wrap(ErrInvalidConfig, "less comparator is required")
	}
	return nil
}

// Compatible reports whether two configurations establish the same order.
func (cfg Config[K]) Compatible(other Config[K]) bool {
	return cfg.Order == other.Order
}

package rbtree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrAllocation signals that the allocator refused to hand out a node.
	ErrAllocation = errors.New("rbtree: node allocation refused")
	// ErrCorruptTree signals a breach of the red-black invariants.
	// It can only be caused by a defect in this package.
	ErrCorruptTree = errors.New("rbtree: corrupt tree")
)

// corrupt creates an assertion failure for an invariant breach found by Check.
// The result matches ErrCorruptTree with errors.Is.
func corrupt(format string, args ...interface{}) error {
	return errors.WithAssertionFailure(errors.Wrapf(ErrCorruptTree, format, args...))
}

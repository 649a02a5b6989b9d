package ordmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordmap/rbtree"
	"golang.org/x/exp/constraints"
)

// Map is a map from keys K to values V with keys kept in ascending order.
//
// Maps have to be created by one of the constructors, which fix the
// ordering of keys for the lifetime of the map. A nil *Map, like a nil Go
// map, can be read but not written and contains no entries. Set operations
// take their ordering from the receiver, which therefore must not be nil;
// a nil argument is treated as an empty map.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V]
	cast *caster.Caster // broadcaster for change events, nil until first Watch
}

// Pair is a key/value pair, used to construct maps from literal lists.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// P is a shortcut for creating a Pair.
func P[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// New creates an empty map ordered by less, which has to be a strict total
// order over K. The map's order identity is empty; it is compatible for set
// algebra with every other map of empty order identity. Use NewWithConfig to
// name an ordering.
func New[K, V any](less func(a, b K) bool) *Map[K, V] {
	m, err := NewWithConfig[K, V](rbtree.Config[K]{Less: less})
	assert(err == nil, "ordmap.New requires a less function")
	return m
}

// NewOrdered creates an empty map ordered by Go's `<` operator on K.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	m, err := NewWithConfig[K, V](rbtree.NaturalOrder[K]())
	assert(err == nil, "ordmap.NewOrdered: cannot create tree")
	return m
}

// NewWithConfig creates an empty map from a tree configuration.
func NewWithConfig[K, V any](cfg rbtree.Config[K]) (*Map[K, V], error) {
	tree, err := rbtree.New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// From creates a map ordered by `<` from a literal list of pairs. For
// duplicate keys, the last pair wins.
func From[K constraints.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewOrdered[K, V]()
	m.insertAll(pairs)
	return m
}

// FromFunc creates a map ordered by less from a literal list of pairs. For
// duplicate keys, the last pair wins.
func FromFunc[K, V any](less func(a, b K) bool, pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V](less)
	m.insertAll(pairs)
	return m
}

func (m *Map[K, V]) insertAll(pairs []Pair[K, V]) {
	for _, p := range pairs {
		_, err := m.tree.Put(p.Key, p.Value)
		assert(err == nil, "ordmap: unbounded allocation refused a node")
	}
}

// writable returns the tree of a map about to be mutated.
func (m *Map[K, V]) writable() *rbtree.Tree[K, V] {
	assert(m != nil && m.tree != nil, "ordmap: write to uninitialized map; use a constructor")
	return m.tree
}

func (m *Map[K, V]) readable() *rbtree.Tree[K, V] {
	if m == nil {
		return nil
	}
	return m.tree
}

// Order returns the order identity of the map's comparator.
func (m *Map[K, V]) Order() string {
	if m.readable() == nil {
		return ""
	}
	return m.tree.Order()
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return m.readable().Len()
}

// IsEmpty reports whether the map has no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return m.readable().IsEmpty()
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.readable().Contains(key)
}

// Get returns the value for key. If key is absent, Get returns an error
// wrapping ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.readable().Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// GetOrDefault returns the value for key, or dflt if key is absent.
func (m *Map[K, V]) GetOrDefault(key K, dflt V) V {
	if v, ok := m.readable().Get(key); ok {
		return v
	}
	return dflt
}

// Front returns the value of the smallest key. For an empty map, Front
// returns ErrEmptyMap.
func (m *Map[K, V]) Front() (V, error) {
	_, v, ok := m.readable().Min()
	if !ok {
		return v, ErrEmptyMap
	}
	return v, nil
}

// Back returns the value of the largest key. For an empty map, Back
// returns ErrEmptyMap.
func (m *Map[K, V]) Back() (V, error) {
	_, v, ok := m.readable().Max()
	if !ok {
		return v, ErrEmptyMap
	}
	return v, nil
}

// Insert sets the value for key, replacing a present value.
//
// An error is returned only if the map's allocator refuses a new node; the
// map is unchanged in that case.
func (m *Map[K, V]) Insert(key K, value V) error {
	inserted, err := m.writable().Put(key, value)
	if err != nil {
		return err
	}
	op := OpUpdate
	if inserted {
		op = OpInsert
	}
	m.publish(op, key, value)
	return nil
}

// InsertDefault returns a reference to the value of key, inserting key with
// the zero value of V if it is absent. The reference is valid until the next
// mutation of the map.
func (m *Map[K, V]) InsertDefault(key K) (*V, error) {
	var zero V
	slot, inserted, err := m.writable().Slot(key, zero, false)
	if err != nil {
		return nil, err
	}
	if inserted {
		m.publish(OpInsert, key, zero)
	}
	return slot, nil
}

// SetDefault inserts key with value if key is absent, and leaves the map
// unchanged otherwise. It returns the value stored for key.
func (m *Map[K, V]) SetDefault(key K, value V) (V, error) {
	slot, inserted, err := m.writable().Slot(key, value, false)
	if err != nil {
		return value, err
	}
	if inserted {
		m.publish(OpInsert, key, value)
	}
	return *slot, nil
}

// Remove deletes key from the map and reports whether it was present.
// Removing an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) bool {
	if m.readable() == nil {
		return false
	}
	var value V
	if m.cast != nil {
		value, _ = m.tree.Get(key)
	}
	if !m.tree.Delete(key) {
		return false
	}
	m.publish(OpRemove, key, value)
	return true
}

// Clear removes all keys.
func (m *Map[K, V]) Clear() {
	if m.readable() == nil || m.tree.IsEmpty() {
		return
	}
	m.tree.Clear()
	var (
		k K
		v V
	)
	m.publish(OpClear, k, v)
}

// Clone returns a copy of m with the same ordering. Change subscriptions are
// not copied. The clone of a nil map is nil.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	if m.readable() == nil {
		return nil, nil
	}
	tree, err := m.tree.Clone()
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// Move returns a map owning all entries of m and leaves m empty, without
// copying entries.
func (m *Map[K, V]) Move() *Map[K, V] {
	moved := &Map[K, V]{tree: m.writable().Move()}
	var (
		k K
		v V
	)
	m.publish(OpClear, k, v)
	return moved
}

// replace swaps in the tree of an algebra result.
func (m *Map[K, V]) replace(result *Map[K, V]) {
	m.writable().Clear()
	m.tree = result.tree.Move()
	var (
		k K
		v V
	)
	m.publish(OpReplace, k, v)
}

// --- Iteration -------------------------------------------------------------

// Begin returns a cursor at the smallest key, or End() for an empty map.
func (m *Map[K, V]) Begin() rbtree.Cursor[K, V] {
	return m.readable().First()
}

// Last returns a cursor at the largest key, or End() for an empty map.
func (m *Map[K, V]) Last() rbtree.Cursor[K, V] {
	return m.readable().Last()
}

// End returns the cursor past either end of the map's keys.
func (m *Map[K, V]) End() rbtree.Cursor[K, V] {
	return m.readable().End()
}

// All returns an iterator over all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.readable().All()
}

// Backward returns an iterator over all entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.readable().Backward()
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// ForEach calls fn for every entry in ascending key order.
func (m *Map[K, V]) ForEach(fn func(key K, value V)) {
	m.readable().ForEach(fn)
}

// ForEachReverse calls fn for every entry in descending key order.
func (m *Map[K, V]) ForEachReverse(fn func(key K, value V)) {
	m.readable().ForEachReverse(fn)
}

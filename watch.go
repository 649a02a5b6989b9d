package ordmap

import (
	"context"

	"github.com/guiguan/caster"
)

// Op classifies a change of a map.
type Op uint8

// Kinds of changes broadcast to watchers.
const (
	OpInsert  Op = iota + 1 // a new key has been inserted
	OpUpdate                // the value of a present key has been replaced
	OpRemove                // a key has been removed
	OpClear                 // all keys have been removed
	OpReplace               // the content has been replaced by an in-place set operation
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpRemove:
		return "remove"
	case OpClear:
		return "clear"
	case OpReplace:
		return "replace"
	}
	return "unknown"
}

// Event describes one change of a map. For OpClear and OpReplace, Key and
// Value are zero. For OpRemove, Value is the value the key was removed with.
type Event[K, V any] struct {
	Op    Op
	Key   K
	Value V
}

// Watch subscribes to change events of m. Every message received from the
// returned channel is an Event[K, V]. The subscription ends when ctx is done,
// on Unwatch or on Close. capacity is the buffer size of the channel.
//
// Events are published from within the mutating call. Subscribers have to
// keep up with the map, as a full subscription buffer blocks publishing.
func (m *Map[K, V]) Watch(ctx context.Context, capacity uint) (chan interface{}, error) {
	m.writable()
	if m.cast == nil {
		m.cast = caster.New(nil)
	}
	ch, ok := m.cast.Sub(ctx, capacity)
	if !ok {
		return nil, MapError("map watch: broadcaster closed")
	}
	T().Debugf("ordmap: new watcher with capacity %d", capacity)
	return ch, nil
}

// Unwatch ends a subscription created by Watch.
func (m *Map[K, V]) Unwatch(ch chan interface{}) {
	if m.cast != nil {
		m.cast.Unsub(ch)
	}
}

// Close ends all subscriptions. A later Watch starts a new broadcaster.
func (m *Map[K, V]) Close() {
	if m.cast != nil {
		m.cast.Close()
		m.cast = nil
	}
}

func (m *Map[K, V]) publish(op Op, key K, value V) {
	if m.cast == nil {
		return
	}
	m.cast.Pub(Event[K, V]{Op: op, Key: key, Value: value})
}

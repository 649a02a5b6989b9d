package ordmap

import "fmt"

// Relation is the result of comparing the key sets of two maps.
type Relation int

const (
	// Incomparable: each map has a key the other lacks, or the maps are
	// ordered by different comparators.
	Incomparable Relation = iota
	// Equal: both maps hold the same keys.
	Equal
	// ProperSubset: the receiver's keys are a proper subset of the other's.
	ProperSubset
	// ProperSuperset: the receiver's keys are a proper superset of the other's.
	ProperSuperset
)

func (r Relation) String() string {
	switch r {
	case Equal:
		return "equal"
	case ProperSubset:
		return "proper-subset"
	case ProperSuperset:
		return "proper-superset"
	}
	return "incomparable"
}

// mergeMode selects which keys of a merge are emitted to the result.
type mergeMode uint8

const (
	keepLeft  mergeMode = 1 << iota // keys present only in the receiver
	keepBoth                        // keys present in both maps
	keepRight                       // keys present only in the other map
)

// merge walks the ascending key sequences of a and b in lockstep and collects
// the selected keys into a new map with a's configuration. For keys present
// in both maps, a's value is kept. Keys are emitted in ascending order and
// appended to the result without searching, so a merge is linear in the
// number of keys. A nil b merges as an empty map.
func merge[K, V any](a, b *Map[K, V], mode mergeMode, op string) (*Map[K, V], error) {
	ta, tb := a.writable(), b.readable()
	if tb != nil && !ta.Config().Compatible(tb.Config()) {
		T().Errorf("ordmap %s: orders %q and %q differ", op, ta.Order(), tb.Order())
		return nil, fmt.Errorf("%w: %q vs. %q", ErrIncompatibleOrder, ta.Order(), tb.Order())
	}
	T().Debugf("ordmap %s: merging %d and %d keys", op, ta.Len(), tb.Len())
	result, err := NewWithConfig[K, V](ta.Config())
	if err != nil {
		return nil, err
	}
	less := ta.Config().Less
	emit := result.tree.Appender().Append
	ca, cb := ta.First(), tb.First()
	for ca.Valid() && cb.Valid() {
		switch ka, kb := ca.Key(), cb.Key(); {
		case less(ka, kb):
			if mode&keepLeft != 0 {
				err = emit(ka, ca.Value())
			}
			ca = ca.Next()
		case less(kb, ka):
			if mode&keepRight != 0 {
				err = emit(kb, cb.Value())
			}
			cb = cb.Next()
		default:
			if mode&keepBoth != 0 {
				err = emit(ka, ca.Value())
			}
			ca, cb = ca.Next(), cb.Next()
		}
		if err != nil {
			result.tree.Clear()
			return nil, err
		}
	}
	for ; ca.Valid() && mode&keepLeft != 0; ca = ca.Next() {
		if err = emit(ca.Key(), ca.Value()); err != nil {
			result.tree.Clear()
			return nil, err
		}
	}
	for ; cb.Valid() && mode&keepRight != 0; cb = cb.Next() {
		if err = emit(cb.Key(), cb.Value()); err != nil {
			result.tree.Clear()
			return nil, err
		}
	}
	return result, nil
}

// Intersect returns a new map holding the keys present in both m and other,
// with m's values.
func (m *Map[K, V]) Intersect(other *Map[K, V]) (*Map[K, V], error) {
	return merge(m, other, keepBoth, "intersect")
}

// Union returns a new map holding the keys present in m or other. For keys
// present in both, m's value is kept.
func (m *Map[K, V]) Union(other *Map[K, V]) (*Map[K, V], error) {
	return merge(m, other, keepLeft|keepBoth|keepRight, "union")
}

// SymmetricDifference returns a new map holding the keys present in exactly
// one of m and other.
func (m *Map[K, V]) SymmetricDifference(other *Map[K, V]) (*Map[K, V], error) {
	return merge(m, other, keepLeft|keepRight, "symmetric difference")
}

// Difference returns a new map holding the keys of m not present in other.
func (m *Map[K, V]) Difference(other *Map[K, V]) (*Map[K, V], error) {
	return merge(m, other, keepLeft, "difference")
}

func (m *Map[K, V]) inPlace(other *Map[K, V], mode mergeMode, op string) error {
	result, err := merge(m, other, mode, op)
	if err != nil {
		return err
	}
	m.replace(result)
	return nil
}

// IntersectWith removes all keys from m which are not present in other.
func (m *Map[K, V]) IntersectWith(other *Map[K, V]) error {
	return m.inPlace(other, keepBoth, "intersect")
}

// UnionWith adds all keys of other missing in m.
func (m *Map[K, V]) UnionWith(other *Map[K, V]) error {
	return m.inPlace(other, keepLeft|keepBoth|keepRight, "union")
}

// SymmetricDifferenceWith replaces the content of m by the symmetric
// difference of m and other.
func (m *Map[K, V]) SymmetricDifferenceWith(other *Map[K, V]) error {
	return m.inPlace(other, keepLeft|keepRight, "symmetric difference")
}

// DifferenceWith removes all keys from m which are present in other.
func (m *Map[K, V]) DifferenceWith(other *Map[K, V]) error {
	return m.inPlace(other, keepLeft, "difference")
}

// Compare relates the key set of m to the key set of other. Values are not
// considered. Maps ordered by different comparators are Incomparable. A nil
// map compares as an empty map of any order.
func (m *Map[K, V]) Compare(other *Map[K, V]) Relation {
	ta, tb := m.readable(), other.readable()
	if ta == nil || tb == nil {
		switch {
		case m.Len() == other.Len():
			return Equal
		case m.Len() == 0:
			return ProperSubset
		}
		return ProperSuperset
	}
	if !ta.Config().Compatible(tb.Config()) {
		return Incomparable
	}
	less := ta.Config().Less
	var thisOnly, otherOnly bool
	ca, cb := ta.First(), tb.First()
	for ca.Valid() && cb.Valid() && !(thisOnly && otherOnly) {
		switch ka, kb := ca.Key(), cb.Key(); {
		case less(ka, kb):
			thisOnly = true
			ca = ca.Next()
		case less(kb, ka):
			otherOnly = true
			cb = cb.Next()
		default:
			ca, cb = ca.Next(), cb.Next()
		}
	}
	thisOnly = thisOnly || ca.Valid()
	otherOnly = otherOnly || cb.Valid()
	switch {
	case thisOnly && otherOnly:
		return Incomparable
	case thisOnly:
		return ProperSuperset
	case otherOnly:
		return ProperSubset
	}
	return Equal
}

// Equals reports whether m and other hold the same keys.
func (m *Map[K, V]) Equals(other *Map[K, V]) bool {
	return m.Compare(other) == Equal
}

// EqualFunc reports whether m and other hold the same keys with values
// equal according to eq.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() || !m.Equals(other) {
		return false
	}
	ca, cb := m.Begin(), other.Begin()
	for ; ca.Valid(); ca, cb = ca.Next(), cb.Next() {
		if !eq(ca.Value(), cb.Value()) {
			return false
		}
	}
	return true
}

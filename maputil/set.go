package maputil

import (
	"fmt"
	"reflect"
)

// Set is an unordered collection of unique scalar elements.
//
// Elements must be hashable scalars: comparable values classified as
// [KindScalar], such as strings, numbers, time.Time, or [FrozenMap].
// Containers and incomparable values are rejected with [ErrUnhashableValue]
// before insertion, so a Set never panics on an incomparable element.
//
// Set participates in the structured-value model: [ShallowCopy] and
// [DeepCopy] rebuild the Set container (elements, being scalars, are
// shared), and [DeepMerge] replaces sets wholesale rather than merging them
// element-wise.
type Set map[any]struct{}

// NewSet builds a Set from items. It fails with [ErrUnhashableValue] if any
// item is not a hashable scalar.
func NewSet(items ...any) (Set, error) {
	s := make(Set, len(items))
	for _, it := range items {
		if err := s.Add(it); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts v into the set. Adding an element that is already present is a
// no-op. It fails with [ErrUnhashableValue] if v is not a hashable scalar.
func (s Set) Add(v any) error {
	if err := checkHashable(v); err != nil {
		return err
	}
	s[v] = struct{}{}
	return nil
}

// Has reports whether v is a member of the set. Unhashable values are never
// members.
func (s Set) Has(v any) bool {
	if checkHashable(v) != nil {
		return false
	}
	_, ok := s[v]
	return ok
}

// Delete removes v from the set if present.
func (s Set) Delete(v any) {
	if checkHashable(v) != nil {
		return
	}
	delete(s, v)
}

// Len returns the number of elements.
func (s Set) Len() int { return len(s) }

// Items returns the elements as a new slice in unspecified order.
func (s Set) Items() []any {
	out := make([]any, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// checkHashable rejects anything outside the hashable scalar domain.
// Comparability is verified via reflection so that map insertion can never
// panic on an interface-typed element.
func checkHashable(v any) error {
	if v == nil {
		return nil
	}
	if KindOf(v) != KindScalar {
		return fmt.Errorf("%w: %T is a %s", ErrUnhashableValue, v, KindOf(v))
	}
	if !reflect.TypeOf(v).Comparable() {
		return fmt.Errorf("%w: %T is not comparable", ErrUnhashableValue, v)
	}
	return nil
}

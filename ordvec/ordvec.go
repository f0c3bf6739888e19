// Package ordvec implements OrdVector[T], a sorted, deduplicated sequence
// of comparable values with set-algebra operations. It backs SymbolPost
// target sets, StatePost symbol ordering, and any other place the core needs a deterministic, memory-compact set over a
// small ordered domain.
//
// Invariant: for any OrdVector v, adjacent elements are strictly
// increasing (no duplicates, ascending order). Every exported mutator
// restores this invariant before returning.
package ordvec

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// OrdVector is a sorted, deduplicated slice of T.
//
// The zero value is an empty, valid OrdVector.
type OrdVector[T constraints.Ordered] struct {
	data []T
}

// New builds an OrdVector from values, sorting and deduplicating them.
func New[T constraints.Ordered](values ...T) OrdVector[T] {
	var v OrdVector[T]
	for _, x := range values {
		v.Insert(x)
	}

	return v
}

// Len returns the number of elements.
func (v *OrdVector[T]) Len() int { return len(v.data) }

// IsEmpty reports whether the vector holds no elements.
func (v *OrdVector[T]) IsEmpty() bool { return len(v.data) == 0 }

// search returns the index at which x is, or would be, inserted, and
// whether x is present at that index.
func (v *OrdVector[T]) search(x T) (int, bool) {
	i := sort.Search(len(v.data), func(i int) bool { return v.data[i] >= x })
	return i, i < len(v.data) && v.data[i] == x
}

// Contains reports whether x is a member.
func (v *OrdVector[T]) Contains(x T) bool {
	_, ok := v.search(x)
	return ok
}

// Insert adds x, preserving order and uniqueness. Returns true if x was
// newly inserted (false if it was already present).
func (v *OrdVector[T]) Insert(x T) bool {
	i, ok := v.search(x)
	if ok {
		return false
	}
	v.data = append(v.data, x) // grow by one
	copy(v.data[i+1:], v.data[i:])
	v.data[i] = x

	return true
}

// Remove deletes x if present. Returns true if x was removed.
func (v *OrdVector[T]) Remove(x T) bool {
	i, ok := v.search(x)
	if !ok {
		return false
	}
	v.data = append(v.data[:i], v.data[i+1:]...)

	return true
}

// Slice returns the underlying sorted slice. Callers must not mutate it.
func (v OrdVector[T]) Slice() []T { return v.data }

// Clone returns a deep copy.
func (v *OrdVector[T]) Clone() OrdVector[T] {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return OrdVector[T]{data: out}
}

// Union returns the sorted union of v and other.
func Union[T constraints.Ordered](v, other *OrdVector[T]) OrdVector[T] {
	a, b := v.data, other.data
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return OrdVector[T]{data: out}
}

// Intersect returns the sorted intersection of v and other.
func Intersect[T constraints.Ordered](v, other *OrdVector[T]) OrdVector[T] {
	a, b := v.data, other.data
	out := make([]T, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return OrdVector[T]{data: out}
}

// Subset reports whether every element of v is also in other.
func (v *OrdVector[T]) Subset(other *OrdVector[T]) bool {
	a, b := v.data, other.data
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) {
			return false
		}
		switch {
		case a[i] < b[j]:
			return false
		case b[j] < a[i]:
			j++
		default:
			i++
			j++
		}
	}

	return true
}

// Compare lexicographically compares v and other, returning -1, 0, or 1.
func Compare[T constraints.Ordered](v, other *OrdVector[T]) int {
	a, b := v.data, other.data
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case b[i] < a[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// All returns an iterator over the elements in ascending order.
func (v *OrdVector[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

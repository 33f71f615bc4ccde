// Package scapeset implements a fixed-capacity, allocation-free ordered set
// on top of [sgtree].
//
// # Basic Operations
//
// Create an empty set with New or NewFunc, giving it a fixed capacity up
// front — a Set never grows past the capacity it was constructed with.
//
//	s, err := scapeset.New[string](64)
//
// Add items using Add and remove items using Remove:
//
//	s.Add("apple")
//	s.Remove("pear")
//
// Look up items using Has. Report the number of elements in the set using
// Len.
//
// # Iterating in Order
//
// Ascend and Descend are range-over-func iterators (see the standard
// library "iter" package) that visit the set's elements in sorted order:
//
//	for v := range s.Ascend {
//	   doThingsWith(v)
//	}
//
// It is a programming error to structurally mutate a Set while ranging over
// it; doing so panics, the same way Go's built-in map detects concurrent
// mutation during iteration.
package scapeset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/arenasg/scapegoat/compare"
	"github.com/arenasg/scapegoat/sgtree"
)

// unit is the zero-size value used to project sgtree's key-value engine as
// a set of keys.
type unit = struct{}

// A Set represents a fixed-capacity set of comparable values of type T,
// stored in ascending order. All ordered-set operations are provided as
// lazy iterator combinators over the two underlying ascending sequences and
// perform no allocation of their own beyond the small pull machinery that
// backs range-over-func composition.
type Set[T any] struct {
	t   *sgtree.Tree[T, unit]
	cmp func(a, b T) int
}

// New constructs a new empty Set with room for exactly capacity elements,
// using the natural comparison order for an ordered value type.
func New[T cmp.Ordered](capacity int, opts ...sgtree.Option) (Set[T], error) {
	return NewFunc[T](capacity, cmp.Compare, opts...)
}

// MustNew is like New but panics instead of returning an error.
func MustNew[T cmp.Ordered](capacity int, opts ...sgtree.Option) Set[T] {
	s, err := New[T](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewFunc constructs a new empty Set using cf to compare values.
func NewFunc[T any](capacity int, cf func(a, b T) int, opts ...sgtree.Option) (Set[T], error) {
	t, err := sgtree.New[T, unit](capacity, cf, opts...)
	if err != nil {
		return Set[T]{}, err
	}
	return Set[T]{t: t, cmp: cf}, nil
}

// NewFromLess constructs a new empty Set ordered by less, for value types
// that have a natural "less than" but no natural three-way compare —
// [time.Time] via [compare.Time] is the common case.
func NewFromLess[T any](capacity int, less func(a, b T) bool, opts ...sgtree.Option) (Set[T], error) {
	return NewFunc[T](capacity, compare.FromLessFunc(less), opts...)
}

// String returns a string representation of the contents of s.
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("scapeset[")
	tag := ""
	for v := range s.Ascend {
		fmt.Fprint(&sb, tag, v)
		tag = " "
	}
	sb.WriteString("]")
	return sb.String()
}

// Len reports the number of elements in s.
func (s Set[T]) Len() int { return s.t.Len() }

// Capacity reports the maximum number of elements s can hold.
func (s Set[T]) Capacity() int { return s.t.Capacity() }

// IsEmpty reports whether s has no elements.
func (s Set[T]) IsEmpty() bool { return s.t.IsEmpty() }

// IsFull reports whether s is at capacity.
func (s Set[T]) IsFull() bool { return s.t.IsFull() }

// Clear removes every element from s.
func (s Set[T]) Clear() { s.t.Clear() }

// Has reports whether v is present in s.
func (s Set[T]) Has(v T) bool { return s.t.ContainsKey(v) }

// Add adds v to s and reports whether it was new. Add panics if s is full
// and v was not already present; use TryAdd to avoid panicking.
func (s Set[T]) Add(v T) bool {
	_, had := s.t.Insert(v, unit{})
	return !had
}

// TryAdd is like Add but returns a *sgtree.CapacityExceededError[T, struct{}]
// instead of panicking when s is full and v is new.
func (s Set[T]) TryAdd(v T) (bool, error) {
	_, had, err := s.t.TryInsert(v, unit{})
	if err != nil {
		return false, err
	}
	return !had, nil
}

// AddAll adds every item to s in order, stopping at the first error.
func (s Set[T]) AddAll(items ...T) error {
	for _, v := range items {
		if _, err := s.TryAdd(v); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes v from s and reports whether it was present.
func (s Set[T]) Remove(v T) bool {
	_, ok := s.t.Remove(v)
	return ok
}

// Retain removes every element for which pred returns false.
func (s Set[T]) Retain(pred func(T) bool) {
	s.t.Retain(func(k T, _ unit) bool { return pred(k) })
}

// First returns the minimum element of s.
func (s Set[T]) First() (T, bool) {
	k, _, ok := s.t.FirstKeyValue()
	return k, ok
}

// Last returns the maximum element of s.
func (s Set[T]) Last() (T, bool) {
	k, _, ok := s.t.LastKeyValue()
	return k, ok
}

// Ascend visits the elements of s in ascending order.
func (s Set[T]) Ascend(yield func(T) bool) {
	s.t.Keys(yield)
}

// Descend visits the elements of s in descending order.
func (s Set[T]) Descend(yield func(T) bool) {
	s.t.Descend(func(k T, _ unit) bool { return yield(k) })
}

// AscendFrom visits the elements of s greater than or equal to lo, in
// ascending order.
func (s Set[T]) AscendFrom(lo T, yield func(T) bool) {
	s.t.AscendRange(lo, func(k T, _ unit) bool { return yield(k) })
}

// Slice returns the elements of s as a freshly allocated slice in ascending
// order.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Ascend {
		out = append(out, v)
	}
	return out
}

// Union returns a lazy sequence of every element present in a or b (or
// both), in ascending order. a and b must share the same comparator.
func Union[T any](a, b Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		mergeAscending(a, b, func(v T, inA, inB bool) bool { return yield(v) })
	}
}

// Intersection returns a lazy sequence of every element present in both a
// and b, in ascending order.
func Intersection[T any](a, b Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		mergeAscending(a, b, func(v T, inA, inB bool) bool {
			if inA && inB {
				return yield(v)
			}
			return true
		})
	}
}

// Difference returns a lazy sequence of every element present in a but not
// in b, in ascending order.
func Difference[T any](a, b Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		mergeAscending(a, b, func(v T, inA, inB bool) bool {
			if inA && !inB {
				return yield(v)
			}
			return true
		})
	}
}

// SymmetricDifference returns a lazy sequence of every element present in
// exactly one of a or b, in ascending order.
func SymmetricDifference[T any](a, b Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		mergeAscending(a, b, func(v T, inA, inB bool) bool {
			if inA != inB {
				return yield(v)
			}
			return true
		})
	}
}

// IsSubsetOf reports whether every element of a is also present in b.
func (a Set[T]) IsSubsetOf(b Set[T]) bool {
	ok := true
	mergeAscending(a, b, func(_ T, inA, inB bool) bool {
		if inA && !inB {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// IsSupersetOf reports whether every element of b is also present in a.
func (a Set[T]) IsSupersetOf(b Set[T]) bool { return b.IsSubsetOf(a) }

// mergeAscending walks a.Ascend and b.Ascend in lockstep using iter.Pull,
// calling visit once per distinct value in ascending order with flags
// reporting which of a, b contained it. This is the shared merge step
// behind every set-algebra combinator above.
func mergeAscending[T any](a, b Set[T], visit func(v T, inA, inB bool) bool) {
	nextA, stopA := iter.Pull(a.Ascend)
	defer stopA()
	nextB, stopB := iter.Pull(b.Ascend)
	defer stopB()

	va, okA := nextA()
	vb, okB := nextB()
	for okA && okB {
		switch c := a.cmp(va, vb); {
		case c < 0:
			if !visit(va, true, false) {
				return
			}
			va, okA = nextA()
		case c > 0:
			if !visit(vb, false, true) {
				return
			}
			vb, okB = nextB()
		default:
			if !visit(va, true, true) {
				return
			}
			va, okA = nextA()
			vb, okB = nextB()
		}
	}
	for okA {
		if !visit(va, true, false) {
			return
		}
		va, okA = nextA()
	}
	for okB {
		if !visit(vb, false, true) {
			return
		}
		vb, okB = nextB()
	}
}

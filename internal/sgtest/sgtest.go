// Package sgtest holds test scaffolding shared by sgtree, scapeset, and
// scapemap: content-equality checks and a map-backed reference oracle for
// differential testing.
package sgtest

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CheckAscending fails t if got is not in strictly ascending order according
// to less.
func CheckAscending[T any](t *testing.T, got []T, less func(a, b T) bool) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		if !less(got[i-1], got[i]) {
			t.Errorf("not strictly ascending at index %d: %v then %v", i, got[i-1], got[i])
		}
	}
}

// CheckSameSequence fails t and reports a diff if got != want.
func CheckSameSequence[T any](t *testing.T, got, want []T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong sequence (-want +got):\n%s", diff)
	}
}

// HeightBound returns floor(log_{1/alpha}(n)) + 1, the structural bound on
// tree height that must hold after any insert.
func HeightBound(n int, alphaNum, alphaDen int) int {
	if n <= 1 {
		return 1
	}
	a := float64(alphaNum) / float64(alphaDen)
	return int(math.Log(float64(n))/math.Log(1/a)) + 1
}

// Oracle is a plain map[K]V reference implementation used to differentially
// test a Tree-like container: any finite sequence of operations applied to
// both must produce byte-identical observable outputs.
type Oracle[K comparable, V any] struct {
	m map[K]V
}

// NewOracle returns an empty Oracle.
func NewOracle[K comparable, V any]() *Oracle[K, V] {
	return &Oracle[K, V]{m: make(map[K]V)}
}

// Insert mirrors Tree.Insert's return shape.
func (o *Oracle[K, V]) Insert(k K, v V) (old V, hadOld bool) {
	old, hadOld = o.m[k]
	o.m[k] = v
	return old, hadOld
}

// Remove mirrors Tree.Remove's return shape.
func (o *Oracle[K, V]) Remove(k K) (V, bool) {
	v, ok := o.m[k]
	delete(o.m, k)
	return v, ok
}

// Get mirrors Tree.Get's return shape.
func (o *Oracle[K, V]) Get(k K) (V, bool) {
	v, ok := o.m[k]
	return v, ok
}

// Len reports the number of entries in the oracle.
func (o *Oracle[K, V]) Len() int { return len(o.m) }

// Seen is a set of Tree.Fingerprint values, used to detect a
// differential-fuzz input whose resulting tree contents match those of an
// earlier input in the same corpus.
type Seen struct {
	fp map[uint64]bool
}

// NewSeen returns an empty fingerprint set.
func NewSeen() *Seen { return &Seen{fp: make(map[uint64]bool)} }

// Add reports whether fp was already present, and records it if not.
func (s *Seen) Add(fp uint64) (dup bool) {
	dup = s.fp[fp]
	s.fp[fp] = true
	return dup
}

// Keys returns every key present, unordered; callers that need order should
// sort the result themselves (the oracle has none).
func (o *Oracle[K, V]) Keys() []K {
	out := make([]K, 0, len(o.m))
	for k := range o.m {
		out = append(out, k)
	}
	return out
}

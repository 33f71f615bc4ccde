package scapeset_test

import (
	"testing"

	"github.com/arenasg/scapegoat/internal/sgtest"
	"github.com/arenasg/scapegoat/scapeset"
)

func TestAddHasRemove(t *testing.T) {
	s := scapeset.MustNew[int](8)
	if !s.Add(3) {
		t.Fatal("Add(3) on empty set = false, want true")
	}
	if s.Add(3) {
		t.Fatal("Add(3) again = true, want false")
	}
	if !s.Has(3) {
		t.Fatal("Has(3) = false, want true")
	}
	if !s.Remove(3) {
		t.Fatal("Remove(3) = false, want true")
	}
	if s.Has(3) {
		t.Fatal("Has(3) after Remove = true, want false")
	}
}

func TestAscendDescendOrder(t *testing.T) {
	s := scapeset.MustNew[int](16)
	for _, v := range []int{5, 1, 9, 3, 7} {
		s.Add(v)
	}
	sgtest.CheckSameSequence(t, s.Slice(), []int{1, 3, 5, 7, 9})

	var desc []int
	s.Descend(func(v int) bool { desc = append(desc, v); return true })
	sgtest.CheckSameSequence(t, desc, []int{9, 7, 5, 3, 1})
}

func TestSetAlgebra(t *testing.T) {
	a := scapeset.MustNew[int](16)
	b := scapeset.MustNew[int](16)
	for _, v := range []int{1, 2, 3, 4} {
		a.Add(v)
	}
	for _, v := range []int{3, 4, 5, 6} {
		b.Add(v)
	}

	var union, inter, diff, symdiff []int
	for v := range scapeset.Union(a, b) {
		union = append(union, v)
	}
	for v := range scapeset.Intersection(a, b) {
		inter = append(inter, v)
	}
	for v := range scapeset.Difference(a, b) {
		diff = append(diff, v)
	}
	for v := range scapeset.SymmetricDifference(a, b) {
		symdiff = append(symdiff, v)
	}

	sgtest.CheckSameSequence(t, union, []int{1, 2, 3, 4, 5, 6})
	sgtest.CheckSameSequence(t, inter, []int{3, 4})
	sgtest.CheckSameSequence(t, diff, []int{1, 2})
	sgtest.CheckSameSequence(t, symdiff, []int{1, 2, 5, 6})
}

func TestSubsetSuperset(t *testing.T) {
	small := scapeset.MustNew[int](8)
	big := scapeset.MustNew[int](8)
	for _, v := range []int{1, 2} {
		small.Add(v)
	}
	for _, v := range []int{1, 2, 3, 4} {
		big.Add(v)
	}
	if !small.IsSubsetOf(big) {
		t.Error("small.IsSubsetOf(big) = false, want true")
	}
	if big.IsSubsetOf(small) {
		t.Error("big.IsSubsetOf(small) = true, want false")
	}
	if !big.IsSupersetOf(small) {
		t.Error("big.IsSupersetOf(small) = false, want true")
	}
}

func TestTryAddCapacityExceeded(t *testing.T) {
	s := scapeset.MustNew[int](2)
	s.Add(1)
	s.Add(2)
	if _, err := s.TryAdd(3); err == nil {
		t.Fatal("TryAdd into full set: got nil error")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() after failed TryAdd = %d, want 2", s.Len())
	}
}

func TestAddAllStopsAtFirstError(t *testing.T) {
	s := scapeset.MustNew[int](2)
	err := s.AddAll(1, 2, 3)
	if err == nil {
		t.Fatal("AddAll overflowing capacity: got nil error")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() after AddAll overflow = %d, want 2", s.Len())
	}
}

func TestRetain(t *testing.T) {
	s := scapeset.MustNew[int](16)
	for i := 0; i < 10; i++ {
		s.Add(i)
	}
	s.Retain(func(v int) bool { return v%2 == 0 })
	sgtest.CheckSameSequence(t, s.Slice(), []int{0, 2, 4, 6, 8})
}

func TestFirstLast(t *testing.T) {
	s := scapeset.MustNew[int](8)
	if _, ok := s.First(); ok {
		t.Fatal("First() on empty set: ok = true")
	}
	for _, v := range []int{4, 1, 9, 6} {
		s.Add(v)
	}
	if v, ok := s.First(); !ok || v != 1 {
		t.Fatalf("First() = (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := s.Last(); !ok || v != 9 {
		t.Fatalf("Last() = (%d, %v), want (9, true)", v, ok)
	}
}

func TestStringRepresentation(t *testing.T) {
	s := scapeset.MustNew[int](4)
	s.Add(2)
	s.Add(1)
	if got, want := s.String(), "scapeset[1 2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

package scapemap_test

import (
	"testing"

	"github.com/arenasg/scapegoat/internal/sgtest"
	"github.com/arenasg/scapegoat/mtest"
	"github.com/arenasg/scapegoat/scapemap"
)

func TestSetGetDelete(t *testing.T) {
	m := scapemap.MustNew[string, int](8)
	if isNew := m.Set("a", 1); !isNew {
		t.Fatal("Set(a, 1) on empty map: isNew = false, want true")
	}
	if isNew := m.Set("a", 2); isNew {
		t.Fatal("Set(a, 2) overwrite: isNew = true, want false")
	}
	if v, ok := m.GetOK("a"); !ok || v != 2 {
		t.Fatalf("GetOK(a) = (%d, %v), want (2, true)", v, ok)
	}
	if !m.Delete("a") {
		t.Fatal("Delete(a) = false, want true")
	}
	if m.ContainsKey("a") {
		t.Fatal("ContainsKey(a) after Delete = true, want false")
	}
}

func TestAtPanicsOnMissingKey(t *testing.T) {
	m := scapemap.MustNew[string, int](4)
	m.Set("x", 10)
	if got := m.At("x"); got != 10 {
		t.Fatalf("At(x) = %d, want 10", got)
	}
	mtest.MustPanic(t, func() { m.At("missing") })
}

func TestOrderedIteration(t *testing.T) {
	m := scapemap.MustNew[int, string](8)
	m.Set(3, "c")
	m.Set(1, "a")
	m.Set(2, "b")
	sgtest.CheckSameSequence(t, m.KeySlice(), []int{1, 2, 3})
	sgtest.CheckSameSequence(t, m.ValueSlice(), []string{"a", "b", "c"})
}

func TestPopFirstLast(t *testing.T) {
	m := scapemap.MustNew[int, string](8)
	m.Set(3, "c")
	m.Set(1, "a")
	m.Set(2, "b")

	k, v, ok := m.PopFirst()
	if !ok || k != 1 || v != "a" {
		t.Fatalf("PopFirst() = (%d, %q, %v), want (1, \"a\", true)", k, v, ok)
	}
	k, v, ok = m.PopLast()
	if !ok || k != 3 || v != "c" {
		t.Fatalf("PopLast() = (%d, %q, %v), want (3, \"c\", true)", k, v, ok)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestTrySetCapacityExceeded(t *testing.T) {
	m := scapemap.MustNew[int, int](2)
	m.Set(1, 1)
	m.Set(2, 2)
	if _, err := m.TrySet(3, 3); err == nil {
		t.Fatal("TrySet into full map: got nil error")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() after failed TrySet = %d, want 2", m.Len())
	}
}

func TestGetMutInPlace(t *testing.T) {
	m := scapemap.MustNew[string, int](4)
	m.Set("counter", 0)
	p, ok := m.GetMut("counter")
	if !ok {
		t.Fatal("GetMut(counter) = false, want true")
	}
	*p = 5
	if got := m.Get("counter"); got != 5 {
		t.Fatalf("Get(counter) after GetMut mutation = %d, want 5", got)
	}
}

func TestEntryAtOrInsert(t *testing.T) {
	m := scapemap.MustNew[string, int](4)
	p := m.EntryAt("k").OrInsert(1)
	*p++
	if got := m.Get("k"); got != 2 {
		t.Fatalf("Get(k) = %d, want 2", got)
	}
}

func TestAppendOtherWins(t *testing.T) {
	a := scapemap.MustNew[int, string](8)
	b := scapemap.MustNew[int, string](8)
	a.Set(1, "a1")
	a.Set(2, "a2")
	b.Set(2, "b2")

	if err := a.Append(b); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got := a.Get(2); got != "b2" {
		t.Fatalf("Get(2) after Append = %q, want \"b2\"", got)
	}
}

func TestStringRepresentation(t *testing.T) {
	m := scapemap.MustNew[int, string](4)
	m.Set(2, "b")
	m.Set(1, "a")
	if got, want := m.String(), "scapemap[1:a 2:b]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// Package scapemap implements a fixed-capacity, allocation-free ordered map
// on top of [sgtree].
//
// # Basic Operations
//
// Create an empty map with New or NewFunc, giving it a fixed capacity up
// front:
//
//	m, err := scapemap.New[string, int](64)
//
// Add items using Set and remove items using Delete:
//
//	m.Set("apple", 1)
//	m.Delete("pear")
//
// Look up items using Get and GetOK:
//
//	v := m.Get(key)        // returns a zero value if key not found
//	v, ok := m.GetOK(key)  // ok indicates whether key was found
//
// # Iterating in Order
//
// Ascend and Descend are range-over-func iterators over key-value pairs in
// sorted order:
//
//	for k, v := range m.Ascend {
//	   doThingsWith(k, v)
//	}
//
// As with [scapeset.Set], structurally mutating a Map while ranging over it
// is a programming error that panics rather than silently corrupting
// iteration.
package scapemap

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/arenasg/scapegoat/compare"
	"github.com/arenasg/scapegoat/sgtree"
)

// A Map represents a fixed-capacity ordered mapping from K to V. It
// supports efficient insertion, deletion, and lookup, and allows keys to be
// traversed in order.
type Map[K, V any] struct {
	t *sgtree.Tree[K, V]
}

// New constructs a new empty Map with room for exactly capacity entries,
// using the natural comparison order for an ordered key type.
func New[K cmp.Ordered, V any](capacity int, opts ...sgtree.Option) (Map[K, V], error) {
	return NewFunc[K, V](capacity, cmp.Compare, opts...)
}

// MustNew is like New but panics instead of returning an error.
func MustNew[K cmp.Ordered, V any](capacity int, opts ...sgtree.Option) Map[K, V] {
	m, err := New[K, V](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewFromLess constructs a new empty Map ordered by less, for key types that
// have a natural "less than" but no natural three-way compare — [time.Time]
// via [compare.Time] is the common case.
func NewFromLess[K, V any](capacity int, less func(a, b K) bool, opts ...sgtree.Option) (Map[K, V], error) {
	return NewFunc[K, V](capacity, compare.FromLessFunc(less), opts...)
}

// NewFunc constructs a new empty Map using cf to compare keys.
func NewFunc[K, V any](capacity int, cf func(a, b K) int, opts ...sgtree.Option) (Map[K, V], error) {
	t, err := sgtree.New[K, V](capacity, cf, opts...)
	if err != nil {
		return Map[K, V]{}, err
	}
	return Map[K, V]{t: t}, nil
}

// String returns a string representation of the contents of m, with entries
// in ascending key order.
func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("scapemap[")
	tag := ""
	for k, v := range m.Ascend {
		fmt.Fprintf(&sb, "%s%v:%v", tag, k, v)
		tag = " "
	}
	sb.WriteString("]")
	return sb.String()
}

// Len reports the number of key-value pairs in m.
func (m Map[K, V]) Len() int { return m.t.Len() }

// Capacity reports the maximum number of key-value pairs m can hold.
func (m Map[K, V]) Capacity() int { return m.t.Capacity() }

// IsEmpty reports whether m has no entries.
func (m Map[K, V]) IsEmpty() bool { return m.t.IsEmpty() }

// IsFull reports whether m is at capacity.
func (m Map[K, V]) IsFull() bool { return m.t.IsFull() }

// Clear removes every entry from m.
func (m Map[K, V]) Clear() { m.t.Clear() }

// Get returns the value associated with key in m if present, or a zero
// value otherwise. To distinguish a stored zero value from absence, use
// GetOK.
func (m Map[K, V]) Get(key K) V {
	v, _ := m.t.Get(key)
	return v
}

// GetOK reports whether key is present in m, and if so returns its value.
func (m Map[K, V]) GetOK(key K) (V, bool) { return m.t.Get(key) }

// ContainsKey reports whether key is present in m.
func (m Map[K, V]) ContainsKey(key K) bool { return m.t.ContainsKey(key) }

// At returns the value associated with key, panicking if key is absent.
func (m Map[K, V]) At(key K) V {
	v, ok := m.t.Get(key)
	if !ok {
		panic(fmt.Sprintf("scapemap: key %v not present", key))
	}
	return v
}

// GetMut returns a pointer to the value stored at key for in-place
// mutation, or (nil, false) if key is absent.
func (m Map[K, V]) GetMut(key K) (*V, bool) { return m.t.GetMut(key) }

// Set adds or replaces the value at key and reports whether key was new.
// Set panics if m is full and key is new; use TrySet to avoid panicking.
func (m Map[K, V]) Set(key K, val V) bool {
	_, had := m.t.Insert(key, val)
	return !had
}

// TrySet is like Set but returns a *sgtree.CapacityExceededError[K, V]
// instead of panicking when m is full and key is new.
func (m Map[K, V]) TrySet(key K, val V) (bool, error) {
	_, had, err := m.t.TryInsert(key, val)
	if err != nil {
		return false, err
	}
	return !had, nil
}

// Delete removes key from m and reports whether it was present.
func (m Map[K, V]) Delete(key K) bool {
	_, ok := m.t.Remove(key)
	return ok
}

// PopFirst removes and returns the entry with the smallest key.
func (m Map[K, V]) PopFirst() (K, V, bool) { return m.t.PopFirst() }

// PopLast removes and returns the entry with the largest key.
func (m Map[K, V]) PopLast() (K, V, bool) { return m.t.PopLast() }

// First returns the entry with the smallest key, without removing it.
func (m Map[K, V]) First() (K, V, bool) { return m.t.FirstKeyValue() }

// Last returns the entry with the largest key, without removing it.
func (m Map[K, V]) Last() (K, V, bool) { return m.t.LastKeyValue() }

// Append moves every entry out of other and into m, leaving other empty. On
// a key collision, other's entry wins.
func (m Map[K, V]) Append(other Map[K, V]) error { return m.t.Append(other.t) }

// Retain removes every entry for which pred returns false.
func (m Map[K, V]) Retain(pred func(K, V) bool) { m.t.Retain(pred) }

// Ascend visits the entries of m in ascending key order.
func (m Map[K, V]) Ascend(yield func(K, V) bool) { m.t.Ascend(yield) }

// Descend visits the entries of m in descending key order.
func (m Map[K, V]) Descend(yield func(K, V) bool) { m.t.Descend(yield) }

// AscendFrom visits the entries of m whose key is greater than or equal to
// lo, in ascending order.
func (m Map[K, V]) AscendFrom(lo K, yield func(K, V) bool) { m.t.AscendRange(lo, yield) }

// Keys visits the keys of m in ascending order.
func (m Map[K, V]) Keys(yield func(K) bool) { m.t.Keys(yield) }

// Values visits the values of m, in the order of ascending keys.
func (m Map[K, V]) Values(yield func(V) bool) { m.t.Values(yield) }

// ValuesMut visits pointers to the values of m, in the order of ascending
// keys, allowing in-place mutation.
func (m Map[K, V]) ValuesMut(yield func(*V) bool) { m.t.ValuesMut(yield) }

// Drain removes and yields every entry of m in ascending key order. If the
// caller stops ranging early, the remaining entries are still removed.
func (m Map[K, V]) Drain(yield func(K, V) bool) { m.t.Drain(yield) }

// KeySlice returns the keys of m as a freshly allocated slice in ascending
// order.
func (m Map[K, V]) KeySlice() []K {
	out := make([]K, 0, m.Len())
	for k := range m.Keys {
		out = append(out, k)
	}
	return out
}

// ValueSlice returns the values of m as a freshly allocated slice, in the
// order of ascending keys.
func (m Map[K, V]) ValueSlice() []V {
	out := make([]V, 0, m.Len())
	for v := range m.Values {
		out = append(out, v)
	}
	return out
}

// An Entry is a located handle into m, see [sgtree.Entry].
type Entry[K, V any] = sgtree.Entry[K, V]

// EntryAt returns a handle located at key, letting the caller insert or
// mutate its value without a second lookup.
func (m Map[K, V]) EntryAt(key K) *Entry[K, V] { return m.t.Entry(key) }

// Package arena implements a fixed-capacity slot allocator addressed by
// small-integer indices instead of pointers.
//
// An [Arena] owns a contiguous slice of slots and hands out stable [Index]
// values in place of heap pointers. A slot's index never changes for the
// lifetime of the value it holds, which lets callers build pointer-free,
// allocation-free linked structures (trees, graphs, free lists) on top of a
// single backing array. Capacity is fixed at construction time; an Arena
// never grows its backing slice, and Add, Remove and Get request no memory
// from the general allocator after New returns (SortBy allocates a scratch
// copy of the live values and the returned remap).
//
// # Allocation strategy
//
// By default, New maintains an explicit free-index list: allocation pops one
// index and release pushes one back, both in O(1). The order in which freed
// indices are reused is unspecified. NewLowMemory trades that O(1) behavior
// for a smaller footprint: it keeps no free list and instead scans for the
// first vacant slot on each Add, which costs O(capacity) per allocation.
package arena

import (
	"fmt"
	"sort"
)

// Index addresses a slot in an Arena. The zero Index is not meaningful on its
// own; use [NoIndex] to represent the absence of a reference.
type Index int32

// NoIndex is the sentinel Index meaning "no slot", used for absent child
// links and absent roots.
const NoIndex Index = -1

// Valid reports whether i could address a slot (i.e., is not [NoIndex]).
// It does not verify that the slot i names is currently live.
func (i Index) Valid() bool { return i >= 0 }

// CapacityExceededError is returned by Add when the arena has no free slots.
// It carries the value that could not be stored so the caller can salvage it.
type CapacityExceededError[T any] struct {
	Value T
}

func (e *CapacityExceededError[T]) Error() string {
	return fmt.Sprintf("arena: capacity exceeded, cannot store %v", e.Value)
}

// Is reports whether target is also a *CapacityExceededError[T], so that
// errors.Is(err, new(CapacityExceededError[T])) matches any such error
// regardless of the value it carries; use errors.As to recover that value.
func (e *CapacityExceededError[T]) Is(target error) bool {
	_, ok := target.(*CapacityExceededError[T])
	return ok
}

type slot[T any] struct {
	value T
	live  bool
}

// An Arena is a fixed-capacity collection of T slots addressed by Index.
// The zero Arena is not ready for use; construct one with [New] or
// [NewLowMemory]. An Arena is not safe for concurrent use without external
// synchronization.
type Arena[T any] struct {
	slots  []slot[T]
	free   []Index // explicit free list; unused when lowMem is true
	lowMem bool
	len    int
}

// New constructs an empty Arena with room for exactly capacity elements,
// backed by an explicit free-index list.
func New[T any](capacity int) *Arena[T] {
	return newArena[T](capacity, false)
}

// NewLowMemory constructs an empty Arena with room for exactly capacity
// elements that does not maintain a free-index list. Allocation costs
// O(capacity) instead of O(1); deallocation remains O(1).
func NewLowMemory[T any](capacity int) *Arena[T] {
	return newArena[T](capacity, true)
}

func newArena[T any](capacity int, lowMem bool) *Arena[T] {
	if capacity < 0 {
		panic("arena: negative capacity")
	}
	a := &Arena[T]{
		slots:  make([]slot[T], capacity),
		lowMem: lowMem,
	}
	if !lowMem {
		a.free = make([]Index, capacity)
		for i := range a.free {
			// Populate so that low indices are handed out first; order is
			// otherwise unspecified and callers must not depend on it.
			a.free[i] = Index(capacity - 1 - i)
		}
	}
	return a
}

// Len reports the number of live slots.
func (a *Arena[T]) Len() int { return a.len }

// Capacity reports the total number of slots, live or free.
func (a *Arena[T]) Capacity() int { return len(a.slots) }

// IsFull reports whether every slot is live.
func (a *Arena[T]) IsFull() bool { return a.len == len(a.slots) }

// Add stores v in a free slot and returns its Index. It returns a
// *CapacityExceededError[T] if the arena is full.
func (a *Arena[T]) Add(v T) (Index, error) {
	idx, ok := a.allocate()
	if !ok {
		return NoIndex, &CapacityExceededError[T]{Value: v}
	}
	a.slots[idx] = slot[T]{value: v, live: true}
	a.len++
	return idx, nil
}

// MustAdd is like Add but panics instead of returning an error. It is
// appropriate only when the caller can prove the arena is never exhausted.
func (a *Arena[T]) MustAdd(v T) Index {
	idx, err := a.Add(v)
	if err != nil {
		panic(err)
	}
	return idx
}

func (a *Arena[T]) allocate() (Index, bool) {
	if a.lowMem {
		for i := range a.slots {
			if !a.slots[i].live {
				return Index(i), true
			}
		}
		return NoIndex, false
	}
	if len(a.free) == 0 {
		return NoIndex, false
	}
	idx := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]
	return idx, true
}

// Remove marks index free and returns the value it held.
//
// Remove panics if index does not address a live slot.
func (a *Arena[T]) Remove(index Index) T {
	s := a.live(index)
	v := s.value
	var zero T
	s.value = zero
	s.live = false
	a.len--
	if !a.lowMem {
		a.free = append(a.free, index)
	}
	return v
}

// Get returns a pointer to the value stored at index, allowing in-place
// mutation. The returned pointer is stable for the life of the slot: it is
// invalidated only by a subsequent Remove of the same index or by SortBy.
//
// Get panics if index does not address a live slot.
func (a *Arena[T]) Get(index Index) *T {
	return &a.live(index).value
}

func (a *Arena[T]) live(index Index) *slot[T] {
	if index < 0 || int(index) >= len(a.slots) || !a.slots[index].live {
		panic(fmt.Sprintf("arena: index %d is not live", index))
	}
	return &a.slots[index]
}

// SortBy stably reorders the live slots of a according to less, and returns a
// mapping from each live slot's old Index to its new Index. After the call the
// live values occupy indices 0 through Len()-1 in sorted order and every
// higher index is free.
//
// It is an error to call SortBy while any traversal holds raw Index values
// derived from a, since every live index is invalidated by this call; the
// returned remap must be used to translate them.
func (a *Arena[T]) SortBy(less func(a, b *T) bool) map[Index]Index {
	type entry struct {
		old   Index
		value T
	}
	live := make([]entry, 0, a.len)
	for i := range a.slots {
		if a.slots[i].live {
			live = append(live, entry{old: Index(i), value: a.slots[i].value})
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return less(&live[i].value, &live[j].value)
	})

	remap := make(map[Index]Index, len(live))
	for i, e := range live {
		idx := Index(i)
		a.slots[idx] = slot[T]{value: e.value, live: true}
		remap[e.old] = idx
	}
	// Any slot beyond len(live) that used to be live is now free; the free
	// list (if any) was already wrong since indices moved, so rebuild it.
	if !a.lowMem {
		a.free = a.free[:0]
		for i := len(live); i < len(a.slots); i++ {
			a.slots[i] = slot[T]{}
			a.free = append(a.free, Index(i))
		}
	} else {
		for i := len(live); i < len(a.slots); i++ {
			a.slots[i] = slot[T]{}
		}
	}
	return remap
}

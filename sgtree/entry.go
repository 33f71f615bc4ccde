package sgtree

// An Entry is a handle to a located (or would-be-located) key position in a
// Tree, returned by [Tree.Entry]. It lets a caller insert or mutate a
// value at that position without performing the key lookup a second time.
type Entry[K, V any] struct {
	tree  *Tree[K, V]
	key   K
	path  []Index // owned copy of the path captured at lookup time
	found bool
	idx   Index // valid when found; == path[len(path)-1] if found at lookup time
}

// Entry returns a handle located at key. If key is present, the handle is
// Occupied; otherwise it is Vacant and ready to have a value inserted into
// it with OrInsert or OrInsertWith, attaching at the position already
// located by this call.
func (t *Tree[K, V]) Entry(key K) *Entry[K, V] {
	path := t.descend(key)
	e := &Entry[K, V]{
		tree:  t,
		key:   key,
		path:  append([]Index(nil), path...), // own a copy; t.scratchPath is reused elsewhere
		found: t.found(path, key),
	}
	if e.found {
		e.idx = path[len(path)-1]
	} else {
		e.idx = noIndex
	}
	return e
}

// Occupied reports whether e is located at an existing entry.
func (e *Entry[K, V]) Occupied() bool { return e.found }

// Key returns the key this entry is located at.
func (e *Entry[K, V]) Key() K { return e.key }

// OrInsert ensures e's key is present, inserting val if it was absent, and
// returns a pointer to the (possibly just-inserted) value.
//
// OrInsert panics if e's key is absent and the tree's arena is full; use
// [Entry.TryOrInsert] to handle that case without panicking.
func (e *Entry[K, V]) OrInsert(val V) *V {
	v, err := e.TryOrInsert(val)
	if err != nil {
		panic(err)
	}
	return v
}

// TryOrInsert is like OrInsert, but returns a *CapacityExceededError[K, V]
// instead of panicking if the tree's arena is full and e's key is absent.
func (e *Entry[K, V]) TryOrInsert(val V) (*V, error) {
	if e.found {
		return &e.tree.nodeAt(e.idx).val, nil
	}
	idx, err := e.tree.insertAtLocatedPath(e.key, val, e.path)
	if err != nil {
		return nil, err
	}
	e.found = true
	e.idx = idx
	return &e.tree.nodeAt(idx).val, nil
}

// OrInsertWith is like OrInsert, but computes the value to insert lazily,
// only if e's key is absent.
func (e *Entry[K, V]) OrInsertWith(f func() V) *V {
	if e.found {
		return &e.tree.nodeAt(e.idx).val
	}
	return e.OrInsert(f())
}

// AndModify calls f with a pointer to e's value if e is Occupied, and
// returns e unmodified. It is a no-op on a Vacant entry.
func (e *Entry[K, V]) AndModify(f func(*V)) *Entry[K, V] {
	if e.found {
		f(&e.tree.nodeAt(e.idx).val)
	}
	return e
}

// insertAtLocatedPath attaches a new node for key/val using a path already
// located by Entry, so that no second descent from the root is required. It
// shares the size bookkeeping and rebalance logic used by TryInsert.
func (t *Tree[K, V]) insertAtLocatedPath(key K, val V, path []Index) (Index, error) {
	if t.arena.IsFull() {
		return noIndex, &CapacityExceededError[K, V]{Key: key, Value: val}
	}
	newIdx, err := t.arena.Add(node[K, V]{key: key, val: val, left: noIndex, right: noIndex})
	if err != nil {
		return noIndex, &CapacityExceededError[K, V]{Key: key, Value: val}
	}

	if len(path) == 0 {
		t.root = newIdx
	} else {
		parent := t.nodeAt(path[len(path)-1])
		if t.cmp(key, parent.key) < 0 {
			parent.left = newIdx
		} else {
			parent.right = newIdx
		}
	}
	path = append(path, newIdx)
	t.size++
	if t.size > t.highWater {
		t.highWater = t.size
	}
	t.modCount++

	if t.cfg.fastRebalance {
		for _, idx := range path[:len(path)-1] {
			t.nodeAt(idx).size++
		}
		t.nodeAt(newIdx).size = 1
	}

	depth := len(path) - 1
	if depth > t.depthLimit(t.size) {
		if t.cfg.altImpl {
			t.rebalanceAfterInsertAlt(path)
		} else {
			t.rebalanceAfterInsert(path)
		}
	}
	return newIdx, nil
}

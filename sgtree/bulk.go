package sgtree

// Append moves every entry out of other and into t, leaving other empty.
// On a key collision, the entry from other wins, matching the standard
// ordered-map append contract.
//
// Append is not transactional across the whole transfer: if t's arena fills
// up partway through, Append stops and returns the resulting
// *CapacityExceededError[K, V], leaving the offending entry back in other
// and every entry already transferred in place in t. Only a single
// TryInsert call is guaranteed atomic; a multi-key bulk operation built on
// top of it is not.
func (t *Tree[K, V]) Append(other *Tree[K, V]) error {
	for other.size > 0 {
		k, v, _ := other.PopFirst()
		if _, _, err := t.TryInsert(k, v); err != nil {
			other.Insert(k, v) // restore the entry we failed to move
			return err
		}
	}
	return nil
}

// Retain visits t in ascending key order and removes every entry for which
// pred returns false.
func (t *Tree[K, V]) Retain(pred func(K, V) bool) {
	drop := t.scratchDrop[:0]
	t.Ascend(func(k K, v V) bool {
		if !pred(k, v) {
			drop = append(drop, k)
		}
		return true
	})
	for _, k := range drop {
		t.Remove(k)
	}
	t.scratchDrop = drop[:0]
}

// Extend inserts every key-value pair yielded by seq into t, in order,
// stopping and returning a *CapacityExceededError[K, V] on the first
// failure. It is the bulk counterpart of TryInsert and shares its
// non-atomicity caveat across multiple keys.
func (t *Tree[K, V]) Extend(seq func(yield func(K, V) bool)) error {
	var err error
	seq(func(k K, v V) bool {
		if _, _, e := t.TryInsert(k, v); e != nil {
			err = e
			return false
		}
		return true
	})
	return err
}

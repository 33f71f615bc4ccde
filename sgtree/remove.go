package sgtree

// Remove deletes key from t and reports whether it was present.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	_, v, ok := t.RemoveEntry(key)
	return v, ok
}

// RemoveEntry is like Remove but also returns the removed key.
func (t *Tree[K, V]) RemoveEntry(key K) (K, V, bool) {
	path := t.descend(key)
	if !t.found(path, key) {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	targetPos := len(path) - 1
	k, v := t.removeAtPath(path, targetPos)
	return k, v, true
}

// removeAtPath removes the node named by path[pos], which must exist, and
// returns its original key and value. It performs the standard two-child
// splice (swap in the in-order successor, then remove the now-childless
// slot that used to hold it) entirely iteratively, updates size bookkeeping,
// and applies the high-water-mark rebuild policy.
func (t *Tree[K, V]) removeAtPath(path []Index, pos int) (K, V) {
	target := path[pos]
	tn := t.nodeAt(target)
	key, val := tn.key, tn.val

	if tn.left != noIndex && tn.right != noIndex {
		// Two children: splice in the in-order successor (leftmost
		// descendant of the right child), extending path down to it so
		// that size bookkeeping below covers every node that lost mass.
		succParentPos := pos
		succ := tn.right
		path = append(path, succ)
		for t.nodeAt(succ).left != noIndex {
			succParentPos = len(path) - 1
			succ = t.nodeAt(succ).left
			path = append(path, succ)
		}
		sn := t.nodeAt(succ)
		tn.key, tn.val = sn.key, sn.val
		if succParentPos == pos {
			tn.right = sn.right
		} else {
			t.nodeAt(path[succParentPos]).left = sn.right
		}
		t.arena.Remove(succ)
	} else {
		var child Index
		if tn.left != noIndex {
			child = tn.left
		} else {
			child = tn.right
		}
		if pos == 0 {
			t.root = child
		} else {
			parent := t.nodeAt(path[pos-1])
			if parent.left == target {
				parent.left = child
			} else {
				parent.right = child
			}
		}
		t.arena.Remove(target)
	}

	if t.cfg.fastRebalance {
		// Every node on path except its last entry (the slot that was
		// actually freed — either the target itself, or the successor
		// spliced into it) lost exactly one node from its subtree.
		for _, idx := range path[:len(path)-1] {
			t.nodeAt(idx).size--
		}
	}

	t.scratchPath = path[:0]
	t.size--
	t.modCount++

	if float64(t.size) <= t.alpha()*float64(t.highWater) {
		t.rebuildWhole()
		t.highWater = t.size
	}

	return key, val
}

// PopFirst removes and returns the minimum entry of t, exploiting the
// leftmost path instead of a key search.
func (t *Tree[K, V]) PopFirst() (K, V, bool) {
	if t.root == noIndex {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	path := t.leftmostPath()
	k, v := t.removeAtPath(path, len(path)-1)
	return k, v, true
}

// PopLast removes and returns the maximum entry of t, exploiting the
// rightmost path instead of a key search.
func (t *Tree[K, V]) PopLast() (K, V, bool) {
	if t.root == noIndex {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	path := t.rightmostPath()
	k, v := t.removeAtPath(path, len(path)-1)
	return k, v, true
}

// FirstKeyValue returns the minimum entry of t without removing it.
func (t *Tree[K, V]) FirstKeyValue() (K, V, bool) {
	if t.root == noIndex {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	path := t.leftmostPath()
	nd := t.nodeAt(path[len(path)-1])
	t.scratchPath = path[:0]
	return nd.key, nd.val, true
}

// LastKeyValue returns the maximum entry of t without removing it.
func (t *Tree[K, V]) LastKeyValue() (K, V, bool) {
	if t.root == noIndex {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	path := t.rightmostPath()
	nd := t.nodeAt(path[len(path)-1])
	t.scratchPath = path[:0]
	return nd.key, nd.val, true
}

func (t *Tree[K, V]) leftmostPath() []Index {
	path := t.scratchPath[:0]
	cur := t.root
	for cur != noIndex {
		path = append(path, cur)
		cur = t.nodeAt(cur).left
	}
	t.scratchPath = path
	return path
}

func (t *Tree[K, V]) rightmostPath() []Index {
	path := t.scratchPath[:0]
	cur := t.root
	for cur != noIndex {
		path = append(path, cur)
		cur = t.nodeAt(cur).right
	}
	t.scratchPath = path
	return path
}

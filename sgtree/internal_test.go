package sgtree

import "testing"

// height returns the height of t's tree (the number of edges on the
// longest root-to-leaf path; an empty tree has height -1, a single-node
// tree has height 0), computed iteratively for use by white-box invariant
// checks.
func (t *Tree[K, V]) height() int {
	type frame struct {
		idx   Index
		depth int
	}
	if t.root == noIndex {
		return -1
	}
	stack := []frame{{t.root, 0}}
	max := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		nd := t.nodeAt(f.idx)
		if nd.left != noIndex {
			stack = append(stack, frame{nd.left, f.depth + 1})
		}
		if nd.right != noIndex {
			stack = append(stack, frame{nd.right, f.depth + 1})
		}
	}
	return max
}

// liveReachableCount walks the tree from the root and counts reachable
// nodes, used to check that every live arena slot is reachable (no leaks,
// no dangling children).
func (t *Tree[K, V]) liveReachableCount() int {
	if t.root == noIndex {
		return 0
	}
	stack := []Index{t.root}
	n := 0
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		nd := t.nodeAt(idx)
		if nd.left != noIndex {
			stack = append(stack, nd.left)
		}
		if nd.right != noIndex {
			stack = append(stack, nd.right)
		}
	}
	return n
}

func TestHeightHelperEmpty(t *testing.T) {
	tr := MustNew[int, int](8, func(a, b int) int { return a - b })
	if h := tr.height(); h != -1 {
		t.Errorf("height of empty tree = %d, want -1", h)
	}
}

func TestLiveReachableMatchesLen(t *testing.T) {
	tr := MustNew[int, int](64, func(a, b int) int { return a - b }, WithAlpha(2, 3))
	for i := 0; i < 50; i++ {
		tr.Insert(i, i*i)
	}
	for i := 0; i < 50; i += 2 {
		tr.Remove(i)
	}
	if got, want := tr.liveReachableCount(), tr.Len(); got != want {
		t.Errorf("liveReachableCount() = %d, want Len() = %d", got, want)
	}
}

func TestDepthLimitAfterInsertsWithinBound(t *testing.T) {
	const alphaNum, alphaDen = 2, 3
	tr := MustNew[int, int](64, func(a, b int) int { return a - b }, WithAlpha(alphaNum, alphaDen))
	for i := 0; i < 64; i++ {
		tr.Insert(i, i)
		// Allow a little slack around the floating-point log approximation
		// and its floor/rounding behavior; the property under test is
		// "stays close to the bound", not exact equality with it.
		limit := tr.depthLimit(tr.size) + 2
		if h := tr.height(); h > limit {
			t.Fatalf("after inserting %d: height = %d, want <= %d", i, h, limit)
		}
	}
}

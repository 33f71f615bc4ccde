package sgtree

// linkKind identifies where a rebuilt subtree's new root must be attached.
type linkKind uint8

const (
	linkRoot linkKind = iota
	linkLeft
	linkRight
)

// linkRef names the place that must be rewritten to point at a rebuilt
// subtree's new root: either the Tree's root field, or a specific child
// pointer of an existing, still-live node.
type linkRef struct {
	kind linkKind
	at   Index // valid node whose child is rewritten, for linkLeft/linkRight
}

func (t *Tree[K, V]) setLink(ref linkRef, val Index) {
	switch ref.kind {
	case linkRoot:
		t.root = val
	case linkLeft:
		t.nodeAt(ref.at).left = val
	case linkRight:
		t.nodeAt(ref.at).right = val
	}
}

// flatten performs an iterative in-order traversal of the subtree rooted at
// root, appending each visited Index to into in ascending key order. The
// explicit stack is bounded by the depth of the subtree.
func (t *Tree[K, V]) flatten(root Index, into []Index) []Index {
	stack := t.scratchStack[:0]
	cur := root
	for cur != noIndex || len(stack) > 0 {
		for cur != noIndex {
			stack = append(stack, cur)
			cur = t.nodeAt(cur).left
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		into = append(into, top)
		cur = t.nodeAt(top).right
	}
	t.scratchStack = stack[:0]
	return into
}

// rebuildRange rewires the nodes named by flat[lo:hi] into a perfectly
// balanced subtree, without allocating any node and without recursion: the
// work list of (lo, hi, destination) triples is an explicit stack, per the
// flatten-then-median procedure of a scapegoat rebuild. The new subtree's
// root is written to dest. Each rewired node's size field is refreshed when
// the Tree carries fast-rebalance metadata.
func (t *Tree[K, V]) rebuildRange(flat []Index, dest linkRef) {
	type job struct {
		lo, hi int
		dest   linkRef
	}
	jobs := t.scratchJobs[:0]
	jobs = append(jobs, job{0, len(flat), dest})
	for len(jobs) > 0 {
		j := jobs[len(jobs)-1]
		jobs = jobs[:len(jobs)-1]
		if j.lo >= j.hi {
			t.setLink(j.dest, noIndex)
			continue
		}
		mid := (j.lo + j.hi) / 2
		root := flat[mid]
		t.setLink(j.dest, root)
		n := t.nodeAt(root)
		if t.cfg.fastRebalance {
			n.size = j.hi - j.lo
		}
		jobs = append(jobs, job{mid + 1, j.hi, linkRef{kind: linkRight, at: root}})
		jobs = append(jobs, job{j.lo, mid, linkRef{kind: linkLeft, at: root}})
	}
	t.scratchJobs = jobs[:0]
}

// rebuildSubtreeAt flattens and rebuilds the subtree rooted at goat, which
// is recorded at path[pos], and rewires it into whatever path[pos] was
// previously linked from.
func (t *Tree[K, V]) rebuildSubtreeAt(path []Index, pos int) {
	goat := path[pos]
	flat := t.flatten(goat, t.scratchFlat[:0])
	t.scratchFlat = flat[:0]
	t.rebuildRange(flat, t.linkRefFor(path, pos))
}

// linkRefFor reports how path[pos] is attached to the rest of the tree: as
// the root, or as a specific child of path[pos-1].
func (t *Tree[K, V]) linkRefFor(path []Index, pos int) linkRef {
	if pos == 0 {
		return linkRef{kind: linkRoot}
	}
	parent := path[pos-1]
	if t.nodeAt(parent).left == path[pos] {
		return linkRef{kind: linkLeft, at: parent}
	}
	return linkRef{kind: linkRight, at: parent}
}

// rebuildWhole rebuilds the entire tree into perfect balance, used by the
// post-removal high-water-mark policy.
func (t *Tree[K, V]) rebuildWhole() {
	if t.root == noIndex {
		return
	}
	flat := t.flatten(t.root, t.scratchFlat[:0])
	t.scratchFlat = flat[:0]
	t.rebuildRange(flat, linkRef{kind: linkRoot})
}

package sgtree

// rebalanceAfterInsertAlt is the alternate iterative scapegoat search
// selected by [WithAltImplementation]. Instead of walking from the new leaf
// upward and stopping at the deepest unbalanced ancestor, it walks from the
// root downward and rebuilds the shallowest unbalanced ancestor it finds.
//
// Both strategies restore the weight-balance invariant, since rebuilding
// any α-unbalanced ancestor (not necessarily the deepest one) yields a
// subtree that is once again within bound. This formulation does strictly
// more weight-computation work in the common case, because it recomputes
// subtree sizes from scratch at every level rather than threading a running
// total up the path, and it is kept as an opt-in alternative rather than
// the default for that reason. It is exercised by the option-variant sweep
// test, not by the differential fuzz harness, and has not been shown to be
// an improvement.
func (t *Tree[K, V]) rebalanceAfterInsertAlt(path []Index) {
	alpha := t.alpha()
	for i := 0; i < len(path)-1; i++ {
		ancestor := path[i]
		childOnPath := path[i+1]
		childSize := t.subtreeSize(childOnPath)
		ancestorSize := t.subtreeSize(ancestor)
		if float64(childSize) > alpha*float64(ancestorSize) {
			t.rebuildSubtreeAt(path, i)
			return
		}
	}
}

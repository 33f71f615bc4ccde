// Package sgtree implements the scapegoat tree, an approximately-balanced
// binary search tree whose nodes live in a fixed-capacity [arena.Arena]
// instead of being individually heap-allocated.
//
// A scapegoat tree supports worst-case O(lg n) lookup and amortized O(lg n)
// insertion and deletion; the worst-case cost of a single insert or delete
// is O(n), paid only when a subtree is rebuilt into perfect balance. Unlike
// a red-black or AVL tree, interior nodes carry no balance metadata (except
// the subtree sizes maintained under WithFastRebalance): the tree is kept
// within a depth bound purely by comparing subtree weights against a tunable
// factor α, so the only per-instance bookkeeping is the current size and the
// high-water mark since the last full rebuild.
//
// Every traversal — search, insert, remove, and the rebuild that keeps the
// tree balanced — is implemented without recursion, using explicit index
// stacks sized by the tree's capacity, so a Tree can run to completion on a
// fixed, bounded amount of scratch space.
//
// The scapegoat tree algorithm is described by:
//
//	I. Galperin, R. Rivest: "Scapegoat Trees"
//	https://people.csail.mit.edu/rivest/pubs/GR93.pdf
package sgtree

import (
	"math"

	"github.com/arenasg/scapegoat/arena"
	"github.com/arenasg/scapegoat/compare"
)

// A Tree is an ordered map from K to V, balanced as a scapegoat tree over a
// fixed-capacity arena. The zero Tree is not ready for use; construct one
// with [New] or [MustNew]. A *Tree is not safe for concurrent use without
// external synchronization, and it is a programming error to mutate a Tree
// while a range-style iterator over it is in progress.
type Tree[K, V any] struct {
	arena *arena.Arena[node[K, V]]
	root  Index
	cmp   func(a, b K) int
	cfg   config

	size      int
	highWater int

	modCount uint64 // bumped on every structural mutation; see iter.go

	// Reused scratch buffers, so that search, insert, remove, rebuild, and
	// traversal do not allocate on the heap in steady state.
	scratchPath  []Index
	scratchStack []Index
	scratchFlat  []Index
	scratchDrop  []K
	scratchJobs  []struct {
		lo, hi int
		dest   linkRef
	}
}

// New constructs an empty Tree with room for exactly capacity keys, ordered
// by cmp, which must report a negative, zero, or positive number as a < b,
// a == b, or a > b respectively (a "total ordering" comparator in the sense
// of the standard [cmp.Compare] function).
//
// New returns an error only if an Option requests an out-of-range rebalance
// factor; see [WithAlpha].
func New[K, V any](capacity int, cmp func(a, b K) int, opts ...Option) (*Tree[K, V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateAlpha(cfg.alphaNum, cfg.alphaDen); err != nil {
		return nil, err
	}
	var a *arena.Arena[node[K, V]]
	if cfg.lowMemory {
		a = arena.NewLowMemory[node[K, V]](capacity)
	} else {
		a = arena.New[node[K, V]](capacity)
	}
	return &Tree[K, V]{
		arena: a,
		root:  noIndex,
		cmp:   cmp,
		cfg:   cfg,
	}, nil
}

// MustNew is like New but panics instead of returning an error.
func MustNew[K, V any](capacity int, cmp func(a, b K) int, opts ...Option) *Tree[K, V] {
	t, err := New[K, V](capacity, cmp, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// NewFromLess is like New, but accepts a less function (reporting whether a
// sorts before b) instead of a three-way comparison function, for key types
// that have a natural "less than" but no natural subtraction or three-way
// compare — [time.Time] via [compare.Time] is the common case.
func NewFromLess[K, V any](capacity int, less func(a, b K) bool, opts ...Option) (*Tree[K, V], error) {
	return New[K, V](capacity, compare.FromLessFunc(less), opts...)
}

// MustNewFromLess is like NewFromLess but panics instead of returning an
// error.
func MustNewFromLess[K, V any](capacity int, less func(a, b K) bool, opts ...Option) *Tree[K, V] {
	t, err := NewFromLess[K, V](capacity, less, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len reports the number of key-value pairs in t. This is a constant-time
// query.
func (t *Tree[K, V]) Len() int { return t.size }

// IsEmpty reports whether t is empty.
func (t *Tree[K, V]) IsEmpty() bool { return t.size == 0 }

// Capacity reports the maximum number of key-value pairs t can hold.
func (t *Tree[K, V]) Capacity() int { return t.arena.Capacity() }

// IsFull reports whether t currently holds Capacity entries.
func (t *Tree[K, V]) IsFull() bool { return t.arena.IsFull() }

// Clear discards all entries in t, leaving it empty. It does not change t's
// capacity or rebalance factor.
func (t *Tree[K, V]) Clear() {
	if t.root == noIndex && t.size == 0 {
		return
	}
	var a *arena.Arena[node[K, V]]
	if t.cfg.lowMemory {
		a = arena.NewLowMemory[node[K, V]](t.arena.Capacity())
	} else {
		a = arena.New[node[K, V]](t.arena.Capacity())
	}
	t.arena = a
	t.root = noIndex
	t.size = 0
	t.highWater = 0
	t.modCount++
}

// SetRebalanceFactor updates t's rebalance factor α = num/den in place. It
// does not trigger an immediate rebuild; the new factor is honored starting
// at the next insert or remove. It returns an [InvalidAlphaError] if
// num/den does not satisfy 0.5 <= num/den < 1.0.
func (t *Tree[K, V]) SetRebalanceFactor(num, den int) error {
	if err := validateAlpha(num, den); err != nil {
		return err
	}
	t.cfg.alphaNum, t.cfg.alphaDen = num, den
	return nil
}

func (t *Tree[K, V]) alpha() float64 {
	return float64(t.cfg.alphaNum) / float64(t.cfg.alphaDen)
}

// depthLimit returns floor(log_{1/alpha}(n)), the maximum path depth a tree
// of n nodes may reach before an insert must find a scapegoat. A fast
// floating-point approximation of log is explicitly permitted by the
// algorithm; correctness depends only on the weight test in
// rebalanceAfterInsert, not on this bound being exact.
func (t *Tree[K, V]) depthLimit(n int) int {
	a := t.alpha()
	if n <= 1 || a <= 0 {
		return n
	}
	base := math.Log(1 / a)
	if base == 0 {
		return n
	}
	return int(math.Log(float64(n)) / base)
}

func (t *Tree[K, V]) nodeAt(i Index) *node[K, V] { return t.arena.Get(i) }

// subtreeSize reports the number of nodes in the subtree rooted at idx. When
// the Tree was built WithFastRebalance this is an O(1) lookup; otherwise it
// performs an iterative traversal of the subtree using an explicit stack.
func (t *Tree[K, V]) subtreeSize(idx Index) int {
	if idx == noIndex {
		return 0
	}
	if t.cfg.fastRebalance {
		return t.nodeAt(idx).size
	}
	stack := t.scratchStack[:0]
	stack = append(stack, idx)
	n := 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		nd := t.nodeAt(top)
		if nd.left != noIndex {
			stack = append(stack, nd.left)
		}
		if nd.right != noIndex {
			stack = append(stack, nd.right)
		}
	}
	t.scratchStack = stack[:0]
	return n
}

// descend walks from the root toward key, appending every visited Index to
// the returned path in root-to-leaf order. If key is present, the path's
// last element is the matching node. Otherwise the path's last element (if
// any) is the would-be parent of key, and the caller determines the
// attachment side with one more comparison.
func (t *Tree[K, V]) descend(key K) []Index {
	path := t.scratchPath[:0]
	cur := t.root
	for cur != noIndex {
		path = append(path, cur)
		nd := t.nodeAt(cur)
		c := t.cmp(key, nd.key)
		if c == 0 {
			break
		} else if c < 0 {
			cur = nd.left
		} else {
			cur = nd.right
		}
	}
	t.scratchPath = path
	return path
}

func (t *Tree[K, V]) found(path []Index, key K) bool {
	return len(path) > 0 && t.cmp(t.nodeAt(path[len(path)-1]).key, key) == 0
}

// Get reports whether key is present in t, and if so returns its value.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	_, v, ok := t.GetKeyValue(key)
	return v, ok
}

// GetKeyValue is like Get but also returns the stored key.
func (t *Tree[K, V]) GetKeyValue(key K) (K, V, bool) {
	path := t.descend(key)
	if !t.found(path, key) {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	nd := t.nodeAt(path[len(path)-1])
	return nd.key, nd.val, true
}

// ContainsKey reports whether key is present in t.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	path := t.descend(key)
	return t.found(path, key)
}

// GetMut returns a pointer to the value stored at key, allowing in-place
// mutation, or (nil, false) if key is absent. The pointer is valid until the
// next structural mutation of t.
func (t *Tree[K, V]) GetMut(key K) (*V, bool) {
	path := t.descend(key)
	if !t.found(path, key) {
		return nil, false
	}
	return &t.nodeAt(path[len(path)-1]).val, true
}

// Insert is like TryInsert, but panics instead of returning an error if the
// arena backing t is full and key is new. Use Insert only when the caller
// can prove capacity will not be exceeded; otherwise use TryInsert.
func (t *Tree[K, V]) Insert(key K, val V) (old V, hadOld bool) {
	old, hadOld, err := t.TryInsert(key, val)
	if err != nil {
		panic(err)
	}
	return old, hadOld
}

// TryInsert inserts key/val into t. If key was already present, its value is
// overwritten and the previous value is returned with hadOld == true and no
// node is allocated. Otherwise a new node is allocated, added to t, and the
// tree is rebalanced if necessary.
//
// TryInsert returns a *CapacityExceededError[K, V] if key is new and t's
// arena is full; in that case t is left unchanged.
func (t *Tree[K, V]) TryInsert(key K, val V) (old V, hadOld bool, err error) {
	path := t.descend(key)
	if t.found(path, key) {
		nd := t.nodeAt(path[len(path)-1])
		old = nd.val
		nd.val = val
		return old, true, nil
	}
	if t.arena.IsFull() {
		var zero V
		return zero, false, &CapacityExceededError[K, V]{Key: key, Value: val}
	}
	newIdx, addErr := t.arena.Add(node[K, V]{key: key, val: val, left: noIndex, right: noIndex})
	if addErr != nil {
		// The IsFull check above should make this unreachable, but report it
		// faithfully rather than assume.
		var zero V
		return zero, false, &CapacityExceededError[K, V]{Key: key, Value: val}
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
	t.scratchPath = path
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

	var zero V
	return zero, false, nil
}

// rebalanceAfterInsert walks the insertion path from the new leaf back up
// toward the root, tracking the size of the subtree just descended from, and
// rebuilds the deepest ancestor whose child on the insertion path exceeds the
// α-weight bound. This integer weight test is algebraically equivalent to the
// depth-limit check that triggered it.
func (t *Tree[K, V]) rebalanceAfterInsert(path []Index) {
	childSize := 1 // the freshly-inserted leaf
	alpha := t.alpha()
	for i := len(path) - 2; i >= 0; i-- {
		a := path[i]
		nd := t.nodeAt(a)
		child := path[i+1]
		var sibling Index
		if nd.left == child {
			sibling = nd.right
		} else {
			sibling = nd.left
		}
		aSize := childSize + t.subtreeSize(sibling) + 1
		if float64(childSize) > alpha*float64(aSize) {
			t.rebuildSubtreeAt(path, i)
			return
		}
		childSize = aSize
	}
}

package sgtree

// An Option configures a Tree at construction time. Options correspond to
// the feature selectors of the underlying scapegoat algorithm: the default
// configuration favors O(1) allocation and O(subtree) weight checks, and the
// options below trade that for a smaller footprint, O(1) weight checks, or
// an experimental alternate iterative formulation.
type Option func(*config)

type config struct {
	alphaNum, alphaDen int
	lowMemory          bool
	fastRebalance      bool
	altImpl            bool
}

func defaultConfig() config {
	return config{alphaNum: 2, alphaDen: 3} // α = 2/3, a good general default.
}

// WithAlpha sets the rebalance factor used by a new Tree, overriding the
// default of 2/3. num/den must satisfy 0.5 <= num/den < 1.0; New and MustNew
// reject out-of-range values the same way SetRebalanceFactor does.
func WithAlpha(num, den int) Option {
	return func(c *config) { c.alphaNum, c.alphaDen = num, den }
}

// WithLowMemoryArena configures the Tree's node arena to scan for a free
// slot on insert (O(capacity) per allocation) instead of maintaining an
// explicit free-index list, trading insertion speed for a smaller
// footprint.
func WithLowMemoryArena() Option {
	return func(c *config) { c.lowMemory = true }
}

// WithFastRebalance configures every node to carry a maintained subtree-size
// field, so that the weight checks driving scapegoat selection become O(1)
// lookups instead of O(subtree) traversals. Every node carries the size field
// whether or not this option is set; the option controls only whether the
// field is maintained, so it does not change the memory cost of a node.
func WithFastRebalance() Option {
	return func(c *config) { c.fastRebalance = true }
}

// WithAltImplementation selects an alternate iterative formulation of the
// insert-time scapegoat search, which rebuilds at the shallowest unbalanced
// ancestor instead of the deepest. It is not guaranteed to be faster. The
// package tests exercise it in the option-variant sweep
// (TestLowMemoryAndFastRebalanceVariants); the differential fuzz harness runs
// the default configuration only.
func WithAltImplementation() Option {
	return func(c *config) { c.altImpl = true }
}

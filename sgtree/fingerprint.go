package sgtree

import (
	"fmt"
	"hash/fnv"
)

// Fingerprint returns a cheap structural hash of t's ordered key-value
// sequence: two trees holding the same entries always produce the same
// fingerprint, regardless of insertion order or arena layout, and a changed
// entry almost always produces a different one. It visits every entry once
// (O(n); the hasher and fmt's formatting of each entry may allocate) and is
// meant for deduplicating differential-fuzz corpus entries
// and quick "did anything change" checks, not as a cryptographic digest.
//
// K and V are unconstrained type parameters, so Fingerprint cannot treat
// them as raw bytes the way a []byte/string-keyed hash would; it instead
// feeds fmt's default formatting of each key and value into an FNV-1a
// hasher, the same accumulate-as-you-go shape as a byte-slice hash, just
// fed formatted text instead of raw bytes.
func (t *Tree[K, V]) Fingerprint() uint64 {
	h := fnv.New64a()
	t.Ascend(func(k K, v V) bool {
		fmt.Fprintf(h, "%v\x00%v\x01", k, v)
		return true
	})
	return h.Sum64()
}

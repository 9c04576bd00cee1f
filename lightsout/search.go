// SPDX-License-Identifier: MIT

package lightsout

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// minimumWeight scans particular ⊕ Σ_{i∈S} nulls[i] over every subset S of the basis
// and returns the lightest candidate and its subset mask (bit i set ⇔ nulls[i] ∈ S).
//
// Subsets are visited in Gray-code order, so each step XORs exactly one basis vector
// into the running candidate. The visiting order does not decide ties: precedes does.
// len(nulls) must be at most MaxSupportedNullity.
func minimumWeight(particular *bitset.BitSet, nulls []*bitset.BitSet) (*bitset.BitSet, uint64) {
	k := uint(len(nulls))
	cur := particular.Clone()
	best := particular.Clone()
	bestWeight := best.Count()
	var gray, bestMask uint64

	for i := uint64(1); i < uint64(1)<<k; i++ {
		flip := bits.TrailingZeros64(i)
		cur.InPlaceSymmetricDifference(nulls[flip])
		gray ^= uint64(1) << flip

		w := cur.Count()
		if w < bestWeight || (w == bestWeight && precedes(gray, bestMask)) {
			best = cur.Clone()
			bestWeight, bestMask = w, gray
		}
	}

	return best, bestMask
}

// precedes reports whether subset a is listed before subset b when subsets are
// ordered by size, then lexicographically by their ascending index lists.
// For equal sizes, a comes first iff it owns the lowest index where the two differ.
func precedes(a, b uint64) bool {
	ca, cb := bits.OnesCount64(a), bits.OnesCount64(b)
	if ca != cb {
		return ca < cb
	}
	diff := a ^ b
	if diff == 0 {
		return false
	}

	return a&(diff&-diff) != 0
}

// SPDX-License-Identifier: MIT

package matrix

import "github.com/bits-and-blooms/bitset"

// boolsToBits packs a []bool into a bitset of the same length.
func boolsToBits(x []bool) *bitset.BitSet {
	b := bitset.New(uint(len(x)))
	for i, v := range x {
		if v {
			b.Set(uint(i))
		}
	}

	return b
}

// bitsToBools unpacks the first n bits of b.
func bitsToBools(b *bitset.BitSet, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = b.Test(uint(i))
	}

	return out
}

// VectorFromBools is the exported form of boolsToBits, for callers holding board cells.
func VectorFromBools(x []bool) *bitset.BitSet { return boolsToBits(x) }

// VectorToBools unpacks a bit vector into len(x) booleans.
func VectorToBools(x *bitset.BitSet) []bool { return bitsToBools(x, int(x.Len())) }

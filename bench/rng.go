// Package bench - deterministic seed derivation for the sweep.
//
// Every (cell, repetition) pair gets its own RNG seed, mixed from the base
// seed and the pair's index with a SplitMix64-style finalizer. Deriving from
// indexes instead of sharing one stream is what makes the parallel mode
// bit-identical to the sequential one: no draw order, no contention, no
// coupling between cells.
package bench

// defaultSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// normalizeSeed applies the seed-zero policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed. The constants are the canonical SplitMix64 multipliers/finalizer;
// they give strong bit diffusion so that consecutive stream ids produce
// uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// drawSeed is the seed for repetition rep of cell cellIdx under base. The
// two-step chain (cell stream first, then the repetition within it) keeps
// every (cell, repetition) pair on a distinct stream for any cell count and
// any repetition count.
func drawSeed(base int64, cellIdx, rep int) int64 {
	return deriveSeed(deriveSeed(base, uint64(cellIdx)), uint64(rep))
}

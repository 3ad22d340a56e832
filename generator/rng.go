// RNG utilities shared by every generator entry point.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: no time-based sources anywhere in the package.
//
// math/rand.Rand is NOT goroutine-safe; each call builds its own stream.
package generator

import "math/rand"

// defaultRNGSeed replaces seed==0 so the zero value stays reproducible.
const defaultRNGSeed int64 = 1

// Stream ids for derived sub-streams.
const (
	streamMutate uint64 = iota + 1
	streamBreed
)

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer) so
// sub-streams do not correlate with the parent stream.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// between draws uniformly from the inclusive range [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

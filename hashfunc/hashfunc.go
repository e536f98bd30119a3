package hashfunc

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// KnuthMultiplier - (√5 - 1) / 2, the multiplier suggested by Knuth for the multiplication method
var KnuthMultiplier = 0.5 * (math.Sqrt(5) - 1)

// IntDiv - Hashing by the division method, x mod m.
// The key is taken as its unsigned bit pattern, so negative keys land in [0, m) as well.
//   - x is the key
//   - m is the table capacity, must be higher than 0 (zero)
func IntDiv[T constraints.Integer](x T, m int) int {
	mustHaveCapacity(m)

	return int(uint64(x) % uint64(m))
}

// IntMult - Hashing by the multiplication method, floor(m * frac(a * x)).
//   - x is the key
//   - a is the multiplier, must be in the open range (0, 1)
//   - m is the table capacity, must be higher than 0 (zero)
func IntMult[T constraints.Integer](x T, a float64, m int) int {
	mustHaveCapacity(m)
	if a <= 0 || a >= 1 {
		panic(fmt.Sprintf("hashfunc: multiplier %v outside (0, 1)", a))
	}

	frac := math.Mod(a*float64(x), 1.0)
	if frac < 0 {
		frac += 1.0
	}

	h := int(math.Floor(float64(m) * frac))
	if h >= m {
		// frac can round up to exactly 1.0 after the negative adjustment
		h = m - 1
	}

	return h
}

// IntMultKnuth - Multiplication method using KnuthMultiplier
func IntMultKnuth[T constraints.Integer](x T, m int) int {
	return IntMult(x, KnuthMultiplier, m)
}

// mustHaveCapacity - Panics if a hash function is called with a capacity that leaves no valid index
func mustHaveCapacity(m int) {
	if m <= 0 {
		panic(fmt.Sprintf("hashfunc: capacity must be higher than 0 (zero), got %d", m))
	}
}

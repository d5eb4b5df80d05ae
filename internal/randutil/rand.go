// Package randutil builds reproducible random number generators.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

// New returns a generator whose sequence is fixed by seed. Both PCG seeds
// come from chained splitmix64 steps, so nearby seeds still give
// unrelated streams.
func New(seed int64) *rand.Rand {
	hi := splitmix(uint64(seed))
	low := splitmix(hi)
	return rand.New(rand.NewPCG(hi, low))
}

// SeedOrNow returns seed, or a seed taken from the clock when seed is 0.
func SeedOrNow(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	if s := now.UnixNano(); s != 0 {
		return s
	}
	return 1
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

package cpu

import (
	"math/rand/v2"
	"time"
)

// Random is the seedable source behind the random instruction.
type Random struct {
	Seed uint64 // Seed in use; 0 seeds from the clock.

	rng *rand.Rand
}

// NewRandom returns a source with a seed, or clock seeded for seed 0.
func NewRandom(seed uint64) (r *Random) {
	r = &Random{}
	r.Reseed(seed)
	return
}

// Reseed restarts the sequence.
func (r *Random) Reseed(seed uint64) {
	r.Seed = seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r.rng = rand.New(rand.NewPCG(seed, seed))
}

// Next returns 1..n for a positive range. A negative range reseeds with
// its magnitude, and 0 reseeds from the clock; both return 0.
func (r *Random) Next(n int16) (value uint16) {
	switch {
	case n > 0:
		value = 1 + uint16(r.rng.IntN(int(n)))
	case n < 0:
		r.Reseed(uint64(-int32(n)))
	default:
		r.Reseed(0)
	}

	return
}

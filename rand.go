package main

import "math/rand/v2"

// Rand is a small deterministic random number generator. It is a plain value:
// copying a Rand gives a second generator that produces the same numbers as
// the source from that point on.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed uint64) Rand {
	return Rand{*rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// RInt returns a number in [min, max], both ends included.
func (r *Rand) RInt(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + int64(r.pcg.Uint64()%uint64(max-min+1))
}

// RFloat returns a number in [min, max).
func (r *Rand) RFloat(min, max float64) float64 {
	f := float64(r.pcg.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

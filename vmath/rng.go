package vmath

import (
	"math"
	"time"
)

// XorShift is a seed-deterministic, non-cryptographic 64-bit generator
// A zero seed yields a stream of zeros; it is not remapped so seeds reproduce exactly
type XorShift struct {
	state uint64
}

func NewXorShift(seed uint64) *XorShift {
	return &XorShift{state: seed}
}

func (r *XorShift) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Range maps the next output into [lo, hi) by float remainder of the raw value
// The result is heavily biased toward lo: float32 cannot represent most 64-bit
// integers, so large outputs are multiples of the span
func (r *XorShift) Range(lo, hi float32) float32 {
	span := hi - lo
	raw := float32(r.Next())
	return lo + float32(math.Mod(float64(raw), float64(span)))
}

// SeedFromTime derives a seed from the sub-second microsecond count of t
// Coarse and collision-prone: readings inside the same microsecond of any second collide
func SeedFromTime(t time.Time) uint64 {
	return uint64(t.Nanosecond() / int(time.Microsecond))
}

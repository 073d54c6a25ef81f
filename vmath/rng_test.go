package vmath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXorShiftSeed42Fixture(t *testing.T) {
	want := []uint64{
		45454805674,
		11532217803599905471,
		10021416941527320954,
		2899061411254629736,
		5661411637479084162,
		10094803945545275427,
		11439985393877029075,
		10624261412083704114,
	}

	rng := NewXorShift(42)
	for i, w := range want {
		assert.Equalf(t, w, rng.Next(), "output %d", i)
	}
}

func TestXorShiftDeterministic(t *testing.T) {
	a := NewXorShift(123456)
	b := NewXorShift(123456)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestXorShiftZeroSeedIsStuck(t *testing.T) {
	rng := NewXorShift(0)
	for i := 0; i < 4; i++ {
		assert.Zero(t, rng.Next())
	}
}

func TestXorShiftRange(t *testing.T) {
	tests := []struct {
		name   string
		seed   uint64
		lo, hi float32
		want   float32
	}{
		// next() == 5, 5 mod 2 == 1
		{"odd small output", 5186526723850690427, -1, 1, 0},
		// next() == 7, 7 mod 4 == 3
		{"wider span", 4265428148487058400, 0, 4, 3},
		// large outputs round to multiples of the span
		{"large output collapses to lo", 42, -1, 1, -1},
		{"zero seed", 0, -1, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewXorShift(tt.seed).Range(tt.lo, tt.hi)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestXorShiftRangeBounds(t *testing.T) {
	rng := NewXorShift(987654321)
	for i := 0; i < 1000; i++ {
		v := rng.Range(-1, 1)
		require.GreaterOrEqual(t, v, float32(-1))
		require.Less(t, v, float32(1))
	}
}

func TestSeedFromTime(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, uint64(0), SeedFromTime(base))
	assert.Equal(t, uint64(1500), SeedFromTime(base.Add(1500*time.Microsecond+999)))
	// Whole seconds do not contribute
	assert.Equal(t, SeedFromTime(base.Add(250*time.Microsecond)), SeedFromTime(base.Add(3*time.Second+250*time.Microsecond)))
}

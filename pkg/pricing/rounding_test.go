package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUpToHundred(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{-50, 0},
		{100, 100},
		{101, 200},
		{28750, 28800},
		{21600, 21600},
		{1, 100},
		{99.5, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundUpToHundred(tt.in), "input %v", tt.in)
	}
}

func TestRoundUpToHundredNonFinite(t *testing.T) {
	assert.Equal(t, 0.0, RoundUpToHundred(math.NaN()))
	assert.Equal(t, 0.0, RoundUpToHundred(math.Inf(1)))
	assert.Equal(t, 0.0, RoundUpToHundred(math.Inf(-1)))
}

func TestRoundUpToHundredProperties(t *testing.T) {
	for n := 1.0; n <= 5000; n += 7.3 {
		f := RoundUpToHundred(n)
		assert.Equal(t, 0.0, math.Mod(f, 100), "f(%v) must be a multiple of 100", n)
		assert.True(t, n <= f, "f(%v)=%v must not round down", n, f)
		assert.True(t, f-100 < n, "f(%v)=%v overshoots", n, f)
	}
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 3750.0, roundPercent(25000, 15))
	assert.Equal(t, 3333.0, roundPercent(22220, 15)) // 3333.0 nearest
	assert.Equal(t, 0.0, roundPercent(25000, 0))
}

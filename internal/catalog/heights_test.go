package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForMatching(t *testing.T) {
	tests := []struct {
		height   float64
		expected float64
	}{
		{2350, 2000}, // band A
		{2750, 2000}, // band B
		{2100, 2100}, // below bands, unchanged
		{2000, 2000},
		{2301, 2000},
		{2500, 2000},
		{2501, 2000},
		{3000, 2000},
		{3001, 3001}, // above bands, unchanged
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeForMatching(tt.height), "height %v", tt.height)
	}
}

func TestBandOf(t *testing.T) {
	assert.Equal(t, BandNone, BandOf(2300))
	assert.Equal(t, BandA, BandOf(2301))
	assert.Equal(t, BandA, BandOf(2500))
	assert.Equal(t, BandB, BandOf(2501))
	assert.Equal(t, BandB, BandOf(3000))
	assert.Equal(t, BandNone, BandOf(3001))
	assert.Equal(t, BandNone, BandOf(2000))
}

func TestBandAttributesAndLabels(t *testing.T) {
	assert.Equal(t, "height_2500_percent", BandA.PercentAttr())
	assert.Equal(t, "height_3000_percent", BandB.PercentAttr())
	assert.Equal(t, "", BandNone.PercentAttr())

	assert.Equal(t, "Height 2301-2500", BandA.Label())
	assert.Equal(t, "Height 2501-3000", BandB.Label())
	assert.Equal(t, "", BandNone.Label())
}

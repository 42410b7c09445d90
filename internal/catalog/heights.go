package catalog

// Doors are stocked at canonical heights only. Heights above 2300 are
// sold as two priced bands: the band is a percentage surcharge on the
// canonical 2000 row, not a distinct catalog row.
const (
	CanonicalHeight = 2000

	bandAFloor = 2301
	bandACeil  = 2500
	bandBFloor = 2501
	bandBCeil  = 3000
)

// HeightBand identifies which priced height range a selection falls in.
type HeightBand int

const (
	BandNone HeightBand = iota
	BandA               // 2301-2500
	BandB               // 2501-3000
)

// BandOf returns the band a height belongs to, or BandNone.
func BandOf(height float64) HeightBand {
	switch {
	case height >= bandAFloor && height <= bandACeil:
		return BandA
	case height >= bandBFloor && height <= bandBCeil:
		return BandB
	default:
		return BandNone
	}
}

// NormalizeForMatching maps banded heights to the canonical stocked
// height used for row filtering; any other height passes unchanged.
func NormalizeForMatching(height float64) float64 {
	if BandOf(height) != BandNone {
		return CanonicalHeight
	}
	return height
}

// PercentAttr names the row attribute carrying the band's percentage
// surcharge. Empty for BandNone.
func (b HeightBand) PercentAttr() string {
	switch b {
	case BandA:
		return "height_2500_percent"
	case BandB:
		return "height_3000_percent"
	default:
		return ""
	}
}

// Label is the customer-facing breakdown label for the band range.
func (b HeightBand) Label() string {
	switch b {
	case BandA:
		return "Height 2301-2500"
	case BandB:
		return "Height 2501-3000"
	default:
		return ""
	}
}

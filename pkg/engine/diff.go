package engine

import "github.com/door-configurator/price-engine/pkg/types"

// DiffResult compares two priced results, e.g. the same door with and
// without an option.
type DiffResult struct {
	BeforeTotal float64     `json:"before_total"`
	AfterTotal  float64     `json:"after_total"`
	Delta       float64     `json:"delta"`
	Lines       []LineDelta `json:"lines,omitempty"`
}

// LineDelta is the per-label change between two breakdowns.
type LineDelta struct {
	Label  string  `json:"label"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
	Delta  float64 `json:"delta"`
}

// Diff calculates the price delta between two results. Line deltas are
// keyed by label, ordered as they appear in the after breakdown with
// removed lines appended in before order.
func Diff(before, after *types.PriceResult) *DiffResult {
	result := &DiffResult{
		BeforeTotal: before.Total,
		AfterTotal:  after.Total,
		Delta:       after.Total - before.Total,
	}

	beforeAmounts := make(map[string]float64, len(before.Breakdown))
	for _, line := range before.Breakdown {
		beforeAmounts[line.Label] += line.Amount
	}

	seen := make(map[string]bool, len(after.Breakdown))
	for _, line := range after.Breakdown {
		if seen[line.Label] {
			continue
		}
		seen[line.Label] = true
		prev := beforeAmounts[line.Label]
		if prev != line.Amount {
			result.Lines = append(result.Lines, LineDelta{
				Label:  line.Label,
				Before: prev,
				After:  line.Amount,
				Delta:  line.Amount - prev,
			})
		}
	}
	for _, line := range before.Breakdown {
		if !seen[line.Label] {
			seen[line.Label] = true
			result.Lines = append(result.Lines, LineDelta{
				Label:  line.Label,
				Before: line.Amount,
				After:  0,
				Delta:  -line.Amount,
			})
		}
	}
	return result
}

package engine

import (
	"strings"

	"github.com/door-configurator/price-engine/internal/catalog"
	"github.com/door-configurator/price-engine/pkg/types"
)

// NormalizeSelection trims free-text fields and canonicalizes the
// mirror mode so that downstream comparisons see empty-normalized
// values. The input selection is not mutated.
func NormalizeSelection(sel types.Selection) types.Selection {
	out := sel
	out.Model = strings.TrimSpace(sel.Model)
	out.Style = strings.TrimSpace(sel.Style)
	out.Finish = strings.TrimSpace(sel.Finish)
	out.Color = strings.TrimSpace(sel.Color)
	out.Filling = strings.TrimSpace(sel.Filling)
	out.Supplier = strings.TrimSpace(sel.Supplier)
	out.EdgeID = strings.TrimSpace(sel.EdgeID)
	out.HardwareKitRef = strings.TrimSpace(sel.HardwareKitRef)
	out.HandleRef = strings.TrimSpace(sel.HandleRef)
	out.LimiterRef = strings.TrimSpace(sel.LimiterRef)

	switch types.MirrorMode(strings.TrimSpace(string(sel.Mirror))) {
	case types.MirrorOneSide:
		out.Mirror = types.MirrorOneSide
	case types.MirrorBothSides:
		out.Mirror = types.MirrorBothSides
	default:
		out.Mirror = types.MirrorNone
	}

	if len(sel.OptionRefs) > 0 {
		refs := make([]string, 0, len(sel.OptionRefs))
		for _, ref := range sel.OptionRefs {
			if ref = strings.TrimSpace(ref); ref != "" {
				refs = append(refs, ref)
			}
		}
		out.OptionRefs = refs
	}
	return out
}

// availabilityWarnings flags options requested against a row whose
// availability flags say otherwise. Warnings never change the price
// and never fail the calculation; the gap is a data-consistency issue
// in the catalog, not an engine error.
func availabilityWarnings(row types.CatalogRow, sel types.Selection) []string {
	props := catalog.Of(row)
	var warnings []string

	if sel.Reversible && props.Has("reversible_available") && !isTruthy(props.Str("reversible_available")) {
		warnings = append(warnings, "reversible opening requested but not available for this variant")
	}
	if sel.Threshold && props.Has("threshold_available") && !isTruthy(props.Str("threshold_available")) {
		warnings = append(warnings, "threshold requested but not available for this variant")
	}
	return warnings
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

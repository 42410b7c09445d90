package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/door-configurator/price-engine/pkg/types"
)

func standardRow(extra map[string]interface{}) types.CatalogRow {
	attrs := map[string]interface{}{
		"model":        "M1",
		"retail_price": 22000.0,
	}
	for k, v := range extra {
		attrs[k] = v
	}
	return types.CatalogRow{ID: "r1", SKU: "SKU-1", Name: "Door M1", Attributes: attrs}
}

func TestBuildBaseLineOnly(t *testing.T) {
	lines, total := Build(standardRow(nil), types.Selection{}, Lookups{})

	require.Len(t, lines, 1)
	assert.Equal(t, types.BreakdownLine{Label: "Door", Amount: 22000}, lines[0])
	assert.Equal(t, 22000.0, total)
}

func TestBuildHeightBandSurcharge(t *testing.T) {
	row := standardRow(map[string]interface{}{
		"retail_price":        25000.0,
		"height_2500_percent": 15.0,
	})
	lines, total := Build(row, types.Selection{Height: 2350}, Lookups{})

	require.Len(t, lines, 2)
	assert.Equal(t, types.BreakdownLine{Label: "Height 2301-2500", Amount: 3750}, lines[1])
	assert.Equal(t, 28750.0, total)
}

func TestBuildBandBReadsOtherAttr(t *testing.T) {
	row := standardRow(map[string]interface{}{
		"height_2500_percent": 15.0,
		"height_3000_percent": 25.0,
	})
	lines, _ := Build(row, types.Selection{Height: 2750}, Lookups{})

	require.Len(t, lines, 2)
	assert.Equal(t, "Height 2501-3000", lines[1].Label)
	assert.Equal(t, 5500.0, lines[1].Amount)
}

func TestBuildFlatSurcharges(t *testing.T) {
	row := standardRow(map[string]interface{}{
		"reversible_price":      500.0,
		"mirror_one_side_price": 1500.0,
		"threshold_price":       800.0,
	})

	lines, total := Build(row, types.Selection{Reversible: true}, Lookups{})
	require.Len(t, lines, 2)
	assert.Equal(t, types.BreakdownLine{Label: "Reversible opening", Amount: 500}, lines[1])
	assert.Equal(t, 22500.0, total)

	lines, total = Build(row, types.Selection{Mirror: types.MirrorOneSide}, Lookups{})
	require.Len(t, lines, 2)
	assert.Equal(t, types.BreakdownLine{Label: "Mirror one side", Amount: 1500}, lines[1])
	assert.Equal(t, 23500.0, total)

	lines, total = Build(row, types.Selection{Threshold: true}, Lookups{})
	require.Len(t, lines, 2)
	assert.Equal(t, types.BreakdownLine{Label: "Threshold", Amount: 800}, lines[1])
	assert.Equal(t, 22800.0, total)
}

func TestBuildMissingAttributeEmitsNoLine(t *testing.T) {
	// Row has no reversible/mirror/threshold attributes at all.
	lines, total := Build(standardRow(nil), types.Selection{
		Reversible: true,
		Mirror:     types.MirrorBothSides,
		Threshold:  true,
	}, Lookups{})

	require.Len(t, lines, 1)
	assert.Equal(t, 22000.0, total)
}

func TestBuildEdgeSurcharge(t *testing.T) {
	row := standardRow(map[string]interface{}{
		"edge_base_color": "silver",
		"edge_color_1":    "gold",
		"edge_price_1":    900.0,
		"edge_color_2":    "black",
		"edge_price_2":    700.0,
	})

	// Base edge color is already included.
	lines, _ := Build(row, types.Selection{EdgeID: "silver"}, Lookups{})
	assert.Len(t, lines, 1)

	// Sentinel means no edge at all.
	lines, _ = Build(row, types.Selection{EdgeID: EdgeNone}, Lookups{})
	assert.Len(t, lines, 1)

	// Slot match.
	lines, total := Build(row, types.Selection{EdgeID: "black"}, Lookups{})
	require.Len(t, lines, 2)
	assert.Equal(t, types.BreakdownLine{Label: "Edge black", Amount: 700}, lines[1])
	assert.Equal(t, 22700.0, total)

	// Unknown edge id emits nothing.
	lines, _ = Build(row, types.Selection{EdgeID: "copper"}, Lookups{})
	assert.Len(t, lines, 1)
}

func TestBuildHardwareKit(t *testing.T) {
	kits := []types.CatalogRow{
		{ID: "kit-1", Name: "Kit basic", BasePrice: 2500, Attributes: map[string]interface{}{
			"kit_name":        "Hinge & lock set",
			"kit_group_price": 3000.0,
		}},
		{ID: "kit-2", Name: "Kit plain", BasePrice: 2100},
	}

	lines, _ := Build(standardRow(nil), types.Selection{HardwareKitRef: "kit-1"}, Lookups{HardwareKits: kits})
	require.Len(t, lines, 2)
	assert.Equal(t, types.BreakdownLine{Label: "Hinge & lock set", Amount: 3000}, lines[1])

	// Group price absent falls back to the listed base price.
	lines, _ = Build(standardRow(nil), types.Selection{HardwareKitRef: "kit-2"}, Lookups{HardwareKits: kits})
	require.Len(t, lines, 2)
	assert.Equal(t, types.BreakdownLine{Label: "Kit plain", Amount: 2100}, lines[1])

	// Unknown kit id contributes nothing.
	lines, _ = Build(standardRow(nil), types.Selection{HardwareKitRef: "kit-9"}, Lookups{HardwareKits: kits})
	assert.Len(t, lines, 1)
}

func TestBuildHandleAndBackplate(t *testing.T) {
	handles := []types.CatalogRow{
		{ID: "h-1", Name: "Handle Nord", BasePrice: 1000, Attributes: map[string]interface{}{
			"handle_name":       "Nord chrome",
			"handle_web_price":  1800.0,
			"handle_sale_price": 1600.0,
			"backplate_price":   400.0,
		}},
		{ID: "h-2", Name: "Handle Sale", BasePrice: 1000, Attributes: map[string]interface{}{
			"handle_sale_price": 1200.0,
		}},
	}

	lines, total := Build(standardRow(nil), types.Selection{HandleRef: "h-1", Backplate: true}, Lookups{Handles: handles})
	require.Len(t, lines, 3)
	assert.Equal(t, types.BreakdownLine{Label: "Nord chrome", Amount: 1800}, lines[1])
	assert.Equal(t, types.BreakdownLine{Label: "Backplate", Amount: 400}, lines[2])
	assert.Equal(t, 24200.0, total)

	// Web price absent falls back to sale price.
	lines, _ = Build(standardRow(nil), types.Selection{HandleRef: "h-2"}, Lookups{Handles: handles})
	require.Len(t, lines, 2)
	assert.Equal(t, 1200.0, lines[1].Amount)

	// Backplate without a backplate price emits no second line.
	lines, _ = Build(standardRow(nil), types.Selection{HandleRef: "h-2", Backplate: true}, Lookups{Handles: handles})
	assert.Len(t, lines, 2)
}

func TestBuildLimiterAndOptions(t *testing.T) {
	limiter := types.CatalogRow{ID: "lim-1", Name: "Soft stop", BasePrice: 650}
	options := []types.CatalogRow{
		{ID: "opt-1", Name: "Wall trim", Attributes: map[string]interface{}{"retail_price": 1100.0}},
		{ID: "opt-2", Name: "Extension panel", BasePrice: 2400},
	}

	lk := Lookups{
		GetLimiter: func(id string) *types.CatalogRow {
			if id == "lim-1" {
				return &limiter
			}
			return nil
		},
		GetOptionRows: func(ids []string) []types.CatalogRow {
			return options
		},
	}

	sel := types.Selection{LimiterRef: "lim-1", OptionRefs: []string{"opt-1", "opt-2"}}
	lines, total := Build(standardRow(nil), sel, lk)

	require.Len(t, lines, 4)
	assert.Equal(t, types.BreakdownLine{Label: "Soft stop", Amount: 650}, lines[1])
	assert.Equal(t, types.BreakdownLine{Label: "Wall trim", Amount: 1100}, lines[2])
	assert.Equal(t, types.BreakdownLine{Label: "Extension panel", Amount: 2400}, lines[3])
	assert.Equal(t, 26150.0, total)

	// Missing limiter reference contributes no line.
	sel = types.Selection{LimiterRef: "lim-9"}
	lines, _ = Build(standardRow(nil), sel, lk)
	assert.Len(t, lines, 1)
}

func TestBuildContributorOrderIsFixed(t *testing.T) {
	row := standardRow(map[string]interface{}{
		"height_2500_percent": 10.0,
		"reversible_price":    500.0,
		"threshold_price":     800.0,
	})
	sel := types.Selection{Height: 2400, Reversible: true, Threshold: true}

	lines, _ := Build(row, sel, Lookups{})
	require.Len(t, lines, 4)
	assert.Equal(t, "Door", lines[0].Label)
	assert.Equal(t, "Height 2301-2500", lines[1].Label)
	assert.Equal(t, "Reversible opening", lines[2].Label)
	assert.Equal(t, "Threshold", lines[3].Label)
}

package pricing

import (
	"fmt"

	"github.com/door-configurator/price-engine/internal/catalog"
	"github.com/door-configurator/price-engine/internal/variant"
	"github.com/door-configurator/price-engine/pkg/types"
)

// EdgeNone is the sentinel edge id meaning "no edge trim requested".
const EdgeNone = "none"

// edgeSlots is the number of numbered edge color/price attribute pairs
// a row can carry beyond its base edge color.
const edgeSlots = 3

// Lookups are the auxiliary catalogs the breakdown builder consults.
// The two callbacks are the only points where the caller may perform
// I/O; the builder treats them as synchronous pure functions and a
// missing reference silently contributes no line.
type Lookups struct {
	HardwareKits  []types.CatalogRow
	Handles       []types.CatalogRow
	GetLimiter    func(id string) *types.CatalogRow
	GetOptionRows func(ids []string) []types.CatalogRow
}

// Build produces the ordered breakdown for one resolved row and the
// running sum of all line amounts (before total rounding). The base
// "Door" line is always first; every other contributor appends a line
// only when its computed amount is positive.
func Build(row types.CatalogRow, sel types.Selection, lk Lookups) ([]types.BreakdownLine, float64) {
	base := variant.RetailPrice(row)
	lines := []types.BreakdownLine{{Label: "Door", Amount: base}}
	total := base

	add := func(label string, amount float64) {
		if amount > 0 {
			lines = append(lines, types.BreakdownLine{Label: label, Amount: amount})
			total += amount
		}
	}

	props := catalog.Of(row)

	if band := catalog.BandOf(sel.Height); band != catalog.BandNone {
		if pct := props.Num(band.PercentAttr()); pct > 0 {
			add(band.Label(), roundPercent(base, pct))
		}
	}

	if sel.Reversible {
		add("Reversible opening", props.Num("reversible_price"))
	}

	switch sel.Mirror {
	case types.MirrorOneSide:
		add("Mirror one side", props.Num("mirror_one_side_price"))
	case types.MirrorBothSides:
		add("Mirror both sides", props.Num("mirror_two_sides_price"))
	}

	if sel.Threshold {
		add("Threshold", props.Num("threshold_price"))
	}

	if amount, ok := edgeSurcharge(props, sel.EdgeID); ok {
		add(fmt.Sprintf("Edge %s", sel.EdgeID), amount)
	}

	if sel.HardwareKitRef != "" {
		if kit := findRow(lk.HardwareKits, sel.HardwareKitRef); kit != nil {
			kitProps := catalog.Of(*kit)
			amount := kitProps.Num("kit_group_price")
			if amount <= 0 {
				amount = kit.BasePrice
			}
			add(rowLabel(kitProps.Str("kit_name"), kit.Name, "Hardware kit"), amount)
		}
	}

	if sel.HandleRef != "" {
		if handle := findRow(lk.Handles, sel.HandleRef); handle != nil {
			handleProps := catalog.Of(*handle)
			amount := handleProps.Num("handle_web_price")
			if amount <= 0 {
				amount = handleProps.Num("handle_sale_price")
			}
			if amount <= 0 {
				amount = handle.BasePrice
			}
			add(rowLabel(handleProps.Str("handle_name"), handle.Name, "Handle"), amount)

			if sel.Backplate {
				add("Backplate", handleProps.Num("backplate_price"))
			}
		}
	}

	if sel.LimiterRef != "" && lk.GetLimiter != nil {
		if limiter := lk.GetLimiter(sel.LimiterRef); limiter != nil {
			add(rowLabel(limiter.Name, "", "Door limiter"), variant.RetailPrice(*limiter))
		}
	}

	if len(sel.OptionRefs) > 0 && lk.GetOptionRows != nil {
		for _, opt := range lk.GetOptionRows(sel.OptionRefs) {
			add(rowLabel(opt.Name, "", "Option"), variant.RetailPrice(opt))
		}
	}

	return lines, total
}

// edgeSurcharge resolves the edge trim surcharge. The row's base edge
// color is already included in the door price; other colors are looked
// up in the numbered edge slots.
func edgeSurcharge(props catalog.Props, edgeID string) (float64, bool) {
	if edgeID == "" || edgeID == EdgeNone {
		return 0, false
	}
	if edgeID == props.Str("edge_base_color") {
		return 0, false
	}
	for i := 1; i <= edgeSlots; i++ {
		if props.Str(fmt.Sprintf("edge_color_%d", i)) == edgeID {
			return props.Num(fmt.Sprintf("edge_price_%d", i)), true
		}
	}
	return 0, false
}

func findRow(rows []types.CatalogRow, id string) *types.CatalogRow {
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}

func rowLabel(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

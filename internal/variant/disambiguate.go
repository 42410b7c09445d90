package variant

import (
	"math"
	"strings"

	"github.com/door-configurator/price-engine/internal/catalog"
	"github.com/door-configurator/price-engine/pkg/types"
)

// retailPriceAttrs are the alternate spellings of the explicit retail
// price attribute, tried in order.
var retailPriceAttrs = []string{"retail_price", "price_retail", "rrp"}

// sublineTokens mark the decorative premium sub-line variants that lose
// against the plain-finish row when both encode the same configuration.
var sublineTokens = []string{"deco", "lux"}

// RetailPrice resolves a row's retail price: the first positive, finite
// explicit retail attribute, else the listed base price.
func RetailPrice(row types.CatalogRow) float64 {
	props := catalog.Of(row)
	for _, attr := range retailPriceAttrs {
		v := props.Num(attr)
		if v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return v
		}
	}
	return row.BasePrice
}

// Disambiguate picks exactly one canonical row from a non-empty set of
// rows that already passed filtering, so are expected to encode the
// same logical configuration. Preference order: display name containing
// the selected finish, then plain rows over premium sub-line rows, then
// the highest retail price (first occurrence wins on ties).
func Disambiguate(rows []types.CatalogRow, sel types.Selection) types.CatalogRow {
	if len(rows) == 1 {
		return rows[0]
	}

	candidates := rows

	if finish := strings.ToLower(strings.TrimSpace(sel.Finish)); finish != "" {
		var named []types.CatalogRow
		for _, row := range candidates {
			if strings.Contains(strings.ToLower(row.Name), finish) {
				named = append(named, row)
			}
		}
		if len(named) > 0 {
			candidates = named
		}
	}

	var plain []types.CatalogRow
	for _, row := range candidates {
		if !hasSublineToken(row.Name) {
			plain = append(plain, row)
		}
	}
	if len(plain) > 0 {
		candidates = plain
	}

	best := candidates[0]
	bestPrice := RetailPrice(best)
	for _, row := range candidates[1:] {
		if p := RetailPrice(row); p > bestPrice {
			best = row
			bestPrice = p
		}
	}
	return best
}

func hasSublineToken(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range sublineTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

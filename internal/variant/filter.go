// Package variant resolves the one concrete catalog row that represents
// a user selection: a cascading filter plus a deterministic
// disambiguation pass over near-duplicate import rows.
package variant

import (
	"strings"

	"github.com/door-configurator/price-engine/internal/catalog"
	"github.com/door-configurator/price-engine/pkg/types"
)

// stylePrefixLen is the fallback prefix compared when legacy rows carry
// truncated style labels.
const stylePrefixLen = 8

// Filter returns the rows matching the selection at the given
// strictness. A selection field that is empty is "don't care" and
// always matches. Returned rows keep the input order; color never
// participates.
func Filter(rows []types.CatalogRow, sel types.Selection, requireStyle, requireFinish bool) []types.CatalogRow {
	var out []types.CatalogRow
	for _, row := range rows {
		if Matches(row, sel, requireStyle, requireFinish) {
			out = append(out, row)
		}
	}
	return out
}

// Matches reports whether one row satisfies every applicable rule.
func Matches(row types.CatalogRow, sel types.Selection, requireStyle, requireFinish bool) bool {
	props := catalog.Of(row)

	if !matchModel(props.Str("model"), sel.Model) {
		return false
	}
	if requireStyle && !matchStyle(props.Str("style"), sel.Style) {
		return false
	}
	if requireFinish && !matchFinish(props.Str("coating"), sel.Finish) {
		return false
	}
	if sel.Width != 0 && props.Num("width") != sel.Width {
		return false
	}
	if sel.Height != 0 && props.Num("height") != catalog.NormalizeForMatching(sel.Height) {
		return false
	}
	if !matchExact(props.Str("filling"), sel.Filling) {
		return false
	}
	if !matchExact(props.Str("supplier"), sel.Supplier) {
		return false
	}
	return true
}

// matchModel accepts equality or containment in either direction:
// legacy rows sometimes carry a longer composite model code.
func matchModel(rowModel, selModel string) bool {
	if selModel == "" {
		return true
	}
	if rowModel == "" {
		return false
	}
	return rowModel == selModel ||
		strings.Contains(rowModel, selModel) ||
		strings.Contains(selModel, rowModel)
}

// matchStyle accepts equality, with a prefix fallback for truncated
// legacy style labels.
func matchStyle(rowStyle, selStyle string) bool {
	if selStyle == "" {
		return true
	}
	if rowStyle == selStyle {
		return true
	}
	if len(selStyle) >= stylePrefixLen {
		return strings.HasPrefix(rowStyle, selStyle[:stylePrefixLen])
	}
	return false
}

func matchFinish(rowCoating, selFinish string) bool {
	if selFinish == "" {
		return true
	}
	return strings.EqualFold(rowCoating, selFinish)
}

// matchExact compares empty-normalized strings.
func matchExact(rowVal, selVal string) bool {
	selVal = strings.TrimSpace(selVal)
	if selVal == "" {
		return true
	}
	return strings.TrimSpace(rowVal) == selVal
}

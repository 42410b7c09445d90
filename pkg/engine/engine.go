// Package engine orchestrates variant resolution and price computation:
// normalize the selection, filter candidates with escalating relaxation,
// disambiguate, build the surcharge breakdown, round the total.
package engine

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/door-configurator/price-engine/internal/variant"
	"github.com/door-configurator/price-engine/pkg/pricing"
	"github.com/door-configurator/price-engine/pkg/types"
)

// DefaultCurrency is used when the request does not override it.
const DefaultCurrency = "RUB"

// Request carries everything one calculation needs. The engine holds no
// state across calls: rows and auxiliary catalogs are supplied by the
// caller, already materialized or reachable through the two lookup
// callbacks. Concurrent calls are independent.
type Request struct {
	Rows      []types.CatalogRow
	Selection types.Selection
	Currency  string

	HardwareKits  []types.CatalogRow
	Handles       []types.CatalogRow
	GetLimiter    func(id string) *types.CatalogRow
	GetOptionRows func(ids []string) []types.CatalogRow
}

// Calculate resolves the selection to one catalog row and prices it.
// It fails with *types.VariantNotFoundError when no row survives the
// loosest filter step; a partial match is never substituted.
func Calculate(req Request) (*types.PriceResult, error) {
	sel := NormalizeSelection(req.Selection)

	var matched []types.CatalogRow
	for _, level := range types.MatchLadder {
		matched = variant.Filter(req.Rows, sel, level.RequireStyle(), level.RequireFinish())
		if len(matched) > 0 {
			log.WithFields(log.Fields{
				"level":   level,
				"matched": len(matched),
				"model":   sel.Model,
			}).Debug("Variant filter matched")
			break
		}
	}
	if len(matched) == 0 {
		return nil, &types.VariantNotFoundError{Selection: sel}
	}

	row := variant.Disambiguate(matched, sel)

	lines, sum := pricing.Build(row, sel, pricing.Lookups{
		HardwareKits:  req.HardwareKits,
		Handles:       req.Handles,
		GetLimiter:    req.GetLimiter,
		GetOptionRows: req.GetOptionRows,
	})

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return &types.PriceResult{
		QuoteID:      uuid.New().String(),
		Currency:     currency,
		BasePrice:    lines[0].Amount,
		Breakdown:    lines,
		Total:        pricing.RoundUpToHundred(sum),
		ResolvedSKU:  row.SKU,
		ResolvedName: row.Name,
		MatchedRows:  matched,
		Warnings:     availabilityWarnings(row, sel),
	}, nil
}

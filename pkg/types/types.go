package types

import "fmt"

// CatalogRow is one priced, sellable variant as stored in the catalog.
// Rows are read-only input: the engine never writes back to them.
type CatalogRow struct {
	ID        string  `json:"id"`
	SKU       string  `json:"sku,omitempty"`
	Name      string  `json:"name,omitempty"`
	BasePrice float64 `json:"base_price,omitempty"`

	// Attributes is an open attribute bag. Depending on the source it
	// arrives either as a native mapping or as a JSON-encoded blob;
	// internal/catalog normalizes both into typed reads.
	Attributes interface{} `json:"attributes,omitempty"`
}

// MirrorMode selects which mirror surcharge applies.
type MirrorMode string

const (
	MirrorNone      MirrorMode = ""
	MirrorOneSide   MirrorMode = "one_side"
	MirrorBothSides MirrorMode = "both_sides"
)

// Selection is the user's requested configuration. All fields are
// optional; empty means "don't care" during matching.
//
// Color is presentation-only and never participates in filtering or
// pricing: price is uniform across colors of the same model, style,
// coating, size, filling and supplier.
type Selection struct {
	Model    string  `json:"model,omitempty"`
	Style    string  `json:"style,omitempty"`
	Finish   string  `json:"finish,omitempty"` // coating type
	Color    string  `json:"color,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Filling  string  `json:"filling,omitempty"`
	Supplier string  `json:"supplier,omitempty"`

	Reversible bool       `json:"reversible,omitempty"`
	Mirror     MirrorMode `json:"mirror,omitempty"`
	Threshold  bool       `json:"threshold,omitempty"`
	EdgeID     string     `json:"edge_id,omitempty"`

	HardwareKitRef string   `json:"hardware_kit_ref,omitempty"`
	HandleRef      string   `json:"handle_ref,omitempty"`
	Backplate      bool     `json:"backplate,omitempty"`
	LimiterRef     string   `json:"limiter_ref,omitempty"`
	OptionRefs     []string `json:"option_refs,omitempty"`
}

// BreakdownLine is one labeled surcharge amount. Amounts are always
// positive by construction: zero or negative surcharges are omitted
// from the breakdown instead of being emitted as zero lines.
type BreakdownLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceResult is the priced outcome for one selection.
//
// Invariants: Breakdown[0] is always the "Door" base line, and
// Total == RoundUpToHundred(sum of all line amounts).
type PriceResult struct {
	QuoteID      string          `json:"quote_id"`
	Currency     string          `json:"currency"`
	BasePrice    float64         `json:"base_price"`
	Breakdown    []BreakdownLine `json:"breakdown"`
	Total        float64         `json:"total"`
	ResolvedSKU  string          `json:"resolved_sku,omitempty"`
	ResolvedName string          `json:"resolved_name,omitempty"`
	MatchedRows  []CatalogRow    `json:"matched_rows,omitempty"`
	Warnings     []string        `json:"warnings,omitempty"`
}

// VariantNotFoundError is returned when no catalog row survives even
// the loosest filter step. The engine never substitutes a default row;
// the full selection is carried for diagnostics.
type VariantNotFoundError struct {
	Selection Selection
}

func (e *VariantNotFoundError) Error() string {
	s := e.Selection
	return fmt.Sprintf(
		"no catalog variant matches selection: model=%q style=%q finish=%q width=%v height=%v filling=%q supplier=%q",
		s.Model, s.Style, s.Finish, s.Width, s.Height, s.Filling, s.Supplier,
	)
}

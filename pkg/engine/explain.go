package engine

import (
	"github.com/door-configurator/price-engine/internal/variant"
	"github.com/door-configurator/price-engine/pkg/types"
)

// FilterStep reports how many rows a relaxation step would match.
type FilterStep struct {
	Name    string           `json:"name"`
	Level   types.MatchLevel `json:"level,omitempty"`
	Matches int              `json:"matches"`
}

// Explain runs every relaxation step over the candidate rows and
// reports the match count at each, preceded by a model-only step that
// shows how many rows carry the selected model code at all (color is
// ignored throughout, as in the priced path). Explain is a diagnostic
// side channel: it never affects the priced result.
func Explain(rows []types.CatalogRow, selection types.Selection) []FilterStep {
	sel := NormalizeSelection(selection)

	modelOnly := types.Selection{Model: sel.Model}
	steps := []FilterStep{{
		Name:    "model",
		Matches: len(variant.Filter(rows, modelOnly, false, false)),
	}}

	names := map[types.MatchLevel]string{
		types.MatchStrict:   "strict",
		types.MatchNoFinish: "no_finish",
		types.MatchNoStyle:  "no_style",
	}
	for _, level := range types.MatchLadder {
		steps = append(steps, FilterStep{
			Name:    names[level],
			Level:   level,
			Matches: len(variant.Filter(rows, sel, level.RequireStyle(), level.RequireFinish())),
		})
	}
	return steps
}

// Package catalogfile loads catalog and selection fixtures from JSON
// files for offline CLI runs, where no database is reachable.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/door-configurator/price-engine/pkg/engine"
	"github.com/door-configurator/price-engine/pkg/types"
)

// Fixture is a self-contained catalog snapshot.
type Fixture struct {
	Rows         []types.CatalogRow `json:"rows"`
	HardwareKits []types.CatalogRow `json:"hardware_kits,omitempty"`
	Handles      []types.CatalogRow `json:"handles,omitempty"`
	Limiters     []types.CatalogRow `json:"limiters,omitempty"`
	Options      []types.CatalogRow `json:"options,omitempty"`
}

// LoadCatalog reads a catalog fixture file.
func LoadCatalog(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(fixture.Rows) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no rows", path)
	}
	return &fixture, nil
}

// LoadSelection reads a selection file.
func LoadSelection(path string) (types.Selection, error) {
	var sel types.Selection
	data, err := os.ReadFile(path)
	if err != nil {
		return sel, fmt.Errorf("failed to read selection file: %w", err)
	}
	if err := json.Unmarshal(data, &sel); err != nil {
		return sel, fmt.Errorf("failed to parse selection file %s: %w", path, err)
	}
	return sel, nil
}

// Request assembles an engine request with in-memory lookups over the
// fixture's auxiliary catalogs.
func (f *Fixture) Request(sel types.Selection, currency string) engine.Request {
	return engine.Request{
		Rows:         f.Rows,
		Selection:    sel,
		Currency:     currency,
		HardwareKits: f.HardwareKits,
		Handles:      f.Handles,
		GetLimiter: func(id string) *types.CatalogRow {
			for i := range f.Limiters {
				if f.Limiters[i].ID == id {
					return &f.Limiters[i]
				}
			}
			return nil
		},
		GetOptionRows: func(ids []string) []types.CatalogRow {
			var out []types.CatalogRow
			for _, id := range ids {
				for i := range f.Options {
					if f.Options[i].ID == id {
						out = append(out, f.Options[i])
						break
					}
				}
			}
			return out
		},
	}
}

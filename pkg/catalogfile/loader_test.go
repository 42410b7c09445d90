package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/door-configurator/price-engine/pkg/engine"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalogAndPrice(t *testing.T) {
	catalogPath := writeFile(t, "catalog.json", `{
		"rows": [
			{"id": "r1", "sku": "SKU-1", "name": "Door M1 PVC",
			 "attributes": {"model": "M1", "coating": "PVC", "retail_price": 20000}}
		],
		"limiters": [
			{"id": "lim-1", "name": "Soft stop", "base_price": 650}
		],
		"options": [
			{"id": "opt-1", "name": "Wall trim", "attributes": {"retail_price": 1100}}
		]
	}`)
	selectionPath := writeFile(t, "selection.json", `{
		"model": "M1", "finish": "PVC",
		"limiter_ref": "lim-1", "option_refs": ["opt-1", "opt-missing"]
	}`)

	fixture, err := LoadCatalog(catalogPath)
	require.NoError(t, err)
	sel, err := LoadSelection(selectionPath)
	require.NoError(t, err)

	result, err := engine.Calculate(fixture.Request(sel, ""))
	require.NoError(t, err)

	// Door 20000 + limiter 650 + option 1100 = 21750, rounded to 21800.
	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, 21800.0, result.Total)
}

func TestLoadCatalogRejectsEmpty(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"rows": []}`)
	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadSelectionMissingFile(t *testing.T) {
	_, err := LoadSelection(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/door-configurator/price-engine/pkg/types"
)

func TestParseNativeMap(t *testing.T) {
	p := Parse(map[string]interface{}{
		"model": "M1",
		"width": 800.0,
	})

	assert.Equal(t, "M1", p.Str("model"))
	assert.Equal(t, 800.0, p.Num("width"))
}

func TestParseStringMap(t *testing.T) {
	p := Parse(map[string]string{
		"model": "  M1  ",
		"width": "800",
	})

	assert.Equal(t, "M1", p.Str("model"))
	assert.Equal(t, 800.0, p.Num("width"))
}

func TestParseJSONBlob(t *testing.T) {
	p := Parse(`{"model":"M1","style":"Modern","width":800,"retail_price":"20000"}`)

	assert.Equal(t, "M1", p.Str("model"))
	assert.Equal(t, "Modern", p.Str("style"))
	assert.Equal(t, 800.0, p.Num("width"))
	assert.Equal(t, 20000.0, p.Num("retail_price"))
}

func TestParseMalformedBlobIsEmpty(t *testing.T) {
	p := Parse(`{"model": broken`)

	assert.Empty(t, p)
	assert.Equal(t, "", p.Str("model"))
	assert.Equal(t, 0.0, p.Num("width"))
}

func TestParseNil(t *testing.T) {
	p := Parse(nil)
	assert.Empty(t, p)
}

func TestStrCoercesNumbers(t *testing.T) {
	p := Parse(map[string]interface{}{"height": 2000.0})
	assert.Equal(t, "2000", p.Str("height"))
}

func TestNumTolerantParsing(t *testing.T) {
	p := Parse(map[string]interface{}{
		"a": " 123.5 ",
		"b": "1500,50", // comma decimal separator
		"c": "not a number",
		"d": true,
	})

	assert.Equal(t, 123.5, p.Num("a"))
	assert.Equal(t, 1500.5, p.Num("b"))
	assert.Equal(t, 0.0, p.Num("c"))
	assert.Equal(t, 0.0, p.Num("d"))
	assert.Equal(t, 0.0, p.Num("missing"))
}

func TestOfReadsRowAttributes(t *testing.T) {
	row := types.CatalogRow{
		ID:         "r1",
		Attributes: `{"model":"M1"}`,
	}
	assert.Equal(t, "M1", Of(row).Str("model"))
}

func TestHas(t *testing.T) {
	p := Parse(map[string]interface{}{"reversible_available": "0"})
	assert.True(t, p.Has("reversible_available"))
	assert.False(t, p.Has("threshold_available"))
}

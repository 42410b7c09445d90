// Package catalog normalizes raw catalog row data: heterogeneous
// attribute bags and the virtual height bands used for range pricing.
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/door-configurator/price-engine/pkg/types"
)

// Props is a normalized attribute bag with tolerant typed reads.
type Props map[string]interface{}

// Parse normalizes a raw attribute value into Props. Accepted inputs
// are native mappings and JSON-encoded blobs ([]byte or string). A
// malformed blob yields an empty bag, not an error: the row simply
// fails to match on attribute-derived fields.
func Parse(raw interface{}) Props {
	switch v := raw.(type) {
	case nil:
		return Props{}
	case Props:
		return v
	case map[string]interface{}:
		return Props(v)
	case map[string]string:
		p := make(Props, len(v))
		for k, s := range v {
			p[k] = s
		}
		return p
	case []byte:
		return parseBlob(v)
	case string:
		return parseBlob([]byte(v))
	default:
		return Props{}
	}
}

func parseBlob(blob []byte) Props {
	var m map[string]interface{}
	if err := json.Unmarshal(blob, &m); err != nil {
		return Props{}
	}
	return Props(m)
}

// Of returns the normalized attribute bag of a catalog row.
func Of(row types.CatalogRow) Props {
	return Parse(row.Attributes)
}

// Str reads an attribute as a trimmed string. Numeric values are
// formatted; anything else reads as empty.
func (p Props) Str(key string) string {
	switch v := p[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Num reads an attribute as a number. String values are parsed after
// trimming spaces and normalizing a comma decimal separator; anything
// unparsable reads as 0.
func (p Props) Num(key string) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Has reports whether the attribute is present at all.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

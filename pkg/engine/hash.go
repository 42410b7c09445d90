package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/door-configurator/price-engine/pkg/types"
)

// SelectionHash returns a stable digest of a normalized selection,
// used to correlate audit records for identical requests.
func SelectionHash(sel types.Selection) string {
	data, err := json.Marshal(NormalizeSelection(sel))
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}

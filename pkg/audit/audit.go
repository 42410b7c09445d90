package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/door-configurator/price-engine/pkg/types"
)

// Trail writes one JSON audit record per computed quote.
type Trail struct {
	auditDir string
}

func New(auditDir string) *Trail {
	return &Trail{auditDir: auditDir}
}

// LogQuote creates the audit record for a priced result.
func (t *Trail) LogQuote(result *types.PriceResult, selectionHash string, meta Metadata) error {
	record := Record{
		Timestamp:     time.Now(),
		QuoteID:       result.QuoteID,
		SelectionHash: selectionHash,
		Currency:      result.Currency,
		BasePrice:     result.BasePrice,
		Total:         result.Total,
		LineCount:     len(result.Breakdown),
		RoundingDelta: result.Total - pricedSum(result),
		Breakdown:     result.Breakdown,
		Warnings:      result.Warnings,
		ResolvedSKU:   result.ResolvedSKU,
		Metadata:      meta,
	}
	return t.writeRecord(record)
}

func (t *Trail) writeRecord(record Record) error {
	if err := os.MkdirAll(t.auditDir, 0755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}

	filename := fmt.Sprintf("quote_%s_%s.json",
		record.QuoteID,
		record.Timestamp.Format("20060102_150405"),
	)
	path := filepath.Join(t.auditDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audit file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}

	log.WithField("file", path).Info("Audit record written")
	return nil
}

// VerifyDeterminism checks that two results for the same selection hash
// priced to the same total.
func (t *Trail) VerifyDeterminism(a, b Record) bool {
	if a.SelectionHash != b.SelectionHash {
		return false // different inputs
	}
	return a.Total == b.Total && a.LineCount == b.LineCount
}

// pricedSum totals the breakdown lines; the difference against Total
// shows an auditor how much ceiling-to-hundred added.
func pricedSum(result *types.PriceResult) float64 {
	sum := 0.0
	for _, line := range result.Breakdown {
		sum += line.Amount
	}
	return sum
}

type Record struct {
	Timestamp     time.Time             `json:"timestamp"`
	QuoteID       string                `json:"quote_id"`
	SelectionHash string                `json:"selection_hash"`
	Currency      string                `json:"currency"`
	BasePrice     float64               `json:"base_price"`
	Total         float64               `json:"total"`
	LineCount     int                   `json:"line_count"`
	RoundingDelta float64               `json:"rounding_delta"`
	Breakdown     []types.BreakdownLine `json:"breakdown"`
	Warnings      []string              `json:"warnings,omitempty"`
	ResolvedSKU   string                `json:"resolved_sku,omitempty"`
	Metadata      Metadata              `json:"metadata"`
}

type Metadata struct {
	Source         string            `json:"source"` // "cli", "api"
	User           string            `json:"user,omitempty"`
	AdditionalTags map[string]string `json:"additional_tags,omitempty"`
}

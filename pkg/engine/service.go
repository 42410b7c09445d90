package engine

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/door-configurator/price-engine/pkg/audit"
	"github.com/door-configurator/price-engine/pkg/config"
	"github.com/door-configurator/price-engine/pkg/database"
	"github.com/door-configurator/price-engine/pkg/store"
	"github.com/door-configurator/price-engine/pkg/types"
)

// Service wires the pure calculation to the catalog store and the
// quote audit trail. One Service is safe for concurrent use; each
// Price call is an independent one-shot pipeline.
type Service struct {
	catalog  *store.Catalog
	quoteLog *database.DB
	trail    *audit.Trail
	currency string
}

// NewService connects the catalog store and, when configured, the
// quote log and audit trail.
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	catalog, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog store: %w", err)
	}

	svc := &Service{
		catalog:  catalog,
		currency: cfg.Currency,
	}

	quoteLog, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Warn("Quote log unavailable, continuing without it")
	} else {
		svc.quoteLog = quoteLog
	}

	if cfg.AuditDir != "" {
		svc.trail = audit.New(cfg.AuditDir)
	}

	return svc, nil
}

func (s *Service) Close() {
	s.catalog.Close()
	if s.quoteLog != nil {
		s.quoteLog.Close()
	}
}

// Ping verifies the catalog store connection.
func (s *Service) Ping(ctx context.Context) error {
	return s.catalog.Ping(ctx)
}

// Price fetches candidate rows and auxiliary catalogs for the
// selection, runs the calculation and records the quote.
func (s *Service) Price(ctx context.Context, sel types.Selection, source string) (*types.PriceResult, error) {
	req, err := s.buildRequest(ctx, sel)
	if err != nil {
		return nil, err
	}

	result, err := Calculate(*req)
	if err != nil {
		return nil, err
	}

	s.recordQuote(result, sel, source)
	return result, nil
}

// ExplainSelection reports the relaxation ladder match counts for a
// selection against the live catalog.
func (s *Service) ExplainSelection(ctx context.Context, sel types.Selection) ([]FilterStep, error) {
	rows, err := s.catalog.DoorRows(ctx, NormalizeSelection(sel).Model)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate rows: %w", err)
	}
	return Explain(rows, sel), nil
}

func (s *Service) buildRequest(ctx context.Context, sel types.Selection) (*Request, error) {
	normalized := NormalizeSelection(sel)

	rows, err := s.catalog.DoorRows(ctx, normalized.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate rows: %w", err)
	}

	req := &Request{
		Rows:      rows,
		Selection: normalized,
		Currency:  s.currency,
	}

	if normalized.HardwareKitRef != "" {
		if req.HardwareKits, err = s.catalog.HardwareKits(ctx); err != nil {
			return nil, fmt.Errorf("failed to fetch hardware kits: %w", err)
		}
	}
	if normalized.HandleRef != "" {
		if req.Handles, err = s.catalog.Handles(ctx); err != nil {
			return nil, fmt.Errorf("failed to fetch handles: %w", err)
		}
	}

	req.GetLimiter = func(id string) *types.CatalogRow {
		row, err := s.catalog.Limiter(ctx, id)
		if err != nil {
			log.WithError(err).WithField("limiter", id).Warn("Limiter lookup failed")
			return nil
		}
		return row
	}
	req.GetOptionRows = func(ids []string) []types.CatalogRow {
		rows, err := s.catalog.OptionRows(ctx, ids)
		if err != nil {
			log.WithError(err).Warn("Option lookup failed")
			return nil
		}
		return rows
	}

	return req, nil
}

// recordQuote writes the audit record and quote-log row. Failures are
// logged, never surfaced: recording must not break pricing.
func (s *Service) recordQuote(result *types.PriceResult, sel types.Selection, source string) {
	hash := SelectionHash(sel)

	if s.trail != nil {
		if err := s.trail.LogQuote(result, hash, audit.Metadata{Source: source}); err != nil {
			log.WithError(err).Warn("Failed to write audit record")
		}
	}
	if s.quoteLog != nil {
		err := s.quoteLog.InsertQuote(result.QuoteID, hash, result.Currency, result.Total, len(result.Breakdown))
		if err != nil {
			log.WithError(err).Warn("Failed to write quote log row")
		}
	}

	log.WithFields(log.Fields{
		"quote_id": result.QuoteID,
		"total":    result.Total,
		"lines":    len(result.Breakdown),
		"source":   source,
	}).Info("Quote priced")
}

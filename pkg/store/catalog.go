// Package store reads catalog rows from the pricing database. It is
// the only I/O on the priced path; the engine itself stays pure.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/door-configurator/price-engine/pkg/types"
)

// Row categories in the catalog_rows table.
const (
	CategoryDoor        = "door"
	CategoryHardwareKit = "hardware_kit"
	CategoryHandle      = "handle"
	CategoryLimiter     = "limiter"
	CategoryOption      = "option"
)

// Catalog is a pgx-backed catalog reader.
type Catalog struct {
	pool *pgxpool.Pool
}

// Connect opens a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Catalog, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Catalog{pool: pool}, nil
}

func (c *Catalog) Close() {
	c.pool.Close()
}

func (c *Catalog) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// DoorRows fetches candidate door rows, optionally narrowed to rows
// whose model attribute contains the given code. The fine-grained
// matching rules stay in the engine; this is only a coarse pre-filter
// so the candidate set stays small.
func (c *Catalog) DoorRows(ctx context.Context, model string) ([]types.CatalogRow, error) {
	query := `
		SELECT id, sku, name, base_price, attributes
		FROM catalog_rows
		WHERE category = $1
		  AND ($2 = '' OR attributes->>'model' ILIKE '%' || $2 || '%' OR $2 ILIKE '%' || (attributes->>'model') || '%')
		ORDER BY id
	`
	return c.scanRows(ctx, query, CategoryDoor, model)
}

// HardwareKits fetches the hardware kit catalog.
func (c *Catalog) HardwareKits(ctx context.Context) ([]types.CatalogRow, error) {
	return c.byCategory(ctx, CategoryHardwareKit)
}

// Handles fetches the handle catalog.
func (c *Catalog) Handles(ctx context.Context) ([]types.CatalogRow, error) {
	return c.byCategory(ctx, CategoryHandle)
}

// Limiter looks up one door limiter by id. A missing id returns nil
// without error: the breakdown builder treats it as "no line".
func (c *Catalog) Limiter(ctx context.Context, id string) (*types.CatalogRow, error) {
	query := `
		SELECT id, sku, name, base_price, attributes
		FROM catalog_rows
		WHERE category = $1 AND id = $2
	`
	row, err := c.scanOne(ctx, query, CategoryLimiter, id)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// OptionRows fetches named option rows by id, preserving only rows that
// exist; unknown ids are silently dropped.
func (c *Catalog) OptionRows(ctx context.Context, ids []string) ([]types.CatalogRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, sku, name, base_price, attributes
		FROM catalog_rows
		WHERE category = $1 AND id = ANY($2)
		ORDER BY id
	`
	return c.scanRows(ctx, query, CategoryOption, ids)
}

func (c *Catalog) byCategory(ctx context.Context, category string) ([]types.CatalogRow, error) {
	query := `
		SELECT id, sku, name, base_price, attributes
		FROM catalog_rows
		WHERE category = $1
		ORDER BY id
	`
	return c.scanRows(ctx, query, category)
}

func (c *Catalog) scanRows(ctx context.Context, query string, args ...interface{}) ([]types.CatalogRow, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer rows.Close()

	var out []types.CatalogRow
	for rows.Next() {
		row, err := scanCatalogRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (c *Catalog) scanOne(ctx context.Context, query string, args ...interface{}) (*types.CatalogRow, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	row, err := scanCatalogRow(rows)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func scanCatalogRow(rows pgx.Rows) (types.CatalogRow, error) {
	var (
		row       types.CatalogRow
		sku, name *string
		basePrice *float64
		attrs     []byte
	)
	if err := rows.Scan(&row.ID, &sku, &name, &basePrice, &attrs); err != nil {
		return row, fmt.Errorf("catalog row scan failed: %w", err)
	}
	if sku != nil {
		row.SKU = *sku
	}
	if name != nil {
		row.Name = *name
	}
	if basePrice != nil {
		row.BasePrice = *basePrice
	}
	if len(attrs) > 0 {
		// Kept as the raw JSONB blob; internal/catalog parses it
		// tolerantly on access.
		row.Attributes = string(attrs)
	}
	return row, nil
}

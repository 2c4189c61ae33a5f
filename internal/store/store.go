package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/catalog"
	"github.com/brushworks/paintquote/internal/model"
)

// CatalogStore reads and writes the coverage and pricing reference tables.
type CatalogStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatalogStore wraps an open database handle.
func NewCatalogStore(db *sql.DB, logger *zap.Logger) *CatalogStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogStore{db: db, logger: logger}
}

// LoadCatalog materializes the catalog snapshot for a dealer. Coverage
// ranges are parsed to their usable minimum here, so the engine only ever
// sees ready-to-use rates.
func (s *CatalogStore) LoadCatalog(ctx context.Context, dealerID string) (model.Catalog, error) {
	var cat model.Catalog

	rows, err := s.db.QueryContext(ctx,
		`SELECT product_name, coats, coverage_range, unit FROM coverage_rates ORDER BY product_name, coats`)
	if err != nil {
		return cat, fmt.Errorf("query coverage rates: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var product, coverageRange, unit string
		var coats int
		if err := rows.Scan(&product, &coats, &coverageRange, &unit); err != nil {
			return cat, fmt.Errorf("scan coverage rate: %w", err)
		}
		cat.Coverage = append(cat.Coverage, model.CoverageEntry{
			Product:     product,
			Coats:       coats,
			MinCoverage: catalog.ParseCoverageRange(coverageRange),
			Unit:        unit,
		})
	}
	if err := rows.Err(); err != nil {
		return cat, fmt.Errorf("iterate coverage rates: %w", err)
	}

	priceRows, err := s.db.QueryContext(ctx,
		`SELECT product_name, pack_label, price FROM product_prices WHERE dealer_id = ? ORDER BY product_name, pack_label`,
		dealerID)
	if err != nil {
		return cat, fmt.Errorf("query product prices: %w", err)
	}
	defer priceRows.Close()

	byProduct := make(map[string]map[string]float64)
	for priceRows.Next() {
		var product, packLabel string
		var price float64
		if err := priceRows.Scan(&product, &packLabel, &price); err != nil {
			return cat, fmt.Errorf("scan product price: %w", err)
		}
		if byProduct[product] == nil {
			byProduct[product] = make(map[string]float64)
		}
		byProduct[product][packLabel] = price
	}
	if err := priceRows.Err(); err != nil {
		return cat, fmt.Errorf("iterate product prices: %w", err)
	}

	products := make([]string, 0, len(byProduct))
	for p := range byProduct {
		products = append(products, p)
	}
	sort.Strings(products)
	for _, p := range products {
		cat.Pricing = append(cat.Pricing, model.PricingEntry{
			Product: p,
			Sizes:   byProduct[p],
			Unit:    catalog.UnitForProduct(p),
		})
	}

	s.logger.Info("catalog loaded",
		zap.String("dealer_id", dealerID),
		zap.Int("coverage_entries", len(cat.Coverage)),
		zap.Int("pricing_entries", len(cat.Pricing)))
	return cat, nil
}

// UpsertCoverageRate inserts or replaces a coverage row.
func (s *CatalogStore) UpsertCoverageRate(ctx context.Context, product string, coats int, coverageRange, unit string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO coverage_rates (product_name, coats, coverage_range, unit)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (product_name, coats)
		DO UPDATE SET coverage_range = excluded.coverage_range, unit = excluded.unit`,
		product, coats, coverageRange, unit)
	if err != nil {
		return fmt.Errorf("upsert coverage rate for %q: %w", product, err)
	}
	return nil
}

// UpsertPackPrice inserts or replaces one pack price for a dealer.
func (s *CatalogStore) UpsertPackPrice(ctx context.Context, dealerID, product, packLabel string, price float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO product_prices (dealer_id, product_name, pack_label, price)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (dealer_id, product_name, pack_label)
		DO UPDATE SET price = excluded.price`,
		dealerID, product, packLabel, price)
	if err != nil {
		return fmt.Errorf("upsert pack price for %q: %w", product, err)
	}
	return nil
}

package catalog

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/model"
)

// ErrPricingNotFound signals that no pricing entry matched a product, even by
// partial name match. Callers must surface this rather than fabricate a
// zero-priced result.
var ErrPricingNotFound = errors.New("pricing entry not found")

// PricingResolver looks up pack sizes and prices by product name.
type PricingResolver struct {
	entries map[string]model.PricingEntry // key: normalized product name
	keys    []string                      // sorted for deterministic partial matching
	logger  *zap.Logger
}

// NewPricingResolver indexes the given pricing entries.
func NewPricingResolver(entries []model.PricingEntry, logger *zap.Logger) *PricingResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &PricingResolver{
		entries: make(map[string]model.PricingEntry, len(entries)),
		logger:  logger,
	}
	for _, e := range entries {
		key := Normalize(e.Product)
		if e.Unit == "" {
			e.Unit = UnitForProduct(e.Product)
		}
		r.entries[key] = e
	}
	r.keys = make([]string, 0, len(r.entries))
	for k := range r.entries {
		r.keys = append(r.keys, k)
	}
	sort.Strings(r.keys)
	return r
}

// Resolve returns the pricing entry for a product. It first tries an exact
// match on the normalized name, then a substring match in either direction
// against known keys. The longest matching key wins so that "ace exterior
// emulsion" beats "emulsion" when both contain the query.
func (r *PricingResolver) Resolve(product string) (model.PricingEntry, error) {
	normalized := Normalize(product)
	if normalized == "" {
		return model.PricingEntry{}, ErrPricingNotFound
	}
	if e, ok := r.entries[normalized]; ok {
		return e, nil
	}

	best := ""
	for _, key := range r.keys {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			if len(key) > len(best) {
				best = key
			}
		}
	}
	if best != "" {
		return r.entries[best], nil
	}

	r.logger.Warn("pricing entry not found",
		zap.String("product", product),
		zap.String("normalized", normalized))
	return model.PricingEntry{}, ErrPricingNotFound
}

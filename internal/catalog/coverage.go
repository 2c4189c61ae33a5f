package catalog

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/model"
)

// Category default coverage rates (sqft per unit) used when no table entry
// matches. Chosen conservatively so missing data inflates quantities rather
// than under-provisioning.
const (
	defaultPuttyCoverage    = 10
	defaultPrimerCoverage   = 100
	defaultEmulsionCoverage = 120
)

// CoverageResolver looks up area-per-unit coverage rates. Resolve never
// fails: when no entry matches, a category default is returned and the
// fallback is logged for data-quality tracking.
type CoverageResolver struct {
	entries map[string]model.CoverageEntry // key: normalized name + "|" + coat label
	logger  *zap.Logger
}

// NewCoverageResolver indexes the given coverage entries.
func NewCoverageResolver(entries []model.CoverageEntry, logger *zap.Logger) *CoverageResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &CoverageResolver{
		entries: make(map[string]model.CoverageEntry, len(entries)),
		logger:  logger,
	}
	for _, e := range entries {
		r.entries[coverageKey(Normalize(e.Product), CoatLabel(e.Coats))] = e
	}
	return r
}

func coverageKey(normalized, coatLabel string) string {
	return normalized + "|" + coatLabel
}

// Resolve returns the coverage rate (sqft per unit) for a product at the
// given coat count. The returned rate already encodes the coat multiplier;
// callers must not re-multiply by coats.
func (r *CoverageResolver) Resolve(product string, coats int, category model.MaterialCategory) float64 {
	if coats < 1 {
		coats = 1
	}
	normalized := Normalize(product)

	if e, ok := r.entries[coverageKey(normalized, CoatLabel(coats))]; ok {
		return e.MinCoverage
	}

	fallback := CategoryDefaultCoverage(category)
	r.logger.Warn("coverage data missing, using category default",
		zap.String("product", product),
		zap.Int("coats", coats),
		zap.String("category", category.String()),
		zap.Float64("fallback", fallback))
	return fallback
}

// CategoryDefaultCoverage returns the fallback coverage rate for a category.
func CategoryDefaultCoverage(category model.MaterialCategory) float64 {
	switch category {
	case model.MaterialPutty:
		return defaultPuttyCoverage
	case model.MaterialPrimer, model.MaterialEnamelPrimer:
		return defaultPrimerCoverage
	default:
		return defaultEmulsionCoverage
	}
}

// ParseCoverageRange extracts the usable minimum from a "min-max" coverage
// range string such as "100-120" or "100 - 120 sqft". Returns 0 when no
// leading number is present.
func ParseCoverageRange(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

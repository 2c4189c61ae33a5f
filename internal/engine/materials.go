package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/catalog"
	"github.com/brushworks/paintquote/internal/model"
)

// MaterialCalculator turns area configurations into material requirements
// with purchasable pack combinations and costs.
type MaterialCalculator struct {
	coverage *catalog.CoverageResolver
	pricing  *catalog.PricingResolver
	packer   PackStrategy
	logger   *zap.Logger
}

// NewMaterialCalculator wires the calculator with its resolvers and packing
// strategy.
func NewMaterialCalculator(coverage *catalog.CoverageResolver, pricing *catalog.PricingResolver, packer PackStrategy, logger *zap.Logger) *MaterialCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialCalculator{coverage: coverage, pricing: pricing, packer: packer, logger: logger}
}

// Calculate produces one material requirement per active layer of each
// configuration. Enamel configurations are aggregated by area into their
// Main and Separate/Varnish buckets before a single combined quantity and
// cost is computed, so large-pack economics apply to the summed area rather
// than to each entry separately. Pricing problems are attached to the line
// as warnings; they never abort the rest of the estimate.
func (mc *MaterialCalculator) Calculate(configs []model.AreaConfiguration) []model.MaterialRequirement {
	var requirements []model.MaterialRequirement

	for _, cfg := range configs {
		if cfg.IsEnamel() {
			continue // handled via bucket aggregation below
		}
		coats := cfg.ActiveCoats()
		layers := []struct {
			product  string
			category model.MaterialCategory
			coats    int
		}{
			{cfg.Materials.Putty, model.MaterialPutty, coats.Putty},
			{cfg.Materials.Primer, model.MaterialPrimer, coats.Primer},
			{cfg.Materials.Emulsion, model.MaterialEmulsion, coats.Emulsion},
		}
		for _, l := range layers {
			if l.coats <= 0 || l.product == "" {
				continue
			}
			requirements = append(requirements, mc.buildRequirement(cfg.ID, l.product, l.category, cfg.Area, l.coats))
		}
	}

	requirements = append(requirements, mc.enamelRequirements(configs)...)
	return requirements
}

// enamelGroup accumulates enamel layer areas within one aggregation bucket.
type enamelGroup struct {
	configID string
	product  string
	category model.MaterialCategory
	coats    int
	area     float64
}

// enamelRequirements aggregates enamel configurations into the Main and
// Separate/Varnish buckets, sums areas per (product, coats) line, and
// computes one combined requirement per line.
func (mc *MaterialCalculator) enamelRequirements(configs []model.AreaConfiguration) []model.MaterialRequirement {
	var groups []*enamelGroup
	index := make(map[string]*enamelGroup)

	add := func(bucket, configID, product string, category model.MaterialCategory, coats int, area float64) {
		key := bucket + "|" + catalog.Normalize(product) + "|" + catalog.CoatLabel(coats)
		if g, ok := index[key]; ok {
			g.area += area
			return
		}
		g := &enamelGroup{configID: configID, product: product, category: category, coats: coats, area: area}
		index[key] = g
		groups = append(groups, g)
	}

	for _, cfg := range configs {
		if !cfg.IsEnamel() || cfg.Enamel == nil {
			continue
		}
		bucket := "main"
		if cfg.IsSeparate() {
			bucket = "separate"
		}
		en := cfg.Enamel
		// A primer line exists only when a real primer product was explicitly
		// chosen; placeholder selections attribute no primer cost.
		if en.PrimerCoats > 0 && !catalog.IsGenericPrimerName(en.PrimerType) {
			add(bucket, cfg.ID, en.PrimerType, model.MaterialEnamelPrimer, en.PrimerCoats, cfg.Area)
		}
		if en.EnamelCoats > 0 && en.EnamelType != "" {
			add(bucket, cfg.ID, en.EnamelType, model.MaterialEnamelTopcoat, en.EnamelCoats, cfg.Area)
		}
	}

	requirements := make([]model.MaterialRequirement, 0, len(groups))
	for _, g := range groups {
		requirements = append(requirements, mc.buildRequirement(g.configID, g.product, g.category, g.area, g.coats))
	}
	return requirements
}

// buildRequirement computes one material line. The coverage rate already
// encodes the coat count, so quantity is area divided by rate with no coat
// re-multiplication.
func (mc *MaterialCalculator) buildRequirement(configID, product string, category model.MaterialCategory, area float64, coats int) model.MaterialRequirement {
	rate := mc.coverage.Resolve(product, coats, category)
	raw := 0.0
	if rate > 0 {
		raw = area / rate
	}
	required := int(math.Ceil(raw - 1e-9))

	req := model.MaterialRequirement{
		ConfigID:         configID,
		Product:          product,
		Category:         category,
		Area:             area,
		Coats:            coats,
		CoverageRate:     rate,
		RawQuantity:      raw,
		RequiredQuantity: required,
	}

	entry, err := mc.pricing.Resolve(product)
	if err != nil {
		// Keep the line with a best-effort quantity and zero cost so the
		// totals remain computable and the UI can render a placeholder.
		req.Unit = catalog.UnitForProduct(product)
		req.Warning = model.WarnPriceUnavailable
		return req
	}
	req.Unit = entry.Unit

	combination, err := mc.packer.Combine(float64(required), OptionsFromEntry(entry))
	if err != nil {
		mc.logger.Warn("pack combination unsatisfiable",
			zap.String("product", product),
			zap.Int("required", required))
		req.Warning = model.WarnNoPackSizes
		return req
	}
	req.Packs = combination
	req.TotalCost = combination.TotalCost
	return req
}

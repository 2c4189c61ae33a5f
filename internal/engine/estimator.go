package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/catalog"
	"github.com/brushworks/paintquote/internal/model"
)

// Estimator runs the full estimation pipeline over a catalog snapshot.
// Each Estimate call is an independent, complete recomputation; the only
// state carried between calls is the display-order memo, which exists to
// keep presentation stable across passes.
type Estimator struct {
	coverage *catalog.CoverageResolver
	pricing  *catalog.PricingResolver
	settings model.EstimateSettings
	orderer  *Orderer
	logger   *zap.Logger
}

// New builds an estimator over the given catalog snapshot and settings.
func New(cat model.Catalog, settings model.EstimateSettings, logger *zap.Logger) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{
		coverage: catalog.NewCoverageResolver(cat.Coverage, logger),
		pricing:  catalog.NewPricingResolver(cat.Pricing, logger),
		settings: settings,
		orderer:  NewOrderer(),
		logger:   logger,
	}
}

// Settings returns the settings this estimator was built with.
func (e *Estimator) Settings() model.EstimateSettings {
	return e.settings
}

// Estimate computes material requirements, labour days, and the cost
// breakdown for the given configurations. Per-line data problems are
// reported as warnings on the affected lines; nothing short-circuits the
// rest of the estimate.
func (e *Estimator) Estimate(configs []model.AreaConfiguration) model.EstimationResult {
	ordered := e.orderer.Order(configs)

	materials := NewMaterialCalculator(e.coverage, e.pricing, StrategyFor(e.settings.PackStrategy), e.logger).Calculate(ordered)
	plan := NewLabourEstimator(e.settings).Estimate(ordered)

	return NewAggregator(e.settings).Aggregate(ordered, materials, plan)
}

// ValidateConfigurations rejects inputs that must not enter the engine.
// Hosts are expected to call this at the input boundary; the engine itself
// assumes sanitized, non-negative values.
func ValidateConfigurations(configs []model.AreaConfiguration) error {
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration %s (%s): %w", cfg.ID, cfg.Label, err)
		}
	}
	return nil
}

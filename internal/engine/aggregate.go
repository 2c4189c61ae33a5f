package engine

import "github.com/brushworks/paintquote/internal/model"

// Aggregator rolls material costs, labour costs, and margin into the final
// project totals. No shared accumulator state: everything is derived from
// the inputs of one pass.
type Aggregator struct {
	settings model.EstimateSettings
}

// NewAggregator returns an aggregator using the given settings.
func NewAggregator(settings model.EstimateSettings) Aggregator {
	return Aggregator{settings: settings}
}

// Aggregate computes the cost breakdown. MarginCost is a fixed percentage of
// the quoted project cost; DealerMarginCost is the dealer's percentage over
// material cost. Both are reported; they are different business figures and
// are intentionally not reconciled. Only MarginCost enters TotalCost.
func (a Aggregator) Aggregate(ordered []model.AreaConfiguration, materials []model.MaterialRequirement, plan LabourPlan) model.EstimationResult {
	result := model.EstimationResult{
		Ordered:       ordered,
		Materials:     materials,
		Labour:        plan.Tasks,
		PerConfigDays: plan.PerConfigDays,
		TotalDays:     plan.TotalDays,
		Laborers:      plan.Laborers,
	}

	for _, m := range materials {
		result.MaterialCost += m.TotalCost
	}
	result.LabourCost = float64(plan.Laborers) * float64(plan.TotalDays) * a.settings.LabourRatePerDay
	for _, cfg := range ordered {
		result.QuotedProjectCost += cfg.QuotedCost()
	}
	result.MarginCost = a.settings.MarginPercent / 100.0 * result.QuotedProjectCost
	result.DealerMarginCost = a.settings.DealerMarginPercent / 100.0 * result.MaterialCost
	result.TotalCost = result.MaterialCost + result.LabourCost + result.MarginCost
	return result
}

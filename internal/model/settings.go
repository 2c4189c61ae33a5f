package model

// LabourMode selects how the labour estimate is driven.
type LabourMode string

const (
	// LabourAuto uses a fixed crew size and computes the days needed.
	LabourAuto LabourMode = "auto"
	// LabourManual fixes the completion days and back-solves the crew size.
	LabourManual LabourMode = "manual"
)

// PackStrategyKind names the pack combination algorithm to use.
type PackStrategyKind string

const (
	// PackGreedy is the historical largest-first greedy with a single
	// smallest-pack top-up. It never under-provisions but can overshoot
	// cost. Kept as the default for compatibility with past quotations.
	PackGreedy PackStrategyKind = "greedy"
	// PackExact is a dynamic-programming solver returning the cheapest
	// covering combination.
	PackExact PackStrategyKind = "exact"
)

// EstimateSettings holds the business parameters of an estimation pass.
type EstimateSettings struct {
	WorkingHoursPerDay float64 `json:"working_hours_per_day"` // actual on-site hours
	StandardHours      float64 `json:"standard_hours"`        // hours the base output rates assume

	Mode                  LabourMode `json:"labour_mode"`
	LaborersPerDay        int        `json:"laborers_per_day"`        // auto mode
	DesiredCompletionDays int        `json:"desired_completion_days"` // manual mode

	LabourRatePerDay float64 `json:"labour_rate_per_day"`

	MarginPercent       float64 `json:"margin_percent"`        // over quoted project cost
	DealerMarginPercent float64 `json:"dealer_margin_percent"` // over material cost, dealer-specific

	PackStrategy PackStrategyKind `json:"pack_strategy"`
}

// DefaultSettings returns the business defaults used for new projects.
func DefaultSettings() EstimateSettings {
	return EstimateSettings{
		WorkingHoursPerDay:    7,
		StandardHours:         8,
		Mode:                  LabourAuto,
		LaborersPerDay:        1,
		DesiredCompletionDays: 0,
		LabourRatePerDay:      1100,
		MarginPercent:         10,
		DealerMarginPercent:   0,
		PackStrategy:          PackGreedy,
	}
}

package model

// PackLine is one purchasable pack size and how many of it to buy.
type PackLine struct {
	PackLabel string  `json:"pack_label"`
	PackSize  float64 `json:"pack_size"` // quantity per pack, in the line's unit
	Count     int     `json:"count"`
	UnitPrice float64 `json:"unit_price"`
}

// PackCombination is an ordered list of pack lines whose combined quantity
// meets or exceeds a required amount.
type PackCombination struct {
	Lines     []PackLine `json:"lines"`
	TotalCost float64    `json:"total_cost"`
}

// TotalQuantity returns the combined quantity across all lines.
func (pc PackCombination) TotalQuantity() float64 {
	var total float64
	for _, l := range pc.Lines {
		total += float64(l.Count) * l.PackSize
	}
	return total
}

// MaterialRequirement is one material line of an estimate. Requirements are
// computed fresh on every estimation pass and never mutated in place.
type MaterialRequirement struct {
	ConfigID         string           `json:"config_id"`
	Product          string           `json:"product"`
	Category         MaterialCategory `json:"category"`
	Area             float64          `json:"area"`
	Coats            int              `json:"coats"`
	CoverageRate     float64          `json:"coverage_rate"` // sqft per unit, coat count embedded
	RawQuantity      float64          `json:"raw_quantity"`
	RequiredQuantity int              `json:"required_quantity"` // ceil(raw_quantity)
	Unit             string           `json:"unit"`
	Packs            PackCombination  `json:"packs"`
	TotalCost        float64          `json:"total_cost"`
	Warning          Warning          `json:"warning,omitempty"`
}

// LabourTask is the days-required figure for one layer of work.
type LabourTask struct {
	ConfigID     string           `json:"config_id"`
	Product      string           `json:"product"`
	Category     MaterialCategory `json:"category"`
	Area         float64          `json:"area"`
	Coats        int              `json:"coats"`
	TotalWork    float64          `json:"total_work"`    // area * coats
	AdjustedRate float64          `json:"adjusted_rate"` // base output scaled to actual working hours
	Days         int              `json:"days"`
}

// EstimationResult is the aggregated output of one estimation pass. All four
// cost figures are independently inspectable; TotalCost is never the only
// value exposed.
type EstimationResult struct {
	Ordered   []AreaConfiguration   `json:"ordered"`
	Materials []MaterialRequirement `json:"materials"`
	Labour    []LabourTask          `json:"labour"`

	PerConfigDays map[string]int `json:"per_config_days"`
	TotalDays     int            `json:"total_days"`
	Laborers      int            `json:"laborers"`

	MaterialCost      float64 `json:"material_cost"`
	LabourCost        float64 `json:"labour_cost"`
	QuotedProjectCost float64 `json:"quoted_project_cost"`
	MarginCost        float64 `json:"margin_cost"` // fixed 10% of the quoted project cost

	// DealerMarginCost is the dealer-percentage margin over material cost
	// shown on the project summary view. It is a separate figure from
	// MarginCost and the two are deliberately not reconciled.
	DealerMarginCost float64 `json:"dealer_margin_cost"`

	TotalCost float64 `json:"total_cost"` // material + labour + margin
}

// Warnings returns every material line carrying a warning marker.
func (r EstimationResult) Warnings() []MaterialRequirement {
	var out []MaterialRequirement
	for _, m := range r.Materials {
		if m.Warning != "" {
			out = append(out, m)
		}
	}
	return out
}

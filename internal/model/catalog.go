package model

// CoverageEntry states how much area one unit of a product covers at a
// specific coat count. The coat multiplier is already encoded in the value:
// callers must not re-multiply by the number of coats.
type CoverageEntry struct {
	Product     string  `json:"product"`
	Coats       int     `json:"coats"`
	MinCoverage float64 `json:"min_coverage"` // sqft per unit at this coat count
	Unit        string  `json:"unit"`         // "ltr" or "kg"
}

// PricingEntry lists the purchasable pack sizes and unit prices for a product.
type PricingEntry struct {
	Product string             `json:"product"`
	Sizes   map[string]float64 `json:"sizes"` // pack label ("20L", "5kg") -> price
	Unit    string             `json:"unit"`
}

// Catalog is the reference-data snapshot an estimation pass runs against.
// The engine never reaches out for data itself; the caller assembles a
// complete catalog up front.
type Catalog struct {
	Coverage []CoverageEntry `json:"coverage"`
	Pricing  []PricingEntry  `json:"pricing"`
}

package engine

import (
	"fmt"

	"github.com/brushworks/paintquote/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.EstimateSettings
}

// ComparisonResult holds the estimation result and headline figures for a
// single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.EstimationResult
	MaterialCost float64
	TotalDays    int
	TotalCost    float64
	WarningCount int
}

// CompareScenarios runs the estimation for each scenario against the same
// catalog and configurations, enabling side-by-side comparison of different
// business parameters (pack strategy, crew size, completion target).
func CompareScenarios(scenarios []ComparisonScenario, cat model.Catalog, configs []model.AreaConfiguration) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		est := New(cat, scenario.Settings, nil)
		result := est.Estimate(configs)

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			MaterialCost: result.MaterialCost,
			TotalDays:    result.TotalDays,
			TotalCost:    result.TotalCost,
			WarningCount: len(result.Warnings()),
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if scenarios from the current
// settings, varying the key parameters.
func BuildDefaultScenarios(base model.EstimateSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	// Scenario: the other pack strategy
	alt := base
	if base.PackStrategy == model.PackExact {
		alt.PackStrategy = model.PackGreedy
		scenarios = append(scenarios, ComparisonScenario{Name: "Greedy Packing", Settings: alt})
	} else {
		alt.PackStrategy = model.PackExact
		scenarios = append(scenarios, ComparisonScenario{Name: "Exact Packing", Settings: alt})
	}

	// Scenario: a larger crew
	if base.Mode == model.LabourAuto {
		crew := base
		crew.LaborersPerDay = base.LaborersPerDay * 2
		if crew.LaborersPerDay < 2 {
			crew.LaborersPerDay = 2
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("%d Laborers", crew.LaborersPerDay),
			Settings: crew,
		})
	}

	return scenarios
}

package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushworks/paintquote/internal/model"
)

func estimatorFixtures() []model.AreaConfiguration {
	return []model.AreaConfiguration{
		{
			ID:          "walls",
			AreaType:    model.AreaWall,
			Label:       "Hall Walls",
			Area:        550,
			PerSqFtRate: 18,
			System:      model.FreshPainting,
			Materials:   model.SelectedMaterials{Putty: "Acrylic Wall Putty", Primer: "Interior Primer", Emulsion: "Tractor Emulsion"},
			FreshCoats:  model.LayerCoats{Putty: 2, Primer: 1, Emulsion: 2},
		},
		{
			ID:          "doors",
			AreaType:    model.AreaEnamel,
			Label:       "Doors",
			Area:        100,
			PerSqFtRate: 25,
			Enamel:      &model.EnamelConfig{EnamelType: "Synthetic Enamel", EnamelCoats: 2},
		},
	}
}

func TestEstimate_FullPipeline(t *testing.T) {
	est := New(testCatalog(), model.DefaultSettings(), nil)
	result := est.Estimate(estimatorFixtures())

	require.Len(t, result.Ordered, 2)
	assert.Equal(t, "walls", result.Ordered[0].ID, "walls precede enamel work")

	// Putty, primer, emulsion, enamel topcoat.
	require.Len(t, result.Materials, 4)
	assert.Empty(t, result.Warnings())

	assert.Positive(t, result.MaterialCost)
	assert.Positive(t, result.LabourCost)
	assert.Positive(t, result.TotalDays)
	assert.Equal(t, 1, result.Laborers)

	// Quoted cost comes from the per-sqft rates, not from computed costs.
	assert.InDelta(t, 550*18+100*25, result.QuotedProjectCost, 1e-9)
	assert.InDelta(t, 0.10*result.QuotedProjectCost, result.MarginCost, 1e-9)

	assert.InDelta(t, result.MaterialCost+result.LabourCost+result.MarginCost, result.TotalCost, 1e-9)
}

func TestEstimate_Idempotent(t *testing.T) {
	est := New(testCatalog(), model.DefaultSettings(), nil)
	configs := estimatorFixtures()

	first := est.Estimate(configs)
	second := est.Estimate(configs)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated estimation over identical inputs must produce identical results")
	}
}

func TestEstimate_OrderStableAcrossReorderedInput(t *testing.T) {
	est := New(testCatalog(), model.DefaultSettings(), nil)
	configs := estimatorFixtures()

	first := est.Estimate(configs)
	second := est.Estimate([]model.AreaConfiguration{configs[1], configs[0]})

	assert.Equal(t, idsOf(first.Ordered), idsOf(second.Ordered),
		"reordering the same set must not change the displayed order")
}

func TestEstimate_DealerMarginIndependentOfMargin(t *testing.T) {
	settings := model.DefaultSettings()
	settings.DealerMarginPercent = 8

	est := New(testCatalog(), settings, nil)
	result := est.Estimate(estimatorFixtures())

	assert.InDelta(t, 0.08*result.MaterialCost, result.DealerMarginCost, 1e-9)
	// The dealer margin is reported alongside but never added into the total.
	assert.InDelta(t, result.MaterialCost+result.LabourCost+result.MarginCost, result.TotalCost, 1e-9)
}

func TestEstimate_WarningsDoNotAbort(t *testing.T) {
	cat := testCatalog()
	cat.Pricing = cat.Pricing[:1] // only putty priced
	est := New(cat, model.DefaultSettings(), nil)

	result := est.Estimate(estimatorFixtures())

	require.Len(t, result.Materials, 4, "unpriced lines stay in the estimate")
	assert.NotEmpty(t, result.Warnings())
	assert.Positive(t, result.MaterialCost, "priced lines still contribute cost")
	assert.Positive(t, result.TotalDays, "labour is unaffected by pricing gaps")
}

func TestEstimate_EmptyInput(t *testing.T) {
	est := New(testCatalog(), model.DefaultSettings(), nil)
	result := est.Estimate(nil)

	assert.Empty(t, result.Materials)
	assert.Empty(t, result.Labour)
	assert.Zero(t, result.TotalDays)
	assert.Zero(t, result.MaterialCost)
	assert.Zero(t, result.LabourCost)
	assert.Zero(t, result.TotalCost)
}

func TestValidateConfigurations(t *testing.T) {
	err := ValidateConfigurations([]model.AreaConfiguration{
		{ID: "ok", Area: 10},
		{ID: "bad", Label: "Negative", Area: -5},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNegativeArea)
	assert.Contains(t, err.Error(), "bad")
}

func TestCompareScenarios(t *testing.T) {
	settings := model.DefaultSettings()
	scenarios := BuildDefaultScenarios(settings)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, model.PackExact, scenarios[1].Settings.PackStrategy)
	assert.Equal(t, 2, scenarios[2].Settings.LaborersPerDay)

	results := CompareScenarios(scenarios, testCatalog(), estimatorFixtures())
	require.Len(t, results, 3)

	for _, r := range results {
		assert.Positive(t, r.TotalCost)
		assert.Positive(t, r.TotalDays)
	}
	// A doubled crew never takes longer.
	assert.LessOrEqual(t, results[2].TotalDays, results[0].TotalDays)
	// The exact packer never costs more material than greedy.
	assert.LessOrEqual(t, results[1].MaterialCost, results[0].MaterialCost)
}

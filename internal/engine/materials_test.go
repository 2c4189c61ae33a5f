package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushworks/paintquote/internal/catalog"
	"github.com/brushworks/paintquote/internal/model"
)

func testCatalog() model.Catalog {
	return model.Catalog{
		Coverage: []model.CoverageEntry{
			{Product: "Acrylic Wall Putty", Coats: 2, MinCoverage: 12, Unit: "kg"},
			{Product: "Interior Primer", Coats: 1, MinCoverage: 100, Unit: "ltr"},
			{Product: "Tractor Emulsion", Coats: 2, MinCoverage: 55, Unit: "ltr"},
			{Product: "Synthetic Enamel", Coats: 2, MinCoverage: 60, Unit: "ltr"},
			{Product: "Red Oxide Primer", Coats: 1, MinCoverage: 90, Unit: "ltr"},
		},
		Pricing: []model.PricingEntry{
			{Product: "Acrylic Wall Putty", Sizes: map[string]float64{"40kg": 950, "20kg": 520, "5kg": 160}, Unit: "kg"},
			{Product: "Interior Primer", Sizes: map[string]float64{"20L": 2600, "10L": 1400, "4L": 620, "1L": 180}, Unit: "ltr"},
			{Product: "Tractor Emulsion", Sizes: map[string]float64{"20L": 4800, "10L": 2500, "4L": 1100, "1L": 320}, Unit: "ltr"},
			{Product: "Synthetic Enamel", Sizes: map[string]float64{"4L": 1500, "1L": 420, "500ml": 230}, Unit: "ltr"},
			{Product: "Red Oxide Primer", Sizes: map[string]float64{"4L": 900, "1L": 260}, Unit: "ltr"},
		},
	}
}

func newTestCalculator(cat model.Catalog) *MaterialCalculator {
	return NewMaterialCalculator(
		catalog.NewCoverageResolver(cat.Coverage, nil),
		catalog.NewPricingResolver(cat.Pricing, nil),
		GreedyPacker{},
		nil,
	)
}

func TestCalculate_QuantityFromEmbeddedCoatRate(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	cfg := model.AreaConfiguration{
		ID:         "walls",
		AreaType:   model.AreaWall,
		Area:       550,
		System:     model.FreshPainting,
		Materials:  model.SelectedMaterials{Emulsion: "Tractor Emulsion"},
		FreshCoats: model.LayerCoats{Emulsion: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 1)

	r := reqs[0]
	// The 2-coat rate (55 sqft/ltr) already includes both coats: 550/55 = 10,
	// never 550/55*2.
	assert.InDelta(t, 10, r.RawQuantity, 1e-9)
	assert.Equal(t, 10, r.RequiredQuantity)
	assert.Equal(t, "ltr", r.Unit)
	assert.Empty(t, string(r.Warning))
}

func TestCalculate_RoundsQuantityUp(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	cfg := model.AreaConfiguration{
		ID:         "walls",
		Area:       560, // 560/55 = 10.18...
		Materials:  model.SelectedMaterials{Emulsion: "Tractor Emulsion"},
		FreshCoats: model.LayerCoats{Emulsion: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 1)
	assert.Equal(t, 11, reqs[0].RequiredQuantity)
}

func TestCalculate_SkipsInactiveLayers(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	cfg := model.AreaConfiguration{
		ID:           "repaint",
		Area:         300,
		System:       model.Repainting,
		Materials:    model.SelectedMaterials{Putty: "Acrylic Wall Putty", Primer: "Interior Primer", Emulsion: "Tractor Emulsion"},
		FreshCoats:   model.LayerCoats{Putty: 2, Primer: 1, Emulsion: 2},
		RepaintCoats: model.LayerCoats{Putty: 0, Primer: 1, Emulsion: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 2, "putty layer is inactive under repainting")
	for _, r := range reqs {
		assert.NotEqual(t, model.MaterialPutty, r.Category)
	}
}

func TestCalculate_MissingPriceKeepsLineWithWarning(t *testing.T) {
	cat := testCatalog()
	cat.Pricing = nil // no prices at all
	mc := newTestCalculator(cat)

	cfg := model.AreaConfiguration{
		ID:         "walls",
		Area:       550,
		Materials:  model.SelectedMaterials{Emulsion: "Tractor Emulsion"},
		FreshCoats: model.LayerCoats{Emulsion: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 1)

	r := reqs[0]
	assert.Equal(t, model.WarnPriceUnavailable, r.Warning)
	assert.Equal(t, 10, r.RequiredQuantity, "quantity stays best-effort")
	assert.Zero(t, r.TotalCost)
	assert.Equal(t, "ltr", r.Unit, "unit falls back to the name heuristic")
	assert.Empty(t, r.Packs.Lines)
}

func TestCalculate_EmptyPackListKeepsLineWithWarning(t *testing.T) {
	cat := testCatalog()
	cat.Pricing = []model.PricingEntry{
		{Product: "Tractor Emulsion", Sizes: map[string]float64{}, Unit: "ltr"},
	}
	mc := newTestCalculator(cat)

	cfg := model.AreaConfiguration{
		ID:         "walls",
		Area:       550,
		Materials:  model.SelectedMaterials{Emulsion: "Tractor Emulsion"},
		FreshCoats: model.LayerCoats{Emulsion: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 1)
	assert.Equal(t, model.WarnNoPackSizes, reqs[0].Warning)
	assert.Zero(t, reqs[0].TotalCost)
}

func TestCalculate_EnamelBucketSumsAreasBeforePacking(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	doors := model.AreaConfiguration{
		ID:       "doors",
		AreaType: model.AreaEnamel,
		Label:    "Doors",
		Area:     100,
		Enamel:   &model.EnamelConfig{EnamelType: "Synthetic Enamel", EnamelCoats: 2},
	}
	windows := model.AreaConfiguration{
		ID:       "windows",
		AreaType: model.AreaEnamel,
		Label:    "Windows",
		Area:     50,
		Enamel:   &model.EnamelConfig{EnamelType: "Synthetic Enamel", EnamelCoats: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{doors, windows})
	require.Len(t, reqs, 1, "same product and coats in the same bucket collapse to one line")

	r := reqs[0]
	assert.InDelta(t, 150, r.Area, 1e-9)
	// 150/60 = 2.5 -> 3 litres for the combined area.
	assert.Equal(t, 3, r.RequiredQuantity)
}

func TestCalculate_EnamelSeparateBucketStaysApart(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	main := model.AreaConfiguration{
		ID:       "grill",
		AreaType: model.AreaEnamel,
		Label:    "Grill",
		Area:     80,
		Enamel:   &model.EnamelConfig{EnamelType: "Synthetic Enamel", EnamelCoats: 2},
	}
	varnish := model.AreaConfiguration{
		ID:       "varnish",
		AreaType: model.AreaEnamel,
		Label:    "Varnish Gate",
		Area:     40,
		Enamel:   &model.EnamelConfig{EnamelType: "Synthetic Enamel", EnamelCoats: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{main, varnish})
	require.Len(t, reqs, 2, "main and separate buckets never merge")
	assert.InDelta(t, 80, reqs[0].Area, 1e-9)
	assert.InDelta(t, 40, reqs[1].Area, 1e-9)
}

func TestCalculate_EnamelGenericPrimerGetsNoLine(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	cfg := model.AreaConfiguration{
		ID:       "doors",
		AreaType: model.AreaEnamel,
		Label:    "Doors",
		Area:     100,
		Enamel: &model.EnamelConfig{
			PrimerType:  "Select Primer",
			PrimerCoats: 1,
			EnamelType:  "Synthetic Enamel",
			EnamelCoats: 2,
		},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 1, "placeholder primer selections attribute no line")
	assert.Equal(t, model.MaterialEnamelTopcoat, reqs[0].Category)
}

func TestCalculate_EnamelRealPrimerGetsLine(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	cfg := model.AreaConfiguration{
		ID:       "gate",
		AreaType: model.AreaEnamel,
		Label:    "Gate",
		Area:     90,
		Enamel: &model.EnamelConfig{
			PrimerType:  "Red Oxide Primer",
			PrimerCoats: 1,
			EnamelType:  "Synthetic Enamel",
			EnamelCoats: 2,
		},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 2)
	assert.Equal(t, model.MaterialEnamelPrimer, reqs[0].Category)
	assert.Equal(t, 1, reqs[0].RequiredQuantity) // 90/90
	assert.Equal(t, model.MaterialEnamelTopcoat, reqs[1].Category)
}

func TestCalculate_ZeroAreaProducesZeroQuantity(t *testing.T) {
	mc := newTestCalculator(testCatalog())

	cfg := model.AreaConfiguration{
		ID:         "empty",
		Area:       0,
		Materials:  model.SelectedMaterials{Emulsion: "Tractor Emulsion"},
		FreshCoats: model.LayerCoats{Emulsion: 2},
	}

	reqs := mc.Calculate([]model.AreaConfiguration{cfg})
	require.Len(t, reqs, 1)
	assert.Zero(t, reqs[0].RequiredQuantity)
	assert.Zero(t, reqs[0].TotalCost)
	assert.Empty(t, reqs[0].Packs.Lines)
}

package engine

import (
	"math"

	"github.com/brushworks/paintquote/internal/catalog"
	"github.com/brushworks/paintquote/internal/model"
)

// Base daily output rates in sqft per laborer per standard 8-hour day.
// Water-based work distinguishes interior from exterior; enamel work
// distinguishes red-oxide from wood/base primers.
const (
	ratePutty            = 400
	rateInteriorPrimer   = 700
	rateExteriorPrimer   = 550
	rateInteriorEmulsion = 700
	rateExteriorEmulsion = 550
	rateRedOxidePrimer   = 300
	rateWoodPrimer       = 250
	rateEnamelTopcoat    = 300
)

// LabourPlan is the labour output of one estimation pass.
type LabourPlan struct {
	Tasks         []model.LabourTask
	PerConfigDays map[string]int
	TotalDays     int
	Laborers      int
}

// LabourEstimator converts area configurations into days-required figures.
type LabourEstimator struct {
	settings model.EstimateSettings
}

// NewLabourEstimator returns an estimator using the given settings.
func NewLabourEstimator(settings model.EstimateSettings) *LabourEstimator {
	return &LabourEstimator{settings: settings}
}

// labourLayer is one layer of work before day-rounding is applied.
type labourLayer struct {
	configID     string
	product      string
	category     model.MaterialCategory
	area         float64
	coats        int
	totalWork    float64
	adjustedRate float64
}

// Estimate computes per-layer days and the project total. The project total
// is the sum of each configuration's rounded days, not a single rounding of
// the grand total: this keeps the displayed per-card figures consistent with
// the displayed grand total. In manual mode the crew size is back-solved
// from the desired completion days using the mean adjusted output rate.
func (le *LabourEstimator) Estimate(configs []model.AreaConfiguration) LabourPlan {
	layers := le.collectLayers(configs)

	laborers := le.settings.LaborersPerDay
	if laborers < 1 {
		laborers = 1
	}
	if le.settings.Mode == model.LabourManual && le.settings.DesiredCompletionDays > 0 {
		laborers = le.solveLaborers(layers, le.settings.DesiredCompletionDays)
	}

	plan := LabourPlan{
		PerConfigDays: make(map[string]int),
		Laborers:      laborers,
	}
	for _, l := range layers {
		days := 0
		if l.totalWork > 0 && l.adjustedRate > 0 {
			days = int(math.Ceil(l.totalWork / (l.adjustedRate * float64(laborers))))
		}
		plan.Tasks = append(plan.Tasks, model.LabourTask{
			ConfigID:     l.configID,
			Product:      l.product,
			Category:     l.category,
			Area:         l.area,
			Coats:        l.coats,
			TotalWork:    l.totalWork,
			AdjustedRate: l.adjustedRate,
			Days:         days,
		})
		plan.PerConfigDays[l.configID] += days
	}

	// Round-then-sum: each configuration's days are already rounded up, the
	// project total is their sum.
	for _, days := range plan.PerConfigDays {
		plan.TotalDays += days
	}
	return plan
}

// collectLayers expands configurations into work layers. Enamel
// configurations are folded into the Main and Separate/Varnish buckets with
// summed areas, mirroring the material aggregation rule.
func (le *LabourEstimator) collectLayers(configs []model.AreaConfiguration) []labourLayer {
	hoursFactor := 1.0
	if le.settings.StandardHours > 0 {
		hoursFactor = le.settings.WorkingHoursPerDay / le.settings.StandardHours
	}

	var layers []labourLayer
	index := make(map[string]int)

	add := func(key, configID, product string, category model.MaterialCategory, area float64, coats int, baseRate float64) {
		if coats <= 0 || area <= 0 {
			return
		}
		if key != "" {
			if i, ok := index[key]; ok {
				layers[i].area += area
				layers[i].totalWork = layers[i].area * float64(layers[i].coats)
				return
			}
		}
		layers = append(layers, labourLayer{
			configID:     configID,
			product:      product,
			category:     category,
			area:         area,
			coats:        coats,
			totalWork:    area * float64(coats),
			adjustedRate: baseRate * hoursFactor,
		})
		if key != "" {
			index[key] = len(layers) - 1
		}
	}

	for _, cfg := range configs {
		if cfg.IsEnamel() {
			continue
		}
		coats := cfg.ActiveCoats()
		add("", cfg.ID, cfg.Materials.Putty, model.MaterialPutty, cfg.Area, coats.Putty, ratePutty)
		add("", cfg.ID, cfg.Materials.Primer, model.MaterialPrimer, cfg.Area, coats.Primer, waterBasedRate(cfg.Category, rateInteriorPrimer, rateExteriorPrimer))
		add("", cfg.ID, cfg.Materials.Emulsion, model.MaterialEmulsion, cfg.Area, coats.Emulsion, waterBasedRate(cfg.Category, rateInteriorEmulsion, rateExteriorEmulsion))
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
		if en.PrimerCoats > 0 && !catalog.IsGenericPrimerName(en.PrimerType) {
			rate := float64(rateWoodPrimer)
			if catalog.IsRedOxideName(en.PrimerType) {
				rate = rateRedOxidePrimer
			}
			add(bucket+"|"+catalog.Normalize(en.PrimerType)+"|"+catalog.CoatLabel(en.PrimerCoats), cfg.ID, en.PrimerType, model.MaterialEnamelPrimer, cfg.Area, en.PrimerCoats, rate)
		}
		if en.EnamelCoats > 0 && en.EnamelType != "" {
			add(bucket+"|"+catalog.Normalize(en.EnamelType)+"|"+catalog.CoatLabel(en.EnamelCoats), cfg.ID, en.EnamelType, model.MaterialEnamelTopcoat, cfg.Area, en.EnamelCoats, rateEnamelTopcoat)
		}
	}

	return layers
}

// solveLaborers back-solves the crew size needed to finish all work within
// the desired days. The mean of the task rates is a deliberate
// approximation, not a weighted optimum.
func (le *LabourEstimator) solveLaborers(layers []labourLayer, desiredDays int) int {
	if len(layers) == 0 || desiredDays <= 0 {
		return 1
	}
	var totalWork, rateSum float64
	for _, l := range layers {
		totalWork += l.totalWork
		rateSum += l.adjustedRate
	}
	avgRate := rateSum / float64(len(layers))
	if avgRate <= 0 {
		return 1
	}
	needed := int(math.Ceil(totalWork / (avgRate * float64(desiredDays))))
	if needed < 1 {
		needed = 1
	}
	return needed
}

func waterBasedRate(category model.PaintCategory, interior, exterior float64) float64 {
	if category == model.CategoryExterior {
		return exterior
	}
	return interior
}

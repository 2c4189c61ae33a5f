package model

import (
	"strings"

	"github.com/google/uuid"
)

// AreaType identifies the kind of painted surface a configuration covers.
type AreaType int

const (
	AreaWall    AreaType = iota // Interior/exterior wall surface
	AreaCeiling                 // Ceiling surface
	AreaFloor                   // Floor surface
	AreaEnamel                  // Door/window/grill enamel work
	AreaCustom                  // User-defined "separate" area
)

func (a AreaType) String() string {
	switch a {
	case AreaWall:
		return "Wall"
	case AreaCeiling:
		return "Ceiling"
	case AreaFloor:
		return "Floor"
	case AreaEnamel:
		return "Enamel"
	default:
		return "Custom"
	}
}

// PaintCategory is the broad treatment category the chosen products belong to.
type PaintCategory int

const (
	CategoryInterior PaintCategory = iota
	CategoryExterior
	CategoryWaterproofing
)

func (p PaintCategory) String() string {
	switch p {
	case CategoryExterior:
		return "Exterior"
	case CategoryWaterproofing:
		return "Waterproofing"
	default:
		return "Interior"
	}
}

// PaintingSystem selects which coat configuration of an AreaConfiguration is active.
type PaintingSystem int

const (
	FreshPainting PaintingSystem = iota // putty + primer + emulsion
	Repainting                          // primer + emulsion only
)

func (s PaintingSystem) String() string {
	if s == Repainting {
		return "Repainting"
	}
	return "Fresh Painting"
}

// MaterialCategory is the closed set of material roles the engine works with.
// A category is assigned once, when a product enters the system (catalog
// ingestion or configuration authoring), never re-derived from substring
// checks at calculation time.
type MaterialCategory int

const (
	MaterialPutty MaterialCategory = iota
	MaterialPrimer
	MaterialEmulsion
	MaterialEnamelPrimer
	MaterialEnamelTopcoat
)

func (m MaterialCategory) String() string {
	switch m {
	case MaterialPutty:
		return "Putty"
	case MaterialPrimer:
		return "Primer"
	case MaterialEmulsion:
		return "Emulsion"
	case MaterialEnamelPrimer:
		return "Enamel Primer"
	case MaterialEnamelTopcoat:
		return "Enamel Topcoat"
	default:
		return "Unknown"
	}
}

// SelectedMaterials names the chosen product per layer.
type SelectedMaterials struct {
	Putty    string `json:"putty"`
	Primer   string `json:"primer"`
	Emulsion string `json:"emulsion"`
}

// LayerCoats holds integer coat counts per layer. A zero count means the
// layer is not applied.
type LayerCoats struct {
	Putty    int `json:"putty"`
	Primer   int `json:"primer"`
	Emulsion int `json:"emulsion"`
}

// EnamelConfig holds the enamel-specific product and coat selection for
// door/window/grill areas.
type EnamelConfig struct {
	PrimerType  string `json:"primer_type"`
	PrimerCoats int    `json:"primer_coats"`
	EnamelType  string `json:"enamel_type"`
	EnamelCoats int    `json:"enamel_coats"`
}

// AreaConfiguration is one paintable area and its chosen treatment.
// Exactly one of FreshCoats/RepaintCoats is active, selected by System.
type AreaConfiguration struct {
	ID           string            `json:"id"`
	AreaType     AreaType          `json:"area_type"`
	Label        string            `json:"label"`
	SectionName  string            `json:"section_name,omitempty"`
	Category     PaintCategory     `json:"category"`
	System       PaintingSystem    `json:"system"`
	Area         float64           `json:"area"`          // square feet, non-negative
	PerSqFtRate  float64           `json:"per_sqft_rate"` // quoted rate, not the computed cost
	Materials    SelectedMaterials `json:"materials"`
	FreshCoats   LayerCoats        `json:"fresh_coats"`
	RepaintCoats LayerCoats        `json:"repaint_coats"`
	Enamel       *EnamelConfig     `json:"enamel,omitempty"`
}

// NewAreaConfiguration creates a configuration with a generated ID.
func NewAreaConfiguration(areaType AreaType, label string, area float64) AreaConfiguration {
	return AreaConfiguration{
		ID:       uuid.New().String()[:8],
		AreaType: areaType,
		Label:    label,
		Area:     area,
		System:   FreshPainting,
	}
}

// ActiveCoats returns the coat configuration selected by the painting system.
func (c AreaConfiguration) ActiveCoats() LayerCoats {
	if c.System == Repainting {
		return c.RepaintCoats
	}
	return c.FreshCoats
}

// IsEnamel reports whether this configuration is enamel work.
func (c AreaConfiguration) IsEnamel() bool {
	return c.AreaType == AreaEnamel
}

// IsSeparate reports whether this configuration belongs to the
// "separate/varnish" aggregation bucket, classified by naming convention.
func (c AreaConfiguration) IsSeparate() bool {
	for _, s := range []string{c.Label, c.SectionName} {
		lower := strings.ToLower(s)
		if strings.Contains(lower, "varnish") || strings.Contains(lower, "separate") {
			return true
		}
	}
	return false
}

// QuotedCost returns the contractor's quoted cost for this area. The quoted
// rate is independent of the computed material and labour cost.
func (c AreaConfiguration) QuotedCost() float64 {
	return c.Area * c.PerSqFtRate
}

// Validate rejects configurations that must not enter the engine.
func (c AreaConfiguration) Validate() error {
	if c.Area < 0 {
		return ErrNegativeArea
	}
	coats := c.ActiveCoats()
	if coats.Putty < 0 || coats.Primer < 0 || coats.Emulsion < 0 {
		return ErrNegativeCoats
	}
	if c.Enamel != nil && (c.Enamel.PrimerCoats < 0 || c.Enamel.EnamelCoats < 0) {
		return ErrNegativeCoats
	}
	return nil
}

// Project ties configurations and settings together for save/load.
type Project struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	DealerID       string              `json:"dealer_id,omitempty"`
	Configurations []AreaConfiguration `json:"configurations"`
	Settings       EstimateSettings    `json:"settings"`
	Result         *EstimationResult   `json:"result,omitempty"`
}

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		ID:             uuid.New().String()[:8],
		Name:           "Untitled",
		Configurations: []AreaConfiguration{},
		Settings:       DefaultSettings(),
	}
}

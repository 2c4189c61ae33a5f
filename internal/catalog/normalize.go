// Package catalog resolves product coverage rates and pack pricing from the
// reference tables supplied by the catalog/admin subsystem. Lookups are
// keyed by normalized product names so that pack-size suffixes and label
// formatting differences between the two tables do not break matching.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brushworks/paintquote/internal/model"
)

// packSizeToken matches pack-size suffixes embedded in product names,
// e.g. "Ace Exterior Emulsion 20L" or "Wall Putty 40 kg".
var packSizeToken = regexp.MustCompile(`\b\d+(\.\d+)?\s*(ml|l|ltr|ltrs|litre|litres|liter|liters|kg|kgs|g|gm|gms)\b\.?`)

// coatQualifiers are dropped during normalization; the primer/topcoat
// distinction is carried by MaterialCategory, not by the name.
var coatQualifiers = []string{"base coat", "top coat", "basecoat", "topcoat"}

// Normalize lower-cases a product name, strips pack-size tokens and coat
// qualifiers, and collapses whitespace.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = packSizeToken.ReplaceAllString(n, " ")
	for _, q := range coatQualifiers {
		n = strings.ReplaceAll(n, q, " ")
	}
	return strings.Join(strings.Fields(n), " ")
}

// CoatLabel formats a coat count the way the coverage table keys it.
func CoatLabel(coats int) string {
	if coats == 1 {
		return "1 coat"
	}
	return fmt.Sprintf("%d coats", coats)
}

// ClassifyProduct derives a MaterialCategory from a product name. This is an
// ingestion-time classifier: the result is stored on the catalog entry or
// configuration, and the engine only ever dispatches on the stored category.
func ClassifyProduct(name string) model.MaterialCategory {
	n := Normalize(name)
	switch {
	case strings.Contains(n, "putty") || strings.Contains(n, "polymer"):
		return model.MaterialPutty
	case strings.Contains(n, "red oxide") || strings.Contains(n, "redoxide"):
		return model.MaterialEnamelPrimer
	case strings.Contains(n, "primer") &&
		(strings.Contains(n, "wood") || strings.Contains(n, "metal") || strings.Contains(n, "oil")):
		return model.MaterialEnamelPrimer
	case strings.Contains(n, "primer"):
		return model.MaterialPrimer
	case strings.Contains(n, "enamel") || strings.Contains(n, "varnish") ||
		strings.Contains(n, "gloss") || strings.Contains(n, "satin"):
		return model.MaterialEnamelTopcoat
	default:
		return model.MaterialEmulsion
	}
}

// UnitForProduct infers the purchase unit from a product name: putty and
// polymer products are sold by mass, everything else by volume.
func UnitForProduct(name string) string {
	n := Normalize(name)
	if strings.Contains(n, "putty") || strings.Contains(n, "polymer") {
		return "kg"
	}
	return "ltr"
}

// IsRedOxideName reports whether an enamel primer is a red-oxide product.
// Red-oxide and wood/base primers carry different daily output rates.
func IsRedOxideName(name string) bool {
	n := Normalize(name)
	return strings.Contains(n, "red oxide") || strings.Contains(n, "redoxide")
}

// IsGenericPrimerName reports whether a primer selection is a placeholder
// rather than a real product choice. Enamel areas only get a primer line
// when a real primer was explicitly chosen.
func IsGenericPrimerName(name string) bool {
	n := Normalize(name)
	switch n {
	case "", "primer", "default", "none", "select", "select primer", "n/a", "na":
		return true
	}
	return false
}

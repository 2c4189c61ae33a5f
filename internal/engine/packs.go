// Package engine implements the estimation pipeline: pack combination
// optimization, material requirements, labour days, display ordering, and
// cost aggregation. The pipeline is a pure, synchronous computation over a
// catalog snapshot; running it twice on the same inputs yields identical
// results.
package engine

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/brushworks/paintquote/internal/model"
)

// ErrNoPackSizes is returned when a positive quantity is required but the
// pricing entry lists no purchasable pack sizes.
var ErrNoPackSizes = errors.New("no pack sizes available for required quantity")

// remainderEpsilon is the residual quantity below which the greedy packer
// considers the requirement covered without a top-up pack.
const remainderEpsilon = 0.01

// PackOption is one purchasable pack size with its price.
type PackOption struct {
	Label string
	Size  float64
	Price float64
}

// PackStrategy builds a pack combination covering at least the required
// quantity. Implementations must never under-provision.
type PackStrategy interface {
	Combine(required float64, options []PackOption) (model.PackCombination, error)
}

// StrategyFor maps a settings value to a concrete strategy. Unknown values
// fall back to the greedy packer, the historical default.
func StrategyFor(kind model.PackStrategyKind) PackStrategy {
	if kind == model.PackExact {
		return ExactPacker{}
	}
	return GreedyPacker{}
}

// GreedyPacker selects packs largest-first, then tops up with a single
// smallest pack when a residual remains. It guarantees coverage of the
// required quantity but is not guaranteed cost-minimal.
type GreedyPacker struct{}

// Combine implements PackStrategy.
func (GreedyPacker) Combine(required float64, options []PackOption) (model.PackCombination, error) {
	if required <= 0 {
		return model.PackCombination{}, nil
	}
	if len(options) == 0 {
		return model.PackCombination{}, ErrNoPackSizes
	}

	sorted := make([]PackOption, len(options))
	copy(sorted, options)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })

	var lines []model.PackLine
	remaining := required
	for _, opt := range sorted {
		if opt.Size <= 0 {
			continue
		}
		count := int(math.Floor(remaining / opt.Size))
		if count > 0 {
			lines = append(lines, model.PackLine{
				PackLabel: opt.Label,
				PackSize:  opt.Size,
				Count:     count,
				UnitPrice: opt.Price,
			})
			remaining -= float64(count) * opt.Size
		}
	}

	// One extra smallest pack guarantees full coverage, even though it may
	// overshoot the requirement.
	if remaining > remainderEpsilon {
		smallest := sorted[len(sorted)-1]
		merged := false
		for i := range lines {
			if lines[i].PackLabel == smallest.Label {
				lines[i].Count++
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, model.PackLine{
				PackLabel: smallest.Label,
				PackSize:  smallest.Size,
				Count:     1,
				UnitPrice: smallest.Price,
			})
		}
	}

	var total float64
	for _, l := range lines {
		total += float64(l.Count) * l.UnitPrice
	}
	return model.PackCombination{Lines: lines, TotalCost: total}, nil
}

// OptionsFromEntry converts a pricing entry's pack-label map into pack
// options, sorted by size descending for deterministic output. Labels whose
// size cannot be parsed are skipped.
func OptionsFromEntry(entry model.PricingEntry) []PackOption {
	options := make([]PackOption, 0, len(entry.Sizes))
	for label, price := range entry.Sizes {
		size := ParsePackSize(label)
		if size <= 0 {
			continue
		}
		options = append(options, PackOption{Label: label, Size: size, Price: price})
	}
	sort.Slice(options, func(i, j int) bool {
		if options[i].Size != options[j].Size {
			return options[i].Size > options[j].Size
		}
		return options[i].Label < options[j].Label
	})
	return options
}

// ParsePackSize extracts the quantity from a pack-size label such as "20L",
// "5kg", "1 ltr" or "500ml". Gram and millilitre labels are converted to the
// base unit. Returns 0 when no quantity can be parsed.
func ParsePackSize(label string) float64 {
	s := strings.ToLower(strings.TrimSpace(label))
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	unit := strings.TrimSpace(s[end:])
	switch unit {
	case "ml", "g", "gm", "gms":
		return v / 1000.0
	default:
		return v
	}
}

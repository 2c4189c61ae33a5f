package engine

import (
	"math"
	"sort"

	"github.com/brushworks/paintquote/internal/model"
)

// dpScale is the quantity resolution of the exact solver: one DP cell per
// 0.1 unit, enough for the smallest real pack sizes (100 ml / 100 g).
const dpScale = 10

// ExactPacker finds the cheapest pack combination covering the required
// quantity using dynamic programming over discretized quantities. It is the
// alternative to the historical greedy heuristic; results may differ from
// past quotations, so it is opt-in via settings.
type ExactPacker struct{}

// Combine implements PackStrategy.
func (ExactPacker) Combine(required float64, options []PackOption) (model.PackCombination, error) {
	if required <= 0 {
		return model.PackCombination{}, nil
	}
	if len(options) == 0 {
		return model.PackCombination{}, ErrNoPackSizes
	}

	type scaledPack struct {
		opt  PackOption
		size int
	}
	packs := make([]scaledPack, 0, len(options))
	for _, opt := range options {
		size := int(math.Round(opt.Size * dpScale))
		if size > 0 {
			packs = append(packs, scaledPack{opt: opt, size: size})
		}
	}
	if len(packs) == 0 {
		return model.PackCombination{}, ErrNoPackSizes
	}

	target := int(math.Ceil(required*dpScale - 1e-9))

	// best[j] is the minimum cost to cover at least j scaled units; clamping
	// the predecessor index at zero makes overshooting packs valid moves.
	best := make([]float64, target+1)
	choice := make([]int, target+1)
	for j := 1; j <= target; j++ {
		best[j] = math.Inf(1)
		choice[j] = -1
		for i, p := range packs {
			prev := j - p.size
			if prev < 0 {
				prev = 0
			}
			if cost := best[prev] + p.opt.Price; cost < best[j] {
				best[j] = cost
				choice[j] = i
			}
		}
	}
	if math.IsInf(best[target], 1) {
		return model.PackCombination{}, ErrNoPackSizes
	}

	counts := make(map[int]int)
	for j := target; j > 0; {
		i := choice[j]
		counts[i]++
		j -= packs[i].size
		if j < 0 {
			j = 0
		}
	}

	idxs := make([]int, 0, len(counts))
	for i := range counts {
		idxs = append(idxs, i)
	}
	sort.Slice(idxs, func(a, b int) bool {
		if packs[idxs[a]].size != packs[idxs[b]].size {
			return packs[idxs[a]].size > packs[idxs[b]].size
		}
		return packs[idxs[a]].opt.Label < packs[idxs[b]].opt.Label
	})

	var lines []model.PackLine
	var total float64
	for _, i := range idxs {
		p := packs[i]
		lines = append(lines, model.PackLine{
			PackLabel: p.opt.Label,
			PackSize:  p.opt.Size,
			Count:     counts[i],
			UnitPrice: p.opt.Price,
		})
		total += float64(counts[i]) * p.opt.Price
	}
	return model.PackCombination{Lines: lines, TotalCost: total}, nil
}

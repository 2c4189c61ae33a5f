package engine

import (
	"hash/fnv"
	"math"
	"sort"
	"strconv"

	"github.com/brushworks/paintquote/internal/model"
)

// Orderer imposes the display order over area configurations: Wall, Ceiling,
// Floor, separate custom areas, enamel main, enamel separate/varnish. The
// computed order is memoized by a content fingerprint of the configuration
// set, so repeated passes over the same set — in any input order — return
// the order already shown. This is a correctness requirement for
// presentation stability, not an optimization.
type Orderer struct {
	fingerprint uint64
	ordered     []model.AreaConfiguration
}

// NewOrderer returns an Orderer with no cached order.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// Order returns the configurations in display order. The sort only runs when
// the set's content fingerprint differs from the cached one.
func (o *Orderer) Order(configs []model.AreaConfiguration) []model.AreaConfiguration {
	fp := Fingerprint(configs)
	if o.ordered != nil && fp == o.fingerprint {
		return o.ordered
	}

	ordered := make([]model.AreaConfiguration, len(configs))
	copy(ordered, configs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return displayPriority(ordered[i]) < displayPriority(ordered[j])
	})

	o.fingerprint = fp
	o.ordered = ordered
	return ordered
}

// displayPriority maps a configuration to its display group rank.
func displayPriority(cfg model.AreaConfiguration) int {
	switch cfg.AreaType {
	case model.AreaWall:
		return 1
	case model.AreaCeiling:
		return 2
	case model.AreaFloor:
		return 3
	case model.AreaEnamel:
		if cfg.IsSeparate() {
			return 6
		}
		return 5
	default:
		return 4
	}
}

// Fingerprint hashes the content of a configuration set independently of its
// order: per-configuration FNV hashes combined commutatively. Two sets with
// the same ids, areas, and types fingerprint identically however they are
// listed.
func Fingerprint(configs []model.AreaConfiguration) uint64 {
	var sum, xor uint64
	for _, cfg := range configs {
		h := fnv.New64a()
		h.Write([]byte(cfg.ID))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatUint(math.Float64bits(cfg.Area), 16)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(int(cfg.AreaType))))
		h.Write([]byte{0})
		h.Write([]byte(cfg.Label))
		h.Write([]byte{0})
		h.Write([]byte(cfg.SectionName))
		v := h.Sum64()
		sum += v
		xor ^= v
	}
	return sum ^ (xor * 0x9e3779b97f4a7c15)
}

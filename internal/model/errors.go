package model

import "errors"

// Validation errors returned before a configuration enters the engine.
var (
	ErrNegativeArea  = errors.New("area must be non-negative")
	ErrNegativeCoats = errors.New("coat counts must be non-negative")
)

// Warning marks a non-fatal, per-line data problem. Lines carrying a warning
// stay in the estimate with a zero cost so totals remain computable.
type Warning string

const (
	// WarnPriceUnavailable means no pricing entry matched the product, even
	// by partial name match. The line's quantity is best-effort and its cost
	// is zero.
	WarnPriceUnavailable Warning = "price data unavailable"

	// WarnNoPackSizes means a pricing entry existed but listed no purchasable
	// pack sizes, so no combination could be built.
	WarnNoPackSizes Warning = "no pack sizes available"
)

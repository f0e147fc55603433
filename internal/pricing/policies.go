// Package pricing holds the two named pricing policies for custom candles.
// They are deliberately not unified: the AI-assisted magic-request flow charges
// a fixed price regardless of recipe complexity, while the configured-checkout
// flow applies a per-material upcharge. Whether that split is two product
// tiers or drift is an open question tracked in DESIGN.md.
package pricing

import "strconv"

const (
	magicRequestPrice = 35.00

	customCandleBasePrice = 42.00
	includedMaterials     = 3
	materialUpcharge      = 2.00
)

// MagicRequestPrice returns the fixed price of an AI-assisted candle order.
func MagicRequestPrice() string {
	return FormatPrice(magicRequestPrice)
}

// CustomCandlePrice prices a configured custom candle: the base price plus an
// upcharge for each fragrance material beyond the included three. The upcharge
// is never negative.
func CustomCandlePrice(materialCount int) string {
	extra := materialCount - includedMaterials
	if extra < 0 {
		extra = 0
	}
	return FormatPrice(customCandleBasePrice + float64(extra)*materialUpcharge)
}

// FormatPrice formats a price as a decimal string with two fraction digits,
// the form the commerce admin API expects.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

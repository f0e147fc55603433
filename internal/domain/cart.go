package domain

// CartItemKind distinguishes the two checkout item shapes.
type CartItemKind string

const (
	CartItemStandard     CartItemKind = "standard"
	CartItemCustomCandle CartItemKind = "custom_candle"
)

// ScentRecipe is the customer-picked fragrance selection for a configured
// custom candle (the non-AI path).
type ScentRecipe struct {
	Materials     []string
	MaterialCount int
}

// CustomCandleConfig holds the configuration of a made-to-order candle.
type CustomCandleConfig struct {
	Size        string
	JarType     string
	ScentRecipe ScentRecipe
}

// CartItem is one entry in a checkout cart. Entries with the same variant ID
// are distinct list entries, not merged counts; quantity lives per item.
// Custom candles are always-unique and non-stackable (quantity fixed at 1).
type CartItem struct {
	Kind          CartItemKind
	VariantID     int64
	Quantity      int
	Configuration *CustomCandleConfig
}

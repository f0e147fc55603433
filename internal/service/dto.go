package service

// MagicRequestSubmission is the magic-request payload
type MagicRequestSubmission struct {
	Prompt string `json:"prompt" binding:"required"`
	Size   string `json:"size" binding:"required"`
}

// MagicRequestResult is the terminal-success response body
type MagicRequestResult struct {
	RequestID   string `json:"requestId"`
	CandleName  string `json:"candleName"`
	Description string `json:"description"`
}

// MagicRequestStatus is the poll-target response body. Clients poll it until
// Status is terminal.
type MagicRequestStatus struct {
	RequestID   string `json:"requestId"`
	Status      string `json:"status"`
	CandleName  string `json:"candleName,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// CheckoutRequest is the standard-checkout payload
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" binding:"required,min=1"`
}

// CheckoutItem is one cart entry: either a standard variant purchase or a
// configured custom candle.
type CheckoutItem struct {
	Kind          string              `json:"kind" binding:"required,oneof=standard custom_candle"`
	VariantID     int64               `json:"variantId,omitempty"`
	Quantity      int                 `json:"quantity,omitempty"`
	Configuration *CustomCandleConfig `json:"configuration,omitempty"`
}

type CustomCandleConfig struct {
	Size        string      `json:"size" binding:"required"`
	JarType     string      `json:"jarType" binding:"required"`
	ScentRecipe ScentRecipe `json:"scentRecipe" binding:"required"`
}

type ScentRecipe struct {
	Materials     []string `json:"materials"`
	MaterialCount int      `json:"materialCount"`
}

// CheckoutResult is the standard-checkout response body
type CheckoutResult struct {
	DraftOrderID int64  `json:"draftOrderId"`
	InvoiceURL   string `json:"invoiceUrl"`
}

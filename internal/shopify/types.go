package shopify

// Property is one custom attribute on a line item. Order is significant: the
// admin UI shows properties in the order they are submitted.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LineItem is one purchasable entry in a draft order. Standard items carry a
// variant ID; custom items carry a title, price and the custom flag.
type LineItem struct {
	Title      string     `json:"title,omitempty"`
	Price      string     `json:"price,omitempty"`
	Quantity   int        `json:"quantity"`
	Custom     bool       `json:"custom,omitempty"`
	VariantID  *int64     `json:"variant_id,omitempty"`
	Properties []Property `json:"properties,omitempty"`
}

// DraftOrder is the payload POSTed to the draft-order creation endpoint,
// wrapped as {"draft_order": ...} on the wire.
type DraftOrder struct {
	LineItems []LineItem `json:"line_items"`
	Note      string     `json:"note,omitempty"`
}

// DraftOrderResult is the durable result of a successful creation call.
type DraftOrderResult struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	InvoiceURL string `json:"invoice_url"`
}

type draftOrderRequest struct {
	DraftOrder DraftOrder `json:"draft_order"`
}

type draftOrderResponse struct {
	DraftOrder DraftOrderResult `json:"draft_order"`
}

package ordering

// AddLineRequest adds (or tops up) one menu item on a location's order.
// Name and unit price come from the catalog, never from the client.
type AddLineRequest struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateLineRequest changes the quantity or add-on of an existing line.
// Quantity zero removes the line. An empty tier clears the add-on.
type UpdateLineRequest struct {
	Quantity  *int    `json:"quantity" binding:"omitempty,min=0"`
	AddOnTier *string `json:"add_on_tier"`
}

// LineResponse is one order line in an order view
type LineResponse struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	AddOnCharge string `json:"add_on_charge,omitempty"`
	AddOnTier   string `json:"add_on_tier,omitempty"`
	LineTotal   string `json:"line_total"`
}

// OrderSummaryResponse is the priced view of a location's active order
type OrderSummaryResponse struct {
	Location          string         `json:"location"`
	ItemCount         int            `json:"item_count"`
	Lines             []LineResponse `json:"lines"`
	Subtotal          string         `json:"subtotal"`
	AddOnTotal        string         `json:"add_on_total"`
	ServiceFeePercent string         `json:"service_fee_percent"`
	ServiceFee        string         `json:"service_fee"`
	GrandTotal        string         `json:"grand_total"`
}

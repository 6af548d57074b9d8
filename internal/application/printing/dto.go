package printing

import (
	"time"
)

// PrintOrderRequest asks for the full print run of one location's order:
// one ticket per routing station followed by the customer bill
type PrintOrderRequest struct {
	Mode   string `json:"mode" binding:"required,oneof=TABLE COUNTER"`
	Number int    `json:"number" binding:"required,min=1"`
}

// DocumentOutcome reports the delivery outcome of one document
type DocumentOutcome struct {
	Kind       string `json:"kind"`
	Station    string `json:"station,omitempty"`
	Channel    string `json:"channel,omitempty"`
	Printer    string `json:"printer,omitempty"`
	Delivered  bool   `json:"delivered"`
	Escalated  bool   `json:"escalated"`
	Attempts   int    `json:"attempts"`
	FailureMsg string `json:"failure_msg,omitempty"`
	RecordID   string `json:"record_id"`
}

// PrintOrderResponse reports the outcome of the whole print run. The run is
// not all-or-nothing: a failed ticket does not stop the bill, so callers must
// inspect the per-document outcomes.
type PrintOrderResponse struct {
	BillNumber    string            `json:"bill_number"`
	Location      string            `json:"location"`
	PrintedAt     time.Time         `json:"printed_at"`
	Documents     []DocumentOutcome `json:"documents"`
	AllDelivered  bool              `json:"all_delivered"`
	BillDelivered bool              `json:"bill_delivered"`
	Diagnostics   []string          `json:"diagnostics,omitempty"`
	GrandTotal    string            `json:"grand_total"`
}

// RecordResponse is one delivery audit record
type RecordResponse struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	Station      string     `json:"station,omitempty"`
	BillNumber   string     `json:"bill_number,omitempty"`
	Location     string     `json:"location"`
	Status       string     `json:"status"`
	Channel      string     `json:"channel,omitempty"`
	Attempts     int        `json:"attempts"`
	Escalated    bool       `json:"escalated"`
	FailureMsg   string     `json:"failure_msg,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}

// ListRecordsRequest pages through the delivery audit trail
type ListRecordsRequest struct {
	Page     int `form:"page" binding:"min=0"`
	PageSize int `form:"page_size" binding:"min=0,max=100"`
}

// ListRecordsResponse is a paginated list of delivery records
type ListRecordsResponse struct {
	Items []RecordResponse `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

package persistence

import "strings"

// ValidateSortOrder normalizes a sort direction to ASC or DESC, defaulting
// to DESC. Sort inputs reach raw ORDER BY clauses, so anything else is
// rejected rather than passed through.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField allows only whitelisted column names, falling back to
// defaultField for anything unknown or empty
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	field := strings.TrimSpace(sortField)
	if allowedFields[field] {
		return field
	}
	return defaultField
}

// DeliveryRecordSortFields lists the delivery_records columns list queries
// may sort by
var DeliveryRecordSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"kind":         true,
	"station":      true,
	"bill_number":  true,
	"location_key": true,
	"status":       true,
	"channel":      true,
	"delivered_at": true,
}

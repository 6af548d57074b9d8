package printing

import (
	"github.com/pos/backend/internal/domain/shared"
)

const aggregateTypeDeliveryRecord = "delivery_record"

// Event type constants for the printing domain
const (
	EventTypeDeliveryRecordOpened    = "printing.delivery_record.opened"
	EventTypeDeliveryRecordDelivered = "printing.delivery_record.delivered"
	EventTypeDeliveryRecordFailed    = "printing.delivery_record.failed"
)

// DeliveryRecordOpenedEvent is raised when a document enters the pipeline
type DeliveryRecordOpenedEvent struct {
	shared.BaseDomainEvent
	Kind         DocumentKind `json:"kind"`
	Station      string       `json:"station"`
	LocationText string       `json:"location_text"`
}

// NewDeliveryRecordOpenedEvent creates a record-opened event
func NewDeliveryRecordOpenedEvent(rec *DeliveryRecord) *DeliveryRecordOpenedEvent {
	return &DeliveryRecordOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryRecordOpened, aggregateTypeDeliveryRecord, rec.ID),
		Kind:            rec.Kind,
		Station:         rec.Station,
		LocationText:    rec.LocationText,
	}
}

// DeliveryRecordDeliveredEvent is raised when a document reaches paper
type DeliveryRecordDeliveredEvent struct {
	shared.BaseDomainEvent
	Kind      DocumentKind    `json:"kind"`
	Channel   DeliveryChannel `json:"channel"`
	Escalated bool            `json:"escalated"`
	Attempts  int             `json:"attempts"`
}

// NewDeliveryRecordDeliveredEvent creates a record-delivered event
func NewDeliveryRecordDeliveredEvent(rec *DeliveryRecord) *DeliveryRecordDeliveredEvent {
	return &DeliveryRecordDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryRecordDelivered, aggregateTypeDeliveryRecord, rec.ID),
		Kind:            rec.Kind,
		Channel:         rec.Channel,
		Escalated:       rec.Escalated,
		Attempts:        rec.Attempts,
	}
}

// DeliveryRecordFailedEvent is raised when every delivery channel was
// exhausted without the document reaching paper
type DeliveryRecordFailedEvent struct {
	shared.BaseDomainEvent
	Kind       DocumentKind    `json:"kind"`
	Channel    DeliveryChannel `json:"channel"`
	Attempts   int             `json:"attempts"`
	FailureMsg string          `json:"failure_msg"`
}

// NewDeliveryRecordFailedEvent creates a record-failed event
func NewDeliveryRecordFailedEvent(rec *DeliveryRecord) *DeliveryRecordFailedEvent {
	return &DeliveryRecordFailedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryRecordFailed, aggregateTypeDeliveryRecord, rec.ID),
		Kind:            rec.Kind,
		Channel:         rec.Channel,
		Attempts:        rec.Attempts,
		FailureMsg:      rec.FailureMsg,
	}
}

package printing

import (
	"time"

	"github.com/pos/backend/internal/domain/shared"
)

// DeliveryRecord is the audit trail for one printed document. Every print
// attempt produces exactly one record, whether it delivered or not; a
// document is never dropped without a FAILED record explaining why.
type DeliveryRecord struct {
	shared.BaseAggregateRoot
	Kind         DocumentKind
	Station      string
	BillNumber   string
	LocationKey  string
	LocationText string
	Width        WidthProfile
	Body         string
	Status       DeliveryStatus
	Channel      DeliveryChannel
	Attempts     int
	Escalated    bool
	FailureMsg   string
	DeliveredAt  *time.Time
}

// NewDeliveryRecord opens an audit record for a rendered document about to
// enter the delivery pipeline
func NewDeliveryRecord(doc *Document, locationKey string, width WidthProfile) (*DeliveryRecord, error) {
	if doc == nil {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "Document cannot be nil")
	}
	if !width.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROFILE", "Unknown width profile: "+width.String())
	}

	rec := &DeliveryRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              doc.Kind,
		Station:           doc.Station,
		BillNumber:        doc.BillNumber,
		LocationKey:       locationKey,
		LocationText:      doc.LocationText,
		Width:             width,
		Body:              doc.Text(),
		Status:            StatusPending,
	}
	rec.AddDomainEvent(NewDeliveryRecordOpenedEvent(rec))
	return rec, nil
}

// StartDelivering marks the record as in flight on a channel
func (r *DeliveryRecord) StartDelivering(channel DeliveryChannel) error {
	if err := r.transition(StatusDelivering); err != nil {
		return err
	}
	r.Channel = channel
	r.Attempts++
	r.touch()
	return nil
}

// Escalate moves an in-flight record to the next channel after the current
// one failed. The record stays DELIVERING; only the channel and attempt
// counter change.
func (r *DeliveryRecord) Escalate(next DeliveryChannel) error {
	if r.Status != StatusDelivering {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot escalate a record that is not delivering, status: "+r.Status.String())
	}
	r.Channel = next
	r.Attempts++
	r.Escalated = true
	r.touch()
	return nil
}

// MarkDelivered closes the record as successfully delivered
func (r *DeliveryRecord) MarkDelivered(result DeliveryResult, at time.Time) error {
	if err := r.transition(StatusDelivered); err != nil {
		return err
	}
	r.Channel = result.Channel
	r.Attempts = result.Attempts
	r.Escalated = result.Escalated
	r.DeliveredAt = &at
	r.touch()
	r.AddDomainEvent(NewDeliveryRecordDeliveredEvent(r))
	return nil
}

// MarkFailed closes the record as failed after every channel was exhausted.
// The failure reason is mandatory so the audit trail can explain the loss.
func (r *DeliveryRecord) MarkFailed(result DeliveryResult) error {
	if result.FailureMsg == "" {
		return shared.NewDomainError("INVALID_INPUT", "A failed delivery must carry a reason")
	}
	if err := r.transition(StatusFailed); err != nil {
		return err
	}
	r.Channel = result.Channel
	r.Attempts = result.Attempts
	r.Escalated = result.Escalated
	r.FailureMsg = result.FailureMsg
	r.touch()
	r.AddDomainEvent(NewDeliveryRecordFailedEvent(r))
	return nil
}

// IsDelivered returns true once the document reached paper or a durable file
func (r *DeliveryRecord) IsDelivered() bool {
	return r.Status == StatusDelivered
}

func (r *DeliveryRecord) transition(to DeliveryStatus) error {
	if !r.Status.CanTransitionTo(to) {
		return shared.NewDomainError("INVALID_STATE_TRANSITION",
			"Cannot transition delivery record from "+r.Status.String()+" to "+to.String())
	}
	r.Status = to
	return nil
}

func (r *DeliveryRecord) touch() {
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

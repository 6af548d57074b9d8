package models

import (
	"time"

	"github.com/pos/backend/internal/domain/printing"
)

// DeliveryRecordModel is the GORM model for the delivery_records table
type DeliveryRecordModel struct {
	AggregateModel
	Kind         string     `gorm:"type:varchar(16);not null;index"`
	Station      string     `gorm:"type:varchar(64)"`
	BillNumber   string     `gorm:"column:bill_number;type:varchar(32);index"`
	LocationKey  string     `gorm:"column:location_key;type:varchar(32);not null;index"`
	LocationText string     `gorm:"column:location_text;type:varchar(64);not null"`
	Width        string     `gorm:"type:varchar(16);not null"`
	Body         string     `gorm:"type:text;not null"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	Channel      string     `gorm:"type:varchar(16)"`
	Attempts     int        `gorm:"not null;default:0"`
	Escalated    bool       `gorm:"not null;default:false"`
	FailureMsg   string     `gorm:"column:failure_msg;type:varchar(512)"`
	DeliveredAt  *time.Time `gorm:"column:delivered_at"`
}

// TableName returns the table name for DeliveryRecordModel
func (DeliveryRecordModel) TableName() string {
	return "delivery_records"
}

// ToDomain converts DeliveryRecordModel to domain DeliveryRecord
func (m *DeliveryRecordModel) ToDomain() *printing.DeliveryRecord {
	rec := &printing.DeliveryRecord{
		Kind:         printing.DocumentKind(m.Kind),
		Station:      m.Station,
		BillNumber:   m.BillNumber,
		LocationKey:  m.LocationKey,
		LocationText: m.LocationText,
		Width:        printing.WidthProfile(m.Width),
		Body:         m.Body,
		Status:       printing.DeliveryStatus(m.Status),
		Channel:      printing.DeliveryChannel(m.Channel),
		Attempts:     m.Attempts,
		Escalated:    m.Escalated,
		FailureMsg:   m.FailureMsg,
		DeliveredAt:  m.DeliveredAt,
	}
	m.PopulateAggregateRoot(&rec.BaseAggregateRoot)
	return rec
}

// DeliveryRecordModelFromDomain creates a DeliveryRecordModel from domain DeliveryRecord
func DeliveryRecordModelFromDomain(rec *printing.DeliveryRecord) *DeliveryRecordModel {
	model := &DeliveryRecordModel{
		Kind:         rec.Kind.String(),
		Station:      rec.Station,
		BillNumber:   rec.BillNumber,
		LocationKey:  rec.LocationKey,
		LocationText: rec.LocationText,
		Width:        rec.Width.String(),
		Body:         rec.Body,
		Status:       rec.Status.String(),
		Channel:      rec.Channel.String(),
		Attempts:     rec.Attempts,
		Escalated:    rec.Escalated,
		FailureMsg:   rec.FailureMsg,
		DeliveredAt:  rec.DeliveredAt,
	}
	model.FromDomainAggregateRoot(rec.BaseAggregateRoot)
	return model
}

package models

import "time"

// PaymentStatus is the single persisted record: last-known status per
// provider-assigned payment ID. IDs are never generated locally, so
// uniqueness is the provider's problem. Rows are never deleted (no TTL).
type PaymentStatus struct {
	PaymentID string    `gorm:"primaryKey;size:64" json:"payment_id"`
	Status    string    `gorm:"size:32;not null" json:"status"` // pending, approved, cancelled, rejected, unknown or raw provider value
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PaymentStatus) TableName() string {
	return "payment_statuses"
}

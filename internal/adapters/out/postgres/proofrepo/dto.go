// Package proofrepo persists proof-of-delivery records. Records are
// append-only evidence rows and survive deletion of the order they belong
// to.
package proofrepo

import (
	"time"

	"orderdelivery/internal/core/domain/model/proof"
)

// ProofDTO represents the database structure for proof records.
type ProofDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index;not null"`
	DelivererID int64 `gorm:"index;not null"`
	ImageRef    string
	Notes       string
	CreatedAt   time.Time
}

// TableName specifies the database table name for proof records.
func (ProofDTO) TableName() string {
	return "delivery_proofs"
}

// fromDomain converts a proof aggregate to its database representation.
func fromDomain(aggregate *proof.Proof) ProofDTO {
	return ProofDTO{
		ID:          aggregate.ID(),
		OrderID:     aggregate.OrderID(),
		DelivererID: aggregate.DelivererID(),
		ImageRef:    aggregate.ImageRef(),
		Notes:       aggregate.Notes(),
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is one issued QR token. Tokens have no used flag: the same
// token may be redeemed by many distinct customers, once each, tracked in
// token_redemptions.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Token           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"token"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"establishmentId"`
	CreatedAt       time.Time `json:"createdAt"`

	Redemptions []TokenRedemption `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// TokenRedemption records one customer redeeming one token. The composite
// unique index is the source of truth for the once-per-customer rule; a
// duplicate insert must be treated as "already redeemed", not as a failure.
type TokenRedemption struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_redemption_txn_customer,priority:1" json:"transactionId"`
	CustomerGUID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_redemption_txn_customer,priority:2;index" json:"customerGuid"`
	RedeemedAt    time.Time `gorm:"not null" json:"redeemedAt"`
}

func (r *TokenRedemption) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Establishment struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	GridSize       int       `gorm:"not null;default:9" json:"gridSize"` // stamps required for a reward, 4-20
	RewardText     *string   `json:"rewardText"`
	RewardImageURL *string   `json:"rewardImageUrl"`
	LogoURL        *string   `json:"logoUrl"`
	CreatedAt      time.Time `json:"createdAt"`

	AdminUsers   []AdminUser   `gorm:"foreignKey:EstablishmentID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:EstablishmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *Establishment) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEstablishmentAdmin = "establishment_admin"
	RoleSuperuser          = "superuser"
)

// AdminUser is an establishment admin or a superuser. EstablishmentID is
// nil exactly when Role is superuser.
type AdminUser struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	Role            string     `gorm:"type:varchar(50);not null" json:"role"`
	EstablishmentID *uuid.UUID `gorm:"type:uuid;index" json:"establishmentId"`
	CreatedAt       time.Time  `json:"createdAt"`

	Sessions []Session `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

func (u *AdminUser) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}

// CanAccess reports whether the user may act on the given establishment.
func (u *AdminUser) CanAccess(establishmentID uuid.UUID) bool {
	if u.IsSuperuser() {
		return true
	}
	return u.EstablishmentID != nil && *u.EstablishmentID == establishmentID
}

// services/analytics_service.go
package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerStats struct {
	Guid       string `json:"guid"`
	StampCount int    `json:"stampCount"`
}

type EstablishmentAnalytics struct {
	TotalStamps int             `json:"totalStamps"`
	Customers   []CustomerStats `json:"customers"`
}

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// ForEstablishment aggregates redemptions across the establishment's
// transactions: total stamp count plus a per-customer breakdown, busiest
// customers first.
func (s *AnalyticsService) ForEstablishment(establishmentID uuid.UUID) (*EstablishmentAnalytics, error) {
	var totalStamps int64
	err := s.db.Raw(`
		SELECT COUNT(*) FROM token_redemptions r
		JOIN transactions t ON r.transaction_id = t.id
		WHERE t.establishment_id = ?
	`, establishmentID).Scan(&totalStamps).Error
	if err != nil {
		return nil, err
	}

	var customers []CustomerStats
	err = s.db.Raw(`
		SELECT r.customer_guid AS guid, COUNT(*) AS stamp_count
		FROM token_redemptions r
		JOIN transactions t ON r.transaction_id = t.id
		WHERE t.establishment_id = ?
		GROUP BY r.customer_guid
		ORDER BY stamp_count DESC
	`, establishmentID).Scan(&customers).Error
	if err != nil {
		return nil, err
	}

	if customers == nil {
		customers = []CustomerStats{}
	}

	return &EstablishmentAnalytics{
		TotalStamps: int(totalStamps),
		Customers:   customers,
	}, nil
}

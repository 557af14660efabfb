package services

import (
	"testing"

	"stampcard-backend/utils"

	"github.com/google/uuid"
)

func redeemTimes(t *testing.T, tokens *TokenService, establishmentID uuid.UUID, customer string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		token, err := tokens.Issue(establishmentID)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := tokens.ValidateAndRedeem(token, customer); err != nil {
			t.Fatalf("redeem: %v", err)
		}
	}
}

func TestAnalyticsAggregation(t *testing.T) {
	db := newTestDB(t)
	tokens := NewTokenService(db)
	analytics := NewAnalyticsService(db)
	establishment := createTestEstablishment(t, db, "Cafe A")

	customerA := utils.GenerateGuid()
	customerB := utils.GenerateGuid()
	redeemTimes(t, tokens, establishment.ID, customerA, 5)
	redeemTimes(t, tokens, establishment.ID, customerB, 3)

	result, err := analytics.ForEstablishment(establishment.ID)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}

	if result.TotalStamps != 8 {
		t.Errorf("expected 8 total stamps, got %d", result.TotalStamps)
	}
	if len(result.Customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(result.Customers))
	}
	if result.Customers[0].Guid != customerA || result.Customers[0].StampCount != 5 {
		t.Errorf("expected customer A first with 5 stamps, got %s with %d",
			result.Customers[0].Guid, result.Customers[0].StampCount)
	}
	if result.Customers[1].Guid != customerB || result.Customers[1].StampCount != 3 {
		t.Errorf("expected customer B second with 3 stamps, got %s with %d",
			result.Customers[1].Guid, result.Customers[1].StampCount)
	}
}

func TestAnalyticsScopedToEstablishment(t *testing.T) {
	db := newTestDB(t)
	tokens := NewTokenService(db)
	analytics := NewAnalyticsService(db)

	cafeA := createTestEstablishment(t, db, "Cafe A")
	cafeB := createTestEstablishment(t, db, "Cafe B")

	redeemTimes(t, tokens, cafeA.ID, utils.GenerateGuid(), 2)
	redeemTimes(t, tokens, cafeB.ID, utils.GenerateGuid(), 7)

	result, err := analytics.ForEstablishment(cafeA.ID)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if result.TotalStamps != 2 {
		t.Errorf("cafe B's redemptions leaked into cafe A: got %d stamps", result.TotalStamps)
	}
}

func TestAnalyticsEmptyEstablishment(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsService(db)
	establishment := createTestEstablishment(t, db, "Cafe A")

	result, err := analytics.ForEstablishment(establishment.ID)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if result.TotalStamps != 0 {
		t.Errorf("expected 0 stamps, got %d", result.TotalStamps)
	}
	if result.Customers == nil || len(result.Customers) != 0 {
		t.Errorf("expected an empty (non-nil) customer list, got %#v", result.Customers)
	}
}

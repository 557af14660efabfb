// services/token_service.go
package services

import (
	"errors"
	"time"

	"stampcard-backend/models"
	"stampcard-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUnknownToken: the token was never issued.
	ErrUnknownToken = errors.New("unknown token")
	// ErrAlreadyRedeemed: this customer has already redeemed this token.
	ErrAlreadyRedeemed = errors.New("token already redeemed by this customer")
	// ErrUnknownEstablishment: token issuance for a nonexistent tenant.
	ErrUnknownEstablishment = errors.New("unknown establishment")
)

// RedemptionResult is the outcome of a successful redemption.
type RedemptionResult struct {
	EstablishmentID uuid.UUID
	RedemptionID    uuid.UUID
}

type TokenService struct {
	db *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{db: db}
}

// Issue creates a transaction with a fresh high-entropy token for the
// establishment and returns the token string.
func (s *TokenService) Issue(establishmentID uuid.UUID) (string, error) {
	var establishment models.Establishment
	if err := s.db.First(&establishment, "id = ?", establishmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnknownEstablishment
		}
		return "", err
	}

	txn := models.Transaction{
		Token:           utils.GenerateToken(),
		EstablishmentID: establishmentID,
	}
	if err := s.db.Create(&txn).Error; err != nil {
		return "", err
	}
	return txn.Token, nil
}

// ValidateAndRedeem looks up the token and records a redemption for the
// customer. Each (token, customer) pair redeems at most once.
//
// The existence check below is advisory only: two concurrent requests for
// the same pair can both pass it. The unique index on
// (transaction_id, customer_guid) is what actually decides the race, so a
// duplicate-key error from the insert is mapped to ErrAlreadyRedeemed.
// First insert wins; the loser is told already-redeemed, never a 500.
func (s *TokenService) ValidateAndRedeem(token, customerGuid string) (*RedemptionResult, error) {
	var txn models.Transaction
	if err := s.db.First(&txn, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownToken
		}
		return nil, err
	}

	var existing models.TokenRedemption
	err := s.db.First(&existing, "transaction_id = ? AND customer_guid = ?", txn.ID, customerGuid).Error
	if err == nil {
		return nil, ErrAlreadyRedeemed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	redemption := models.TokenRedemption{
		TransactionID: txn.ID,
		CustomerGUID:  customerGuid,
		RedeemedAt:    time.Now(),
	}
	if err := s.db.Create(&redemption).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRedeemed
		}
		return nil, err
	}

	return &RedemptionResult{
		EstablishmentID: txn.EstablishmentID,
		RedemptionID:    redemption.ID,
	}, nil
}

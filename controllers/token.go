package controllers

import (
	"errors"
	"net/http"

	"stampcard-backend/middleware"
	"stampcard-backend/services"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenerateTokenInput struct {
	EstablishmentID string `json:"establishmentId" binding:"required"`
}

type ValidateTokenInput struct {
	Token        string `json:"token" binding:"required"`
	CustomerGuid string `json:"customerGuid" binding:"required"`
}

type TokenController struct {
	Tokens *services.TokenService
}

func NewTokenController(db *gorm.DB) *TokenController {
	return &TokenController{Tokens: services.NewTokenService(db)}
}

// Generate issues a fresh redemption token for the caller's establishment.
func (tc *TokenController) Generate(c *gin.Context) {
	var input GenerateTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Establishment ID required")
		return
	}

	establishmentUUID, err := uuid.Parse(input.EstablishmentID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if !user.CanAccess(establishmentUUID) {
		utils.RespondWithError(c, http.StatusForbidden, "Forbidden")
		return
	}

	token, err := tc.Tokens.Issue(establishmentUUID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownEstablishment) {
			utils.RespondWithError(c, http.StatusNotFound, "Establishment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Validate is the customer-facing redemption endpoint. No session: the
// customer identifies only by their locally stored GUID.
//
// The GUID is client-generated and unverified. Nothing stops a customer
// from minting new GUIDs and redeeming the same token under each; the
// server only guarantees once per (token, GUID) pair.
func (tc *TokenController) Validate(c *gin.Context) {
	var input ValidateTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Token and customer GUID required")
		return
	}

	result, err := tc.Tokens.ValidateAndRedeem(input.Token, input.CustomerGuid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyRedeemed):
			utils.RespondWithError(c, http.StatusBadRequest, "You have already used this token")
		case errors.Is(err, services.ErrUnknownToken):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid token")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to validate token")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"establishmentId": result.EstablishmentID,
	})
}

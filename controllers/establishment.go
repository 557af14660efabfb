package controllers

import (
	"errors"
	"net/http"
	"strings"

	"stampcard-backend/models"
	"stampcard-backend/services"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateEstablishmentInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	GridSize *int   `json:"gridSize"`
}

// UpdateEstablishmentInput carries the optional fields of a partial update.
// Nil means "leave unchanged"; each present field is validated and mapped
// explicitly.
type UpdateEstablishmentInput struct {
	Name           *string `json:"name"`
	GridSize       *int    `json:"gridSize"`
	RewardText     *string `json:"rewardText"`
	RewardImageURL *string `json:"rewardImageUrl"`
}

type EstablishmentController struct {
	DB       *gorm.DB
	Sessions *services.SessionService
}

func NewEstablishmentController(db *gorm.DB) *EstablishmentController {
	return &EstablishmentController{DB: db, Sessions: services.NewSessionService(db)}
}

// Create signs up a new establishment together with its first admin user,
// then logs that admin in.
func (ec *EstablishmentController) Create(c *gin.Context) {
	var input CreateEstablishmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	gridSize := utils.DefaultGridSize
	if input.GridSize != nil {
		if !utils.ValidGridSize(*input.GridSize) {
			utils.RespondWithError(c, http.StatusBadRequest, "Grid size must be between 4 and 20")
			return
		}
		gridSize = *input.GridSize
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create establishment")
		return
	}

	establishment := models.Establishment{
		Name:     input.Name,
		GridSize: gridSize,
	}

	var admin models.AdminUser
	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&establishment).Error; err != nil {
			return err
		}
		admin = models.AdminUser{
			Email:           email,
			PasswordHash:    passwordHash,
			Role:            models.RoleEstablishmentAdmin,
			EstablishmentID: &establishment.ID,
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "A user with this email already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create establishment")
		}
		return
	}

	// Auto-login the first admin.
	session, err := ec.Sessions.Create(admin.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}
	setSessionCookie(c, session.ID.String())

	c.JSON(http.StatusCreated, gin.H{"id": establishment.ID})
}

// Update applies a partial update to the establishment's configuration.
func (ec *EstablishmentController) Update(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	var input UpdateEstablishmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var establishment models.Establishment
	if err := ec.DB.First(&establishment, "id = ?", establishmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Establishment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Name must not be empty")
			return
		}
		establishment.Name = *input.Name
	}
	if input.GridSize != nil {
		if !utils.ValidGridSize(*input.GridSize) {
			utils.RespondWithError(c, http.StatusBadRequest, "Grid size must be between 4 and 20")
			return
		}
		establishment.GridSize = *input.GridSize
	}
	if input.RewardText != nil {
		establishment.RewardText = input.RewardText
	}
	if input.RewardImageURL != nil {
		establishment.RewardImageURL = input.RewardImageURL
	}

	if err := ec.DB.Save(&establishment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update establishment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetConfig returns the public tenant configuration the customer-facing
// stamp card renders from. No session required.
func (ec *EstablishmentController) GetConfig(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	var establishment models.Establishment
	if err := ec.DB.First(&establishment, "id = ?", establishmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Establishment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             establishment.ID,
		"name":           establishment.Name,
		"gridSize":       establishment.GridSize,
		"rewardText":     establishment.RewardText,
		"rewardImageUrl": establishment.RewardImageURL,
		"logoUrl":        establishment.LogoURL,
	})
}

// List returns all establishments, newest first. Superuser only.
func (ec *EstablishmentController) List(c *gin.Context) {
	var establishments []models.Establishment
	if err := ec.DB.Order("created_at DESC").Find(&establishments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve establishments")
		return
	}
	c.JSON(http.StatusOK, establishments)
}

// Delete removes an establishment; admin users, transactions and
// redemptions go with it via the cascade constraints. Superuser only.
func (ec *EstablishmentController) Delete(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	result := ec.DB.Delete(&models.Establishment{}, "id = ?", establishmentUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete establishment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Establishment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

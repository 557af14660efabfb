package controllers

import (
	"errors"
	"net/http"
	"strings"

	"stampcard-backend/middleware"
	"stampcard-backend/models"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddAdminInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// List returns the establishment's admin users, oldest first.
func (ac *AdminController) List(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	var admins []models.AdminUser
	if err := ac.DB.Where("establishment_id = ?", establishmentUUID).
		Order("created_at ASC").Find(&admins).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve admins")
		return
	}

	out := make([]gin.H, 0, len(admins))
	for _, a := range admins {
		out = append(out, gin.H{
			"id":        a.ID,
			"email":     a.Email,
			"role":      a.Role,
			"createdAt": a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Add creates another establishment_admin for the tenant.
func (ac *AdminController) Add(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	var input AddAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	admin := models.AdminUser{
		Email:           email,
		PasswordHash:    passwordHash,
		Role:            models.RoleEstablishmentAdmin,
		EstablishmentID: &establishmentUUID,
	}
	if err := ac.DB.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "A user with this email already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create admin")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": admin.ID, "email": admin.Email})
}

// Remove deletes an admin user from the tenant. Removing yourself is
// rejected so an establishment can't lock itself out.
func (ac *AdminController) Remove(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	targetUUID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	user := middleware.CurrentUser(c)
	if user != nil && user.ID == targetUUID {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot remove yourself")
		return
	}

	result := ac.DB.Delete(&models.AdminUser{}, "id = ? AND establishment_id = ?", targetUUID, establishmentUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete admin")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

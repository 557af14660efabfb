package controllers

import (
	"errors"
	"net/http"
	"strings"

	"stampcard-backend/middleware"
	"stampcard-backend/models"
	"stampcard-backend/services"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB       *gorm.DB
	Sessions *services.SessionService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Sessions: services.NewSessionService(db)}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var user models.AdminUser
	result := ac.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// Same message as a wrong password: don't reveal which emails exist.
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	session, err := ac.Sessions.Create(user.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	setSessionCookie(c, session.ID.String())

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"email":           user.Email,
			"role":            user.Role,
			"establishmentId": user.EstablishmentID,
		},
	})
}

// Logout destroys the session (idempotent) and clears the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if sessionID, err := uuid.Parse(cookie); err == nil {
			ac.Sessions.Destroy(sessionID)
		}
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ac *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"email":           user.Email,
			"role":            user.Role,
			"establishmentId": user.EstablishmentID,
		},
	})
}

func setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		sessionID,
		int(services.SessionDuration.Seconds()),
		"/",
		"",
		false,
		true,
	)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}

package controllers

import (
	"net/http"

	"stampcard-backend/services"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{Analytics: services.NewAnalyticsService(db)}
}

// Get returns the establishment's stamp totals and per-customer breakdown.
func (ac *AnalyticsController) Get(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	analytics, err := ac.Analytics.ForEstablishment(establishmentUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	c.JSON(http.StatusOK, analytics)
}

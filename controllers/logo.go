package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"stampcard-backend/models"
	"stampcard-backend/services"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxLogoSize caps logo uploads at 250KB.
const MaxLogoSize = 250 * 1024

type LogoController struct {
	DB    *gorm.DB
	Blobs services.BlobStore
}

func NewLogoController(db *gorm.DB, blobs services.BlobStore) *LogoController {
	return &LogoController{DB: db, Blobs: blobs}
}

// Upload replaces the establishment's logo. Multipart field "file",
// image/* only, at most 250KB.
func (lc *LogoController) Upload(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	var establishment models.Establishment
	if err := lc.DB.First(&establishment, "id = ?", establishmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Establishment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file provided")
		return
	}

	if fileHeader.Size > MaxLogoSize {
		utils.RespondWithError(c, http.StatusBadRequest, "File too large. Maximum size is 250KB.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondWithError(c, http.StatusBadRequest, "File must be an image")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload logo")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxLogoSize+1))
	if err != nil || len(data) > MaxLogoSize {
		utils.RespondWithError(c, http.StatusBadRequest, "File too large. Maximum size is 250KB.")
		return
	}

	// Best-effort removal of the previous logo blob.
	if establishment.LogoURL != nil {
		if err := lc.Blobs.Delete(*establishment.LogoURL); err != nil {
			log.Printf("Failed to delete old logo %s: %v", *establishment.LogoURL, err)
		}
	}

	key := fmt.Sprintf("logos/%s/%s", establishmentUUID, filepath.Base(fileHeader.Filename))
	url, err := lc.Blobs.Put(key, data)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload logo")
		return
	}

	if err := lc.DB.Model(&establishment).Update("logo_url", url).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload logo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logoUrl": url})
}

// Delete removes the establishment's logo.
func (lc *LogoController) Delete(c *gin.Context) {
	establishmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID format")
		return
	}

	var establishment models.Establishment
	if err := lc.DB.First(&establishment, "id = ?", establishmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Establishment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if establishment.LogoURL != nil {
		if err := lc.Blobs.Delete(*establishment.LogoURL); err != nil {
			log.Printf("Failed to delete logo %s: %v", *establishment.LogoURL, err)
		}
	}

	if err := lc.DB.Model(&establishment).Update("logo_url", nil).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete logo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

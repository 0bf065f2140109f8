package controllers

import (
	"net/http"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePhotoInput struct {
	URL       string `json:"url" binding:"required"`
	Caption   string `json:"caption"`
	PhotoType string `json:"photo_type" binding:"omitempty,oneof=couple memory hero"`
	IsHero    bool   `json:"is_hero"`
}

type UpdatePhotoInput struct {
	Caption   string `json:"caption"`
	PhotoType string `json:"photo_type" binding:"omitempty,oneof=couple memory hero"`
}

// GetPhotos godoc
// @Summary List a wedding's photos
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Photos"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/photos [get]
func GetPhotos(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapManagePhotos)
	if !ok {
		return
	}

	var photos []models.Photo
	if err := database.DB.Where("wedding_id = ?", wedding.ID).Order("id").Find(&photos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch photos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// CreatePhoto godoc
// @Summary Register an uploaded photo
// @Description The file itself lives in external object storage; this stores its URL and metadata
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param photo body CreatePhotoInput true "Photo"
// @Success 201 {object} map[string]interface{} "Photo created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/photos [post]
func CreatePhoto(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapManagePhotos)
	if !ok {
		return
	}

	var input CreatePhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo := models.Photo{
		WeddingID: wedding.ID,
		URL:       input.URL,
		Caption:   input.Caption,
		PhotoType: models.PhotoTypeMemory,
	}
	if input.PhotoType != "" {
		photo.PhotoType = input.PhotoType
	}

	if input.IsHero {
		// At most one hero photo per wedding: demote the previous one in the
		// same transaction.
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Photo{}).
				Where("wedding_id = ? AND is_hero = ?", wedding.ID, true).
				Update("is_hero", false).Error; err != nil {
				return err
			}
			photo.IsHero = true
			photo.PhotoType = models.PhotoTypeHero
			return tx.Create(&photo).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
			return
		}
	} else if err := database.DB.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Photo added successfully",
		"photo":   photo,
	})
}

// UpdatePhoto godoc
// @Summary Update photo metadata
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Param photo body UpdatePhotoInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Photo updated"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /api/photos/{id} [put]
func UpdatePhoto(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var photo models.Photo
	if err := database.DB.First(&photo, photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, photo.WeddingID, authz.CapManagePhotos); !ok {
		return
	}

	var input UpdatePhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Caption != "" {
		photo.Caption = input.Caption
	}
	if input.PhotoType != "" {
		photo.PhotoType = input.PhotoType
	}

	if err := database.DB.Save(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Photo updated successfully",
		"photo":   photo,
	})
}

// SetHeroPhoto godoc
// @Summary Make a photo the hero image
// @Description Demotes any previous hero photo of the wedding in the same transaction
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} map[string]interface{} "Hero photo set"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /api/photos/{id}/hero [put]
func SetHeroPhoto(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var photo models.Photo
	if err := database.DB.First(&photo, photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, photo.WeddingID, authz.CapManagePhotos); !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Photo{}).
			Where("wedding_id = ? AND id <> ?", photo.WeddingID, photo.ID).
			Update("is_hero", false).Error; err != nil {
			return err
		}
		return tx.Model(&photo).Updates(map[string]interface{}{
			"is_hero":    true,
			"photo_type": models.PhotoTypeHero,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set hero photo"})
		return
	}

	photo.IsHero = true
	photo.PhotoType = models.PhotoTypeHero
	c.JSON(http.StatusOK, gin.H{
		"message": "Hero photo updated",
		"photo":   photo,
	})
}

// DeletePhoto godoc
// @Summary Delete a photo
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} map[string]string "Photo deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /api/photos/{id} [delete]
func DeletePhoto(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var photo models.Photo
	if err := database.DB.First(&photo, photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, photo.WeddingID, authz.CapManagePhotos); !ok {
		return
	}

	if err := database.DB.Delete(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

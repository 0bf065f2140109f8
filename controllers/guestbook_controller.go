package controllers

import (
	"net/http"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteGuestBookEntry godoc
// @Summary Remove a guest book entry (moderation)
// @Description Entries cannot be edited; deletion is the only moderation tool
// @Tags guestbook
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]string "Entry deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /api/guestbook/{id} [delete]
func DeleteGuestBookEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var entry models.GuestBookEntry
	if err := database.DB.First(&entry, entryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest book entry not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, entry.WeddingID, authz.CapEditGuestBook); !ok {
		return
	}

	if err := database.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest book entry deleted"})
}

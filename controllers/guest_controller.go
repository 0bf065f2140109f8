package controllers

import (
	"net/http"
	"time"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

type CreateGuestInput struct {
	Name                string `json:"name" binding:"required"`
	Email               string `json:"email" binding:"omitempty,email"`
	Phone               string `json:"phone"`
	Category            string `json:"category"`
	Side                string `json:"side" binding:"omitempty,oneof=bride groom both"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Address             string `json:"address"`
	Notes               string `json:"notes"`
}

type UpdateGuestInput struct {
	Name                string `json:"name"`
	Email               string `json:"email" binding:"omitempty,email"`
	Phone               string `json:"phone"`
	Category            string `json:"category"`
	Side                string `json:"side" binding:"omitempty,oneof=bride groom both"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Address             string `json:"address"`
	Notes               string `json:"notes"`
	PlusOneName         string `json:"plus_one_name"`
}

type SetGuestStatusInput struct {
	RSVPStatus       string `json:"rsvp_status" binding:"required"`
	AdditionalGuests int    `json:"additional_guests"`
	PlusOneName      string `json:"plus_one_name"`
}

// GetGuests godoc
// @Summary List guests of a wedding
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Guest list"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/guests [get]
func GetGuests(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapManageGuests)
	if !ok {
		return
	}

	var guests []models.Guest
	if err := database.DB.Where("wedding_id = ?", wedding.ID).Order("id").Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

// CreateGuest godoc
// @Summary Add a guest to a wedding
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param guest body CreateGuestInput true "Guest"
// @Success 201 {object} map[string]interface{} "Guest created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/guests [post]
func CreateGuest(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, caller, ok := authorizeWedding(c, weddingID, authz.CapManageGuests)
	if !ok {
		return
	}

	var input CreateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	addedBy := "couple"
	if wedding.UserID != caller.UserID {
		addedBy = "guest_manager"
	}

	guest := models.Guest{
		WeddingID:           wedding.ID,
		Name:                input.Name,
		Email:               input.Email,
		Phone:               input.Phone,
		RSVPStatus:          models.RSVPPending,
		DietaryRestrictions: input.DietaryRestrictions,
		Address:             input.Address,
		Notes:               input.Notes,
		AddedBy:             addedBy,
	}
	if input.Category != "" {
		guest.Category = input.Category
	} else {
		guest.Category = "family"
	}
	if input.Side != "" {
		guest.Side = input.Side
	} else {
		guest.Side = "both"
	}

	if err := database.DB.Create(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Guest added successfully",
		"guest":   guest,
	})
}

// UpdateGuest godoc
// @Summary Update a guest's details
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Param guest body UpdateGuestInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Guest updated"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Guest not found"
// @Router /api/guests/{id} [put]
func UpdateGuest(c *gin.Context) {
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var guest models.Guest
	if err := database.DB.First(&guest, guestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, guest.WeddingID, authz.CapManageGuests); !ok {
		return
	}

	var input UpdateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		guest.Name = input.Name
	}
	if input.Email != "" {
		guest.Email = input.Email
	}
	if input.Phone != "" {
		guest.Phone = input.Phone
	}
	if input.Category != "" {
		guest.Category = input.Category
	}
	if input.Side != "" {
		guest.Side = input.Side
	}
	if input.DietaryRestrictions != "" {
		guest.DietaryRestrictions = input.DietaryRestrictions
	}
	if input.Address != "" {
		guest.Address = input.Address
	}
	if input.Notes != "" {
		guest.Notes = input.Notes
	}
	if input.PlusOneName != "" {
		guest.PlusOneName = input.PlusOneName
	}

	if err := database.DB.Save(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Guest updated successfully",
		"guest":   guest,
	})
}

// DeleteGuest godoc
// @Summary Remove a guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Success 200 {object} map[string]string "Guest deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Guest not found"
// @Router /api/guests/{id} [delete]
func DeleteGuest(c *gin.Context) {
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var guest models.Guest
	if err := database.DB.First(&guest, guestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, guest.WeddingID, authz.CapManageGuests); !ok {
		return
	}

	if err := database.DB.Delete(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}

// SetGuestStatus godoc
// @Summary Set a guest's RSVP status from the dashboard
// @Description Applies the same server-side normalization as the public RSVP endpoint
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Param status body SetGuestStatusInput true "Status"
// @Success 200 {object} map[string]interface{} "Guest updated"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Guest not found"
// @Router /api/guests/{id}/status [put]
func SetGuestStatus(c *gin.Context) {
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var guest models.Guest
	if err := database.DB.First(&guest, guestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, guest.WeddingID, authz.CapManageGuests); !ok {
		return
	}

	var input SetGuestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseRSVPStatus(input.RSVPStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest.ApplyRSVP(status, input.AdditionalGuests, time.Now())
	if status == models.RSVPConfirmedWithGuest && input.PlusOneName != "" {
		guest.PlusOneName = input.PlusOneName
	}

	// Status, derived fields and the timestamp go out as one UPDATE.
	if err := database.DB.Save(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Guest status updated",
		"guest":   guest,
	})
}

// GetGuestStats godoc
// @Summary RSVP aggregates for a wedding
// @Description Counts per status, response rate and feedback count, recomputed on every read
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Aggregates"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/guests/stats [get]
func GetGuestStats(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapViewAnalytics)
	if !ok {
		return
	}

	var guests []models.Guest
	if err := database.DB.Where("wedding_id = ?", wedding.ID).Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": models.ComputeRSVPStats(guests)})
}

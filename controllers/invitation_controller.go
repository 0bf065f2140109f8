package controllers

import (
	"net/http"
	"time"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateInvitationInput struct {
	GuestID          uint   `json:"guest_id" binding:"required"`
	InvitationType   string `json:"invitation_type" binding:"omitempty,oneof=email sms whatsapp"`
	RecipientContact string `json:"recipient_contact" binding:"required"`
}

type UpdateInvitationStatusInput struct {
	Status       string `json:"status" binding:"required"`
	ErrorMessage string `json:"error_message"`
}

// GetInvitations godoc
// @Summary List invitation delivery records for a wedding
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Invitations"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/invitations [get]
func GetInvitations(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapManageGuests)
	if !ok {
		return
	}

	var invitations []models.Invitation
	if err := database.DB.Where("wedding_id = ?", wedding.ID).
		Preload("Guest").Order("id").Find(&invitations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

// CreateInvitation godoc
// @Summary Create an invitation tracking record
// @Description Delivery itself is out of scope; status is updated manually
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param invitation body CreateInvitationInput true "Invitation"
// @Success 201 {object} map[string]interface{} "Invitation created"
// @Failure 400 {object} map[string]string "Guest belongs to another wedding"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Guest not found"
// @Router /api/weddings/{id}/invitations [post]
func CreateInvitation(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapManageGuests)
	if !ok {
		return
	}

	var input CreateInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var guest models.Guest
	if err := database.DB.First(&guest, input.GuestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}
	if guest.WeddingID != wedding.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Guest belongs to another wedding"})
		return
	}

	invitation := models.Invitation{
		WeddingID:        wedding.ID,
		GuestID:          guest.ID,
		RecipientContact: input.RecipientContact,
		InvitationType:   "email",
		Status:           models.InvitationPending,
	}
	if input.InvitationType != "" {
		invitation.InvitationType = input.InvitationType
	}

	if err := database.DB.Create(&invitation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Invitation created",
		"invitation": invitation,
	})
}

// UpdateInvitationStatus godoc
// @Summary Update an invitation's delivery status
// @Description Stamps the matching timestamp; marking sent also flags the guest record
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Param status body UpdateInvitationStatusInput true "Status"
// @Success 200 {object} map[string]interface{} "Invitation updated"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Router /api/invitations/{id}/status [put]
func UpdateInvitationStatus(c *gin.Context) {
	invitationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var invitation models.Invitation
	if err := database.DB.First(&invitation, invitationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, invitation.WeddingID, authz.CapManageGuests); !ok {
		return
	}

	var input UpdateInvitationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseInvitationStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	invitation.Status = status
	switch status {
	case models.InvitationSent:
		invitation.SentAt = &now
	case models.InvitationDelivered:
		invitation.DeliveredAt = &now
	case models.InvitationOpened:
		invitation.OpenedAt = &now
	case models.InvitationError:
		invitation.ErrorMessage = input.ErrorMessage
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&invitation).Error; err != nil {
			return err
		}
		if status == models.InvitationSent {
			return tx.Model(&models.Guest{}).Where("id = ?", invitation.GuestID).
				Updates(map[string]interface{}{
					"invitation_sent":    true,
					"invitation_sent_at": now,
				}).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Invitation status updated",
		"invitation": invitation,
	})
}

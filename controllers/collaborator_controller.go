package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InviteCollaboratorInput struct {
	Email       string              `json:"email" binding:"required,email"`
	Name        string              `json:"name" binding:"required"`
	Permissions *models.Permissions `json:"permissions"`
}

type AcceptInvitationInput struct {
	Token string `json:"token" binding:"required"`
}

// GetCollaborators godoc
// @Summary List a wedding's collaborator invitations and active grants
// @Tags collaborators
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Collaborators and grants"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/collaborators [get]
func GetCollaborators(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var collaborators []models.GuestCollaborator
	if err := database.DB.Where("wedding_id = ?", wedding.ID).
		Order("id").Find(&collaborators).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collaborators"})
		return
	}

	var grants []models.WeddingAccess
	if err := database.DB.Where("wedding_id = ?", wedding.ID).
		Preload("User").Order("id").Find(&grants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch access grants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"collaborators": collaborators,
		"access":        grants,
	})
}

// InviteCollaborator godoc
// @Summary Invite a collaborator by email
// @Description Creates a pending invitation. The grant itself only exists once the invitation is accepted.
// @Tags collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param invite body InviteCollaboratorInput true "Invitation"
// @Success 201 {object} map[string]interface{} "Invitation created"
// @Failure 400 {object} map[string]string "Invalid input or duplicate invitation"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/collaborators [post]
func InviteCollaborator(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var input InviteCollaboratorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.GuestCollaborator
	if err := database.DB.Where("wedding_id = ? AND email = ? AND status = ?",
		wedding.ID, email, models.CollaboratorPending).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An invitation has already been sent to this email"})
		return
	}

	permissions := models.DefaultCollaboratorPermissions()
	if input.Permissions != nil {
		permissions = *input.Permissions
	}

	collaborator := models.GuestCollaborator{
		WeddingID:       wedding.ID,
		Email:           email,
		Name:            input.Name,
		Role:            models.AccessLevelGuestManager,
		Status:          models.CollaboratorPending,
		InvitationToken: uuid.NewString(),
		InvitedAt:       time.Now(),
		Permissions:     permissions,
	}

	if err := database.DB.Create(&collaborator).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	// The token goes back to the inviter, who shares the invite link. Email
	// delivery is out of scope.
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Invitation created",
		"collaborator":     collaborator,
		"invitation_token": collaborator.InvitationToken,
	})
}

// AcceptInvitation godoc
// @Summary Accept a collaborator invitation
// @Description Flips the invitation to accepted and creates the enforceable access grant in the same transaction. The invitation email must match the signed-in account.
// @Tags collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param accept body AcceptInvitationInput true "Invitation token"
// @Success 200 {object} map[string]interface{} "Access granted"
// @Failure 400 {object} map[string]string "Already processed"
// @Failure 403 {object} map[string]string "Email mismatch"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Router /api/collaborators/accept [post]
func AcceptInvitation(c *gin.Context) {
	_, user, ok := currentCaller(c)
	if !ok {
		return
	}

	var input AcceptInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var collaborator models.GuestCollaborator
	if err := database.DB.Where("invitation_token = ?", input.Token).
		First(&collaborator).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}

	if collaborator.Status != models.CollaboratorPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitation has already been processed"})
		return
	}

	if !strings.EqualFold(collaborator.Email, user.Email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This invitation was sent to a different email address"})
		return
	}

	// The status flip and the grant commit together: an accepted invitation
	// without its WeddingAccess row must never exist.
	var access models.WeddingAccess
	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		collaborator.Status = models.CollaboratorAccepted
		collaborator.AcceptedAt = &now
		if err := tx.Save(&collaborator).Error; err != nil {
			return err
		}

		result := tx.Where("user_id = ? AND wedding_id = ?", user.ID, collaborator.WeddingID).
			First(&access)
		if result.Error != nil {
			access = models.WeddingAccess{
				UserID:      user.ID,
				WeddingID:   collaborator.WeddingID,
				AccessLevel: models.AccessLevelGuestManager,
				Permissions: collaborator.Permissions,
			}
			return tx.Create(&access).Error
		}

		access.AccessLevel = models.AccessLevelGuestManager
		access.Permissions = collaborator.Permissions
		return tx.Save(&access).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invitation accepted",
		"access":  access,
	})
}

// RevokeAccess godoc
// @Summary Revoke a collaborator's access grant
// @Description Deletes the WeddingAccess row. The historical invitation record is kept. Takes effect on the collaborator's next request.
// @Tags collaborators
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]string "Access revoked"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Grant not found"
// @Router /api/weddings/{id}/collaborators/{userId} [delete]
func RevokeAccess(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	targetUserID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var access models.WeddingAccess
	if err := database.DB.Where("user_id = ? AND wedding_id = ?", targetUserID, wedding.ID).
		First(&access).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Access grant not found"})
		return
	}

	if err := database.DB.Delete(&access).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke access"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Access revoked successfully"})
}

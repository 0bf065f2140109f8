package controllers

import (
	"net/http"
	"time"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

type MilestoneInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo  string    `json:"assigned_to"`
}

type UpdateMilestoneInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted *bool      `json:"is_completed"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo  string     `json:"assigned_to"`
}

// GetMilestones godoc
// @Summary List planning milestones
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Milestones"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/milestones [get]
func GetMilestones(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var milestones []models.Milestone
	if err := database.DB.Where("wedding_id = ?", wedding.ID).
		Order("due_date").Find(&milestones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch milestones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

// CreateMilestone godoc
// @Summary Create a planning milestone
// @Tags milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param milestone body MilestoneInput true "Milestone"
// @Success 201 {object} map[string]interface{} "Milestone created"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/milestones [post]
func CreateMilestone(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var input MilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone := models.Milestone{
		WeddingID:   wedding.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		AssignedTo:  input.AssignedTo,
		Priority:    "medium",
	}
	if input.Priority != "" {
		milestone.Priority = input.Priority
	}

	if err := database.DB.Create(&milestone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Milestone created",
		"milestone": milestone,
	})
}

// UpdateMilestone godoc
// @Summary Update a milestone
// @Description Marking a milestone complete stamps its completion time
// @Tags milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Milestone ID"
// @Param milestone body UpdateMilestoneInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Milestone updated"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Milestone not found"
// @Router /api/milestones/{id} [put]
func UpdateMilestone(c *gin.Context) {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var milestone models.Milestone
	if err := database.DB.First(&milestone, milestoneID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, milestone.WeddingID, authz.CapEditDetails); !ok {
		return
	}

	var input UpdateMilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != "" {
		milestone.Title = input.Title
	}
	if input.Description != "" {
		milestone.Description = input.Description
	}
	if input.DueDate != nil {
		milestone.DueDate = *input.DueDate
	}
	if input.Priority != "" {
		milestone.Priority = input.Priority
	}
	if input.AssignedTo != "" {
		milestone.AssignedTo = input.AssignedTo
	}
	if input.IsCompleted != nil && *input.IsCompleted != milestone.IsCompleted {
		milestone.IsCompleted = *input.IsCompleted
		if milestone.IsCompleted {
			now := time.Now()
			milestone.CompletedAt = &now
		} else {
			milestone.CompletedAt = nil
		}
	}

	if err := database.DB.Save(&milestone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Milestone updated",
		"milestone": milestone,
	})
}

// DeleteMilestone godoc
// @Summary Delete a milestone
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Milestone ID"
// @Success 200 {object} map[string]string "Milestone deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Milestone not found"
// @Router /api/milestones/{id} [delete]
func DeleteMilestone(c *gin.Context) {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var milestone models.Milestone
	if err := database.DB.First(&milestone, milestoneID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, milestone.WeddingID, authz.CapEditDetails); !ok {
		return
	}

	if err := database.DB.Delete(&milestone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Milestone deleted"})
}

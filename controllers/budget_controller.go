package controllers

import (
	"net/http"
	"time"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

type BudgetCategoryInput struct {
	Name         string `json:"name" binding:"required"`
	BudgetAmount int    `json:"budget_amount"`
}

type UpdateBudgetCategoryInput struct {
	Name         string `json:"name"`
	BudgetAmount *int   `json:"budget_amount"`
	SpentAmount  *int   `json:"spent_amount"`
	IsArchived   *bool  `json:"is_archived"`
}

type BudgetItemInput struct {
	CategoryID    uint       `json:"category_id" binding:"required"`
	Name          string     `json:"name" binding:"required"`
	EstimatedCost int        `json:"estimated_cost"`
	ActualCost    int        `json:"actual_cost"`
	Vendor        string     `json:"vendor"`
	Notes         string     `json:"notes"`
	DueDate       *time.Time `json:"due_date"`
}

type UpdateBudgetItemInput struct {
	Name          string     `json:"name"`
	EstimatedCost *int       `json:"estimated_cost"`
	ActualCost    *int       `json:"actual_cost"`
	Vendor        string     `json:"vendor"`
	Notes         string     `json:"notes"`
	IsPaid        *bool      `json:"is_paid"`
	DueDate       *time.Time `json:"due_date"`
}

// GetBudgetCategories godoc
// @Summary List budget categories with their items
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Categories"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/budget/categories [get]
func GetBudgetCategories(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var categories []models.BudgetCategory
	if err := database.DB.Where("wedding_id = ?", wedding.ID).Order("id").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateBudgetCategory godoc
// @Summary Create a budget category
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param category body BudgetCategoryInput true "Category"
// @Success 201 {object} map[string]interface{} "Category created"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/budget/categories [post]
func CreateBudgetCategory(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var input BudgetCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.BudgetCategory{
		WeddingID:    wedding.ID,
		Name:         input.Name,
		BudgetAmount: input.BudgetAmount,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Budget category created",
		"category": category,
	})
}

// UpdateBudgetCategory godoc
// @Summary Update a budget category
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category body UpdateBudgetCategoryInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Category updated"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /api/budget/categories/{id} [put]
func UpdateBudgetCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var category models.BudgetCategory
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget category not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, category.WeddingID, authz.CapEditDetails); !ok {
		return
	}

	var input UpdateBudgetCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.BudgetAmount != nil {
		category.BudgetAmount = *input.BudgetAmount
	}
	if input.SpentAmount != nil {
		category.SpentAmount = *input.SpentAmount
	}
	if input.IsArchived != nil {
		category.IsArchived = *input.IsArchived
	}

	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Budget category updated",
		"category": category,
	})
}

// DeleteBudgetCategory godoc
// @Summary Delete a budget category
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string "Category deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /api/budget/categories/{id} [delete]
func DeleteBudgetCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var category models.BudgetCategory
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget category not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, category.WeddingID, authz.CapEditDetails); !ok {
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget category deleted"})
}

// GetBudgetItems godoc
// @Summary List budget items of a wedding
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Items"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/budget/items [get]
func GetBudgetItems(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var items []models.BudgetItem
	if err := database.DB.Where("wedding_id = ?", wedding.ID).Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateBudgetItem godoc
// @Summary Create a budget item
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param item body BudgetItemInput true "Item"
// @Success 201 {object} map[string]interface{} "Item created"
// @Failure 400 {object} map[string]string "Category belongs to another wedding"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/weddings/{id}/budget/items [post]
func CreateBudgetItem(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var input BudgetItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.BudgetCategory
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget category not found"})
		return
	}
	if category.WeddingID != wedding.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category belongs to another wedding"})
		return
	}

	item := models.BudgetItem{
		CategoryID:    category.ID,
		WeddingID:     wedding.ID,
		Name:          input.Name,
		EstimatedCost: input.EstimatedCost,
		ActualCost:    input.ActualCost,
		Vendor:        input.Vendor,
		Notes:         input.Notes,
		DueDate:       input.DueDate,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Budget item created",
		"item":    item,
	})
}

// UpdateBudgetItem godoc
// @Summary Update a budget item
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param item body UpdateBudgetItemInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Item updated"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /api/budget/items/{id} [put]
func UpdateBudgetItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var item models.BudgetItem
	if err := database.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, item.WeddingID, authz.CapEditDetails); !ok {
		return
	}

	var input UpdateBudgetItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.EstimatedCost != nil {
		item.EstimatedCost = *input.EstimatedCost
	}
	if input.ActualCost != nil {
		item.ActualCost = *input.ActualCost
	}
	if input.Vendor != "" {
		item.Vendor = input.Vendor
	}
	if input.Notes != "" {
		item.Notes = input.Notes
	}
	if input.IsPaid != nil {
		item.IsPaid = *input.IsPaid
	}
	if input.DueDate != nil {
		item.DueDate = input.DueDate
	}

	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Budget item updated",
		"item":    item,
	})
}

// DeleteBudgetItem godoc
// @Summary Delete a budget item
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string "Item deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /api/budget/items/{id} [delete]
func DeleteBudgetItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var item models.BudgetItem
	if err := database.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
		return
	}

	if _, _, ok := authorizeWedding(c, item.WeddingID, authz.CapEditDetails); !ok {
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget item deleted"})
}

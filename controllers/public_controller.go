package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

type SelfRegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type SubmitRSVPInput struct {
	RSVPStatus          string `json:"rsvp_status" binding:"required"`
	ResponseText        string `json:"response_text"`
	Message             string `json:"message"`
	PlusOne             *bool  `json:"plus_one"`
	PlusOneName         string `json:"plus_one_name"`
	AdditionalGuests    int    `json:"additional_guests"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

type GuestBookInput struct {
	GuestName string `json:"guest_name" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// publicWeddingBySlug resolves the slug and enforces the public-page rule.
func publicWeddingBySlug(c *gin.Context) (*models.Wedding, bool) {
	var wedding models.Wedding
	if err := database.DB.Where("unique_url = ?", c.Param("uniqueUrl")).First(&wedding).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wedding not found"})
		return nil, false
	}

	if !wedding.IsPublic {
		c.JSON(http.StatusForbidden, gin.H{"error": "This wedding site is private"})
		return nil, false
	}

	return &wedding, true
}

// GetPublicWedding godoc
// @Summary Public wedding page data
// @Tags public
// @Produce json
// @Param uniqueUrl path string true "Wedding slug"
// @Success 200 {object} map[string]interface{} "Wedding with photos"
// @Failure 403 {object} map[string]string "Private wedding"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/public/weddings/{uniqueUrl} [get]
func GetPublicWedding(c *gin.Context) {
	wedding, ok := publicWeddingBySlug(c)
	if !ok {
		return
	}

	var photos []models.Photo
	database.DB.Where("wedding_id = ?", wedding.ID).Order("is_hero DESC, id").Find(&photos)

	c.JSON(http.StatusOK, gin.H{
		"wedding": wedding,
		"photos":  photos,
	})
}

// SearchPublicGuests godoc
// @Summary Guest search for the self-service RSVP flow
// @Description Returns only public-safe guest fields
// @Tags public
// @Produce json
// @Param uniqueUrl path string true "Wedding slug"
// @Param name query string true "Name to search for"
// @Success 200 {object} map[string]interface{} "Matching guests"
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/public/weddings/{uniqueUrl}/guests/search [get]
func SearchPublicGuests(c *gin.Context) {
	wedding, ok := publicWeddingBySlug(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'name' is required"})
		return
	}

	var guests []models.Guest
	if err := database.DB.
		Where("wedding_id = ? AND LOWER(name) LIKE ?", wedding.ID, "%"+strings.ToLower(name)+"%").
		Order("name").Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search guests"})
		return
	}

	results := make([]models.PublicGuest, 0, len(guests))
	for _, g := range guests {
		results = append(results, g.Public())
	}

	c.JSON(http.StatusOK, gin.H{"guests": results})
}

// SelfRegisterGuest godoc
// @Summary Guest self-registration on a public wedding
// @Tags public
// @Accept json
// @Produce json
// @Param uniqueUrl path string true "Wedding slug"
// @Param guest body SelfRegisterInput true "Guest"
// @Success 201 {object} map[string]interface{} "Guest registered"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/public/weddings/{uniqueUrl}/guests [post]
func SelfRegisterGuest(c *gin.Context) {
	wedding, ok := publicWeddingBySlug(c)
	if !ok {
		return
	}

	var input SelfRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest := models.Guest{
		WeddingID:  wedding.ID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		RSVPStatus: models.RSVPPending,
		Category:   "family",
		Side:       "both",
		AddedBy:    "self_registration",
	}

	if err := database.DB.Create(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register guest"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Guest registered successfully",
		"guest":   guest.Public(),
	})
}

// SubmitRSVP godoc
// @Summary Submit an RSVP response
// @Description Guests may respond again at any time; the latest response wins. Derived plus-one fields are recomputed server-side and client values are ignored.
// @Tags public
// @Accept json
// @Produce json
// @Param uniqueUrl path string true "Wedding slug"
// @Param id path int true "Guest ID"
// @Param rsvp body SubmitRSVPInput true "RSVP"
// @Success 200 {object} map[string]interface{} "Updated guest"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 403 {object} map[string]string "Guest belongs to another wedding"
// @Failure 404 {object} map[string]string "Guest not found"
// @Router /api/public/weddings/{uniqueUrl}/guests/{id}/rsvp [post]
func SubmitRSVP(c *gin.Context) {
	wedding, ok := publicWeddingBySlug(c)
	if !ok {
		return
	}

	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var guest models.Guest
	if err := database.DB.First(&guest, guestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	if guest.WeddingID != wedding.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Guest does not belong to this wedding"})
		return
	}

	var input SubmitRSVPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseRSVPStatus(input.RSVPStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// input.PlusOne is deliberately ignored: the derived fields follow from
	// the status alone.
	guest.ApplyRSVP(status, input.AdditionalGuests, time.Now())
	if input.ResponseText != "" {
		guest.ResponseText = input.ResponseText
	}
	if input.Message != "" {
		guest.Message = input.Message
	}
	if input.DietaryRestrictions != "" {
		guest.DietaryRestrictions = input.DietaryRestrictions
	}
	if status == models.RSVPConfirmedWithGuest && input.PlusOneName != "" {
		guest.PlusOneName = input.PlusOneName
	}

	// One UPDATE: a reader never sees the status without its derived fields.
	if err := database.DB.Save(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for your response!",
		"guest":   guest,
	})
}

// GetGuestBookEntries godoc
// @Summary List guest book entries
// @Tags public
// @Produce json
// @Param uniqueUrl path string true "Wedding slug"
// @Success 200 {object} map[string]interface{} "Entries"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/public/weddings/{uniqueUrl}/guestbook [get]
func GetGuestBookEntries(c *gin.Context) {
	wedding, ok := publicWeddingBySlug(c)
	if !ok {
		return
	}

	var entries []models.GuestBookEntry
	if err := database.DB.Where("wedding_id = ?", wedding.ID).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateGuestBookEntry godoc
// @Summary Sign the guest book
// @Description Entries are append-only; there is no update operation
// @Tags public
// @Accept json
// @Produce json
// @Param uniqueUrl path string true "Wedding slug"
// @Param entry body GuestBookInput true "Entry"
// @Success 201 {object} map[string]interface{} "Entry created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/public/weddings/{uniqueUrl}/guestbook [post]
func CreateGuestBookEntry(c *gin.Context) {
	wedding, ok := publicWeddingBySlug(c)
	if !ok {
		return
	}

	var input GuestBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.GuestBookEntry{
		WeddingID: wedding.ID,
		GuestName: input.GuestName,
		Message:   input.Message,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign guest book"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for signing the guest book!",
		"entry":   entry,
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

type CreateWeddingInput struct {
	UniqueURL          string              `json:"unique_url" binding:"required"`
	Bride              string              `json:"bride" binding:"required"`
	Groom              string              `json:"groom" binding:"required"`
	WeddingDate        time.Time           `json:"wedding_date" binding:"required"`
	WeddingTime        string              `json:"wedding_time"`
	Timezone           string              `json:"timezone"`
	Venue              string              `json:"venue" binding:"required"`
	VenueAddress       string              `json:"venue_address" binding:"required"`
	VenueCoordinates   *models.Coordinates `json:"venue_coordinates"`
	Story              string              `json:"story"`
	WelcomeMessage     string              `json:"welcome_message"`
	DearGuestMessage   string              `json:"dear_guest_message"`
	Template           string              `json:"template"`
	PrimaryColor       string              `json:"primary_color"`
	AccentColor        string              `json:"accent_color"`
	IsPublic           *bool               `json:"is_public"`
	AvailableLanguages []string            `json:"available_languages"`
	DefaultLanguage    string              `json:"default_language"`
}

type UpdateWeddingInput struct {
	UniqueURL          string              `json:"unique_url"`
	Bride              string              `json:"bride"`
	Groom              string              `json:"groom"`
	WeddingDate        *time.Time          `json:"wedding_date"`
	WeddingTime        string              `json:"wedding_time"`
	Timezone           string              `json:"timezone"`
	Venue              string              `json:"venue"`
	VenueAddress       string              `json:"venue_address"`
	VenueCoordinates   *models.Coordinates `json:"venue_coordinates"`
	MapPinURL          string              `json:"map_pin_url"`
	Story              string              `json:"story"`
	WelcomeMessage     string              `json:"welcome_message"`
	DearGuestMessage   string              `json:"dear_guest_message"`
	CouplePhotoURL     string              `json:"couple_photo_url"`
	BackgroundTemplate string              `json:"background_template"`
	Template           string              `json:"template"`
	PrimaryColor       string              `json:"primary_color"`
	AccentColor        string              `json:"accent_color"`
	BackgroundMusicURL string              `json:"background_music_url"`
	IsPublic           *bool               `json:"is_public"`
	AvailableLanguages []string            `json:"available_languages"`
	DefaultLanguage    string              `json:"default_language"`
}

// GetWeddings godoc
// @Summary List weddings visible to the authenticated user
// @Description Returns weddings the user owns plus weddings shared through an access grant
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of weddings"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/weddings [get]
func GetWeddings(c *gin.Context) {
	caller, _, ok := currentCaller(c)
	if !ok {
		return
	}

	var grants []models.WeddingAccess
	if err := database.DB.Where("user_id = ?", caller.UserID).Find(&grants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch access grants"})
		return
	}

	sharedIDs := make([]uint, 0, len(grants))
	accessLevels := make(map[uint]string, len(grants))
	for _, g := range grants {
		sharedIDs = append(sharedIDs, g.WeddingID)
		accessLevels[g.WeddingID] = g.AccessLevel
	}

	var weddings []models.Wedding
	query := database.DB.Where("user_id = ?", caller.UserID)
	if len(sharedIDs) > 0 {
		query = query.Or("id IN ?", sharedIDs)
	}
	if err := query.Find(&weddings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weddings"})
		return
	}

	response := []gin.H{}
	for _, w := range weddings {
		level := models.AccessLevelOwner
		if w.UserID != caller.UserID {
			level = accessLevels[w.ID]
		}
		response = append(response, gin.H{
			"wedding":      w,
			"access_level": level,
		})
	}

	c.JSON(http.StatusOK, gin.H{"weddings": response})
}

// CreateWedding godoc
// @Summary Create a wedding site
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param wedding body CreateWeddingInput true "Wedding"
// @Success 201 {object} map[string]interface{} "Wedding created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Slug already taken"
// @Router /api/weddings [post]
func CreateWedding(c *gin.Context) {
	caller, _, ok := currentCaller(c)
	if !ok {
		return
	}

	var input CreateWeddingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Wedding
	if result := database.DB.Where("unique_url = ?", input.UniqueURL); result.First(&existing).RowsAffected > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "This URL is already taken"})
		return
	}

	wedding := models.Wedding{
		UserID:           caller.UserID,
		UniqueURL:        input.UniqueURL,
		Bride:            input.Bride,
		Groom:            input.Groom,
		WeddingDate:      input.WeddingDate,
		Venue:            input.Venue,
		VenueAddress:     input.VenueAddress,
		VenueCoordinates: input.VenueCoordinates,
		Story:            input.Story,
		WelcomeMessage:   input.WelcomeMessage,
		DearGuestMessage: input.DearGuestMessage,
		IsPublic:         true,
	}
	if input.WeddingTime != "" {
		wedding.WeddingTime = input.WeddingTime
	}
	if input.Timezone != "" {
		wedding.Timezone = input.Timezone
	}
	if input.Template != "" {
		wedding.Template = input.Template
	}
	if input.PrimaryColor != "" {
		wedding.PrimaryColor = input.PrimaryColor
	}
	if input.AccentColor != "" {
		wedding.AccentColor = input.AccentColor
	}
	if input.IsPublic != nil {
		wedding.IsPublic = *input.IsPublic
	}
	if len(input.AvailableLanguages) > 0 {
		wedding.AvailableLanguages = input.AvailableLanguages
	} else {
		wedding.AvailableLanguages = models.StringList{"en"}
	}
	if input.DefaultLanguage != "" {
		wedding.DefaultLanguage = input.DefaultLanguage
	}

	if err := database.DB.Create(&wedding).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wedding"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Wedding created successfully",
		"wedding": wedding,
	})
}

// GetWedding godoc
// @Summary Get a wedding for the dashboard
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]interface{} "Wedding details"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/weddings/{id} [get]
func GetWedding(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Any grant holder may open the dashboard view.
	wedding, _, ok := authorizeWeddingAny(c, weddingID,
		authz.CapEditDetails, authz.CapManageGuests, authz.CapViewAnalytics,
		authz.CapManagePhotos, authz.CapEditGuestBook)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"wedding": wedding})
}

// UpdateWedding godoc
// @Summary Update wedding details
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Param wedding body UpdateWeddingInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Wedding updated"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Slug already taken"
// @Router /api/weddings/{id} [put]
func UpdateWedding(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	wedding, _, ok := authorizeWedding(c, weddingID, authz.CapEditDetails)
	if !ok {
		return
	}

	var input UpdateWeddingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.UniqueURL != "" && input.UniqueURL != wedding.UniqueURL {
		var existing models.Wedding
		if result := database.DB.Where("unique_url = ? AND id <> ?", input.UniqueURL, wedding.ID); result.First(&existing).RowsAffected > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "This URL is already taken"})
			return
		}
		wedding.UniqueURL = input.UniqueURL
	}

	if input.Bride != "" {
		wedding.Bride = input.Bride
	}
	if input.Groom != "" {
		wedding.Groom = input.Groom
	}
	if input.WeddingDate != nil {
		wedding.WeddingDate = *input.WeddingDate
	}
	if input.WeddingTime != "" {
		wedding.WeddingTime = input.WeddingTime
	}
	if input.Timezone != "" {
		wedding.Timezone = input.Timezone
	}
	if input.Venue != "" {
		wedding.Venue = input.Venue
	}
	if input.VenueAddress != "" {
		wedding.VenueAddress = input.VenueAddress
	}
	if input.VenueCoordinates != nil {
		wedding.VenueCoordinates = input.VenueCoordinates
	}
	if input.MapPinURL != "" {
		wedding.MapPinURL = input.MapPinURL
	}
	if input.Story != "" {
		wedding.Story = input.Story
	}
	if input.WelcomeMessage != "" {
		wedding.WelcomeMessage = input.WelcomeMessage
	}
	if input.DearGuestMessage != "" {
		wedding.DearGuestMessage = input.DearGuestMessage
	}
	if input.CouplePhotoURL != "" {
		wedding.CouplePhotoURL = input.CouplePhotoURL
	}
	if input.BackgroundTemplate != "" {
		wedding.BackgroundTemplate = input.BackgroundTemplate
	}
	if input.Template != "" {
		wedding.Template = input.Template
	}
	if input.PrimaryColor != "" {
		wedding.PrimaryColor = input.PrimaryColor
	}
	if input.AccentColor != "" {
		wedding.AccentColor = input.AccentColor
	}
	if input.BackgroundMusicURL != "" {
		wedding.BackgroundMusicURL = input.BackgroundMusicURL
	}
	if input.IsPublic != nil {
		wedding.IsPublic = *input.IsPublic
	}
	if len(input.AvailableLanguages) > 0 {
		wedding.AvailableLanguages = input.AvailableLanguages
	}
	if input.DefaultLanguage != "" {
		wedding.DefaultLanguage = input.DefaultLanguage
	}

	if err := database.DB.Save(wedding).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wedding"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wedding updated successfully",
		"wedding": wedding,
	})
}

// DeleteWedding godoc
// @Summary Delete a wedding
// @Description Only the owner can delete a wedding
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wedding ID"
// @Success 200 {object} map[string]string "Wedding deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/weddings/{id} [delete]
func DeleteWedding(c *gin.Context) {
	weddingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var wedding models.Wedding
	if err := database.DB.First(&wedding, weddingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wedding not found"})
		return
	}

	caller, _, ok := currentCaller(c)
	if !ok {
		return
	}

	if wedding.UserID != caller.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the wedding owner can delete the wedding"})
		return
	}

	if err := database.DB.Delete(&wedding).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wedding"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wedding deleted successfully"})
}

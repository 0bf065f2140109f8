package controllers

import (
	"net/http"

	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

// requireVerifiedAdmin re-reads the caller's role from the users table. An
// admin flag cached on the client never grants anything; this runs on every
// privileged call.
func requireVerifiedAdmin(c *gin.Context) (*models.User, bool) {
	_, user, ok := currentCaller(c)
	if !ok {
		return nil, false
	}
	if user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"valid": false,
			"error": "Admin privileges could not be verified. Clear any saved admin state and sign in again.",
		})
		return nil, false
	}
	return user, true
}

// VerifyAdmin godoc
// @Summary Verify admin privileges server-side
// @Description Re-checks the bearer token against the store. Must be called on every privileged admin page load.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Token belongs to an admin"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Not an admin"
// @Router /api/admin/verify [get]
func VerifyAdmin(c *gin.Context) {
	user, ok := requireVerifiedAdmin(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of users"
// @Failure 403 {object} map[string]interface{} "Not an admin"
// @Router /api/admin/users [get]
func ListUsers(c *gin.Context) {
	if _, ok := requireVerifiedAdmin(c); !ok {
		return
	}

	var users []models.User
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListAllWeddings godoc
// @Summary List all weddings across tenants
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of weddings"
// @Failure 403 {object} map[string]interface{} "Not an admin"
// @Router /api/admin/weddings [get]
func ListAllWeddings(c *gin.Context) {
	if _, ok := requireVerifiedAdmin(c); !ok {
		return
	}

	var weddings []models.Wedding
	if err := database.DB.Order("id").Find(&weddings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weddings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weddings": weddings})
}

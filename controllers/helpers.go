package controllers

import (
	"net/http"
	"strconv"

	"github.com/dreamwed/wedding_backend/authz"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/gin-gonic/gin"
)

const sessionExpiredMessage = "Your session has expired. Your data is safe - please sign in again."

// currentCaller re-reads the caller's user row from the store so every role
// decision is based on stored state, never a client-cached flag.
func currentCaller(c *gin.Context) (authz.Caller, *models.User, bool) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": sessionExpiredMessage})
		return authz.Caller{}, nil, false
	}

	return authz.Caller{
		UserID:        user.ID,
		Role:          user.Role,
		Authenticated: true,
		AdminVerified: user.Role == models.RoleAdmin,
	}, &user, true
}

// authorizeWedding loads the wedding and the caller's access row fresh and
// evaluates the capability. On deny it writes the 401/403 response itself.
func authorizeWedding(c *gin.Context, weddingID uint, capability authz.Capability) (*models.Wedding, authz.Caller, bool) {
	return authorizeWeddingAny(c, weddingID, capability)
}

// authorizeWeddingAny allows the request when any of the capabilities is
// granted.
func authorizeWeddingAny(c *gin.Context, weddingID uint, capabilities ...authz.Capability) (*models.Wedding, authz.Caller, bool) {
	var wedding models.Wedding
	if err := database.DB.First(&wedding, weddingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wedding not found"})
		return nil, authz.Caller{}, false
	}

	caller, _, ok := currentCaller(c)
	if !ok {
		return nil, authz.Caller{}, false
	}

	access := findAccess(caller.UserID, wedding.ID)
	decision := authz.DecideAny(caller, &wedding, access, capabilities...)
	if !decision.Allowed {
		respondDenied(c, decision)
		return nil, authz.Caller{}, false
	}

	return &wedding, caller, true
}

func findAccess(userID, weddingID uint) *models.WeddingAccess {
	var access models.WeddingAccess
	if err := database.DB.Where("user_id = ? AND wedding_id = ?", userID, weddingID).
		First(&access).Error; err != nil {
		return nil
	}
	return &access
}

func respondDenied(c *gin.Context, decision authz.Decision) {
	if decision.Reason == authz.ReasonUnauthenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "You don't have access to this wedding"})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/middleware"
	"github.com/dreamwed/wedding_backend/models"
	"github.com/dreamwed/wedding_backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB swaps the global DB for an isolated in-memory database. The
// shared-cache DSN keeps the database alive across the pooled connections
// gorm opens for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	database.DB = db
	database.Migrate()
}

// testRouter wires the same route table as main so tests exercise the real
// middleware chain.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/api/register", Register)
	router.POST("/api/login", Login)

	public := router.Group("/api/public")
	{
		public.GET("/weddings/:uniqueUrl", GetPublicWedding)
		public.GET("/weddings/:uniqueUrl/guests/search", SearchPublicGuests)
		public.POST("/weddings/:uniqueUrl/guests", SelfRegisterGuest)
		public.POST("/weddings/:uniqueUrl/guests/:id/rsvp", SubmitRSVP)
		public.GET("/weddings/:uniqueUrl/guestbook", GetGuestBookEntries)
		public.POST("/weddings/:uniqueUrl/guestbook", CreateGuestBookEntry)
	}

	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		api.GET("/weddings", GetWeddings)
		api.POST("/weddings", CreateWedding)
		api.GET("/weddings/:id", GetWedding)
		api.PUT("/weddings/:id", UpdateWedding)
		api.DELETE("/weddings/:id", DeleteWedding)

		api.GET("/weddings/:id/guests", GetGuests)
		api.POST("/weddings/:id/guests", CreateGuest)
		api.GET("/weddings/:id/guests/stats", GetGuestStats)
		api.PUT("/guests/:id", UpdateGuest)
		api.DELETE("/guests/:id", DeleteGuest)
		api.PUT("/guests/:id/status", SetGuestStatus)

		api.GET("/weddings/:id/photos", GetPhotos)
		api.POST("/weddings/:id/photos", CreatePhoto)
		api.PUT("/photos/:id", UpdatePhoto)
		api.PUT("/photos/:id/hero", SetHeroPhoto)
		api.DELETE("/photos/:id", DeletePhoto)

		api.DELETE("/guestbook/:id", DeleteGuestBookEntry)

		api.GET("/weddings/:id/collaborators", GetCollaborators)
		api.POST("/weddings/:id/collaborators", InviteCollaborator)
		api.POST("/collaborators/accept", AcceptInvitation)
		api.DELETE("/weddings/:id/collaborators/:userId", RevokeAccess)

		api.GET("/admin/verify", VerifyAdmin)
		api.GET("/admin/users", ListUsers)
		api.GET("/admin/weddings", ListAllWeddings)
	}

	return router
}

func createTestUser(t *testing.T, email, role string) *models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "password123",
		Name:     "Test User",
		Role:     role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestWedding(t *testing.T, userID uint, slug string) *models.Wedding {
	t.Helper()

	wedding := models.Wedding{
		UserID:       userID,
		UniqueURL:    slug,
		Bride:        "Malika",
		Groom:        "Aziz",
		WeddingDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		WeddingTime:  "4:00 PM",
		Timezone:     "Asia/Tashkent",
		Venue:        "Navruz Hall",
		VenueAddress: "12 Amir Temur Avenue, Tashkent",
		Template:     "garden-romance",
		PrimaryColor: "#D4B08C",
		AccentColor:  "#89916B",
		IsPublic:     true,
	}
	if err := database.DB.Create(&wedding).Error; err != nil {
		t.Fatalf("failed to create test wedding: %v", err)
	}
	return &wedding
}

func createTestGuest(t *testing.T, weddingID uint, name string) *models.Guest {
	t.Helper()

	guest := models.Guest{
		WeddingID:  weddingID,
		Name:       name,
		RSVPStatus: models.RSVPPending,
		Category:   "family",
		Side:       "both",
		AddedBy:    "couple",
	}
	if err := database.DB.Create(&guest).Error; err != nil {
		t.Fatalf("failed to create test guest: %v", err)
	}
	return &guest
}

func authToken(t *testing.T, userID uint) string {
	t.Helper()

	token, err := utils.GenerateToken(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// doRequest performs an HTTP request against the router. body is marshalled
// to JSON when non-nil; token, when set, goes out as a bearer header.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

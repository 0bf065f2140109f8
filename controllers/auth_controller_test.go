package controllers

import (
	"net/http"
	"testing"

	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	w := doRequest(t, router, http.MethodPost, "/api/register", "",
		map[string]interface{}{
			"email":    "aziz@example.com",
			"password": "secret123",
			"name":     "Aziz Karimov",
		})
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	if body["token"] == "" || body["token"] == nil {
		t.Fatal("expected a token on registration")
	}
	user := body["user"].(map[string]interface{})
	if user["role"] != models.RoleUser {
		t.Errorf("registration must always produce a regular user, got %v", user["role"])
	}

	// Stored password must be a bcrypt hash, never the plaintext.
	var stored models.User
	if err := database.DB.Where("email = ?", "aziz@example.com").First(&stored).Error; err != nil {
		t.Fatalf("registered user not stored: %v", err)
	}
	if stored.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if err := stored.ValidatePassword("secret123"); err != nil {
		t.Errorf("stored hash does not verify the original password: %v", err)
	}

	w = doRequest(t, router, http.MethodPost, "/api/register", "",
		map[string]interface{}{
			"email":    "aziz@example.com",
			"password": "different1",
			"name":     "Duplicate",
		})
	requireStatus(t, w, http.StatusBadRequest)

	w = doRequest(t, router, http.MethodPost, "/api/login", "",
		map[string]interface{}{"email": "aziz@example.com", "password": "secret123"})
	requireStatus(t, w, http.StatusOK)

	w = doRequest(t, router, http.MethodPost, "/api/login", "",
		map[string]interface{}{"email": "aziz@example.com", "password": "wrongpass"})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	w := doRequest(t, router, http.MethodGet, "/api/weddings", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = doRequest(t, router, http.MethodGet, "/api/weddings", "not-a-real-token", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}

package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
)

func TestVerifyAdminChecksStoredRole(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	regular := createTestUser(t, "user@example.com", models.RoleUser)

	w := doRequest(t, router, http.MethodGet, "/api/admin/verify", authToken(t, admin.ID), nil)
	requireStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["valid"] != true {
		t.Errorf("expected valid:true for admin, got %v", body["valid"])
	}

	w = doRequest(t, router, http.MethodGet, "/api/admin/verify", authToken(t, regular.ID), nil)
	requireStatus(t, w, http.StatusForbidden)
	body = decodeBody(t, w)
	if body["valid"] != false {
		t.Errorf("expected valid:false for non-admin, got %v", body["valid"])
	}

	// A role change is picked up on the next call: the token itself carries no
	// privilege.
	database.DB.Model(&models.User{}).Where("id = ?", admin.ID).Update("role", models.RoleUser)

	w = doRequest(t, router, http.MethodGet, "/api/admin/verify", authToken(t, admin.ID), nil)
	requireStatus(t, w, http.StatusForbidden)
}

func TestAdminCanAccessAnyWedding(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	owner := createTestUser(t, "couple@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")
	createTestGuest(t, wedding.ID, "Aziz Karimov")

	w := doRequest(t, router, http.MethodGet, "/api/admin/weddings", authToken(t, admin.ID), nil)
	requireStatus(t, w, http.StatusOK)
	weddings := decodeBody(t, w)["weddings"].([]interface{})
	if len(weddings) != 1 {
		t.Fatalf("expected 1 wedding in the admin listing, got %d", len(weddings))
	}

	// Admins pass the per-wedding capability checks without a grant.
	w = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/weddings/%d/guests", wedding.ID), authToken(t, admin.ID), nil)
	requireStatus(t, w, http.StatusOK)

	w = doRequest(t, router, http.MethodGet, "/api/admin/users", authToken(t, owner.ID), nil)
	requireStatus(t, w, http.StatusForbidden)
}

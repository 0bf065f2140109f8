package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
)

func TestCollaboratorLifecycle(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "couple@example.com", models.RoleUser)
	helper := createTestUser(t, "helper@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")

	ownerToken := authToken(t, owner.ID)
	helperToken := authToken(t, helper.ID)

	// Before any grant exists the helper is shut out entirely.
	w := doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/weddings/%d/guests", wedding.ID), helperToken, nil)
	requireStatus(t, w, http.StatusForbidden)

	// The owner invites the helper as a guest manager.
	w = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/weddings/%d/collaborators", wedding.ID), ownerToken,
		map[string]interface{}{"email": "helper@example.com", "name": "Helpful Friend"})
	requireStatus(t, w, http.StatusCreated)
	token := decodeBody(t, w)["invitation_token"].(string)
	if token == "" {
		t.Fatal("expected an invitation token in the response")
	}

	// A pending invitation grants nothing yet.
	w = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/weddings/%d/guests", wedding.ID), helperToken, nil)
	requireStatus(t, w, http.StatusForbidden)

	// Accepting flips the invitation and creates the enforceable grant.
	w = doRequest(t, router, http.MethodPost, "/api/collaborators/accept", helperToken,
		map[string]interface{}{"token": token})
	requireStatus(t, w, http.StatusOK)

	var access models.WeddingAccess
	if err := database.DB.Where("user_id = ? AND wedding_id = ?", helper.ID, wedding.ID).
		First(&access).Error; err != nil {
		t.Fatalf("expected a wedding access row after accept: %v", err)
	}
	if access.AccessLevel != models.AccessLevelGuestManager {
		t.Errorf("expected guest_manager access, got %q", access.AccessLevel)
	}
	if !access.Permissions.CanManageGuests {
		t.Error("default grant must include guest management")
	}

	// The grant covers the guest list...
	w = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/weddings/%d/guests", wedding.ID), helperToken,
		map[string]interface{}{"name": "Added By Helper"})
	requireStatus(t, w, http.StatusCreated)

	var added models.Guest
	database.DB.Where("name = ?", "Added By Helper").First(&added)
	if added.AddedBy != "guest_manager" {
		t.Errorf("expected added_by guest_manager, got %q", added.AddedBy)
	}

	// ...but never the wedding details.
	w = doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/weddings/%d", wedding.ID), helperToken,
		map[string]interface{}{"venue": "Hijacked Hall"})
	requireStatus(t, w, http.StatusForbidden)

	// Revocation takes effect on the very next request.
	w = doRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/weddings/%d/collaborators/%d", wedding.ID, helper.ID), ownerToken, nil)
	requireStatus(t, w, http.StatusOK)

	w = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/weddings/%d/guests", wedding.ID), helperToken, nil)
	requireStatus(t, w, http.StatusForbidden)
}

func TestAcceptInvitationEmailMustMatch(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "couple@example.com", models.RoleUser)
	imposter := createTestUser(t, "imposter@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")

	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/weddings/%d/collaborators", wedding.ID), authToken(t, owner.ID),
		map[string]interface{}{"email": "helper@example.com", "name": "Helpful Friend"})
	requireStatus(t, w, http.StatusCreated)
	token := decodeBody(t, w)["invitation_token"].(string)

	w = doRequest(t, router, http.MethodPost, "/api/collaborators/accept",
		authToken(t, imposter.ID), map[string]interface{}{"token": token})
	requireStatus(t, w, http.StatusForbidden)

	var count int64
	database.DB.Model(&models.WeddingAccess{}).Where("wedding_id = ?", wedding.ID).Count(&count)
	if count != 0 {
		t.Errorf("a mismatched accept must not create a grant, found %d", count)
	}
}

func TestAcceptInvitationIsSingleUse(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "couple@example.com", models.RoleUser)
	helper := createTestUser(t, "helper@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")
	helperToken := authToken(t, helper.ID)

	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/weddings/%d/collaborators", wedding.ID), authToken(t, owner.ID),
		map[string]interface{}{"email": "helper@example.com", "name": "Helpful Friend"})
	requireStatus(t, w, http.StatusCreated)
	token := decodeBody(t, w)["invitation_token"].(string)

	w = doRequest(t, router, http.MethodPost, "/api/collaborators/accept", helperToken,
		map[string]interface{}{"token": token})
	requireStatus(t, w, http.StatusOK)

	w = doRequest(t, router, http.MethodPost, "/api/collaborators/accept", helperToken,
		map[string]interface{}{"token": token})
	requireStatus(t, w, http.StatusBadRequest)

	w = doRequest(t, router, http.MethodPost, "/api/collaborators/accept", helperToken,
		map[string]interface{}{"token": "no-such-token"})
	requireStatus(t, w, http.StatusNotFound)
}

func TestDuplicatePendingInvitationRejected(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "couple@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")
	ownerToken := authToken(t, owner.ID)

	invite := map[string]interface{}{"email": "helper@example.com", "name": "Helpful Friend"}
	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/weddings/%d/collaborators", wedding.ID), ownerToken, invite)
	requireStatus(t, w, http.StatusCreated)

	w = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/weddings/%d/collaborators", wedding.ID), ownerToken, invite)
	requireStatus(t, w, http.StatusBadRequest)
}

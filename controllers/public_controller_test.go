package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/models"
)

func TestRSVPFlow(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "owner@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")
	guest := createTestGuest(t, wedding.ID, "Aziz Karimov")

	// The guest finds themselves by name on the public page.
	w := doRequest(t, router, http.MethodGet,
		"/api/public/weddings/aziz-malika/guests/search?name=aziz", "", nil)
	requireStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	guests := body["guests"].([]interface{})
	if len(guests) != 1 {
		t.Fatalf("expected 1 search result, got %d", len(guests))
	}
	found := guests[0].(map[string]interface{})
	if found["name"] != "Aziz Karimov" {
		t.Errorf("unexpected search result: %v", found)
	}
	if _, leaked := found["email"]; leaked {
		t.Error("search result must not expose contact fields")
	}

	// Confirming with a companion derives the plus-one fields server side.
	w = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/public/weddings/aziz-malika/guests/%d/rsvp", guest.ID), "",
		map[string]interface{}{
			"rsvp_status":       "confirmed_with_guest",
			"additional_guests": 2,
			"plus_one_name":     "Nodira Karimova",
			"message":           "So happy for you both!",
			"plus_one":          false, // client lies; server recomputes
		})
	requireStatus(t, w, http.StatusOK)

	var saved models.Guest
	if err := database.DB.First(&saved, guest.ID).Error; err != nil {
		t.Fatalf("failed to reload guest: %v", err)
	}
	if saved.RSVPStatus != models.RSVPConfirmedWithGuest {
		t.Errorf("expected status confirmed_with_guest, got %q", saved.RSVPStatus)
	}
	if !saved.PlusOne || saved.AdditionalGuests != 2 {
		t.Errorf("derived fields wrong: plus_one=%v additional=%d", saved.PlusOne, saved.AdditionalGuests)
	}
	if saved.PlusOneName != "Nodira Karimova" {
		t.Errorf("expected plus-one name to be stored, got %q", saved.PlusOneName)
	}
	if saved.RespondedAt == nil {
		t.Error("expected responded_at to be stamped")
	}

	// Changing the answer later wins and resets the companion fields.
	w = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/public/weddings/aziz-malika/guests/%d/rsvp", guest.ID), "",
		map[string]interface{}{"rsvp_status": "declined"})
	requireStatus(t, w, http.StatusOK)

	if err := database.DB.First(&saved, guest.ID).Error; err != nil {
		t.Fatalf("failed to reload guest: %v", err)
	}
	if saved.RSVPStatus != models.RSVPDeclined {
		t.Errorf("expected status declined, got %q", saved.RSVPStatus)
	}
	if saved.PlusOne || saved.AdditionalGuests != 0 || saved.PlusOneName != "" {
		t.Errorf("declining must reset companion fields: plus_one=%v additional=%d name=%q",
			saved.PlusOne, saved.AdditionalGuests, saved.PlusOneName)
	}
}

func TestRSVPRejectsInvalidStatus(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "owner@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")
	guest := createTestGuest(t, wedding.ID, "Aziz Karimov")

	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/public/weddings/aziz-malika/guests/%d/rsvp", guest.ID), "",
		map[string]interface{}{"rsvp_status": "attending"})
	requireStatus(t, w, http.StatusBadRequest)

	var saved models.Guest
	database.DB.First(&saved, guest.ID)
	if saved.RSVPStatus != models.RSVPPending {
		t.Errorf("rejected submission must not change stored status, got %q", saved.RSVPStatus)
	}
}

func TestRSVPGuestMustBelongToWedding(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "owner@example.com", models.RoleUser)
	createTestWedding(t, owner.ID, "aziz-malika")
	other := createTestWedding(t, owner.ID, "another-couple")
	stranger := createTestGuest(t, other.ID, "Someone Else")

	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/public/weddings/aziz-malika/guests/%d/rsvp", stranger.ID), "",
		map[string]interface{}{"rsvp_status": "confirmed"})
	requireStatus(t, w, http.StatusForbidden)

	w = doRequest(t, router, http.MethodPost,
		"/api/public/weddings/aziz-malika/guests/99999/rsvp", "",
		map[string]interface{}{"rsvp_status": "confirmed"})
	requireStatus(t, w, http.StatusNotFound)
}

func TestPrivateWeddingHidesPublicSurface(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "owner@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "secret-party")
	database.DB.Model(wedding).Update("is_public", false)

	w := doRequest(t, router, http.MethodGet, "/api/public/weddings/secret-party", "", nil)
	requireStatus(t, w, http.StatusForbidden)

	w = doRequest(t, router, http.MethodGet,
		"/api/public/weddings/secret-party/guests/search?name=aziz", "", nil)
	requireStatus(t, w, http.StatusForbidden)

	w = doRequest(t, router, http.MethodGet, "/api/public/weddings/no-such-site", "", nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestGuestSelfRegistration(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "owner@example.com", models.RoleUser)
	createTestWedding(t, owner.ID, "aziz-malika")

	w := doRequest(t, router, http.MethodPost, "/api/public/weddings/aziz-malika/guests", "",
		map[string]interface{}{"name": "Walk-in Guest", "email": "walkin@example.com"})
	requireStatus(t, w, http.StatusCreated)

	var saved models.Guest
	if err := database.DB.Where("name = ?", "Walk-in Guest").First(&saved).Error; err != nil {
		t.Fatalf("self-registered guest not stored: %v", err)
	}
	if saved.AddedBy != "self_registration" {
		t.Errorf("expected added_by self_registration, got %q", saved.AddedBy)
	}
	if saved.RSVPStatus != models.RSVPPending {
		t.Errorf("new guest must start pending, got %q", saved.RSVPStatus)
	}
}

func TestGuestBookAppendAndModeration(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	owner := createTestUser(t, "owner@example.com", models.RoleUser)
	wedding := createTestWedding(t, owner.ID, "aziz-malika")

	w := doRequest(t, router, http.MethodPost, "/api/public/weddings/aziz-malika/guestbook", "",
		map[string]interface{}{"guest_name": "Aziz Karimov", "message": "Congratulations!"})
	requireStatus(t, w, http.StatusCreated)

	w = doRequest(t, router, http.MethodGet, "/api/public/weddings/aziz-malika/guestbook", "", nil)
	requireStatus(t, w, http.StatusOK)
	entries := decodeBody(t, w)["entries"].([]interface{})
	if len(entries) != 1 {
		t.Fatalf("expected 1 guest book entry, got %d", len(entries))
	}

	// Only the couple can remove entries.
	var entry models.GuestBookEntry
	database.DB.Where("wedding_id = ?", wedding.ID).First(&entry)

	w = doRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/guestbook/%d", entry.ID), "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = doRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/guestbook/%d", entry.ID), authToken(t, owner.ID), nil)
	requireStatus(t, w, http.StatusOK)

	var count int64
	database.DB.Model(&models.GuestBookEntry{}).Where("wedding_id = ?", wedding.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected entry to be deleted, %d remain", count)
	}
}

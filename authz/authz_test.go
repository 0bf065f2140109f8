package authz

import (
	"testing"

	"github.com/dreamwed/wedding_backend/models"
)

func publicWedding(ownerID uint) *models.Wedding {
	return &models.Wedding{ID: 42, UserID: ownerID, IsPublic: true}
}

func grant(userID, weddingID uint, level string, p models.Permissions) *models.WeddingAccess {
	return &models.WeddingAccess{UserID: userID, WeddingID: weddingID, AccessLevel: level, Permissions: p}
}

var mutationCaps = []Capability{
	CapEditDetails, CapManageGuests, CapManagePhotos, CapEditGuestBook,
}

func TestDecideResolutionOrder(t *testing.T) {
	wedding := publicWedding(1)
	owner := Caller{UserID: 1, Role: models.RoleUser, Authenticated: true}
	stranger := Caller{UserID: 2, Role: models.RoleUser, Authenticated: true}
	anonymous := Caller{}

	tests := []struct {
		name       string
		caller     Caller
		access     *models.WeddingAccess
		capability Capability
		allowed    bool
		reason     Reason
	}{
		{"anonymous sees public page", anonymous, nil, CapViewPublicPage, true, ""},
		{"anonymous denied mutation", anonymous, nil, CapManageGuests, false, ReasonUnauthenticated},
		{"owner gets everything", owner, nil, CapEditDetails, true, ""},
		{"stranger denied", stranger, nil, CapManageGuests, false, ReasonForbidden},
		{
			"grant flag opens its capability",
			stranger,
			grant(2, 42, models.AccessLevelGuestManager, models.Permissions{CanManageGuests: true}),
			CapManageGuests, true, "",
		},
		{
			"grant without the flag stays closed",
			stranger,
			grant(2, 42, models.AccessLevelGuestManager, models.Permissions{CanManageGuests: true}),
			CapEditDetails, false, ReasonForbidden,
		},
		{
			"grant for another wedding never applies",
			stranger,
			grant(2, 7, models.AccessLevelGuestManager, models.Permissions{CanManageGuests: true}),
			CapManageGuests, false, ReasonForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.caller, wedding, tt.access, tt.capability)
			if d.Allowed != tt.allowed {
				t.Fatalf("allowed = %v, want %v", d.Allowed, tt.allowed)
			}
			if !tt.allowed && d.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", d.Reason, tt.reason)
			}
		})
	}
}

func TestPrivateWeddingHidesPublicPage(t *testing.T) {
	wedding := &models.Wedding{ID: 42, UserID: 1, IsPublic: false}

	d := Decide(Caller{}, wedding, nil, CapViewPublicPage)
	if d.Allowed {
		t.Fatal("anonymous caller must not see a private wedding page")
	}

	// The owner still reaches their own page.
	d = Decide(Caller{UserID: 1, Authenticated: true}, wedding, nil, CapViewPublicPage)
	if !d.Allowed {
		t.Fatal("owner must reach the private page")
	}
}

func TestViewerHardLimit(t *testing.T) {
	wedding := publicWedding(1)
	viewer := Caller{UserID: 3, Role: models.RoleUser, Authenticated: true}

	// All mutation flags set on purpose: the level must win over the flags.
	access := grant(3, 42, models.AccessLevelViewer, models.Permissions{
		CanEditDetails:   true,
		CanManageGuests:  true,
		CanViewAnalytics: true,
		CanManagePhotos:  true,
		CanEditGuestBook: true,
	})

	for _, capability := range mutationCaps {
		if d := Decide(viewer, wedding, access, capability); d.Allowed {
			t.Errorf("viewer must never get %s", capability)
		}
	}

	if d := Decide(viewer, wedding, access, CapViewAnalytics); !d.Allowed {
		t.Error("viewer with the analytics flag should read analytics")
	}

	noAnalytics := grant(3, 42, models.AccessLevelViewer, models.Permissions{})
	if d := Decide(viewer, wedding, noAnalytics, CapViewAnalytics); d.Allowed {
		t.Error("viewer without the analytics flag must not read analytics")
	}
}

func TestAdminRequiresVerification(t *testing.T) {
	wedding := publicWedding(1)

	verified := Caller{UserID: 9, Role: models.RoleAdmin, Authenticated: true, AdminVerified: true}
	if d := Decide(verified, wedding, nil, CapEditDetails); !d.Allowed {
		t.Error("verified admin must pass without a grant")
	}

	// A claimed admin role without the store re-check counts for nothing.
	unverified := Caller{UserID: 9, Role: models.RoleAdmin, Authenticated: true}
	if d := Decide(unverified, wedding, nil, CapEditDetails); d.Allowed {
		t.Error("unverified admin role must not grant access")
	}
}

func TestDecideAny(t *testing.T) {
	wedding := publicWedding(1)
	caller := Caller{UserID: 2, Role: models.RoleUser, Authenticated: true}
	access := grant(2, 42, models.AccessLevelGuestManager, models.Permissions{CanViewAnalytics: true})

	d := DecideAny(caller, wedding, access, CapEditDetails, CapViewAnalytics)
	if !d.Allowed {
		t.Fatal("one allowed capability should be enough")
	}

	d = DecideAny(caller, wedding, access, CapEditDetails, CapManagePhotos)
	if d.Allowed {
		t.Fatal("no capability allowed, must deny")
	}
	if d.Reason != ReasonForbidden {
		t.Errorf("reason = %q, want forbidden", d.Reason)
	}

	d = DecideAny(Caller{}, wedding, nil, CapEditDetails, CapManageGuests)
	if d.Allowed || d.Reason != ReasonUnauthenticated {
		t.Errorf("anonymous caller should map to unauthenticated, got %+v", d)
	}
}

// Package authz resolves a caller plus a target wedding to an allow/deny
// decision. It is a pure function over rows the handler has already fetched:
// no caching, no side effects, re-evaluated on every request so a revoked
// grant dies with the next call.
package authz

import (
	"github.com/dreamwed/wedding_backend/models"
)

// Capability is a requested operation class on a wedding.
type Capability string

const (
	CapEditDetails    Capability = "edit-details"
	CapManageGuests   Capability = "manage-guests"
	CapViewAnalytics  Capability = "view-analytics"
	CapManagePhotos   Capability = "manage-photos"
	CapEditGuestBook  Capability = "edit-guestbook"
	CapViewPublicPage Capability = "view-public-page"
)

// Caller identifies who is asking. AdminVerified must only be set after the
// role was re-read from the users table during this request; a cached or
// client-supplied admin flag never counts.
type Caller struct {
	UserID        uint
	Role          string
	Authenticated bool
	AdminVerified bool
}

// Reason distinguishes the two deny cases so the boundary layer can map them
// to 401 vs 403.
type Reason string

const (
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Decide resolves the capability for the caller on the wedding. access is the
// caller's WeddingAccess row for this wedding, freshly fetched, or nil when
// none exists. Resolution order: public page, owner, verified admin, grant.
func Decide(caller Caller, wedding *models.Wedding, access *models.WeddingAccess, capability Capability) Decision {
	if wedding == nil {
		return deny(ReasonForbidden)
	}

	if capability == CapViewPublicPage && wedding.IsPublic {
		return allow()
	}

	if !caller.Authenticated {
		return deny(ReasonUnauthenticated)
	}

	if wedding.UserID == caller.UserID {
		return allow()
	}

	if caller.Role == models.RoleAdmin && caller.AdminVerified {
		return allow()
	}

	if access == nil || access.UserID != caller.UserID || access.WeddingID != wedding.ID {
		return deny(ReasonForbidden)
	}

	switch access.AccessLevel {
	case models.AccessLevelOwner:
		return allow()
	case models.AccessLevelViewer:
		// Viewers are hard-limited to read-only capabilities regardless of
		// the stored flags.
		switch capability {
		case CapViewPublicPage:
			return allow()
		case CapViewAnalytics:
			if access.Permissions.CanViewAnalytics {
				return allow()
			}
		}
		return deny(ReasonForbidden)
	case models.AccessLevelGuestManager:
		if capability == CapViewPublicPage {
			return allow()
		}
		if permits(access.Permissions, capability) {
			return allow()
		}
	}
	return deny(ReasonForbidden)
}

// DecideAny allows when any one of the capabilities resolves to allow. Used
// for dashboard reads that any grant holder may perform.
func DecideAny(caller Caller, wedding *models.Wedding, access *models.WeddingAccess, capabilities ...Capability) Decision {
	decision := deny(ReasonForbidden)
	for _, capability := range capabilities {
		d := Decide(caller, wedding, access, capability)
		if d.Allowed {
			return d
		}
		if d.Reason == ReasonUnauthenticated {
			decision = d
		}
	}
	return decision
}

func permits(p models.Permissions, capability Capability) bool {
	switch capability {
	case CapEditDetails:
		return p.CanEditDetails
	case CapManageGuests:
		return p.CanManageGuests
	case CapViewAnalytics:
		return p.CanViewAnalytics
	case CapManagePhotos:
		return p.CanManagePhotos
	case CapEditGuestBook:
		return p.CanEditGuestBook
	}
	return false
}

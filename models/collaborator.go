package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	AccessLevelOwner        = "owner"
	AccessLevelGuestManager = "guest_manager"
	AccessLevelViewer       = "viewer"
)

const (
	CollaboratorPending  = "pending"
	CollaboratorAccepted = "accepted"
)

// Permissions is the per-grant capability record stored as a JSON column on
// both guest_collaborators and wedding_access.
type Permissions struct {
	CanEditDetails   bool `json:"canEditDetails"`
	CanManageGuests  bool `json:"canManageGuests"`
	CanViewAnalytics bool `json:"canViewAnalytics"`
	CanManagePhotos  bool `json:"canManagePhotos"`
	CanEditGuestBook bool `json:"canEditGuestBook"`
}

// DefaultCollaboratorPermissions matches the defaults an invited guest
// manager receives: guest list and analytics only.
func DefaultCollaboratorPermissions() Permissions {
	return Permissions{
		CanManageGuests:  true,
		CanViewAnalytics: true,
	}
}

func (p Permissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Permissions) Scan(value interface{}) error {
	if value == nil {
		*p = Permissions{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return errors.New("unsupported type for permissions column")
}

// GuestCollaborator is the pending-invitation record. It is a log of intent
// and history only: authorization never reads it. Once accepted it produces
// the WeddingAccess row that is actually enforced.
type GuestCollaborator struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	WeddingID       uint        `gorm:"not null;index" json:"wedding_id"`
	Wedding         Wedding     `gorm:"foreignKey:WeddingID" json:"-"`
	Email           string      `gorm:"size:255;not null" json:"email"`
	Name            string      `gorm:"size:255;not null" json:"name"`
	Role            string      `gorm:"size:50;not null;default:'guest_manager'" json:"role"`
	Status          string      `gorm:"size:50;not null;default:'pending'" json:"status"` // pending, accepted
	InvitationToken string      `gorm:"size:64;not null;uniqueIndex" json:"-"`
	InvitedAt       time.Time   `json:"invited_at"`
	AcceptedAt      *time.Time  `json:"accepted_at,omitempty"`
	Permissions     Permissions `gorm:"type:json" json:"permissions"`
	CreatedAt       time.Time   `json:"created_at"`
}

// WeddingAccess binds an existing user to a wedding. It is the authoritative
// grant checked on every request; revoking it takes effect immediately.
type WeddingAccess struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null;uniqueIndex:idx_wedding_access_user_wedding" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	WeddingID   uint        `gorm:"not null;uniqueIndex:idx_wedding_access_user_wedding" json:"wedding_id"`
	Wedding     Wedding     `gorm:"foreignKey:WeddingID" json:"-"`
	AccessLevel string      `gorm:"size:50;not null;default:'viewer'" json:"access_level"` // owner, guest_manager, viewer
	Permissions Permissions `gorm:"type:json" json:"permissions"`
	CreatedAt   time.Time   `json:"created_at"`
}

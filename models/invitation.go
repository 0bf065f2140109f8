package models

import (
	"fmt"
	"time"
)

const (
	InvitationPending   = "pending"
	InvitationSent      = "sent"
	InvitationDelivered = "delivered"
	InvitationOpened    = "opened"
	InvitationError     = "error"
)

// ParseInvitationStatus validates a delivery status value. Transitions are
// manual: there is no delivery implementation behind them.
func ParseInvitationStatus(s string) (string, error) {
	switch s {
	case InvitationPending, InvitationSent, InvitationDelivered, InvitationOpened, InvitationError:
		return s, nil
	}
	return "", fmt.Errorf("invalid invitation status: %q", s)
}

// Invitation tracks delivery status per guest per wedding. Purely
// informational.
type Invitation struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	WeddingID        uint       `gorm:"not null;index" json:"wedding_id"`
	Wedding          Wedding    `gorm:"foreignKey:WeddingID" json:"-"`
	GuestID          uint       `gorm:"not null;index" json:"guest_id"`
	Guest            Guest      `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	InvitationType   string     `gorm:"size:50;not null;default:'email'" json:"invitation_type"`
	RecipientContact string     `gorm:"size:255;not null" json:"recipient_contact"`
	Status           string     `gorm:"size:50;not null;default:'pending'" json:"status"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	OpenedAt         *time.Time `json:"opened_at,omitempty"`
	ErrorMessage     string     `gorm:"type:text" json:"error_message,omitempty"`
	ReminderSentAt   *time.Time `json:"reminder_sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

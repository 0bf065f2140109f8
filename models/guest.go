package models

import (
	"fmt"
	"time"
)

// RSVPStatus represents the attendance confirmation status of a guest
type RSVPStatus string

const (
	RSVPPending            RSVPStatus = "pending"
	RSVPConfirmed          RSVPStatus = "confirmed"
	RSVPConfirmedWithGuest RSVPStatus = "confirmed_with_guest"
	RSVPDeclined           RSVPStatus = "declined"
	RSVPMaybe              RSVPStatus = "maybe"
)

// ParseRSVPStatus validates a client-supplied status value
func ParseRSVPStatus(s string) (RSVPStatus, error) {
	switch RSVPStatus(s) {
	case RSVPPending, RSVPConfirmed, RSVPConfirmedWithGuest, RSVPDeclined, RSVPMaybe:
		return RSVPStatus(s), nil
	}
	return "", fmt.Errorf("invalid rsvp status: %q", s)
}

type Guest struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	WeddingID           uint       `gorm:"not null;index" json:"wedding_id"`
	Wedding             Wedding    `gorm:"foreignKey:WeddingID" json:"-"`
	Name                string     `gorm:"size:255;not null" json:"name"`
	Email               string     `gorm:"size:255" json:"email,omitempty"`
	Phone               string     `gorm:"size:50" json:"phone,omitempty"`
	RSVPStatus          RSVPStatus `gorm:"size:50;not null;default:'pending'" json:"rsvp_status"`
	ResponseText        string     `gorm:"type:text" json:"response_text,omitempty"`
	PlusOne             bool       `gorm:"not null;default:false" json:"plus_one"`
	PlusOneName         string     `gorm:"size:255" json:"plus_one_name,omitempty"`
	AdditionalGuests    int        `gorm:"not null;default:0" json:"additional_guests"`
	Message             string     `gorm:"type:text" json:"message,omitempty"`
	Category            string     `gorm:"size:100;not null;default:'family'" json:"category"`
	Side                string     `gorm:"size:20;not null;default:'both'" json:"side"` // bride, groom, both
	DietaryRestrictions string     `gorm:"type:text" json:"dietary_restrictions,omitempty"`
	Address             string     `gorm:"type:text" json:"address,omitempty"`
	InvitationSent      bool       `gorm:"not null;default:false" json:"invitation_sent"`
	InvitationSentAt    *time.Time `json:"invitation_sent_at,omitempty"`
	AddedBy             string     `gorm:"size:50;not null;default:'couple'" json:"added_by"`
	Notes               string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	RespondedAt         *time.Time `json:"responded_at,omitempty"`
}

// ApplyRSVP moves the guest to the given status and normalizes the derived
// plus-one fields. Client-computed values for plus_one and additional_guests
// are never trusted: only confirmed_with_guest carries a companion, every
// other status resets both. RespondedAt always reflects the latest response.
func (g *Guest) ApplyRSVP(status RSVPStatus, additionalGuests int, now time.Time) {
	g.RSVPStatus = status
	if status == RSVPConfirmedWithGuest {
		g.PlusOne = true
		if additionalGuests < 1 {
			additionalGuests = 1
		}
		g.AdditionalGuests = additionalGuests
	} else {
		g.PlusOne = false
		g.AdditionalGuests = 0
		g.PlusOneName = ""
	}
	g.RespondedAt = &now
}

// RSVPStats are derived views recomputed on every read, never stored.
type RSVPStats struct {
	Total         int64              `json:"total"`
	ByStatus      map[RSVPStatus]int64 `json:"by_status"`
	ResponseRate  float64            `json:"response_rate"`
	WithFeedback  int64              `json:"with_feedback"`
	ExpectedCount int64              `json:"expected_count"`
}

// ComputeRSVPStats aggregates the guest list for the dashboard. The expected
// headcount counts every confirmed guest plus their additional companions.
func ComputeRSVPStats(guests []Guest) RSVPStats {
	stats := RSVPStats{
		ByStatus: map[RSVPStatus]int64{
			RSVPPending:            0,
			RSVPConfirmed:          0,
			RSVPConfirmedWithGuest: 0,
			RSVPDeclined:           0,
			RSVPMaybe:              0,
		},
	}

	var responded int64
	for _, g := range guests {
		stats.Total++
		stats.ByStatus[g.RSVPStatus]++
		if g.RSVPStatus != RSVPPending {
			responded++
		}
		if g.Message != "" {
			stats.WithFeedback++
		}
		switch g.RSVPStatus {
		case RSVPConfirmed:
			stats.ExpectedCount++
		case RSVPConfirmedWithGuest:
			stats.ExpectedCount += 1 + int64(g.AdditionalGuests)
		}
	}

	if stats.Total > 0 {
		stats.ResponseRate = float64(responded) / float64(stats.Total)
	}
	return stats
}

// PublicGuest is the guest record filtered to public-safe fields for the
// self-service RSVP search flow.
type PublicGuest struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	RSVPStatus       RSVPStatus `json:"rsvp_status"`
	PlusOne          bool       `json:"plus_one"`
	AdditionalGuests int        `json:"additional_guests"`
}

func (g Guest) Public() PublicGuest {
	return PublicGuest{
		ID:               g.ID,
		Name:             g.Name,
		RSVPStatus:       g.RSVPStatus,
		PlusOne:          g.PlusOne,
		AdditionalGuests: g.AdditionalGuests,
	}
}

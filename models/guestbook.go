package models

import (
	"time"
)

// GuestBookEntry is append-only: entries are created and listed, never
// updated. Deletion exists only as owner-side moderation.
type GuestBookEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WeddingID uint      `gorm:"not null;index" json:"wedding_id"`
	Wedding   Wedding   `gorm:"foreignKey:WeddingID" json:"-"`
	GuestName string    `gorm:"size:255;not null" json:"guest_name"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

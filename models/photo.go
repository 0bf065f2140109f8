package models

import (
	"time"
)

const (
	PhotoTypeCouple = "couple"
	PhotoTypeMemory = "memory"
	PhotoTypeHero   = "hero"
)

type Photo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WeddingID  uint      `gorm:"not null;index" json:"wedding_id"`
	Wedding    Wedding   `gorm:"foreignKey:WeddingID" json:"-"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	Caption    string    `gorm:"type:text" json:"caption,omitempty"`
	IsHero     bool      `gorm:"not null;default:false" json:"is_hero"`
	PhotoType  string    `gorm:"size:50;not null;default:'memory'" json:"photo_type"` // couple, memory, hero
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

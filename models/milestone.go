package models

import (
	"time"
)

type Milestone struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	WeddingID   uint       `gorm:"not null;index" json:"wedding_id"`
	Wedding     Wedding    `gorm:"foreignKey:WeddingID" json:"-"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	DueDate     time.Time  `gorm:"not null" json:"due_date"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Priority    string     `gorm:"size:20;not null;default:'medium'" json:"priority"`
	AssignedTo  string     `gorm:"size:255" json:"assigned_to,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

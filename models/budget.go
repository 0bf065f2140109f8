package models

import (
	"time"
)

type BudgetCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WeddingID    uint      `gorm:"not null;index" json:"wedding_id"`
	Wedding      Wedding   `gorm:"foreignKey:WeddingID" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	BudgetAmount int       `gorm:"not null;default:0" json:"budget_amount"`
	SpentAmount  int       `gorm:"not null;default:0" json:"spent_amount"`
	IsArchived   bool      `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt    time.Time `json:"created_at"`
}

type BudgetItem struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Category      BudgetCategory `gorm:"foreignKey:CategoryID" json:"-"`
	WeddingID     uint           `gorm:"not null;index" json:"wedding_id"`
	Wedding       Wedding        `gorm:"foreignKey:WeddingID" json:"-"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	EstimatedCost int            `gorm:"not null;default:0" json:"estimated_cost"`
	ActualCost    int            `gorm:"not null;default:0" json:"actual_cost"`
	Vendor        string         `gorm:"size:255" json:"vendor,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	IsPaid        bool           `gorm:"not null;default:false" json:"is_paid"`
	DueDate       *time.Time     `json:"due_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

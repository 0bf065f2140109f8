package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleUser         = "user"
	RoleAdmin        = "admin"
	RoleGuestManager = "guest_manager"
)

type User struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Email               string     `gorm:"size:255;not null;unique" json:"email"`
	Password            string     `gorm:"size:255;not null" json:"-"`
	Name                string     `gorm:"size:255;not null" json:"name"`
	IsAdmin             bool       `gorm:"not null;default:false" json:"is_admin"`
	Role                string     `gorm:"size:50;not null;default:'user'" json:"role"` // user, admin, guest_manager
	HasPaidSubscription bool       `gorm:"not null;default:false" json:"has_paid_subscription"`
	PaymentMethod       string     `gorm:"size:50" json:"payment_method,omitempty"`
	PaymentOrderID      string     `gorm:"size:255" json:"payment_order_id,omitempty"`
	PaymentDate         *time.Time `json:"payment_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	Weddings            []Wedding  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeSave hashes the password before saving to the database
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password != "" && !isBcryptHash(u.Password) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// ValidatePassword checks if the provided password matches the stored hash
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (s[0:4] == "$2a$" || s[0:4] == "$2b$" || s[0:4] == "$2y$")
}

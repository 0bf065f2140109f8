package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Coordinates is stored as a JSON column on weddings.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Coordinates) Scan(value interface{}) error {
	if value == nil {
		*c = Coordinates{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return errors.New("unsupported type for coordinates column")
}

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for string list column")
}

type Wedding struct {
	ID                 uint         `gorm:"primaryKey" json:"id"`
	UserID             uint         `gorm:"not null;index" json:"user_id"`
	User               User         `gorm:"foreignKey:UserID" json:"-"`
	UniqueURL          string       `gorm:"size:255;not null;unique" json:"unique_url"`
	Bride              string       `gorm:"size:255;not null" json:"bride"`
	Groom              string       `gorm:"size:255;not null" json:"groom"`
	WeddingDate        time.Time    `gorm:"not null" json:"wedding_date"`
	WeddingTime        string       `gorm:"size:50;not null;default:'4:00 PM'" json:"wedding_time"`
	Timezone           string       `gorm:"size:100;not null;default:'Asia/Tashkent'" json:"timezone"`
	Venue              string       `gorm:"size:500;not null" json:"venue"`
	VenueAddress       string       `gorm:"type:text;not null" json:"venue_address"`
	VenueCoordinates   *Coordinates `gorm:"type:json" json:"venue_coordinates,omitempty"`
	MapPinURL          string       `gorm:"type:text" json:"map_pin_url,omitempty"`
	Story              string       `gorm:"type:text" json:"story,omitempty"`
	WelcomeMessage     string       `gorm:"type:text" json:"welcome_message,omitempty"`
	DearGuestMessage   string       `gorm:"type:text" json:"dear_guest_message,omitempty"`
	CouplePhotoURL     string       `gorm:"type:text" json:"couple_photo_url,omitempty"`
	BackgroundTemplate string       `gorm:"size:100;default:'template1'" json:"background_template"`
	Template           string       `gorm:"size:100;not null;default:'garden-romance'" json:"template"`
	PrimaryColor       string       `gorm:"size:20;not null;default:'#D4B08C'" json:"primary_color"`
	AccentColor        string       `gorm:"size:20;not null;default:'#89916B'" json:"accent_color"`
	BackgroundMusicURL string       `gorm:"type:text" json:"background_music_url,omitempty"`
	IsPublic           bool         `gorm:"not null;default:true" json:"is_public"`
	AvailableLanguages StringList   `gorm:"type:json" json:"available_languages"`
	DefaultLanguage    string       `gorm:"size:10;not null;default:'en'" json:"default_language"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

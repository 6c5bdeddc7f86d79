package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated account
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName      string `gorm:"not null" json:"first_name"`
	LastName       string `gorm:"not null" json:"last_name"`
	Email          string `gorm:"unique;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// AuthToken is an opaque bearer token issued at login
type AuthToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

package models

import (
	"time"
)

// Admin is a separate identity space from User. Admin credentials never live
// in the users table and vice versa.
type Admin struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
}

package models

import (
	"time"

	"github.com/lib/pq"
)

// Report lifecycle. Pending is the only non-terminal state; once a report is
// Verified or Invalid it never transitions again.
const (
	StatusPending  = "Pending"
	StatusVerified = "Verified"
	StatusInvalid  = "Invalid"

	MaxReportPhotos   = 5
	MaxPhotoSizeBytes = 5 * 1024 * 1024
)

type PestReport struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"userId"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Location    string         `gorm:"not null" json:"location"`
	PestTypes   pq.StringArray `gorm:"type:text[];not null" json:"pestTypes"`
	Description string         `gorm:"type:text" json:"description"`
	Photos      pq.StringArray `gorm:"type:text[]" json:"photos"`
	Status      string         `gorm:"not null;default:'Pending'" json:"status"`
	SubmittedAt time.Time      `gorm:"autoCreateTime;index" json:"submittedAt"`
	VerifiedBy  *uint          `json:"verifiedBy"` // admin id, set only once the report leaves Pending
}

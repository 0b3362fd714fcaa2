package models

import (
	"time"
)

// AdminAction is the audit trail of the review workflow: one row per status
// change, recording which admin did what to which report.
type AdminAction struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID   uint      `gorm:"not null;index" json:"adminId"`
	ReportID  uint      `gorm:"not null;index" json:"reportId"`
	Action    string    `gorm:"not null;type:varchar(20)" json:"action"` // Verified or Invalid
	Reason    string    `gorm:"type:text" json:"reason"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

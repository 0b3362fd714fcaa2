package models

import (
	"time"
)

const (
	ActionLogin           = "Login"
	ActionReportSubmitted = "ReportSubmitted"
	ActionProfileUpdated  = "ProfileUpdated"
	ActionRankUpdated     = "RankUpdated"
)

// UserLog is append-only: rows are created as side effects of account and
// report events and never mutated or deleted.
type UserLog struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action       string    `gorm:"not null;type:varchar(50)" json:"action"`
	PointsChange int       `gorm:"default:0" json:"pointsChange"`
	OldRank      string    `json:"oldRank"`
	NewRank      string    `json:"newRank"`
	Details      string    `gorm:"type:text" json:"details"`
	Timestamp    time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

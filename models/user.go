package models

import (
	"time"
)

// Rank tiers, derived from total points. A verified report is worth a fixed
// five points; the ladder is applied to the new total after the award.
const (
	RankNovice       = "Novice"
	RankIntermediate = "Intermediate"
	RankAdvanced     = "Advanced"
	RankExpert       = "Expert"

	PointsPerVerifiedReport = 5
)

type User struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Username    string    `gorm:"unique;not null" json:"username"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Phone       string    `gorm:"unique;not null" json:"phone"`
	Password    string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	TotalPoints int       `gorm:"default:0" json:"total_points"`
	Rank        string    `gorm:"default:'Novice'" json:"rank"`
}

// RankForPoints maps a point total onto its tier. Boundaries are inclusive on
// the lower band: 10 is still Novice, 11 is Intermediate.
func RankForPoints(points int) string {
	switch {
	case points <= 10:
		return RankNovice
	case points <= 15:
		return RankIntermediate
	case points <= 25:
		return RankAdvanced
	default:
		return RankExpert
	}
}

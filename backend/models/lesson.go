package models

import "time"

type Lesson struct {
	ID              int       `gorm:"primaryKey" json:"Id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	TierRequired    int       `gorm:"default:1" json:"tier_required"` // 1=무료, 2=프리미엄, 3=VIP
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Lesson) TableName() string { return "lesson" }

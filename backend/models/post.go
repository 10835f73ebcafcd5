package models

import "time"

// Post is a community board entry. FlagReason is meaningful only while
// HasFlagged is set; unflagging clears both.
type Post struct {
	ID         int       `gorm:"primaryKey" json:"Id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `json:"content"`
	UserID     LookupID  `json:"user_id"`
	HasFlagged bool      `gorm:"default:false" json:"has_flagged"`
	FlagReason *string   `json:"flag_reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Post) TableName() string { return "post" }

package models

import "time"

// Favorite is a join record over (user, lesson). Existence means favorited;
// at most one record exists per pair.
type Favorite struct {
	ID        int       `gorm:"primaryKey" json:"Id"`
	UserID    LookupID  `gorm:"index:idx_fav_user_lesson,unique" json:"user_id"`
	LessonID  LookupID  `gorm:"index:idx_fav_user_lesson,unique" json:"lesson_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string { return "favorite" }

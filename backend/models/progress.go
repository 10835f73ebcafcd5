package models

import "time"

// Progress tracks completion of one lesson by one user. At most one record
// exists per (user_id, lesson_id) pair; the unique index backs the invariant
// and progress writes are additionally serialized per pair in the service
// layer.
type Progress struct {
	ID          int       `gorm:"primaryKey" json:"Id"`
	UserID      LookupID  `gorm:"index:idx_user_lesson,unique" json:"user_id"`
	LessonID    LookupID  `gorm:"index:idx_user_lesson,unique" json:"lesson_id"`
	ProgressPct int       `json:"progress_pct"` // 0..100
	LastSeenAt  time.Time `json:"last_seen_at"`
}

func (Progress) TableName() string { return "lesson_progress" }

func (p Progress) Completed() bool { return p.ProgressPct == 100 }

func (p Progress) InProgress() bool { return p.ProgressPct > 0 && p.ProgressPct < 100 }

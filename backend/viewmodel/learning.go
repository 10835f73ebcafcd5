package viewmodel

import (
	"math"

	"hakwon/backend/models"
	"hakwon/backend/utils"
)

// Learning feed filters.
const (
	FilterAll        = "all"
	FilterInProgress = "in-progress"
	FilterCompleted  = "completed"
)

// LearningItem is a progress record with its lesson joined on. When the
// lesson no longer exists the placeholder lesson keeps the row renderable.
// LastSeenLabel carries the "마지막 학습" display string.
type LearningItem struct {
	models.Progress
	Lesson        models.Lesson `json:"lesson"`
	LastSeenLabel string        `json:"last_seen_label"`
}

// BuildLearningList joins each progress record to its lesson and applies
// the all / in-progress / completed filter. Unknown filter values degrade
// to "all".
func BuildLearningList(progress []models.Progress, lessons []models.Lesson, filter string) []LearningItem {
	items := make([]LearningItem, 0, len(progress))
	for _, p := range progress {
		switch filter {
		case FilterInProgress:
			if !p.InProgress() {
				continue
			}
		case FilterCompleted:
			if !p.Completed() {
				continue
			}
		}

		item := LearningItem{
			Progress:      p,
			Lesson:        models.Lesson{Title: UnknownName},
			LastSeenLabel: utils.FormatRelativeTime(p.LastSeenAt),
		}
		if lesson := LessonByID(lessons, p.LessonID.Int()); lesson != nil {
			item.Lesson = *lesson
		}
		items = append(items, item)
	}
	return items
}

// LearningStats is the summary block on the my-learning page.
type LearningStats struct {
	TotalLessons    int `json:"total_lessons"`
	Completed       int `json:"completed"`
	InProgress      int `json:"in_progress"`
	AverageProgress int `json:"average_progress"`
}

// SummarizeLearning computes the stats over all of a viewer's progress.
func SummarizeLearning(progress []models.Progress) LearningStats {
	stats := LearningStats{TotalLessons: len(progress)}
	sum := 0
	for _, p := range progress {
		sum += p.ProgressPct
		if p.Completed() {
			stats.Completed++
		} else if p.InProgress() {
			stats.InProgress++
		}
	}
	if len(progress) > 0 {
		stats.AverageProgress = int(math.Round(float64(sum) / float64(len(progress))))
	}
	return stats
}

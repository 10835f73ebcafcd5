package viewmodel

import (
	"sort"
	"strings"

	"hakwon/backend/models"
	"hakwon/backend/policy"
)

// Sort keys shared by the lesson and post pipelines.
const (
	SortNewest   = "newest"
	SortPopular  = "popular" // placeholder ordering, see DESIGN.md
	SortProgress = "progress"
)

// TierAll is the sentinel that disables the tier filter.
const TierAll = 0

// LessonCriteria are the viewer-selected inputs of the lesson pipeline.
// Zero values disable the corresponding step, so absent or malformed
// criteria degrade to "no filtering" rather than failing.
type LessonCriteria struct {
	Query string
	Tier  int
	Sort  string
}

// LessonView is a lesson annotated for one viewer.
type LessonView struct {
	models.Lesson
	TierName    string `json:"tier_name"`
	TierBadge   string `json:"tier_badge"`
	Locked      bool   `json:"locked"`
	ProgressPct int    `json:"progress_pct"`
	IsFavorited bool   `json:"is_favorited"`
}

// BuildLessonList runs the lesson pipeline: free-text filter over
// title+description, exact tier filter, ordering, then per-viewer
// annotation (tier label/badge, upgrade lock, progress, favorite).
func BuildLessonList(lessons []models.Lesson, progress []models.Progress, favorites []models.Favorite, viewer models.User, crit LessonCriteria) []LessonView {
	filtered := make([]models.Lesson, 0, len(lessons))
	query := strings.ToLower(strings.TrimSpace(crit.Query))
	for _, lesson := range lessons {
		if query != "" &&
			!strings.Contains(strings.ToLower(lesson.Title), query) &&
			!strings.Contains(strings.ToLower(lesson.Description), query) {
			continue
		}
		if crit.Tier != TierAll && lesson.TierRequired != crit.Tier {
			continue
		}
		filtered = append(filtered, lesson)
	}

	pctByLesson := progressByLesson(progress)

	switch crit.Sort {
	case SortNewest:
		// Ids are assigned in creation order, so they stand in for a
		// creation timestamp.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID > filtered[j].ID
		})
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID < filtered[j].ID
		})
	case SortProgress:
		sort.SliceStable(filtered, func(i, j int) bool {
			return pctByLesson[filtered[i].ID] > pctByLesson[filtered[j].ID]
		})
	}

	favorited := make(map[int]bool, len(favorites))
	for _, f := range favorites {
		favorited[f.LessonID.Int()] = true
	}

	views := make([]LessonView, 0, len(filtered))
	for _, lesson := range filtered {
		level := policy.Level(lesson.TierRequired)
		views = append(views, LessonView{
			Lesson:      lesson,
			TierName:    level.Label(),
			TierBadge:   level.Badge(),
			Locked:      policy.Locked(level, viewer),
			ProgressPct: pctByLesson[lesson.ID],
			IsFavorited: favorited[lesson.ID],
		})
	}
	return views
}

// progressByLesson indexes a viewer's progress by lesson id. Lessons with
// no record are simply absent and read back as 0.
func progressByLesson(progress []models.Progress) map[int]int {
	out := make(map[int]int, len(progress))
	for _, p := range progress {
		out[p.LessonID.Int()] = p.ProgressPct
	}
	return out
}

// LessonStats is the summary block under the lesson list.
type LessonStats struct {
	Total     int `json:"total"`
	Free      int `json:"free"`
	Learning  int `json:"learning"`
	Completed int `json:"completed"`
}

// SummarizeLessons computes the stats over the unfiltered collections.
func SummarizeLessons(lessons []models.Lesson, progress []models.Progress) LessonStats {
	stats := LessonStats{Total: len(lessons), Learning: len(progress)}
	for _, lesson := range lessons {
		if lesson.TierRequired == int(policy.LevelFree) {
			stats.Free++
		}
	}
	for _, p := range progress {
		if p.Completed() {
			stats.Completed++
		}
	}
	return stats
}

// RelatedLessons picks up to limit other lessons of the same tier.
func RelatedLessons(lessons []models.Lesson, base models.Lesson, limit int) []models.Lesson {
	related := make([]models.Lesson, 0, limit)
	for _, lesson := range lessons {
		if lesson.ID == base.ID || lesson.TierRequired != base.TierRequired {
			continue
		}
		related = append(related, lesson)
		if len(related) == limit {
			break
		}
	}
	return related
}

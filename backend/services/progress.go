package services

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"hakwon/backend/models"
	"hakwon/backend/store"
)

const progressStripes = 32

// ProgressService owns the per-lesson progress upsert. The read-then-write
// is serialized per (user, lesson) pair through striped locks, so two
// concurrent updates for the same pair cannot both observe "not found" and
// create a second record.
type ProgressService struct {
	store store.Store
	locks [progressStripes]sync.Mutex
}

func NewProgressService(st store.Store) *ProgressService {
	return &ProgressService{store: st}
}

func (s *ProgressService) stripe(userID, lessonID int) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte{byte(userID), byte(userID >> 8), byte(userID >> 16), byte(userID >> 24)})
	h.Write([]byte{byte(lessonID), byte(lessonID >> 8), byte(lessonID >> 16), byte(lessonID >> 24)})
	return &s.locks[h.Sum32()%progressStripes]
}

// Update upserts the viewer's progress on a lesson: an existing record keeps
// its identity and all fields except progress_pct and last_seen_at; a missing
// record is created. pct is clamped into [0,100].
func (s *ProgressService) Update(ctx context.Context, userID, lessonID, pct int) (*models.Progress, error) {
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}

	mu := s.stripe(userID, lessonID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.store.ProgressFor(ctx, userID, lessonID)
	switch {
	case err == nil:
		existing.ProgressPct = pct
		existing.LastSeenAt = time.Now()
		if err := s.store.UpdateProgress(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, store.ErrNotFound):
		progress := &models.Progress{
			UserID:      models.LookupID(userID),
			LessonID:    models.LookupID(lessonID),
			ProgressPct: pct,
			LastSeenAt:  time.Now(),
		}
		if err := s.store.CreateProgress(ctx, progress); err != nil {
			return nil, err
		}
		return progress, nil
	default:
		return nil, err
	}
}

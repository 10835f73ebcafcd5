// Package services holds the write-path logic the controllers delegate to:
// the favorite toggle, the serialized progress upsert, post moderation and
// membership checkout. Each operation is a single request against the store;
// nothing here queues, batches or retries.
package services

import (
	"context"
	"errors"
	"time"

	"hakwon/backend/models"
	"hakwon/backend/notify"
	"hakwon/backend/store"
)

var (
	ErrAlreadyFavorited = errors.New("이미 즐겨찾기에 추가된 레슨입니다.")
	ErrNotFavorited     = errors.New("즐겨찾기를 찾을 수 없습니다.")
)

type FavoriteService struct {
	store    store.Store
	notifier notify.Notifier
}

func NewFavoriteService(st store.Store, n notify.Notifier) *FavoriteService {
	return &FavoriteService{store: st, notifier: n}
}

// Add favorites a lesson for a user. A second add for the same pair is a
// conflict, not an idempotent no-op: the caller surfaces it.
func (s *FavoriteService) Add(ctx context.Context, userID, lessonID int) (*models.Favorite, error) {
	favorite := &models.Favorite{
		UserID:    models.LookupID(userID),
		LessonID:  models.LookupID(lessonID),
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrAlreadyFavorited
		}
		s.notifier.Notify(notify.KindError, "즐겨찾기 처리 중 오류가 발생했습니다.")
		return nil, err
	}
	s.notifier.Notify(notify.KindSuccess, "즐겨찾기에 추가되었습니다.")
	return favorite, nil
}

// Remove unfavorites a lesson. Removing a pair that does not exist fails.
func (s *FavoriteService) Remove(ctx context.Context, userID, lessonID int) error {
	if err := s.store.DeleteFavorite(ctx, userID, lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFavorited
		}
		s.notifier.Notify(notify.KindError, "즐겨찾기 처리 중 오류가 발생했습니다.")
		return err
	}
	s.notifier.Notify(notify.KindSuccess, "즐겨찾기에서 제거되었습니다.")
	return nil
}

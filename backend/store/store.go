package store

import (
	"context"
	"errors"

	"hakwon/backend/models"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicate means a write would violate a uniqueness invariant,
	// e.g. a second Favorite for the same (user, lesson) pair.
	ErrDuplicate = errors.New("store: duplicate record")
)

// Store is the single collection-access contract. Exactly one implementation
// is active at a time, selected by configuration: the postgres-backed store
// for normal operation, or the fixture-seeded memory store as fallback mode.
//
// Read methods degrade to empty results plus an error; write methods report
// conflicts and missing records through the sentinel errors above. List
// results are fresh slices the caller may reorder freely.
type Store interface {
	ListLessons(ctx context.Context) ([]models.Lesson, error)
	GetLesson(ctx context.Context, id int) (*models.Lesson, error)
	CreateLesson(ctx context.Context, lesson *models.Lesson) error
	UpdateLesson(ctx context.Context, lesson *models.Lesson) error
	DeleteLesson(ctx context.Context, id int) error

	ListProgress(ctx context.Context) ([]models.Progress, error)
	ProgressByUser(ctx context.Context, userID int) ([]models.Progress, error)
	ProgressFor(ctx context.Context, userID, lessonID int) (*models.Progress, error)
	CreateProgress(ctx context.Context, progress *models.Progress) error
	UpdateProgress(ctx context.Context, progress *models.Progress) error

	FavoritesByUser(ctx context.Context, userID int) ([]models.Favorite, error)
	CreateFavorite(ctx context.Context, favorite *models.Favorite) error
	DeleteFavorite(ctx context.Context, userID, lessonID int) error

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id int) error

	ListTiers(ctx context.Context) ([]models.MembershipTier, error)
	GetTier(ctx context.Context, id int) (*models.MembershipTier, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

package store

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"hakwon/backend/models"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// MemoryStore is the fallback Store: collections held as in-memory slices
// seeded from the bundled fixture data. All reads return copies so callers
// can reorder and annotate freely without touching the seed state.
type MemoryStore struct {
	mu        sync.RWMutex
	lessons   []models.Lesson
	progress  []models.Progress
	favorites []models.Favorite
	posts     []models.Post
	tiers     []models.MembershipTier
	users     []models.User
}

// NewMemoryStore returns a store seeded from the embedded fixtures.
func NewMemoryStore() (*MemoryStore, error) {
	s := &MemoryStore{}
	for name, target := range map[string]any{
		"lessons":         &s.lessons,
		"lessonProgress":  &s.progress,
		"favorites":       &s.favorites,
		"posts":           &s.posts,
		"membershipTiers": &s.tiers,
		"users":           &s.users,
	} {
		data, err := fixturesFS.ReadFile("fixtures/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("load fixture %s: %w", name, err)
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("decode fixture %s: %w", name, err)
		}
	}
	return s, nil
}

// NewEmptyMemoryStore returns a store with no seed data, for tests.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func nextLessonID(lessons []models.Lesson) int {
	max := 0
	for _, l := range lessons {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}

func (s *MemoryStore) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out, nil
}

func (s *MemoryStore) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lessons {
		if l.ID == id {
			lesson := l
			return &lesson, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lesson.ID = nextLessonID(s.lessons)
	s.lessons = append(s.lessons, *lesson)
	return nil
}

func (s *MemoryStore) UpdateLesson(ctx context.Context, lesson *models.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lessons {
		if s.lessons[i].ID == lesson.ID {
			s.lessons[i] = *lesson
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteLesson(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lessons {
		if s.lessons[i].ID == id {
			s.lessons = append(s.lessons[:i], s.lessons[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListProgress(ctx context.Context) ([]models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Progress, len(s.progress))
	copy(out, s.progress)
	return out, nil
}

func (s *MemoryStore) ProgressByUser(ctx context.Context, userID int) ([]models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Progress
	for _, p := range s.progress {
		if p.UserID.Int() == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) ProgressFor(ctx context.Context, userID, lessonID int) (*models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.progress {
		if p.UserID.Int() == userID && p.LessonID.Int() == lessonID {
			progress := p
			return &progress, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateProgress(ctx context.Context, progress *models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := 0
	for _, p := range s.progress {
		if p.UserID == progress.UserID && p.LessonID == progress.LessonID {
			return ErrDuplicate
		}
		if p.ID > max {
			max = p.ID
		}
	}
	progress.ID = max + 1
	s.progress = append(s.progress, *progress)
	return nil
}

func (s *MemoryStore) UpdateProgress(ctx context.Context, progress *models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.progress {
		if s.progress[i].ID == progress.ID {
			s.progress[i] = *progress
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) FavoritesByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Favorite
	for _, f := range s.favorites {
		if f.UserID.Int() == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := 0
	for _, f := range s.favorites {
		if f.UserID == favorite.UserID && f.LessonID == favorite.LessonID {
			return ErrDuplicate
		}
		if f.ID > max {
			max = f.ID
		}
	}
	favorite.ID = max + 1
	s.favorites = append(s.favorites, *favorite)
	return nil
}

func (s *MemoryStore) DeleteFavorite(ctx context.Context, userID, lessonID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.favorites {
		if f.UserID.Int() == userID && f.LessonID.Int() == lessonID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *MemoryStore) GetPost(ctx context.Context, id int) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := 0
	for _, p := range s.posts {
		if p.ID > max {
			max = p.ID
		}
	}
	post.ID = max + 1
	s.posts = append(s.posts, *post)
	return nil
}

func (s *MemoryStore) UpdatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = *post
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeletePost(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListTiers(ctx context.Context) ([]models.MembershipTier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MembershipTier, len(s.tiers))
	copy(out, s.tiers)
	return out, nil
}

func (s *MemoryStore) GetTier(ctx context.Context, id int) (*models.MembershipTier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tiers {
		if t.ID == id {
			tier := t
			return &tier, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return ErrNotFound
}

// SeedUser inserts a user directly, for tests.
func (s *MemoryStore) SeedUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hakwon/backend/models"
)

// GormStore is the database-backed Store implementation.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the collection tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.MembershipTier{},
		&models.Lesson{},
		&models.Progress{},
		&models.Favorite{},
		&models.Post{},
	)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

func (s *GormStore) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.db.WithContext(ctx).Order("id").Find(&lessons).Error
	return lessons, translate(err)
}

func (s *GormStore) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.WithContext(ctx).First(&lesson, id).Error; err != nil {
		return nil, translate(err)
	}
	return &lesson, nil
}

func (s *GormStore) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	return translate(s.db.WithContext(ctx).Create(lesson).Error)
}

func (s *GormStore) UpdateLesson(ctx context.Context, lesson *models.Lesson) error {
	res := s.db.WithContext(ctx).Model(&models.Lesson{ID: lesson.ID}).Updates(lesson)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteLesson(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.Lesson{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListProgress(ctx context.Context) ([]models.Progress, error) {
	var progress []models.Progress
	err := s.db.WithContext(ctx).Order("id").Find(&progress).Error
	return progress, translate(err)
}

func (s *GormStore) ProgressByUser(ctx context.Context, userID int) ([]models.Progress, error) {
	var progress []models.Progress
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&progress).Error
	return progress, translate(err)
}

func (s *GormStore) ProgressFor(ctx context.Context, userID, lessonID int) (*models.Progress, error) {
	var progress models.Progress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error
	if err != nil {
		return nil, translate(err)
	}
	return &progress, nil
}

func (s *GormStore) CreateProgress(ctx context.Context, progress *models.Progress) error {
	return translate(s.db.WithContext(ctx).Create(progress).Error)
}

func (s *GormStore) UpdateProgress(ctx context.Context, progress *models.Progress) error {
	res := s.db.WithContext(ctx).Save(progress)
	if res.Error != nil {
		return translate(res.Error)
	}
	return nil
}

func (s *GormStore) FavoritesByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error
	return favorites, translate(err)
}

func (s *GormStore) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND lesson_id = ?", favorite.UserID.Int(), favorite.LessonID.Int()).
		Count(&count).Error
	if err != nil {
		return translate(err)
	}
	if count > 0 {
		return ErrDuplicate
	}
	return translate(s.db.WithContext(ctx).Create(favorite).Error)
}

func (s *GormStore) DeleteFavorite(ctx context.Context, userID, lessonID int) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).Order("id").Find(&posts).Error
	return posts, translate(err)
}

func (s *GormStore) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (s *GormStore) CreatePost(ctx context.Context, post *models.Post) error {
	return translate(s.db.WithContext(ctx).Create(post).Error)
}

func (s *GormStore) UpdatePost(ctx context.Context, post *models.Post) error {
	// Save instead of Updates: unflagging writes zero values (false, nil).
	res := s.db.WithContext(ctx).Save(post)
	if res.Error != nil {
		return translate(res.Error)
	}
	return nil
}

func (s *GormStore) DeletePost(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListTiers(ctx context.Context) ([]models.MembershipTier, error) {
	var tiers []models.MembershipTier
	err := s.db.WithContext(ctx).Order("id").Find(&tiers).Error
	return tiers, translate(err)
}

func (s *GormStore) GetTier(ctx context.Context, id int) (*models.MembershipTier, error) {
	var tier models.MembershipTier
	if err := s.db.WithContext(ctx).First(&tier, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tier, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, translate(err)
}

func (s *GormStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, user *models.User) error {
	res := s.db.WithContext(ctx).Save(user)
	if res.Error != nil {
		return translate(res.Error)
	}
	return nil
}

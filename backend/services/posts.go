package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hakwon/backend/models"
	"hakwon/backend/notify"
	"hakwon/backend/store"
)

var (
	ErrEmptyPostFields = errors.New("제목과 내용을 모두 입력해주세요.")
	ErrEmptyFlagReason = errors.New("신고 사유를 입력해주세요.")
	ErrOwnPost         = errors.New("자신의 게시글은 신고할 수 없습니다.")
	ErrPostNotFound    = errors.New("게시글을 찾을 수 없습니다.")
)

type PostService struct {
	store    store.Store
	notifier notify.Notifier
}

func NewPostService(st store.Store, n notify.Notifier) *PostService {
	return &PostService{store: st, notifier: n}
}

// Create validates the required fields before any request is issued, then
// writes the post for the given author.
func (s *PostService) Create(ctx context.Context, author models.User, title, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrEmptyPostFields
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		UserID:    models.LookupID(author.ID),
		CreatedAt: time.Now(),
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		s.notifier.Notify(notify.KindError, "게시글 작성에 실패했습니다.")
		return nil, err
	}
	s.notifier.Notify(notify.KindSuccess, "게시글이 작성되었습니다.")
	return post, nil
}

// Flag marks a post for moderator review. Any viewer except the author may
// flag, and a reason is required.
func (s *PostService) Flag(ctx context.Context, viewer models.User, postID int, reason string) (*models.Post, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyFlagReason
	}

	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID.Int() == viewer.ID {
		return nil, ErrOwnPost
	}

	post.HasFlagged = true
	post.FlagReason = &reason
	if err := s.store.UpdatePost(ctx, post); err != nil {
		s.notifier.Notify(notify.KindError, "신고 처리에 실패했습니다.")
		return nil, err
	}
	s.notifier.Notify(notify.KindSuccess, "게시글이 신고되었습니다.")
	return post, nil
}

// Unflag clears the flag state and reason. Admin-only; the route gate
// enforces the role.
func (s *PostService) Unflag(ctx context.Context, postID int) (*models.Post, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.HasFlagged = false
	post.FlagReason = nil
	if err := s.store.UpdatePost(ctx, post); err != nil {
		s.notifier.Notify(notify.KindError, "신고 해제에 실패했습니다.")
		return nil, err
	}
	s.notifier.Notify(notify.KindSuccess, "신고가 해제되었습니다.")
	return post, nil
}

// Delete removes a post outright. Admin-only.
func (s *PostService) Delete(ctx context.Context, postID int) error {
	if err := s.store.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		s.notifier.Notify(notify.KindError, "게시글 삭제에 실패했습니다.")
		return err
	}
	s.notifier.Notify(notify.KindSuccess, "게시글이 삭제되었습니다.")
	return nil
}

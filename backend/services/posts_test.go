package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hakwon/backend/models"
	"hakwon/backend/notify"
	"hakwon/backend/store"
)

func TestPostCreateValidatesFields(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewPostService(st, notify.Nop{})
	author := models.User{ID: 1, Name: "김민준"}

	_, err := svc.Create(context.Background(), author, "", "내용")
	assert.ErrorIs(t, err, ErrEmptyPostFields)

	_, err = svc.Create(context.Background(), author, "제목", "   ")
	assert.ErrorIs(t, err, ErrEmptyPostFields)

	// Validation runs before any write.
	posts, _ := st.ListPosts(context.Background())
	assert.Empty(t, posts)
}

func TestPostCreate(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewPostService(st, notify.Nop{})
	author := models.User{ID: 1, Name: "김민준"}

	post, err := svc.Create(context.Background(), author, "  조사 질문  ", "은/는과 이/가 차이")
	assert.NoError(t, err)
	assert.Equal(t, "조사 질문", post.Title)
	assert.Equal(t, 1, post.UserID.Int())
	assert.False(t, post.HasFlagged)
}

func TestPostFlagRequiresReason(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewPostService(st, notify.Nop{})
	author := models.User{ID: 1}
	viewer := models.User{ID: 4}

	post, err := svc.Create(context.Background(), author, "제목", "내용")
	assert.NoError(t, err)

	_, err = svc.Flag(context.Background(), viewer, post.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyFlagReason)
}

func TestPostFlagOwnPostRejected(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewPostService(st, notify.Nop{})
	author := models.User{ID: 1}

	post, err := svc.Create(context.Background(), author, "제목", "내용")
	assert.NoError(t, err)

	_, err = svc.Flag(context.Background(), author, post.ID, "사유")
	assert.ErrorIs(t, err, ErrOwnPost)
}

func TestPostFlagAndUnflag(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewPostService(st, notify.Nop{})
	author := models.User{ID: 1}
	viewer := models.User{ID: 4}

	post, err := svc.Create(context.Background(), author, "제목", "내용")
	assert.NoError(t, err)

	flagged, err := svc.Flag(context.Background(), viewer, post.ID, "불법 공유 링크 게시")
	assert.NoError(t, err)
	assert.True(t, flagged.HasFlagged)
	assert.Equal(t, "불법 공유 링크 게시", *flagged.FlagReason)

	unflagged, err := svc.Unflag(context.Background(), post.ID)
	assert.NoError(t, err)
	assert.False(t, unflagged.HasFlagged)
	assert.Nil(t, unflagged.FlagReason)

	stored, err := st.GetPost(context.Background(), post.ID)
	assert.NoError(t, err)
	assert.False(t, stored.HasFlagged)
	assert.Nil(t, stored.FlagReason)
}

func TestPostFlagMissingPost(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewPostService(st, notify.Nop{})
	viewer := models.User{ID: 4}

	_, err := svc.Flag(context.Background(), viewer, 999, "사유")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostDelete(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewPostService(st, notify.Nop{})
	author := models.User{ID: 1}

	post, err := svc.Create(context.Background(), author, "제목", "내용")
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), post.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), post.ID), ErrPostNotFound)
}

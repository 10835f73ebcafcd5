package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hakwon/backend/notify"
	"hakwon/backend/store"
)

func TestFavoriteAddAndRemove(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewFavoriteService(st, notify.Nop{})

	favorite, err := svc.Add(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, favorite.UserID.Int())
	assert.Equal(t, 3, favorite.LessonID.Int())

	favorites, err := st.FavoritesByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)

	assert.NoError(t, svc.Remove(context.Background(), 1, 3))

	favorites, err = st.FavoritesByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoriteDoubleAddConflicts(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewFavoriteService(st, notify.Nop{})

	_, err := svc.Add(context.Background(), 1, 3)
	assert.NoError(t, err)

	_, err = svc.Add(context.Background(), 1, 3)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	favorites, err := st.FavoritesByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoriteRemoveMissingFails(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewFavoriteService(st, notify.Nop{})

	err := svc.Remove(context.Background(), 1, 3)
	assert.ErrorIs(t, err, ErrNotFavorited)
}

func TestFavoriteSamePairDifferentUsers(t *testing.T) {
	st := store.NewEmptyMemoryStore()
	svc := NewFavoriteService(st, notify.Nop{})

	_, err := svc.Add(context.Background(), 1, 3)
	assert.NoError(t, err)
	_, err = svc.Add(context.Background(), 2, 3)
	assert.NoError(t, err)

	forUser1, _ := st.FavoritesByUser(context.Background(), 1)
	forUser2, _ := st.FavoritesByUser(context.Background(), 2)
	assert.Len(t, forUser1, 1)
	assert.Len(t, forUser2, 1)
}

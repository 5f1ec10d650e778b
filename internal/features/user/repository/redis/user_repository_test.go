package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-backend/internal/features/user/models"
	"portal-backend/internal/platform/redis/redistest"
)

func TestGetMissingUser(t *testing.T) {
	_, client := redistest.New(t)
	user, err := NewUserRepository(client).GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	mr, client := redistest.New(t)
	repo := NewUserRepository(client)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, "42", func(u *models.User, exists bool) error {
		assert.False(t, exists)
		u.TelegramID = "42"
		u.CreatedAt = 100
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.CreatedAt)

	_, err = repo.Upsert(ctx, "42", func(u *models.User, exists bool) error {
		assert.True(t, exists)
		u.Configs++
		return nil
	})
	require.NoError(t, err)

	stored, err := mr.Get("user:42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"telegram_id":"42","created_at":100,"configs":1}`, stored)
}

func TestConcurrentUpsertsDoNotLoseUpdates(t *testing.T) {
	_, client := redistest.New(t)
	repo := NewUserRepository(client)
	ctx := context.Background()

	const workers = 4
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Upsert(ctx, "7", func(u *models.User, _ bool) error {
				u.TelegramID = "7"
				u.Configs++
				return nil
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	user, err := repo.GetByID(ctx, "7")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int(succeeded.Load()), user.Configs)
}

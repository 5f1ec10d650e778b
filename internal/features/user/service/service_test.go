package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-backend/internal/common/errors"
	userredis "portal-backend/internal/features/user/repository/redis"
	"portal-backend/internal/platform/redis/redistest"
	"portal-backend/internal/platform/telegram"
)

type stubMessenger struct {
	token     bool
	err       error
	parseMode string
	chatIDs   []int64
}

func (m *stubMessenger) HasToken() bool { return m.token }

func (m *stubMessenger) SendMessage(_ context.Context, chatID int64, _ string, parseMode string) error {
	if m.err != nil {
		return m.err
	}
	m.chatIDs = append(m.chatIDs, chatID)
	m.parseMode = parseMode
	return nil
}

func newService(t *testing.T, messenger *stubMessenger) (*userService, *time.Time) {
	_, client := redistest.New(t)
	clock := time.UnixMilli(1_700_000_000_000)
	svc := NewUserService(userredis.NewUserRepository(client), messenger).(*userService)
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func TestTouchLoginKeepsCreatedAt(t *testing.T) {
	svc, clock := newService(t, &stubMessenger{token: true})
	ctx := context.Background()

	require.NoError(t, svc.TouchLogin(ctx, "10"))
	*clock = clock.Add(time.Hour)
	require.NoError(t, svc.TouchLogin(ctx, "10"))

	user, err := svc.GetProfile(ctx, "10")
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000_000), user.CreatedAt)
	assert.Equal(t, clock.UnixMilli(), user.LastLogin)
}

func TestGetProfileStub(t *testing.T) {
	svc, _ := newService(t, &stubMessenger{token: true})

	user, err := svc.GetProfile(context.Background(), "99")
	require.NoError(t, err)
	assert.Equal(t, "99", user.TelegramID)
	assert.Zero(t, user.CreatedAt)
}

func TestRequestConfig(t *testing.T) {
	messenger := &stubMessenger{token: true}
	svc, _ := newService(t, messenger)
	ctx := context.Background()

	err := svc.RequestConfig(ctx, "10")
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	assert.Empty(t, messenger.chatIDs)

	require.NoError(t, svc.TouchLogin(ctx, "10"))
	require.NoError(t, svc.RequestConfig(ctx, "10"))
	require.NoError(t, svc.RequestConfig(ctx, "10"))

	assert.Equal(t, []int64{10, 10}, messenger.chatIDs)
	assert.Equal(t, "HTML", messenger.parseMode)

	user, err := svc.GetProfile(ctx, "10")
	require.NoError(t, err)
	assert.Equal(t, 2, user.Configs)
	assert.Equal(t, int64(1_700_000_000_000), user.LastConfigRequest)
}

func TestRequestConfigFailures(t *testing.T) {
	messenger := &stubMessenger{}
	svc, _ := newService(t, messenger)
	ctx := context.Background()
	require.NoError(t, svc.TouchLogin(ctx, "10"))

	err := svc.RequestConfig(ctx, "10")
	assert.True(t, errors.HasCode(err, errors.ErrCodeConfig))

	messenger.token = true
	messenger.err = &telegram.APIError{StatusCode: 403, Body: "blocked"}
	err = svc.RequestConfig(ctx, "10")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUpstream))

	user, err := svc.GetProfile(ctx, "10")
	require.NoError(t, err)
	assert.Zero(t, user.Configs, "failed dispatch must not count")
}

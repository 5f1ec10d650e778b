package errors

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeValidation:      http.StatusBadRequest,
		ErrCodeInvalidCode:     http.StatusBadRequest,
		ErrCodeUnauthorized:    http.StatusUnauthorized,
		ErrCodeForbidden:       http.StatusForbidden,
		ErrCodeNotFound:        http.StatusNotFound,
		ErrCodePoolExhausted:   http.StatusConflict,
		ErrCodeTooManyRequests: http.StatusTooManyRequests,
		ErrCodeUpstream:        http.StatusBadGateway,
		ErrCodeConfig:          http.StatusInternalServerError,
		ErrCodeStore:           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, New(code, "x").HTTPStatus(), code)
	}
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	inner := NewNotFoundError("country not found")
	wrapped := fmt.Errorf("dns: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, appErr)
	assert.True(t, HasCode(wrapped, ErrCodeNotFound))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrCodeNotFound))
}

func TestUpstreamErrorDetails(t *testing.T) {
	err := NewUpstreamError("failed to send code", 403, `{"ok":false}`, nil)

	assert.Equal(t, 403, err.Details["status"])
	assert.Equal(t, `{"ok":false}`, err.Details["details"])
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus())
}

func TestRateLimitRetryAfter(t *testing.T) {
	err := NewRateLimitError("slow down", 90*time.Minute+400*time.Millisecond)
	assert.Equal(t, int64(5401), err.Details["retry_after_seconds"])

	err = NewRateLimitError("slow down", 300*time.Millisecond)
	assert.Equal(t, int64(1), err.Details["retry_after_seconds"], "a pending wait never reads as zero")
}

func TestCeilSeconds(t *testing.T) {
	assert.Equal(t, int64(0), CeilSeconds(0))
	assert.Equal(t, int64(0), CeilSeconds(-time.Second))
	assert.Equal(t, int64(1), CeilSeconds(time.Nanosecond))
	assert.Equal(t, int64(2), CeilSeconds(2*time.Second))
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAllocation(t *testing.T) {
	before := testutil.ToFloat64(allocations.WithLabelValues("dns", "ok"))
	ObserveAllocation("dns", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(allocations.WithLabelValues("dns", "ok")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveHTTP(http.MethodGet, "/api/health", http.StatusOK, 3*time.Millisecond)
	ObserveOTP("user", "sent")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "portal_http_requests_total")
	assert.Contains(t, body, `portal_auth_otp_dispatches_total{realm="user",result="sent"}`)
}

package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipment-risk-assistant/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests are logged.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(1 * time.Second)
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(1 * time.Second)
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestIsTimeout verifies timeout classification for slow upstreams.
func TestIsTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client := NewClient(50 * time.Millisecond)
	_, err := client.Get(ts.URL)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

// TestIsTimeout_OtherErrors verifies non-timeout errors are not classified.
func TestIsTimeout_OtherErrors(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(http.ErrBodyNotAllowed))
}

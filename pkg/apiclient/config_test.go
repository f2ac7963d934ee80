package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/panelkit/pkg/apiclient"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := apiclient.DefaultConfig()
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "panelkit/1.0", cfg.UserAgent)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "panelkit/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	cfg := apiclient.DefaultConfig()
	cfg.BaseURL = server.URL + "/api/v1"

	client, err := apiclient.NewFromConfig(cfg)
	require.NoError(t, err)

	require.NoError(t, client.Get(context.Background(), "/health", nil))
}

func TestNewFromConfig_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	cfg := apiclient.DefaultConfig()
	cfg.BaseURL = "ftp://example.com"

	_, err := apiclient.NewFromConfig(cfg)
	assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL)
}

package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/panelkit/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.Equal(t, ".panelkit_token", cfg.TokenFile)
	assert.Equal(t, "/login", cfg.LoginRoute)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	cfg.TokenFile = filepath.Join(t.TempDir(), "token")
	cfg.LoginRoute = "/signin"

	nav := &recordingNav{}
	store, err := session.NewFromConfig(cfg, session.WithNavigator(nav))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Restore(ctx))
	assert.False(t, store.IsAuthenticated())

	store.Logout(ctx)
	assert.Equal(t, []string{"/signin"}, nav.routes)
}

func TestNewFromConfig_EmptyTokenFile(t *testing.T) {
	t.Parallel()

	cfg := session.Config{TokenFile: ""}
	_, err := session.NewFromConfig(cfg)
	assert.ErrorIs(t, err, session.ErrNoTokenPath)
}

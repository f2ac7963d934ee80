package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/panelkit/pkg/config"
)

type clientTestConfig struct {
	BaseURL string        `env:"TEST_API_BASE_URL" envDefault:"http://localhost:8080/api/v1"`
	Timeout time.Duration `env:"TEST_API_TIMEOUT" envDefault:"10s"`
}

type sessionTestConfig struct {
	TokenFile  string `env:"TEST_SESSION_TOKEN_FILE" envDefault:".panelkit_token"`
	LoginRoute string `env:"TEST_SESSION_LOGIN_ROUTE" envDefault:"/login"`
}

type requiredTestConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEST_API_BASE_URL")
	os.Unsetenv("TEST_API_TIMEOUT")
	config.ResetCache()

	var cfg clientTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_SESSION_TOKEN_FILE", "/var/lib/panelkit/token")
	t.Setenv("TEST_SESSION_LOGIN_ROUTE", "/signin")
	config.ResetCache()

	var cfg sessionTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/var/lib/panelkit/token", cfg.TokenFile)
	assert.Equal(t, "/signin", cfg.LoginRoute)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_API_BASE_URL", "http://first:8080/api/v1")
	config.ResetCache()

	var first clientTestConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "http://first:8080/api/v1", first.BaseURL)

	// A later env change is invisible until the cache is reset.
	t.Setenv("TEST_API_BASE_URL", "http://second:8080/api/v1")

	var second clientTestConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "http://first:8080/api/v1", second.BaseURL)

	config.ResetCache()

	var third clientTestConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "http://second:8080/api/v1", third.BaseURL)
}

func TestLoad_RequiredMissing(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VALUE")
	config.ResetCache()

	var cfg requiredTestConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	config.ResetCache()

	err := config.Load[clientTestConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_ENVFILE_VALUE")
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))
	assert.Equal(t, "from_file", os.Getenv("TEST_ENVFILE_VALUE"))
}

func TestLoadEnv_Overload(t *testing.T) {
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test", "testdata/.env.override"))
	assert.Equal(t, "from_override", os.Getenv("TEST_ENVFILE_VALUE"))
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.test")
	})

	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/does_not_exist.env")
	})
}

package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panelkit/panelkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}

func TestRequestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "status_code", logger.StatusCode(200).Key)
	assert.Equal(t, int64(200), logger.StatusCode(200).Value.Int64())

	assert.Equal(t, "method", logger.Method("GET").Key)
	assert.Equal(t, "path", logger.Path("/users").Key)
	assert.Equal(t, "route", logger.Route("/dashboard").Key)
	assert.Equal(t, "request_id", logger.RequestID("abc").Key)

	assert.Equal(t, slog.Attr{}, logger.UserID(nil))
	assert.Equal(t, "user_id", logger.UserID(42).Key)
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("component", "apiclient")),
	)

	log.Info("request completed", logger.StatusCode(200))

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "component=apiclient")
	assert.Contains(t, out, "status_code=200")
}

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNewDiscard(t *testing.T) {
	t.Parallel()

	log := logger.NewDiscard()
	assert.NotPanics(t, func() {
		log.Info("silently dropped", logger.Error(errors.New("x")))
	})
}

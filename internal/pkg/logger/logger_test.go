package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servitech/parts-portal/internal/pkg/logger"
)

func TestSetupLogger(t *testing.T) {
	slogger := logger.SetupLogger("debug", "json")

	require.NotNil(t, slogger)
	// the returned logger is injectable wherever a *slog.Logger is expected
	var _ *slog.Logger = slogger
	assert.Same(t, slog.Default(), slogger)
	assert.True(t, slogger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewLogger_DefaultsOnNilConfig(t *testing.T) {
	l := logger.NewLogger(nil)

	require.NotNil(t, l)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

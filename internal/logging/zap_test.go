package logging

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestNewZapLogger_ConsoleOnly(t *testing.T) {
	log := NewZapLogger("debug", "")
	require.NotNil(t, log)

	ctx := context.Background()
	log.Debug(ctx, "debug message", "k", "v")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Sync()
}

func TestNewZapLogger_WithFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cli.log")
	log := NewZapLogger("info", file)
	require.NotNil(t, log)

	log.Info(context.Background(), "written to file", "k", 1)
	log.Sync()
}

func TestZapLogger_WithReturnsChild(t *testing.T) {
	log := NewZapLogger("info", "")
	child := log.With("component", "session")
	require.NotNil(t, child)
	assert.NotSame(t, Logger(log), child)
	child.Info(context.Background(), "child message")
}

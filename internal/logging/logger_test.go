package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	t.Run("info level drops debug and time", func(t *testing.T) {
		t.Setenv(LogLevelEnv, "")
		var buf bytes.Buffer
		log := newLogger(&buf, false)

		log.Debug("hidden")
		log.Info("connected", "chain_id", 1)

		assert.Equal(t, "level=INFO msg=connected chain_id=1\n", buf.String())
	})

	t.Run("debug flag enables debug with source", func(t *testing.T) {
		t.Setenv(LogLevelEnv, "error")
		var buf bytes.Buffer
		log := newLogger(&buf, true)

		log.Debug("visible")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "source=")
		assert.Contains(t, buf.String(), "logger_test.go")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/deploy_staking.go", shortPath("/home/dev/src/treb-stake/internal/usecase/deploy_staking.go"))
	assert.Equal(t, "main.go", shortPath("/somewhere/else/main.go"))
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewHonorsLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	log, err := New("error", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewDebugOverridesLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	log, err := New("error", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := New("loud", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := New("info", path)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("entity loaded", zap.Int64("id", 42))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"entity loaded"`)
	assert.Contains(t, string(data), `"id":42`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Disabled(t *testing.T) {
	logger, err := New("debug", Disabled)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}

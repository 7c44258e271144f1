package logger_test

import (
	"os"
	"path/filepath"
	"testing"
	"todoList/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_WritesToOutputPath(t *testing.T) {
	prev := logger.Logger
	t.Cleanup(func() { logger.Logger = prev })

	path := filepath.Join(t.TempDir(), "todolist.log")
	require.NoError(t, logger.Init(logger.Options{Level: "info", OutputPath: path}))

	logger.Info("project created", zap.String("project_id", "ab12"))
	logger.Logger.Debug("hidden at info level")
	logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "project created")
	assert.Contains(t, string(data), `"project_id":"ab12"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestInit_BadLevel(t *testing.T) {
	prev := logger.Logger
	t.Cleanup(func() { logger.Logger = prev })

	err := logger.Init(logger.Options{Level: "loud"})
	assert.Error(t, err)
	assert.Same(t, prev, logger.Logger)
}

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile := setupLogging(false)
	require.NotNil(t, logger)
	assert.Nil(t, logFile)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log dir without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	logger.Debug("test message", "k", 1)

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(logDir, 0755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	rotated, err := filepath.Glob(filepath.Join(logDir, "flock-*.log"))
	require.NoError(t, err)
	require.Len(t, rotated, 1)

	info, err := os.Stat(rotated[0])
	require.NoError(t, err)
	assert.Equal(t, int64(maxLogSize+1), info.Size())

	info, err = os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_NoRotationUnderLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(logDir, 0755))
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, []byte("previous\n"), 0644))

	_, logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	rotated, err := filepath.Glob(filepath.Join(logDir, "flock-*.log"))
	require.NoError(t, err)
	assert.Empty(t, rotated)
}

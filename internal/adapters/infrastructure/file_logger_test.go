package infrastructure

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skycast.app/internal/ports"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line should be valid JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func newTestFileLogger(t *testing.T) (*FileLoggerAdapter, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "upstream.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func TestNewFileLoggerAdapter(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		logger, err := NewFileLoggerAdapter("")
		assert.Nil(t, logger)
		assert.EqualError(t, err, "log file path cannot be empty")
	})

	t.Run("CreatesNestedDirectories", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "deep", "nested", "upstream.log")

		logger, err := NewFileLoggerAdapter(nested)
		require.NoError(t, err)
		defer func() { _ = logger.Close() }()

		assert.DirExists(t, filepath.Dir(nested))
		assert.FileExists(t, nested)
	})
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	logger, logPath := newTestFileLogger(t)

	logger.Debug("Debug message", ports.F("key", "value"))
	logger.Info("Info message", ports.F("provider", "openweathermap"))
	logger.Warn("Warning message", ports.F("city", "London"))
	logger.Error("Error message", ports.F("duration_ms", 5000))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 4)

	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, entry := range entries {
		assert.Equal(t, levels[i], entry["level"])
		timestamp, ok := entry["timestamp"].(string)
		require.True(t, ok)
		_, err := time.Parse(time.RFC3339Nano, timestamp)
		assert.NoError(t, err)
	}
	assert.Equal(t, "value", entries[0]["key"])
	assert.Equal(t, float64(5000), entries[3]["duration_ms"])
}

func TestFileLoggerAdapter_ReservedKeysWin(t *testing.T) {
	logger, logPath := newTestFileLogger(t)

	logger.Info("real message", ports.F("message", "spoofed"), ports.F("level", "DEBUG"))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "real message", entries[0]["message"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestFileLoggerAdapter_ErrorFields(t *testing.T) {
	logger, logPath := newTestFileLogger(t)

	logger.Error("Weather API request failed", ports.F("error", errors.New("connection refused")))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "connection refused", entries[0]["error"])
}

func TestFileLoggerAdapter_UnmarshalableField(t *testing.T) {
	logger, logPath := newTestFileLogger(t)

	logger.Info("Test message", ports.F("channel", make(chan int)))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Contains(t, entries[0]["message"], "failed to marshal log entry")
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logger, logPath := newTestFileLogger(t)

	const goroutines, perGoroutine = 10, 5
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				logger.Info(fmt.Sprintf("Message from goroutine %d", id),
					ports.F("goroutine_id", id),
					ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()

	entries := readLogLines(t, logPath)
	assert.Len(t, entries, goroutines*perGoroutine)
	for _, entry := range entries {
		assert.Contains(t, entry, "goroutine_id")
		assert.Contains(t, entry, "message_id")
	}
}

func TestFileLoggerAdapter_AppendsAcrossInstances(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "append.log")

	first, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	first.Info("First message")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	second.Info("Second message")
	require.NoError(t, second.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "First message", entries[0]["message"])
	assert.Equal(t, "Second message", entries[1]["message"])
}

func TestFileLoggerAdapter_WritesAfterCloseAreDropped(t *testing.T) {
	logger, logPath := newTestFileLogger(t)

	logger.Info("kept")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Info("dropped")

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
}

func TestFileLoggerAdapter_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	logger, logPath := newTestFileLogger(t)
	logger.Info("Test message")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&^0644, "log file must not be more permissive than 0644")
}

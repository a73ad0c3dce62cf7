package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StockDesk_Go/internal/config"
	"github.com/osse101/StockDesk_Go/internal/event"
	"github.com/osse101/StockDesk_Go/internal/metrics"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, "session_2026-01-12_00-00-00.log")
	assert.NotContains(t, names, "session_2026-01-03_00-00-00.log")
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	cleanupLogs(filepath.Join(t.TempDir(), "absent"), LogFileRetentionCount)
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{LogDir: dir, LogLevel: "info", LogFormat: "text", Environment: "test", Version: "dev"}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	defer f.Close()

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestInitializeEventSystem_WiresMetrics(t *testing.T) {
	bus, err := InitializeEventSystem()
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.UsersRegistered)
	require.NoError(t, bus.Publish(context.Background(), event.NewUserEvent(event.UserRegistered, "alice")))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UsersRegistered)-before)
}

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Ping(context.Context) error { return nil }
func (c *closeRecorder) Close()                     { c.closed = true }

func TestGracefulShutdown_ClosesPool(t *testing.T) {
	pool := &closeRecorder{}

	GracefulShutdown(context.Background(), ShutdownComponents{DBPool: pool})

	assert.True(t, pool.closed)
}

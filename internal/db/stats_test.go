package db

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
}

func TestEventStatsWithoutLogs(t *testing.T) {
	stats, err := EventStats(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, stats)

	stats, err = EventStats(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func requireDuckDB(t *testing.T) {
	t.Helper()
	database, err := Open(context.Background())
	if err != nil {
		t.Skipf("Skipping test, DuckDB unavailable: %v", err)
	}
	database.Close()
}

func TestEventStats(t *testing.T) {
	requireDuckDB(t)

	root := t.TempDir()
	writeLog(t, filepath.Join(root, "alpha", "s1.jsonl"),
		`{"type":"user","sessionId":"s1","cwd":"/work/alpha","timestamp":"2026-01-19T01:00:00Z"}`,
		`{"type":"assistant","sessionId":"s1","cwd":"/work/alpha","timestamp":"2026-01-19T02:00:00Z"}`,
	)
	writeLog(t, filepath.Join(root, "alpha", "s2.jsonl"),
		`{"type":"user","sessionId":"s2","cwd":"/work/alpha","timestamp":"2026-01-20T01:00:00Z"}`,
	)
	writeLog(t, filepath.Join(root, "beta", "s3.jsonl"),
		`{"type":"user","sessionId":"s3","cwd":"/work/beta","timestamp":"2026-01-10T01:00:00Z"}`,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := EventStats(ctx, root)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "/work/alpha", stats[0].Path)
	assert.Equal(t, 2, stats[0].SessionCount)
	assert.Equal(t, 3, stats[0].EventCount)
	assert.Equal(t, 2026, stats[0].LastEvent.Year())
	assert.Equal(t, 20, stats[0].LastEvent.Day())

	assert.Equal(t, "/work/beta", stats[1].Path)
	assert.Equal(t, 1, stats[1].SessionCount)
	assert.Equal(t, 1, stats[1].EventCount)
}

func TestEventStatsLogsWithoutSessionKeys(t *testing.T) {
	requireDuckDB(t)

	root := t.TempDir()
	writeLog(t, filepath.Join(root, "alpha", "s1.jsonl"),
		`{"type":"summary","summary":"Nothing else here"}`,
		`{"type":"other","leafUuid":"x"}`,
	)

	stats, err := EventStats(context.Background(), root)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

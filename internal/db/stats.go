package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/strrl/wherewasi/internal/sessions"
	"github.com/strrl/wherewasi/pkg/models"
)

// Columns are declared so logs lacking a key still bind; timestamps stay
// strings and are parsed in Go.
const statsQuery = `
	SELECT
		COALESCE(cwd, '') AS project_path,
		COUNT(DISTINCT sessionId) AS session_count,
		COUNT(*) AS event_count,
		MIN(timestamp) AS first_event,
		MAX(timestamp) AS last_event
	FROM read_json('%s',
		format = 'newline_delimited',
		columns = {'cwd': 'VARCHAR', 'sessionId': 'VARCHAR', 'timestamp': 'VARCHAR'},
		ignore_errors = true
	)
	WHERE sessionId IS NOT NULL
	GROUP BY COALESCE(cwd, '')
	ORDER BY MAX(timestamp) DESC NULLS LAST, project_path
`

// EventStats aggregates the raw JSONL logs under root by originating path.
// Roots without any log files yield an empty result.
func EventStats(ctx context.Context, root string) ([]models.ProjectStats, error) {
	globPattern := filepath.Join(root, "*", "*.jsonl")

	matches, err := filepath.Glob(globPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid projects directory %q: %w", root, err)
	}
	if len(matches) == 0 {
		return []models.ProjectStats{}, nil
	}

	database, err := Open(ctx)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	query := fmt.Sprintf(statsQuery, strings.ReplaceAll(globPattern, "'", "''"))
	rows, err := database.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute stats query: %w", err)
	}
	defer rows.Close()

	stats := []models.ProjectStats{}
	for rows.Next() {
		var s models.ProjectStats
		var firstEvent, lastEvent sql.NullString

		if err := rows.Scan(&s.Path, &s.SessionCount, &s.EventCount, &firstEvent, &lastEvent); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		if firstEvent.Valid {
			s.FirstEvent, _ = sessions.ParseTimestamp(firstEvent.String)
		}
		if lastEvent.Valid {
			s.LastEvent, _ = sessions.ParseTimestamp(lastEvent.String)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stats rows: %w", err)
	}

	return stats, nil
}

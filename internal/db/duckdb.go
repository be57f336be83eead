package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

// An empty DSN opens a private in-memory database.
const inMemoryDSN = ""

// Open starts an in-memory DuckDB with the JSON extension loaded.
// The caller closes the returned handle.
func Open(ctx context.Context) (*sql.DB, error) {
	database, err := sql.Open("duckdb", inMemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	// DuckDB works best with a single connection
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)

	// INSTALL needs network access and the extension is usually bundled,
	// so only a failing LOAD is fatal.
	_, _ = database.ExecContext(ctx, "INSTALL json")
	if _, err := database.ExecContext(ctx, "LOAD json"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load JSON extension: %w", err)
	}

	return database, nil
}

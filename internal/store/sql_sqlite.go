package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-ledger/internal/logger"
)

// NewConnectSQLite opens a file-backed or in-memory SQLite database.
//
// The parent directory of a file-backed database is created if missing. An
// in-memory database lives only as long as its connection, so the pool is
// pinned to a single connection that is never recycled.
func NewConnectSQLite(ctx context.Context, source Source, log *logger.Logger) (*DB, error) {
	if !source.InMemory() {
		if err := ensureParentDir(source.DataSource); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, err
		}
	}

	conn, err := sql.Open(driverSQLite, source.DataSource)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if source.InMemory() {
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", source.DataSource).Msg("connected to database successfully")

	return newDB(conn, source.Dialect, NewSQLiteErrorClassifier(), log), nil
}

// ensureParentDir creates the directory that will hold the database file.
// URI data sources ("file:path?opts") are reduced to their path first.
func ensureParentDir(dataSource string) error {
	path := strings.TrimPrefix(dataSource, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory %s: %w", dir, err)
	}

	return nil
}

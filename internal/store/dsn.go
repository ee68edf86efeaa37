package store

import (
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
)

// Driver names registered with database/sql.
const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// sqlAlchemySQLitePrefix is accepted so DSNs written for other ledger
// deployments ("sqlite:///./finance.db") keep working.
const sqlAlchemySQLitePrefix = "sqlite:///"

// Source is a parsed DSN: which driver to open and with what data source.
type Source struct {
	Driver     string
	DataSource string
	Dialect    goose.Dialect
}

// InMemory reports whether the source is a private in-memory SQLite database.
func (s Source) InMemory() bool {
	if s.Driver != driverSQLite {
		return false
	}
	path, query, _ := strings.Cut(strings.TrimPrefix(s.DataSource, "file:"), "?")
	return path == ":memory:" || strings.Contains(query, "mode=memory")
}

// ParseDSN maps a connection string onto a driver.
//
// Supported forms:
//   - postgres://..., postgresql://...   → pgx
//   - sqlite:///relative/or/abs/path.db  → sqlite3
//   - file:..., :memory:, a bare path    → sqlite3
func ParseDSN(dsn string) (Source, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "":
		return Source{}, fmt.Errorf("%w: empty DSN", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return Source{Driver: driverPostgres, DataSource: dsn, Dialect: goose.DialectPostgres}, nil
	case strings.HasPrefix(dsn, sqlAlchemySQLitePrefix):
		path := strings.TrimPrefix(dsn, sqlAlchemySQLitePrefix)
		if path == "" {
			return Source{}, fmt.Errorf("%w: %q has no path", ErrUnsupportedDSN, dsn)
		}
		return Source{Driver: driverSQLite, DataSource: path, Dialect: goose.DialectSQLite3}, nil
	case strings.Contains(dsn, "://"):
		return Source{}, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		return Source{Driver: driverSQLite, DataSource: dsn, Dialect: goose.DialectSQLite3}, nil
	}
}

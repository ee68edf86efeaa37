package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/migrations"
)

// DB is the shared connection factory. It is created once at startup and
// handed to every repository; repositories take a scoped connection from it
// per operation.
type DB struct {
	*sql.DB
	dialect            goose.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect goose.Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == goose.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Connect opens the database selected by cfg.DSN and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	source, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch source.Driver {
	case driverPostgres:
		return NewConnectPostgres(ctx, source, log)
	default:
		return NewConnectSQLite(ctx, source, log)
	}
}

// Migrate brings the schema up to date for the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// withConn runs fn on a connection taken from the pool for the duration of
// the call. The connection goes back to the pool on every exit path.
func (db *DB) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return db.classify(ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(conn)
}

// inTx runs fn inside a transaction on conn. The transaction is committed
// when fn succeeds and rolled back otherwise.
func (db *DB) inTx(ctx context.Context, conn *sql.Conn, fn func(tx *sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return db.classify(ErrBeginningTransaction, err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return db.classify(ErrCommitingTransaction, err)
	}

	return nil
}

// classify wraps a driver error with the sentinel of the failed step and,
// when the error is transient, with [ErrStorageUnavailable].
func (db *DB) classify(step, err error) error {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, step, err)
	}

	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, step, err)
	}

	return fmt.Errorf("%w: %w", step, err)
}

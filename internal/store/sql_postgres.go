package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-ledger/internal/logger"
)

const (
	postgresMaxOpenConns    = 15
	postgresMaxIdleConns    = 5
	postgresConnMaxIdleTime = 30 * time.Second
)

// NewConnectPostgres opens a PostgreSQL database through the pgx stdlib
// driver and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, source Source, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driverPostgres, source.DataSource)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxIdleTime(postgresConnMaxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Str("pg_code", postgresError(err)).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, source.Dialect, NewPostgresErrorClassifier(), log), nil
}

// postgresError returns the SQLSTATE code of err, or "" when err does not
// come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

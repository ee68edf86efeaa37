// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded goose migrations of the ledger
// schema, one directory per SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when no database handle is given.
	ErrNilDB = errors.New("db is nil")
	// ErrUnsupportedDialect is returned for dialects without migrations.
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// dialects maps a goose dialect to the directory holding its migrations.
var dialects = map[goose.Dialect]string{
	goose.DialectSQLite3:  "sqlite",
	goose.DialectPostgres: "postgres",
}

// Migrate applies every pending migration for dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Reset rolls back every applied migration, leaving an empty schema.
func Reset(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}

	if _, err := provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("migration reset error: %w", err)
	}

	return nil
}

func newProvider(db *sql.DB, dialect goose.Dialect) (*goose.Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}

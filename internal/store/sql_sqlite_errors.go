package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. A locked or busy database and a
// database file that cannot be opened or read are retryable; everything else
// (constraint violations, missing tables, type mismatches) is not.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy,
		sqlite3.ErrLocked,
		sqlite3.ErrCantOpen,
		sqlite3.ErrIoErr,
		sqlite3.ErrProtocol:
		return Retryable
	}

	return NonRetryable
}

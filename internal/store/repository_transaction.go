package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
)

// transactionRepository is the SQL implementation of [TransactionRepository].
// It works unchanged on SQLite and PostgreSQL; the dialect only affects the
// placeholder format chosen by [DB].
type transactionRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by db.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

// Create inserts draft inside a transaction and returns the stored record.
//
// The date is truncated to microseconds, the finest precision both SQLite
// and PostgreSQL round-trip, so the returned value equals what a later read
// yields.
func (r *transactionRepository) Create(ctx context.Context, draft models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	created := draft
	created.ID = 0
	if created.Date.IsZero() {
		created.Date = r.now()
	}
	created.Date = created.Date.UTC().Truncate(time.Microsecond)

	query, args, err := buildInsertTransactionQuery(r.db.builder, created)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Msg("failed to build query")
		return models.Transaction{}, err
	}

	err = r.db.withConn(ctx, func(conn *sql.Conn) error {
		return r.db.inTx(ctx, conn, func(tx *sql.Tx) error {
			if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&created.ID); scanErr != nil {
				return r.db.classify(ErrExecutingStatement, scanErr)
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Msg("failed to insert transaction")
		return models.Transaction{}, err
	}

	log.Debug().Str("func", "*transactionRepository.Create").Int64("id", created.ID).Msg("transaction created")
	return created, nil
}

// List returns all transactions ordered by id.
func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTransactionsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.List").Msg("failed to build query")
		return nil, err
	}

	transactions := make([]models.Transaction, 0, 50)
	err = r.db.withConn(ctx, func(conn *sql.Conn) error {
		rows, queryErr := conn.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return r.db.classify(ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			t, scanErr := scanTransaction(rows)
			if scanErr != nil {
				return r.db.classify(ErrScanningRow, scanErr)
			}
			transactions = append(transactions, t)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return r.db.classify(ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.List").Msg("failed to list transactions")
		return nil, err
	}

	return transactions, nil
}

// GetByID returns a single transaction or [ErrTransactionNotFound].
func (r *transactionRepository) GetByID(ctx context.Context, id int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTransactionByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.GetByID").Int64("id", id).Msg("failed to build query")
		return models.Transaction{}, err
	}

	var found models.Transaction
	err = r.db.withConn(ctx, func(conn *sql.Conn) error {
		t, scanErr := scanTransaction(conn.QueryRowContext(ctx, query, args...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		if scanErr != nil {
			return r.db.classify(ErrScanningRow, scanErr)
		}
		found = t
		return nil
	})
	if errors.Is(err, ErrTransactionNotFound) {
		log.Debug().Str("func", "*transactionRepository.GetByID").Int64("id", id).Msg("transaction not found")
		return models.Transaction{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.GetByID").Int64("id", id).Msg("failed to get transaction")
		return models.Transaction{}, err
	}

	return found, nil
}

// DeleteByID removes a single transaction inside a transaction. When no row
// matches, the transaction is rolled back and [ErrTransactionNotFound] is
// returned.
func (r *transactionRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.DeleteByID").Int64("id", id).Msg("failed to build query")
		return err
	}

	err = r.db.withConn(ctx, func(conn *sql.Conn) error {
		return r.db.inTx(ctx, conn, func(tx *sql.Tx) error {
			result, execErr := tx.ExecContext(ctx, query, args...)
			if execErr != nil {
				return r.db.classify(ErrExecutingStatement, execErr)
			}

			affected, execErr := result.RowsAffected()
			if execErr != nil {
				return r.db.classify(ErrExecutingStatement, execErr)
			}
			if affected == 0 {
				return ErrTransactionNotFound
			}
			return nil
		})
	})
	if errors.Is(err, ErrTransactionNotFound) {
		log.Debug().Str("func", "*transactionRepository.DeleteByID").Int64("id", id).Msg("transaction not found")
		return err
	}
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.DeleteByID").Int64("id", id).Msg("failed to delete transaction")
		return err
	}

	log.Debug().Str("func", "*transactionRepository.DeleteByID").Int64("id", id).Msg("transaction deleted")
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	if err := row.Scan(&t.ID, &t.Amount, &t.Description, &t.Category, &t.Date); err != nil {
		return models.Transaction{}, err
	}
	t.Date = t.Date.UTC()
	return t, nil
}

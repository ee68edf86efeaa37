package store

import (
	"context"

	"github.com/MKhiriev/go-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TransactionRepository is the persistence boundary of the ledger.
//
// Every method acquires its own connection from the pool and releases it
// before returning, on success and on failure alike.
type TransactionRepository interface {
	// Create inserts draft and returns it with the assigned ID. A zero
	// draft.Date is replaced by the current UTC time.
	Create(ctx context.Context, draft models.Transaction) (models.Transaction, error)

	// List returns every transaction ordered by ID. The slice is empty,
	// not nil, when the table is empty.
	List(ctx context.Context) ([]models.Transaction, error)

	// GetByID returns the transaction with the given id or
	// [ErrTransactionNotFound].
	GetByID(ctx context.Context, id int64) (models.Transaction, error)

	// DeleteByID permanently removes the transaction with the given id or
	// returns [ErrTransactionNotFound] leaving the table untouched.
	DeleteByID(ctx context.Context, id int64) error
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

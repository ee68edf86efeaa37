package service

import (
	"context"

	"github.com/MKhiriev/go-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TransactionServiceWrapper

// TransactionService is the use-case boundary of the ledger. Implementations
// return store sentinels (store.ErrTransactionNotFound,
// store.ErrStorageUnavailable) unchanged so the transport can map them.
type TransactionService interface {
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Banner(ctx context.Context) models.Banner
}

// HealthService reports whether the storage backend answers.
type HealthService interface {
	Check(ctx context.Context) error
}

// TransactionServiceWrapper defines middleware composition for TransactionService.
// Implementations wrap an existing TransactionService to add behavior such as
// validating.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService // returns a decorated TransactionService applying additional behavior
}

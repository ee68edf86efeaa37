package service

import (
	"context"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/store"
	"github.com/MKhiriev/go-ledger/models"
)

type transactionService struct {
	transactionRepository store.TransactionRepository

	logger *logger.Logger
}

func NewTransactionService(transactionRepository store.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

// CreateTransaction expects a request that already passed validation; absent
// fields are stored as zero values.
func (s *transactionService) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	return s.transactionRepository.Create(ctx, req.ToTransaction())
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.transactionRepository.List(ctx)
}

func (s *transactionService) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	return s.transactionRepository.GetByID(ctx, id)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.transactionRepository.DeleteByID(ctx, id)
}

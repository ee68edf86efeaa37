package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

// TransactionValidationService rejects malformed create requests before they
// reach the inner service. Read and delete calls pass through untouched.
//
// It is the guard for every caller of the service. The HTTP handler runs the
// same validator first only to merge missing fields into its 422 body, so a
// request it accepts always passes here too.
type TransactionValidationService struct {
	inner     TransactionService
	validator validators.Validator
}

func NewTransactionValidationService() TransactionServiceWrapper {
	return &TransactionValidationService{
		validator: validators.NewTransactionValidator(),
	}
}

func (v *TransactionValidationService) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*TransactionValidationService.CreateTransaction").Msg("invalid create request")
		return models.Transaction{}, fmt.Errorf("error during transaction validation before saving: %w", err)
	}

	return v.inner.CreateTransaction(ctx, req)
}

func (v *TransactionValidationService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return v.inner.ListTransactions(ctx)
}

func (v *TransactionValidationService) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	return v.inner.GetTransaction(ctx, id)
}

func (v *TransactionValidationService) DeleteTransaction(ctx context.Context, id int64) error {
	return v.inner.DeleteTransaction(ctx, id)
}

func (v *TransactionValidationService) Wrap(wrapper TransactionService) TransactionService {
	v.inner = wrapper
	return v
}

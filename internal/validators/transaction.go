package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger/models"
)

// Field names accepted by [TransactionValidator.Validate] for field-level
// scoping. They double as the JSON keys reported in issue locations.
const (
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldCategory    = "category"
)

// RequiredTransactionFields lists the body fields a create request must carry,
// in the order issues are reported.
var RequiredTransactionFields = []string{FieldAmount, FieldDescription, FieldCategory}

// TransactionValidator implements [Validator] for create-transaction requests.
type TransactionValidator struct{}

func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

// Validate accepts models.CreateTransactionRequest by value or pointer. When
// fields is empty every required field is checked. All offending fields are
// reported together in a single [*ValidationError].
func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTransactionRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateTransactionRequest:
		if value == nil {
			return NewValidationError(missingAll()...)
		}
		return v.validateCreateRequest(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *TransactionValidator) validateCreateRequest(req models.CreateTransactionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = RequiredTransactionFields
	}

	var issues []models.FieldIssue
	for _, field := range fields {
		switch field {
		case FieldAmount:
			if req.Amount == nil {
				issues = append(issues, MissingField(FieldAmount))
			}
		case FieldDescription:
			if req.Description == nil {
				issues = append(issues, MissingField(FieldDescription))
			}
		case FieldCategory:
			if req.Category == nil {
				issues = append(issues, MissingField(FieldCategory))
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return NewValidationError(issues...)
}

func missingAll() []models.FieldIssue {
	issues := make([]models.FieldIssue, 0, len(RequiredTransactionFields))
	for _, field := range RequiredTransactionFields {
		issues = append(issues, MissingField(field))
	}
	return issues
}

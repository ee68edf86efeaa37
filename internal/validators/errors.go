package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ledger/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries one issue per offending field. It matches
// [ErrValidation] with errors.Is and is extracted with errors.As by the
// transport layer to render field-level detail.
type ValidationError struct {
	Issues []models.FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, strings.Join(issue.Loc, ".")+": "+issue.Msg)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns nil when issues is empty.
func NewValidationError(issues ...models.FieldIssue) error {
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

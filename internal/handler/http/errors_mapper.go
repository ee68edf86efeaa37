package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/internal/store"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

// errorStatuses is checked in order; the first match wins. Store errors
// classified as transient carry both ErrStorageUnavailable and a step
// sentinel, so the unavailable entry precedes the step entries.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrValidation, http.StatusUnprocessableEntity},

	{store.ErrTransactionNotFound, http.StatusNotFound},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{service.ErrStorageIsUnreachable, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrAcquiringConnection, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the JSON error body for err. Validation errors keep
// their field-level detail; everything else gets the status text only.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		log.Debug().Err(err).Str("func", funcName).Msg("validation failed")
		writeValidationError(w, vErr.Issues)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: http.StatusText(status)}, status)
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ledger/internal/app"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/store"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, issues, isObject := decodeCreateTransactionRequest(r.Body)
	if isObject {
		// Absent fields are reported together with the type errors, so this
		// is the check HTTP clients see. The service wrapper repeats it for
		// callers that do not come through the handler.
		var vErr *validators.ValidationError
		if err := h.validator.Validate(r.Context(), req); errors.As(err, &vErr) {
			issues = append(issues, vErr.Issues...)
		}
	}
	if len(issues) > 0 {
		sortIssues(issues)
		log.Debug().Str("func", "*Handler.createTransaction").Int("issues", len(issues)).Msg("invalid request body")
		writeValidationError(w, issues)
		return
	}

	created, err := h.services.TransactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "*Handler.createTransaction")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.services.TransactionService.ListTransactions(r.Context())
	if err != nil {
		h.respondError(w, r, err, "*Handler.listTransactions")
		return
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionIDFromPath(w, r)
	if !ok {
		return
	}

	transaction, err := h.services.TransactionService.GetTransaction(r.Context(), id)
	if errors.Is(err, store.ErrTransactionNotFound) {
		writeTransactionNotFound(w, id)
		return
	}
	if err != nil {
		h.respondError(w, r, err, "*Handler.getTransaction")
		return
	}

	utils.WriteJSON(w, transaction, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionIDFromPath(w, r)
	if !ok {
		return
	}

	err := h.services.TransactionService.DeleteTransaction(r.Context(), id)
	if errors.Is(err, store.ErrTransactionNotFound) {
		writeTransactionNotFound(w, id)
		return
	}
	if err != nil {
		h.respondError(w, r, err, "*Handler.deleteTransaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// transactionIDFromPath parses the id path parameter. On failure it writes
// the 422 response itself and returns false.
func transactionIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, transactionIDParam)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Debug().Str("func", "transactionIDFromPath").Str("raw", raw).Msg("transaction id is not an integer")
		writeValidationError(w, []models.FieldIssue{validators.NotAnInteger(transactionIDParam)})
		return 0, false
	}

	return id, true
}

func writeTransactionNotFound(w http.ResponseWriter, id int64) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: fmt.Sprintf(app.MsgTransactionNotFound, id)}, http.StatusNotFound)
}

func writeValidationError(w http.ResponseWriter, issues []models.FieldIssue) {
	utils.WriteJSON(w, models.ValidationErrorResponse{Detail: issues}, http.StatusUnprocessableEntity)
}

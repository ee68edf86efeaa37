package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger/internal/app"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Banner(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("health check failed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: http.StatusText(http.StatusServiceUnavailable)}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthStatus{Status: app.MsgHealthOK}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}

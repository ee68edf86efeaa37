package http

import (
	"time"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/internal/validators"
)

type Handler struct {
	services *service.Services

	// validator reports missing body fields alongside decoding errors.
	validator validators.Validator

	// traceIDs mints X-Trace-ID values for requests that arrive without one.
	traceIDs *utils.UUIDGenerator

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultRequestTimeout
	}

	return &Handler{
		services:       services,
		validator:      validators.NewTransactionValidator(),
		traceIDs:       utils.NewUUIDGenerator(),
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/store"
)

type Services struct {
	TransactionService TransactionService
	AppInfoService     AppInfoService
	HealthService      HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	transactionService := NewTransactionValidationService().
		Wrap(NewTransactionService(storages.TransactionRepository, logger))

	return &Services{
		TransactionService: transactionService,
		AppInfoService:     appInfoService,
		HealthService:      NewHealthService(storages.HealthChecker, logger),
	}, nil
}

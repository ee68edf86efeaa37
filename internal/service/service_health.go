package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/store"
)

type healthService struct {
	checker store.HealthChecker

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{
		checker: checker,
		logger:  logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.checker.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageIsUnreachable, err)
	}
	return nil
}

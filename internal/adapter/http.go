package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/models"
)

type httpLedgerClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPLedgerClient constructs an HTTP/REST implementation of [LedgerClient].
// It normalises and validates the base URL from cfg.ServerAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPLedgerClient(cfg config.ClientConfig, logger *logger.Logger) (LedgerClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Msg("ledger client created")
	return &httpLedgerClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Info implements [LedgerClient] with GET /.
func (h *httpLedgerClient) Info(ctx context.Context) (models.Banner, error) {
	var banner models.Banner

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&banner).
		Get("/")
	if err != nil {
		return models.Banner{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Banner{}, err
	}

	return banner, nil
}

// Health implements [LedgerClient] with GET /health.
func (h *httpLedgerClient) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

// CreateTransaction implements [LedgerClient] with POST /transactions/.
// Validation failures come back wrapped in [ErrValidation].
func (h *httpLedgerClient) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	var created models.Transaction

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/transactions/")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	h.logger.Debug().Int64("id", created.ID).Msg("transaction created")
	return created, nil
}

// ListTransactions implements [LedgerClient] with GET /transactions/.
func (h *httpLedgerClient) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/transactions/")
	if err != nil {
		return nil, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0)
	if err = json.Unmarshal(resp.Body(), &transactions); err != nil {
		return nil, fmt.Errorf("decode list transactions response: %w", err)
	}

	return transactions, nil
}

// GetTransaction implements [LedgerClient] with GET /transactions/{id}.
func (h *httpLedgerClient) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	var found models.Transaction

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&found).
		Get("/transactions/{id}")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return found, nil
}

// DeleteTransaction implements [LedgerClient] with DELETE /transactions/{id}.
func (h *httpLedgerClient) DeleteTransaction(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/transactions/{id}")
	if err != nil {
		return fmt.Errorf("delete transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/models"
)

// ---- Fake: TransactionService ----

type fakeTransactionSvc struct {
	createFn func(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error)
	listFn   func(ctx context.Context) ([]models.Transaction, error)
	getFn    func(ctx context.Context, id int64) (models.Transaction, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeTransactionSvc) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	if f.createFn == nil {
		panic("unexpected CreateTransaction call")
	}
	return f.createFn(ctx, req)
}

func (f *fakeTransactionSvc) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	if f.listFn == nil {
		return []models.Transaction{}, nil
	}
	return f.listFn(ctx)
}

func (f *fakeTransactionSvc) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	if f.getFn == nil {
		panic("unexpected GetTransaction call")
	}
	return f.getFn(ctx, id)
}

func (f *fakeTransactionSvc) DeleteTransaction(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected DeleteTransaction call")
	}
	return f.deleteFn(ctx, id)
}

// ---- Fake: AppInfoService ----

type fakeAppInfoSvc struct{ version string }

func (f *fakeAppInfoSvc) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoSvc) Banner(context.Context) models.Banner {
	return models.Banner{Message: "Finance Tracking API", Version: f.version, Status: "running"}
}

// ---- Fake: HealthService ----

type fakeHealthSvc struct{ err error }

func (f *fakeHealthSvc) Check(context.Context) error { return f.err }

// ---- Helpers ----

var testServerConfig = config.Server{
	HTTPAddress:    "localhost:0",
	RequestTimeout: time.Second,
	AllowedOrigins: []string{"http://localhost:5173"},
}

func newTestRouter(t *testing.T, txSvc service.TransactionService) http.Handler {
	t.Helper()
	return newTestRouterWithConfig(t, txSvc, testServerConfig)
}

func newTestRouterWithConfig(t *testing.T, txSvc service.TransactionService, cfg config.Server) http.Handler {
	t.Helper()
	if txSvc == nil {
		txSvc = &fakeTransactionSvc{}
	}

	services := &service.Services{
		TransactionService: txSvc,
		AppInfoService:     &fakeAppInfoSvc{version: "1.0.0"},
		HealthService:      &fakeHealthSvc{},
	}
	return NewHandler(services, cfg, logger.Nop()).Init()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeIssues(t *testing.T, rec *httptest.ResponseRecorder) []models.FieldIssue {
	t.Helper()

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Detail
}

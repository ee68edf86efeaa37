package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger/internal/store"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

var fixedDate = time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// POST /transactions/
// ─────────────────────────────────────────────

func TestCreateTransaction_Created(t *testing.T) {
	var received models.CreateTransactionRequest
	svc := &fakeTransactionSvc{
		createFn: func(_ context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
			received = req
			return models.Transaction{
				ID: 1, Amount: *req.Amount, Description: *req.Description, Category: *req.Category, Date: fixedDate,
			}, nil
		},
	}
	router := newTestRouter(t, svc)

	for _, path := range []string{"/transactions/", "/transactions"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, path, `{"amount": 42.5, "description": "coffee", "category": "food"}`)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t,
				`{"id":1,"amount":42.5,"description":"coffee","category":"food","date":"2026-10-01T09:30:00Z"}`,
				rec.Body.String())
			assert.Nil(t, received.Date)
		})
	}
}

func TestCreateTransaction_PassesDate(t *testing.T) {
	var received models.CreateTransactionRequest
	svc := &fakeTransactionSvc{
		createFn: func(_ context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
			received = req
			return models.Transaction{ID: 1}, nil
		},
	}
	router := newTestRouter(t, svc)

	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{"rfc3339 with zone", "2026-01-02T03:04:05+03:00", time.Date(2026, 1, 2, 0, 4, 5, 0, time.UTC)},
		{"rfc3339 utc with fraction", "2026-01-02T03:04:05.123456Z", time.Date(2026, 1, 2, 3, 4, 5, 123456000, time.UTC)},
		{"naive timestamp is utc", "2026-01-02T03:04:05", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"date only", "2026-01-02", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fmt.Sprintf(`{"amount":1,"description":"a","category":"b","date":%q}`, tt.date)
			rec := doRequest(t, router, http.MethodPost, "/transactions/", body)

			require.Equal(t, http.StatusCreated, rec.Code)
			require.NotNil(t, received.Date)
			assert.True(t, tt.want.Equal(*received.Date), "got %s", received.Date)
		})
	}
}

func TestCreateTransaction_NullDateIsOmitted(t *testing.T) {
	var received models.CreateTransactionRequest
	svc := &fakeTransactionSvc{
		createFn: func(_ context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
			received = req
			return models.Transaction{ID: 1}, nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/transactions/",
		`{"amount":1,"description":"a","category":"b","date":null}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, received.Date)
}

func TestCreateTransaction_ValidationFailures(t *testing.T) {
	type issue struct {
		loc []string
		typ string
	}

	tests := []struct {
		name string
		body string
		want []issue
	}{
		{
			name: "every field missing",
			body: `{}`,
			want: []issue{
				{[]string{"body", "amount"}, "missing"},
				{[]string{"body", "description"}, "missing"},
				{[]string{"body", "category"}, "missing"},
			},
		},
		{
			name: "amount not a number and category missing",
			body: `{"amount":"abc","description":"coffee"}`,
			want: []issue{
				{[]string{"body", "amount"}, "float_type"},
				{[]string{"body", "category"}, "missing"},
			},
		},
		{
			name: "null amount",
			body: `{"amount":null,"description":"a","category":"b"}`,
			want: []issue{{[]string{"body", "amount"}, "float_type"}},
		},
		{
			name: "description and category not strings",
			body: `{"amount":1,"description":5,"category":true}`,
			want: []issue{
				{[]string{"body", "description"}, "string_type"},
				{[]string{"body", "category"}, "string_type"},
			},
		},
		{
			name: "bad date",
			body: `{"amount":1,"description":"a","category":"b","date":"yesterday"}`,
			want: []issue{{[]string{"body", "date"}, "datetime_type"}},
		},
		{
			name: "date not a string",
			body: `{"amount":1,"description":"a","category":"b","date":12}`,
			want: []issue{{[]string{"body", "date"}, "datetime_type"}},
		},
		{
			name: "malformed json",
			body: `{"amount": 42.5,`,
			want: []issue{{[]string{"body"}, "json_invalid"}},
		},
		{
			name: "array body",
			body: `[1,2]`,
			want: []issue{{[]string{"body"}, "model_attributes_type"}},
		},
		{
			name: "null body",
			body: `null`,
			want: []issue{{[]string{"body"}, "model_attributes_type"}},
		},
	}

	// any call would mean a write happened despite invalid input
	router := newTestRouter(t, &fakeTransactionSvc{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/transactions/", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			issues := decodeIssues(t, rec)
			require.Len(t, issues, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.loc, issues[i].Loc)
				assert.Equal(t, want.typ, issues[i].Type)
				assert.NotEmpty(t, issues[i].Msg)
			}
		})
	}
}

func TestCreateTransaction_EmptyBody(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, &fakeTransactionSvc{}), http.MethodPost, "/transactions/", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":[{"loc":["body"],"msg":"Field required","type":"missing"}]}`, rec.Body.String())
}

func TestCreateTransaction_ServiceValidationError(t *testing.T) {
	svc := &fakeTransactionSvc{
		createFn: func(context.Context, models.CreateTransactionRequest) (models.Transaction, error) {
			return models.Transaction{}, fmt.Errorf("wrapped: %w", validators.NewValidationError(validators.MissingField("category")))
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/transactions/", `{"amount":1,"description":"a","category":"b"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":[{"loc":["body","category"],"msg":"Field required","type":"missing"}]}`, rec.Body.String())
}

func TestCreateTransaction_StoreFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "transient",
			err:        fmt.Errorf("%w: %w", store.ErrStorageUnavailable, store.ErrExecutingStatement),
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "Service Unavailable",
		},
		{
			name:       "permanent",
			err:        fmt.Errorf("%w: no such table", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
		{
			name:       "unknown",
			err:        fmt.Errorf("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTransactionSvc{
				createFn: func(context.Context, models.CreateTransactionRequest) (models.Transaction, error) {
					return models.Transaction{}, tt.err
				},
			}

			rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/transactions/", `{"amount":1,"description":"a","category":"b"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tt.wantDetail), rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// GET /transactions/
// ─────────────────────────────────────────────

func TestListTransactions(t *testing.T) {
	svc := &fakeTransactionSvc{
		listFn: func(context.Context) ([]models.Transaction, error) {
			return []models.Transaction{
				{ID: 1, Amount: 1, Description: "a", Category: "x", Date: fixedDate},
				{ID: 2, Amount: 2, Description: "b", Category: "y", Date: fixedDate},
			}, nil
		},
	}
	router := newTestRouter(t, svc)

	for _, path := range []string{"/transactions/", "/transactions"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var got []models.Transaction
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got, 2)
			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, int64(2), got[1].ID)
		})
	}
}

func TestListTransactions_EmptyIsArray(t *testing.T) {
	svc := &fakeTransactionSvc{
		listFn: func(context.Context) ([]models.Transaction, error) { return nil, nil },
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodGet, "/transactions/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListTransactions_Unavailable(t *testing.T) {
	svc := &fakeTransactionSvc{
		listFn: func(context.Context) ([]models.Transaction, error) {
			return nil, fmt.Errorf("%w: %w", store.ErrStorageUnavailable, store.ErrAcquiringConnection)
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodGet, "/transactions/", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// ─────────────────────────────────────────────
// GET /transactions/{id}
// ─────────────────────────────────────────────

func TestGetTransaction_QueryDeadline(t *testing.T) {
	svc := &fakeTransactionSvc{
		getFn: func(context.Context, int64) (models.Transaction, error) {
			// shape produced by the store for a query cut off by its deadline
			return models.Transaction{}, fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded)
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodGet, "/transactions/5", "")

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.JSONEq(t, `{"detail":"Gateway Timeout"}`, rec.Body.String())
}

func TestGetTransaction(t *testing.T) {
	svc := &fakeTransactionSvc{
		getFn: func(_ context.Context, id int64) (models.Transaction, error) {
			if id == 7 {
				return models.Transaction{ID: 7, Amount: 3, Description: "tea", Category: "food", Date: fixedDate}, nil
			}
			return models.Transaction{}, store.ErrTransactionNotFound
		},
	}
	router := newTestRouter(t, svc)

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/transactions/7", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"id":7,"amount":3,"description":"tea","category":"food","date":"2026-10-01T09:30:00Z"}`,
			rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/transactions/999", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Transaction with id 999 not found."}`, rec.Body.String())
	})

	t.Run("negative id is not found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/transactions/-1", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Transaction with id -1 not found."}`, rec.Body.String())
	})
}

func TestTransactionID_NotAnInteger(t *testing.T) {
	router := newTestRouter(t, &fakeTransactionSvc{})

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		for _, raw := range []string{"abc", "1.5", "99999999999999999999"} {
			t.Run(method+" "+raw, func(t *testing.T) {
				rec := doRequest(t, router, method, "/transactions/"+raw, "")

				require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				issues := decodeIssues(t, rec)
				require.Len(t, issues, 1)
				assert.Equal(t, []string{"path", "transaction_id"}, issues[0].Loc)
				assert.Equal(t, "int_parsing", issues[0].Type)
			})
		}
	}
}

// ─────────────────────────────────────────────
// DELETE /transactions/{id}
// ─────────────────────────────────────────────

func TestDeleteTransaction(t *testing.T) {
	var deleted []int64
	svc := &fakeTransactionSvc{
		deleteFn: func(_ context.Context, id int64) error {
			if id == 999 {
				return store.ErrTransactionNotFound
			}
			deleted = append(deleted, id)
			return nil
		},
	}
	router := newTestRouter(t, svc)

	rec := doRequest(t, router, http.MethodDelete, "/transactions/3", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []int64{3}, deleted)

	rec = doRequest(t, router, http.MethodDelete, "/transactions/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Transaction with id 999 not found."}`, rec.Body.String())
	assert.Equal(t, []int64{3}, deleted)
}

func TestDeleteTransaction_Failure(t *testing.T) {
	svc := &fakeTransactionSvc{
		deleteFn: func(context.Context, int64) error {
			return fmt.Errorf("%w: disk I/O error", store.ErrCommitingTransaction)
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodDelete, "/transactions/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the ledger HTTP API.
//
// The primary abstraction is [LedgerClient], which decouples callers (the
// command-line client) from the protocol. The package ships an HTTP/REST
// implementation ([NewHTTPLedgerClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrValidation] for 422). The
// server's detail message is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_client_mock.go -package=mock

// LedgerClient defines communication with the ledger server.
type LedgerClient interface {
	// Info returns the service banner served at the root path.
	Info(ctx context.Context) (models.Banner, error)

	// Health reports whether the server can reach its database.
	Health(ctx context.Context) (models.HealthStatus, error)

	// CreateTransaction records a new transaction and returns it with the
	// server-assigned id and date.
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error)

	// ListTransactions returns every transaction in id order.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// GetTransaction returns a single transaction or an error wrapping
	// [ErrNotFound].
	GetTransaction(ctx context.Context, id int64) (models.Transaction, error)

	// DeleteTransaction removes a transaction or returns an error wrapping
	// [ErrNotFound].
	DeleteTransaction(ctx context.Context, id int64) error
}

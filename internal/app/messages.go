// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ledger service and its HTTP handlers.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording identical between
// handlers, services and the tests that assert on them.
package app

const (
	// MsgServiceName is the banner message served at the root path.
	MsgServiceName = "Finance Tracking API"

	// MsgStatusRunning is the banner status of a live server.
	MsgStatusRunning = "running"

	// MsgHealthOK is the health status when the database answers a ping.
	MsgHealthOK = "ok"

	// MsgNotFound is returned for paths that match no route.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned when the path exists but the method
	// does not.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgTransactionNotFound is formatted with the requested id.
	MsgTransactionNotFound = "Transaction with id %d not found."
)

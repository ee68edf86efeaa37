// Package utils holds small helpers shared by the ledger server and client:
// JSON response writing, the resty-backed HTTP client and trace id
// generation.
package utils

package models

// Banner is returned by GET / and identifies the running service.
type Banner struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse carries a human-readable error message,
// e.g. {"detail": "Transaction with id 999 not found."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse is the 422 body listing every rejected field.
type ValidationErrorResponse struct {
	Detail []FieldIssue `json:"detail"`
}

// FieldIssue describes one validation failure.
//
// Loc is the path to the offending value, starting with its origin
// ("body" or "path"), e.g. ["body", "amount"].
type FieldIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

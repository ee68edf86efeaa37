package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when the payload itself cannot be encoded.
const marshalFailureBody = `{"detail":"Internal Server Error"}`

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// The "Content-Type" header is always set to "application/json". If
// marshaling fails, a 500 response with a generic detail body is sent instead
// and a wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.HealthStatus{Status: "ok"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Detail: "Not Found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"slices"
	"time"

	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

// fieldDate is the optional timestamp of a create request.
const fieldDate = "date"

// maxBodyBytes caps the size of a create request body.
const maxBodyBytes = 1 << 20

// dateLayouts are tried in order. Timestamps without a zone are taken as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// issueOrder is the order fields are reported in.
var issueOrder = append(slices.Clone(validators.RequiredTransactionFields), fieldDate)

// decodeCreateTransactionRequest decodes the body field by field so that
// every malformed field is reported, not only the first one. Absent fields are
// left nil; reporting them is the validator's job. isObject is false when the
// body is not a JSON object at all, in which case the single body-level issue
// is the whole answer.
func decodeCreateTransactionRequest(body io.Reader) (req models.CreateTransactionRequest, issues []models.FieldIssue, isObject bool) {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return req, []models.FieldIssue{validators.InvalidJSON(err.Error())}, false
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, []models.FieldIssue{{Loc: []string{validators.LocBody}, Msg: "Field required", Type: validators.IssueMissing}}, false
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, []models.FieldIssue{validators.NotAnObject()}, false
		}
		return req, []models.FieldIssue{validators.InvalidJSON(err.Error())}, false
	}
	if fields == nil {
		return req, []models.FieldIssue{validators.NotAnObject()}, false
	}

	if value, ok := fields[validators.FieldAmount]; ok {
		var amount float64
		if isNull(value) || json.Unmarshal(value, &amount) != nil {
			issues = append(issues, validators.NotANumber(validators.FieldAmount))
		}
		// set even when invalid so the field is not also reported as missing
		req.Amount = &amount
	}

	for _, field := range []string{validators.FieldDescription, validators.FieldCategory} {
		value, ok := fields[field]
		if !ok {
			continue
		}

		var s string
		if isNull(value) || json.Unmarshal(value, &s) != nil {
			issues = append(issues, validators.NotAString(field))
		}

		if field == validators.FieldDescription {
			req.Description = &s
		} else {
			req.Category = &s
		}
	}

	if value, ok := fields[fieldDate]; ok && !isNull(value) {
		date, dateErr := parseDate(value)
		if dateErr != nil {
			issues = append(issues, validators.NotADatetime(fieldDate))
		} else {
			req.Date = &date
		}
	}

	return req, issues, true
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func parseDate(value json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return time.Time{}, err
	}

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// sortIssues orders issues by body field so the response is stable.
func sortIssues(issues []models.FieldIssue) {
	slices.SortStableFunc(issues, func(a, b models.FieldIssue) int {
		return issueRank(a) - issueRank(b)
	})
}

func issueRank(issue models.FieldIssue) int {
	if len(issue.Loc) < 2 {
		return -1
	}
	if i := slices.Index(issueOrder, issue.Loc[1]); i >= 0 {
		return i
	}
	return len(issueOrder)
}

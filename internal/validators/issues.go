package validators

import "github.com/MKhiriev/go-ledger/models"

// Issue types reported in [models.FieldIssue.Type].
const (
	IssueMissing         = "missing"
	IssueJSONInvalid     = "json_invalid"
	IssueFloatType       = "float_type"
	IssueStringType      = "string_type"
	IssueDatetimeType    = "datetime_type"
	IssueIntParsing      = "int_parsing"
	IssueModelAttributes = "model_attributes_type"
)

// Locations of request parts.
const (
	LocBody = "body"
	LocPath = "path"
)

// MissingField reports a required body field that was not sent.
func MissingField(field string) models.FieldIssue {
	return models.FieldIssue{Loc: []string{LocBody, field}, Msg: "Field required", Type: IssueMissing}
}

// InvalidJSON reports a body that could not be decoded.
func InvalidJSON(detail string) models.FieldIssue {
	return models.FieldIssue{Loc: []string{LocBody}, Msg: "JSON decode error: " + detail, Type: IssueJSONInvalid}
}

// NotAnObject reports a body that decoded to something other than an object.
func NotAnObject() models.FieldIssue {
	return models.FieldIssue{
		Loc:  []string{LocBody},
		Msg:  "Input should be a valid dictionary or object to extract fields from",
		Type: IssueModelAttributes,
	}
}

// NotANumber reports a body field that should hold a JSON number.
func NotANumber(field string) models.FieldIssue {
	return models.FieldIssue{Loc: []string{LocBody, field}, Msg: "Input should be a valid number", Type: IssueFloatType}
}

// NotAString reports a body field that should hold a JSON string.
func NotAString(field string) models.FieldIssue {
	return models.FieldIssue{Loc: []string{LocBody, field}, Msg: "Input should be a valid string", Type: IssueStringType}
}

// NotADatetime reports a body field that should hold an RFC 3339 timestamp.
func NotADatetime(field string) models.FieldIssue {
	return models.FieldIssue{Loc: []string{LocBody, field}, Msg: "Input should be a valid datetime", Type: IssueDatetimeType}
}

// NotAnInteger reports a path parameter that should be an integer.
func NotAnInteger(param string) models.FieldIssue {
	return models.FieldIssue{
		Loc:  []string{LocPath, param},
		Msg:  "Input should be a valid integer, unable to parse string as an integer",
		Type: IssueIntParsing,
	}
}

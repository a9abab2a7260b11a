package services

import "errors"

var (
	ErrMissingCredential = errors.New("gemini api key is not configured")
	ErrProviderCall      = errors.New("gemini call failed")
	ErrEmptyResponse     = errors.New("empty response from gemini")
	ErrMalformedResponse = errors.New("gemini response is not valid json")
	ErrSchemaViolation   = errors.New("gemini response violates the declared schema")
)

const (
	CodeMissingCredential = "MISSING_CREDENTIAL"
	CodeProviderCall      = "PROVIDER_CALL_FAILED"
	CodeEmptyResponse     = "EMPTY_RESPONSE"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeSchemaViolation   = "SCHEMA_VIOLATION"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrorCode maps an error produced by this package to a stable code used in
// HTTP bodies, metric labels and the generation log. nil maps to "".
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return CodeMissingCredential
	case errors.Is(err, ErrProviderCall):
		return CodeProviderCall
	case errors.Is(err, ErrEmptyResponse):
		return CodeEmptyResponse
	case errors.Is(err, ErrMalformedResponse):
		return CodeMalformedResponse
	case errors.Is(err, ErrSchemaViolation):
		return CodeSchemaViolation
	default:
		return CodeInternal
	}
}

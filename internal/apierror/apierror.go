// Package apierror provides the standardized error response structures for
// the API. All 4xx/5xx responses go through this package so clients see a
// consistent envelope and internals (stack traces, SQL errors) never leak.
package apierror

// APIError is the canonical error envelope.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// ValidationError carries per-field failures from request validation.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Dados inválidos", Fields: fields}
}

// Package api defines the JSON envelope shared by every HTTP endpoint.
package api

import "time"

// Error codes carried in the error envelope. Clients switch on these rather
// than on message text.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeNotFound            = "not_found"
	CodeConflict            = "conflict"
	CodeUnauthorized        = "unauthorized"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeInternal            = "internal_error"
)

// Response is the success envelope.
type Response struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ErrorBody carries a machine-readable code and a human-readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// OK wraps data in the success envelope. The message is optional.
func OK(data any, message string) Response {
	return Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Fail wraps an error code and message in the failure envelope.
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     ErrorBody{Code: code, Message: message},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Package errors provides standardized error handling for the gateway's
// HTTP boundary.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeNoFileProvided      ErrorCode = "NO_FILE_PROVIDED"
	ErrCodeFileTooLarge        ErrorCode = "FILE_TOO_LARGE"
	ErrCodeInvalidExportBody   ErrorCode = "INVALID_EXPORT_BODY"
	ErrCodeInvalidProperties   ErrorCode = "INVALID_PROPERTIES"
	ErrCodeUnsupportedFormat   ErrorCode = "UNSUPPORTED_EXPORT_FORMAT"
	ErrCodeUpstreamTimeout     ErrorCode = "EXTRACTOR_TIMEOUT"
	ErrCodeUpstreamBadStatus   ErrorCode = "EXTRACTOR_BAD_STATUS"
	ErrCodeUpstreamUnreachable ErrorCode = "EXTRACTOR_UNREACHABLE"
	ErrCodeNoBackendConfigured ErrorCode = "NO_BACKEND_CONFIGURED"
	ErrCodeExportFailed        ErrorCode = "EXPORT_FAILED"
	ErrCodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewNoFileProvidedError creates the client error for an upload with no file part.
func NewNoFileProvidedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoFileProvided,
		Message:   "No file provided",
		Details:   "multipart form field 'file' is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileTooLargeError creates the client error for an upload beyond the advertised limit.
func NewFileTooLargeError(limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileTooLarge,
		Message:   "File too large",
		Details:   fmt.Sprintf("maximum upload size is %d bytes", limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidExportBodyError creates the client error for an unparseable export request.
func NewInvalidExportBodyError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidExportBody,
		Message:   "Invalid export request body",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPropertiesError creates the client error for a non-array properties payload.
func NewInvalidPropertiesError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidProperties,
		Message:   "Properties must be a list of records",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedFormatError creates the client error for an unknown export format.
func NewUnsupportedFormatError(format string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedFormat,
		Message:   "Unsupported export format",
		Details:   fmt.Sprintf("format: %s", format),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamTimeoutError creates a retryable extractor timeout error.
func NewUpstreamTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamTimeout,
		Message:   "Extraction backend timeout",
		Details:   "upstream call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamBadStatusError creates a retryable extractor status error.
func NewUpstreamBadStatusError(status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamBadStatus,
		Message:   "Extraction backend returned an error status",
		Details:   fmt.Sprintf("status: %d", status),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamUnreachableError creates a retryable extractor connectivity error.
func NewUpstreamUnreachableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnreachable,
		Message:   "Extraction backend unreachable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoBackendConfiguredError marks the absence of an upstream base URL.
func NewNoBackendConfiguredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoBackendConfigured,
		Message:   "No extraction backend configured",
		Details:   "EXTRACTOR_BASE_URL is empty",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExportFailedError creates an internal export generation error.
func NewExportFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExportFailed,
		Message:   "Failed to generate export",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure caught at the request boundary.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// httpStatusMapping maps internal error codes to HTTP status codes.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeNoFileProvided:      http.StatusBadRequest,
	ErrCodeInvalidExportBody:   http.StatusBadRequest,
	ErrCodeInvalidProperties:   http.StatusBadRequest,
	ErrCodeUnsupportedFormat:   http.StatusBadRequest,
	ErrCodeFileTooLarge:        http.StatusRequestEntityTooLarge,
	ErrCodeUpstreamTimeout:     http.StatusBadGateway,
	ErrCodeUpstreamBadStatus:   http.StatusBadGateway,
	ErrCodeUpstreamUnreachable: http.StatusBadGateway,
	ErrCodeNoBackendConfigured: http.StatusServiceUnavailable,
	ErrCodeExportFailed:        http.StatusInternalServerError,
	ErrCodeInternal:            http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code for an error code. Unknown codes
// map to 500. Upstream codes never actually reach a client of /extract-pdf:
// the mediator absorbs them into the demo fallback before the boundary.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Normalize ensures we always have a StandardError at the request boundary.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err)
}

// IsClientError reports whether the code maps to a 4xx status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}

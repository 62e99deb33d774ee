// internal/common/errors/http.go
package errors

import (
	stderrors "errors"
	"net/http"
)

// ==========================
// 3. HTTP Boundary Integration
// ==========================

// AsStandardError normalizes any error into a StandardError.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// HTTPStatus maps an error to the status code surfaced to the caller.
// Anything outside the known taxonomy is an internal failure; no internal
// detail leaks past the boundary.
func HTTPStatus(err error) int {
	switch AsStandardError(err).Code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeApplicationNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

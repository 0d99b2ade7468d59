// internal/common/errors/handler.go
package errors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps an error to the status code the proxy boundary reports.
// Unknown actions and bad payloads are the caller's fault; everything else,
// missing configuration included, is a server-side fault per the contract.
func HTTPStatus(err error) int {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) {
		return http.StatusInternalServerError
	}

	switch stdErr.Code {
	case ErrCodeUnknownAction, ErrCodeInvalidPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the error text exposed in the {error} envelope.
// StandardError messages are written to be safe for clients; anything else
// falls back to Error().
func PublicMessage(err error) string {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return "Server error"
}

// IsRetryable reports whether the failure is transient enough that the
// configured retry policy may reissue the vendor call.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}

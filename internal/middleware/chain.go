package middleware

import (
	"net/http"

	"salescoach-api/internal/common/logger"
)

// Chain wraps the handler with the middleware stack. RequestID runs first so
// the logging middleware sees the id.
func Chain(handler http.Handler, log logger.Logger) http.Handler {
	h := handler
	h = Logging(log)(h)
	h = RequestID(h)
	return h
}

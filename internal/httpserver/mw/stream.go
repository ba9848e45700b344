package mw

import (
	"net/http"
	"time"
)

// NoWriteDeadline clears the server's WriteTimeout for long-lived streaming
// responses such as the MCP event stream.
func NoWriteDeadline(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ErrNotSupported only happens with writers that have no connection (tests).
		_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})
		next.ServeHTTP(w, r)
	})
}

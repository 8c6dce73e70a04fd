package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"eventregistration/internal/delivery/http/helpers"
)

// Recovery turns a panic in next into a 500 response and logs it with its stack.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID, _ := RequestIDFromContext(r.Context())
				logger.ErrorContext(r.Context(), "panic recovered",
					"request_id", requestID,
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgInternalError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/buildline/crm-backend/internal/transport/respond"
)

// Recovery turns panics into a 500 error envelope and logs them with a stack
// trace. http.ErrAbortHandler is re-panicked so net/http can abort the
// connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				respond.Fail(w, http.StatusInternalServerError, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}

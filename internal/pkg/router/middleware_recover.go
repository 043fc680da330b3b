package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/anshy0304/veggiefinder/internal/pkg/stacktrace"
)

// middlewareRecoverer converts a handler panic into a 500 response and logs
// the repository frames of the stack. http.ErrAbortHandler is re-raised so
// the server's own abort path still works.
//
//nolint:errcheck,gosec,contextcheck // ignore error
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:err113,errorlint // this must compare directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(r.Context(), "panic serving request", "because", rvr, "stack", paths)
			} else {
				slog.ErrorContext(r.Context(), "panic serving request", "because", rvr, "stack", string(stack))
			}

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			if r.Header.Get("Connection") != "Upgrade" {
				w.WriteHeader(http.StatusInternalServerError)
			}
			json.NewEncoder(w).Encode(errorResponse{Message: "Internal server error"})
		}()

		next.ServeHTTP(w, r)
	})
}

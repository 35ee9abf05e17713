package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/stacktrace"
)

//nolint:errcheck,gosec,contextcheck // ignore error
func middlewareRecoverer(enc *envelopeEncoder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					//nolint:err113,errorlint // this must compare directly
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					paths := stacktrace.InternalPaths(debug.Stack())
					if len(paths) == 0 {
						slog.ErrorContext(r.Context(), "panic on the server trace debug", "because", rvr, "stack", string(debug.Stack()))
					} else {
						slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", paths)
					}

					if r.Header.Get("Connection") != "Upgrade" {
						enc.failure(r.Context(), w, goerror.New(goerror.KindInternal, goerror.CodeTodoInternal, "panic recovered"))
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/config"
	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/i18n"
)

func middlewareMaintenance(cfg config.Config, enc *envelopeEncoder) Middleware {
	endpoints := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			endpoint = strings.TrimSpace(endpoint)
			if endpoint == "" {
				continue
			}
			endpoints[endpoint] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			if _, blocked := endpoints[route]; blocked {
				code := string(goerror.CodeTodoMaintenance)
				writeJSON(w, envelope{
					Status:    http.StatusServiceUnavailable,
					Msg:       i18n.Resolve(i18n.FromContext(r.Context()), i18n.TypeError, code),
					Data:      struct{}{},
					Meta:      enc.metadata(r.Context(), map[string]any{"error_code": code}),
					ErrorCode: code,
				}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

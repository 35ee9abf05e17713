package router

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/godo/internal/pkg/clock"
	"github.com/shandysiswandi/godo/internal/pkg/config"
	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/i18n"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
	"github.com/shandysiswandi/godo/internal/pkg/jwt"
	"github.com/shandysiswandi/godo/internal/pkg/uid"
	"github.com/shandysiswandi/godo/internal/pkg/validator"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be wrapped in the response
// envelope and JSON encoded) or an error. Nothing below the router
// writes directly to the wire.
type Handler func(r *Request) (any, error)

// Config holds dependencies required to build a Router.
type Config struct {
	// Config provides runtime configuration values.
	Config config.Config
	// UUID generates request correlation IDs.
	UUID uid.StringID
	// JWT validates and parses authentication tokens.
	JWT jwt.JWT
	// Instrument provides tracing and metrics helpers.
	Instrument instrument.Instrumentation
	// Clock supplies envelope timestamps.
	Clock clock.Clocker
	// PublicEndpoints lists method->route patterns that skip
	// authentication.
	PublicEndpoints map[string]map[string]struct{}
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr         *httprouter.Router
	errorCodec func(ctx context.Context, w http.ResponseWriter, err error)
	encoder    func(ctx context.Context, w http.ResponseWriter, resp any)
	mws        []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(cfg Config) *Router {
	enc := &envelopeEncoder{clock: cfg.Clock}

	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			enc.failure(r.Context(), w, goerror.NewNotFound(goerror.CodeTodoNotFound, "endpoint not found"))
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			enc.failure(r.Context(), w, goerror.New(goerror.KindValidation, goerror.CodeTodoInvalidData, "method not allowed"))
		}),
	}

	hr.GET("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		enc.success(r.Context(), w, http.StatusOK, i18n.KeySuccess, map[string]string{"name": "godo"}, nil)
	})

	errorCodec := func(ctx context.Context, w http.ResponseWriter, err error) {
		gerr, ok := goerror.From(err)
		if !ok {
			// Unclassified fault: log the detail, render a generic
			// internal error without it.
			slog.ErrorContext(ctx, "unclassified fault reached the translation boundary", "error", err)
			enc.failure(ctx, w, goerror.NewInternal(err, goerror.CodeTodoInternal))
			return
		}

		var errValidate validator.V10ValidationError
		if errors.As(err, &errValidate) {
			gerr = gerr.WithDetails("validation_errors", errValidate.Values())
		}

		enc.failure(ctx, w, gerr)
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		if code == http.StatusNoContent || resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		msgKey := i18n.KeySuccess
		if m, ok := resp.(interface {
			MessageKey() string
		}); ok {
			msgKey = m.MessageKey()
		}

		var meta map[string]any
		if m, ok := resp.(interface {
			Meta() map[string]any
		}); ok {
			meta = m.Meta()
		}

		if l, ok := resp.(interface {
			Location() string
		}); ok && l.Location() != "" {
			w.Header().Set("Location", l.Location())
		}

		enc.success(ctx, w, code, msgKey, resp, meta)
	}

	return &Router{
		hr:         hr,
		errorCodec: errorCodec,
		encoder:    okCodec,
		mws: []Middleware{
			middlewareRecoverer(enc),
			middlewareIP,
			middlewareCorrelationID(cfg.UUID),
			middlewareLocale,
			middlewareObservability(cfg.Config, cfg.Instrument),
			middlewareMaintenance(cfg.Config, enc),
			middlewareAuthentication(cfg.JWT, cfg.PublicEndpoints, enc),
		},
	}
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// GETRaw registers a GET endpoint that writes directly to the response writer.
func (r *Router) GETRaw(path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(http.MethodGet, path, Chain(h, append(r.mws, mws...)...))
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(&Request{Request: re})
		if err != nil {
			if setter, ok := w.(interface{ SetError(error) }); ok {
				setter.SetError(err)
			}
			r.errorCodec(re.Context(), w, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), append(r.mws, mws...)...))
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		slog.Error("server: failed to encode data to json", "error", err)
	}
}

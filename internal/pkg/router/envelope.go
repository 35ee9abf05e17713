package router

import (
	"context"
	"net/http"
	"time"

	"github.com/shandysiswandi/godo/internal/pkg/clock"
	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/i18n"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
)

// unknownRequestID is the sentinel used when no correlation ID was set
// upstream.
const unknownRequestID = "unknown"

// envelope is the uniform wire shape of every API response. The data
// field is the only one whose type varies; it is {} rather than absent
// when there is nothing to return.
type envelope struct {
	Status    int            `json:"status"`
	Msg       string         `json:"msg"`
	Data      any            `json:"data"`
	Meta      map[string]any `json:"meta"`
	ErrorCode string         `json:"error_code,omitempty"`
}

// envelopeEncoder renders envelopes. It is the only component that
// writes response bodies; handlers and middlewares go through it.
type envelopeEncoder struct {
	clock clock.Clocker
}

func (e *envelopeEncoder) metadata(ctx context.Context, extra map[string]any) map[string]any {
	cid := instrument.GetCorrelationID(ctx)
	if cid == "" {
		cid = unknownRequestID
	}

	meta := map[string]any{
		"timestamp":  e.clock.Now().UTC().Format(time.RFC3339),
		"request_id": cid,
	}
	for k, v := range extra {
		meta[k] = v
	}

	return meta
}

func (e *envelopeEncoder) success(ctx context.Context, w http.ResponseWriter, status int, msgKey string, data any, extraMeta map[string]any) {
	if data == nil {
		data = struct{}{}
	}

	msg := i18n.Resolve(i18n.FromContext(ctx), i18n.TypeSuccess, msgKey)

	writeJSON(w, envelope{
		Status: status,
		Msg:    msg,
		Data:   data,
		Meta:   e.metadata(ctx, extraMeta),
	}, status)
}

// failure renders a typed error. The client-facing message is always
// the canonical localized one for the wire code; developer messages
// stay in logs.
func (e *envelopeEncoder) failure(ctx context.Context, w http.ResponseWriter, gerr *goerror.Error) {
	code := string(gerr.Code())
	msg := i18n.Resolve(i18n.FromContext(ctx), i18n.TypeError, code)

	data := make(map[string]any, len(gerr.Details()))
	for k, v := range gerr.Details() {
		data[k] = v
	}

	writeJSON(w, envelope{
		Status:    gerr.StatusCode(),
		Msg:       msg,
		Data:      data,
		Meta:      e.metadata(ctx, map[string]any{"error_code": code}),
		ErrorCode: code,
	}, gerr.StatusCode())
}

package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/i18n"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
	"github.com/shandysiswandi/godo/internal/pkg/uid"
	"github.com/shandysiswandi/godo/internal/pkg/validator"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestRouter() *Router {
	return NewRouter(Config{
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
		Clock:      fixedClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		PublicEndpoints: map[string]map[string]struct{}{
			http.MethodGet:  {"/public": {}, "/created": {}, "/fail": {}, "/empty": {}, "/none": {}},
			http.MethodPost: {"/public": {}},
		},
	})
}

func do(t *testing.T, ro *Router, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	if rec.Body.Len() == 0 {
		return rec, nil
	}

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

type greetResponse struct {
	Name string `json:"name"`
}

func (greetResponse) MessageKey() string { return i18n.KeyTodoRetrieved }

func TestRouterSuccessEnvelope(t *testing.T) {
	ro := newTestRouter()
	ro.GET("/public", func(r *Request) (any, error) {
		return greetResponse{Name: "godo"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-Correlation-ID", "cid-123")
	rec, body := do(t, ro, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(http.StatusOK), body["status"])
	assert.Equal(t, "Todo retrieved successfully", body["msg"])
	assert.Equal(t, map[string]any{"name": "godo"}, body["data"])

	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok, "meta must always be present")
	assert.Equal(t, "2024-01-02T03:04:05Z", meta["timestamp"])
	assert.Equal(t, "cid-123", meta["request_id"])
	assert.NotContains(t, body, "error_code")
}

func TestRouterSuccessEnvelopeLocalized(t *testing.T) {
	ro := newTestRouter()
	ro.GET("/public", func(r *Request) (any, error) {
		return greetResponse{Name: "godo"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9")
	_, body := do(t, ro, req)

	assert.Equal(t, "할 일을 조회했습니다", body["msg"])
}

func TestRouterEmptyDataIsObjectNotAbsent(t *testing.T) {
	ro := newTestRouter()
	ro.GET("/empty", func(r *Request) (any, error) {
		return struct{}{}, nil
	})

	_, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/empty", nil))

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "data must be an object, not absent")
	assert.Empty(t, data)
}

type createdResponse struct {
	ID int64 `json:"id"`
}

func (createdResponse) MessageKey() string { return i18n.KeyTodoCreated }
func (createdResponse) StatusCode() int    { return http.StatusCreated }
func (c createdResponse) Location() string { return "/api/v1/todos/42" }

func TestRouterCreatedWithLocation(t *testing.T) {
	ro := newTestRouter()
	ro.GET("/created", func(r *Request) (any, error) {
		return createdResponse{ID: 42}, nil
	})

	rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/created", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/todos/42", rec.Header().Get("Location"))
	assert.Equal(t, float64(http.StatusCreated), body["status"])
	assert.Equal(t, "Todo created successfully", body["msg"])
}

func TestRouterNoContent(t *testing.T) {
	ro := newTestRouter()
	ro.GET("/none", func(r *Request) (any, error) {
		return nil, nil
	})

	rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/none", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, body)
}

func TestRouterErrorTranslation(t *testing.T) {

	t.Run("NotFoundWithDetails", func(t *testing.T) {
		ro := newTestRouter()
		ro.GET("/fail", func(r *Request) (any, error) {
			return nil, goerror.NewNotFound(goerror.CodeTodoNotFound, "Todo with ID 99999 not found").
				WithDetails("todo_id", int64(99999))
		})

		rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, float64(http.StatusNotFound), body["status"])
		assert.Equal(t, "E404T001", body["error_code"])
		assert.Contains(t, body["msg"], "not found")

		data := body["data"].(map[string]any)
		assert.Equal(t, float64(99999), data["todo_id"])

		meta := body["meta"].(map[string]any)
		assert.Equal(t, "E404T001", meta["error_code"])
		assert.NotEmpty(t, meta["request_id"], "correlation middleware must mint an id")
	})

	t.Run("ValidationCarriesAllViolations", func(t *testing.T) {
		ro := newTestRouter()
		ro.GET("/fail", func(r *Request) (any, error) {
			verr := validator.V10ValidationError{
				"title":    "title is a required field",
				"priority": "priority must be 5 or less",
			}
			return nil, goerror.WrapValidation(verr, goerror.CodeTodoValidation)
		})

		rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "E422T001", body["error_code"])

		data := body["data"].(map[string]any)
		violations := data["validation_errors"].(map[string]any)
		assert.Len(t, violations, 2)
	})

	t.Run("UnclassifiedFaultHidesDetail", func(t *testing.T) {
		ro := newTestRouter()
		ro.GET("/fail", func(r *Request) (any, error) {
			return nil, errors.New("pq:連接 refused on shard 7")
		})

		rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "E500T001", body["error_code"])
		assert.Equal(t, "Internal server error", body["msg"])
		assert.NotContains(t, rec.Body.String(), "shard 7")
	})

	t.Run("OTPKindStatuses", func(t *testing.T) {
		cases := []struct {
			err    *goerror.Error
			status int
			code   string
		}{
			{goerror.New(goerror.KindOTPNotFound, goerror.CodeOTPNotFound, ""), http.StatusNotFound, "E404O001"},
			{goerror.New(goerror.KindOTPMismatch, goerror.CodeOTPMismatch, ""), http.StatusBadRequest, "E400O001"},
			{goerror.New(goerror.KindOTPExpired, goerror.CodeOTPExpired, ""), http.StatusBadRequest, "E400O002"},
		}

		for _, tc := range cases {
			ro := newTestRouter()
			ro.GET("/fail", func(r *Request) (any, error) {
				return nil, tc.err
			})

			rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/fail", nil))

			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, body["error_code"])
		}
	})
}

func TestRouterAuthenticationRequired(t *testing.T) {
	ro := newTestRouter()
	ro.GET("/private", func(r *Request) (any, error) {
		return struct{}{}, nil
	})

	rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/private", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "E401U001", body["error_code"])
}

func TestRouterMalformedPathParam(t *testing.T) {
	ro := newTestRouter()
	ro.GET("/public", func(r *Request) (any, error) {
		return struct{}{}, nil
	})
	ro.GET("/fail", func(r *Request) (any, error) {
		if _, err := r.GetParamInt64("id"); err != nil {
			return nil, err
		}
		return struct{}{}, nil
	})

	rec, body := do(t, ro, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	data := body["data"].(map[string]any)
	violations := data["validation_errors"].(map[string]any)
	assert.NotEmpty(t, violations)
}

func TestEnvelopeMetadataRequestID(t *testing.T) {
	enc := &envelopeEncoder{clock: fixedClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}}

	meta := enc.metadata(context.Background(), nil)
	assert.Equal(t, "unknown", meta["request_id"], "no correlation id upstream falls back to the sentinel")

	ctx := instrument.SetCorrelationID(context.Background(), "cid-123")
	meta = enc.metadata(ctx, nil)
	assert.Equal(t, "cid-123", meta["request_id"])
}

func TestRouterGETRawBypassesEnvelope(t *testing.T) {
	ro := newTestRouter()
	ro.GETRaw("/public", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

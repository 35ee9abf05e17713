package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/godo/internal/pkg/goerror"
)

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func (r *Request) GetParam(key string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(key)
}

// GetParamInt64 reads a numeric path parameter. Malformed values are a
// validation failure carrying the field violation.
func (r *Request) GetParamInt64(key string) (int64, error) {
	paramValue := r.GetParam(key)
	value, err := strconv.ParseInt(paramValue, 10, 64)
	if err != nil {
		return 0, goerror.NewValidation(goerror.CodeTodoValidation, map[string]string{
			key: key + " must be an integer",
		})
	}
	return value, nil
}

func (r *Request) GetQuery(key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func (r *Request) GetQueries(key string) []string {
	return r.URL.Query()[key]
}

func (r *Request) GetQueryInt32(key string) (int32, error) {
	queryValue := r.GetQuery(key)
	if queryValue == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(queryValue, 10, 32)
	if err != nil {
		return 0, goerror.NewValidation(goerror.CodeTodoValidation, map[string]string{
			key: key + " must be an integer",
		})
	}

	return int32(value), nil
}

func (r *Request) GetQueryInt16(key string) (int16, error) {
	queryValue := r.GetQuery(key)
	if queryValue == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(queryValue, 10, 16)
	if err != nil {
		return 0, goerror.NewValidation(goerror.CodeTodoValidation, map[string]string{
			key: key + " must be an integer",
		})
	}

	return int16(value), nil
}

// GetQueryBool reads an optional boolean query parameter. The second
// return value reports whether the parameter was present.
func (r *Request) GetQueryBool(key string) (value, present bool, err error) {
	queryValue := r.GetQuery(key)
	if queryValue == "" {
		return false, false, nil
	}

	v, err := strconv.ParseBool(queryValue)
	if err != nil {
		return false, false, goerror.NewValidation(goerror.CodeTodoValidation, map[string]string{
			key: key + " must be a boolean",
		})
	}

	return v, true, nil
}

// DecodeBody decodes the JSON body into dst.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.New(goerror.KindValidation, goerror.CodeTodoInvalidFormat, "Invalid request body")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.New(goerror.KindValidation, goerror.CodeTodoInvalidFormat, "Invalid request body")
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.New(goerror.KindValidation, goerror.CodeTodoInvalidFormat, "Invalid request body")
	}

	return nil
}

// Package goerror defines the application's closed error taxonomy.
//
// Domain code raises *Error values carrying a Kind, a stable wire Code,
// and optional structured details. The router's error codec is the only
// place these are translated into HTTP responses.
package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates that the request could not be completed due to a conflict.
	ErrConflict = errors.New("resource conflict")
)

// Kind classifies errors into the closed set of categories the
// translation boundary distinguishes. The set is exhaustive: the error
// codec switches over it without a default branch for domain kinds.
type Kind int

const (
	// KindInternal represents an unclassified server-side fault.
	KindInternal Kind = iota
	// KindStorage represents a persistence or key-value store failure.
	KindStorage
	// KindValidation represents malformed or out-of-range input.
	KindValidation
	// KindNotFound represents an absent entity.
	KindNotFound
	// KindUnauthorized represents a missing or invalid credential.
	KindUnauthorized
	// KindForbidden represents an authenticated but not permitted request.
	KindForbidden
	// KindConflict represents a uniqueness violation.
	KindConflict
	// KindOTPNotFound represents a passcode that was never issued,
	// already consumed, or expired.
	KindOTPNotFound
	// KindOTPMismatch represents a submitted passcode that does not
	// match the active one.
	KindOTPMismatch
	// KindOTPExpired represents a passcode past its validity window.
	KindOTPExpired
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindStorage:
		return "STORAGE"
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindConflict:
		return "CONFLICT"
	case KindOTPNotFound:
		return "OTP_NOT_FOUND"
	case KindOTPMismatch:
		return "OTP_MISMATCH"
	case KindOTPExpired:
		return "OTP_EXPIRED"
	case KindInternal:
		return "INTERNAL"
	default:
		return "INTERNAL"
	}
}

// StatusCode maps the kind to its HTTP status.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound, KindOTPNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindOTPMismatch, KindOTPExpired:
		return http.StatusBadRequest
	case KindStorage, KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Code is a stable client-facing error identifier, namespaced by domain
// and HTTP class: E<status><domain letter><sequence>. Codes are part of
// the wire contract and must never change meaning across releases.
type Code string

// Todo domain (T).
const (
	CodeTodoInvalidData     Code = "E400T001"
	CodeTodoInvalidTitle    Code = "E400T002"
	CodeTodoInvalidPriority Code = "E400T003"
	CodeTodoInvalidStatus   Code = "E400T004"
	CodeTodoUnauthorized    Code = "E401T001"
	CodeTodoForbidden       Code = "E403T001"
	CodeTodoNotFound        Code = "E404T001"
	CodeTodoAlreadyExists   Code = "E409T001"
	CodeTodoValidation      Code = "E422T001"
	CodeTodoInvalidFormat   Code = "E422T002"
	CodeTodoInternal        Code = "E500T001"
	CodeTodoStorage         Code = "E500T002"
	CodeTodoMaintenance     Code = "E503T001"
)

// User domain (U).
const (
	CodeUserInvalidData   Code = "E400U001"
	CodeUserUnauthorized  Code = "E401U001"
	CodeUserForbidden     Code = "E403U001"
	CodeUserNotFound      Code = "E404U001"
	CodeUserAlreadyExists Code = "E409U001"
	CodeUserValidation    Code = "E422U001"
	CodeUserInternal      Code = "E500U001"
	CodeUserStorage       Code = "E500U002"
)

// OTP domain (O).
const (
	CodeOTPMismatch Code = "E400O001"
	CodeOTPExpired  Code = "E400O002"
	CodeOTPNotFound Code = "E404O001"
)

// Error is the structured error used across the application.
//
// It can wrap an underlying cause while also carrying a kind, a stable
// wire code, a developer-facing message, and structured details that
// end up in the error envelope's data payload.
type Error struct {
	err     error
	msg     string
	kind    Kind
	code    Code
	details map[string]any
}

// New creates an error with the given kind, wire code, and message.
func New(kind Kind, code Code, msg string) *Error {
	return &Error{kind: kind, code: code, msg: msg}
}

// Wrap creates an error that carries err as its underlying cause.
func Wrap(err error, kind Kind, code Code, msg string) *Error {
	return &Error{err: err, kind: kind, code: code, msg: msg}
}

// NewValidation creates a validation error carrying the full list of
// field violations. The fields map is rendered under
// data.validation_errors, never truncated to the first violation.
func NewValidation(code Code, fields map[string]string) *Error {
	details := make(map[string]any, 1)
	if len(fields) > 0 {
		details["validation_errors"] = fields
	}

	return &Error{kind: KindValidation, code: code, msg: "Invalid input data", details: details}
}

// WrapValidation creates a validation error wrapping the raw validator
// failure. The translation boundary extracts the field violations from
// the wrapped error.
func WrapValidation(err error, code Code) *Error {
	return &Error{err: err, kind: KindValidation, code: code, msg: "Invalid input data"}
}

// WithDetails attaches key/value pairs to the error's structured
// details. Odd trailing keys are ignored.
func (e *Error) WithDetails(kv ...any) *Error {
	if e.details == nil {
		e.details = make(map[string]any, len(kv)/2)
	}

	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e.details[key] = kv[i+1]
	}

	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}

	if e.err != nil {
		return e.err.Error()
	}

	return e.kind.String()
}

// String returns a verbose representation for debugging and logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Kind: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.kind.String(), e.code, e.msg, e.err,
	)
}

// Kind returns the error's category.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the stable wire code.
func (e *Error) Code() Code {
	return e.code
}

// Msg returns the developer-facing message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Details returns the structured details map, if any.
func (e *Error) Details() map[string]any {
	return e.details
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error to its HTTP status code.
func (e *Error) StatusCode() int {
	return e.kind.StatusCode()
}

// From extracts a *Error from err's chain. The second return value
// reports whether the extraction succeeded; callers treat false as an
// unclassified fault.
func From(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}

	return nil, false
}

// NewNotFound creates a not-found error for an absent entity.
func NewNotFound(code Code, msg string) *Error {
	return &Error{kind: KindNotFound, code: code, msg: msg}
}

// NewUnauthorized creates an authentication failure error.
func NewUnauthorized(code Code, msg string) *Error {
	return &Error{kind: KindUnauthorized, code: code, msg: msg}
}

// NewForbidden creates an authorization failure error.
func NewForbidden(code Code, msg string) *Error {
	return &Error{kind: KindForbidden, code: code, msg: msg}
}

// NewConflict creates a uniqueness violation error.
func NewConflict(code Code, msg string) *Error {
	return &Error{kind: KindConflict, code: code, msg: msg}
}

// NewStorage creates a storage failure error wrapping the low-level
// cause. The cause is logged at the translation boundary but never
// rendered to the client.
func NewStorage(err error, code Code) *Error {
	return &Error{err: err, kind: KindStorage, code: code, msg: "Database error"}
}

// NewInternal creates an unclassified fault wrapping the cause.
func NewInternal(err error, code Code) *Error {
	return &Error{err: err, kind: KindInternal, code: code, msg: "Internal server error"}
}

package pkgerror

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested route or resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrMethodNotAllowed indicates the route exists but not for the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Type classifies errors into high-level buckets.
type Type int

const (
	TypeServer     Type = iota // Server-side failures (encoding, panics, unknown errors).
	TypeBusiness               // Requests that are well-formed but cannot be served.
	TypeValidation             // Input that failed a type or format check.
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier mapped to an HTTP status code.
type Code int

const (
	CodeInternal         Code = iota // Internal or unspecified error.
	CodeInvalidInput                 // Request decoded but a value has the wrong type or format.
	CodeNotFound                     // No route or resource.
	CodeMethodNotAllowed             // Route exists for other methods only.
	CodeTimeout                      // Handler exceeded its deadline.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeMethodNotAllowed:
		return "ERROR_CODE_METHOD_NOT_ALLOWED"
	case CodeTimeout:
		return "ERROR_CODE_TIMEOUT"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is the structured error returned by handlers.
//
// It optionally wraps a cause, and carries a user-facing message, a type, a
// code and, for validation failures, a reason per offending field.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Request cannot be served"
	default:
		return "Internal error"
	}
}

// String returns a verbose representation for logs.
func (e *Error) String() string {
	return fmt.Sprintf(
		"type=%s code=%s msg=%q fields=%v cause=%v",
		e.errType,
		e.code,
		e.msg,
		e.fields,
		e.err,
	)
}

// Msg returns the user-facing message.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Fields returns a copy of the per-field reasons, or nil when there are none.
func (e *Error) Fields() map[string]string {
	if len(e.fields) == 0 {
		return nil
	}
	return maps.Clone(e.fields)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) *Error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer wraps an unexpected failure.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewNotFound reports a missing route or resource.
func NewNotFound(msg string) error {
	return new(ErrNotFound, msg, TypeBusiness, CodeNotFound)
}

// NewMethodNotAllowed reports a known route requested with the wrong method.
func NewMethodNotAllowed() error {
	return new(ErrMethodNotAllowed, "method not allowed", TypeBusiness, CodeMethodNotAllowed)
}

// NewTimeout reports a handler that did not finish before its deadline.
func NewTimeout(err error) error {
	return new(err, "request timeout", TypeServer, CodeTimeout)
}

// NewInvalidField creates a validation error for one named input, such as a
// path parameter, that failed a type or format check.
func NewInvalidField(field, reason string) error {
	e := new(fmt.Errorf("%s: %s", field, reason), "validation error", TypeValidation, CodeInvalidInput)
	e.fields = map[string]string{field: reason}
	return e
}

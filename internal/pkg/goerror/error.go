// Package goerror defines the application error model. Usecases return these
// structured errors and the HTTP layer maps them to status codes and response
// bodies without inspecting error strings.
package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the storage layer. Repositories translate driver
// errors into these so usecases can branch with errors.Is.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict")
)

// Type is the coarse classification of an error.
type Type int

const (
	TypeServer Type = iota
	TypeBusiness
	TypeValidation
)

var typeNames = map[Type]string{
	TypeServer:     "ERROR_TYPE_SERVER",
	TypeBusiness:   "ERROR_TYPE_BUSINESS",
	TypeValidation: "ERROR_TYPE_VALIDATION",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "ERROR_TYPE_UNKNOWN"
}

// Code identifies the failure precisely enough to pick an HTTP status.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalidFormat
	CodeInvalidInput
	CodeNotFound
	CodeConflict
	CodeTooManyRequest
	CodeUnauthorized
	CodeForbidden
	CodeTimeout
)

var codeNames = map[Code]string{
	CodeInternal:       "ERROR_CODE_INTERNAL",
	CodeInvalidFormat:  "ERROR_CODE_INVALID_FORMAT",
	CodeInvalidInput:   "ERROR_CODE_INVALID_INPUT",
	CodeNotFound:       "ERROR_CODE_NOT_FOUND",
	CodeConflict:       "ERROR_CODE_CONFLICT",
	CodeTooManyRequest: "ERROR_CODE_TOO_MANY_REQUESTS",
	CodeUnauthorized:   "ERROR_CODE_UNAUTHORIZED",
	CodeForbidden:      "ERROR_CODE_FORBIDDEN",
	CodeTimeout:        "ERROR_CODE_TIMEOUT",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "ERROR_CODE_INTERNAL"
}

var codeStatus = map[Code]int{
	CodeInternal:       http.StatusInternalServerError,
	CodeInvalidFormat:  http.StatusBadRequest,
	CodeInvalidInput:   http.StatusUnprocessableEntity,
	CodeNotFound:       http.StatusNotFound,
	CodeConflict:       http.StatusConflict,
	CodeTooManyRequest: http.StatusTooManyRequests,
	CodeUnauthorized:   http.StatusUnauthorized,
	CodeForbidden:      http.StatusForbidden,
	CodeTimeout:        http.StatusRequestTimeout,
}

// Error carries a user-facing message alongside the classification and an
// optional wrapped cause. Validation errors additionally carry per-field
// messages.
type Error struct {
	cause   error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

func (e *Error) Error() string {
	switch {
	case e.cause != nil:
		return e.cause.Error()
	case e.msg != "":
		return e.msg
	default:
		return e.errType.String()
	}
}

// String is the verbose form used in logs.
func (e *Error) String() string {
	return fmt.Sprintf("type=%s code=%s msg=%q cause=%v",
		e.errType, e.code, e.msg, e.cause)
}

// Msg is the message safe to show to API clients.
func (e *Error) Msg() string { return e.msg }

// Type returns the coarse classification.
func (e *Error) Type() Type { return e.errType }

// Code returns the precise failure code.
func (e *Error) Code() Code { return e.code }

// Fields returns per-field validation messages, nil when not a validation
// failure.
func (e *Error) Fields() map[string]string { return e.fields }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.cause }

// StatusCode maps the code to an HTTP status.
func (e *Error) StatusCode() int {
	if s, ok := codeStatus[e.code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// NewServer wraps an unexpected failure. The client sees a generic message;
// the cause stays available for logging.
func NewServer(err error) error {
	return &Error{cause: err, msg: "Internal server error", errType: TypeServer, code: CodeInternal}
}

// NewBusiness builds a business rule violation with the given client message.
// Trailing key/value pairs become machine-readable fields on the response.
func NewBusiness(msg string, code Code, kv ...string) error {
	return &Error{msg: msg, errType: TypeBusiness, code: code, fields: pairFields(kv)}
}

// NewInvalidInput builds a validation failure. Either pass the validator
// error, or nil plus key/value pairs naming the offending fields.
func NewInvalidInput(err error, kv ...string) error {
	if err != nil {
		return &Error{cause: err, msg: "Validation error", errType: TypeValidation, code: CodeInvalidInput}
	}
	if len(kv)%2 != 0 {
		return NewInvalidFormat()
	}
	return &Error{msg: "Validation error", errType: TypeValidation, code: CodeInvalidInput, fields: pairFields(kv)}
}

// NewInvalidFormat builds a malformed-request error, optionally with a
// custom client message.
func NewInvalidFormat(msgs ...string) error {
	msg := "Invalid request body"
	if len(msgs) > 0 {
		msg = msgs[0]
	}
	return &Error{msg: msg, errType: TypeValidation, code: CodeInvalidFormat}
}

func pairFields(kv []string) map[string]string {
	if len(kv) < 2 {
		return nil
	}
	fields := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	return fields
}

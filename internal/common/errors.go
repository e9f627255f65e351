package common

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation     Code = "validation"
	CodeNotFound       Code = "not_found"
	CodeSchemaMismatch Code = "schema_mismatch"
	CodeRemoteRead     Code = "remote_read"
	CodeRemoteWrite    Code = "remote_write"
	CodeUpload         Code = "upload"
	CodeInternal       Code = "internal"
)

// Error carries a machine-checkable code alongside the message. Fields is
// only populated for validation errors (field name -> problem).
type Error struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func NewError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRemoteRead, CodeRemoteWrite, CodeUpload:
		return http.StatusBadGateway
	case CodeSchemaMismatch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

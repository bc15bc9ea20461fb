package guildhttp

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
	"github.com/go-playground/validator/v10"
)

// ErrorKind represents a machine-readable error category.
type ErrorKind string

const (
	// Conversion failures. No request was sent.
	KindAuditReason     ErrorKind = "audit_reason"
	KindBuildingRequest ErrorKind = "building_request"
	KindBuilderConsumed ErrorKind = "builder_consumed"
	KindInvalidRoute    ErrorKind = "invalid_route"

	// Transport failures.
	KindConnection ErrorKind = "connection"
	KindTimeout    ErrorKind = "timeout"
	KindCanceled   ErrorKind = "canceled"
	KindResponse   ErrorKind = "response"
	KindProtocol   ErrorKind = "protocol"

	// KindParsing indicates a response body could not be decoded into the
	// requested model.
	KindParsing ErrorKind = "parsing"
)

// IsConversion reports whether the kind is raised before anything reaches
// the transport. KindAuditReason belongs to this class whether it is
// returned directly by a builder's Reason method or later from a future.
func (k ErrorKind) IsConversion() bool {
	switch k {
	case KindAuditReason, KindBuildingRequest, KindBuilderConsumed, KindInvalidRoute:
		return true
	}
	return false
}

// IsTransport reports whether the kind originates in the transport.
func (k ErrorKind) IsTransport() bool {
	switch k {
	case KindConnection, KindTimeout, KindCanceled, KindResponse, KindProtocol:
		return true
	}
	return false
}

// ErrBuilderConsumed is the cause of a KindBuilderConsumed error.
var ErrBuilderConsumed = errors.New("builder already executed")

// Error is the single error type delivered by a ResponseFuture.
type Error struct {
	Kind    ErrorKind
	Message string

	// Status is the HTTP status for KindResponse, zero otherwise.
	Status int

	// Code is the API's numeric error code for KindResponse, when present.
	Code int

	Details map[string]any

	cause error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsConversion reports whether the request failed before being sent.
func (e *Error) IsConversion() bool { return e.Kind.IsConversion() }

// IsTransport reports whether the request failed in the transport.
func (e *Error) IsTransport() bool { return e.Kind.IsTransport() }

// NewError creates a new error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Errorf creates a new error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	return e.WithDetails(map[string]any{key: value})
}

// WithDetails returns a new Error with the provided map merged into details.
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	out := *e
	out.Details = merged
	return &out
}

func (e *Error) withCause(err error) *Error {
	e.cause = err
	return e
}

// conversionError maps a failure of TryIntoRequest or Reason onto an Error.
func conversionError(err error) *Error {
	if err == nil {
		return nil
	}

	var gErr *Error
	if errors.As(err, &gErr) {
		return gErr
	}

	if errors.Is(err, ErrBuilderConsumed) {
		return NewError(KindBuilderConsumed, err.Error()).withCause(err)
	}

	var reasonErr *request.AuditReasonError
	if errors.As(err, &reasonErr) {
		return NewError(KindAuditReason, reasonErr.Error()).
			WithDetail("reason", string(reasonErr.Kind)).
			withCause(err)
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		return fromValidation(KindInvalidRoute, valErrs).withCause(err)
	}

	return NewError(KindBuildingRequest, err.Error()).withCause(err)
}

func fromValidation(kind ErrorKind, valErrs validator.ValidationErrors) *Error {
	details := make(map[string]any, len(valErrs))
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Field()] = msg
		messages = append(messages, ve.Field()+": "+msg)
	}
	return &Error{
		Kind:    kind,
		Message: strings.Join(messages, "; "),
		Details: details,
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		if ve.Kind() == reflect.String {
			return "required"
		}
		return "must be a nonzero id"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// FromTransport maps an error returned by a transport onto an Error.
// Errors that are already *Error pass through unchanged.
func FromTransport(err error) *Error {
	if err == nil {
		return nil
	}

	var gErr *Error
	if errors.As(err, &gErr) {
		return gErr
	}

	te := transport.Classify(err)
	kind := KindConnection
	switch te.Type {
	case transport.ErrorTypeTimeout:
		kind = KindTimeout
	case transport.ErrorTypeCanceled:
		kind = KindCanceled
	case transport.ErrorTypeResponse:
		kind = KindResponse
	case transport.ErrorTypeProtocol:
		kind = KindProtocol
	}
	return &Error{
		Kind:    kind,
		Message: te.Message,
		Status:  te.StatusCode,
		Code:    te.Code,
		cause:   te,
	}
}

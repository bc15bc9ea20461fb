package request

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// HeaderAuditLogReason is the header carrying an audit log reason.
const HeaderAuditLogReason = "X-Audit-Log-Reason"

// AuditReasonMaxLength is the maximum length of a reason, in characters.
const AuditReasonMaxLength = 512

var validate = validator.New()

func init() {
	err := validate.RegisterValidation("encodable", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("request: registering encodable validation: %v", err))
	}
}

var auditReasonTag = fmt.Sprintf("required,max=%d,encodable", AuditReasonMaxLength)

// AuditLogReason is implemented by builders of endpoints that accept an
// audit log reason. Reason validates the reason immediately. On failure the
// builder is returned unchanged alongside an *AuditReasonError; on success
// the reason replaces any previously set one.
type AuditLogReason[T any] interface {
	Reason(reason string) (T, error)
}

// AuditReasonErrorKind identifies which constraint a reason violated.
type AuditReasonErrorKind string

const (
	AuditReasonEmpty        AuditReasonErrorKind = "empty"
	AuditReasonTooLong      AuditReasonErrorKind = "too_long"
	AuditReasonNotEncodable AuditReasonErrorKind = "not_encodable"
)

// AuditReasonError is returned when an audit log reason is rejected.
type AuditReasonError struct {
	Kind   AuditReasonErrorKind
	Reason string
}

func (e *AuditReasonError) Error() string {
	switch e.Kind {
	case AuditReasonEmpty:
		return "audit log reason is empty"
	case AuditReasonTooLong:
		return fmt.Sprintf("audit log reason is %d characters, at most %d allowed",
			utf8.RuneCountInString(e.Reason), AuditReasonMaxLength)
	case AuditReasonNotEncodable:
		return "audit log reason is not valid UTF-8"
	default:
		return "invalid audit log reason"
	}
}

// ValidateAuditReason checks that reason can be sent as an audit log reason
// and returns it unchanged.
func ValidateAuditReason(reason string) (string, error) {
	err := validate.Var(reason, auditReasonTag)
	if err == nil {
		return reason, nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) || len(valErrs) == 0 {
		return "", fmt.Errorf("request: validating audit reason: %w", err)
	}
	kind := AuditReasonNotEncodable
	switch valErrs[0].Tag() {
	case "required":
		kind = AuditReasonEmpty
	case "max":
		kind = AuditReasonTooLong
	}
	return "", &AuditReasonError{Kind: kind, Reason: reason}
}

// AuditHeader validates reason and returns the header carrying it,
// percent-encoded for transport.
func AuditHeader(reason string) (http.Header, error) {
	valid, err := ValidateAuditReason(reason)
	if err != nil {
		return nil, err
	}
	h := make(http.Header, 1)
	h.Set(HeaderAuditLogReason, url.PathEscape(valid))
	return h, nil
}

package guildhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/routing"
	"github.com/broady/guildhttp/transport"
)

func TestNewError(t *testing.T) {
	err := NewError(KindResponse, "resource not found")
	if err.Kind != KindResponse {
		t.Errorf("expected kind %s, got %s", KindResponse, err.Kind)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(KindBuildingRequest, "invalid field: %s", "name")
	if err.Kind != KindBuildingRequest {
		t.Errorf("expected kind %s, got %s", KindBuildingRequest, err.Kind)
	}
	if err.Message != "invalid field: name" {
		t.Errorf("expected formatted message, got %s", err.Message)
	}
}

func TestErrorError(t *testing.T) {
	err := NewError(KindConnection, "dial failed")
	if got, want := err.Error(), "connection: dial failed"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	err = &Error{Kind: KindResponse, Status: 404, Message: "Unknown Ban"}
	if got, want := err.Error(), "response (status 404): Unknown Ban"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestErrorKind_Classes(t *testing.T) {
	conversion := []ErrorKind{KindAuditReason, KindBuildingRequest, KindBuilderConsumed, KindInvalidRoute}
	transportKinds := []ErrorKind{KindConnection, KindTimeout, KindCanceled, KindResponse, KindProtocol}

	for _, k := range conversion {
		if !k.IsConversion() || k.IsTransport() {
			t.Errorf("%s: expected conversion kind", k)
		}
	}
	for _, k := range transportKinds {
		if k.IsConversion() || !k.IsTransport() {
			t.Errorf("%s: expected transport kind", k)
		}
	}
	if KindParsing.IsConversion() || KindParsing.IsTransport() {
		t.Error("parsing is neither a conversion nor a transport kind")
	}
}

func TestWithDetail(t *testing.T) {
	base := NewError(KindInvalidRoute, "bad")
	withOne := base.WithDetail("a", 1)
	withTwo := withOne.WithDetails(map[string]any{"b": 2})

	if base.Details != nil {
		t.Errorf("base error was mutated: %v", base.Details)
	}
	if len(withOne.Details) != 1 {
		t.Errorf("expected 1 detail, got %v", withOne.Details)
	}
	if withTwo.Details["a"] != 1 || withTwo.Details["b"] != 2 {
		t.Errorf("expected merged details, got %v", withTwo.Details)
	}
	if withTwo.WithDetails(nil) != withTwo {
		t.Error("expected empty details to return the same error")
	}
}

func TestConversionError(t *testing.T) {
	_, routeErr := request.FromRoute(routing.GetEmojis{}, request.ShapeList)
	_, reasonErr := request.ValidateAuditReason("")
	existing := NewError(KindProtocol, "kept")

	tests := []struct {
		name     string
		input    error
		wantKind ErrorKind
	}{
		{name: "passthrough", input: existing, wantKind: KindProtocol},
		{name: "consumed", input: ErrBuilderConsumed, wantKind: KindBuilderConsumed},
		{name: "audit reason", input: reasonErr, wantKind: KindAuditReason},
		{name: "invalid route", input: routeErr, wantKind: KindInvalidRoute},
		{name: "other", input: errors.New("request: encoding body: nope"), wantKind: KindBuildingRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conversionError(tt.input)
			if got.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, got.Kind)
			}
			if !errors.Is(got, tt.input) {
				t.Errorf("expected error to wrap %v", tt.input)
			}
		})
	}

	if conversionError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestConversionError_ValidationDetails(t *testing.T) {
	_, err := request.FromRoute(routing.DeleteBan{GuildID: 1}, request.ShapeEmpty)
	got := conversionError(err)
	if got.Kind != KindInvalidRoute {
		t.Fatalf("expected invalid_route, got %s", got.Kind)
	}
	if got.Details["UserID"] != "must be a nonzero id" {
		t.Errorf("expected UserID detail, got %v", got.Details)
	}
	if _, ok := got.Details["GuildID"]; ok {
		t.Errorf("GuildID is valid and should not be reported: %v", got.Details)
	}
	if !strings.Contains(got.Message, "UserID") {
		t.Errorf("expected message to name the field, got %q", got.Message)
	}
}

func TestConversionError_AuditReasonDetail(t *testing.T) {
	_, err := request.ValidateAuditReason(strings.Repeat("a", request.AuditReasonMaxLength+1))
	got := conversionError(err)
	if got.Details["reason"] != string(request.AuditReasonTooLong) {
		t.Errorf("expected too_long detail, got %v", got.Details)
	}
	var reasonErr *request.AuditReasonError
	if !errors.As(got, &reasonErr) {
		t.Error("expected *request.AuditReasonError in chain")
	}
}

func TestFromTransport(t *testing.T) {
	tests := []struct {
		name       string
		input      error
		wantKind   ErrorKind
		wantStatus int
	}{
		{
			name:       "response",
			input:      &transport.Error{Type: transport.ErrorTypeResponse, StatusCode: http.StatusForbidden, Code: 50013, Message: "Missing Permissions"},
			wantKind:   KindResponse,
			wantStatus: http.StatusForbidden,
		},
		{name: "timeout", input: &transport.Error{Type: transport.ErrorTypeTimeout}, wantKind: KindTimeout},
		{name: "canceled", input: context.Canceled, wantKind: KindCanceled},
		{name: "deadline", input: fmt.Errorf("waiting: %w", context.DeadlineExceeded), wantKind: KindTimeout},
		{name: "protocol", input: &transport.Error{Type: transport.ErrorTypeProtocol}, wantKind: KindProtocol},
		{name: "connection", input: errors.New("connection refused"), wantKind: KindConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTransport(tt.input)
			if got.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, got.Kind)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, got.Status)
			}
			if !errors.Is(got, tt.input) {
				t.Errorf("expected error to wrap %v", tt.input)
			}
		})
	}

	if FromTransport(nil) != nil {
		t.Error("expected nil for nil error")
	}
	if got := FromTransport(tests[0].input); got.Code != 50013 {
		t.Errorf("expected API code 50013, got %d", got.Code)
	}
}

package guildhttp

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/broady/guildhttp/model"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/testutil"
)

func TestDeleteBan_NoReason(t *testing.T) {
	c, tr := newTestClient()

	if _, err := c.DeleteBan(100, 200).Exec(context.Background()).Await(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodDelete)
	testutil.AssertPath(t, req, "guilds/100/bans/200")
	testutil.AssertNoQuery(t, req)
	testutil.AssertNoHeader(t, req, request.HeaderAuditLogReason)
	if req.Shape() != request.ShapeEmpty {
		t.Errorf("expected empty shape, got %s", req.Shape())
	}
}

func TestDeleteBan_WithReason(t *testing.T) {
	c, tr := newTestClient()

	b, err := c.DeleteBan(100, 200).Reason("spamming")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Exec(context.Background()).Await(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodDelete)
	testutil.AssertPath(t, req, "guilds/100/bans/200")
	testutil.AssertHeader(t, req, request.HeaderAuditLogReason, "spamming")
}

func TestDeleteBan_ReasonLastWriteWins(t *testing.T) {
	c, _ := newTestClient()

	b := c.DeleteBan(100, 200)
	if _, err := b.Reason("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Reason("second reason"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := b.TryIntoRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Headers().Values(request.HeaderAuditLogReason); len(got) != 1 || got[0] != "second%20reason" {
		t.Errorf("expected only the second reason, got %v", got)
	}
}

func TestDeleteBan_InvalidReasonKeepsState(t *testing.T) {
	c, tr := newTestClient()

	b, err := c.DeleteBan(100, 200).Reason("valid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same, err := b.Reason(strings.Repeat("x", request.AuditReasonMaxLength+1))
	if err == nil {
		t.Fatal("expected error for oversized reason")
	}
	if same != b {
		t.Error("expected the same builder to be returned")
	}
	var gErr *Error
	if !errors.As(err, &gErr) || gErr.Kind != KindAuditReason {
		t.Errorf("expected audit_reason error, got %v", err)
	}
	if !gErr.IsConversion() || gErr.IsTransport() {
		t.Error("expected audit_reason to be a conversion-class error")
	}
	var reasonErr *request.AuditReasonError
	if !errors.As(err, &reasonErr) || reasonErr.Kind != request.AuditReasonTooLong {
		t.Errorf("expected too_long reason error, got %v", err)
	}

	if _, err := b.Exec(context.Background()).Await(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertHeader(t, tr.LastRequest(t), request.HeaderAuditLogReason, "valid")
}

func TestDeleteBan_EmptyReasonRejected(t *testing.T) {
	c, _ := newTestClient()

	b := c.DeleteBan(100, 200)
	if _, err := b.Reason(""); err == nil {
		t.Fatal("expected error for empty reason")
	}
	req, err := b.TryIntoRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertNoHeader(t, req, request.HeaderAuditLogReason)
}

func TestDeleteBan_ZeroIDNoTransport(t *testing.T) {
	c, tr := newTestClient()

	gErr := awaitError(t, c.DeleteBan(0, 200).Exec(context.Background()))
	if gErr.Kind != KindInvalidRoute {
		t.Errorf("expected invalid_route, got %s", gErr.Kind)
	}
	if !gErr.IsConversion() {
		t.Error("expected a conversion error")
	}
	testutil.AssertNoCalls(t, tr)
}

func TestCreateBan(t *testing.T) {
	c, tr := newTestClient()

	b, err := c.CreateBan(100, 200).DeleteMessageDays(0).Reason("raid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Exec(context.Background()).Await(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodPut)
	testutil.AssertPath(t, req, "guilds/100/bans/200")
	testutil.AssertQuery(t, req, "delete_message_days", "0")
	testutil.AssertHeader(t, req, request.HeaderAuditLogReason, "raid")
}

func TestCreateBan_NoOptionalFields(t *testing.T) {
	c, tr := newTestClient()

	if _, err := c.CreateBan(100, 200).Exec(context.Background()).Await(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertNoQuery(t, tr.LastRequest(t))
}

func TestCreateBan_DeleteMessageDaysOutOfRange(t *testing.T) {
	c, tr := newTestClient()

	gErr := awaitError(t, c.CreateBan(100, 200).DeleteMessageDays(8).Exec(context.Background()))
	if gErr.Kind != KindInvalidRoute {
		t.Errorf("expected invalid_route, got %s", gErr.Kind)
	}
	if _, ok := gErr.Details["DeleteMessageDays"]; !ok {
		t.Errorf("expected DeleteMessageDays detail, got %v", gErr.Details)
	}
	testutil.AssertNoCalls(t, tr)
}

func TestGetBan(t *testing.T) {
	c, tr := newTestClient()
	tr.RespondJSON(http.StatusOK, map[string]any{
		"reason": "spam",
		"user":   map[string]any{"id": "200", "username": "spammer", "discriminator": "0001"},
	})

	ban := awaitModel(t, c.Ban(100, 200).Exec(context.Background()))
	if ban.User.ID != model.UserID(200) || ban.Reason == nil || *ban.Reason != "spam" {
		t.Errorf("unexpected ban %+v", ban)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodGet)
	testutil.AssertPath(t, req, "guilds/100/bans/200")
}

func TestGetBans(t *testing.T) {
	c, tr := newTestClient()
	tr.RespondJSON(http.StatusOK, []map[string]any{
		{"reason": nil, "user": map[string]any{"id": "1", "username": "a", "discriminator": "0"}},
		{"reason": nil, "user": map[string]any{"id": "2", "username": "b", "discriminator": "0"}},
	})

	bans := awaitModel(t, c.Bans(100).Exec(context.Background()))
	if len(bans) != 2 || bans[1].User.ID != 2 {
		t.Errorf("unexpected bans %+v", bans)
	}

	req := tr.LastRequest(t)
	testutil.AssertPath(t, req, "guilds/100/bans")
	if req.Shape() != request.ShapeList {
		t.Errorf("expected list shape, got %s", req.Shape())
	}
}

package guildhttp

import (
	"context"
	"net/http"
	"testing"

	"github.com/broady/guildhttp/model"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/testutil"
)

func TestGetEmojis(t *testing.T) {
	c, tr := newTestClient()
	tr.RespondJSON(http.StatusOK, []model.Emoji{{ID: 1, Name: "blob"}, {ID: 2, Name: "cat"}})

	emojis := awaitModel(t, c.Emojis(100).Exec(context.Background()))
	if len(emojis) != 2 || emojis[1].Name != "cat" {
		t.Errorf("unexpected emojis %+v", emojis)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodGet)
	testutil.AssertPath(t, req, "guilds/100/emojis")
	testutil.AssertNoQuery(t, req)
	if req.Shape() != request.ShapeList {
		t.Errorf("expected list shape, got %s", req.Shape())
	}
}

func TestGetEmoji(t *testing.T) {
	c, tr := newTestClient()
	tr.RespondJSON(http.StatusOK, model.Emoji{ID: 5, Name: "blob", Animated: true})

	emoji := awaitModel(t, c.Emoji(100, 5).Exec(context.Background()))
	if emoji.ID != 5 || !emoji.Animated {
		t.Errorf("unexpected emoji %+v", emoji)
	}
	testutil.AssertPath(t, tr.LastRequest(t), "guilds/100/emojis/5")
}

func TestCreateEmoji(t *testing.T) {
	c, tr := newTestClient()
	tr.RespondJSON(http.StatusCreated, model.Emoji{ID: 9, Name: "blob"})

	b, err := c.CreateEmoji(100, "blob", "data:image/png;base64,AAAA").Roles(3, 4).Reason("new emoji")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	emoji := awaitModel(t, b.Exec(context.Background()))
	if emoji.ID != 9 {
		t.Errorf("unexpected emoji %+v", emoji)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodPost)
	testutil.AssertPath(t, req, "guilds/100/emojis")
	testutil.AssertHeader(t, req, "Content-Type", "application/json")
	testutil.AssertHeader(t, req, request.HeaderAuditLogReason, "new%20emoji")
	testutil.AssertJSONBody(t, req, map[string]any{
		"name":  "blob",
		"image": "data:image/png;base64,AAAA",
		"roles": []string{"3", "4"},
	})
}

func TestCreateEmoji_InvalidBody(t *testing.T) {
	tests := []struct {
		name       string
		emojiName  string
		image      string
		wantDetail string
	}{
		{name: "short name", emojiName: "a", image: "data:", wantDetail: "Name"},
		{name: "missing image", emojiName: "blob", image: "", wantDetail: "Image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newTestClient()
			gErr := awaitError(t, c.CreateEmoji(100, tt.emojiName, tt.image).Exec(context.Background()))
			if gErr.Kind != KindBuildingRequest {
				t.Errorf("expected building_request, got %s", gErr.Kind)
			}
			if _, ok := gErr.Details[tt.wantDetail]; !ok {
				t.Errorf("expected %s detail, got %v", tt.wantDetail, gErr.Details)
			}
			testutil.AssertNoCalls(t, tr)
		})
	}
}

func TestUpdateEmoji(t *testing.T) {
	c, tr := newTestClient()
	tr.RespondJSON(http.StatusOK, model.Emoji{ID: 5, Name: "renamed"})

	emoji := awaitModel(t, c.UpdateEmoji(100, 5).Name("renamed").Exec(context.Background()))
	if emoji.Name != "renamed" {
		t.Errorf("unexpected emoji %+v", emoji)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodPatch)
	testutil.AssertPath(t, req, "guilds/100/emojis/5")
	testutil.AssertJSONBody(t, req, map[string]any{"name": "renamed"})
}

func TestUpdateEmoji_ClearRoles(t *testing.T) {
	c, tr := newTestClient()

	if _, err := c.UpdateEmoji(100, 5).Roles().Exec(context.Background()).Await(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertJSONBody(t, tr.LastRequest(t), map[string]any{"roles": []string{}})
}

func TestDeleteEmoji(t *testing.T) {
	c, tr := newTestClient()

	b, err := c.DeleteEmoji(100, 5).Reason("unused")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Exec(context.Background()).Await(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := tr.LastRequest(t)
	testutil.AssertMethod(t, req, http.MethodDelete)
	testutil.AssertPath(t, req, "guilds/100/emojis/5")
	testutil.AssertHeader(t, req, request.HeaderAuditLogReason, "unused")
	if req.Body() != nil {
		t.Errorf("expected no body, got %s", req.Body())
	}
}

package guildhttp

import (
	"context"

	"github.com/broady/guildhttp/model"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/routing"
)

var (
	_ request.AuditLogReason[*CreateBan] = (*CreateBan)(nil)
	_ request.AuditLogReason[*DeleteBan] = (*DeleteBan)(nil)
)

// DeleteBan removes a ban from a user in a guild.
type DeleteBan struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
	userID  model.UserID
	reason  string
}

// DeleteBan starts a request to unban userID from guildID.
func (c *Client) DeleteBan(guildID model.GuildID, userID model.UserID) *DeleteBan {
	return &DeleteBan{c: c, guildID: guildID, userID: userID}
}

// Reason attaches an audit log reason.
func (b *DeleteBan) Reason(reason string) (*DeleteBan, error) {
	if err := checkReason(reason); err != nil {
		return b, err
	}
	b.reason = reason
	return b, nil
}

func (b *DeleteBan) TryIntoRequest() (request.Request, error) {
	rb := request.NewBuilder(routing.DeleteBan{GuildID: b.guildID, UserID: b.userID}).
		Expect(request.ShapeEmpty)
	if err := withReason(rb, b.reason); err != nil {
		return request.Request{}, err
	}
	return rb.Build()
}

// Exec sends the request. A builder can be executed once.
func (b *DeleteBan) Exec(ctx context.Context) *ResponseFuture[EmptyBody] {
	return execute[EmptyBody](ctx, b.c, &b.once, b)
}

// CreateBan bans a user from a guild, optionally deleting their recent
// messages.
type CreateBan struct {
	c                 *Client
	once              singleUse
	guildID           model.GuildID
	userID            model.UserID
	deleteMessageDays *uint64
	reason            string
}

// CreateBan starts a request to ban userID from guildID.
func (c *Client) CreateBan(guildID model.GuildID, userID model.UserID) *CreateBan {
	return &CreateBan{c: c, guildID: guildID, userID: userID}
}

// DeleteMessageDays sets how many days of the user's messages to delete,
// between 0 and 7. Out of range values fail at Exec.
func (b *CreateBan) DeleteMessageDays(days uint64) *CreateBan {
	b.deleteMessageDays = &days
	return b
}

// Reason attaches an audit log reason.
func (b *CreateBan) Reason(reason string) (*CreateBan, error) {
	if err := checkReason(reason); err != nil {
		return b, err
	}
	b.reason = reason
	return b, nil
}

func (b *CreateBan) TryIntoRequest() (request.Request, error) {
	route := routing.CreateBan{GuildID: b.guildID, UserID: b.userID}
	if b.deleteMessageDays != nil {
		days := *b.deleteMessageDays
		route.DeleteMessageDays = &days
	}
	rb := request.NewBuilder(route).Expect(request.ShapeEmpty)
	if err := withReason(rb, b.reason); err != nil {
		return request.Request{}, err
	}
	return rb.Build()
}

// Exec sends the request. A builder can be executed once.
func (b *CreateBan) Exec(ctx context.Context) *ResponseFuture[EmptyBody] {
	return execute[EmptyBody](ctx, b.c, &b.once, b)
}

// GetBan fetches a single ban.
type GetBan struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
	userID  model.UserID
}

// Ban starts a request for the ban of userID in guildID.
func (c *Client) Ban(guildID model.GuildID, userID model.UserID) *GetBan {
	return &GetBan{c: c, guildID: guildID, userID: userID}
}

func (b *GetBan) TryIntoRequest() (request.Request, error) {
	return request.FromRoute(routing.GetBan{GuildID: b.guildID, UserID: b.userID}, request.ShapeSingle)
}

// Exec sends the request. A builder can be executed once.
func (b *GetBan) Exec(ctx context.Context) *ResponseFuture[model.Ban] {
	return execute[model.Ban](ctx, b.c, &b.once, b)
}

// GetBans lists the bans of a guild.
type GetBans struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
}

// Bans starts a request for the bans in guildID.
func (c *Client) Bans(guildID model.GuildID) *GetBans {
	return &GetBans{c: c, guildID: guildID}
}

func (b *GetBans) TryIntoRequest() (request.Request, error) {
	return request.FromRoute(routing.GetBans{GuildID: b.guildID}, request.ShapeList)
}

// Exec sends the request. A builder can be executed once.
func (b *GetBans) Exec(ctx context.Context) *ResponseFuture[[]model.Ban] {
	return execute[[]model.Ban](ctx, b.c, &b.once, b)
}

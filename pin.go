package guildhttp

import (
	"context"

	"github.com/broady/guildhttp/model"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/routing"
)

var (
	_ request.AuditLogReason[*CreatePin] = (*CreatePin)(nil)
	_ request.AuditLogReason[*DeletePin] = (*DeletePin)(nil)
)

// GetPins lists the pinned messages of a channel.
type GetPins struct {
	c         *Client
	once      singleUse
	channelID model.ChannelID
}

// Pins starts a request for the pinned messages in channelID.
func (c *Client) Pins(channelID model.ChannelID) *GetPins {
	return &GetPins{c: c, channelID: channelID}
}

func (b *GetPins) TryIntoRequest() (request.Request, error) {
	return request.FromRoute(routing.GetPins{ChannelID: b.channelID}, request.ShapeList)
}

// Exec sends the request. A builder can be executed once.
func (b *GetPins) Exec(ctx context.Context) *ResponseFuture[[]model.Message] {
	return execute[[]model.Message](ctx, b.c, &b.once, b)
}

// CreatePin pins a message.
type CreatePin struct {
	c         *Client
	once      singleUse
	channelID model.ChannelID
	messageID model.MessageID
	reason    string
}

// CreatePin starts a request to pin messageID in channelID.
func (c *Client) CreatePin(channelID model.ChannelID, messageID model.MessageID) *CreatePin {
	return &CreatePin{c: c, channelID: channelID, messageID: messageID}
}

// Reason attaches an audit log reason.
func (b *CreatePin) Reason(reason string) (*CreatePin, error) {
	if err := checkReason(reason); err != nil {
		return b, err
	}
	b.reason = reason
	return b, nil
}

func (b *CreatePin) TryIntoRequest() (request.Request, error) {
	rb := request.NewBuilder(routing.CreatePin{ChannelID: b.channelID, MessageID: b.messageID}).
		Expect(request.ShapeEmpty)
	if err := withReason(rb, b.reason); err != nil {
		return request.Request{}, err
	}
	return rb.Build()
}

// Exec sends the request. A builder can be executed once.
func (b *CreatePin) Exec(ctx context.Context) *ResponseFuture[EmptyBody] {
	return execute[EmptyBody](ctx, b.c, &b.once, b)
}

// DeletePin unpins a message.
type DeletePin struct {
	c         *Client
	once      singleUse
	channelID model.ChannelID
	messageID model.MessageID
	reason    string
}

// DeletePin starts a request to unpin messageID in channelID.
func (c *Client) DeletePin(channelID model.ChannelID, messageID model.MessageID) *DeletePin {
	return &DeletePin{c: c, channelID: channelID, messageID: messageID}
}

// Reason attaches an audit log reason.
func (b *DeletePin) Reason(reason string) (*DeletePin, error) {
	if err := checkReason(reason); err != nil {
		return b, err
	}
	b.reason = reason
	return b, nil
}

func (b *DeletePin) TryIntoRequest() (request.Request, error) {
	rb := request.NewBuilder(routing.DeletePin{ChannelID: b.channelID, MessageID: b.messageID}).
		Expect(request.ShapeEmpty)
	if err := withReason(rb, b.reason); err != nil {
		return request.Request{}, err
	}
	return rb.Build()
}

// Exec sends the request. A builder can be executed once.
func (b *DeletePin) Exec(ctx context.Context) *ResponseFuture[EmptyBody] {
	return execute[EmptyBody](ctx, b.c, &b.once, b)
}

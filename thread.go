package guildhttp

import (
	"context"
	"time"

	"github.com/broady/guildhttp/model"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/routing"
)

// GetJoinedPrivateArchivedThreads lists the archived private threads of a
// channel that the current user has joined, newest first by ID.
type GetJoinedPrivateArchivedThreads struct {
	c         *Client
	once      singleUse
	channelID model.ChannelID
	before    *model.ChannelID
	limit     *uint64
}

// JoinedPrivateArchivedThreads starts a request for the archived private
// threads in channelID the current user has joined.
func (c *Client) JoinedPrivateArchivedThreads(channelID model.ChannelID) *GetJoinedPrivateArchivedThreads {
	return &GetJoinedPrivateArchivedThreads{c: c, channelID: channelID}
}

// Before returns only threads with an ID lower than before.
func (b *GetJoinedPrivateArchivedThreads) Before(before model.ChannelID) *GetJoinedPrivateArchivedThreads {
	b.before = &before
	return b
}

// Limit caps the number of threads returned.
func (b *GetJoinedPrivateArchivedThreads) Limit(limit uint64) *GetJoinedPrivateArchivedThreads {
	b.limit = &limit
	return b
}

func (b *GetJoinedPrivateArchivedThreads) TryIntoRequest() (request.Request, error) {
	route := routing.GetJoinedPrivateArchivedThreads{ChannelID: b.channelID}
	if b.before != nil {
		before := *b.before
		route.Before = &before
	}
	if b.limit != nil {
		limit := *b.limit
		route.Limit = &limit
	}
	return request.FromRoute(route, request.ShapeSingle)
}

// Exec sends the request. A builder can be executed once.
func (b *GetJoinedPrivateArchivedThreads) Exec(ctx context.Context) *ResponseFuture[model.ThreadsListing] {
	return execute[model.ThreadsListing](ctx, b.c, &b.once, b)
}

// archivedThreads holds the parameters shared by the public and private
// archived thread listings.
type archivedThreads struct {
	c         *Client
	once      singleUse
	channelID model.ChannelID
	before    *string
	limit     *uint64
}

func (a *archivedThreads) setBefore(t time.Time) {
	s := t.UTC().Format(time.RFC3339)
	a.before = &s
}

func (a *archivedThreads) params() (*string, *uint64) {
	var before *string
	var limit *uint64
	if a.before != nil {
		s := *a.before
		before = &s
	}
	if a.limit != nil {
		n := *a.limit
		limit = &n
	}
	return before, limit
}

// GetPublicArchivedThreads lists the archived public threads of a channel,
// newest archive first.
type GetPublicArchivedThreads struct {
	archivedThreads
}

// PublicArchivedThreads starts a request for the archived public threads in
// channelID.
func (c *Client) PublicArchivedThreads(channelID model.ChannelID) *GetPublicArchivedThreads {
	return &GetPublicArchivedThreads{archivedThreads{c: c, channelID: channelID}}
}

// Before returns only threads archived before t.
func (b *GetPublicArchivedThreads) Before(t time.Time) *GetPublicArchivedThreads {
	b.setBefore(t)
	return b
}

// Limit caps the number of threads returned.
func (b *GetPublicArchivedThreads) Limit(limit uint64) *GetPublicArchivedThreads {
	b.limit = &limit
	return b
}

func (b *GetPublicArchivedThreads) TryIntoRequest() (request.Request, error) {
	before, limit := b.params()
	return request.FromRoute(routing.GetPublicArchivedThreads{
		ChannelID: b.channelID,
		Before:    before,
		Limit:     limit,
	}, request.ShapeSingle)
}

// Exec sends the request. A builder can be executed once.
func (b *GetPublicArchivedThreads) Exec(ctx context.Context) *ResponseFuture[model.ThreadsListing] {
	return execute[model.ThreadsListing](ctx, b.c, &b.once, b)
}

// GetPrivateArchivedThreads lists the archived private threads of a
// channel, newest archive first.
type GetPrivateArchivedThreads struct {
	archivedThreads
}

// PrivateArchivedThreads starts a request for the archived private threads
// in channelID.
func (c *Client) PrivateArchivedThreads(channelID model.ChannelID) *GetPrivateArchivedThreads {
	return &GetPrivateArchivedThreads{archivedThreads{c: c, channelID: channelID}}
}

// Before returns only threads archived before t.
func (b *GetPrivateArchivedThreads) Before(t time.Time) *GetPrivateArchivedThreads {
	b.setBefore(t)
	return b
}

// Limit caps the number of threads returned.
func (b *GetPrivateArchivedThreads) Limit(limit uint64) *GetPrivateArchivedThreads {
	b.limit = &limit
	return b
}

func (b *GetPrivateArchivedThreads) TryIntoRequest() (request.Request, error) {
	before, limit := b.params()
	return request.FromRoute(routing.GetPrivateArchivedThreads{
		ChannelID: b.channelID,
		Before:    before,
		Limit:     limit,
	}, request.ShapeSingle)
}

// Exec sends the request. A builder can be executed once.
func (b *GetPrivateArchivedThreads) Exec(ctx context.Context) *ResponseFuture[model.ThreadsListing] {
	return execute[model.ThreadsListing](ctx, b.c, &b.once, b)
}

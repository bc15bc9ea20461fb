package routing

import (
	"net/http"
	"net/url"

	"github.com/broady/guildhttp/model"
)

// GetPins lists the pinned messages of a channel.
type GetPins struct {
	ChannelID model.ChannelID `schema:"-" validate:"required"`
}

func (GetPins) Method() string { return http.MethodGet }

func (r GetPins) Path() string { return "channels/" + r.ChannelID.String() + "/pins" }

func (r GetPins) Query() url.Values { return encodeQuery(r) }

func (GetPins) route() {}

// CreatePin pins a message in a channel.
type CreatePin struct {
	ChannelID model.ChannelID `schema:"-" validate:"required"`
	MessageID model.MessageID `schema:"-" validate:"required"`
}

func (CreatePin) Method() string { return http.MethodPut }

func (r CreatePin) Path() string {
	return "channels/" + r.ChannelID.String() + "/pins/" + r.MessageID.String()
}

func (r CreatePin) Query() url.Values { return encodeQuery(r) }

func (CreatePin) route() {}

// DeletePin unpins a message in a channel.
type DeletePin struct {
	ChannelID model.ChannelID `schema:"-" validate:"required"`
	MessageID model.MessageID `schema:"-" validate:"required"`
}

func (DeletePin) Method() string { return http.MethodDelete }

func (r DeletePin) Path() string {
	return "channels/" + r.ChannelID.String() + "/pins/" + r.MessageID.String()
}

func (r DeletePin) Query() url.Values { return encodeQuery(r) }

func (DeletePin) route() {}

// GetJoinedPrivateArchivedThreads lists the archived private threads of a
// channel that the current user has joined.
//
// The remote API returns threads ordered by ID, descending. Paginate by
// passing the last ID of a page as Before.
type GetJoinedPrivateArchivedThreads struct {
	ChannelID model.ChannelID  `schema:"-" validate:"required"`
	Before    *model.ChannelID `schema:"before,omitempty"`
	Limit     *uint64          `schema:"limit,omitempty"`
}

func (GetJoinedPrivateArchivedThreads) Method() string { return http.MethodGet }

func (r GetJoinedPrivateArchivedThreads) Path() string {
	return "channels/" + r.ChannelID.String() + "/users/@me/threads/archived/private"
}

func (r GetJoinedPrivateArchivedThreads) Query() url.Values { return encodeQuery(r) }

func (GetJoinedPrivateArchivedThreads) route() {}

// GetPublicArchivedThreads lists the archived public threads of a channel.
//
// The remote API returns threads ordered by archive timestamp, descending.
// Before is an ISO8601 timestamp.
type GetPublicArchivedThreads struct {
	ChannelID model.ChannelID `schema:"-" validate:"required"`
	Before    *string         `schema:"before,omitempty"`
	Limit     *uint64         `schema:"limit,omitempty"`
}

func (GetPublicArchivedThreads) Method() string { return http.MethodGet }

func (r GetPublicArchivedThreads) Path() string {
	return "channels/" + r.ChannelID.String() + "/threads/archived/public"
}

func (r GetPublicArchivedThreads) Query() url.Values { return encodeQuery(r) }

func (GetPublicArchivedThreads) route() {}

// GetPrivateArchivedThreads lists the archived private threads of a channel.
// Same ordering and pagination as GetPublicArchivedThreads.
type GetPrivateArchivedThreads struct {
	ChannelID model.ChannelID `schema:"-" validate:"required"`
	Before    *string         `schema:"before,omitempty"`
	Limit     *uint64         `schema:"limit,omitempty"`
}

func (GetPrivateArchivedThreads) Method() string { return http.MethodGet }

func (r GetPrivateArchivedThreads) Path() string {
	return "channels/" + r.ChannelID.String() + "/threads/archived/private"
}

func (r GetPrivateArchivedThreads) Query() url.Values { return encodeQuery(r) }

func (GetPrivateArchivedThreads) route() {}

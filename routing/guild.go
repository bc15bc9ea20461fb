package routing

import (
	"net/http"
	"net/url"

	"github.com/broady/guildhttp/model"
)

// CreateBan bans a user from a guild.
type CreateBan struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
	UserID  model.UserID  `schema:"-" validate:"required"`

	// DeleteMessageDays is the number of days of the user's messages to
	// delete, between 0 and 7.
	DeleteMessageDays *uint64 `schema:"delete_message_days,omitempty" validate:"omitempty,max=7"`
}

func (CreateBan) Method() string { return http.MethodPut }

func (r CreateBan) Path() string {
	return "guilds/" + r.GuildID.String() + "/bans/" + r.UserID.String()
}

func (r CreateBan) Query() url.Values { return encodeQuery(r) }

func (CreateBan) route() {}

// DeleteBan removes a user's ban from a guild.
type DeleteBan struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
	UserID  model.UserID  `schema:"-" validate:"required"`
}

func (DeleteBan) Method() string { return http.MethodDelete }

func (r DeleteBan) Path() string {
	return "guilds/" + r.GuildID.String() + "/bans/" + r.UserID.String()
}

func (r DeleteBan) Query() url.Values { return encodeQuery(r) }

func (DeleteBan) route() {}

// GetBan fetches a single ban.
type GetBan struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
	UserID  model.UserID  `schema:"-" validate:"required"`
}

func (GetBan) Method() string { return http.MethodGet }

func (r GetBan) Path() string {
	return "guilds/" + r.GuildID.String() + "/bans/" + r.UserID.String()
}

func (r GetBan) Query() url.Values { return encodeQuery(r) }

func (GetBan) route() {}

// GetBans lists the bans of a guild.
type GetBans struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
}

func (GetBans) Method() string { return http.MethodGet }

func (r GetBans) Path() string { return "guilds/" + r.GuildID.String() + "/bans" }

func (r GetBans) Query() url.Values { return encodeQuery(r) }

func (GetBans) route() {}

// GetEmojis lists the custom emojis of a guild.
type GetEmojis struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
}

func (GetEmojis) Method() string { return http.MethodGet }

func (r GetEmojis) Path() string { return "guilds/" + r.GuildID.String() + "/emojis" }

func (r GetEmojis) Query() url.Values { return encodeQuery(r) }

func (GetEmojis) route() {}

// GetEmoji fetches a single guild emoji.
type GetEmoji struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
	EmojiID model.EmojiID `schema:"-" validate:"required"`
}

func (GetEmoji) Method() string { return http.MethodGet }

func (r GetEmoji) Path() string {
	return "guilds/" + r.GuildID.String() + "/emojis/" + r.EmojiID.String()
}

func (r GetEmoji) Query() url.Values { return encodeQuery(r) }

func (GetEmoji) route() {}

// CreateEmoji creates a guild emoji. The emoji itself is sent in the body.
type CreateEmoji struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
}

func (CreateEmoji) Method() string { return http.MethodPost }

func (r CreateEmoji) Path() string { return "guilds/" + r.GuildID.String() + "/emojis" }

func (r CreateEmoji) Query() url.Values { return encodeQuery(r) }

func (CreateEmoji) route() {}

// UpdateEmoji modifies a guild emoji. Changed fields are sent in the body.
type UpdateEmoji struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
	EmojiID model.EmojiID `schema:"-" validate:"required"`
}

func (UpdateEmoji) Method() string { return http.MethodPatch }

func (r UpdateEmoji) Path() string {
	return "guilds/" + r.GuildID.String() + "/emojis/" + r.EmojiID.String()
}

func (r UpdateEmoji) Query() url.Values { return encodeQuery(r) }

func (UpdateEmoji) route() {}

// DeleteEmoji deletes a guild emoji.
type DeleteEmoji struct {
	GuildID model.GuildID `schema:"-" validate:"required"`
	EmojiID model.EmojiID `schema:"-" validate:"required"`
}

func (DeleteEmoji) Method() string { return http.MethodDelete }

func (r DeleteEmoji) Path() string {
	return "guilds/" + r.GuildID.String() + "/emojis/" + r.EmojiID.String()
}

func (r DeleteEmoji) Query() url.Values { return encodeQuery(r) }

func (DeleteEmoji) route() {}

package guildhttp

import (
	"context"
	"errors"

	"github.com/broady/guildhttp/model"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/routing"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	_ request.AuditLogReason[*CreateEmoji] = (*CreateEmoji)(nil)
	_ request.AuditLogReason[*UpdateEmoji] = (*UpdateEmoji)(nil)
	_ request.AuditLogReason[*DeleteEmoji] = (*DeleteEmoji)(nil)
)

// validateBody checks a JSON body's field tags.
func validateBody(body any) error {
	err := validate.Struct(body)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		return fromValidation(KindBuildingRequest, valErrs).withCause(err)
	}
	return NewError(KindBuildingRequest, err.Error()).withCause(err)
}

// GetEmojis lists the custom emojis of a guild.
type GetEmojis struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
}

// Emojis starts a request for the emojis in guildID.
func (c *Client) Emojis(guildID model.GuildID) *GetEmojis {
	return &GetEmojis{c: c, guildID: guildID}
}

func (b *GetEmojis) TryIntoRequest() (request.Request, error) {
	return request.FromRoute(routing.GetEmojis{GuildID: b.guildID}, request.ShapeList)
}

// Exec sends the request. A builder can be executed once.
func (b *GetEmojis) Exec(ctx context.Context) *ResponseFuture[[]model.Emoji] {
	return execute[[]model.Emoji](ctx, b.c, &b.once, b)
}

// GetEmoji fetches one emoji.
type GetEmoji struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
	emojiID model.EmojiID
}

// Emoji starts a request for emojiID in guildID.
func (c *Client) Emoji(guildID model.GuildID, emojiID model.EmojiID) *GetEmoji {
	return &GetEmoji{c: c, guildID: guildID, emojiID: emojiID}
}

func (b *GetEmoji) TryIntoRequest() (request.Request, error) {
	return request.FromRoute(routing.GetEmoji{GuildID: b.guildID, EmojiID: b.emojiID}, request.ShapeSingle)
}

// Exec sends the request. A builder can be executed once.
func (b *GetEmoji) Exec(ctx context.Context) *ResponseFuture[model.Emoji] {
	return execute[model.Emoji](ctx, b.c, &b.once, b)
}

type createEmojiBody struct {
	Name  string         `json:"name" validate:"required,min=2,max=32"`
	Image string         `json:"image" validate:"required"`
	Roles []model.RoleID `json:"roles,omitempty"`
}

// CreateEmoji uploads a new emoji to a guild.
type CreateEmoji struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
	body    createEmojiBody
	reason  string
}

// CreateEmoji starts a request to create an emoji named name in guildID.
// image is a data URI of the emoji image.
func (c *Client) CreateEmoji(guildID model.GuildID, name, image string) *CreateEmoji {
	return &CreateEmoji{c: c, guildID: guildID, body: createEmojiBody{Name: name, Image: image}}
}

// Roles restricts the emoji to members of the given roles.
func (b *CreateEmoji) Roles(roles ...model.RoleID) *CreateEmoji {
	b.body.Roles = append([]model.RoleID(nil), roles...)
	return b
}

// Reason attaches an audit log reason.
func (b *CreateEmoji) Reason(reason string) (*CreateEmoji, error) {
	if err := checkReason(reason); err != nil {
		return b, err
	}
	b.reason = reason
	return b, nil
}

func (b *CreateEmoji) TryIntoRequest() (request.Request, error) {
	if err := validateBody(b.body); err != nil {
		return request.Request{}, err
	}
	rb := request.NewBuilder(routing.CreateEmoji{GuildID: b.guildID}).
		JSON(b.body).
		Expect(request.ShapeSingle)
	if err := withReason(rb, b.reason); err != nil {
		return request.Request{}, err
	}
	return rb.Build()
}

// Exec sends the request. A builder can be executed once.
func (b *CreateEmoji) Exec(ctx context.Context) *ResponseFuture[model.Emoji] {
	return execute[model.Emoji](ctx, b.c, &b.once, b)
}

type updateEmojiBody struct {
	Name  *string         `json:"name,omitempty" validate:"omitempty,min=2,max=32"`
	Roles *[]model.RoleID `json:"roles,omitempty"`
}

// UpdateEmoji changes an emoji's name or role restrictions.
type UpdateEmoji struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
	emojiID model.EmojiID
	body    updateEmojiBody
	reason  string
}

// UpdateEmoji starts a request to modify emojiID in guildID.
func (c *Client) UpdateEmoji(guildID model.GuildID, emojiID model.EmojiID) *UpdateEmoji {
	return &UpdateEmoji{c: c, guildID: guildID, emojiID: emojiID}
}

// Name renames the emoji.
func (b *UpdateEmoji) Name(name string) *UpdateEmoji {
	b.body.Name = &name
	return b
}

// Roles replaces the roles allowed to use the emoji. Calling Roles with no
// arguments makes the emoji available to everyone.
func (b *UpdateEmoji) Roles(roles ...model.RoleID) *UpdateEmoji {
	r := append([]model.RoleID{}, roles...)
	b.body.Roles = &r
	return b
}

// Reason attaches an audit log reason.
func (b *UpdateEmoji) Reason(reason string) (*UpdateEmoji, error) {
	if err := checkReason(reason); err != nil {
		return b, err
	}
	b.reason = reason
	return b, nil
}

func (b *UpdateEmoji) TryIntoRequest() (request.Request, error) {
	if err := validateBody(b.body); err != nil {
		return request.Request{}, err
	}
	rb := request.NewBuilder(routing.UpdateEmoji{GuildID: b.guildID, EmojiID: b.emojiID}).
		JSON(b.body).
		Expect(request.ShapeSingle)
	if err := withReason(rb, b.reason); err != nil {
		return request.Request{}, err
	}
	return rb.Build()
}

// Exec sends the request. A builder can be executed once.
func (b *UpdateEmoji) Exec(ctx context.Context) *ResponseFuture[model.Emoji] {
	return execute[model.Emoji](ctx, b.c, &b.once, b)
}

// DeleteEmoji removes an emoji from a guild.
type DeleteEmoji struct {
	c       *Client
	once    singleUse
	guildID model.GuildID
	emojiID model.EmojiID
	reason  string
}

// DeleteEmoji starts a request to delete emojiID from guildID.
func (c *Client) DeleteEmoji(guildID model.GuildID, emojiID model.EmojiID) *DeleteEmoji {
	return &DeleteEmoji{c: c, guildID: guildID, emojiID: emojiID}
}

// Reason attaches an audit log reason.
func (b *DeleteEmoji) Reason(reason string) (*DeleteEmoji, error) {
	if err := checkReason(reason); err != nil {
		return b, err
	}
	b.reason = reason
	return b, nil
}

func (b *DeleteEmoji) TryIntoRequest() (request.Request, error) {
	rb := request.NewBuilder(routing.DeleteEmoji{GuildID: b.guildID, EmojiID: b.emojiID}).
		Expect(request.ShapeEmpty)
	if err := withReason(rb, b.reason); err != nil {
		return request.Request{}, err
	}
	return rb.Build()
}

// Exec sends the request. A builder can be executed once.
func (b *DeleteEmoji) Exec(ctx context.Context) *ResponseFuture[EmptyBody] {
	return execute[EmptyBody](ctx, b.c, &b.once, b)
}

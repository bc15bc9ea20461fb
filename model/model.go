package model

import "time"

// User is a Discord user as embedded in other resources.
type User struct {
	ID            UserID  `json:"id"`
	Username      string  `json:"username"`
	Discriminator string  `json:"discriminator"`
	Avatar        *string `json:"avatar,omitempty"`
	Bot           bool    `json:"bot,omitempty"`
}

// Ban is a guild ban entry.
type Ban struct {
	Reason *string `json:"reason"`
	User   User    `json:"user"`
}

// Emoji is a custom guild emoji.
type Emoji struct {
	ID            EmojiID  `json:"id"`
	Name          string   `json:"name"`
	Roles         []RoleID `json:"roles,omitempty"`
	User          *User    `json:"user,omitempty"`
	RequireColons bool     `json:"require_colons"`
	Managed       bool     `json:"managed"`
	Animated      bool     `json:"animated"`
	Available     bool     `json:"available"`
}

// Message is a channel message.
type Message struct {
	ID        MessageID `json:"id"`
	ChannelID ChannelID `json:"channel_id"`
	GuildID   *GuildID  `json:"guild_id,omitempty"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Pinned    bool      `json:"pinned"`
}

// ChannelType is the numeric type of a channel.
type ChannelType int

const (
	ChannelGuildText          ChannelType = 0
	ChannelGuildNewsThread    ChannelType = 10
	ChannelGuildPublicThread  ChannelType = 11
	ChannelGuildPrivateThread ChannelType = 12
)

// Channel is a guild channel or thread.
type Channel struct {
	ID             ChannelID       `json:"id"`
	Type           ChannelType     `json:"type"`
	GuildID        *GuildID        `json:"guild_id,omitempty"`
	Name           string          `json:"name,omitempty"`
	ParentID       *ChannelID      `json:"parent_id,omitempty"`
	OwnerID        *UserID         `json:"owner_id,omitempty"`
	ThreadMetadata *ThreadMetadata `json:"thread_metadata,omitempty"`
}

// ThreadMetadata holds the thread-specific fields of a Channel.
type ThreadMetadata struct {
	Archived            bool      `json:"archived"`
	AutoArchiveDuration int       `json:"auto_archive_duration"`
	ArchiveTimestamp    time.Time `json:"archive_timestamp"`
	Locked              bool      `json:"locked"`
	Invitable           *bool     `json:"invitable,omitempty"`
}

// ThreadMember is a user's membership in a thread.
type ThreadMember struct {
	ID            *ChannelID `json:"id,omitempty"`
	UserID        *UserID    `json:"user_id,omitempty"`
	JoinTimestamp time.Time  `json:"join_timestamp"`
	Flags         int        `json:"flags"`
}

// ThreadsListing is the response of the archived thread listing endpoints.
type ThreadsListing struct {
	Threads []Channel      `json:"threads"`
	Members []ThreadMember `json:"members"`
	HasMore bool           `json:"has_more"`
}

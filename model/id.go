// Package model contains the identifiers and response types exchanged with
// the API. Types carry only the fields the request layer and its callers
// need; unknown JSON fields are ignored on decode.
package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is a snowflake identifier. The marker type parameter keeps identifiers
// of different resources from being mixed up at compile time.
//
// On the wire an ID is always a decimal string, both in paths and in JSON.
type ID[M any] uint64

// Marker types for ID.
type (
	ChannelMarker struct{}
	EmojiMarker   struct{}
	GuildMarker   struct{}
	MessageMarker struct{}
	RoleMarker    struct{}
	UserMarker    struct{}
)

type (
	ChannelID = ID[ChannelMarker]
	EmojiID   = ID[EmojiMarker]
	GuildID   = ID[GuildMarker]
	MessageID = ID[MessageMarker]
	RoleID    = ID[RoleMarker]
	UserID    = ID[UserMarker]
)

// Get returns the raw numeric value.
func (id ID[M]) Get() uint64 {
	return uint64(id)
}

// String formats the ID as a decimal string.
func (id ID[M]) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalJSON encodes the ID as a quoted decimal string.
func (id ID[M]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.String())), nil
}

// UnmarshalJSON accepts both quoted and bare decimal numbers.
func (id *ID[M]) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("model: invalid snowflake %q: %w", data, err)
	}
	*id = ID[M](v)
	return nil
}

// ParseID parses a decimal string into an ID.
func ParseID[M any](s string) (ID[M], error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("model: invalid snowflake %q: %w", s, err)
	}
	return ID[M](v), nil
}

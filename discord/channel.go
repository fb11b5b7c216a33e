package discord

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	gotils_strconv "github.com/savsgio/gotils/strconv"
)

// channel.go contains the wire shapes relating to channels.

// ChannelType represents a channel's type.
type ChannelType uint16

const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
	ChannelTypeGuildNews
	ChannelTypeGuildStore
	ChannelTypeGuildLFG
	ChannelTypeLFGGroupDM
	ChannelTypeThreadAlpha
	ChannelTypeGuildNewsThread
	ChannelTypeGuildPublicThread
	ChannelTypeGuildPrivateThread
	ChannelTypeGuildStageVoice
	ChannelTypeGuildDirectory
	ChannelTypeGuildForum
	ChannelTypeGuildMedia
)

// ChannelTypeUnknown is decoded for codes that do not fit a ChannelType.
const ChannelTypeUnknown ChannelType = math.MaxUint16

var channelTypeNames = map[ChannelType]string{
	ChannelTypeGuildText:          "GUILD_TEXT",
	ChannelTypeDM:                 "DM",
	ChannelTypeGuildVoice:         "GUILD_VOICE",
	ChannelTypeGroupDM:            "GROUP_DM",
	ChannelTypeGuildCategory:      "GUILD_CATEGORY",
	ChannelTypeGuildNews:          "GUILD_NEWS",
	ChannelTypeGuildStore:         "GUILD_STORE",
	ChannelTypeGuildLFG:           "GUILD_LFG",
	ChannelTypeLFGGroupDM:         "LFG_GROUP_DM",
	ChannelTypeThreadAlpha:        "THREAD_ALPHA",
	ChannelTypeGuildNewsThread:    "NEWS_THREAD",
	ChannelTypeGuildPublicThread:  "PUBLIC_THREAD",
	ChannelTypeGuildPrivateThread: "PRIVATE_THREAD",
	ChannelTypeGuildStageVoice:    "GUILD_STAGE_VOICE",
	ChannelTypeGuildDirectory:     "GUILD_DIRECTORY",
	ChannelTypeGuildForum:         "GUILD_FORUM",
	ChannelTypeGuildMedia:         "GUILD_MEDIA",
}

func (t ChannelType) String() string {
	if name, ok := channelTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
}

// UnmarshalJSON decodes a channel type. Negative or oversized codes decode as
// ChannelTypeUnknown instead of failing the surrounding payload.
func (t *ChannelType) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		return nil
	}

	i, err := strconv.ParseInt(gotils_strconv.B2S(b), decimalBase, bitSize)

	switch {
	case errors.Is(err, strconv.ErrRange):
		*t = ChannelTypeUnknown
	case err != nil:
		return fmt.Errorf("failed to unmarshal channel type: %w", err)
	case i < 0 || i >= int64(ChannelTypeUnknown):
		*t = ChannelTypeUnknown
	default:
		*t = ChannelType(i)
	}

	return nil
}

// Known reports whether the type is one this package has a variant for.
func (t ChannelType) Known() bool {
	_, ok := channelTypeNames[t]

	return ok
}

// ChannelFlags represents the extra information on a channel.
type ChannelFlags uint32

const (
	ChannelFlagPinned                   ChannelFlags = 1 << 1
	ChannelFlagRequireTag               ChannelFlags = 1 << 4
	ChannelFlagHideMediaDownloadOptions ChannelFlags = 1 << 15
)

func (f ChannelFlags) Has(flag ChannelFlags) bool {
	return f&flag == flag
}

// VideoQualityMode represents the quality of the video.
type VideoQualityMode uint16

const (
	VideoQualityModeAuto VideoQualityMode = 1 + iota
	VideoQualityModeFull
)

// ForumSortOrder represents the default ordering of posts in a forum.
type ForumSortOrder uint16

const (
	ForumSortOrderLatestActivity ForumSortOrder = iota
	ForumSortOrderCreationDate
)

// ChannelPayload is the flat wire shape shared by every channel kind. Which
// fields are meaningful depends on Type. Pointer fields are nil when absent
// or null; Nullable fields are the ones where null clears local state.
type ChannelPayload struct {
	ID    *ChannelID    `json:"id,omitempty"`
	Type  *ChannelType  `json:"type,omitempty"`
	Flags *ChannelFlags `json:"flags,omitempty"`

	LastMessageID    Nullable[MessageID] `json:"last_message_id"`
	LastPinTimestamp Nullable[Timestamp] `json:"last_pin_timestamp"`

	GuildID              *GuildID            `json:"guild_id,omitempty"`
	Name                 *string             `json:"name,omitempty"`
	Position             *int32              `json:"position,omitempty"`
	PermissionOverwrites *[]Overwrite        `json:"permission_overwrites,omitempty"`
	NSFW                 *bool               `json:"nsfw,omitempty"`
	ParentID             Nullable[ChannelID] `json:"parent_id"`

	Topic                         Nullable[string] `json:"topic"`
	RateLimitPerUser              *int32           `json:"rate_limit_per_user,omitempty"`
	DefaultThreadRateLimitPerUser *int32           `json:"default_thread_rate_limit_per_user,omitempty"`
	DefaultAutoArchiveDuration    *int32           `json:"default_auto_archive_duration,omitempty"`

	Bitrate          *int32                     `json:"bitrate,omitempty"`
	UserLimit        *int32                     `json:"user_limit,omitempty"`
	VideoQualityMode Nullable[VideoQualityMode] `json:"video_quality_mode"`

	AvailableTags        *[]ForumTag               `json:"available_tags,omitempty"`
	DefaultReactionEmoji Nullable[DefaultReaction] `json:"default_reaction_emoji"`
	DefaultSortOrder     Nullable[ForumSortOrder]  `json:"default_sort_order"`

	MessageCount     *int32          `json:"message_count,omitempty"`
	MemberCount      *int32          `json:"member_count,omitempty"`
	ThreadMetadata   *ThreadMetadata `json:"thread_metadata,omitempty"`
	Member           *ThreadMember   `json:"member,omitempty"`
	OwnerID          *UserID         `json:"owner_id,omitempty"`
	TotalMessageSent *int32          `json:"total_message_sent,omitempty"`
	AppliedTags      *ForumTagIDList `json:"applied_tags,omitempty"`

	Recipients *[]User          `json:"recipients,omitempty"`
	Icon       Nullable[string] `json:"icon"`
}

// Overwrite represents a permission overwrite for a channel.
type Overwrite struct {
	ID    Snowflake     `json:"id"`
	Type  OverwriteType `json:"type"`
	Allow Permissions   `json:"allow"`
	Deny  Permissions   `json:"deny"`
}

// OverwriteType represents the target of a channel overwrite.
type OverwriteType uint16

const (
	OverwriteTypeRole OverwriteType = iota
	OverwriteTypeMember
)

func (in *OverwriteType) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		return nil
	}

	// Discord will pass the overwrite type as a string if it is in an audit log.
	i, err := parseInt64(b)
	if err != nil {
		return err
	}

	switch OverwriteType(i) {
	case OverwriteTypeRole, OverwriteTypeMember:
		*in = OverwriteType(i)
	default:
		return fmt.Errorf("unknown overwrite type %d", i)
	}

	return nil
}

func (in OverwriteType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(in))), nil
}

func (in OverwriteType) String() string {
	if in == OverwriteTypeMember {
		return "USER"
	}

	return "ROLE"
}

// ThreadMetadata contains thread-specific channel fields.
type ThreadMetadata struct {
	ArchiverID          *UserID   `json:"archiver_id,omitempty"`
	Locked              *bool     `json:"locked,omitempty"`
	Invitable           *bool     `json:"invitable,omitempty"`
	CreateTimestamp     Timestamp `json:"create_timestamp,omitempty"`
	ArchiveTimestamp    Timestamp `json:"archive_timestamp"`
	AutoArchiveDuration int32     `json:"auto_archive_duration"`
	Archived            bool      `json:"archived"`
}

func (m ThreadMetadata) clone() ThreadMetadata {
	m.ArchiverID = clonePtr(m.ArchiverID)
	m.Locked = clonePtr(m.Locked)
	m.Invitable = clonePtr(m.Invitable)

	return m
}

// ThreadMember is used to indicate whether a user has joined a thread or not.
type ThreadMember struct {
	ID            *ChannelID `json:"id,omitempty"`
	UserID        *UserID    `json:"user_id,omitempty"`
	JoinTimestamp Timestamp  `json:"join_timestamp"`
	Flags         int32      `json:"flags"`
}

func (m ThreadMember) clone() ThreadMember {
	m.ID = clonePtr(m.ID)
	m.UserID = clonePtr(m.UserID)

	return m
}

// ForumTag is a tag that can be applied to a post in a forum or media channel.
type ForumTag struct {
	EmojiID   *EmojiID   `json:"emoji_id"`
	EmojiName *string    `json:"emoji_name"`
	Name      string     `json:"name"`
	ID        ForumTagID `json:"id"`
	Moderated bool       `json:"moderated"`
}

func (t ForumTag) clone() ForumTag {
	t.EmojiID = clonePtr(t.EmojiID)
	t.EmojiName = clonePtr(t.EmojiName)

	return t
}

// DefaultReaction is the emoji shown on new forum posts.
type DefaultReaction struct {
	EmojiID   *EmojiID `json:"emoji_id"`
	EmojiName *string  `json:"emoji_name"`
}

func (r DefaultReaction) clone() DefaultReaction {
	r.EmojiID = clonePtr(r.EmojiID)
	r.EmojiName = clonePtr(r.EmojiName)

	return r
}

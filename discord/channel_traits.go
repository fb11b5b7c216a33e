package discord

import "github.com/samber/mo"

// channel_traits.go contains the independent field groups channels are
// composed from. Each trait applies only its own fields from a payload.

// ChannelBase is carried by every channel, including unknown kinds.
type ChannelBase struct {
	ID    ChannelID
	Type  ChannelType
	Flags ChannelFlags
}

func (c *ChannelBase) Base() *ChannelBase {
	return c
}

func (c *ChannelBase) Snowflake() Snowflake {
	return Snowflake(c.ID)
}

func (c *ChannelBase) channel() {}

// apply never changes Type. A payload announcing a different type has to be
// resolved into a new variant.
func (c *ChannelBase) apply(p *ChannelPayload) {
	overlayIdentity(&c.ID, p.ID)
	overlay(&c.Flags, p.Flags)
}

// TextTrait is carried by channels that hold messages.
type TextTrait struct {
	LastMessageID    mo.Option[MessageID]
	LastPinTimestamp mo.Option[Timestamp]
}

func (t *TextTrait) Text() *TextTrait {
	return t
}

func (t *TextTrait) apply(p *ChannelPayload) {
	overlayNullable(&t.LastMessageID, p.LastMessageID)
	overlayNullable(&t.LastPinTimestamp, p.LastPinTimestamp)
}

// GuildTrait is carried by channels that belong to a guild.
type GuildTrait struct {
	GuildID              GuildID
	Name                 string
	Position             int32
	PermissionOverwrites []Overwrite
	NSFW                 bool
	ParentID             mo.Option[ChannelID]
}

func (t *GuildTrait) Guild() *GuildTrait {
	return t
}

func (t *GuildTrait) apply(p *ChannelPayload) {
	overlay(&t.GuildID, p.GuildID)
	overlay(&t.Name, p.Name)
	overlay(&t.Position, p.Position)
	overlay(&t.NSFW, p.NSFW)
	overlayNullable(&t.ParentID, p.ParentID)

	if p.PermissionOverwrites != nil {
		// Overwrite order is significant and the slice is owned by this channel.
		t.PermissionOverwrites = append(make([]Overwrite, 0, len(*p.PermissionOverwrites)), *p.PermissionOverwrites...)
	}
}

// ThreadHostTrait is carried by channels that threads can be created in.
type ThreadHostTrait struct {
	Topic                         mo.Option[string]
	RateLimitPerUser              int32
	DefaultThreadRateLimitPerUser mo.Option[int32]
	DefaultAutoArchiveDuration    mo.Option[int32]
}

func (t *ThreadHostTrait) ThreadHost() *ThreadHostTrait {
	return t
}

func (t *ThreadHostTrait) apply(p *ChannelPayload) {
	overlayNullable(&t.Topic, p.Topic)
	overlay(&t.RateLimitPerUser, p.RateLimitPerUser)
	overlayOption(&t.DefaultThreadRateLimitPerUser, p.DefaultThreadRateLimitPerUser)
	overlayOption(&t.DefaultAutoArchiveDuration, p.DefaultAutoArchiveDuration)
}

// VoiceTrait is carried by voice channels.
type VoiceTrait struct {
	Bitrate          int32
	UserLimit        int32
	VideoQualityMode mo.Option[VideoQualityMode]
}

func (t *VoiceTrait) Voice() *VoiceTrait {
	return t
}

func (t *VoiceTrait) apply(p *ChannelPayload) {
	overlay(&t.Bitrate, p.Bitrate)
	overlay(&t.UserLimit, p.UserLimit)
	overlayNullable(&t.VideoQualityMode, p.VideoQualityMode)
}

// StageTrait is VoiceTrait without a video quality mode.
type StageTrait struct {
	Bitrate   int32
	UserLimit int32
}

func (t *StageTrait) Stage() *StageTrait {
	return t
}

func (t *StageTrait) apply(p *ChannelPayload) {
	overlay(&t.Bitrate, p.Bitrate)
	overlay(&t.UserLimit, p.UserLimit)
}

// ForumTrait is carried by forum and media channels.
type ForumTrait struct {
	AvailableTags        []ForumTag
	DefaultReactionEmoji mo.Option[DefaultReaction]
	DefaultSortOrder     mo.Option[ForumSortOrder]
}

func (t *ForumTrait) Forum() *ForumTrait {
	return t
}

// Tag returns the available tag with the given id.
func (t *ForumTrait) Tag(id ForumTagID) (ForumTag, bool) {
	for _, tag := range t.AvailableTags {
		if tag.ID == id {
			return tag, true
		}
	}

	return ForumTag{}, false
}

func (t *ForumTrait) apply(p *ChannelPayload) {
	if p.AvailableTags != nil {
		tags := make([]ForumTag, 0, len(*p.AvailableTags))
		seen := make(map[ForumTagID]struct{}, len(*p.AvailableTags))

		for _, tag := range *p.AvailableTags {
			if _, ok := seen[tag.ID]; ok {
				continue
			}

			seen[tag.ID] = struct{}{}
			tags = append(tags, tag.clone())
		}

		t.AvailableTags = tags
	}

	reaction := p.DefaultReactionEmoji
	if reaction.Set && !reaction.Null {
		reaction.Value = reaction.Value.clone()
	}

	overlayNullable(&t.DefaultReactionEmoji, reaction)
	overlayNullable(&t.DefaultSortOrder, p.DefaultSortOrder)
}

// ThreadTrait is carried by thread instances.
type ThreadTrait struct {
	MessageCount     int32
	MemberCount      int32
	ThreadMetadata   ThreadMetadata
	Member           mo.Option[ThreadMember]
	OwnerID          UserID
	RateLimitPerUser int32
	TotalMessageSent int32
	AppliedTags      mo.Option[ForumTagIDList]
}

func (t *ThreadTrait) Thread() *ThreadTrait {
	return t
}

func (t *ThreadTrait) apply(p *ChannelPayload) {
	overlay(&t.MessageCount, p.MessageCount)
	overlay(&t.MemberCount, p.MemberCount)
	overlay(&t.OwnerID, p.OwnerID)
	overlay(&t.RateLimitPerUser, p.RateLimitPerUser)
	overlay(&t.TotalMessageSent, p.TotalMessageSent)

	if p.ThreadMetadata != nil {
		t.ThreadMetadata = p.ThreadMetadata.clone()
	}

	if p.Member != nil {
		t.Member = mo.Some(p.Member.clone())
	}

	if p.AppliedTags != nil {
		t.AppliedTags = mo.Some(append(make(ForumTagIDList, 0, len(*p.AppliedTags)), *p.AppliedTags...))
	}
}

// DMTrait is carried by direct message channels.
type DMTrait struct {
	Recipients []User
}

func (t *DMTrait) DM() *DMTrait {
	return t
}

func (t *DMTrait) apply(p *ChannelPayload) {
	if p.Recipients != nil {
		t.Recipients = cloneUsers(*p.Recipients)
		if t.Recipients == nil {
			t.Recipients = []User{}
		}
	}
}

// GroupDMTrait is carried by group direct message channels.
type GroupDMTrait struct {
	Name    string
	Icon    mo.Option[string]
	OwnerID UserID
}

func (t *GroupDMTrait) GroupDM() *GroupDMTrait {
	return t
}

func (t *GroupDMTrait) apply(p *ChannelPayload) {
	overlay(&t.Name, p.Name)
	overlay(&t.OwnerID, p.OwnerID)
	overlayNullable(&t.Icon, p.Icon)
}

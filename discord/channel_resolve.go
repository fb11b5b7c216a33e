package discord

import (
	"fmt"
	"strings"

	"github.com/WelcomerTeam/Discord-Resources/wirejson"
)

// channel_resolve.go maps a channel type onto the variant composed of exactly
// the traits that type carries.

// Channel is the sealed supertype of every channel variant. Trait fields are
// only reachable after narrowing, either with a type switch over the variants
// or through one of the trait interfaces below.
type Channel interface {
	Base() *ChannelBase
	Snowflake() Snowflake
	ApplyPayload(payload *ChannelPayload)

	channel()
}

type TextBased interface {
	Channel
	Text() *TextTrait
}

type GuildScoped interface {
	Channel
	Guild() *GuildTrait
}

type ThreadHost interface {
	Channel
	ThreadHost() *ThreadHostTrait
}

type VoiceBased interface {
	Channel
	Voice() *VoiceTrait
}

type StageBased interface {
	Channel
	Stage() *StageTrait
}

type ForumBased interface {
	Channel
	Forum() *ForumTrait
}

type ThreadBased interface {
	Channel
	Thread() *ThreadTrait
}

type DirectMessage interface {
	Channel
	DM() *DMTrait
}

type GroupDirectMessage interface {
	Channel
	GroupDM() *GroupDMTrait
}

// GuildTextChannel is a GUILD_TEXT channel.
type GuildTextChannel struct {
	ChannelBase
	TextTrait
	GuildTrait
	ThreadHostTrait
}

func (c *GuildTextChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.GuildTrait.apply(p)
	c.ThreadHostTrait.apply(p)
}

// DMChannel is a DM channel.
type DMChannel struct {
	ChannelBase
	TextTrait
	DMTrait
}

func (c *DMChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.DMTrait.apply(p)
}

// GuildVoiceChannel is a GUILD_VOICE channel. Voice channels have a text chat.
type GuildVoiceChannel struct {
	ChannelBase
	TextTrait
	GuildTrait
	VoiceTrait
}

func (c *GuildVoiceChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.GuildTrait.apply(p)
	c.VoiceTrait.apply(p)
}

// GroupDMChannel is a GROUP_DM or LFG_GROUP_DM channel.
type GroupDMChannel struct {
	ChannelBase
	TextTrait
	DMTrait
	GroupDMTrait
}

func (c *GroupDMChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.DMTrait.apply(p)
	c.GroupDMTrait.apply(p)
}

// GuildCategoryChannel is a GUILD_CATEGORY channel.
type GuildCategoryChannel struct {
	ChannelBase
	GuildTrait
}

func (c *GuildCategoryChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.GuildTrait.apply(p)
}

// GuildNewsChannel is a GUILD_NEWS (announcement) channel.
type GuildNewsChannel struct {
	ChannelBase
	TextTrait
	GuildTrait
	ThreadHostTrait
}

func (c *GuildNewsChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.GuildTrait.apply(p)
	c.ThreadHostTrait.apply(p)
}

// GuildStoreChannel is a retired GUILD_STORE channel.
type GuildStoreChannel struct {
	ChannelBase
	GuildTrait
}

func (c *GuildStoreChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.GuildTrait.apply(p)
}

// GuildLFGChannel is a retired GUILD_LFG channel.
type GuildLFGChannel struct {
	ChannelBase
	TextTrait
	GuildTrait
}

func (c *GuildLFGChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.GuildTrait.apply(p)
}

// ThreadChannel is any thread: THREAD_ALPHA, NEWS_THREAD, PUBLIC_THREAD or
// PRIVATE_THREAD. Base().Type tells them apart.
type ThreadChannel struct {
	ChannelBase
	TextTrait
	GuildTrait
	ThreadTrait
}

func (c *ThreadChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.GuildTrait.apply(p)
	c.ThreadTrait.apply(p)
}

// GuildStageChannel is a GUILD_STAGE_VOICE channel.
type GuildStageChannel struct {
	ChannelBase
	TextTrait
	GuildTrait
	StageTrait
}

func (c *GuildStageChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.TextTrait.apply(p)
	c.GuildTrait.apply(p)
	c.StageTrait.apply(p)
}

// GuildDirectoryChannel is a GUILD_DIRECTORY channel.
type GuildDirectoryChannel struct {
	ChannelBase
	GuildTrait
}

func (c *GuildDirectoryChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.GuildTrait.apply(p)
}

// GuildForumChannel is a GUILD_FORUM or GUILD_MEDIA channel.
type GuildForumChannel struct {
	ChannelBase
	GuildTrait
	ThreadHostTrait
	ForumTrait
}

func (c *GuildForumChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
	c.GuildTrait.apply(p)
	c.ThreadHostTrait.apply(p)
	c.ForumTrait.apply(p)
}

// UnknownChannel holds a channel whose type this package does not know.
// Only the base fields are kept.
type UnknownChannel struct {
	ChannelBase
}

func (c *UnknownChannel) ApplyPayload(p *ChannelPayload) {
	c.ChannelBase.apply(p)
}

// ResolveChannel builds the variant selected by the payload's type and merges
// the payload into it. Unknown or missing types never fail: they resolve to
// an *UnknownChannel so new channel kinds degrade to their base fields.
func ResolveChannel(p *ChannelPayload) Channel {
	var (
		c           Channel
		channelType ChannelType
		known       = p.Type != nil
	)

	if known {
		channelType = *p.Type
	}

	switch {
	case !known:
		c = &UnknownChannel{}
	case channelType == ChannelTypeGuildText:
		c = &GuildTextChannel{}
	case channelType == ChannelTypeDM:
		c = &DMChannel{}
	case channelType == ChannelTypeGuildVoice:
		c = &GuildVoiceChannel{}
	case channelType == ChannelTypeGroupDM, channelType == ChannelTypeLFGGroupDM:
		c = &GroupDMChannel{}
	case channelType == ChannelTypeGuildCategory:
		c = &GuildCategoryChannel{}
	case channelType == ChannelTypeGuildNews:
		c = &GuildNewsChannel{}
	case channelType == ChannelTypeGuildStore:
		c = &GuildStoreChannel{}
	case channelType == ChannelTypeGuildLFG:
		c = &GuildLFGChannel{}
	case channelType == ChannelTypeThreadAlpha,
		channelType == ChannelTypeGuildNewsThread,
		channelType == ChannelTypeGuildPublicThread,
		channelType == ChannelTypeGuildPrivateThread:
		c = &ThreadChannel{}
	case channelType == ChannelTypeGuildStageVoice:
		c = &GuildStageChannel{}
	case channelType == ChannelTypeGuildDirectory:
		c = &GuildDirectoryChannel{}
	case channelType == ChannelTypeGuildForum, channelType == ChannelTypeGuildMedia:
		c = &GuildForumChannel{}
	default:
		c = &UnknownChannel{}
	}

	c.Base().Type = channelType
	c.ApplyPayload(p)

	return c
}

// UnmarshalChannel decodes a channel payload and resolves it.
func UnmarshalChannel(data []byte) (Channel, error) {
	var payload ChannelPayload

	if err := wirejson.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal channel: %w", err)
	}

	return ResolveChannel(&payload), nil
}

// ChannelTrait identifies one field group a channel can carry.
type ChannelTrait uint16

const (
	ChannelTraitText ChannelTrait = 1 << iota
	ChannelTraitGuild
	ChannelTraitThreadHost
	ChannelTraitVoice
	ChannelTraitStage
	ChannelTraitForum
	ChannelTraitThread
	ChannelTraitDM
	ChannelTraitGroupDM
)

var channelTraitNames = []struct {
	trait ChannelTrait
	name  string
}{
	{ChannelTraitText, "text"},
	{ChannelTraitGuild, "guild"},
	{ChannelTraitThreadHost, "thread_host"},
	{ChannelTraitVoice, "voice"},
	{ChannelTraitStage, "stage"},
	{ChannelTraitForum, "forum"},
	{ChannelTraitThread, "thread"},
	{ChannelTraitDM, "dm"},
	{ChannelTraitGroupDM, "group_dm"},
}

func (t ChannelTrait) Has(trait ChannelTrait) bool {
	return t&trait == trait
}

// Names lists the traits in the set in a stable order.
func (t ChannelTrait) Names() []string {
	names := make([]string, 0, len(channelTraitNames))

	for _, entry := range channelTraitNames {
		if t.Has(entry.trait) {
			names = append(names, entry.name)
		}
	}

	return names
}

func (t ChannelTrait) String() string {
	if t == 0 {
		return "base"
	}

	return strings.Join(t.Names(), "+")
}

// ChannelTraits reports the traits carried by c.
func ChannelTraits(c Channel) ChannelTrait {
	var traits ChannelTrait

	if _, ok := c.(TextBased); ok {
		traits |= ChannelTraitText
	}

	if _, ok := c.(GuildScoped); ok {
		traits |= ChannelTraitGuild
	}

	if _, ok := c.(ThreadHost); ok {
		traits |= ChannelTraitThreadHost
	}

	if _, ok := c.(VoiceBased); ok {
		traits |= ChannelTraitVoice
	}

	if _, ok := c.(StageBased); ok {
		traits |= ChannelTraitStage
	}

	if _, ok := c.(ForumBased); ok {
		traits |= ChannelTraitForum
	}

	if _, ok := c.(ThreadBased); ok {
		traits |= ChannelTraitThread
	}

	if _, ok := c.(DirectMessage); ok {
		traits |= ChannelTraitDM
	}

	if _, ok := c.(GroupDirectMessage); ok {
		traits |= ChannelTraitGroupDM
	}

	return traits
}

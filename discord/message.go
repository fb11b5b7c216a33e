package discord

import (
	"fmt"

	"github.com/WelcomerTeam/Discord-Resources/wirejson"
	"github.com/samber/mo"
)

// message.go contains the structure that represents a discord message.

// MessageType represents the type of message that has been sent.
type MessageType uint16

const (
	MessageTypeDefault MessageType = iota
	MessageTypeRecipientAdd
	MessageTypeRecipientRemove
	MessageTypeCall
	MessageTypeChannelNameChange
	MessageTypeChannelIconChange
	MessageTypeChannelPinnedMessage
	MessageTypeGuildMemberJoin
	MessageTypeUserPremiumGuildSubscription
	MessageTypeUserPremiumGuildSubscriptionTier1
	MessageTypeUserPremiumGuildSubscriptionTier2
	MessageTypeUserPremiumGuildSubscriptionTier3
	MessageTypeChannelFollowAdd
	_
	MessageTypeGuildDiscoveryDisqualified
	MessageTypeGuildDiscoveryRequalified
	MessageTypeGuildDiscoveryGracePeriodInitialWarning
	MessageTypeGuildDiscoveryGracePeriodFinalWarning
	MessageTypeThreadCreated
	MessageTypeReply
	MessageTypeApplicationCommand
	MessageTypeThreadStarterMessage
	MessageTypeGuildInviteReminder
)

// MessageFlags represents the extra information on a message.
type MessageFlags uint32

const (
	MessageFlagCrossposted MessageFlags = 1 << iota
	MessageFlagIsCrosspost
	MessageFlagSuppressEmbeds
	MessageFlagSourceMessageDeleted
	MessageFlagUrgent
	MessageFlagHasThread
	MessageFlagEphemeral
	MessageFlagLoading
	MessageFlagFailedToMentionSomeRolesInThread
	_
	_
	_
	MessageFlagSuppressNotifications
	MessageFlagIsVoiceMessage
	MessageFlagHasSnapshot
	MessageFlagIsComponentsV2
)

func (f MessageFlags) Has(flag MessageFlags) bool {
	return f&flag == flag
}

// MessageReference represents crossposted messages or replys.
type MessageReference struct {
	ID              *MessageID `json:"message_id,omitempty"`
	ChannelID       *ChannelID `json:"channel_id,omitempty"`
	GuildID         *GuildID   `json:"guild_id,omitempty"`
	FailIfNotExists *bool      `json:"fail_if_not_exists,omitempty"`
}

func (r *MessageReference) clone() *MessageReference {
	if r == nil {
		return nil
	}

	return &MessageReference{
		ID:              clonePtr(r.ID),
		ChannelID:       clonePtr(r.ChannelID),
		GuildID:         clonePtr(r.GuildID),
		FailIfNotExists: clonePtr(r.FailIfNotExists),
	}
}

// MessagePayload is the wire shape of a message.
type MessagePayload struct {
	ID               *MessageID            `json:"id,omitempty"`
	ChannelID        *ChannelID            `json:"channel_id,omitempty"`
	GuildID          *GuildID              `json:"guild_id,omitempty"`
	WebhookID        *WebhookID            `json:"webhook_id,omitempty"`
	ApplicationID    *ApplicationID        `json:"application_id,omitempty"`
	Author           *User                 `json:"author,omitempty"`
	Content          *string               `json:"content,omitempty"`
	Timestamp        *Timestamp            `json:"timestamp,omitempty"`
	EditedTimestamp  Nullable[Timestamp]   `json:"edited_timestamp"`
	Type             *MessageType          `json:"type,omitempty"`
	Flags            *MessageFlags         `json:"flags,omitempty"`
	TTS              *bool                 `json:"tts,omitempty"`
	MentionEveryone  *bool                 `json:"mention_everyone,omitempty"`
	MentionRoles     *RoleIDList           `json:"mention_roles,omitempty"`
	Pinned           *bool                 `json:"pinned,omitempty"`
	MessageReference *MessageReference     `json:"message_reference,omitempty"`
	StickerItems     *[]StickerItemPayload `json:"sticker_items,omitempty"`
	Components       *[]ComponentPayload   `json:"components,omitempty"`
	Thread           *ChannelPayload       `json:"thread,omitempty"`
}

// Message represents a message on discord. Its sticker items, components and
// thread are resolved into their typed forms.
type Message struct {
	Timestamp        Timestamp
	EditedTimestamp  mo.Option[Timestamp]
	GuildID          mo.Option[GuildID]
	WebhookID        mo.Option[WebhookID]
	ApplicationID    mo.Option[ApplicationID]
	Author           *User
	MessageReference *MessageReference
	Thread           Channel
	Content          string
	StickerItems     []*StickerItem
	Components       []Component
	MentionRoles     RoleIDList
	ID               MessageID
	ChannelID        ChannelID
	Flags            MessageFlags
	Type             MessageType
	TTS              bool
	MentionEveryone  bool
	Pinned           bool
}

// NewMessage creates a message from its payload.
func NewMessage(p *MessagePayload) (*Message, error) {
	m := &Message{}

	if err := m.ApplyPayload(p); err != nil {
		return nil, err
	}

	return m, nil
}

// UnmarshalMessage decodes and resolves a message payload.
func UnmarshalMessage(data []byte) (*Message, error) {
	var payload MessagePayload

	if err := wirejson.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return NewMessage(&payload)
}

func (m *Message) Snowflake() Snowflake {
	return Snowflake(m.ID)
}

// ApplyPayload merges a payload into the message. Components are resolved
// first, against the layout rules selected by the payload flags or the
// current flags when the payload has none. When they are invalid the error is
// returned and the message is left unchanged.
func (m *Message) ApplyPayload(p *MessagePayload) error {
	var components []Component

	if p.Components != nil {
		flags := m.Flags
		if p.Flags != nil {
			flags = *p.Flags
		}

		var err error

		components, err = ResolveComponents(*p.Components, MessageComponentContext(flags))
		if err != nil {
			return err
		}
	}

	overlayIdentity(&m.ID, p.ID)
	overlay(&m.ChannelID, p.ChannelID)
	overlay(&m.Content, p.Content)
	overlay(&m.Timestamp, p.Timestamp)
	overlay(&m.Type, p.Type)
	overlay(&m.Flags, p.Flags)
	overlay(&m.TTS, p.TTS)
	overlay(&m.MentionEveryone, p.MentionEveryone)
	overlay(&m.Pinned, p.Pinned)
	overlayNullable(&m.EditedTimestamp, p.EditedTimestamp)
	overlayOption(&m.GuildID, p.GuildID)
	overlayOption(&m.WebhookID, p.WebhookID)
	overlayOption(&m.ApplicationID, p.ApplicationID)

	if p.MentionRoles != nil {
		m.MentionRoles = append(make(RoleIDList, 0, len(*p.MentionRoles)), *p.MentionRoles...)
	}

	if p.Author != nil {
		m.Author = p.Author.Clone()
	}

	if p.MessageReference != nil {
		m.MessageReference = p.MessageReference.clone()
	}

	if p.StickerItems != nil {
		m.applyStickerItems(*p.StickerItems)
	}

	if p.Components != nil {
		m.Components = components
	}

	if p.Thread != nil {
		m.applyThread(p.Thread)
	}

	return nil
}

// applyStickerItems keeps existing sticker item entities for ids that are
// still present.
func (m *Message) applyStickerItems(payloads []StickerItemPayload) {
	existing := make(map[StickerID]*StickerItem, len(m.StickerItems))
	for _, item := range m.StickerItems {
		existing[item.ID] = item
	}

	items := make([]*StickerItem, 0, len(payloads))

	for i := range payloads {
		payload := &payloads[i]

		if payload.ID != nil {
			if item, ok := existing[*payload.ID]; ok {
				item.ApplyPayload(payload)
				items = append(items, item)

				continue
			}
		}

		items = append(items, NewStickerItem(payload))
	}

	m.StickerItems = items
}

// applyThread merges into the current thread when the payload describes the
// same channel kind, otherwise the thread is resolved again.
func (m *Message) applyThread(p *ChannelPayload) {
	if m.Thread != nil {
		base := m.Thread.Base()

		sameID := p.ID == nil || *p.ID == base.ID
		sameType := p.Type == nil || *p.Type == base.Type

		if sameID && sameType {
			m.Thread.ApplyPayload(p)

			return
		}
	}

	m.Thread = ResolveChannel(p)
}

// IsComponentsV2 reports whether the message uses the layout component system.
func (m *Message) IsComponentsV2() bool {
	return m.Flags.Has(MessageFlagIsComponentsV2)
}

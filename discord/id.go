package discord

type GuildID Snowflake

func (s *GuildID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s GuildID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s GuildID) String() string {
	return Snowflake(s).String()
}

type ChannelID Snowflake

func (s *ChannelID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ChannelID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ChannelID) String() string {
	return Snowflake(s).String()
}

type MessageID Snowflake

func (s *MessageID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s MessageID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s MessageID) String() string {
	return Snowflake(s).String()
}

type UserID Snowflake

func (s *UserID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s UserID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s UserID) String() string {
	return Snowflake(s).String()
}

type RoleID Snowflake

func (s *RoleID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s RoleID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s RoleID) String() string {
	return Snowflake(s).String()
}

type EmojiID Snowflake

func (s *EmojiID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s EmojiID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s EmojiID) String() string {
	return Snowflake(s).String()
}

type StickerID Snowflake

func (s *StickerID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s StickerID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s StickerID) String() string {
	return Snowflake(s).String()
}

type StickerPackID Snowflake

func (s *StickerPackID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s StickerPackID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s StickerPackID) String() string {
	return Snowflake(s).String()
}

type SKUID Snowflake

func (s *SKUID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s SKUID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s SKUID) String() string {
	return Snowflake(s).String()
}

type ApplicationID Snowflake

func (s *ApplicationID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ApplicationID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ApplicationID) String() string {
	return Snowflake(s).String()
}

type ForumTagID Snowflake

func (s *ForumTagID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ForumTagID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ForumTagID) String() string {
	return Snowflake(s).String()
}

type WebhookID Snowflake

func (s *WebhookID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s WebhookID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s WebhookID) String() string {
	return Snowflake(s).String()
}

// Corresponding List types
type ForumTagIDList = List[ForumTagID]
type RoleIDList = List[RoleID]

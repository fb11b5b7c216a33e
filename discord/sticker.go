package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/mo"
)

// sticker.go contains sticker items, stickers and sticker packs.

const (
	EndpointCDN   = "https://cdn.discordapp.com"
	EndpointMedia = "https://media.discordapp.net"

	// stickerPackBannerApplication owns the store assets used for pack banners.
	stickerPackBannerApplication = "710982414301790216"
)

// StickerType represents the type of sticker.
type StickerType uint16

const (
	StickerTypeStandard StickerType = 1 + iota
	StickerTypeGuild
)

// StickerFormatType represents the sticker format.
type StickerFormatType uint16

const (
	StickerFormatTypePNG StickerFormatType = 1 + iota
	StickerFormatTypeAPNG
	StickerFormatTypeLOTTIE
	StickerFormatTypeGIF
)

// Extension returns the file extension stickers of this format are served with.
func (f StickerFormatType) Extension() string {
	switch f {
	case StickerFormatTypeLOTTIE:
		return "json"
	case StickerFormatTypeGIF:
		return "gif"
	default:
		return "png"
	}
}

func (f StickerFormatType) String() string {
	switch f {
	case StickerFormatTypePNG:
		return "PNG"
	case StickerFormatTypeAPNG:
		return "APNG"
	case StickerFormatTypeLOTTIE:
		return "LOTTIE"
	case StickerFormatTypeGIF:
		return "GIF"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(f))
	}
}

// ParseStickerFormatType accepts a format name (png, apng, lottie, gif).
func ParseStickerFormatType(name string) (StickerFormatType, error) {
	for _, format := range []StickerFormatType{StickerFormatTypePNG, StickerFormatTypeAPNG, StickerFormatTypeLOTTIE, StickerFormatTypeGIF} {
		if strings.EqualFold(format.String(), name) {
			return format, nil
		}
	}

	return 0, fmt.Errorf("unknown sticker format %q", name)
}

// Hosts is the pair of asset hosts static urls are built from.
type Hosts struct {
	CDN   string
	Media string
}

var DefaultHosts = Hosts{CDN: EndpointCDN, Media: EndpointMedia}

// StickerURL derives the asset url of a sticker. GIF stickers are served from
// the media host, everything else from the CDN.
func (h Hosts) StickerURL(id StickerID, format StickerFormatType) string {
	host := h.CDN
	if format == StickerFormatTypeGIF {
		host = h.Media
	}

	return host + "/stickers/" + id.String() + "." + format.Extension()
}

// StickerPackBannerURL derives the banner url of a sticker pack.
func (h Hosts) StickerPackBannerURL(bannerAssetID Snowflake) string {
	return h.CDN + "/app-assets/" + stickerPackBannerApplication + "/store/" + bannerAssetID.String() + ".png"
}

// StickerURL derives a sticker url using DefaultHosts.
func StickerURL(id StickerID, format StickerFormatType) string {
	return DefaultHosts.StickerURL(id, format)
}

// StickerItemPayload is the smallest sticker shape, sent on messages.
type StickerItemPayload struct {
	ID         *StickerID         `json:"id,omitempty"`
	Name       *string            `json:"name,omitempty"`
	FormatType *StickerFormatType `json:"format_type,omitempty"`
}

// StickerItem represents a sticker in a message.
type StickerItem struct {
	Name       string
	ID         StickerID
	FormatType StickerFormatType
}

var _ Entity[*StickerItemPayload] = (*StickerItem)(nil)

func NewStickerItem(p *StickerItemPayload) *StickerItem {
	s := &StickerItem{}
	s.ApplyPayload(p)

	return s
}

func (s *StickerItem) Snowflake() Snowflake {
	return Snowflake(s.ID)
}

func (s *StickerItem) ApplyPayload(p *StickerItemPayload) {
	overlayIdentity(&s.ID, p.ID)
	overlay(&s.Name, p.Name)
	overlay(&s.FormatType, p.FormatType)
}

// URL is derived from the current id and format on every call.
func (s *StickerItem) URL() string {
	return StickerURL(s.ID, s.FormatType)
}

func (s *StickerItem) Payload() StickerItemPayload {
	return StickerItemPayload{
		ID:         ptr(s.ID),
		Name:       ptr(s.Name),
		FormatType: ptr(s.FormatType),
	}
}

// StickerPayload is the wire shape of a sticker. An explicit null description
// clears the description, other nulls are treated as omitted.
type StickerPayload struct {
	ID          *StickerID         `json:"id,omitempty"`
	PackID      *StickerPackID     `json:"pack_id,omitempty"`
	GuildID     *GuildID           `json:"guild_id,omitempty"`
	User        *User              `json:"user,omitempty"`
	Name        *string            `json:"name,omitempty"`
	Description Nullable[string]   `json:"description"`
	Tags        *string            `json:"tags,omitempty"`
	Type        *StickerType       `json:"type,omitempty"`
	FormatType  *StickerFormatType `json:"format_type,omitempty"`
	Available   *bool              `json:"available,omitempty"`
	SortValue   *int32             `json:"sort_value,omitempty"`
}

// Sticker represents a sticker object. Only stickers with a GuildID can be
// edited or deleted.
type Sticker struct {
	PackID      mo.Option[StickerPackID]
	GuildID     mo.Option[GuildID]
	User        *User
	Description mo.Option[string]
	Available   mo.Option[bool]
	SortValue   mo.Option[int32]
	Name        string
	Tags        string
	ID          StickerID
	Type        StickerType
	FormatType  StickerFormatType
}

var _ Entity[*StickerPayload] = (*Sticker)(nil)

func NewSticker(p *StickerPayload) *Sticker {
	s := &Sticker{}
	s.ApplyPayload(p)

	return s
}

func (s *Sticker) Snowflake() Snowflake {
	return Snowflake(s.ID)
}

func (s *Sticker) ApplyPayload(p *StickerPayload) {
	overlayIdentity(&s.ID, p.ID)
	overlay(&s.Name, p.Name)
	overlay(&s.Type, p.Type)
	overlay(&s.FormatType, p.FormatType)
	overlay(&s.Tags, p.Tags)
	overlayNullable(&s.Description, p.Description)
	overlayOption(&s.PackID, p.PackID)
	overlayOption(&s.Available, p.Available)
	overlayOption(&s.GuildID, p.GuildID)
	overlayOption(&s.SortValue, p.SortValue)

	if p.User != nil {
		s.User = p.User.Clone()
	}
}

// URL is derived from the current id and format on every call.
func (s *Sticker) URL() string {
	return StickerURL(s.ID, s.FormatType)
}

// Item returns the sticker item view of the sticker.
func (s *Sticker) Item() *StickerItem {
	return &StickerItem{ID: s.ID, Name: s.Name, FormatType: s.FormatType}
}

func (s *Sticker) Payload() StickerPayload {
	return StickerPayload{
		ID:          ptr(s.ID),
		PackID:      optionPtr(s.PackID),
		GuildID:     optionPtr(s.GuildID),
		User:        s.User.Clone(),
		Name:        ptr(s.Name),
		Description: optionNullable(s.Description),
		Tags:        ptr(s.Tags),
		Type:        ptr(s.Type),
		FormatType:  ptr(s.FormatType),
		Available:   optionPtr(s.Available),
		SortValue:   optionPtr(s.SortValue),
	}
}

// StickerParams represents the arguments to modify a guild sticker.
type StickerParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Tags        *string `json:"tags,omitempty"`

	// Reason is sent as the audit log reason.
	Reason string `json:"-"`
}

// Validate checks the documented length limits: name 2-30, description empty
// or 2-100 and tags 2-200 characters.
func (p StickerParams) Validate() error {
	if p.Name != nil && !lengthBetween(*p.Name, 2, 30) {
		return &PreconditionError{Op: "sticker params", Err: errors.New("name must be 2-30 characters")}
	}

	if p.Description != nil && *p.Description != "" && !lengthBetween(*p.Description, 2, 100) {
		return &PreconditionError{Op: "sticker params", Err: errors.New("description must be empty or 2-100 characters")}
	}

	if p.Tags != nil && !lengthBetween(*p.Tags, 2, 200) {
		return &PreconditionError{Op: "sticker params", Err: errors.New("tags must be 2-200 characters")}
	}

	return nil
}

func lengthBetween(value string, minimum, maximum int) bool {
	length := utf8.RuneCountInString(value)

	return length >= minimum && length <= maximum
}

// StickerClient performs the sticker requests the lifecycle methods need.
// Provider errors are returned as is and Edit and Delete pass them on unchanged.
type StickerClient interface {
	// EditGuildSticker modifies a sticker and returns the id of the updated sticker.
	EditGuildSticker(ctx context.Context, guildID GuildID, stickerID StickerID, params StickerParams) (StickerID, error)
	DeleteGuildSticker(ctx context.Context, guildID GuildID, stickerID StickerID, reason string) (bool, error)
	GetSticker(ctx context.Context, stickerID StickerID) (*StickerPayload, error)
}

// Edit modifies a guild sticker. The sticker is then fetched again and merged
// in full, so fields changed by the server are reflected too. The receiver is
// updated in place and returned.
func (s *Sticker) Edit(ctx context.Context, client StickerClient, params StickerParams) (*Sticker, error) {
	guildID, ok := s.GuildID.Get()
	if !ok {
		return nil, &PreconditionError{Op: "edit sticker", Err: ErrGuildOnly}
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	id, err := client.EditGuildSticker(ctx, guildID, s.ID, params)
	if err != nil {
		return nil, err
	}

	payload, err := client.GetSticker(ctx, id)
	if err != nil {
		return nil, err
	}

	s.ApplyPayload(payload)

	return s, nil
}

// Delete deletes a guild sticker. Removing it from any cache is left to the caller.
func (s *Sticker) Delete(ctx context.Context, client StickerClient, reason string) (bool, error) {
	guildID, ok := s.GuildID.Get()
	if !ok {
		return false, &PreconditionError{Op: "delete sticker", Err: ErrGuildOnly}
	}

	return client.DeleteGuildSticker(ctx, guildID, s.ID, reason)
}

// StickerPackPayload is the wire shape of a sticker pack.
type StickerPackPayload struct {
	ID             *StickerPackID    `json:"id,omitempty"`
	Stickers       *[]StickerPayload `json:"stickers,omitempty"`
	Name           *string           `json:"name,omitempty"`
	SKUID          *SKUID            `json:"sku_id,omitempty"`
	CoverStickerID *StickerID        `json:"cover_sticker_id,omitempty"`
	Description    *string           `json:"description,omitempty"`
	BannerAssetID  *Snowflake        `json:"banner_asset_id,omitempty"`
}

// StickerPack represents a pack of standard stickers. Each pack owns its
// stickers; they are built fresh from every payload that carries them.
type StickerPack struct {
	CoverStickerID mo.Option[StickerID]
	BannerAssetID  mo.Option[Snowflake]
	Stickers       []*Sticker
	Name           string
	Description    string
	ID             StickerPackID
	SKUID          SKUID
}

var _ Entity[*StickerPackPayload] = (*StickerPack)(nil)

func NewStickerPack(p *StickerPackPayload) *StickerPack {
	s := &StickerPack{}
	s.ApplyPayload(p)

	return s
}

func (s *StickerPack) Snowflake() Snowflake {
	return Snowflake(s.ID)
}

func (s *StickerPack) ApplyPayload(p *StickerPackPayload) {
	overlayIdentity(&s.ID, p.ID)
	overlay(&s.Name, p.Name)
	overlay(&s.SKUID, p.SKUID)
	overlay(&s.Description, p.Description)
	overlayOption(&s.CoverStickerID, p.CoverStickerID)
	overlayOption(&s.BannerAssetID, p.BannerAssetID)

	if p.Stickers != nil {
		stickers := make([]*Sticker, 0, len(*p.Stickers))
		for i := range *p.Stickers {
			stickers = append(stickers, NewSticker(&(*p.Stickers)[i]))
		}

		s.Stickers = stickers
	}
}

// CoverSticker returns the pack's cover sticker if it is part of the pack.
func (s *StickerPack) CoverSticker() (*Sticker, bool) {
	coverID, ok := s.CoverStickerID.Get()
	if !ok {
		return nil, false
	}

	for _, sticker := range s.Stickers {
		if sticker.ID == coverID {
			return sticker, true
		}
	}

	return nil, false
}

// BannerURL returns the pack banner url when the pack has one.
func (s *StickerPack) BannerURL() mo.Option[string] {
	bannerAssetID, ok := s.BannerAssetID.Get()
	if !ok {
		return mo.None[string]()
	}

	return mo.Some(DefaultHosts.StickerPackBannerURL(bannerAssetID))
}

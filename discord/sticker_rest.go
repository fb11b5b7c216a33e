package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RESTStickerClient implements StickerClient on top of a Session. The
// StickerClient methods return *RestError and transport errors unwrapped; the
// other lookups wrap them with the failed operation.
type RESTStickerClient struct {
	Session *Session
}

var _ StickerClient = (*RESTStickerClient)(nil)

func NewRESTStickerClient(session *Session) *RESTStickerClient {
	return &RESTStickerClient{Session: session}
}

func reasonHeader(reason string) http.Header {
	headers := http.Header{}

	if reason != "" {
		headers.Set(AuditLogReasonHeader, url.PathEscape(reason))
	}

	return headers
}

// GetSticker returns a sticker by its id.
func (c *RESTStickerClient) GetSticker(ctx context.Context, stickerID StickerID) (*StickerPayload, error) {
	endpoint := fmt.Sprintf(EndpointSticker, stickerID)

	var sticker StickerPayload

	err := c.Session.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &sticker)
	if err != nil {
		return nil, err
	}

	return &sticker, nil
}

// GetGuildSticker returns a sticker of a guild.
func (c *RESTStickerClient) GetGuildSticker(ctx context.Context, guildID GuildID, stickerID StickerID) (*Sticker, error) {
	endpoint := fmt.Sprintf(EndpointGuildSticker, guildID, stickerID)

	var sticker StickerPayload

	err := c.Session.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &sticker)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild sticker: %w", err)
	}

	return NewSticker(&sticker), nil
}

// ListGuildStickers returns every sticker of a guild.
func (c *RESTStickerClient) ListGuildStickers(ctx context.Context, guildID GuildID) ([]*Sticker, error) {
	endpoint := fmt.Sprintf(EndpointGuildStickers, guildID)

	var payloads []StickerPayload

	err := c.Session.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &payloads)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild stickers: %w", err)
	}

	stickers := make([]*Sticker, 0, len(payloads))
	for i := range payloads {
		stickers = append(stickers, NewSticker(&payloads[i]))
	}

	return stickers, nil
}

// EditGuildSticker modifies a guild sticker and returns the id of the updated sticker.
func (c *RESTStickerClient) EditGuildSticker(ctx context.Context, guildID GuildID, stickerID StickerID, params StickerParams) (StickerID, error) {
	endpoint := fmt.Sprintf(EndpointGuildSticker, guildID, stickerID)

	var sticker StickerPayload

	err := c.Session.FetchJJ(ctx, http.MethodPatch, endpoint, params, reasonHeader(params.Reason), &sticker)
	if err != nil {
		return 0, err
	}

	if sticker.ID == nil {
		return stickerID, nil
	}

	return *sticker.ID, nil
}

// DeleteGuildSticker deletes a guild sticker.
func (c *RESTStickerClient) DeleteGuildSticker(ctx context.Context, guildID GuildID, stickerID StickerID, reason string) (bool, error) {
	endpoint := fmt.Sprintf(EndpointGuildSticker, guildID, stickerID)

	err := c.Session.FetchJJ(ctx, http.MethodDelete, endpoint, nil, reasonHeader(reason), nil)
	if err != nil {
		return false, err
	}

	return true, nil
}

// GetStickerPack returns a sticker pack by its id.
func (c *RESTStickerClient) GetStickerPack(ctx context.Context, packID StickerPackID) (*StickerPack, error) {
	endpoint := fmt.Sprintf(EndpointStickerPack, packID)

	var pack StickerPackPayload

	err := c.Session.FetchJJ(ctx, http.MethodGet, endpoint, nil, nil, &pack)
	if err != nil {
		return nil, fmt.Errorf("failed to get sticker pack: %w", err)
	}

	return NewStickerPack(&pack), nil
}

// ListStickerPacks returns the available standard sticker packs.
func (c *RESTStickerClient) ListStickerPacks(ctx context.Context) ([]*StickerPack, error) {
	var response struct {
		StickerPacks []StickerPackPayload `json:"sticker_packs"`
	}

	err := c.Session.FetchJJ(ctx, http.MethodGet, EndpointStickerPacks, nil, nil, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to list sticker packs: %w", err)
	}

	packs := make([]*StickerPack, 0, len(response.StickerPacks))
	for i := range response.StickerPacks {
		packs = append(packs, NewStickerPack(&response.StickerPacks[i]))
	}

	return packs, nil
}

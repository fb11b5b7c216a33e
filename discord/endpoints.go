package discord

// Discord Endpoint URLs.
const (
	EndpointGuildStickers = "/guilds/%d/stickers"
	EndpointGuildSticker  = "/guilds/%d/stickers/%d"
	EndpointSticker       = "/stickers/%d"
	EndpointStickerPacks  = "/sticker-packs"
	EndpointStickerPack   = "/sticker-packs/%d"
)

package discord

// components_builder.go contains chainable constructors for component trees.
// Trees built here are not checked until ValidateComponents or a resolve.

func NewActionRow(components ...Component) *ActionRow {
	return &ActionRow{Components: components}
}

func (c *ActionRow) AddComponent(component Component) *ActionRow {
	c.Components = append(c.Components, component)

	return c
}

func NewButton(style ButtonStyle) *Button {
	return &Button{Style: style}
}

func (c *Button) SetCustomID(customID string) *Button {
	c.CustomID = &customID

	return c
}

func (c *Button) SetLabel(label string) *Button {
	c.Label = &label

	return c
}

func (c *Button) SetEmoji(emoji *PartialEmoji) *Button {
	c.Emoji = emoji

	return c
}

func (c *Button) SetURL(url string) *Button {
	c.URL = &url

	return c
}

func (c *Button) SetSKUID(skuID SKUID) *Button {
	c.SKUID = &skuID

	return c
}

func (c *Button) SetDisabled(disabled bool) *Button {
	c.Disabled = &disabled

	return c
}

func NewStringSelect(customID string) *StringSelect {
	return &StringSelect{SelectMenu: SelectMenu{CustomID: customID}}
}

func (c *StringSelect) AddOption(option SelectOption) *StringSelect {
	c.Options = append(c.Options, option)

	return c
}

func (c *SelectMenu) SetPlaceholder(placeholder string) *SelectMenu {
	c.Placeholder = &placeholder

	return c
}

func (c *SelectMenu) SetMinMaxValues(minValue, maxValue *int32) *SelectMenu {
	c.MinValues = minValue
	c.MaxValues = maxValue

	return c
}

func (c *SelectMenu) SetDisabled(disabled bool) *SelectMenu {
	c.Disabled = &disabled

	return c
}

func NewUserSelect(customID string) *UserSelect {
	return &UserSelect{SelectMenu: SelectMenu{CustomID: customID}}
}

func NewRoleSelect(customID string) *RoleSelect {
	return &RoleSelect{SelectMenu: SelectMenu{CustomID: customID}}
}

func NewMentionableSelect(customID string) *MentionableSelect {
	return &MentionableSelect{SelectMenu: SelectMenu{CustomID: customID}}
}

func NewChannelSelect(customID string, channelTypes ...ChannelType) *ChannelSelect {
	c := &ChannelSelect{SelectMenu: SelectMenu{CustomID: customID}}
	if len(channelTypes) > 0 {
		c.ChannelTypes = &channelTypes
	}

	return c
}

func NewTextInput(customID string, style TextInputStyle) *TextInput {
	return &TextInput{CustomID: customID, Style: style}
}

func (c *TextInput) SetLabel(label string) *TextInput {
	c.Label = &label

	return c
}

func (c *TextInput) SetLength(minLength, maxLength *int32) *TextInput {
	c.MinLength = minLength
	c.MaxLength = maxLength

	return c
}

func (c *TextInput) SetRequired(required bool) *TextInput {
	c.Required = &required

	return c
}

func NewTextDisplay(content string) *TextDisplay {
	return &TextDisplay{Content: content}
}

func NewSection(accessory Component, texts ...*TextDisplay) *Section {
	section := &Section{Accessory: accessory}
	for _, text := range texts {
		section.Components = append(section.Components, text)
	}

	return section
}

func NewThumbnail(url string) *Thumbnail {
	return &Thumbnail{Media: UnfurledMediaItem{URL: url}}
}

func NewMediaGallery(urls ...string) *MediaGallery {
	gallery := &MediaGallery{}
	for _, url := range urls {
		gallery.Items = append(gallery.Items, MediaGalleryItem{Media: UnfurledMediaItem{URL: url}})
	}

	return gallery
}

func NewFile(url string) *File {
	return &File{File: UnfurledMediaItem{URL: url}}
}

func NewSeparator(divider bool, spacing SeparatorSpacing) *Separator {
	return &Separator{Divider: &divider, Spacing: &spacing}
}

func NewContainer(components ...Component) *Container {
	return &Container{Components: components}
}

func (c *Container) SetAccentColor(color int32) *Container {
	c.AccentColor = &color

	return c
}

func NewLabel(label string, component Component) *Label {
	return &Label{Label: label, Component: component}
}

func (c *Label) SetDescription(description string) *Label {
	c.Description = &description

	return c
}

func NewFileUpload(customID string) *FileUpload {
	return &FileUpload{CustomID: customID}
}

package discord

import (
	"strconv"
)

// components.go contains the message component kinds and their wire shape.

// ComponentType represents the type of component.
type ComponentType uint16

const (
	// ComponentTypeActionRow is a container for a row of interactive components.
	ComponentTypeActionRow ComponentType = 1 + iota
	// ComponentTypeButton is a clickable button. There is a limit of 5 buttons
	// per action row and they can not share a row with a select menu.
	ComponentTypeButton
	// ComponentTypeStringSelect allows for users to select from predefined text options.
	ComponentTypeStringSelect
	// ComponentTypeTextInput allows for users to freely input text in a modal.
	ComponentTypeTextInput
	ComponentTypeUserSelect
	ComponentTypeRoleSelect
	ComponentTypeMentionableSelect
	ComponentTypeChannelSelect
	// ComponentTypeSection shows text alongside an accessory.
	ComponentTypeSection
	// ComponentTypeTextDisplay is markdown text.
	ComponentTypeTextDisplay
	// ComponentTypeThumbnail is a small image used as a section accessory.
	ComponentTypeThumbnail
	ComponentTypeMediaGallery
	ComponentTypeFile
	// ComponentTypeSeparator adds vertical padding between components.
	ComponentTypeSeparator
)

const (
	// ComponentTypeContainer visually groups a set of components.
	ComponentTypeContainer ComponentType = 17 + iota
	// ComponentTypeLabel associates a label and description with a modal component.
	ComponentTypeLabel
	ComponentTypeFileUpload
)

var componentTypeNames = map[ComponentType]string{
	ComponentTypeActionRow:         "ACTION_ROW",
	ComponentTypeButton:            "BUTTON",
	ComponentTypeStringSelect:      "STRING_SELECT",
	ComponentTypeTextInput:         "TEXT_INPUT",
	ComponentTypeUserSelect:        "USER_SELECT",
	ComponentTypeRoleSelect:        "ROLE_SELECT",
	ComponentTypeMentionableSelect: "MENTIONABLE_SELECT",
	ComponentTypeChannelSelect:     "CHANNEL_SELECT",
	ComponentTypeSection:           "SECTION",
	ComponentTypeTextDisplay:       "TEXT_DISPLAY",
	ComponentTypeThumbnail:         "THUMBNAIL",
	ComponentTypeMediaGallery:      "MEDIA_GALLERY",
	ComponentTypeFile:              "FILE",
	ComponentTypeSeparator:         "SEPARATOR",
	ComponentTypeContainer:         "CONTAINER",
	ComponentTypeLabel:             "LABEL",
	ComponentTypeFileUpload:        "FILE_UPLOAD",
}

func (t ComponentType) String() string {
	if name, ok := componentTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
}

// IsContainer reports whether components of this type may hold children.
func (t ComponentType) IsContainer() bool {
	switch t {
	case ComponentTypeActionRow, ComponentTypeContainer, ComponentTypeSection, ComponentTypeLabel:
		return true
	default:
		return false
	}
}

// IsSelect reports whether the type is one of the select menus.
func (t ComponentType) IsSelect() bool {
	switch t {
	case ComponentTypeStringSelect, ComponentTypeUserSelect, ComponentTypeRoleSelect,
		ComponentTypeMentionableSelect, ComponentTypeChannelSelect:
		return true
	default:
		return false
	}
}

// ButtonStyle represents the style of a button.
type ButtonStyle uint16

const (
	ButtonStylePrimary ButtonStyle = 1 + iota
	ButtonStyleSecondary
	ButtonStyleSuccess
	ButtonStyleDanger
	ButtonStyleLink
	ButtonStylePremium
)

// TextInputStyle represents the style of a text input.
type TextInputStyle uint16

const (
	// TextInputStyleShort allows for a single-line input.
	TextInputStyleShort TextInputStyle = 1 + iota
	// TextInputStyleParagraph allows for a multi-line input.
	TextInputStyleParagraph
)

// SeparatorSpacing represents the padding of a separator.
type SeparatorSpacing uint16

const (
	SeparatorSpacingSmall SeparatorSpacing = 1 + iota
	SeparatorSpacingLarge
)

// SelectDefaultValueType is the kind of entity a select default value points at.
type SelectDefaultValueType string

const (
	SelectDefaultValueTypeUser    SelectDefaultValueType = "user"
	SelectDefaultValueTypeRole    SelectDefaultValueType = "role"
	SelectDefaultValueTypeChannel SelectDefaultValueType = "channel"
)

// ComponentPayload is the wire shape of every component kind. Only the fields
// relevant to Type are set; everything else stays nil and is omitted.
type ComponentPayload struct {
	ID *int32 `json:"id,omitempty"`

	CustomID *string       `json:"custom_id,omitempty"`
	Style    *uint16       `json:"style,omitempty"`
	Label    *string       `json:"label,omitempty"`
	Emoji    *PartialEmoji `json:"emoji,omitempty"`
	URL      *string       `json:"url,omitempty"`
	SKUID    *SKUID        `json:"sku_id,omitempty"`
	Disabled *bool         `json:"disabled,omitempty"`

	Placeholder   *string               `json:"placeholder,omitempty"`
	Options       *[]SelectOption       `json:"options,omitempty"`
	ChannelTypes  *[]ChannelType        `json:"channel_types,omitempty"`
	DefaultValues *[]SelectDefaultValue `json:"default_values,omitempty"`
	MinValues     *int32                `json:"min_values,omitempty"`
	MaxValues     *int32                `json:"max_values,omitempty"`
	Required      *bool                 `json:"required,omitempty"`

	MinLength *int32  `json:"min_length,omitempty"`
	MaxLength *int32  `json:"max_length,omitempty"`
	Value     *string `json:"value,omitempty"`

	Components *[]ComponentPayload `json:"components,omitempty"`
	Accessory  *ComponentPayload   `json:"accessory,omitempty"`
	Component  *ComponentPayload   `json:"component,omitempty"`

	Content     *string             `json:"content,omitempty"`
	Media       *UnfurledMediaItem  `json:"media,omitempty"`
	Description *string             `json:"description,omitempty"`
	Spoiler     *bool               `json:"spoiler,omitempty"`
	Items       *[]MediaGalleryItem `json:"items,omitempty"`
	File        *UnfurledMediaItem  `json:"file,omitempty"`
	Name        *string             `json:"name,omitempty"`
	Size        *int32              `json:"size,omitempty"`
	Divider     *bool               `json:"divider,omitempty"`
	Spacing     *SeparatorSpacing   `json:"spacing,omitempty"`
	AccentColor *int32              `json:"accent_color,omitempty"`

	Type ComponentType `json:"type"`
}

// SelectOption is a choice in a string select.
type SelectOption struct {
	Description *string       `json:"description,omitempty"`
	Emoji       *PartialEmoji `json:"emoji,omitempty"`
	Default     *bool         `json:"default,omitempty"`
	Label       string        `json:"label"`
	Value       string        `json:"value"`
}

func (o SelectOption) clone() SelectOption {
	o.Description = clonePtr(o.Description)
	o.Emoji = o.Emoji.clone()
	o.Default = clonePtr(o.Default)

	return o
}

// SelectDefaultValue pre-selects an entity in an auto-populated select.
type SelectDefaultValue struct {
	Type SelectDefaultValueType `json:"type"`
	ID   Snowflake              `json:"id"`
}

// UnfurledMediaItem references media by url. Requests only need URL, the
// remaining fields are filled in by discord.
type UnfurledMediaItem struct {
	ProxyURL     *string    `json:"proxy_url,omitempty"`
	Height       *int32     `json:"height,omitempty"`
	Width        *int32     `json:"width,omitempty"`
	ContentType  *string    `json:"content_type,omitempty"`
	AttachmentID *Snowflake `json:"attachment_id,omitempty"`
	URL          string     `json:"url"`
}

func (m UnfurledMediaItem) clone() UnfurledMediaItem {
	m.ProxyURL = clonePtr(m.ProxyURL)
	m.Height = clonePtr(m.Height)
	m.Width = clonePtr(m.Width)
	m.ContentType = clonePtr(m.ContentType)
	m.AttachmentID = clonePtr(m.AttachmentID)

	return m
}

// MediaGalleryItem is one entry of a media gallery.
type MediaGalleryItem struct {
	Description *string           `json:"description,omitempty"`
	Spoiler     *bool             `json:"spoiler,omitempty"`
	Media       UnfurledMediaItem `json:"media"`
}

func (i MediaGalleryItem) clone() MediaGalleryItem {
	i.Description = clonePtr(i.Description)
	i.Spoiler = clonePtr(i.Spoiler)
	i.Media = i.Media.clone()

	return i
}

// Component is the sealed set of resolved component kinds. Use a type switch
// over the concrete pointer types to reach kind specific fields.
type Component interface {
	Type() ComponentType
	payload() ComponentPayload
}

// ActionRow is a row of interactive components.
type ActionRow struct {
	ID         *int32
	Components []Component
}

// Button is a clickable button.
type Button struct {
	ID       *int32
	Style    ButtonStyle
	Label    *string
	Emoji    *PartialEmoji
	CustomID *string
	URL      *string
	SKUID    *SKUID
	Disabled *bool
}

// SelectMenu holds the fields shared by every select kind.
type SelectMenu struct {
	ID          *int32
	CustomID    string
	Placeholder *string
	MinValues   *int32
	MaxValues   *int32
	Disabled    *bool
	Required    *bool
}

// StringSelect picks from predefined text options.
type StringSelect struct {
	SelectMenu
	Options []SelectOption
}

// UserSelect picks users.
type UserSelect struct {
	SelectMenu
	DefaultValues *[]SelectDefaultValue
}

// RoleSelect picks roles.
type RoleSelect struct {
	SelectMenu
	DefaultValues *[]SelectDefaultValue
}

// MentionableSelect picks users and roles.
type MentionableSelect struct {
	SelectMenu
	DefaultValues *[]SelectDefaultValue
}

// ChannelSelect picks channels, optionally restricted to ChannelTypes.
type ChannelSelect struct {
	SelectMenu
	ChannelTypes  *[]ChannelType
	DefaultValues *[]SelectDefaultValue
}

// TextInput is a free text field in a modal.
type TextInput struct {
	ID          *int32
	CustomID    string
	Style       TextInputStyle
	Label       *string
	Placeholder *string
	MinLength   *int32
	MaxLength   *int32
	Required    *bool
	Value       *string
}

// Section shows one to three text displays beside an accessory.
type Section struct {
	ID         *int32
	Components []Component
	Accessory  Component
}

// TextDisplay is markdown text.
type TextDisplay struct {
	ID      *int32
	Content string
}

// Thumbnail is a small image, used as a section accessory.
type Thumbnail struct {
	ID          *int32
	Media       UnfurledMediaItem
	Description *string
	Spoiler     *bool
}

// MediaGallery shows up to 10 media items.
type MediaGallery struct {
	ID    *int32
	Items []MediaGalleryItem
}

// File displays an uploaded attachment.
type File struct {
	ID      *int32
	File    UnfurledMediaItem
	Spoiler *bool
	Name    *string
	Size    *int32
}

// Separator adds padding and an optional divider line.
type Separator struct {
	ID      *int32
	Divider *bool
	Spacing *SeparatorSpacing
}

// Container groups components with an optional accent colour.
type Container struct {
	ID         *int32
	Components []Component
	// AccentColor is nil when the payload omitted it or sent null. Both
	// serialize without the key.
	AccentColor *int32
	Spoiler     *bool
}

// Label wraps a single modal component with a label and description.
type Label struct {
	ID          *int32
	Label       string
	Description *string
	Component   Component
}

// FileUpload lets users upload files in a modal.
type FileUpload struct {
	ID        *int32
	CustomID  string
	MinValues *int32
	MaxValues *int32
	Required  *bool
}

func (*ActionRow) Type() ComponentType         { return ComponentTypeActionRow }
func (*Button) Type() ComponentType            { return ComponentTypeButton }
func (*StringSelect) Type() ComponentType      { return ComponentTypeStringSelect }
func (*UserSelect) Type() ComponentType        { return ComponentTypeUserSelect }
func (*RoleSelect) Type() ComponentType        { return ComponentTypeRoleSelect }
func (*MentionableSelect) Type() ComponentType { return ComponentTypeMentionableSelect }
func (*ChannelSelect) Type() ComponentType     { return ComponentTypeChannelSelect }
func (*TextInput) Type() ComponentType         { return ComponentTypeTextInput }
func (*Section) Type() ComponentType           { return ComponentTypeSection }
func (*TextDisplay) Type() ComponentType       { return ComponentTypeTextDisplay }
func (*Thumbnail) Type() ComponentType         { return ComponentTypeThumbnail }
func (*MediaGallery) Type() ComponentType      { return ComponentTypeMediaGallery }
func (*File) Type() ComponentType              { return ComponentTypeFile }
func (*Separator) Type() ComponentType         { return ComponentTypeSeparator }
func (*Container) Type() ComponentType         { return ComponentTypeContainer }
func (*Label) Type() ComponentType             { return ComponentTypeLabel }
func (*FileUpload) Type() ComponentType        { return ComponentTypeFileUpload }

func payloadList(components []Component) *[]ComponentPayload {
	payloads := make([]ComponentPayload, len(components))
	for i, component := range components {
		payloads[i] = component.payload()
	}

	return &payloads
}

func childPayload(component Component) *ComponentPayload {
	if component == nil {
		return nil
	}

	p := component.payload()

	return &p
}

func (c *ActionRow) payload() ComponentPayload {
	return ComponentPayload{Type: ComponentTypeActionRow, ID: c.ID, Components: payloadList(c.Components)}
}

func (c *Button) payload() ComponentPayload {
	return ComponentPayload{
		Type:     ComponentTypeButton,
		ID:       c.ID,
		Style:    ptr(uint16(c.Style)),
		Label:    c.Label,
		Emoji:    c.Emoji,
		CustomID: c.CustomID,
		URL:      c.URL,
		SKUID:    c.SKUID,
		Disabled: c.Disabled,
	}
}

func (c *SelectMenu) payload(componentType ComponentType) ComponentPayload {
	return ComponentPayload{
		Type:        componentType,
		ID:          c.ID,
		CustomID:    ptr(c.CustomID),
		Placeholder: c.Placeholder,
		MinValues:   c.MinValues,
		MaxValues:   c.MaxValues,
		Disabled:    c.Disabled,
		Required:    c.Required,
	}
}

func (c *StringSelect) payload() ComponentPayload {
	p := c.SelectMenu.payload(ComponentTypeStringSelect)
	options := append(make([]SelectOption, 0, len(c.Options)), c.Options...)
	p.Options = &options

	return p
}

func (c *UserSelect) payload() ComponentPayload {
	p := c.SelectMenu.payload(ComponentTypeUserSelect)
	p.DefaultValues = c.DefaultValues

	return p
}

func (c *RoleSelect) payload() ComponentPayload {
	p := c.SelectMenu.payload(ComponentTypeRoleSelect)
	p.DefaultValues = c.DefaultValues

	return p
}

func (c *MentionableSelect) payload() ComponentPayload {
	p := c.SelectMenu.payload(ComponentTypeMentionableSelect)
	p.DefaultValues = c.DefaultValues

	return p
}

func (c *ChannelSelect) payload() ComponentPayload {
	p := c.SelectMenu.payload(ComponentTypeChannelSelect)
	p.ChannelTypes = c.ChannelTypes
	p.DefaultValues = c.DefaultValues

	return p
}

func (c *TextInput) payload() ComponentPayload {
	return ComponentPayload{
		Type:        ComponentTypeTextInput,
		ID:          c.ID,
		CustomID:    ptr(c.CustomID),
		Style:       ptr(uint16(c.Style)),
		Label:       c.Label,
		Placeholder: c.Placeholder,
		MinLength:   c.MinLength,
		MaxLength:   c.MaxLength,
		Required:    c.Required,
		Value:       c.Value,
	}
}

func (c *Section) payload() ComponentPayload {
	return ComponentPayload{
		Type:       ComponentTypeSection,
		ID:         c.ID,
		Components: payloadList(c.Components),
		Accessory:  childPayload(c.Accessory),
	}
}

func (c *TextDisplay) payload() ComponentPayload {
	return ComponentPayload{Type: ComponentTypeTextDisplay, ID: c.ID, Content: ptr(c.Content)}
}

func (c *Thumbnail) payload() ComponentPayload {
	return ComponentPayload{
		Type:        ComponentTypeThumbnail,
		ID:          c.ID,
		Media:       ptr(c.Media),
		Description: c.Description,
		Spoiler:     c.Spoiler,
	}
}

func (c *MediaGallery) payload() ComponentPayload {
	items := append(make([]MediaGalleryItem, 0, len(c.Items)), c.Items...)

	return ComponentPayload{Type: ComponentTypeMediaGallery, ID: c.ID, Items: &items}
}

func (c *File) payload() ComponentPayload {
	return ComponentPayload{
		Type:    ComponentTypeFile,
		ID:      c.ID,
		File:    ptr(c.File),
		Spoiler: c.Spoiler,
		Name:    c.Name,
		Size:    c.Size,
	}
}

func (c *Separator) payload() ComponentPayload {
	return ComponentPayload{Type: ComponentTypeSeparator, ID: c.ID, Divider: c.Divider, Spacing: c.Spacing}
}

func (c *Container) payload() ComponentPayload {
	return ComponentPayload{
		Type:        ComponentTypeContainer,
		ID:          c.ID,
		Components:  payloadList(c.Components),
		AccentColor: c.AccentColor,
		Spoiler:     c.Spoiler,
	}
}

func (c *Label) payload() ComponentPayload {
	return ComponentPayload{
		Type:        ComponentTypeLabel,
		ID:          c.ID,
		Label:       ptr(c.Label),
		Description: c.Description,
		Component:   childPayload(c.Component),
	}
}

func (c *FileUpload) payload() ComponentPayload {
	return ComponentPayload{
		Type:      ComponentTypeFileUpload,
		ID:        c.ID,
		CustomID:  ptr(c.CustomID),
		MinValues: c.MinValues,
		MaxValues: c.MaxValues,
		Required:  c.Required,
	}
}

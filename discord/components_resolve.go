package discord

import (
	"fmt"

	"github.com/WelcomerTeam/Discord-Resources/wirejson"
)

// components_resolve.go turns component payloads into typed trees and back.

// ComponentContext selects the layout rules a component tree is checked against.
type ComponentContext uint8

const (
	// ComponentContextMessage is a tree attached to a message without the
	// components v2 flag. Only action rows are allowed at the top level.
	ComponentContextMessage ComponentContext = iota
	// ComponentContextModal is a tree shown in a modal.
	ComponentContextModal
	// ComponentContextMessageV2 is a tree attached to a message flagged with
	// IS_COMPONENTS_V2. Layout components are allowed at the top level.
	ComponentContextMessageV2
)

func (c ComponentContext) String() string {
	switch c {
	case ComponentContextModal:
		return "modal"
	case ComponentContextMessageV2:
		return "message v2"
	default:
		return "message"
	}
}

// MessageComponentContext returns the context for a message with the given flags.
func MessageComponentContext(flags MessageFlags) ComponentContext {
	if flags.Has(MessageFlagIsComponentsV2) {
		return ComponentContextMessageV2
	}

	return ComponentContextMessage
}

const (
	MaxActionRowButtons       = 5
	MaxSectionTextDisplays    = 3
	MaxSelectOptions          = 25
	MaxMediaGalleryItems      = 10
	MaxFileUploadValues       = 10
	MaxTextInputLength        = 4000
	MaxModalTopLevel          = 5
	MaxMessageActionRows      = 5
	MaxMessageComponentsTotal = 40
)

// ResolveComponents resolves a component array depth first. Children are
// resolved before their parent so the parent can check their count and kinds.
// The first unknown type or broken rule fails the whole tree.
func ResolveComponents(payloads []ComponentPayload, context ComponentContext) ([]Component, error) {
	r := componentResolver{context: context}

	components, err := r.resolveList("components", payloads)
	if err != nil {
		return nil, err
	}

	if err := r.checkTopLevel(components); err != nil {
		return nil, err
	}

	return components, nil
}

// UnmarshalComponents decodes and resolves a component array.
func UnmarshalComponents(data []byte, context ComponentContext) ([]Component, error) {
	var payloads []ComponentPayload

	if err := wirejson.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("failed to unmarshal components: %w", err)
	}

	return ResolveComponents(payloads, context)
}

// SerializeComponents is the inverse of ResolveComponents. Optional fields
// that were never set are left out.
func SerializeComponents(components []Component) []ComponentPayload {
	return *payloadList(components)
}

// MarshalComponents serializes a component tree to JSON.
func MarshalComponents(components []Component) ([]byte, error) {
	data, err := wirejson.Marshal(SerializeComponents(components))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal components: %w", err)
	}

	return data, nil
}

// ValidateComponents checks a tree built in code against the same rules used
// when resolving payloads.
func ValidateComponents(components []Component, context ComponentContext) error {
	_, err := ResolveComponents(SerializeComponents(components), context)

	return err
}

type componentResolver struct {
	context ComponentContext
}

func (r *componentResolver) resolveList(path string, payloads []ComponentPayload) ([]Component, error) {
	components := make([]Component, 0, len(payloads))

	for i := range payloads {
		component, err := r.resolve(fmt.Sprintf("%s[%d]", path, i), &payloads[i])
		if err != nil {
			return nil, err
		}

		components = append(components, component)
	}

	return components, nil
}

func (r *componentResolver) resolve(path string, p *ComponentPayload) (Component, error) {
	if !p.Type.IsContainer() {
		if p.Components != nil || p.Accessory != nil || p.Component != nil {
			return nil, newSchemaViolation(path, p.Type, "%s can not hold child components", p.Type)
		}
	}

	switch p.Type {
	case ComponentTypeActionRow:
		return r.resolveActionRow(path, p)
	case ComponentTypeButton:
		return resolveButton(path, p)
	case ComponentTypeStringSelect, ComponentTypeUserSelect, ComponentTypeRoleSelect,
		ComponentTypeMentionableSelect, ComponentTypeChannelSelect:
		return resolveSelect(path, p)
	case ComponentTypeTextInput:
		return resolveTextInput(path, p)
	case ComponentTypeSection:
		return r.resolveSection(path, p)
	case ComponentTypeTextDisplay:
		return resolveTextDisplay(path, p)
	case ComponentTypeThumbnail:
		return resolveThumbnail(path, p)
	case ComponentTypeMediaGallery:
		return resolveMediaGallery(path, p)
	case ComponentTypeFile:
		return resolveFile(path, p)
	case ComponentTypeSeparator:
		return resolveSeparator(path, p)
	case ComponentTypeContainer:
		return r.resolveContainer(path, p)
	case ComponentTypeLabel:
		return r.resolveLabel(path, p)
	case ComponentTypeFileUpload:
		return resolveFileUpload(path, p)
	default:
		return nil, newSchemaViolation(path, 0, "unknown component type %d", p.Type)
	}
}

func (r *componentResolver) checkTopLevel(components []Component) error {
	if r.context == ComponentContextModal {
		if len(components) == 0 || len(components) > MaxModalTopLevel {
			return newSchemaViolation("components", 0, "a modal must have between 1 and %d components, got %d", MaxModalTopLevel, len(components))
		}

		for i, component := range components {
			switch component.Type() {
			case ComponentTypeActionRow, ComponentTypeLabel, ComponentTypeTextDisplay:
			default:
				return newSchemaViolation(fmt.Sprintf("components[%d]", i), component.Type(), "%s is not allowed at the top level of a modal", component.Type())
			}
		}

		return nil
	}

	if r.context == ComponentContextMessage {
		for i, component := range components {
			if component.Type() != ComponentTypeActionRow {
				return newSchemaViolation(fmt.Sprintf("components[%d]", i), component.Type(), "%s needs the components v2 flag at the top level of a message", component.Type())
			}
		}

		if len(components) > MaxMessageActionRows {
			return newSchemaViolation("components", 0, "a message can have at most %d action rows, got %d", MaxMessageActionRows, len(components))
		}

		return nil
	}

	for i, component := range components {
		switch component.Type() {
		case ComponentTypeActionRow, ComponentTypeSection, ComponentTypeTextDisplay,
			ComponentTypeMediaGallery, ComponentTypeFile, ComponentTypeSeparator, ComponentTypeContainer:
		default:
			return newSchemaViolation(fmt.Sprintf("components[%d]", i), component.Type(), "%s is not allowed at the top level of a message", component.Type())
		}
	}

	if total := countComponents(components); total > MaxMessageComponentsTotal {
		return newSchemaViolation("components", 0, "a message can have at most %d components, got %d", MaxMessageComponentsTotal, total)
	}

	return nil
}

// countComponents returns the number of nodes in a tree, accessories included.
func countComponents(components []Component) int {
	total := 0

	for _, component := range components {
		total++

		switch c := component.(type) {
		case *ActionRow:
			total += countComponents(c.Components)
		case *Container:
			total += countComponents(c.Components)
		case *Section:
			total += countComponents(c.Components)
			if c.Accessory != nil {
				total++
			}
		case *Label:
			if c.Component != nil {
				total++
			}
		}
	}

	return total
}

func (r *componentResolver) resolveActionRow(path string, p *ComponentPayload) (Component, error) {
	if p.Accessory != nil || p.Component != nil {
		return nil, newSchemaViolation(path, p.Type, "action row children belong in components")
	}

	if p.Components == nil || len(*p.Components) == 0 {
		return nil, newSchemaViolation(path, p.Type, "action row must hold at least one component")
	}

	children, err := r.resolveList(path+".components", *p.Components)
	if err != nil {
		return nil, err
	}

	var buttons, selects, textInputs int

	for i, child := range children {
		childType := child.Type()

		switch {
		case childType == ComponentTypeButton:
			buttons++
		case childType.IsSelect():
			selects++
		case childType == ComponentTypeTextInput:
			textInputs++
		default:
			return nil, newSchemaViolation(fmt.Sprintf("%s.components[%d]", path, i), childType, "%s is not allowed in an action row", childType)
		}
	}

	switch {
	case textInputs > 0 && len(children) > 1:
		return nil, newSchemaViolation(path, p.Type, "a text input must be the only component in its action row")
	case selects > 0 && len(children) > 1:
		return nil, newSchemaViolation(path, p.Type, "a select menu must be the only component in its action row")
	case buttons > MaxActionRowButtons:
		return nil, newSchemaViolation(path, p.Type, "an action row can hold at most %d buttons, got %d", MaxActionRowButtons, buttons)
	}

	if r.context == ComponentContextModal && textInputs != 1 {
		return nil, newSchemaViolation(path, p.Type, "an action row in a modal must hold exactly one text input")
	}

	if r.context != ComponentContextModal && textInputs > 0 {
		return nil, newSchemaViolation(path, p.Type, "text inputs are only allowed in modals")
	}

	return &ActionRow{ID: clonePtr(p.ID), Components: children}, nil
}

func (r *componentResolver) resolveSection(path string, p *ComponentPayload) (Component, error) {
	if r.context == ComponentContextModal {
		return nil, newSchemaViolation(path, p.Type, "sections are not allowed in modals")
	}

	if p.Components == nil || len(*p.Components) == 0 || len(*p.Components) > MaxSectionTextDisplays {
		return nil, newSchemaViolation(path, p.Type, "section must hold between 1 and %d text displays", MaxSectionTextDisplays)
	}

	if p.Accessory == nil {
		return nil, newSchemaViolation(path, p.Type, "section requires an accessory")
	}

	if p.Component != nil {
		return nil, newSchemaViolation(path, p.Type, "section children belong in components")
	}

	children, err := r.resolveList(path+".components", *p.Components)
	if err != nil {
		return nil, err
	}

	for i, child := range children {
		if child.Type() != ComponentTypeTextDisplay {
			return nil, newSchemaViolation(fmt.Sprintf("%s.components[%d]", path, i), child.Type(), "sections can only hold text displays")
		}
	}

	accessory, err := r.resolve(path+".accessory", p.Accessory)
	if err != nil {
		return nil, err
	}

	switch accessory.Type() {
	case ComponentTypeButton, ComponentTypeThumbnail:
	default:
		return nil, newSchemaViolation(path+".accessory", accessory.Type(), "section accessory must be a button or thumbnail")
	}

	return &Section{ID: clonePtr(p.ID), Components: children, Accessory: accessory}, nil
}

func (r *componentResolver) resolveContainer(path string, p *ComponentPayload) (Component, error) {
	if r.context == ComponentContextModal {
		return nil, newSchemaViolation(path, p.Type, "containers are not allowed in modals")
	}

	if p.Accessory != nil || p.Component != nil {
		return nil, newSchemaViolation(path, p.Type, "container children belong in components")
	}

	if p.Components == nil || len(*p.Components) == 0 {
		return nil, newSchemaViolation(path, p.Type, "container must hold at least one component")
	}

	children, err := r.resolveList(path+".components", *p.Components)
	if err != nil {
		return nil, err
	}

	for i, child := range children {
		switch child.Type() {
		case ComponentTypeActionRow, ComponentTypeTextDisplay, ComponentTypeSection,
			ComponentTypeMediaGallery, ComponentTypeSeparator, ComponentTypeFile:
		default:
			return nil, newSchemaViolation(fmt.Sprintf("%s.components[%d]", path, i), child.Type(), "%s is not allowed in a container", child.Type())
		}
	}

	return &Container{
		ID:          clonePtr(p.ID),
		Components:  children,
		AccentColor: clonePtr(p.AccentColor),
		Spoiler:     clonePtr(p.Spoiler),
	}, nil
}

func (r *componentResolver) resolveLabel(path string, p *ComponentPayload) (Component, error) {
	if r.context != ComponentContextModal {
		return nil, newSchemaViolation(path, p.Type, "labels are only allowed in modals")
	}

	if p.Label == nil || *p.Label == "" {
		return nil, newSchemaViolation(path, p.Type, "label requires label text")
	}

	if p.Components != nil || p.Accessory != nil {
		return nil, newSchemaViolation(path, p.Type, "label holds a single component")
	}

	if p.Component == nil {
		return nil, newSchemaViolation(path, p.Type, "label requires a component")
	}

	child, err := r.resolve(path+".component", p.Component)
	if err != nil {
		return nil, err
	}

	switch childType := child.Type(); {
	case childType == ComponentTypeTextInput, childType == ComponentTypeFileUpload, childType.IsSelect():
	default:
		return nil, newSchemaViolation(path+".component", childType, "%s can not be wrapped in a label", childType)
	}

	return &Label{
		ID:          clonePtr(p.ID),
		Label:       *p.Label,
		Description: clonePtr(p.Description),
		Component:   child,
	}, nil
}

func resolveButton(path string, p *ComponentPayload) (Component, error) {
	if p.Style == nil {
		return nil, newSchemaViolation(path, p.Type, "button requires a style")
	}

	style := ButtonStyle(*p.Style)
	hasCustomID := p.CustomID != nil && *p.CustomID != ""
	hasURL := p.URL != nil && *p.URL != ""

	switch style {
	case ButtonStylePrimary, ButtonStyleSecondary, ButtonStyleSuccess, ButtonStyleDanger:
		if !hasCustomID {
			return nil, newSchemaViolation(path, p.Type, "button style %d requires custom_id", style)
		}

		if p.URL != nil || p.SKUID != nil {
			return nil, newSchemaViolation(path, p.Type, "button style %d can not have url or sku_id", style)
		}
	case ButtonStyleLink:
		if !hasURL {
			return nil, newSchemaViolation(path, p.Type, "link button requires url")
		}

		if p.CustomID != nil {
			return nil, newSchemaViolation(path, p.Type, "link button can not have custom_id")
		}

		if p.SKUID != nil {
			return nil, newSchemaViolation(path, p.Type, "link button can not have sku_id")
		}
	case ButtonStylePremium:
		if p.SKUID == nil || *p.SKUID == 0 {
			return nil, newSchemaViolation(path, p.Type, "premium button requires sku_id")
		}

		if p.CustomID != nil || p.URL != nil || p.Label != nil || p.Emoji != nil {
			return nil, newSchemaViolation(path, p.Type, "premium button can not have custom_id, url, label or emoji")
		}
	default:
		return nil, newSchemaViolation(path, p.Type, "unknown button style %d", style)
	}

	return &Button{
		ID:       clonePtr(p.ID),
		Style:    style,
		Label:    clonePtr(p.Label),
		Emoji:    p.Emoji.clone(),
		CustomID: clonePtr(p.CustomID),
		URL:      clonePtr(p.URL),
		SKUID:    clonePtr(p.SKUID),
		Disabled: clonePtr(p.Disabled),
	}, nil
}

func resolveSelect(path string, p *ComponentPayload) (Component, error) {
	if p.CustomID == nil || *p.CustomID == "" {
		return nil, newSchemaViolation(path, p.Type, "select menu requires custom_id")
	}

	if p.Type != ComponentTypeStringSelect && p.Options != nil {
		return nil, newSchemaViolation(path, p.Type, "only string selects can have options")
	}

	if p.Type != ComponentTypeChannelSelect && p.ChannelTypes != nil {
		return nil, newSchemaViolation(path, p.Type, "only channel selects can have channel_types")
	}

	if p.Type == ComponentTypeStringSelect && p.DefaultValues != nil {
		return nil, newSchemaViolation(path, p.Type, "string selects use option defaults, not default_values")
	}

	if err := checkMinMax(path, p.Type, p.MinValues, p.MaxValues, 0, MaxSelectOptions); err != nil {
		return nil, err
	}

	menu := SelectMenu{
		ID:          clonePtr(p.ID),
		CustomID:    *p.CustomID,
		Placeholder: clonePtr(p.Placeholder),
		MinValues:   clonePtr(p.MinValues),
		MaxValues:   clonePtr(p.MaxValues),
		Disabled:    clonePtr(p.Disabled),
		Required:    clonePtr(p.Required),
	}

	switch p.Type {
	case ComponentTypeStringSelect:
		if p.Options == nil || len(*p.Options) == 0 || len(*p.Options) > MaxSelectOptions {
			return nil, newSchemaViolation(path, p.Type, "string select must have between 1 and %d options", MaxSelectOptions)
		}

		options := make([]SelectOption, 0, len(*p.Options))
		values := make(map[string]struct{}, len(*p.Options))

		for i, option := range *p.Options {
			if option.Label == "" || option.Value == "" {
				return nil, newSchemaViolation(fmt.Sprintf("%s.options[%d]", path, i), p.Type, "select option requires label and value")
			}

			if _, ok := values[option.Value]; ok {
				return nil, newSchemaViolation(fmt.Sprintf("%s.options[%d]", path, i), p.Type, "duplicate select option value %q", option.Value)
			}

			values[option.Value] = struct{}{}
			options = append(options, option.clone())
		}

		if p.MinValues != nil && int(*p.MinValues) > len(options) {
			return nil, newSchemaViolation(path, p.Type, "min_values %d exceeds the %d options", *p.MinValues, len(options))
		}

		return &StringSelect{SelectMenu: menu, Options: options}, nil
	case ComponentTypeUserSelect:
		return &UserSelect{SelectMenu: menu, DefaultValues: cloneDefaultValues(p.DefaultValues)}, nil
	case ComponentTypeRoleSelect:
		return &RoleSelect{SelectMenu: menu, DefaultValues: cloneDefaultValues(p.DefaultValues)}, nil
	case ComponentTypeMentionableSelect:
		return &MentionableSelect{SelectMenu: menu, DefaultValues: cloneDefaultValues(p.DefaultValues)}, nil
	default:
		var channelTypes *[]ChannelType

		if p.ChannelTypes != nil {
			channelTypes = ptr(append(make([]ChannelType, 0, len(*p.ChannelTypes)), *p.ChannelTypes...))
		}

		return &ChannelSelect{SelectMenu: menu, ChannelTypes: channelTypes, DefaultValues: cloneDefaultValues(p.DefaultValues)}, nil
	}
}

func cloneDefaultValues(values *[]SelectDefaultValue) *[]SelectDefaultValue {
	if values == nil {
		return nil
	}

	return ptr(append(make([]SelectDefaultValue, 0, len(*values)), *values...))
}

func checkMinMax(path string, componentType ComponentType, minimum, maximum *int32, floor, ceiling int32) error {
	if minimum != nil && (*minimum < floor || *minimum > ceiling) {
		return newSchemaViolation(path, componentType, "minimum %d is outside %d..%d", *minimum, floor, ceiling)
	}

	if maximum != nil && (*maximum < 1 || *maximum > ceiling) {
		return newSchemaViolation(path, componentType, "maximum %d is outside 1..%d", *maximum, ceiling)
	}

	if minimum != nil && maximum != nil && *minimum > *maximum {
		return newSchemaViolation(path, componentType, "minimum %d is greater than maximum %d", *minimum, *maximum)
	}

	return nil
}

func resolveTextInput(path string, p *ComponentPayload) (Component, error) {
	if p.CustomID == nil || *p.CustomID == "" {
		return nil, newSchemaViolation(path, p.Type, "text input requires custom_id")
	}

	if p.Style == nil {
		return nil, newSchemaViolation(path, p.Type, "text input requires a style")
	}

	style := TextInputStyle(*p.Style)
	if style != TextInputStyleShort && style != TextInputStyleParagraph {
		return nil, newSchemaViolation(path, p.Type, "unknown text input style %d", style)
	}

	if err := checkMinMax(path, p.Type, p.MinLength, p.MaxLength, 0, MaxTextInputLength); err != nil {
		return nil, err
	}

	return &TextInput{
		ID:          clonePtr(p.ID),
		CustomID:    *p.CustomID,
		Style:       style,
		Label:       clonePtr(p.Label),
		Placeholder: clonePtr(p.Placeholder),
		MinLength:   clonePtr(p.MinLength),
		MaxLength:   clonePtr(p.MaxLength),
		Required:    clonePtr(p.Required),
		Value:       clonePtr(p.Value),
	}, nil
}

func resolveTextDisplay(path string, p *ComponentPayload) (Component, error) {
	if p.Content == nil || *p.Content == "" {
		return nil, newSchemaViolation(path, p.Type, "text display requires content")
	}

	return &TextDisplay{ID: clonePtr(p.ID), Content: *p.Content}, nil
}

func resolveThumbnail(path string, p *ComponentPayload) (Component, error) {
	if p.Media == nil || p.Media.URL == "" {
		return nil, newSchemaViolation(path, p.Type, "thumbnail requires media with a url")
	}

	return &Thumbnail{
		ID:          clonePtr(p.ID),
		Media:       p.Media.clone(),
		Description: clonePtr(p.Description),
		Spoiler:     clonePtr(p.Spoiler),
	}, nil
}

func resolveMediaGallery(path string, p *ComponentPayload) (Component, error) {
	if p.Items == nil || len(*p.Items) == 0 || len(*p.Items) > MaxMediaGalleryItems {
		return nil, newSchemaViolation(path, p.Type, "media gallery must have between 1 and %d items", MaxMediaGalleryItems)
	}

	items := make([]MediaGalleryItem, 0, len(*p.Items))

	for i, item := range *p.Items {
		if item.Media.URL == "" {
			return nil, newSchemaViolation(fmt.Sprintf("%s.items[%d]", path, i), p.Type, "media gallery item requires a url")
		}

		items = append(items, item.clone())
	}

	return &MediaGallery{ID: clonePtr(p.ID), Items: items}, nil
}

func resolveFile(path string, p *ComponentPayload) (Component, error) {
	if p.File == nil || p.File.URL == "" {
		return nil, newSchemaViolation(path, p.Type, "file requires a file reference")
	}

	return &File{
		ID:      clonePtr(p.ID),
		File:    p.File.clone(),
		Spoiler: clonePtr(p.Spoiler),
		Name:    clonePtr(p.Name),
		Size:    clonePtr(p.Size),
	}, nil
}

func resolveSeparator(path string, p *ComponentPayload) (Component, error) {
	if p.Spacing != nil && *p.Spacing != SeparatorSpacingSmall && *p.Spacing != SeparatorSpacingLarge {
		return nil, newSchemaViolation(path, p.Type, "unknown separator spacing %d", *p.Spacing)
	}

	return &Separator{ID: clonePtr(p.ID), Divider: clonePtr(p.Divider), Spacing: clonePtr(p.Spacing)}, nil
}

func resolveFileUpload(path string, p *ComponentPayload) (Component, error) {
	if p.CustomID == nil || *p.CustomID == "" {
		return nil, newSchemaViolation(path, p.Type, "file upload requires custom_id")
	}

	if err := checkMinMax(path, p.Type, p.MinValues, p.MaxValues, 0, MaxFileUploadValues); err != nil {
		return nil, err
	}

	return &FileUpload{
		ID:        clonePtr(p.ID),
		CustomID:  *p.CustomID,
		MinValues: clonePtr(p.MinValues),
		MaxValues: clonePtr(p.MaxValues),
		Required:  clonePtr(p.Required),
	}, nil
}

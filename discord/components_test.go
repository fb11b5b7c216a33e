package discord_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/WelcomerTeam/Discord-Resources/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageLayout = `[
	{"type":10,"content":"# Release notes"},
	{"type":17,"accent_color":703487,"spoiler":false,"components":[
		{"type":9,"components":[{"type":10,"content":"Version 2"},{"type":10,"content":"Out now"}],
			"accessory":{"type":11,"media":{"url":"https://example.com/icon.png"},"description":"icon"}},
		{"type":14,"divider":true,"spacing":2},
		{"type":12,"items":[{"media":{"url":"https://example.com/a.png"}},{"media":{"url":"https://example.com/b.png"},"spoiler":true}]},
		{"type":13,"file":{"url":"attachment://notes.txt"}},
		{"type":1,"components":[
			{"type":3,"custom_id":"pick","placeholder":"Pick one","min_values":1,"max_values":2,"options":[
				{"label":"A","value":"a","emoji":{"name":"🅰"}},{"label":"B","value":"b","default":true}
			]}
		]}
	]},
	{"type":1,"id":7,"components":[
		{"type":2,"style":1,"custom_id":"ok","label":"OK","emoji":{"id":"41771983429993937","name":"tick","animated":false}},
		{"type":2,"style":5,"url":"https://example.com","label":"Docs"},
		{"type":2,"style":6,"sku_id":"1088510058284990888","disabled":true}
	]},
	{"type":1,"components":[{"type":8,"custom_id":"channels","channel_types":[0,15],"default_values":[{"type":"channel","id":"5"}]}]}
]`

func TestComponentsRoundTrip(t *testing.T) {
	t.Parallel()

	components, err := discord.UnmarshalComponents([]byte(messageLayout), discord.ComponentContextMessageV2)
	require.NoError(t, err)
	require.Len(t, components, 4)

	container, ok := components[1].(*discord.Container)
	require.True(t, ok)
	require.NotNil(t, container.AccentColor)
	assert.Equal(t, int32(703487), *container.AccentColor)

	section, ok := container.Components[0].(*discord.Section)
	require.True(t, ok)
	assert.IsType(t, &discord.Thumbnail{}, section.Accessory)

	row, ok := components[2].(*discord.ActionRow)
	require.True(t, ok)
	require.NotNil(t, row.ID)
	assert.Equal(t, int32(7), *row.ID)

	premium, ok := row.Components[2].(*discord.Button)
	require.True(t, ok)
	assert.Equal(t, discord.ButtonStylePremium, premium.Style)

	data, err := discord.MarshalComponents(components)
	require.NoError(t, err)
	assert.JSONEq(t, messageLayout, string(data))

	again, err := discord.UnmarshalComponents(data, discord.ComponentContextMessageV2)
	require.NoError(t, err)
	assert.Equal(t, components, again)
}

func TestComponentsAreOwned(t *testing.T) {
	t.Parallel()

	label := "OK"
	payloads := []discord.ComponentPayload{{
		Type: discord.ComponentTypeActionRow,
		Components: &[]discord.ComponentPayload{{
			Type:     discord.ComponentTypeButton,
			Style:    ptr(uint16(discord.ButtonStyleSuccess)),
			CustomID: ptr("ok"),
			Label:    &label,
		}},
	}}

	components, err := discord.ResolveComponents(payloads, discord.ComponentContextMessage)
	require.NoError(t, err)

	label = "changed"

	button := components[0].(*discord.ActionRow).Components[0].(*discord.Button)
	assert.Equal(t, "OK", *button.Label)
}

func assertViolation(t *testing.T, err error, path string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, discord.ErrSchemaViolation)

	var violation *discord.SchemaViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, path, violation.Path, violation.Reason)
}

func TestComponentViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		context discord.ComponentContext
		path    string
	}{
		{
			name:    "text input beside button",
			payload: `[{"type":1,"components":[{"type":4,"custom_id":"a","style":1},{"type":2,"style":1,"custom_id":"b"}]}]`,
			context: discord.ComponentContextModal,
			path:    "components[0]",
		},
		{
			name:    "link without url",
			payload: `[{"type":1,"components":[{"type":2,"style":5,"label":"Docs"}]}]`,
			path:    "components[0].components[0]",
		},
		{
			name:    "link with custom_id",
			payload: `[{"type":1,"components":[{"type":2,"style":5,"url":"https://example.com","custom_id":"a"}]}]`,
			path:    "components[0].components[0]",
		},
		{
			name:    "premium with label",
			payload: `[{"type":1,"components":[{"type":2,"style":6,"sku_id":"1","label":"Buy"}]}]`,
			path:    "components[0].components[0]",
		},
		{
			name:    "premium without sku",
			payload: `[{"type":1,"components":[{"type":2,"style":6}]}]`,
			path:    "components[0].components[0]",
		},
		{
			name:    "primary without custom_id",
			payload: `[{"type":1,"components":[{"type":2,"style":1,"label":"OK"}]}]`,
			path:    "components[0].components[0]",
		},
		{
			name:    "unknown button style",
			payload: `[{"type":1,"components":[{"type":2,"style":9,"custom_id":"a"}]}]`,
			path:    "components[0].components[0]",
		},
		{
			name:    "unknown type",
			payload: `[{"type":1,"components":[{"type":2,"style":1,"custom_id":"a"}]},{"type":99}]`,
			path:    "components[1]",
		},
		{
			name:    "nested unknown type",
			payload: `[{"type":17,"components":[{"type":10,"content":"a"},{"type":42}]}]`,
			path:    "components[0].components[1]",
		},
		{
			name:    "empty action row",
			payload: `[{"type":1,"components":[]}]`,
			path:    "components[0]",
		},
		{
			name:    "six buttons",
			payload: `[{"type":1,"components":[` + buttons(6) + `]}]`,
			path:    "components[0]",
		},
		{
			name:    "select beside button",
			payload: `[{"type":1,"components":[{"type":5,"custom_id":"u"},{"type":2,"style":1,"custom_id":"b"}]}]`,
			path:    "components[0]",
		},
		{
			name:    "options on user select",
			payload: `[{"type":1,"components":[{"type":5,"custom_id":"u","options":[{"label":"a","value":"a"}]}]}]`,
			path:    "components[0].components[0]",
		},
		{
			name:    "duplicate option values",
			payload: `[{"type":1,"components":[{"type":3,"custom_id":"s","options":[{"label":"a","value":"a"},{"label":"b","value":"a"}]}]}]`,
			path:    "components[0].components[0].options[1]",
		},
		{
			name:    "text input in message",
			payload: `[{"type":1,"components":[{"type":4,"custom_id":"a","style":1}]}]`,
			path:    "components[0]",
		},
		{
			name:    "layout without components v2",
			payload: `[{"type":1,"components":[{"type":2,"style":1,"custom_id":"a"}]},{"type":10,"content":"hi"}]`,
			path:    "components[1]",
		},
		{
			name:    "text display in v2 action row",
			payload: `[{"type":1,"components":[{"type":10,"content":"hi"}]}]`,
			context: discord.ComponentContextMessageV2,
			path:    "components[0].components[0]",
		},
		{
			name:    "button at top level",
			payload: `[{"type":2,"style":1,"custom_id":"a"}]`,
			path:    "components[0]",
		},
		{
			name:    "children on a leaf",
			payload: `[{"type":10,"content":"a","components":[{"type":10,"content":"b"}]}]`,
			path:    "components[0]",
		},
		{
			name:    "section with four texts",
			payload: `[{"type":9,"components":[` + texts(4) + `],"accessory":{"type":2,"style":1,"custom_id":"a"}}]`,
			path:    "components[0]",
		},
		{
			name:    "section accessory kind",
			payload: `[{"type":9,"components":[` + texts(1) + `],"accessory":{"type":10,"content":"a"}}]`,
			path:    "components[0].accessory",
		},
		{
			name:    "label in message",
			payload: `[{"type":18,"label":"Name","component":{"type":4,"custom_id":"a","style":1}}]`,
			path:    "components[0]",
		},
		{
			name:    "section in modal",
			payload: `[{"type":9,"components":[` + texts(1) + `],"accessory":{"type":2,"style":1,"custom_id":"a"}}]`,
			context: discord.ComponentContextModal,
			path:    "components[0]",
		},
		{
			name:    "label wrapping a button",
			payload: `[{"type":18,"label":"Name","component":{"type":2,"style":1,"custom_id":"a"}}]`,
			context: discord.ComponentContextModal,
			path:    "components[0].component",
		},
		{
			name:    "empty modal",
			payload: `[]`,
			context: discord.ComponentContextModal,
			path:    "components",
		},
		{
			name:    "gallery item without url",
			payload: `[{"type":12,"items":[{"media":{"url":""}}]}]`,
			path:    "components[0].items[0]",
		},
		{
			name:    "text input too long",
			payload: `[{"type":18,"label":"Name","component":{"type":4,"custom_id":"a","style":2,"max_length":4001}}]`,
			context: discord.ComponentContextModal,
			path:    "components[0].component",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			components, err := discord.UnmarshalComponents([]byte(tt.payload), tt.context)
			assert.Nil(t, components)
			assertViolation(t, err, tt.path)
		})
	}
}

func TestMessageComponentLimit(t *testing.T) {
	t.Parallel()

	rows := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		rows = append(rows, `{"type":1,"components":[`+buttons(5)+`]}`)
	}

	_, err := discord.UnmarshalComponents([]byte("["+strings.Join(rows, ",")+"]"), discord.ComponentContextMessageV2)
	assertViolation(t, err, "components")

	_, err = discord.UnmarshalComponents([]byte("["+strings.Join(rows[:6], ",")+"]"), discord.ComponentContextMessageV2)
	assert.NoError(t, err)

	_, err = discord.UnmarshalComponents([]byte("["+strings.Join(rows[:6], ",")+"]"), discord.ComponentContextMessage)
	assertViolation(t, err, "components")

	_, err = discord.UnmarshalComponents([]byte("["+strings.Join(rows[:5], ",")+"]"), discord.ComponentContextMessage)
	assert.NoError(t, err)
}

func TestMessageComponentContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, discord.ComponentContextMessage, discord.MessageComponentContext(0))
	assert.Equal(t, discord.ComponentContextMessage, discord.MessageComponentContext(discord.MessageFlagEphemeral))
	assert.Equal(t, discord.ComponentContextMessageV2,
		discord.MessageComponentContext(discord.MessageFlagIsComponentsV2|discord.MessageFlagEphemeral))
	assert.Equal(t, "message v2", discord.ComponentContextMessageV2.String())
	assert.Equal(t, "message", discord.ComponentContextMessage.String())
}

func TestModalComponents(t *testing.T) {
	t.Parallel()

	payload := `[
		{"type":10,"content":"Tell us about yourself"},
		{"type":18,"label":"Name","description":"What should we call you?","component":{"type":4,"custom_id":"name","style":1,"min_length":2,"max_length":32,"required":true}},
		{"type":18,"label":"Avatar","component":{"type":19,"custom_id":"avatar","max_values":1}},
		{"type":1,"components":[{"type":4,"custom_id":"bio","style":2,"label":"Bio"}]}
	]`

	components, err := discord.UnmarshalComponents([]byte(payload), discord.ComponentContextModal)
	require.NoError(t, err)
	require.Len(t, components, 4)

	label, ok := components[1].(*discord.Label)
	require.True(t, ok)
	assert.Equal(t, "Name", label.Label)
	assert.IsType(t, &discord.TextInput{}, label.Component)
	assert.IsType(t, &discord.FileUpload{}, components[2].(*discord.Label).Component)

	data, err := discord.MarshalComponents(components)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))
}

func TestComponentBuilders(t *testing.T) {
	t.Parallel()

	components := []discord.Component{
		discord.NewContainer(
			discord.NewSection(discord.NewButton(discord.ButtonStyleLink).SetURL("https://example.com").SetLabel("Open"),
				discord.NewTextDisplay("Hello"),
			),
			discord.NewSeparator(true, discord.SeparatorSpacingSmall),
			discord.NewMediaGallery("https://example.com/a.png"),
			discord.NewActionRow(
				discord.NewStringSelect("pick").
					AddOption(discord.SelectOption{Label: "A", Value: "a"}).
					AddOption(discord.SelectOption{Label: "B", Value: "b"}),
			),
		).SetAccentColor(0xff0000),
		discord.NewActionRow(
			discord.NewButton(discord.ButtonStylePrimary).SetCustomID("yes").SetLabel("Yes"),
			discord.NewButton(discord.ButtonStyleDanger).SetCustomID("no").SetLabel("No"),
		),
	}

	require.NoError(t, discord.ValidateComponents(components, discord.ComponentContextMessageV2))
	assertViolation(t, discord.ValidateComponents(components, discord.ComponentContextMessage), "components[0]")

	modal := []discord.Component{
		discord.NewLabel("Name", discord.NewTextInput("name", discord.TextInputStyleShort)).SetDescription("Display name"),
		discord.NewLabel("Channel", discord.NewChannelSelect("channel", discord.ChannelTypeGuildText)),
	}

	require.NoError(t, discord.ValidateComponents(modal, discord.ComponentContextModal))
	assertViolation(t, discord.ValidateComponents(modal, discord.ComponentContextMessageV2), "components[0]")

	invalid := []discord.Component{
		discord.NewActionRow(discord.NewButton(discord.ButtonStyleLink).SetCustomID("a")),
	}

	assertViolation(t, discord.ValidateComponents(invalid, discord.ComponentContextMessage), "components[0].components[0]")
}

func TestComponentTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ACTION_ROW", discord.ComponentTypeActionRow.String())
	assert.Equal(t, "FILE_UPLOAD", discord.ComponentTypeFileUpload.String())
	assert.Equal(t, "UNKNOWN(15)", discord.ComponentType(15).String())
	assert.True(t, discord.ComponentTypeSection.IsContainer())
	assert.False(t, discord.ComponentTypeButton.IsContainer())
	assert.True(t, discord.ComponentTypeChannelSelect.IsSelect())
}

func buttons(count int) string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, fmt.Sprintf(`{"type":2,"style":2,"custom_id":"b%d"}`, i))
	}

	return strings.Join(out, ",")
}

func texts(count int) string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, fmt.Sprintf(`{"type":10,"content":"t%d"}`, i))
	}

	return strings.Join(out, ",")
}

func TestContainerNullAccentColor(t *testing.T) {
	t.Parallel()

	components, err := discord.UnmarshalComponents([]byte(`[{"type":17,"accent_color":null,"components":[{"type":10,"content":"a"}]}]`), discord.ComponentContextMessageV2)
	require.NoError(t, err)
	assert.Nil(t, components[0].(*discord.Container).AccentColor)

	data, err := discord.MarshalComponents(components)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":17,"components":[{"type":10,"content":"a"}]}]`, string(data))
}

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/WelcomerTeam/Discord-Resources/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewResourcesCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestStickerURLCommand(t *testing.T) {
	out, err := execute(t, "", "sticker", "url", "123", "gif")
	require.NoError(t, err)
	assert.Equal(t, "https://media.discordapp.net/stickers/123.gif\n", out)

	out, err = execute(t, "", "sticker", "url", "123", "LOTTIE")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.discordapp.com/stickers/123.json\n", out)

	_, err = execute(t, "", "sticker", "url", "123", "webp")
	assert.Error(t, err)
}

func TestChannelCommand(t *testing.T) {
	payload := `{"id":"1","type":15,"guild_id":"2","name":"help","topic":null,
		"available_tags":[{"id":"3","name":"question"},{"id":"4","name":"bug"}]}`

	out, err := execute(t, payload, "channel", "-")
	require.NoError(t, err)

	var summary struct {
		ID     string   `json:"id"`
		Type   string   `json:"type"`
		Traits []string `json:"traits"`
		Name   string   `json:"name"`
		Tags   []string `json:"available_tags"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "1", summary.ID)
	assert.Equal(t, "GUILD_FORUM", summary.Type)
	assert.Equal(t, []string{"guild", "thread_host", "forum"}, summary.Traits)
	assert.Equal(t, "help", summary.Name)
	assert.Equal(t, []string{"question", "bug"}, summary.Tags)
}

func TestChannelCommandThreadTags(t *testing.T) {
	var summary map[string]any

	out, err := execute(t, `{"id":"1","type":11,"guild_id":"2","name":"thread"}`, "channel", "-")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, []any{}, summary["applied_tags"])

	out, err = execute(t, `{"id":"1","type":11,"guild_id":"2","name":"thread","applied_tags":["7","8"]}`, "channel", "-")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, []any{"7", "8"}, summary["applied_tags"])

	out, err = execute(t, `{"id":"1","type":0,"guild_id":"2","name":"general"}`, "channel", "-")
	require.NoError(t, err)

	summary = nil
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.NotContains(t, summary, "applied_tags")
}

func TestComponentsCommand(t *testing.T) {
	payload := `[{"type":1,"components":[{"type":2,"style":1,"custom_id":"a","label":"A"},{"type":2,"style":5,"url":"https://example.com"}]}]`

	t.Run("summary yaml", func(t *testing.T) {
		out, err := execute(t, payload, "components", "-", "--output", "yaml")
		require.NoError(t, err)

		var summary []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
		require.Len(t, summary, 1)
		assert.Equal(t, "ACTION_ROW", summary[0]["type"])
		assert.Len(t, summary[0]["components"], 2)
	})

	t.Run("roundtrip", func(t *testing.T) {
		out, err := execute(t, payload, "components", "-", "--roundtrip")
		require.NoError(t, err)
		assert.JSONEq(t, payload, out)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := execute(t, `[{"type":1,"components":[{"type":2,"style":5,"custom_id":"a","url":"https://example.com"}]}]`, "components", "-")
		assert.ErrorIs(t, err, discord.ErrSchemaViolation)
	})

	t.Run("modal", func(t *testing.T) {
		_, err := execute(t, `[{"type":1,"components":[{"type":4,"custom_id":"a","style":1,"label":"Name"}]}]`, "components", "-", "--modal")
		assert.NoError(t, err)

		_, err = execute(t, `[{"type":1,"components":[{"type":4,"custom_id":"a","style":1,"label":"Name"}]}]`, "components", "-")
		assert.ErrorIs(t, err, discord.ErrSchemaViolation)
	})

	t.Run("components v2", func(t *testing.T) {
		layout := `[{"type":10,"content":"Hello"},{"type":14,"divider":true}]`

		_, err := execute(t, layout, "components", "-")
		assert.ErrorIs(t, err, discord.ErrSchemaViolation)

		out, err := execute(t, layout, "components", "-", "--v2", "--roundtrip")
		require.NoError(t, err)
		assert.JSONEq(t, layout, out)

		_, err = execute(t, layout, "components", "-", "--v2", "--modal")
		assert.Error(t, err)
	})
}

func TestOutputFlag(t *testing.T) {
	_, err := execute(t, "", "--output", "xml", "sticker", "url", "1", "png")
	assert.Error(t, err)
}

func TestStickerEditCommand(t *testing.T) {
	var patches atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bot token", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v10/stickers/5":
			name := "before"
			if patches.Load() > 0 {
				name = "after"
			}

			_, _ = io.WriteString(w, `{"id":"5","guild_id":"9","name":"`+name+`","tags":"wave","type":2,"format_type":1,"description":null}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v10/stickers/6":
			_, _ = io.WriteString(w, `{"id":"6","pack_id":"7","name":"standard","tags":"wave","type":1,"format_type":3}`)
		case r.Method == http.MethodPatch && r.URL.Path == "/api/v10/guilds/9/stickers/5":
			patches.Add(1)
			assert.Equal(t, "rename", r.Header.Get(discord.AuditLogReasonHeader))

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"after"}`, string(body))

			_, _ = io.WriteString(w, `{"id":"5"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("DISCORD_API_ENDPOINT", server.URL)
	t.Setenv("DISCORD_TOKEN", "Bot token")

	out, err := execute(t, "", "sticker", "edit", "5", "--name", "after", "--reason", "rename")
	require.NoError(t, err)
	assert.Equal(t, int32(1), patches.Load())

	var sticker map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &sticker))
	assert.Equal(t, "after", sticker["name"])
	assert.Equal(t, "9", sticker["guild_id"])

	_, err = execute(t, "", "sticker", "edit", "6", "--name", "renamed")
	assert.ErrorIs(t, err, discord.ErrGuildOnly)
	assert.Equal(t, int32(1), patches.Load())
}

func TestStickerCommandRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := execute(t, "", "sticker", "get", "5")
	assert.Error(t, err)
}

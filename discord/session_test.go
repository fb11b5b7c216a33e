package discord_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WelcomerTeam/Discord-Resources/discord"
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newHTTPSession(t *testing.T, handler http.HandlerFunc) *discord.Session {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return discord.NewSession("Bot token", discord.NewInterface(server.Client(), server.URL, discord.APIVersion, discord.UserAgent))
}

func newFastHTTPSession(t *testing.T, r *router.Router) *discord.Session {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	server := &fasthttp.Server{Handler: r.Handler}

	go func() {
		_ = server.Serve(ln)
	}()

	t.Cleanup(func() {
		_ = ln.Close()
	})

	client := &fasthttp.Client{
		Dial: func(string) (net.Conn, error) {
			return ln.Dial()
		},
	}

	return discord.NewSession("Bot token", discord.NewFastHTTPInterface(client, "http://discord.test/api", discord.APIVersion, discord.UserAgent))
}

func TestBaseInterfaceEditSticker(t *testing.T) {
	t.Parallel()

	session := newHTTPSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v10/guilds/2/stickers/1", r.URL.Path)
		assert.Equal(t, "Bot token", r.Header.Get("Authorization"))
		assert.Equal(t, "a%20reason", r.Header.Get(discord.AuditLogReasonHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, discord.UserAgent, r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"new","tags":"wave"}`, string(body))

		_, _ = io.WriteString(w, `{"id":"1","name":"new"}`)
	})

	client := discord.NewRESTStickerClient(session)

	id, err := client.EditGuildSticker(context.Background(), 2, 1, discord.StickerParams{
		Name:   ptr("new"),
		Tags:   ptr("wave"),
		Reason: "a reason",
	})
	require.NoError(t, err)
	assert.Equal(t, discord.StickerID(1), id)
}

func TestBaseInterfaceErrors(t *testing.T) {
	t.Parallel()

	session := newHTTPSession(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v10/stickers/1":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Unknown Sticker","code":10060}`)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"401: Unauthorized","code":0}`)
		}
	})

	client := discord.NewRESTStickerClient(session)

	_, err := client.GetSticker(context.Background(), 1)
	require.Error(t, err)

	var restError *discord.RestError
	require.True(t, errors.As(err, &restError))
	assert.Equal(t, http.StatusNotFound, restError.StatusCode)
	assert.Equal(t, "Unknown Sticker", restError.Message.Message)
	assert.Equal(t, int32(10060), restError.Message.Code)
	assert.NotErrorIs(t, err, discord.ErrUnauthorized)

	_, err = client.GetSticker(context.Background(), 2)
	assert.ErrorIs(t, err, discord.ErrUnauthorized)
}

func TestStickerLifecycleProviderErrorUnwrapped(t *testing.T) {
	t.Parallel()

	session := newHTTPSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"Missing Permissions","code":50013}`)
	})

	client := discord.NewRESTStickerClient(session)
	sticker := decodeSticker(t, `{"id":"1","guild_id":"2","name":"wave","type":2,"format_type":1}`)

	_, err := sticker.Edit(context.Background(), client, discord.StickerParams{Name: ptr("waves")})
	restError, ok := err.(*discord.RestError)
	require.True(t, ok, "%T", err)
	assert.Equal(t, http.StatusForbidden, restError.StatusCode)
	assert.Equal(t, int32(50013), restError.Message.Code)

	deleted, err := sticker.Delete(context.Background(), client, "")
	assert.False(t, deleted)
	assert.IsType(t, &discord.RestError{}, err)

	_, err = client.GetSticker(context.Background(), 1)
	assert.IsType(t, &discord.RestError{}, err)

	_, err = client.GetStickerPack(context.Background(), 1)
	assert.ErrorAs(t, err, &restError)
	assert.NotEqual(t, error(restError), err)
}

func TestBaseInterfaceDeleteAndList(t *testing.T) {
	t.Parallel()

	session := newHTTPSession(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v10/guilds/2/stickers/1":
			assert.Empty(t, r.Header.Get(discord.AuditLogReasonHeader))
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v10/guilds/2/stickers":
			_, _ = io.WriteString(w, `[{"id":"1","name":"a","guild_id":"2","format_type":1},{"id":"3","name":"b","guild_id":"2","format_type":4}]`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v10/sticker-packs":
			_, _ = io.WriteString(w, `{"sticker_packs":[{"id":"10","name":"Wumpus","stickers":[{"id":"4","name":"hi","format_type":1}]}]}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	client := discord.NewRESTStickerClient(session)

	deleted, err := client.DeleteGuildSticker(context.Background(), 2, 1, "")
	require.NoError(t, err)
	assert.True(t, deleted)

	stickers, err := client.ListGuildStickers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, stickers, 2)
	assert.Equal(t, "https://media.discordapp.net/stickers/3.gif", stickers[1].URL())

	packs, err := client.ListStickerPacks(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 1)
	require.Len(t, packs[0].Stickers, 1)
	assert.Equal(t, "hi", packs[0].Stickers[0].Name)
}

func TestFastHTTPInterface(t *testing.T) {
	t.Parallel()

	r := router.New()
	r.GET("/api/v10/stickers/{id}", func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "Bot token", string(ctx.Request.Header.Peek("Authorization")))
		assert.Equal(t, "true", string(ctx.QueryArgs().Peek("with_user")))

		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"id":"` + ctx.UserValue("id").(string) + `","name":"wave","format_type":4,"guild_id":"2"}`)
	})
	r.PATCH("/api/v10/guilds/{guild}/stickers/{id}", func(ctx *fasthttp.RequestCtx) {
		assert.JSONEq(t, `{"description":"hello"}`, string(ctx.PostBody()))
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		ctx.SetBodyString(`{"message":"Invalid Form Body","code":50035}`)
	})

	session := newFastHTTPSession(t, r)

	var payload discord.StickerPayload

	err := session.FetchJJ(context.Background(), http.MethodGet, "/stickers/5?with_user=true", nil, nil, &payload)
	require.NoError(t, err)

	sticker := discord.NewSticker(&payload)
	assert.Equal(t, discord.StickerID(5), sticker.ID)
	assert.Equal(t, "https://media.discordapp.net/stickers/5.gif", sticker.URL())

	client := discord.NewRESTStickerClient(session)

	_, err = client.EditGuildSticker(context.Background(), 2, 5, discord.StickerParams{Description: ptr("hello")})

	var restError *discord.RestError
	require.True(t, errors.As(err, &restError))
	assert.Equal(t, fasthttp.StatusBadRequest, restError.StatusCode)
	assert.Equal(t, "400 Bad Request", restError.Status)
	assert.Equal(t, int32(50035), restError.Message.Code)
}

func TestFastHTTPInterfaceCancelledContext(t *testing.T) {
	t.Parallel()

	session := newFastHTTPSession(t, router.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.Interface.Fetch(ctx, session, http.MethodGet, "/stickers/1", "", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInstrumentedInterface(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v10/stickers/2" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Unknown Sticker","code":10060}`)

			return
		}

		_, _ = io.WriteString(w, `{"id":"1","name":"wave"}`)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	metrics := discord.NewRESTMetrics(registry)

	base := discord.NewInterface(server.Client(), server.URL, discord.APIVersion, discord.UserAgent)
	session := discord.NewSession("Bot token", discord.NewInstrumentedInterface(base, metrics))
	client := discord.NewRESTStickerClient(session)

	_, err := client.GetSticker(context.Background(), 1)
	require.NoError(t, err)

	_, err = client.GetSticker(context.Background(), 2)
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/stickers/:id", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/stickers/:id", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.RequestDuration))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}

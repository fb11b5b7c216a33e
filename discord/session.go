package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/WelcomerTeam/Discord-Resources/wirejson"
)

const (
	APIVersion      = "v10"
	EndpointDiscord = "https://discord.com/api"
	UserAgent       = "DiscordResources (github.com/WelcomerTeam/Discord-Resources)"

	AuditLogReasonHeader = "X-Audit-Log-Reason"

	defaultTimeout = 20 * time.Second
)

type RESTInterface interface {
	// Fetch constructs a request. It will return a response body along with any errors.
	// Non-2xx responses are returned as *RestError.
	Fetch(ctx context.Context, s *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error)
}

// Session contains the credentials and transport for the rest interface.
type Session struct {
	Interface RESTInterface
	Logger    *slog.Logger
	Token     string
}

func NewSession(token string, restInterface RESTInterface) *Session {
	return &Session{
		Token:     token,
		Interface: restInterface,
		Logger:    slog.Default(),
	}
}

// FetchBJ sends a raw body and decodes the JSON response into response, when not nil.
func (s *Session) FetchBJ(ctx context.Context, method, endpoint, contentType string, body []byte, headers http.Header, response any) error {
	resp, err := s.Interface.Fetch(ctx, s, method, endpoint, contentType, body, headers)
	if err != nil {
		return err
	}

	if response != nil && len(resp) > 0 {
		err = wirejson.Unmarshal(resp, response)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// FetchJJ encodes payload as JSON, when not nil, and decodes the JSON response.
func (s *Session) FetchJJ(ctx context.Context, method, endpoint string, payload any, headers http.Header, response any) error {
	var body []byte

	if payload != nil {
		var err error

		body, err = wirejson.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
	}

	return s.FetchBJ(ctx, method, endpoint, "application/json", body, headers, response)
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}

	return s.Logger
}

// checkStatus reports whether the status is a success.
func checkStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	default:
		return false
	}
}

// apiPath splits an endpoint into its versioned path and raw query.
func apiPath(version, endpoint string) (path, rawQuery string) {
	path, rawQuery, _ = strings.Cut(endpoint, "?")

	if version != "" && !strings.HasPrefix(path, "/api") {
		path = "/api/" + version + path
	}

	return path, rawQuery
}

// BaseInterface is the default HTTP Interface and simply handles routing to discord. Careful,
// this does not handle rate limiting.
type BaseInterface struct {
	HTTP       *http.Client
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string
}

func NewBaseInterface() *BaseInterface {
	return NewInterface(&http.Client{
		Timeout: defaultTimeout,
	}, EndpointDiscord, APIVersion, UserAgent)
}

func NewInterface(httpClient *http.Client, endpoint string, version string, useragent string) *BaseInterface {
	url, _ := url.Parse(endpoint)

	return &BaseInterface{
		HTTP:       httpClient,
		APIVersion: version,
		URLHost:    url.Host,
		URLScheme:  url.Scheme,
		UserAgent:  useragent,
	}
}

func (bi *BaseInterface) Fetch(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, bi.URLScheme+"://"+bi.URLHost, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	req.URL.Path, req.URL.RawQuery = apiPath(bi.APIVersion, endpoint)

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if body != nil && len(req.Header.Get("Content-Type")) == 0 {
		req.Header.Set("Content-Type", contentType)
	}

	if session.Token != "" {
		req.Header.Set("Authorization", session.Token)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", bi.UserAgent)

	resp, err := bi.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	defer resp.Body.Close()

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	session.logger().Debug("Fetched endpoint",
		"method", method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"request_size", len(body),
		"response_size", len(response),
	)

	if !checkStatus(resp.StatusCode) {
		return response, NewRestError(req, resp, response)
	}

	return response, nil
}

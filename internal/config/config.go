package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	TransportHTTP     = "http"
	TransportFastHTTP = "fasthttp"
)

var (
	ErrInvalidTransport = errors.New("invalid transport")
	ErrInvalidEndpoint  = errors.New("invalid endpoint")
	ErrMissingToken     = errors.New("token is not set")
)

// Configuration is read from the environment, optionally seeded by a dotenv file.
type Configuration struct {
	// Token is sent as the Authorization header, including its "Bot " prefix.
	Token string `env:"DISCORD_TOKEN"`

	APIEndpoint string        `env:"DISCORD_API_ENDPOINT" envDefault:"https://discord.com/api"`
	APIVersion  string        `env:"DISCORD_API_VERSION" envDefault:"v10"`
	CDNHost     string        `env:"DISCORD_CDN_HOST" envDefault:"https://cdn.discordapp.com"`
	MediaHost   string        `env:"DISCORD_MEDIA_HOST" envDefault:"https://media.discordapp.net"`
	Timeout     time.Duration `env:"DISCORD_TIMEOUT" envDefault:"20s"`

	// Transport selects the rest client, either "http" or "fasthttp".
	Transport string `env:"DISCORD_TRANSPORT" envDefault:"http"`

	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string     `env:"LOG_FILE"`
	LogMaxSizeMB  int        `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int        `env:"LOG_FILE_MAX_BACKUPS" envDefault:"3"`
}

// Load reads the dotenv files, when present, and parses the environment.
// Variables already set in the environment take precedence over dotenv values.
func Load(dotenvFiles ...string) (*Configuration, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load dotenv %s: %w", file, err)
		}
	}

	return Parse()
}

// Parse parses the configuration from the environment and validates it.
func Parse() (*Configuration, error) {
	var cfg Configuration

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Configuration) Validate() error {
	c.Transport = strings.ToLower(c.Transport)

	switch c.Transport {
	case TransportHTTP, TransportFastHTTP:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTransport, c.Transport)
	}

	for name, value := range map[string]string{
		"api endpoint": c.APIEndpoint,
		"cdn host":     c.CDNHost,
		"media host":   c.MediaHost,
	} {
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: %s %q", ErrInvalidEndpoint, name, value)
		}
	}

	return nil
}

// RequireToken returns ErrMissingToken when no token is configured.
func (c *Configuration) RequireToken() error {
	if c.Token == "" {
		return ErrMissingToken
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/WelcomerTeam/Discord-Resources/discord"
	"github.com/WelcomerTeam/Discord-Resources/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

type app struct {
	cfg      *config.Configuration
	logger   *slog.Logger
	registry *prometheus.Registry
	logFile  io.Closer

	envFile string
	output  string
}

func NewResourcesCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "resources",
		Short:         "Inspect and manage discord channels, components and stickers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env",
		"Dotenv file loaded before reading the environment")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", outputJSON,
		"Output format, json or yaml")

	cmd.AddCommand(
		newChannelCommand(a),
		newComponentsCommand(a),
		newStickerCommand(a),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := checkOutput(a.output); err != nil {
		return err
	}

	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.registry = prometheus.NewRegistry()

	options := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.LogFile != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
		}

		a.logFile = writer
		a.logger = slog.New(slog.NewJSONHandler(writer, options))
	} else {
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), options))
	}

	return nil
}

func (a *app) close() error {
	if a.registry != nil && a.logger != nil {
		families, err := a.registry.Gather()
		if err == nil {
			for _, family := range families {
				a.logger.Debug("Collected metric", "name", family.GetName(), "series", len(family.GetMetric()))
			}
		}
	}

	if a.logFile != nil {
		return a.logFile.Close()
	}

	return nil
}

// session builds a rest session for the configured transport.
func (a *app) session() (*discord.Session, error) {
	if err := a.cfg.RequireToken(); err != nil {
		return nil, err
	}

	var restInterface discord.RESTInterface

	switch a.cfg.Transport {
	case config.TransportFastHTTP:
		restInterface = discord.NewFastHTTPInterface(nil, a.cfg.APIEndpoint, a.cfg.APIVersion, discord.UserAgent)
	default:
		restInterface = discord.NewInterface(newHTTPClient(a.cfg), a.cfg.APIEndpoint, a.cfg.APIVersion, discord.UserAgent)
	}

	session := discord.NewSession(a.cfg.Token, discord.NewInstrumentedInterface(restInterface, discord.NewRESTMetrics(a.registry)))
	session.Logger = a.logger

	return session, nil
}

func (a *app) hosts() discord.Hosts {
	return discord.Hosts{CDN: a.cfg.CDNHost, Media: a.cfg.MediaHost}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := NewResourcesCommand()
	err := cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newHTTPClient(cfg *config.Configuration) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scrapyardhq/scrapdash/pkg/config"
	pkgerrors "github.com/scrapyardhq/scrapdash/pkg/errors"
	"github.com/scrapyardhq/scrapdash/pkg/logger"
	"github.com/scrapyardhq/scrapdash/pkg/scrapapi"
	"github.com/scrapyardhq/scrapdash/pkg/security"
	"github.com/scrapyardhq/scrapdash/pkg/session"
)

var rootCmd = &cobra.Command{
	Use:   "scrapdash",
	Short: "ScrapDash — scrap-metal marketplace operations CLI",
	Long:  "ScrapDash drives the marketplace backend from the terminal: box and part inventory, sale listings, and bid decisions, with a locally persisted login session.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			raw, marshalErr := json.MarshalIndent(pkgerrors.Dump(err), "", "  ")
			if marshalErr == nil {
				fmt.Fprintln(os.Stderr, string(raw))
				os.Exit(1)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles everything a command needs after bootstrap.
type app struct {
	cfg    *config.Config
	logg   *logger.Logger
	store  session.Store
	client *scrapapi.Client
}

func bootstrap(ctx context.Context) (*app, error) {
	logg := logger.New(logger.Options{ServiceName: "scrapdash"})

	if err := godotenv.Load(); err != nil {
		logg.Debug(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logg = logger.New(logger.Options{
		ServiceName: "scrapdash",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := newSessionStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap session store: %w", err)
	}

	client, err := scrapapi.New(cfg.API.BaseURL, store,
		scrapapi.WithLogger(logg),
		scrapapi.WithUserAgent(cfg.API.UserAgent),
		scrapapi.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		scrapapi.WithLogoutOn403(cfg.Auth.LogoutOn403),
		scrapapi.WithRefreshLeeway(cfg.Auth.RefreshLeeway),
		scrapapi.WithMaxUploadBytes(cfg.Media.MaxUploadBytes()),
	)
	if err != nil {
		return nil, fmt.Errorf("bootstrap api client: %w", err)
	}

	return &app{cfg: cfg, logg: logg, store: store, client: client}, nil
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		return session.NewRedisStore(ctx, cfg.Redis, cfg.Session.Name)
	case config.SessionBackendMemory:
		return session.NewMemoryStore(), nil
	default:
		var opts []session.FileOption
		if cfg.Session.Passphrase != "" {
			sealer, err := security.NewSealer(cfg.Session.Passphrase)
			if err != nil {
				return nil, err
			}
			opts = append(opts, session.WithSealer(sealer))
		}
		return session.NewFileStore(cfg.Session.Path, opts...)
	}
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid id", raw)
	}
	return id, nil
}

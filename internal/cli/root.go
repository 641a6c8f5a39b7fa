// Package cli implements the homefix command line client. It is the
// composition root: config, logger, API client, persistence adapter
// and session service are built here and injected into the commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/homefix/marketplace-client/internal/client"
	"github.com/homefix/marketplace-client/internal/core/domain"
	"github.com/homefix/marketplace-client/internal/core/ports"
	"github.com/homefix/marketplace-client/internal/core/service"
	"github.com/homefix/marketplace-client/internal/infrastructure/config"
	"github.com/homefix/marketplace-client/internal/infrastructure/storage/file"
	"github.com/homefix/marketplace-client/internal/infrastructure/storage/memory"
	redisstore "github.com/homefix/marketplace-client/internal/infrastructure/storage/redis"
	"github.com/homefix/marketplace-client/pkg/logger"
)

var (
	verbose bool
	apiURL  string

	cfg      *config.Config
	api      *client.Client
	sessions *service.SessionService
)

var rootCmd = &cobra.Command{
	Use:   "homefix",
	Short: "Command line client for the HomeFix marketplace",
	Long: `homefix talks to the HomeFix marketplace backend: search for
home-service professionals, hire them, chat about an order and leave
reviews. The session survives between invocations in local storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap(cmd)
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "backend base URL (overrides HOMEFIX_API_URL)")
}

// bootstrap wires the dependency graph and restores the persisted
// session before any command runs.
func bootstrap(cmd *cobra.Command) error {
	_ = godotenv.Load()
	cfg = config.Load()
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.Init(logger.Options{Level: level, Pretty: true})

	api = client.New(cfg.ResolveBaseURL(), nil, log)

	store, err := buildStore(cmd.Context())
	if err != nil {
		return err
	}
	sessions = service.NewSessionService(api, store, log)
	sessions.Restore(cmd.Context())

	if snap := sessions.Snapshot(); snap.Authenticated() {
		api.SetToken(snap.Token)
	}
	return nil
}

func buildStore(ctx context.Context) (ports.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return memory.NewStore(), nil
	case "redis":
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Storage.RedisAddr,
			DB:   cfg.Storage.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(rdb, os.Getenv("USER")), nil
	default:
		path := cfg.Storage.Path
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(home, ".homefix", "session.json")
		}
		return file.NewStore(path)
	}
}

// requireSession guards commands that need an authenticated caller.
func requireSession() error {
	if !sessions.Snapshot().Authenticated() {
		return fmt.Errorf("%w, run `homefix login` first", domain.ErrNotAuthenticated)
	}
	return nil
}

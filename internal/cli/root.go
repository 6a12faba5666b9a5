package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/daybreak/internal/config"
	"github.com/KirkDiggler/daybreak/internal/logger"
	modulerepo "github.com/KirkDiggler/daybreak/internal/repositories/modules"
	"github.com/KirkDiggler/daybreak/internal/repositories/properties"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
	"github.com/KirkDiggler/daybreak/internal/repositories/viewpoints"
	"github.com/KirkDiggler/daybreak/internal/services"
)

// RootOptions holds global flags and the engine built from them
type RootOptions struct {
	Verbose bool
	EnvFile string

	// Provider is built in PersistentPreRunE unless already set
	Provider *services.Provider
	Logger   *slog.Logger

	redisClient *redis.Client
}

// NewRootCommand creates the root command of the daybreak CLI
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daybreak",
		Short: "Daybreak - a scene engine for text adventures",
		Long:  "Install content modules and play through their scenes from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "environment file to load")

	cmd.AddCommand(NewInstallCommand(opts))
	cmd.AddCommand(NewUninstallCommand(opts))
	cmd.AddCommand(NewScenesCommand(opts))
	cmd.AddCommand(NewModulesCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	if o.Provider != nil {
		if o.Logger == nil {
			o.Logger = slog.Default()
		}
		return nil
	}

	if err := godotenv.Load(o.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.Verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	o.Logger = logger.Setup(cfg, cmd.ErrOrStderr())

	providerConfig := &services.ProviderConfig{Logger: o.Logger}

	if cfg.Redis.Enabled() {
		client, err := connectRedis(cmd.Context(), cfg.Redis)
		if err != nil {
			o.Logger.Warn("Failed to connect to Redis, falling back to in-memory repositories", "error", err)
		} else {
			o.redisClient = client
			providerConfig.SceneRepository = scenes.NewRedis(client)
			providerConfig.PropertyStore = properties.NewRedis(client)
			providerConfig.ViewpointRepository = viewpoints.NewRedis(client)
			providerConfig.ModuleRepository = modulerepo.NewRedis(client)
			o.Logger.Info("Using Redis for persistence", "addr", client.Options().Addr)
		}
	} else {
		o.Logger.Info("No Redis configured, using in-memory repositories")
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		return err
	}
	o.Provider = provider

	attached, err := provider.Attach(cmd.Context())
	if err != nil {
		return err
	}
	o.Logger.Debug("Attached installed modules", "count", attached)

	return nil
}

func (o *RootOptions) close() error {
	if o.redisClient == nil {
		return nil
	}
	err := o.redisClient.Close()
	o.redisClient = nil
	return err
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	if ctx == nil {
		ctx = context.Background()
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

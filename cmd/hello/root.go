package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/hello-packages/internal/app"
	"github.com/jsamuelsen/hello-packages/internal/packaging"
	"github.com/jsamuelsen/hello-packages/internal/platform/config"
	"github.com/jsamuelsen/hello-packages/internal/platform/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
	envFiles  []string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "hello",
		Short:        "Greeter packages and the HTTP service that serves them",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadEnvFiles(opts.envFiles)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.profile, "env", "e", "", "config profile (default $APP_ENVIRONMENT, then local)")
	flags.StringVar(&opts.configDir, "config-dir", config.DefaultConfigDir, "directory holding base.yaml and <profile>.yaml")
	flags.StringSliceVar(&opts.envFiles, "env-file", []string{".env.local", ".env"}, "dotenv files loaded before config; missing files are skipped")

	cmd.AddCommand(
		newServeCommand(opts),
		newGreetCommand(opts),
		newDescribeCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// loadEnvFiles loads the dotenv files that exist. Variables already present
// in the environment win over file values.
func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))

	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}

	return nil
}

func (o *rootOptions) resolveProfile() string {
	if o.profile != "" {
		return o.profile
	}

	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return "local"
}

// deps is what every subcommand needs after startup.
type deps struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *app.GreetingService
}

// bootstrap loads and validates configuration, then builds the logger and
// the greeting service. Console logs go to w.
func (o *rootOptions) bootstrap(w io.Writer) (*deps, error) {
	cfg, err := config.LoadFrom(o.configDir, o.resolveProfile())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, w)

	service := app.NewGreetingService(app.GreetingServiceConfig{
		BuildOptions: []packaging.Option{packaging.WithFallbackVersion(cfg.Packaging.DefaultVersion)},
		Logger:       logger,
	})

	return &deps{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}, nil
}

package command

import (
	"context"

	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/inject"
	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile  string
	logLevel string
}

func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "logoforge",
		Short:         "Generate logos from a business idea and a style",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCommand(opts),
		newGenerateCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// setup loads configuration and builds the injector shared by serve and
// generate. The returned context carries the logger.
func setup(cmd *cobra.Command, opts *rootOptions) (context.Context, *do.Injector, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, nil, err
	}
	if opts.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(opts.logLevel)); err != nil {
			return nil, nil, err
		}
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.LogLevel).With("provider", cfg.Provider)
	ctx := log.NewContext(cmd.Context(), logger)
	return ctx, inject.Setup(ctx, cfg), nil
}

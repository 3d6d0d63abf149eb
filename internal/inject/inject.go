package inject

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/dmorgan81/logoforge/internal/logo"
	"github.com/dmorgan81/logoforge/internal/page"
	"github.com/dmorgan81/logoforge/internal/param"
	"github.com/dmorgan81/logoforge/internal/server"
	"github.com/dmorgan81/logoforge/internal/store"
	"github.com/samber/do"
)

var generators = map[string]do.Provider[logo.Generator]{
	config.ProviderGemini: logo.NewGeminiGenerator,
	config.ProviderOpenAI: logo.NewOpenAIGenerator,
	config.ProviderDezgo:  logo.NewDezgoGenerator,
}

func Setup(ctx context.Context, cfg *config.Config) *do.Injector {
	logger := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		},
	})
	do.ProvideValue[*config.Config](injector, cfg)
	do.ProvideValue[*slog.Logger](injector, logger)
	do.ProvideValue[*http.Client](injector, http.DefaultClient)

	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)

	do.ProvideNamed[string](injector, "api_key", func(i *do.Injector) (string, error) {
		if cfg.APIKey != "" {
			return cfg.APIKey, nil
		}
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.APIKeyParam)
	})

	do.Provide[logo.Generator](injector, generators[cfg.Provider])
	do.Provide[*logo.Service](injector, logo.NewService)
	do.Provide[*page.Templator](injector, page.NewTemplator)
	do.Provide[*server.Server](injector, server.NewServer)
	do.ProvideValue[*store.FileWriter](injector, &store.FileWriter{})

	return injector
}

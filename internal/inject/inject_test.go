package inject_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/inject"
	"github.com/dmorgan81/logoforge/internal/logo"
	"github.com/dmorgan81/logoforge/internal/param"
	"github.com/dmorgan81/logoforge/internal/server"
)

type fetcherFunc func(ctx context.Context, path string) (string, error)

func (f fetcherFunc) Fetch(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

func testConfig(provider string) *config.Config {
	return &config.Config{
		Provider:   provider,
		APIKey:     "test-key",
		Model:      config.DefaultModel(provider),
		ListenAddr: ":0",
		Timeout:    time.Minute,
	}
}

func TestSetup_Generators(t *testing.T) {
	tests := []struct {
		provider string
		want     any
	}{
		{provider: config.ProviderGemini, want: &logo.GeminiGenerator{}},
		{provider: config.ProviderOpenAI, want: &logo.OpenAIGenerator{}},
		{provider: config.ProviderDezgo, want: &logo.DezgoGenerator{}},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			injector := inject.Setup(context.Background(), testConfig(tt.provider))
			defer func() { _ = injector.Shutdown() }()

			generator, err := do.Invoke[logo.Generator](injector)
			require.NoError(t, err)
			assert.IsType(t, tt.want, generator)

			srv, err := do.Invoke[*server.Server](injector)
			require.NoError(t, err)
			assert.NotNil(t, srv.Handler())
		})
	}
}

func TestSetup_APIKeyFromParameterStore(t *testing.T) {
	cfg := testConfig(config.ProviderDezgo)
	cfg.APIKey = ""
	cfg.APIKeyParam = "/logoforge/dezgo-key"

	injector := inject.Setup(context.Background(), cfg)
	do.OverrideValue[param.Fetcher](injector, fetcherFunc(func(_ context.Context, path string) (string, error) {
		assert.Equal(t, "/logoforge/dezgo-key", path)
		return "from-ssm", nil
	}))

	key, err := do.InvokeNamed[string](injector, "api_key")
	require.NoError(t, err)
	assert.Equal(t, "from-ssm", key)

	generator, err := do.Invoke[logo.Generator](injector)
	require.NoError(t, err)
	assert.Equal(t, "from-ssm", generator.(*logo.DezgoGenerator).Key)
}

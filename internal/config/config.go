package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	EnvProvider    = "IMAGE_PROVIDER"
	EnvAPIKey      = "API_KEY"
	EnvAPIKeyParam = "API_KEY_PARAM"
	EnvModel       = "IMAGE_MODEL"
	EnvBaseURL     = "IMAGE_BASE_URL"
	EnvListenAddr  = "LISTEN_ADDR"
	EnvTimeout     = "GENERATE_TIMEOUT"
	EnvLogLevel    = "LOG_LEVEL"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderDezgo  = "dezgo"
)

var ErrMissingAPIKey = errors.New(EnvAPIKey + " environment variable is not set")

type Config struct {
	Provider    string
	APIKey      string
	APIKeyParam string
	Model       string
	BaseURL     string
	ListenAddr  string
	Timeout     time.Duration
	LogLevel    slog.Level
}

// Load reads envFile when it exists and then builds the config from the
// process environment. Variables already set in the environment win over the
// file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		return lo.Ternary(getenv(key) != "", getenv(key), fallback)
	}

	config := &Config{
		Provider:    get(EnvProvider, ProviderGemini),
		APIKey:      getenv(EnvAPIKey),
		APIKeyParam: getenv(EnvAPIKeyParam),
		BaseURL:     getenv(EnvBaseURL),
		ListenAddr:  get(EnvListenAddr, ":8080"),
	}
	config.Model = get(EnvModel, DefaultModel(config.Provider))

	timeout, err := time.ParseDuration(get(EnvTimeout, "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
	}
	config.Timeout = timeout

	if err := config.LogLevel.UnmarshalText([]byte(get(EnvLogLevel, "info"))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if DefaultModel(c.Provider) == "" {
		return fmt.Errorf("unsupported %s: %q", EnvProvider, c.Provider)
	}
	if c.APIKey == "" && c.APIKeyParam == "" {
		return ErrMissingAPIKey
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", EnvTimeout, c.Timeout)
	}
	return nil
}

// DefaultModel returns the model used for provider when IMAGE_MODEL is unset,
// or "" for an unknown provider.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderGemini:
		return "imagen-3.0-generate-002"
	case ProviderOpenAI:
		return "dall-e-3"
	case ProviderDezgo:
		return "epic_realism"
	}
	return ""
}

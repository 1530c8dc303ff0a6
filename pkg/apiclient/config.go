package apiclient

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the client-side settings for talking to the signature
// backend. Fields are populated from environment variables via LoadConfig
// or from a YAML file via LoadConfigFile.
type Config struct {
	// BaseURL is the backend root, e.g. "https://api.example.com/api/v1".
	BaseURL string `env:"SIGNKIT_API_URL,required"`

	// RequestTimeout bounds every individual HTTP request.
	RequestTimeout time.Duration `env:"SIGNKIT_REQUEST_TIMEOUT" envDefault:"30s"`

	// PollInterval is the period of the document status reconciliation
	// loop (see the document package's Monitor).
	PollInterval time.Duration `env:"SIGNKIT_POLL_INTERVAL" envDefault:"30s"`
}

var defaultEnvLoaded sync.Once

// LoadConfig parses the configuration from environment variables,
// loading a .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// LoadConfigFile reads the configuration from a YAML file. Durations are
// given in Go syntax ("30s", "1m"); absent fields fall back to the same
// defaults LoadConfig uses.
func LoadConfigFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("apiclient: read config file: %w", err)
	}

	var file struct {
		BaseURL        string `yaml:"base_url"`
		RequestTimeout string `yaml:"request_timeout"`
		PollInterval   string `yaml:"poll_interval"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if file.BaseURL == "" {
		return Config{}, fmt.Errorf("%w: base_url is required", ErrParsingConfig)
	}

	cfg := Config{
		BaseURL:        file.BaseURL,
		RequestTimeout: 30 * time.Second,
		PollInterval:   30 * time.Second,
	}
	if file.RequestTimeout != "" {
		if cfg.RequestTimeout, err = time.ParseDuration(file.RequestTimeout); err != nil {
			return Config{}, fmt.Errorf("%w: request_timeout: %w", ErrParsingConfig, err)
		}
	}
	if file.PollInterval != "" {
		if cfg.PollInterval, err = time.ParseDuration(file.PollInterval); err != nil {
			return Config{}, fmt.Errorf("%w: poll_interval: %w", ErrParsingConfig, err)
		}
	}

	return cfg, nil
}

// ErrParsingConfig is returned when configuration cannot be parsed from
// the environment or a config file.
var ErrParsingConfig = errors.New("apiclient: failed to parse config")

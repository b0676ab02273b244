package config

import (
	"os"
	"strconv"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"gopkg.in/yaml.v3"
)

// Config holds global configuration for linkedin-mcp.
type Config struct {
	Auth     AuthConfig     `yaml:"auth"`
	Client   ClientConfig   `yaml:"client"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// AuthConfig holds the LinkedIn account credentials.
// The password is never written to the config file; it comes from the
// environment or the OS keyring.
type AuthConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"-"`
}

// ClientConfig holds settings for the Voyager web client.
type ClientConfig struct {
	BaseURL           string  `yaml:"base_url"`
	AuthBaseURL       string  `yaml:"auth_base_url"`
	UserAgent         string  `yaml:"user_agent"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	RequestBurst      int     `yaml:"request_burst"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
}

// DefaultsConfig holds default values for tool parameters.
type DefaultsConfig struct {
	SearchLimit         int      `yaml:"search_limit"`
	FeedLimit           int      `yaml:"feed_limit"`
	DecisionMakerTitles []string `yaml:"decision_maker_titles"`
}

// DefaultConfig returns the built-in defaults. The client pacing mirrors
// what LinkedIn tolerates for a logged-in browser session.
func DefaultConfig() *Config {
	return &Config{
		Client: ClientConfig{
			BaseURL:           "https://www.linkedin.com/voyager/api",
			AuthBaseURL:       "https://www.linkedin.com",
			UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0",
			RequestsPerSecond: 1.0,
			RequestBurst:      3,
			TimeoutSeconds:    30,
		},
		Defaults: DefaultsConfig{
			SearchLimit: 10,
			FeedLimit:   10,
			DecisionMakerTitles: []string{
				"CEO", "CTO", "CIO", "Director", "VP", "Head", "Manager",
			},
		},
	}
}

// Load loads configuration from config.yaml in the data directory.
// Falls back to default configuration if the file doesn't exist.
// Environment variables override both file and default values.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, errors.ConfigInvalid(err)
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigInvalid(err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.ConfigInvalid(err)
	}
	// If file doesn't exist, we continue with defaults

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// LINKEDIN_EMAIL and LINKEDIN_PASSWORD carry the account identifier and
// secret; the remaining variables tune the client.
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("LINKEDIN_EMAIL"); val != "" {
		cfg.Auth.Email = val
	}
	if val := os.Getenv("LINKEDIN_PASSWORD"); val != "" {
		cfg.Auth.Password = val
	}

	if val, ok := os.LookupEnv("LINKEDIN_MCP_BASE_URL"); ok {
		cfg.Client.BaseURL = val
	}
	if val, ok := os.LookupEnv("LINKEDIN_MCP_AUTH_BASE_URL"); ok {
		cfg.Client.AuthBaseURL = val
	}

	if val, ok := os.LookupEnv("LINKEDIN_MCP_REQUESTS_PER_SECOND"); ok {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return errors.ConfigInvalid(err)
		}
		cfg.Client.RequestsPerSecond = parsed
	}

	if val, ok := os.LookupEnv("LINKEDIN_MCP_SEARCH_LIMIT"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return errors.ConfigInvalid(err)
		}
		cfg.Defaults.SearchLimit = parsed
	}

	return nil
}

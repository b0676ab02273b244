package config

import (
	"time"

	"github.com/leadscout/linkedin-mcp/internal/linkedin"
	"github.com/leadscout/linkedin-mcp/internal/prospect"
)

// ClientOptions converts the config into options for the Voyager client.
// The cached session lives next to the config in the data directory; a
// failure to resolve the data dir just disables the cache.
func (c *Config) ClientOptions() linkedin.Options {
	sessionPath, _ := SessionPath()

	return linkedin.Options{
		Email:             c.Auth.Email,
		Password:          c.Auth.Password,
		BaseURL:           c.Client.BaseURL,
		AuthBaseURL:       c.Client.AuthBaseURL,
		UserAgent:         c.Client.UserAgent,
		RequestsPerSecond: c.Client.RequestsPerSecond,
		RequestBurst:      c.Client.RequestBurst,
		Timeout:           time.Duration(c.Client.TimeoutSeconds) * time.Second,
		SessionPath:       sessionPath,
	}
}

// ServiceDefaults converts the config into fallback values for the
// prospecting operations.
func (c *Config) ServiceDefaults() prospect.Defaults {
	return prospect.Defaults{
		SearchLimit:         c.Defaults.SearchLimit,
		FeedLimit:           c.Defaults.FeedLimit,
		DecisionMakerTitles: c.Defaults.DecisionMakerTitles,
	}
}

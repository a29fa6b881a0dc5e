package config

import (
	"time"

	"github.com/goodreadme/goodreadme/internal/constants"
	"github.com/goodreadme/goodreadme/internal/readme"
)

const (
	DefaultAPIURL   = "https://api.github.com"
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 24 * time.Hour
)

// DefaultConfig returns the default goodreadme configuration
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIURL:  DefaultAPIURL,
			Timeout: DefaultTimeout,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     DefaultCacheTTL,
		},
		Output: OutputConfig{
			Filename: constants.DefaultOutputFilename,
			Footer:   readme.DefaultFooterTemplate,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

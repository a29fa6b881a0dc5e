// Package config loads goodreadme settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/goodreadme/goodreadme/internal/constants"
	"github.com/goodreadme/goodreadme/internal/logging"
	"github.com/goodreadme/goodreadme/internal/readme"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GitHub  GitHubConfig  `yaml:"github"`
	Cache   CacheConfig   `yaml:"cache"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// GitHubConfig configures the profile lookup service.
type GitHubConfig struct {
	APIURL  string        `yaml:"api_url"`
	Token   string        `yaml:"token,omitempty"`
	Timeout time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

type OutputConfig struct {
	Filename string `yaml:"filename"`
	Footer   string `yaml:"footer"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment overrides and validates.
func Load(afs afero.Fs, path string, lookup LookupEnv) (*Config, error) {
	config := DefaultConfig()

	data, err := afero.ReadFile(afs, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	config.ApplyEnv(lookup)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// ApplyEnv overrides the token from the environment. The dedicated variable
// wins over the conventional GITHUB_TOKEN, and both win over the file.
func (c *Config) ApplyEnv(lookup LookupEnv) {
	if lookup == nil {
		return
	}
	for _, key := range []string{constants.EnvGitHubToken, constants.EnvGitHubTokenFallback} {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			c.GitHub.Token = strings.TrimSpace(value)
			return
		}
	}
}

// Validate performs comprehensive config validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GitHub.APIURL) == "" {
		return errors.New("github.api_url is required and cannot be empty")
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("github.timeout must be positive, got %s", c.GitHub.Timeout)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl cannot be negative, got %s", c.Cache.TTL)
	}
	if strings.TrimSpace(c.Output.Filename) == "" {
		return errors.New("output.filename is required and cannot be empty")
	}
	if _, err := readme.ParseFooter(c.Output.Footer); err != nil {
		return fmt.Errorf("invalid output.footer: %w", err)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err //nolint:wrapcheck // message already names the level
	}
	return nil
}

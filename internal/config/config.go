package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys for the two required settings.
const (
	KeyGitHubUser = "github-user"
	KeyGitHubRepo = "github-repo"
)

// Config holds all ghbot configuration.
type Config struct {
	GitHubUser string `mapstructure:"github-user" yaml:"github-user"`
	GitHubRepo string `mapstructure:"github-repo" yaml:"github-repo"`

	GitHub  GitHubConfig  `mapstructure:"github" yaml:"github"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	Token   string        `mapstructure:"token" yaml:"token"`     // Personal Access Token, optional
	APIURL  string        `mapstructure:"api_url" yaml:"api_url"` // REST endpoint (GitHub Enterprise)
	WebURL  string        `mapstructure:"web_url" yaml:"web_url"` // Base for repository links
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Client  string        `mapstructure:"client" yaml:"client"` // "rest" or "go-github"
}

// ServerConfig holds chat endpoint settings.
type ServerConfig struct {
	Addr   string `mapstructure:"addr" yaml:"addr"`
	Port   int    `mapstructure:"port" yaml:"port"`
	Secret string `mapstructure:"secret" yaml:"secret"` // HMAC secret for signed requests
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Client backends.
const (
	ClientREST     = "rest"
	ClientGoGitHub = "go-github"
)

// ErrMissingValue is wrapped by every ConfigError.
var ErrMissingValue = errors.New("configuration value must be set")

// ConfigError reports a required configuration key that is missing or empty.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s.", e.Key, ErrMissingValue)
}

func (e *ConfigError) Unwrap() error {
	return ErrMissingValue
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGitHubUser, "")
	v.SetDefault(KeyGitHubRepo, "")
	v.SetDefault("github.token", "")
	v.SetDefault("github.api_url", "https://api.github.com")
	v.SetDefault("github.web_url", "https://github.com")
	v.SetDefault("github.timeout", "30s")
	v.SetDefault("github.client", ClientREST)
	v.SetDefault("server.addr", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.secret", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// BindEnv makes every key overridable from GHBOT_* environment variables,
// e.g. GHBOT_GITHUB_USER or GHBOT_SERVER_PORT.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("GHBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from file, environment, and defaults held by v.
// A .env file in the working directory is loaded first if present.
func LoadFrom(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// GITHUB_TOKEN is honoured like the gh CLI does.
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}

	cfg.GitHub.APIURL = strings.TrimSuffix(cfg.GitHub.APIURL, "/")
	cfg.GitHub.WebURL = strings.TrimSuffix(cfg.GitHub.WebURL, "/")

	return cfg, nil
}

// Validate checks the settings the !gh command cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GitHubUser) == "" {
		return &ConfigError{Key: KeyGitHubUser}
	}
	if strings.TrimSpace(c.GitHubRepo) == "" {
		return &ConfigError{Key: KeyGitHubRepo}
	}
	switch c.GitHub.Client {
	case ClientREST, ClientGoGitHub, "":
	default:
		return fmt.Errorf("unknown github.client %q (want %q or %q)", c.GitHub.Client, ClientREST, ClientGoGitHub)
	}
	return nil
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() *Config {
	out := *c
	if out.GitHub.Token != "" {
		out.GitHub.Token = "********"
	}
	if out.Server.Secret != "" {
		out.Server.Secret = "********"
	}
	return &out
}

// Package config loads the settings of the card generator from defaults,
// an optional config file, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/naka-gawa/github-profile-card/internal/gateway"
	"github.com/naka-gawa/github-profile-card/internal/profile"
	"github.com/naka-gawa/github-profile-card/internal/render"
)

// configName is the config file name without extension.
const configName = ".profile-card"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "PROFILE_CARD"

// Defaults.
const (
	DefaultTimeout        = 30 * time.Second
	DefaultPrimarySection = "octocat@github"
	DefaultStatsSection   = "Personal GitHub Stats"
	DefaultBirthdate      = "2008-04-10"
	DefaultOutput         = "profile_card.svg"
	DefaultReadme         = "README.md"
	// RandomScheme picks a colour scheme at random on every run.
	RandomScheme = -1
)

// ErrMissingToken is returned when no API token is configured.
var ErrMissingToken = errors.New("GitHub token is not set (GH_TOKEN or GITHUB_TOKEN)")

// Config is the container for app configuration.
type Config struct {
	// User is the login whose stats are collected. Empty means the token owner.
	User  string `mapstructure:"user"`
	Token string `mapstructure:"token"`

	GraphQLURL       string        `mapstructure:"graphql_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	RateLimit        float64       `mapstructure:"rate_limit"`
	MaxRateLimitWait time.Duration `mapstructure:"max_rate_limit_wait"`

	// Template and ASCII are file paths; empty uses the built-in ones.
	Template       string   `mapstructure:"template"`
	ASCII          string   `mapstructure:"ascii"`
	PrimarySection string   `mapstructure:"primary_section"`
	StatsSection   string   `mapstructure:"stats_section"`
	UptimePath     []string `mapstructure:"uptime_path"`
	Birthdate      string   `mapstructure:"birthdate"`
	Width          int      `mapstructure:"width"`

	Output   string `mapstructure:"output"`
	Readme   string `mapstructure:"readme"`
	ImageURL string `mapstructure:"image_url"`
	Scheme   int    `mapstructure:"scheme"`

	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration into a Config. If configPath is empty the config
// file is looked up in the working directory; a missing file is not an error.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("token", envPrefix+"_TOKEN", "GH_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("bind token env: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("user", "")
	v.SetDefault("token", "")
	v.SetDefault("graphql_url", gateway.DefaultGraphQLURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("rate_limit", 0.0)
	v.SetDefault("max_rate_limit_wait", time.Duration(0))
	v.SetDefault("template", "")
	v.SetDefault("ascii", "")
	v.SetDefault("primary_section", DefaultPrimarySection)
	v.SetDefault("stats_section", DefaultStatsSection)
	v.SetDefault("uptime_path", []string{DefaultPrimarySection, "System", "Uptime"})
	v.SetDefault("birthdate", DefaultBirthdate)
	v.SetDefault("width", profile.DefaultWidth)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("readme", DefaultReadme)
	v.SetDefault("image_url", "")
	v.SetDefault("scheme", RandomScheme)
	v.SetDefault("verbose", false)
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %v", c.RateLimit)
	}
	if c.Scheme < RandomScheme || c.Scheme >= len(render.Palettes) {
		return fmt.Errorf("scheme must be between %d and %d, got %d", RandomScheme, len(render.Palettes)-1, c.Scheme)
	}
	if _, err := c.BirthdateTime(); err != nil {
		return err
	}
	return nil
}

// BirthdateTime parses Birthdate. An empty birthdate yields the zero time.
func (c *Config) BirthdateTime() (time.Time, error) {
	if c.Birthdate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(profile.BirthdateLayout, c.Birthdate)
	if err != nil {
		return time.Time{}, fmt.Errorf("birthdate must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// GatewayOptions returns the options for the GitHub gateway.
func (c *Config) GatewayOptions() gateway.Options {
	return gateway.Options{
		Token:            c.Token,
		GraphQLURL:       c.GraphQLURL,
		Timeout:          c.Timeout,
		RateLimit:        c.RateLimit,
		MaxRateLimitWait: c.MaxRateLimitWait,
	}
}

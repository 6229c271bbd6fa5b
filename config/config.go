package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultFindingURL is the eBay Finding API endpoint.
const DefaultFindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"

// Config holds the environment driven configuration for the pricing service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"ebay-pricing"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// eBay Finding API
	FindingURL  string        `env:"EBAY_FINDING_URL"`            // Defaults to DefaultFindingURL
	EbayTimeout time.Duration `env:"EBAY_TIMEOUT" envDefault:"0s"` // 0 disables the client-side timeout
	EbayAppID   string        `env:"EBAY_APP_ID"`                  // Used by the CLI and Discord bot only

	// Discord
	DiscordToken  string `env:"DISCORD_BOT_TOKEN"`
	DiscordPrefix string `env:"DISCORD_COMMAND_PREFIX" envDefault:"!price "`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.FindingURL == "" {
		cfg.FindingURL = DefaultFindingURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FindingURL) == "" {
		return fmt.Errorf("EBAY_FINDING_URL must not be empty")
	}
	if c.EbayTimeout < 0 {
		return fmt.Errorf("EBAY_TIMEOUT must not be negative")
	}
	if strings.TrimSpace(c.DiscordPrefix) == "" {
		return fmt.Errorf("DISCORD_COMMAND_PREFIX must not be empty")
	}
	return nil
}

// Addr returns the listen address, tolerating a PORT with or without the colon.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// DiscordEnabled reports whether the Discord bot has what it needs to run.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.EbayAppID != ""
}

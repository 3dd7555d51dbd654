package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Article sources.
const (
	SourceREST     = "rest"
	SourcePostgres = "postgres"
)

type Config struct {
	ArticleSource     string        `env:"ARTICLE_SOURCE" envDefault:"rest"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	SupabaseURL       string        `env:"SUPABASE_URL"`
	SupabaseAnonKey   string        `env:"SUPABASE_ANON_KEY"`
	LocalesDir        string        `env:"LOCALES_DIR" envDefault:"public/locales"`
	ReferenceLanguage string        `env:"REFERENCE_LANGUAGE" envDefault:"en"`
	UILanguage        string        `env:"UI_LANGUAGE" envDefault:"en"`
	SiteTimezone      string        `env:"SITE_TIMEZONE" envDefault:"Europe/Paris"`
	DiscordWebhookURL string        `env:"DISCORD_WEBHOOK_URL"`
	MigrationsPath    string        `env:"MIGRATIONS_PATH" envDefault:"internal/infrastructure/database/migrations"`
	Timeout           time.Duration `env:"NEWSCTL_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file, then the environment, and validates
// the result.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (CI, containers).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate only checks what every command relies on; commands check the
// settings specific to them (see RequireDatabase, RequireREST).
func (c *Config) validate() error {
	c.ArticleSource = strings.ToLower(strings.TrimSpace(c.ArticleSource))
	switch c.ArticleSource {
	case SourceREST, SourcePostgres:
	default:
		return fmt.Errorf("config: ARTICLE_SOURCE must be %q or %q, got %q", SourceREST, SourcePostgres, c.ArticleSource)
	}

	if strings.TrimSpace(c.LocalesDir) == "" {
		return fmt.Errorf("config: LOCALES_DIR cannot be empty")
	}
	if strings.TrimSpace(c.ReferenceLanguage) == "" {
		return fmt.Errorf("config: REFERENCE_LANGUAGE cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: NEWSCTL_TIMEOUT must be positive")
	}

	if c.DatabaseURL != "" {
		if err := checkURL("DATABASE_URL", c.DatabaseURL); err != nil {
			return err
		}
	}
	if c.SupabaseURL != "" {
		if err := checkURL("SUPABASE_URL", c.SupabaseURL); err != nil {
			return err
		}
	}
	if c.DiscordWebhookURL != "" {
		if err := checkURL("DISCORD_WEBHOOK_URL", c.DiscordWebhookURL); err != nil {
			return err
		}
	}
	return nil
}

// RequireDatabase reports an error when DATABASE_URL is unset.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required for this command")
	}
	return nil
}

// RequireREST reports an error when the REST endpoint is not configured.
func (c *Config) RequireREST() error {
	if strings.TrimSpace(c.SupabaseURL) == "" {
		return fmt.Errorf("config: SUPABASE_URL is required when ARTICLE_SOURCE=%s", SourceREST)
	}
	return nil
}

func checkURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalid (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalid (%q): missing scheme or host", name, raw)
	}
	return nil
}

package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	// Keep a developer's .env out of the test.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"LOCALES_DIR": "public/locales"})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LocalesDir != "public/locales" || cfg.ReferenceLanguage != "en" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
}

func TestLoad_NormalizesSource(t *testing.T) {
	setEnv(t, map[string]string{
		"ARTICLE_SOURCE": " Postgres ",
		"DATABASE_URL":   "postgres://localhost:5432/news?sslmode=disable",
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ArticleSource != SourcePostgres {
		t.Fatalf("source = %q", cfg.ArticleSource)
	}
	if err := cfg.RequireDatabase(); err != nil {
		t.Fatalf("RequireDatabase: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	base := func() Config {
		return Config{ArticleSource: "rest", LocalesDir: "locales", ReferenceLanguage: "en", Timeout: time.Second}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown source", func(c *Config) { c.ArticleSource = "graphql" }, "ARTICLE_SOURCE"},
		{"empty locales", func(c *Config) { c.LocalesDir = " " }, "LOCALES_DIR"},
		{"empty reference", func(c *Config) { c.ReferenceLanguage = "" }, "REFERENCE_LANGUAGE"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "NEWSCTL_TIMEOUT"},
		{"database without host", func(c *Config) { c.DatabaseURL = "postgres:///news" }, "DATABASE_URL"},
		{"supabase without scheme", func(c *Config) { c.SupabaseURL = "project.supabase.co" }, "SUPABASE_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	c := Config{}
	if err := c.RequireDatabase(); err == nil {
		t.Fatal("expected RequireDatabase error")
	}
	if err := c.RequireREST(); err == nil {
		t.Fatal("expected RequireREST error")
	}
}

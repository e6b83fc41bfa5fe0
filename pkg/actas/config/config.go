// Package config loads the server configuration from an optional YAML file
// and ACTAS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix         = "ACTAS_"
	maxConfigFileSize = 1024 * 1024
)

// Config is the complete server configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	OIDC     OIDCConfig     `koanf:"oidc"`
	Storage  StorageConfig  `koanf:"storage"`
	Log      LogConfig      `koanf:"log"`
	Mail     MailConfig     `koanf:"mail"`
}

type ServerConfig struct {
	Port    int    `koanf:"port"`
	BaseURL string `koanf:"base_url"`
	WebDist string `koanf:"web_dist"`
}

type DatabaseConfig struct {
	Path     string `koanf:"path"`
	LogLevel string `koanf:"log_level"`
}

type AuthConfig struct {
	JWTSecret     string        `koanf:"jwt_secret"`
	TokenDuration time.Duration `koanf:"token_duration"`
	AdminUsername string        `koanf:"admin_username"`
	AdminPassword string        `koanf:"admin_password"`
}

// OIDCConfig describes the Keycloak realm used for single sign-on
type OIDCConfig struct {
	Enabled               bool   `koanf:"enabled"`
	Issuer                string `koanf:"issuer"`
	ClientID              string `koanf:"client_id"`
	ClientSecret          string `koanf:"client_secret"`
	Scopes                string `koanf:"scopes"`
	PostLogoutRedirectURL string `koanf:"post_logout_redirect_url"`
}

type StorageConfig struct {
	MediaDir  string `koanf:"media_dir"`
	StaticDir string `koanf:"static_dir"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MailConfig tunes the Graph relay client. Credentials live in the database.
type MailConfig struct {
	TokenURL             string        `koanf:"token_url"`
	GraphURL             string        `koanf:"graph_url"`
	Timeout              time.Duration `koanf:"timeout"`
	RatePerMinute        int           `koanf:"rate_per_minute"`
	NotifyOnIntervention bool          `koanf:"notify_on_intervention"`
}

// Load reads configuration with this precedence, highest first:
//  1. Environment variables (ACTAS_SERVER_PORT, ACTAS_OIDC_CLIENT_ID, ...)
//  2. The YAML file at path, when path is not empty
//  3. Defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// ACTAS_SERVER_BASE_URL -> server.base_url
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envKey maps an environment variable to a config key. The first underscore
// after the prefix separates the section from the field name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	cfg.Server.BaseURL = strings.TrimRight(cfg.Server.BaseURL, "/")
	if cfg.Server.WebDist == "" {
		cfg.Server.WebDist = "./web/dist"
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "actas.db"
	}
	if cfg.Database.LogLevel == "" {
		cfg.Database.LogLevel = "warn"
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = 24 * time.Hour
	}
	if cfg.Auth.AdminUsername == "" {
		cfg.Auth.AdminUsername = "admin"
	}
	if cfg.Auth.AdminPassword == "" {
		cfg.Auth.AdminPassword = "changeme"
	}

	if cfg.OIDC.Scopes == "" {
		cfg.OIDC.Scopes = "openid profile email"
	}

	if cfg.Storage.MediaDir == "" {
		cfg.Storage.MediaDir = "media"
	}
	if cfg.Storage.StaticDir == "" {
		cfg.Storage.StaticDir = "static"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.Mail.TokenURL == "" {
		cfg.Mail.TokenURL = "https://login.microsoftonline.com/{tenant_id}/oauth2/v2.0/token"
	}
	if cfg.Mail.GraphURL == "" {
		cfg.Mail.GraphURL = "https://graph.microsoft.com/v1.0"
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = 10 * time.Second
	}
	if cfg.Mail.RatePerMinute == 0 {
		cfg.Mail.RatePerMinute = 30
	}
}

// Validate checks the fields that have no safe default
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.OIDC.Enabled {
		if c.OIDC.Issuer == "" || c.OIDC.ClientID == "" {
			return errors.New("oidc.issuer and oidc.client_id are required when oidc is enabled")
		}
	}
	return nil
}

package visionkit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a visionkit site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Vision Board Kit")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	Addr         string `mapstructure:"addr"`          // Listen address (default ":3000")
	DatabasePath string `mapstructure:"database_path"` // SQLite path (default "data/visionkit.db")
	StaticDir    string `mapstructure:"static_dir"`    // User-owned static assets (default "public")
	IdeasInbox   string `mapstructure:"ideas_inbox"`   // Drop folder for gallery images (default "_inbox/ideas")

	AdminPassword string `mapstructure:"admin_password"` // Required: admin login password
	SessionSecret string `mapstructure:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS

	IdeaCacheTTL   time.Duration `mapstructure:"idea_cache_ttl"`  // Gallery cache TTL (default 5min)
	BoardTTL       time.Duration `mapstructure:"board_ttl"`       // Idle builder boards are dropped after this (default 2h)
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`  // How often idle boards are swept (default 1min)
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"` // Per-file upload limit (default 10MB)
	MaxImageEdge   int           `mapstructure:"max_image_edge"`  // Uploads are downsized to this long edge (default 1600)

	ExportsPerMinute int `mapstructure:"exports_per_minute"` // Per-IP export limit (default 6)
	SignupsPerMinute int `mapstructure:"signups_per_minute"` // Per-IP signup limit (default 5)

	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error (default "info")
	Dev      bool   `mapstructure:"dev"`       // Human-readable logs
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Vision Board Kit"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/visionkit.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.IdeasInbox == "" {
		c.IdeasInbox = "_inbox/ideas"
	}
	if c.IdeaCacheTTL == 0 {
		c.IdeaCacheTTL = 5 * time.Minute
	}
	if c.BoardTTL == 0 {
		c.BoardTTL = 2 * time.Hour
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = time.Minute
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = 10 << 20
	}
	if c.MaxImageEdge == 0 {
		c.MaxImageEdge = 1600
	}
	if c.ExportsPerMinute == 0 {
		c.ExportsPerMinute = 6
	}
	if c.SignupsPerMinute == 0 {
		c.SignupsPerMinute = 5
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c SiteConfig) validate() error {
	var errs []error
	if c.AdminPassword == "" {
		errs = append(errs, errors.New("visionkit: AdminPassword is required"))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("visionkit: SessionSecret is required"))
	}
	return errors.Join(errs...)
}

var configKeys = []string{
	"name", "url", "description", "author",
	"addr", "database_path", "static_dir", "ideas_inbox",
	"admin_password", "session_secret", "cookie_secure",
	"idea_cache_ttl", "board_ttl", "sweep_interval", "max_upload_bytes", "max_image_edge",
	"exports_per_minute", "signups_per_minute",
	"log_level", "dev",
}

// LoadConfig reads an optional YAML file at path and overlays VISIONKIT_*
// environment variables (VISIONKIT_SESSION_SECRET, VISIONKIT_BOARD_TTL, ...).
// Defaults are applied to anything left unset.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("VISIONKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return SiteConfig{}, fmt.Errorf("visionkit: bind %s: %w", key, err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SiteConfig{}, fmt.Errorf("visionkit: read config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("visionkit: decode config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the application logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithStore injects an already opened store, skipping DatabasePath.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

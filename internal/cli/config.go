package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/csese/networkD3/pkg/cache"
	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/network"
	"github.com/csese/networkD3/pkg/widget"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "networkd3"

	// defaultFetchTTL is how long fetched remote inputs stay cached.
	defaultFetchTTL = 24 * time.Hour
)

// =============================================================================
// Config
// =============================================================================

// Config holds the CLI configuration loaded from file and environment.
type Config struct {
	// Cache configures where fetched inputs and rendered artifacts are stored.
	Cache CacheConfig `toml:"cache"`

	// Redis configures the optional Redis cache backend.
	Redis RedisConfig `toml:"redis"`

	// Sizing configures default widget dimensions.
	Sizing SizingConfig `toml:"sizing"`

	// Options seeds renderer options; command-line flags override these.
	Options OptionsConfig `toml:"options"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`

	// TTLHours overrides how long fetched inputs stay cached.
	TTLHours int `toml:"ttl_hours"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SizingConfig holds default widget dimensions in pixels.
// Zero values mean fill the container.
type SizingConfig struct {
	Width   int `toml:"width"`
	Height  int `toml:"height"`
	Padding int `toml:"padding"`
}

// OptionsConfig holds renderer option defaults. Zero values fall through to
// the library defaults for the selected graph type.
type OptionsConfig struct {
	FontSize     float64 `toml:"font_size"`
	FontFamily   string  `toml:"font_family"`
	Opacity      float64 `toml:"opacity"`
	Charge       float64 `toml:"charge"`
	LinkDistance float64 `toml:"link_distance"`
	LinkColour   string  `toml:"link_colour"`
	NodeColour   string  `toml:"node_colour"`
}

// =============================================================================
// Loading
// =============================================================================

// LoadConfig loads configuration from the given TOML file, then applies
// environment overrides. A missing file is not an error; defaults apply.
// A .env file in the working directory is loaded first if present.
func LoadConfig(path string) (Config, error) {
	// Best effort; a missing .env file is fine.
	_ = godotenv.Load()

	cfg := Config{
		Cache: CacheConfig{Backend: "file"},
	}

	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid config file")
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// defaultConfigPath returns the XDG config location (~/.config/networkd3/config.toml).
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// applyEnv overrides config fields from NETWORKD3_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("NETWORKD3_CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("NETWORKD3_CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}
	if v := os.Getenv("NETWORKD3_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("NETWORKD3_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// =============================================================================
// Derived Values
// =============================================================================

// FetchTTL returns the configured cache TTL for fetched inputs.
func (c Config) FetchTTL() time.Duration {
	if c.Cache.TTLHours > 0 {
		return time.Duration(c.Cache.TTLHours) * time.Hour
	}
	return defaultFetchTTL
}

// BaseOptions returns renderer options seeded from the config file.
// Unset fields stay zero so the library defaults for the selected graph
// type still apply.
func (c Config) BaseOptions() network.Options {
	return network.Options{
		FontSize:     c.Options.FontSize,
		FontFamily:   c.Options.FontFamily,
		Opacity:      c.Options.Opacity,
		Charge:       c.Options.Charge,
		LinkDistance: c.Options.LinkDistance,
		LinkColour:   c.Options.LinkColour,
		NodeColour:   c.Options.NodeColour,
	}
}

// DefaultSizing returns the widget sizing from config, falling back to
// container-filling defaults for unset dimensions.
func (c Config) DefaultSizing() widget.Sizing {
	s := widget.DefaultSizing()
	if c.Sizing.Width > 0 {
		s.Width = c.Sizing.Width
	}
	if c.Sizing.Height > 0 {
		s.Height = c.Sizing.Height
	}
	if c.Sizing.Padding > 0 {
		s.Padding = c.Sizing.Padding
	}
	return s
}

// NewCache creates the cache backend named by the configuration.
func (c Config) NewCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		if c.Redis.Addr == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "redis backend requires an address")
		}
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	case "", "file":
		dir := c.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend: %s", c.Cache.Backend)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/networkd3/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

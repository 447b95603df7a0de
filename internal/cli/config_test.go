package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/csese/networkD3/pkg/widget"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "file")
	}
	if got := cfg.FetchTTL(); got != defaultFetchTTL {
		t.Errorf("FetchTTL() = %v, want %v", got, defaultFetchTTL)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[cache]
backend = "none"
ttl_hours = 2

[sizing]
width = 800
height = 600

[options]
font_size = 12
link_colour = "#999"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "none")
	}
	if got := cfg.FetchTTL(); got != 2*time.Hour {
		t.Errorf("FetchTTL() = %v, want 2h", got)
	}

	s := cfg.DefaultSizing()
	if s.Width != 800 || s.Height != 600 {
		t.Errorf("DefaultSizing() = %+v, want 800x600", s)
	}
	if s.Padding != widget.DefaultPadding {
		t.Errorf("Padding = %d, want default %d", s.Padding, widget.DefaultPadding)
	}

	o := cfg.BaseOptions()
	if o.FontSize != 12 {
		t.Errorf("FontSize = %v, want 12", o.FontSize)
	}
	if o.LinkColour != "#999" {
		t.Errorf("LinkColour = %q, want #999", o.LinkColour)
	}
	if o.FontFamily != "" {
		t.Errorf("FontFamily = %q, want unset", o.FontFamily)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with malformed TOML should fail")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("NETWORKD3_CACHE_BACKEND", "none")
	t.Setenv("NETWORKD3_REDIS_ADDR", "localhost:6390")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want env override %q", cfg.Cache.Backend, "none")
	}
	if cfg.Redis.Addr != "localhost:6390" {
		t.Errorf("Redis.Addr = %q, want env override", cfg.Redis.Addr)
	}
}

func TestNewCacheBackends(t *testing.T) {
	t.Run("none backend", func(t *testing.T) {
		cfg := Config{Cache: CacheConfig{Backend: "none"}}
		c, err := cfg.NewCache(context.Background())
		if err != nil {
			t.Fatalf("NewCache() error: %v", err)
		}
		defer c.Close()
	})

	t.Run("file backend with dir", func(t *testing.T) {
		cfg := Config{Cache: CacheConfig{Backend: "file", Dir: t.TempDir()}}
		c, err := cfg.NewCache(context.Background())
		if err != nil {
			t.Fatalf("NewCache() error: %v", err)
		}
		defer c.Close()
	})

	t.Run("redis backend without addr", func(t *testing.T) {
		cfg := Config{Cache: CacheConfig{Backend: "redis"}}
		if _, err := cfg.NewCache(context.Background()); err == nil {
			t.Error("NewCache() without redis addr should fail")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := Config{Cache: CacheConfig{Backend: "bogus"}}
		if _, err := cfg.NewCache(context.Background()); err == nil {
			t.Error("NewCache() with unknown backend should fail")
		}
	})
}

func TestCacheDir(t *testing.T) {
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestCacheDirXDGOverride(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir() = %q, want XDG-based path", dir)
	}
}

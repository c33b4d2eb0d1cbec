// Package config loads cinedex settings from a TOML file, a .env file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Cache backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Environment variables read by [Config.ApplyEnv].
const (
	EnvAPIURL       = "CINEDEX_API_URL"
	EnvPublicAPIURL = "PUBLIC_API_URL" // accepted for compatibility with web frontends
	EnvCache        = "CINEDEX_CACHE"
	EnvRedisAddr    = "CINEDEX_REDIS_ADDR"
	EnvRedisDB      = "CINEDEX_REDIS_DB"
	EnvLogLevel     = "CINEDEX_LOG_LEVEL"
)

// Config is the complete runtime configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
}

// APIConfig points at the upstream catalog API.
type APIConfig struct {
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
}

// CacheConfig selects the response cache.
type CacheConfig struct {
	Backend string        `toml:"backend"` // memory, redis or none
	TTL     time.Duration `toml:"ttl"`
	Redis   RedisConfig   `toml:"redis"`
}

// RedisConfig is used when Backend is "redis".
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// ServerConfig configures `cinedex serve`.
type ServerConfig struct {
	Addr   string `toml:"addr"`
	Static string `toml:"static"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Timeout: 60 * time.Second,
		},
		Cache: CacheConfig{
			Backend: BackendMemory,
			TTL:     30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/cinedex/config.toml (or the
// platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cinedex", "config.toml")
}

// Load builds the configuration from defaults, the TOML file at path,
// a .env file in the working directory and the environment.
//
// An empty path reads [DefaultPath] if it exists. An explicit path that
// does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges the TOML file at path into c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := toml.Decode(string(data), c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv exports the variables in the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides c with values from getenv. CINEDEX_API_URL wins over
// PUBLIC_API_URL.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPublicAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv(EnvCache); v != "" {
		c.Cache.Backend = strings.ToLower(v)
	}
	if v := getenv(EnvRedisAddr); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		c.Cache.Redis.DB = db
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendMemory, BackendNone:
	case BackendRedis:
		if c.Cache.Redis.Addr == "" {
			return errors.New("cache.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache backend %q (want memory, redis or none)", c.Cache.Backend)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", c.API.Timeout)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	return nil
}

// Package config loads the mosaic configuration file.
//
// The file is TOML and every key is optional:
//
//	[constraints]
//	min_color_area_pct = 0.5
//	max_background_pct = 60
//	max_attempts = 6
//
//	[sampler]
//	resolution = 350
//
//	[selector]
//	mode = "bag"
//
//	[cache]
//	backend = "file"
//	ttl = "168h"
//
//	[server]
//	addr = ":8080"
//
// Without --config the file is read from $XDG_CONFIG_HOME/mosaic/config.toml
// (or ~/.config/mosaic/config.toml). A missing file yields [Default].
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/cache"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/constraints"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// AppName names the configuration and cache directories.
const AppName = "mosaic"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete configuration.
type Config struct {
	Constraints constraints.Constraints `toml:"constraints"`
	Sampler     Sampler                 `toml:"sampler"`
	Selector    Selector                `toml:"selector"`
	Cache       Cache                   `toml:"cache"`
	Server      Server                  `toml:"server"`
}

// Sampler configures area measurement.
type Sampler struct {
	// Resolution is the side of the square sampling grid.
	Resolution int `toml:"resolution"`

	// Workers caps concurrently sampled rows. Zero uses GOMAXPROCS.
	Workers int `toml:"workers"`
}

// Selector configures style selection.
type Selector struct {
	Mode string `toml:"mode"`
}

// Cache configures the measurement and artifact cache.
type Cache struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	TTL           time.Duration `toml:"ttl"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Constraints: constraints.Default(),
		Sampler:     Sampler{Resolution: sample.DefaultResolution},
		Selector:    Selector{Mode: layout.ModeBag},
		Cache: Cache{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       cache.TTLMeasurement,
		},
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Load reads the file at path over the defaults. An empty path means
// [DefaultPath]; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

// Parse decodes TOML data into cfg, keeping values the data does not set.
// Unknown keys are rejected so that typos do not pass silently.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var errs errors.ValidationErrors
		for _, k := range undecoded {
			errs.Add(k.String(), "unknown key")
		}
		return errs
	}
	return nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Constraints.Validate(); err != nil {
		return err
	}

	var errs errors.ValidationErrors
	errors.ValidatePositive(&errs, "sampler.resolution", c.Sampler.Resolution)
	if c.Sampler.Workers < 0 {
		errs.Add("sampler.workers", "must not be negative, got %d", c.Sampler.Workers)
	}
	errors.ValidateOneOf(&errs, "selector.mode", c.Selector.Mode,
		layout.ModeBag, layout.ModeUniform)
	errors.ValidateOneOf(&errs, "cache.backend", c.Cache.Backend,
		BackendFile, BackendRedis, BackendNone)
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		errs.Add("cache.redis_addr", "required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		errs.Add("cache.ttl", "must not be negative, got %s", c.Cache.TTL)
	}
	if c.Server.Addr == "" {
		errs.Add("server.addr", "must not be empty")
	}
	return errs.Err(errors.ErrCodeInvalidConfig, "config")
}

// Grid returns the sampling grid.
func (c Config) Grid() sample.Grid {
	return sample.Square(c.Sampler.Resolution)
}

// DefaultPath returns the configuration file location using the XDG
// standard (~/.config/mosaic/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured one, or
// ~/.cache/mosaic following XDG.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

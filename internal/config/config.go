// Package config loads runtime settings from defaults, an optional TOML
// file and the environment, in increasing order of precedence.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	DefaultPort         = 8000
	DefaultRateLimit    = 60
	DefaultMaxBatchSize = 1000
	DefaultChunkSize    = 1000
	DefaultLogLevel     = "info"
)

var validStages = map[string]bool{
	constants.ProdEnvironment:  true,
	constants.DevEnvironment:   true,
	constants.LocalEnvironment: true,
}

// ServerConfig holds the REST server settings
type ServerConfig struct {
	Port int `toml:"port"`
	// APIKeys enables X-API-Key authentication when non-empty
	APIKeys []string `toml:"api_keys"`
	// RateLimit is requests per minute per client; 0 disables limiting
	RateLimit int `toml:"rate_limit"`
}

// BatchConfig holds batch processing settings
type BatchConfig struct {
	// Workers bounds concurrency; 0 means GOMAXPROCS
	Workers   int `toml:"workers"`
	MaxSize   int `toml:"max_size"`
	ChunkSize int `toml:"chunk_size"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Config is the complete runtime configuration
type Config struct {
	Stage  string       `toml:"stage"`
	Server ServerConfig `toml:"server"`
	Batch  BatchConfig  `toml:"batch"`
	Log    LogConfig    `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Stage: constants.LocalEnvironment,
		Server: ServerConfig{
			Port:      DefaultPort,
			RateLimit: DefaultRateLimit,
		},
		Batch: BatchConfig{
			MaxSize:   DefaultMaxBatchSize,
			ChunkSize: DefaultChunkSize,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Load builds the configuration. A .env file in the working directory is
// loaded first when present; path names an optional TOML file.
func Load(path string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	switch {
	case !validStages[c.Stage]:
		return errors.Errorf("invalid stage %q", c.Stage)
	case c.Server.Port < 1 || c.Server.Port > 65535:
		return errors.Errorf("invalid port %d", c.Server.Port)
	case c.Server.RateLimit < 0:
		return errors.Errorf("rate limit must not be negative, got %d", c.Server.RateLimit)
	case c.Batch.MaxSize < 0:
		return errors.Errorf("max batch size must not be negative, got %d", c.Batch.MaxSize)
	case c.Batch.ChunkSize < 1:
		return errors.Errorf("chunk size must be positive, got %d", c.Batch.ChunkSize)
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	if v, ok := lookup("STAGE"); ok && v != "" {
		c.Stage = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("API_KEYS"); ok && strings.TrimSpace(v) != "" {
		c.Server.APIKeys = SplitList(v)
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &c.Server.Port},
		{"RATE_LIMIT", &c.Server.RateLimit},
		{"BATCH_WORKERS", &c.Batch.Workers},
		{"MAX_BATCH_SIZE", &c.Batch.MaxSize},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "invalid %s", e.key)
		}
		*e.dst = n
	}
	return nil
}

// SplitList splits a comma separated list, dropping blank items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// AuthEnabled reports whether API keys are configured.
func (c Config) AuthEnabled() bool {
	return len(c.Server.APIKeys) > 0
}

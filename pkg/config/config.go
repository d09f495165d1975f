package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:hnreader.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=1,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=1,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	HN HNConfig `yaml:"hn" json:"hn" jsonschema:"description=Story list API configuration"`

	Search SearchConfig `yaml:"search" json:"search" jsonschema:"description=Search API configuration"`

	API APIConfig `yaml:"api" json:"api" jsonschema:"description=Shared remote call settings"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Feed pagination settings"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=Local cache retention"`
}

// HNConfig holds the story list API settings
type HNConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url" jsonschema:"default=https://hacker-news.firebaseio.com/v0,description=Story list API base URL"`
}

// SearchConfig holds the search API settings
type SearchConfig struct {
	BaseURL     string `yaml:"base_url" json:"base_url" jsonschema:"default=https://hn.algolia.com/api/v1,description=Search API base URL"`
	Query       string `yaml:"query" json:"query" jsonschema:"default=mobile,description=Search query term"`
	HitsPerPage int    `yaml:"hits_per_page" json:"hits_per_page" jsonschema:"default=30,minimum=1,description=Search page size"`
}

// APIConfig holds timeout, retry and batching settings shared by both remote clients
type APIConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per request timeout"`
	MaxRetries    int           `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,minimum=0,description=Retries after the first failed attempt"`
	RetryDelay    time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=1s,description=Base retry delay, multiplied by the attempt number"`
	BatchSize     int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=20,minimum=1,description=Item fetch batch size"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,minimum=1,description=Maximum concurrent item fetches"`
}

// FeedConfig holds pagination settings of the story feeds
type FeedConfig struct {
	PageSize        int `yaml:"page_size" json:"page_size" jsonschema:"default=30,minimum=10,maximum=100,description=Articles per page"`
	CacheMultiplier int `yaml:"cache_multiplier" json:"cache_multiplier" jsonschema:"default=10,minimum=1,description=Pages worth of ids synced on the first page"`
}

// CacheConfig holds retention of the local cache
type CacheConfig struct {
	RetentionDays int `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,minimum=1,description=Days to keep soft-deleted and stale articles"`
}

// Default returns configuration with all defaults applied
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:hnreader.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 1
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 1
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// remote sources
	if cfg.HN.BaseURL == "" {
		cfg.HN.BaseURL = "https://hacker-news.firebaseio.com/v0"
	}
	if cfg.Search.BaseURL == "" {
		cfg.Search.BaseURL = "https://hn.algolia.com/api/v1"
	}
	if cfg.Search.Query == "" {
		cfg.Search.Query = "mobile"
	}
	if cfg.Search.HitsPerPage == 0 {
		cfg.Search.HitsPerPage = 30
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.API.MaxRetries == 0 {
		cfg.API.MaxRetries = 3
	}
	if cfg.API.RetryDelay == 0 {
		cfg.API.RetryDelay = time.Second
	}
	if cfg.API.BatchSize == 0 {
		cfg.API.BatchSize = 20
	}
	if cfg.API.MaxConcurrent == 0 {
		cfg.API.MaxConcurrent = 5
	}

	// feeds and cache
	if cfg.Feed.PageSize == 0 {
		cfg.Feed.PageSize = 30
	}
	if cfg.Feed.CacheMultiplier == 0 {
		cfg.Feed.CacheMultiplier = 10
	}
	if cfg.Cache.RetentionDays == 0 {
		cfg.Cache.RetentionDays = 30
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.API.Timeout < 100*time.Millisecond {
		return fmt.Errorf("api.timeout must be at least 100ms")
	}
	if cfg.API.MaxRetries < 0 {
		return fmt.Errorf("api.max_retries must be non-negative")
	}
	if cfg.API.BatchSize < 1 {
		return fmt.Errorf("api.batch_size must be at least 1")
	}
	if cfg.API.MaxConcurrent < 1 {
		return fmt.Errorf("api.max_concurrent must be at least 1")
	}
	if cfg.Feed.PageSize < 10 || cfg.Feed.PageSize > 100 {
		return fmt.Errorf("feed.page_size must be between 10 and 100")
	}
	if cfg.Search.HitsPerPage < 1 {
		return fmt.Errorf("search.hits_per_page must be at least 1")
	}
	if cfg.Cache.RetentionDays < 1 {
		return fmt.Errorf("cache.retention_days must be at least 1")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// Retention returns the cache retention period
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Cache.RetentionDays) * 24 * time.Hour
}

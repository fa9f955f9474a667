// Package config defines all configuration structures for the compliance
// engine.  No I/O or parsing logic lives here; only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the rule and
// terminology stores.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the rule cache.
type RedisConfig struct {
	Mode         string        `mapstructure:"mode"` // "standalone" | "cluster"
	Addr         string        `mapstructure:"addr"`
	ClusterAddrs []string      `mapstructure:"cluster_addrs"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// KafkaConfig holds event producer parameters.
type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Acks         string        `mapstructure:"acks"` // "none" | "one" | "all"
	MaxRetries   int           `mapstructure:"max_retries"`
	BatchSize    int           `mapstructure:"batch_size"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// CacheConfig holds read-through cache TTLs.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	RuleTTL  time.Duration `mapstructure:"rule_ttl"`
	TermTTL  time.Duration `mapstructure:"term_ttl"`
	KeyPrefix string       `mapstructure:"key_prefix"`
}

// RuleSourceConfig selects where taboo and transformation rules are loaded
// from.  "postgres" is the production mode; "memory" uses the curated seed
// tables; "yaml" loads a rule file from disk.
type RuleSourceConfig struct {
	Mode      string `mapstructure:"mode"` // "postgres" | "memory" | "yaml"
	RulesFile string `mapstructure:"rules_file"`
}

// TranslationMemoryConfig controls cross-market consistency checking.
type TranslationMemoryConfig struct {
	Enabled            bool    `mapstructure:"enabled"`
	SourceLanguage     string  `mapstructure:"source_language"`
	MinMatchPercentage float64 `mapstructure:"min_match_percentage"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string   `mapstructure:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the engine.  Every
// infrastructure component reads its settings from the relevant sub-struct.
type Config struct {
	Server            ServerConfig            `mapstructure:"server"`
	Database          DatabaseConfig          `mapstructure:"database"`
	Redis             RedisConfig             `mapstructure:"redis"`
	Kafka             KafkaConfig             `mapstructure:"kafka"`
	Cache             CacheConfig             `mapstructure:"cache"`
	RuleSource        RuleSourceConfig        `mapstructure:"rule_source"`
	TranslationMemory TranslationMemoryConfig `mapstructure:"translation_memory"`
	Log               LogConfig               `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Rule source
	switch c.RuleSource.Mode {
	case "postgres", "memory", "yaml":
	default:
		return fmt.Errorf("config: rule_source.mode %q is invalid; expected postgres|memory|yaml", c.RuleSource.Mode)
	}
	if c.RuleSource.Mode == "yaml" && c.RuleSource.RulesFile == "" {
		return fmt.Errorf("config: rule_source.rules_file is required when rule_source.mode is yaml")
	}

	// Database, only when it is actually used.
	if c.RuleSource.Mode == "postgres" {
		if c.Database.Host == "" {
			return fmt.Errorf("config: database.host is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("config: database.user is required")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("config: database.db_name is required")
		}
		if c.Database.MaxConns < 1 {
			return fmt.Errorf("config: database.max_conns must be >= 1, got %d", c.Database.MaxConns)
		}
	}

	// Redis, only when caching is on.
	if c.Cache.Enabled {
		if c.Redis.Addr == "" && len(c.Redis.ClusterAddrs) == 0 {
			return fmt.Errorf("config: redis.addr is required when cache is enabled")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("config: redis.db must be >= 0, got %d", c.Redis.DB)
		}
	}

	// Kafka, only when event publishing is on.
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers must contain at least one broker address")
	}

	// Translation memory
	if c.TranslationMemory.Enabled {
		if c.TranslationMemory.MinMatchPercentage < 0 || c.TranslationMemory.MinMatchPercentage > 100 {
			return fmt.Errorf("config: translation_memory.min_match_percentage %.1f is out of range [0, 100]",
				c.TranslationMemory.MinMatchPercentage)
		}
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a minimal Config that passes validation after defaults.
func validConfig() *Config {
	cfg := &Config{}
	cfg.RuleSource.Mode = "memory"
	cfg.Database.User = "compliance"
	ApplyDefaults(cfg)
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"server port out of range", func(c *Config) { c.Server.Port = 0 }},
		{"server mode unknown", func(c *Config) { c.Server.Mode = "verbose" }},
		{"rule source unknown", func(c *Config) { c.RuleSource.Mode = "csv" }},
		{"yaml mode without file", func(c *Config) {
			c.RuleSource.Mode = "yaml"
			c.RuleSource.RulesFile = ""
		}},
		{"postgres mode without user", func(c *Config) {
			c.RuleSource.Mode = "postgres"
			c.Database.User = ""
		}},
		{"cache enabled without redis addr", func(c *Config) {
			c.Cache.Enabled = true
			c.Redis.Addr = ""
			c.Redis.ClusterAddrs = nil
		}},
		{"kafka enabled without brokers", func(c *Config) {
			c.Kafka.Enabled = true
			c.Kafka.Brokers = nil
		}},
		{"tm match percentage out of range", func(c *Config) {
			c.TranslationMemory.Enabled = true
			c.TranslationMemory.MinMatchPercentage = 120
		}},
		{"log level unknown", func(c *Config) { c.Log.Level = "trace" }},
		{"log format unknown", func(c *Config) { c.Log.Format = "text" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateSkipsUnusedSections(t *testing.T) {
	// Database settings are not validated when rules come from memory.
	cfg := validConfig()
	cfg.RuleSource.Mode = "memory"
	cfg.Database.User = ""
	assert.NoError(t, cfg.Validate())

	// Redis settings are not validated when caching is off.
	cfg = validConfig()
	cfg.Cache.Enabled = false
	cfg.Redis.Addr = ""
	cfg.Redis.ClusterAddrs = nil
	assert.NoError(t, cfg.Validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultServerMode, cfg.Server.Mode)
	assert.Equal(t, DefaultDBMaxConns, cfg.Database.MaxConns)
	assert.Equal(t, DefaultRedisAddr, cfg.Redis.Addr)
	assert.Equal(t, []string{DefaultKafkaBroker}, cfg.Kafka.Brokers)
	assert.Equal(t, DefaultRuleTTL, cfg.Cache.RuleTTL)
	assert.Equal(t, DefaultRuleSourceMode, cfg.RuleSource.Mode)
	assert.Equal(t, DefaultTMMinMatch, cfg.TranslationMemory.MinMatchPercentage)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, []string{"stdout"}, cfg.Log.OutputPaths)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9090
	cfg.Log.Level = "debug"
	ApplyDefaults(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyDefaultsNilIsSafe(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}

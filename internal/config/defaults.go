package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort      = 8080
	DefaultServerMode      = "release"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultDBHost        = "localhost"
	DefaultDBPort        = 5432
	DefaultDBName        = "compliance"
	DefaultDBSSLMode     = "disable"
	DefaultDBMaxConns    = 25
	DefaultMigrationPath = "migrations"

	DefaultRedisMode = "standalone"
	DefaultRedisAddr = "localhost:6379"

	DefaultKafkaBroker = "localhost:9092"
	DefaultKafkaAcks   = "all"

	DefaultRuleTTL        = 15 * time.Minute
	DefaultTermTTL        = 15 * time.Minute
	DefaultCacheKeyPrefix = "mlr:"

	DefaultRuleSourceMode = "postgres"

	DefaultTMSourceLanguage = "en"
	DefaultTMMinMatch       = 85.0

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ───────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// ── Database ─────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = DefaultDBSSLMode
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = DefaultMigrationPath
	}

	// ── Redis ────────────────────────────────────────────────────────────────
	if cfg.Redis.Mode == "" {
		cfg.Redis.Mode = DefaultRedisMode
	}
	if cfg.Redis.Addr == "" && len(cfg.Redis.ClusterAddrs) == 0 {
		cfg.Redis.Addr = DefaultRedisAddr
	}

	// ── Kafka ────────────────────────────────────────────────────────────────
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.Acks == "" {
		cfg.Kafka.Acks = DefaultKafkaAcks
	}

	// ── Cache ────────────────────────────────────────────────────────────────
	if cfg.Cache.RuleTTL == 0 {
		cfg.Cache.RuleTTL = DefaultRuleTTL
	}
	if cfg.Cache.TermTTL == 0 {
		cfg.Cache.TermTTL = DefaultTermTTL
	}
	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = DefaultCacheKeyPrefix
	}

	// ── Rule source ──────────────────────────────────────────────────────────
	if cfg.RuleSource.Mode == "" {
		cfg.RuleSource.Mode = DefaultRuleSourceMode
	}

	// ── Translation memory ───────────────────────────────────────────────────
	if cfg.TranslationMemory.SourceLanguage == "" {
		cfg.TranslationMemory.SourceLanguage = DefaultTMSourceLanguage
	}
	if cfg.TranslationMemory.MinMatchPercentage == 0 {
		cfg.TranslationMemory.MinMatchPercentage = DefaultTMMinMatch
	}

	// ── Log ──────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
	if len(cfg.Log.ErrorOutputPaths) == 0 {
		cfg.Log.ErrorOutputPaths = []string{"stderr"}
	}
}

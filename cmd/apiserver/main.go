// The apiserver binary runs the compliance engine's HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/config"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	domainterm "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/database/memory"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/database/postgres"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/database/postgres/repositories"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/database/redis"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/messaging/kafka"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/prometheus"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/intelligence/termextract"
	httpserver "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/interfaces/http"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/interfaces/http/handlers"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: environment only)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: cfg.Log.ErrorOutputPaths,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Rule and terminology stores ──────────────────────────────────────────
	var (
		ruleRepo rules.Repository
		termRepo domainterm.Repository
		checkers []handlers.NamedChecker
	)
	switch cfg.RuleSource.Mode {
	case "postgres":
		pgCfg := postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			Database:        cfg.Database.DBName,
			Username:        cfg.Database.User,
			Password:        cfg.Database.Password,
			SSLMode:         cfg.Database.SSLMode,
			MaxConns:        int32(cfg.Database.MaxConns),
			MinConns:        int32(cfg.Database.MinConns),
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		}
		pool, err := postgres.NewPool(ctx, pgCfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		if cfg.Database.MigrationPath != "" {
			if err := postgres.RunMigrations(pgCfg.DSN(), cfg.Database.MigrationPath); err != nil {
				return err
			}
		}

		ruleRepo = repositories.NewRuleRepository(pool, logger)
		termRepo = repositories.NewTerminologyRepository(pool, logger)
		checkers = append(checkers, handlers.NamedChecker{Name: "postgres", Checker: pool})

	case "yaml":
		ruleRepo, termRepo, err = memory.LoadRulesFromYAML(cfg.RuleSource.RulesFile)
		if err != nil {
			return err
		}

	default: // "memory"
		ruleRepo = memory.NewSeededRuleRepository()
		termRepo = memory.NewSeededTerminologyRepository()
	}

	// ── Read-through cache ───────────────────────────────────────────────────
	if cfg.Cache.Enabled {
		client, err := redis.NewClient(redis.Config{
			Mode:         cfg.Redis.Mode,
			Addr:         cfg.Redis.Addr,
			ClusterAddrs: cfg.Redis.ClusterAddrs,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		cache := redis.NewCache(client, logger, redis.WithPrefix(cfg.Cache.KeyPrefix))
		ruleRepo = redis.NewCachedRuleRepository(ruleRepo, cache, cfg.Cache.RuleTTL, logger)
		termRepo = redis.NewCachedTerminologyRepository(termRepo, cache, cfg.Cache.TermTTL, logger)
		checkers = append(checkers, handlers.NamedChecker{Name: "redis", Checker: client})
	}

	// ── Event publishing ─────────────────────────────────────────────────────
	var publisher validation.EventPublisher = validation.NopPublisher{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Acks:         cfg.Kafka.Acks,
			MaxRetries:   cfg.Kafka.MaxRetries,
			BatchSize:    cfg.Kafka.BatchSize,
			BatchTimeout: cfg.Kafka.BatchTimeout,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logger)
		if err != nil {
			return err
		}
		defer producer.Close()
		publisher = kafka.NewPublisher(producer, logger)
	}

	// ── Services and HTTP surface ────────────────────────────────────────────
	metrics := prometheus.NewMetrics()

	validationSvc := validation.NewService(
		ruleRepo, rules.NewStaticGuidelineProvider(), publisher, metrics, logger)

	var tm domainterm.TranslationMemory
	// The hosted translation memory is not wired yet; consistency checking
	// activates as soon as an implementation is injected here.
	terminologySvc := terminology.NewService(termRepo, termextract.NewExtractor(), tm, logger)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		ValidationHandler:  handlers.NewValidationHandler(validationSvc),
		PlaybookHandler:    handlers.NewPlaybookHandler(validationSvc),
		TerminologyHandler: handlers.NewTerminologyHandler(terminologySvc),
		MarketHandler:      handlers.NewMarketHandler(validationSvc),
		HealthHandler:      handlers.NewHealthHandler(checkers...),
		MetricsHandler:     metrics.Handler(),
		MetricsRecorder:    metrics,
		Logger:             logger,
		Mode:               ginMode(cfg.Server.Mode),
	})

	server := httpserver.NewServer(httpserver.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, router, logger)

	if configPath != "" {
		config.Watch(configPath, func(*config.Config) {
			logger.Info("configuration file changed; restart to apply non-reloadable settings")
		})
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	return server.Stop(context.Background())
}

func ginMode(serverMode string) string {
	switch serverMode {
	case "debug", "test":
		return serverMode
	default:
		return "release"
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"toolbox/internal/gateway/adapters/cache"
	"toolbox/internal/gateway/adapters/rewriter"
	httpServer "toolbox/internal/gateway/app/http"
	"toolbox/internal/gateway/app/http/tools"
	"toolbox/internal/gateway/app/services"
	"toolbox/internal/gateway/config"
	"toolbox/internal/gateway/metrics"
	portCache "toolbox/internal/gateway/ports/cache"
	portRewriter "toolbox/internal/gateway/ports/rewriter"
	"toolbox/internal/gateway/resilience"
	"toolbox/pkg/logger"
	"toolbox/pkg/passgen"
	"toolbox/pkg/random"
	"toolbox/pkg/rewrite"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "GATEWAY_LOGGER_MODE"
	EnvLoggerLevel = "GATEWAY_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrLoadRewriteTables    = "failed to load rewrite tables"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "gateway service started"
	LogServiceShutdownDone = "gateway service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingCache        = "closing cache"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "redis is disabled, results are not cached"
	LogInitRewriter        = "initializing rewriter"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"

	metricsNamespace = "toolbox"
	rewriterName     = "rewriter"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		var collector *metrics.Collector
		if cfg.Metrics.Enabled {
			collector = metrics.NewCollector(metricsNamespace)
		}

		log.Info(ctx, LogInitCache)
		var resultStore portCache.Cache = cache.NewNoop()
		if cfg.Redis.Enabled {
			redisCache, err := cache.NewRedisCache(ctx, &cfg.Redis)
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				exitCode = 1
				return
			}
			resultStore = redisCache
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitRewriter, zap.Bool("remote", cfg.Rewriter.Remote()))
		tables := rewrite.DefaultTables()
		if cfg.Rewriter.TablesPath != "" {
			tables, err = rewrite.LoadTablesFile(cfg.Rewriter.TablesPath)
			if err != nil {
				log.Error(ctx, ErrLoadRewriteTables, zap.Error(err))
				exitCode = 1
				return
			}
		}

		var (
			remote portRewriter.Client
			policy *resilience.Policy
		)
		if cfg.Rewriter.Remote() {
			remote = rewriter.NewClient(&cfg.Rewriter)
			policy = newRewritePolicy(&cfg.Rewriter)
		}

		log.Info(ctx, LogInitServices)
		results := services.NewResultCache(resultStore, cfg.Redis.DefaultTTL, collector)
		svc := tools.Services{
			Conversion: services.NewConversionService(results, collector),
			Roman:      services.NewRomanService(results, collector),
			Generator:  services.NewGeneratorService(random.Default(), collector),
			Password:   services.NewPasswordService(passgen.NewGenerator(random.Crypto()), collector),
			Rewrite:    services.NewRewriteService(remote, policy, rewrite.New(tables, random.Default()), collector),
		}

		log.Info(ctx, LogInitHTTPServer)
		app := httpServer.NewApp(&cfg.HTTP)
		httpServer.SetupRouter(app, svc, collector, &cfg.Metrics)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		err = serve(ctx,
			func() error { return app.Listen(cfg.HTTP.GetAddress()) },
			cfg.Shutdown.GetTimeout(),
			// Кэш закрывается после того, как HTTP сервер завершил запросы.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				if err := app.ShutdownWithContext(ctx); err != nil {
					return fmt.Errorf("%s: %w", LogStoppingHTTP, err)
				}
				log.Info(ctx, LogClosingCache)
				return resultStore.Close()
			},
		)
		if err != nil {
			log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newRewritePolicy собирает политику отказоустойчивости удаленного сервиса.
func newRewritePolicy(cfg *config.RewriterConfig) *resilience.Policy {
	cb := resilience.DefaultCircuitBreakerConfig()
	cb.ErrorThreshold = cfg.ErrorThreshold
	cb.Timeout = cfg.OpenTimeout

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.MaxAttempts
	retry.InitialBackoff = cfg.InitialBackoff

	return resilience.NewPolicy(rewriterName, cb, retry)
}

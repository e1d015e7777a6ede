// Package config содержит конфигурацию для Gateway сервиса.
package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"toolbox/pkg/config"
	"toolbox/pkg/logger"
)

// EnvConfigPath - переменная окружения с путем к YAML файлу конфигурации.
const EnvConfigPath = "GATEWAY_CONFIG_PATH"

// Константы ошибок и сообщений для конфигурации.
const (
	LogConfigLoaded     = "gateway configuration loaded"
	ErrFailedLoadConfig = "failed to load gateway configuration"

	serviceName = "gateway"
)

// Config представляет полную конфигурацию Gateway.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Redis    RedisConfig    `yaml:"redis"`
	Rewriter RewriterConfig `yaml:"rewriter"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// Load загружает конфигурацию из файла GATEWAY_CONFIG_PATH, если он задан,
// и из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	cfg, err := config.Load[Config](ctx, serviceName, os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("shutdown_timeout", cfg.Shutdown.GetTimeout()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.Duration("redis_default_ttl", cfg.Redis.DefaultTTL),
		zap.Bool("rewriter_remote", cfg.Rewriter.Remote()),
		zap.Bool("metrics_enabled", cfg.Metrics.Enabled))

	return cfg, nil
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == string(logger.Development) {
		return logger.Development
	}
	return logger.Production
}

package config

// MetricsConfig представляет настройки экспорта метрик Prometheus.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"GATEWAY_METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path" env:"GATEWAY_METRICS_PATH" env-default:"/metrics"`
}

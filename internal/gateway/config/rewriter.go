package config

import "time"

// RewriterConfig представляет настройки удаленного сервиса генерации текста
// и локальных таблиц замен.
type RewriterConfig struct {
	Endpoint   string        `yaml:"endpoint" env:"GATEWAY_REWRITER_ENDPOINT" env-default:""`
	APIKey     string        `yaml:"api_key" env:"GATEWAY_REWRITER_API_KEY" env-default:""`
	Timeout    time.Duration `yaml:"timeout" env:"GATEWAY_REWRITER_TIMEOUT" env-default:"10s"`
	TablesPath string        `yaml:"tables_path" env:"GATEWAY_REWRITER_TABLES_PATH" env-default:""`

	MaxAttempts    int           `yaml:"max_attempts" env:"GATEWAY_REWRITER_MAX_ATTEMPTS" env-default:"2"`
	InitialBackoff time.Duration `yaml:"initial_backoff" env:"GATEWAY_REWRITER_INITIAL_BACKOFF" env-default:"200ms"`
	ErrorThreshold int           `yaml:"error_threshold" env:"GATEWAY_REWRITER_ERROR_THRESHOLD" env-default:"5"`
	OpenTimeout    time.Duration `yaml:"open_timeout" env:"GATEWAY_REWRITER_OPEN_TIMEOUT" env-default:"30s"`
}

// Remote сообщает, настроен ли удаленный сервис.
func (c *RewriterConfig) Remote() bool {
	return c.Endpoint != ""
}

package config

import "time"

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"GATEWAY_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"GATEWAY_LOGGER_MODE" env-default:"production"`
}

// ShutdownConfig задает время на остановку сервера и закрытие соединений.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"GATEWAY_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// GetTimeout возвращает таймаут завершения работы.
func (c *ShutdownConfig) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 5 * time.Second
	}
	return c.Timeout
}

package resilience

import (
	"context"

	"go.uber.org/zap"

	"toolbox/pkg/logger"
)

// LogExecuteOperation - сообщение перед выполнением операции под политикой.
const LogExecuteOperation = "executing operation with resilience"

// Policy объединяет Circuit Breaker и повторные попытки для одного сервиса.
// Повторные попытки выполняются внутри Circuit Breaker, поэтому серия
// неудачных попыток считается одним отказом.
type Policy struct {
	name           string
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewPolicy создает политику отказоустойчивости для сервиса name.
func NewPolicy(name string, cb CircuitBreakerConfig, retry RetryConfig) *Policy {
	return &Policy{
		name:           name,
		circuitBreaker: NewCircuitBreaker(name, cb),
		retry:          NewRetry(name, retry),
	}
}

// State возвращает состояние Circuit Breaker политики.
func (p *Policy) State() CircuitState {
	return p.circuitBreaker.GetState()
}

// Execute выполняет операцию под политикой p и возвращает ее результат.
func Execute[T any](ctx context.Context, p *Policy, operation string, fn func(context.Context) (T, error)) (T, error) {
	logger.Log(ctx).Debug(ctx, LogExecuteOperation,
		zap.String("service", p.name),
		zap.String("operation", operation))

	var result T
	err := p.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		return p.retry.Execute(ctx, func(ctx context.Context) error {
			var err error
			result, err = fn(ctx)
			return err
		})
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

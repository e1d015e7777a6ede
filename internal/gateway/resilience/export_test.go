package resilience

var NewCircuitBreakerWithClock = newCircuitBreaker

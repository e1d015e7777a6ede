package dto

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error     string `json:"error"`
	Formatted string `json:"formatted,omitempty"`
}

// HealthResponse - тело ответа проверки состояния.
type HealthResponse struct {
	Status string `json:"status"`
}

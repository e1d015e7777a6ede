// Package services содержит реализации сервисов Gateway поверх пакетов
// инструментов.
package services

import (
	"errors"

	"toolbox/internal/gateway/metrics"
)

// ErrInvalidInput оборачивает ошибки входных данных инструментов.
var ErrInvalidInput = errors.New("invalid input")

// inputError сохраняет текст исходной ошибки и совпадает с ErrInvalidInput.
type inputError struct {
	err error
}

func (e inputError) Error() string { return e.err.Error() }

func (e inputError) Unwrap() []error { return []error{ErrInvalidInput, e.err} }

func invalidInput(err error) error {
	return inputError{err: err}
}

// observe учитывает исход операции tool и оборачивает ошибку входных данных.
func observe[T any](m *metrics.Collector, tool string, resp T, err error) (T, error) {
	if err != nil {
		m.ToolOperation(tool, metrics.OutcomeInvalid)
		var zero T
		return zero, invalidInput(err)
	}
	m.ToolOperation(tool, metrics.OutcomeSuccess)
	return resp, nil
}

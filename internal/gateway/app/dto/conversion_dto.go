// Package dto содержит объекты запросов и ответов HTTP API.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"toolbox/pkg/units"
)

// ErrValueType возвращается, если value не строка и не число.
var ErrValueType = errors.New("value must be a string or a number")

// NumericString принимает значение строкой или числом JSON и хранит его текст.
// Нечисловая строка сохраняется как есть и отклоняется конвертером.
type NumericString string

// UnmarshalJSON реализует json.Unmarshaler.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return ErrValueType
	}
	*n = NumericString(num)
	return nil
}

// ConvertRequest представляет запрос на конвертацию значения.
type ConvertRequest struct {
	Value    NumericString `json:"value" validate:"required,max=64"`
	From     string        `json:"from" validate:"required,max=64"`
	To       string        `json:"to" validate:"required,max=64"`
	Category string        `json:"category" validate:"required,oneof=length weight volume area temperature power time"`
}

// ConvertResponse представляет результат конвертации.
type ConvertResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Formula   string  `json:"formula"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Category  string  `json:"category"`
}

// CategoryUnits - единицы одной категории.
type CategoryUnits struct {
	Category units.Category `json:"category"`
	Units    []units.Unit   `json:"units"`
}

// UnitsResponse - таблицы единиц всех категорий.
type UnitsResponse struct {
	Categories []CategoryUnits `json:"categories"`
}

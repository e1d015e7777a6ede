package roman

import (
	"fmt"
	"strings"
	"time"
)

const dateSeparator = "."

// Date - дата, каждое поле которой кодируется отдельно.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// EncodeDate возвращает дату в виде "{день}.{месяц}.{год}".
// Соответствие дня конкретному месяцу не проверяется.
func EncodeDate(day, month, year int) (string, error) {
	if err := validate(day, month); err != nil {
		return "", err
	}

	parts := make([]string, 0, 3)
	for _, n := range []int{day, month, year} {
		numeral, err := ToRoman(n)
		if err != nil {
			return "", err
		}
		parts = append(parts, numeral)
	}
	return strings.Join(parts, dateSeparator), nil
}

// EncodeTime кодирует календарную дату t.
func EncodeTime(t time.Time) (string, error) {
	return EncodeDate(t.Day(), int(t.Month()), t.Year())
}

// DecodeDate разбирает строку вида "XXX.IV.MMXXIII".
func DecodeDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), dateSeparator)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: expected 3 parts separated by %q, got %d", ErrInvalidDate, dateSeparator, len(parts))
	}

	values := make([]int, 3)
	for i, part := range parts {
		n, err := FromRoman(part)
		if err != nil {
			return Date{}, fmt.Errorf("%w: part %d: %w", ErrInvalidDate, i+1, err)
		}
		values[i] = n
	}

	if err := validate(values[0], values[1]); err != nil {
		return Date{}, err
	}
	return Date{Day: values[0], Month: values[1], Year: values[2]}, nil
}

func validate(day, month int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: %d", ErrDayOutOfRange, day)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
	}
	return nil
}

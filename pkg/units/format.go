package units

import (
	"math"
	"strconv"
	"strings"
)

// InvalidInput - текст результата для нечислового или бесконечного значения.
const InvalidInput = "Invalid input"

const (
	expLowerBound = 0.01
	expUpperBound = 1e6
	expDigits     = 6
	significant   = 7
)

// Format форматирует результат конвертации: значения по модулю меньше 0.01
// (кроме нуля) или не меньше 1e6 выводятся в экспоненциальной записи с шестью
// знаками после точки, остальные - с семью значащими цифрами без хвостовых нулей.
func Format(v float64) string {
	if !isFinite(v) {
		return InvalidInput
	}
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs < expLowerBound || abs >= expUpperBound {
		return exponential(v)
	}

	decimals := significant - 1 - int(math.Floor(math.Log10(abs)))
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// exponential возвращает запись вида 1.234567e+6.
func exponential(v float64) string {
	s := strconv.FormatFloat(v, 'e', expDigits, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// ParseValue разбирает введенное пользователем число.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFinite(v) {
		return 0, ErrInvalidValue
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

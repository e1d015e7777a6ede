// Package roman кодирует целые числа и даты римскими цифрами.
package roman

import (
	"errors"
	"fmt"
	"strings"
)

// Границы представимых чисел.
const (
	MinValue = 1
	MaxValue = 3999
)

// Ошибки кодека.
var (
	ErrOutOfRange      = errors.New("number out of range 1..3999")
	ErrInvalidNumeral  = errors.New("invalid roman numeral")
	ErrInvalidDate     = errors.New("invalid roman date")
	ErrDayOutOfRange   = errors.New("day out of range 1..31")
	ErrMonthOutOfRange = errors.New("month out of range 1..12")
)

type symbol struct {
	value   int
	numeral string
}

var table = []symbol{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

var digits = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// ToRoman кодирует n жадным вычитанием наибольшего значения таблицы.
func ToRoman(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}

	var b strings.Builder
	for _, s := range table {
		for n >= s.value {
			b.WriteString(s.numeral)
			n -= s.value
		}
	}
	return b.String(), nil
}

// FromRoman декодирует римское число. Регистр и пробелы по краям
// игнорируются; неканоническая запись (IIII, IC) считается ошибкой.
func FromRoman(s string) (int, error) {
	numeral := strings.ToUpper(strings.TrimSpace(s))
	if numeral == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNumeral)
	}

	total := 0
	for i := 0; i < len(numeral); {
		current, ok := digits[numeral[i]]
		if !ok {
			return 0, fmt.Errorf("%w: unexpected symbol %q in %q", ErrInvalidNumeral, numeral[i], s)
		}
		if i+1 < len(numeral) {
			next, ok := digits[numeral[i+1]]
			if !ok {
				return 0, fmt.Errorf("%w: unexpected symbol %q in %q", ErrInvalidNumeral, numeral[i+1], s)
			}
			if current < next {
				total += next - current
				i += 2
				continue
			}
		}
		total += current
		i++
	}

	canonical, err := ToRoman(total)
	if err != nil || canonical != numeral {
		return 0, fmt.Errorf("%w: %q is not in canonical form", ErrInvalidNumeral, s)
	}
	return total, nil
}

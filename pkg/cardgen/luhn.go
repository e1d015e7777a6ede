package cardgen

import "strings"

// CheckDigit вычисляет контрольную цифру Луна для partial - номера без
// последней цифры. Удваивается каждая вторая цифра, начиная с крайней правой.
func CheckDigit(partial string) int {
	sum := 0
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// Valid проверяет контрольную сумму Луна. Пробелы и дефисы игнорируются.
func Valid(number string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) < 2 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	last := int(digits[len(digits)-1] - '0')
	return CheckDigit(digits[:len(digits)-1]) == last
}

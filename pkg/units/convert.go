package units

import (
	"fmt"
	"math"
	"strings"
)

// Result - результат конвертации.
type Result struct {
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted"`
	Formula        string  `json:"formula"`
}

func invalid(err error) (Result, error) {
	return Result{FormattedValue: InvalidInput}, err
}

// Convert переводит value из единицы from в единицу to внутри category.
// Единицы задаются сокращением или названием. Для нечислового значения
// возвращается результат "Invalid input" и ErrInvalidValue.
func Convert(value float64, from, to string, category Category) (Result, error) {
	if !isFinite(value) {
		return invalid(ErrInvalidValue)
	}

	fromUnit, err := Lookup(category, from)
	if err != nil {
		return invalid(err)
	}
	toUnit, err := Lookup(category, to)
	if err != nil {
		return invalid(err)
	}

	return ConvertUnits(value, fromUnit, toUnit)
}

// ConvertUnits переводит value между уже найденными единицами одной категории.
func ConvertUnits(value float64, from, to Unit) (Result, error) {
	if !isFinite(value) {
		return invalid(ErrInvalidValue)
	}

	var (
		result float64
		steps  []string
		err    error
	)

	switch {
	case isTemperature(from) || isTemperature(to):
		result, steps = convertTemperature(value, from, to)
	case from.scale == decibelMilliwatt || to.scale == decibelMilliwatt:
		result, steps, err = convertPower(value, from, to)
	default:
		result, steps = convertLinear(value, from, to)
	}
	if err != nil {
		return invalid(err)
	}
	if !isFinite(result) {
		return invalid(fmt.Errorf("%w: result overflow", ErrOutOfDomain))
	}

	return Result{
		Value:          result,
		FormattedValue: Format(result),
		Formula:        strings.Join(steps, "; "),
	}, nil
}

func convertLinear(value float64, from, to Unit) (float64, []string) {
	ratio := from.ToBase / to.ToBase
	result := value * from.ToBase / to.ToBase
	return result, []string{
		fmt.Sprintf("%s %s × %s = %s %s",
			Format(value), from.Abbreviation, Format(ratio), Format(result), to.Abbreviation),
	}
}

func isTemperature(u Unit) bool {
	return u.scale == celsius || u.scale == fahrenheit || u.scale == kelvin
}

func symbol(u Unit) string {
	switch u.scale {
	case celsius:
		return "°C"
	case fahrenheit:
		return "°F"
	default:
		return u.Abbreviation
	}
}

// convertTemperature пересчитывает через градусы Цельсия.
func convertTemperature(value float64, from, to Unit) (float64, []string) {
	steps := make([]string, 0, 2)

	c := value
	switch from.scale {
	case fahrenheit:
		c = (value - 32) * 5 / 9
		steps = append(steps, fmt.Sprintf("(%s °F − 32) × 5/9 = %s °C", Format(value), Format(c)))
	case kelvin:
		c = value - 273.15
		steps = append(steps, fmt.Sprintf("%s K − 273.15 = %s °C", Format(value), Format(c)))
	}

	result := c
	switch to.scale {
	case fahrenheit:
		result = c*9/5 + 32
		steps = append(steps, fmt.Sprintf("%s °C × 9/5 + 32 = %s °F", Format(c), Format(result)))
	case kelvin:
		result = c + 273.15
		steps = append(steps, fmt.Sprintf("%s °C + 273.15 = %s K", Format(c), Format(result)))
	}

	if len(steps) == 0 {
		steps = append(steps, fmt.Sprintf("%s %s = %s %s",
			Format(value), symbol(from), Format(result), symbol(to)))
	}
	return result, steps
}

// convertPower пересчитывает dBm через ватты.
func convertPower(value float64, from, to Unit) (float64, []string, error) {
	steps := make([]string, 0, 2)

	var watts float64
	if from.scale == decibelMilliwatt {
		watts = math.Pow(10, (value-30)/10)
		steps = append(steps, fmt.Sprintf("10^((%s dBm − 30) / 10) = %s W", Format(value), Format(watts)))
	} else {
		watts = value * from.ToBase
		if from.ToBase != 1 {
			steps = append(steps, fmt.Sprintf("%s %s × %s = %s W",
				Format(value), from.Abbreviation, Format(from.ToBase), Format(watts)))
		}
	}

	if to.scale == decibelMilliwatt {
		if from.scale == decibelMilliwatt {
			return value, []string{fmt.Sprintf("%s dBm = %s dBm", Format(value), Format(value))}, nil
		}
		if watts <= 0 {
			return 0, nil, fmt.Errorf("%w: %s W cannot be expressed in dBm", ErrOutOfDomain, Format(watts))
		}
		result := 10*math.Log10(watts) + 30
		steps = append(steps, fmt.Sprintf("10 × log10(%s W) + 30 = %s dBm", Format(watts), Format(result)))
		return result, steps, nil
	}

	result := watts / to.ToBase
	if to.ToBase != 1 {
		steps = append(steps, fmt.Sprintf("%s W ÷ %s = %s %s",
			Format(watts), Format(to.ToBase), Format(result), to.Abbreviation))
	}
	return result, steps, nil
}

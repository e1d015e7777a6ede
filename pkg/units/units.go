// Package units конвертирует значения между единицами измерения одной категории.
//
// Линейные единицы хранят множитель ToBase: сколько базовых единиц категории
// содержится в одной единице (1 km = 1000 m). Температура и dBm пересчитываются
// по отдельным формулам через градусы Цельсия и ватты соответственно.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// Category - категория единиц измерения.
type Category string

// Поддерживаемые категории.
const (
	Length      Category = "length"
	Weight      Category = "weight"
	Volume      Category = "volume"
	Area        Category = "area"
	Temperature Category = "temperature"
	Power       Category = "power"
	Time        Category = "time"
)

// Ошибки конвертации.
var (
	ErrInvalidValue    = errors.New("invalid input")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrOutOfDomain     = errors.New("value outside of the unit domain")
)

type scale int

const (
	linear scale = iota
	celsius
	fahrenheit
	kelvin
	decibelMilliwatt
)

// Unit описывает единицу измерения.
type Unit struct {
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	ToBase       float64 `json:"to_base,omitempty"`
	scale        scale
}

// Linear сообщает, пересчитывается ли единица одним множителем.
func (u Unit) Linear() bool {
	return u.scale == linear
}

func lin(name, abbr string, toBase float64) Unit {
	return Unit{Name: name, Abbreviation: abbr, ToBase: toBase}
}

var categoryOrder = []Category{Length, Weight, Volume, Area, Temperature, Power, Time}

var tables = map[Category][]Unit{
	// База: метр.
	Length: {
		lin("meter", "m", 1),
		lin("kilometer", "km", 1000),
		lin("centimeter", "cm", 0.01),
		lin("millimeter", "mm", 0.001),
		lin("micrometer", "um", 1e-6),
		lin("nanometer", "nm", 1e-9),
		lin("mile", "mi", 1609.344),
		lin("yard", "yd", 0.9144),
		lin("foot", "ft", 0.3048),
		lin("inch", "in", 0.0254),
		lin("nautical mile", "nmi", 1852),
	},
	// База: килограмм.
	Weight: {
		lin("kilogram", "kg", 1),
		lin("gram", "g", 0.001),
		lin("milligram", "mg", 1e-6),
		lin("metric ton", "t", 1000),
		lin("pound", "lb", 0.45359237),
		lin("ounce", "oz", 0.028349523125),
		lin("stone", "st", 6.35029318),
	},
	// База: литр.
	Volume: {
		lin("liter", "L", 1),
		lin("milliliter", "mL", 0.001),
		lin("cubic meter", "m3", 1000),
		lin("gallon", "gal", 3.785411784),
		lin("quart", "qt", 0.946352946),
		lin("pint", "pt", 0.473176473),
		lin("cup", "cup", 0.2365882365),
		lin("fluid ounce", "floz", 0.0295735295625),
		lin("tablespoon", "tbsp", 0.01478676478125),
		lin("teaspoon", "tsp", 0.00492892159375),
	},
	// База: квадратный метр.
	Area: {
		lin("square meter", "m2", 1),
		lin("square kilometer", "km2", 1e6),
		lin("square centimeter", "cm2", 1e-4),
		lin("square millimeter", "mm2", 1e-6),
		lin("hectare", "ha", 1e4),
		lin("acre", "ac", 4046.8564224),
		lin("square mile", "mi2", 2589988.110336),
		lin("square yard", "yd2", 0.83612736),
		lin("square foot", "ft2", 0.09290304),
		lin("square inch", "in2", 0.00064516),
	},
	Temperature: {
		{Name: "celsius", Abbreviation: "C", scale: celsius},
		{Name: "fahrenheit", Abbreviation: "F", scale: fahrenheit},
		{Name: "kelvin", Abbreviation: "K", scale: kelvin},
	},
	// База: ватт.
	Power: {
		lin("watt", "W", 1),
		lin("milliwatt", "mW", 0.001),
		lin("kilowatt", "kW", 1000),
		lin("megawatt", "MW", 1e6),
		lin("gigawatt", "GW", 1e9),
		lin("horsepower", "hp", 745.69987158227022),
		lin("metric horsepower", "PS", 735.49875),
		lin("BTU per hour", "BTU/h", 0.29307107017),
		lin("foot-pound per second", "ft-lbf/s", 1.3558179483314004),
		lin("calorie per second", "cal/s", 4.1868),
		{Name: "decibel-milliwatt", Abbreviation: "dBm", scale: decibelMilliwatt},
	},
	// База: секунда. Месяц и год - средние по григорианскому календарю.
	Time: {
		lin("nanosecond", "ns", 1e-9),
		lin("microsecond", "us", 1e-6),
		lin("millisecond", "ms", 0.001),
		lin("second", "s", 1),
		lin("minute", "min", 60),
		lin("hour", "h", 3600),
		lin("day", "d", 86400),
		lin("week", "wk", 604800),
		lin("month", "mo", 2629746),
		lin("year", "yr", 31556952),
	},
}

// Categories возвращает категории в порядке отображения.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// ParseCategory разбирает название категории без учета регистра.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tables[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Units возвращает копию таблицы единиц категории.
func Units(category Category) ([]Unit, error) {
	table, ok := tables[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return append([]Unit(nil), table...), nil
}

// Lookup находит единицу по точному сокращению, затем по имени или имени во
// множественном числе без учета регистра.
func Lookup(category Category, key string) (Unit, error) {
	table, ok := tables[category]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	key = strings.TrimSpace(key)
	for _, u := range table {
		if u.Abbreviation == key {
			return u, nil
		}
	}

	lower := strings.ToLower(key)
	for _, u := range table {
		name := strings.ToLower(u.Name)
		if name == lower || name+"s" == lower || name+"es" == lower ||
			strings.ToLower(u.Abbreviation) == lower {
			return u, nil
		}
	}
	// Неправильная форма множественного числа.
	if lower == "feet" && category == Length {
		return Lookup(category, "ft")
	}

	return Unit{}, fmt.Errorf("%w: %q in %s", ErrUnknownUnit, key, category)
}

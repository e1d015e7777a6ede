// Package passgen генерирует случайные пароли из выбранных классов символов.
package passgen

import (
	"errors"
	"fmt"
	"strings"

	"toolbox/pkg/random"
)

// Ограничения длины.
const (
	DefaultLength = 16
	MinLength     = 4
	MaxLength     = 128
)

// Наборы символов.
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	numberChars = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.<>?"
)

var (
	ErrNoCharacterClass = errors.New("at least one character class must be selected")
	ErrLength           = errors.New("password length out of range")
)

// Options - параметры пароля. Нулевая длина означает DefaultLength.
type Options struct {
	Length  int
	Upper   bool
	Lower   bool
	Numbers bool
	Symbols bool
}

// DefaultOptions включает все классы символов.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Upper: true, Lower: true, Numbers: true, Symbols: true}
}

// Generator генерирует пароли.
type Generator struct {
	rnd random.Source
}

// NewGenerator создает генератор. nil означает random.Crypto().
func NewGenerator(rnd random.Source) *Generator {
	if rnd == nil {
		rnd = random.Crypto()
	}
	return &Generator{rnd: rnd}
}

// Generate возвращает пароль, в котором есть хотя бы один символ каждого
// выбранного класса.
func (g *Generator) Generate(opts Options) (string, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrLength, length, MinLength, MaxLength)
	}

	var classes []string
	for _, c := range []struct {
		on    bool
		chars string
	}{
		{opts.Upper, upperChars},
		{opts.Lower, lowerChars},
		{opts.Numbers, numberChars},
		{opts.Symbols, symbolChars},
	} {
		if c.on {
			classes = append(classes, c.chars)
		}
	}
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}

	all := strings.Join(classes, "")
	out := make([]byte, 0, length)
	for _, chars := range classes {
		out = append(out, chars[g.rnd.IntRange(0, len(chars)-1)])
	}
	for len(out) < length {
		out = append(out, all[g.rnd.IntRange(0, len(all)-1)])
	}

	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.IntRange(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

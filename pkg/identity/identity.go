// Package identity генерирует вымышленные имена, логины и адреса почты.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"toolbox/pkg/random"
)

// Gender - предпочтение пола при генерации.
type Gender string

// Допустимые значения.
const (
	Male   Gender = "male"
	Female Gender = "female"
	Any    Gender = "any"
)

// MaxBatch - максимальное число записей за один вызов.
const MaxBatch = 50

// ErrBatchSize возвращается при количестве вне [1, MaxBatch].
var ErrBatchSize = errors.New("batch size out of range")

// ParseGender разбирает предпочтение. Неизвестное значение дает Any.
func ParseGender(s string) Gender {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case Male, Female:
		return g
	default:
		return Any
	}
}

// Identity - сгенерированная личность.
type Identity struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    Gender `json:"gender"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// Generator создает личности из статических списков.
type Generator struct {
	rnd random.Source
}

// NewGenerator создает генератор. nil rnd заменяется random.Default().
func NewGenerator(rnd random.Source) *Generator {
	if rnd == nil {
		rnd = random.Default()
	}
	return &Generator{rnd: rnd}
}

// Generate создает одну личность. Уникальность между вызовами не гарантируется.
func (g *Generator) Generate(pref Gender) Identity {
	gender := ParseGender(string(pref))
	if gender == Any {
		gender = Male
		if g.rnd.IntRange(0, 1) == 1 {
			gender = Female
		}
	}

	names := maleFirstNames
	if gender == Female {
		names = femaleFirstNames
	}
	first := random.Pick(g.rnd, names)
	last := random.Pick(g.rnd, lastNames)

	return Identity{
		FirstName: first,
		LastName:  last,
		Gender:    gender,
		Username:  g.username(first, last),
		Email:     g.email(first, last),
	}
}

// GenerateBatch создает count личностей.
func (g *Generator) GenerateBatch(pref Gender, count int) ([]Identity, error) {
	if count < 1 || count > MaxBatch {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrBatchSize, count, MaxBatch)
	}
	out := make([]Identity, 0, count)
	for range count {
		out = append(out, g.Generate(pref))
	}
	return out, nil
}

func (g *Generator) username(first, last string) string {
	f, l := strings.ToLower(first), strings.ToLower(last)
	initial := f[:1]

	candidates := []string{
		fmt.Sprintf("%s%d", f, g.rnd.IntRange(10, 999)),
		fmt.Sprintf("%s.%s", initial, l),
		fmt.Sprintf("%s%s%d", l, initial, g.rnd.IntRange(1, 99)),
		fmt.Sprintf("%s_%s", f, l),
		fmt.Sprintf("%s%s%d", f, l[:1], g.rnd.IntRange(1970, 2005)),
	}
	return random.Pick(g.rnd, candidates)
}

func (g *Generator) email(first, last string) string {
	f, l := strings.ToLower(first), strings.ToLower(last)
	domain := random.Pick(g.rnd, emailDomains)

	candidates := []string{
		fmt.Sprintf("%s.%s@%s", f, l, domain),
		fmt.Sprintf("%s%s@%s", f[:1], l, domain),
		fmt.Sprintf("%s%s%d@%s", f, l, g.rnd.IntRange(1, 99), domain),
		fmt.Sprintf("%s_%s@%s", l, f, domain),
	}
	return random.Pick(g.rnd, candidates)
}

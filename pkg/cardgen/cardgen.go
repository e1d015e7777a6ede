// Package cardgen генерирует тестовые номера банковских карт, проходящие
// проверку Луна. Номера не связаны с платежными системами и не пригодны для оплаты.
package cardgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"toolbox/pkg/random"
)

// Brand - платежная система.
type Brand string

// Поддерживаемые платежные системы.
const (
	Visa       Brand = "visa"
	Mastercard Brand = "mastercard"
	Amex       Brand = "amex"
	Discover   Brand = "discover"
)

// Notice сопровождает каждый ответ генератора.
const Notice = "Generated numbers are for testing only and cannot be used for real transactions."

// MaxBatch - максимальное число карт за один вызов.
const MaxBatch = 50

// ErrBatchSize возвращается при количестве вне [1, MaxBatch].
var ErrBatchSize = errors.New("batch size out of range")

// Brands возвращает поддерживаемые платежные системы.
func Brands() []Brand {
	return []Brand{Visa, Mastercard, Amex, Discover}
}

// ParseBrand разбирает название системы. Неизвестное значение дает Visa.
func ParseBrand(s string) Brand {
	switch b := Brand(strings.ToLower(strings.TrimSpace(s))); b {
	case Visa, Mastercard, Amex, Discover:
		return b
	case "american express", "americanexpress":
		return Amex
	case "mc":
		return Mastercard
	default:
		return Visa
	}
}

// Layout - правило построения номера.
type Layout struct {
	Brand  Brand
	Prefix string
	Length int
}

// Card - сгенерированная тестовая карта.
type Card struct {
	Brand     Brand  `json:"brand"`
	Number    string `json:"number"`
	Formatted string `json:"formatted"`
	Expiry    string `json:"expiry"`
	CVV       string `json:"cvv"`
}

// Generator создает карты, используя внедренный источник случайности.
type Generator struct {
	rnd random.Source
	now func() time.Time
}

// Option настраивает Generator.
type Option func(*Generator)

// WithClock задает источник текущего времени для срока действия.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator создает генератор. nil rnd заменяется random.Default().
func NewGenerator(rnd random.Source, opts ...Option) *Generator {
	if rnd == nil {
		rnd = random.Default()
	}
	g := &Generator{rnd: rnd, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LayoutFor выбирает префикс и длину номера для brand.
func (g *Generator) LayoutFor(brand Brand) Layout {
	switch brand {
	case Mastercard:
		var prefix string
		if g.rnd.IntRange(0, 1) == 0 {
			prefix = strconv.Itoa(g.rnd.IntRange(51, 55))
		} else {
			prefix = strconv.Itoa(g.rnd.IntRange(2221, 2720))
		}
		return Layout{Brand: Mastercard, Prefix: prefix, Length: 16}
	case Amex:
		return Layout{Brand: Amex, Prefix: random.Pick(g.rnd, []string{"34", "37"}), Length: 15}
	case Discover:
		var prefix string
		switch g.rnd.IntRange(0, 2) {
		case 0:
			prefix = "6011"
		case 1:
			prefix = strconv.Itoa(g.rnd.IntRange(644, 649))
		default:
			prefix = "65"
		}
		return Layout{Brand: Discover, Prefix: prefix, Length: 16}
	default:
		return Layout{Brand: Visa, Prefix: "4", Length: 16}
	}
}

// Number строит номер по layout: случайные цифры и контрольная цифра Луна.
func (g *Generator) Number(layout Layout) string {
	var b strings.Builder
	b.Grow(layout.Length)
	b.WriteString(layout.Prefix)
	for b.Len() < layout.Length-1 {
		b.WriteByte(byte('0' + g.rnd.IntRange(0, 9)))
	}
	partial := b.String()
	return partial + strconv.Itoa(CheckDigit(partial))
}

// Generate создает одну карту brand.
func (g *Generator) Generate(brand Brand) Card {
	layout := g.LayoutFor(brand)
	number := g.Number(layout)

	cvvLen := 3
	if layout.Brand == Amex {
		cvvLen = 4
	}
	var cvv strings.Builder
	for range cvvLen {
		cvv.WriteByte(byte('0' + g.rnd.IntRange(0, 9)))
	}

	expiry := g.now().AddDate(g.rnd.IntRange(1, 5), 0, 0)
	month := g.rnd.IntRange(1, 12)

	return Card{
		Brand:     layout.Brand,
		Number:    number,
		Formatted: Format(number, layout.Brand),
		Expiry:    fmt.Sprintf("%02d/%02d", month, expiry.Year()%100),
		CVV:       cvv.String(),
	}
}

// GenerateBatch создает count карт brand.
func (g *Generator) GenerateBatch(brand Brand, count int) ([]Card, error) {
	if count < 1 || count > MaxBatch {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrBatchSize, count, MaxBatch)
	}
	cards := make([]Card, 0, count)
	for range count {
		cards = append(cards, g.Generate(brand))
	}
	return cards, nil
}

// Format группирует цифры 4-4-4-4, для Amex - 4-6-5.
func Format(number string, brand Brand) string {
	groups := []int{4, 4, 4, 4}
	if brand == Amex {
		groups = []int{4, 6, 5}
	}

	parts := make([]string, 0, len(groups)+1)
	rest := number
	for _, size := range groups {
		if len(rest) <= size {
			break
		}
		parts = append(parts, rest[:size])
		rest = rest[size:]
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	return strings.Join(parts, " ")
}

// Package rewrite выполняет локальную лексическую переработку текста по
// таблицам замен. Используется как запасной вариант, когда удаленный сервис
// генерации недоступен.
package rewrite

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"toolbox/pkg/random"
)

// Mode - режим переработки.
type Mode string

// Поддерживаемые режимы.
const (
	Standard Mode = "standard"
	Fluent   Mode = "fluent"
	Creative Mode = "creative"
	Academic Mode = "academic"
	Simple   Mode = "simple"
)

// Modes возвращает режимы в порядке отображения.
func Modes() []Mode {
	return []Mode{Standard, Fluent, Creative, Academic, Simple}
}

// ParseMode разбирает режим. Неизвестный режим означает Standard.
func ParseMode(s string) Mode {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m
		}
	}
	return Standard
}

var conjunctionRe = regexp.MustCompile(`,\s+(and|but|so)\s+`)

// Transformer применяет таблицы замен.
type Transformer struct {
	tables *Tables
	rnd    random.Source
}

// New создает Transformer. nil tables означает DefaultTables, nil rnd - random.Default.
func New(tables *Tables, rnd random.Source) *Transformer {
	if tables == nil {
		tables = DefaultTables()
	}
	if rnd == nil {
		rnd = random.Default()
	}
	return &Transformer{tables: tables, rnd: rnd}
}

// Transform перерабатывает text в режиме mode. Текст без совпадений
// возвращается без изменений.
func (t *Transformer) Transform(text string, mode Mode) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	table, ok := t.tables.Modes[mode]
	if !ok {
		if table, ok = t.tables.Modes[Standard]; !ok {
			return text
		}
	}

	for _, rule := range table.Rules {
		text = rule.re.ReplaceAllStringFunc(text, func(match string) string {
			if !t.pass(rule.Threshold) {
				return match
			}
			return matchCase(match, rule.Replace)
		})
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, s := range splitSentences(text) {
		body, tail := trimSentence(s)
		if table.SwapClauses {
			body = t.swapClauses(body, table.SwapThreshold)
		}
		if table.SplitAfter > 0 && len(strings.Fields(body)) > table.SplitAfter {
			body = splitLong(body)
		}
		b.WriteString(body)
		b.WriteString(tail)
	}
	return b.String()
}

func (t *Transformer) pass(threshold float64) bool {
	if threshold <= 0 {
		return true
	}
	return t.rnd.Float64() > threshold
}

// swapClauses меняет местами две части предложения, разделенные запятой.
func (t *Transformer) swapClauses(body string, threshold float64) string {
	parts := strings.Split(body, ", ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return body
	}
	if !t.pass(threshold) {
		return body
	}
	return upperFirst(parts[1]) + ", " + lowerFirst(parts[0])
}

// splitLong разбивает предложение на два по первому союзу после запятой.
func splitLong(body string) string {
	loc := conjunctionRe.FindStringSubmatchIndex(body)
	if loc == nil {
		return body
	}
	conj := body[loc[2]:loc[3]]
	return body[:loc[0]] + ". " + upperFirst(conj) + " " + body[loc[1]:]
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

// splitSentences режет текст после знаков конца предложения вместе с
// последующими пробелами. Склейка результата дает исходный текст.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		j := i + 1
		for j < len(text) && isTerminator(text[j]) {
			j++
		}
		for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
			j++
		}
		out = append(out, text[start:j])
		start = j
		i = j - 1
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// trimSentence отделяет знаки конца предложения и пробелы.
func trimSentence(s string) (body, tail string) {
	end := len(s)
	for end > 0 && (isTerminator(s[end-1]) || unicode.IsSpace(rune(s[end-1]))) {
		end--
	}
	return s[:end], s[end:]
}

// matchCase переносит заглавную первую букву совпадения на замену.
func matchCase(match, replacement string) string {
	r, _ := utf8.DecodeRuneInString(match)
	if unicode.IsUpper(r) {
		return upperFirst(replacement)
	}
	return replacement
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// lowerFirst не трогает местоимение I и аббревиатуры.
func lowerFirst(s string) string {
	word, _, _ := strings.Cut(s, " ")
	if word == "I" || strings.HasPrefix(word, "I'") {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	if next, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(next) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Package strength оценивает надежность пароля эвристически. Оценка и время
// подбора иллюстративны и не являются расчетом энтропии.
package strength

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Label - категория надежности.
type Label string

// Категории в порядке возрастания.
const (
	VeryWeak   Label = "Very Weak"
	Weak       Label = "Weak"
	Moderate   Label = "Moderate"
	Strong     Label = "Strong"
	VeryStrong Label = "Very Strong"
)

// MinLength - длина, с которой пароль получает баллы за длину.
const MinLength = 8

// Баллы эвристики.
const (
	scoreLength8      = 20
	scoreLength12     = 40
	scoreLength16     = 50
	scoreClass        = 10
	penaltySequential = 20
	penaltyRepeated   = 15
	penaltyCommon     = 30
	bonusUnique       = 10
	uniqueRatio       = 0.7
	sequenceRunLength = 3
	repeatedRunLength = 3
	maxScore          = 100
)

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

var sequences = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var commonPasswords = []string{
	"password", "123456", "12345678", "qwerty", "abc123", "letmein", "monkey",
	"dragon", "111111", "baseball", "iloveyou", "trustno1", "sunshine", "master",
	"welcome", "shadow", "football", "superman", "princess", "starwars", "admin",
	"login", "passw0rd", "hello", "freedom", "whatever", "qazwsx", "654321",
}

// Checklist - выполненные требования.
type Checklist struct {
	Length        bool `json:"length"`
	Uppercase     bool `json:"uppercase"`
	Lowercase     bool `json:"lowercase"`
	Numbers       bool `json:"numbers"`
	Symbols       bool `json:"symbols"`
	NoCommonWords bool `json:"no_common_words"`
	NoSequential  bool `json:"no_sequential"`
	NoRepeated    bool `json:"no_repeated"`
}

// Assessment - результат оценки.
type Assessment struct {
	Score       int       `json:"score"`
	Label       Label     `json:"label"`
	CrackTime   string    `json:"crack_time"`
	Checklist   Checklist `json:"checklist"`
	Suggestions []string  `json:"suggestions"`
}

// Assess оценивает password. Пустой пароль дает нулевое состояние.
func Assess(password string) Assessment {
	if password == "" {
		return Assessment{Label: VeryWeak, CrackTime: crackInstant, Suggestions: []string{}}
	}

	length := utf8.RuneCountInString(password)
	lower := strings.ToLower(password)

	check := Checklist{
		Length:        length >= MinLength,
		Uppercase:     upperRe.MatchString(password),
		Lowercase:     lowerRe.MatchString(password),
		Numbers:       digitRe.MatchString(password),
		Symbols:       symbolRe.MatchString(password),
		NoCommonWords: !containsCommon(lower),
		NoSequential:  !hasSequence(lower),
		NoRepeated:    !hasRepeated(password),
	}

	score := lengthScore(length)
	for _, ok := range []bool{check.Uppercase, check.Lowercase, check.Numbers, check.Symbols} {
		if ok {
			score += scoreClass
		}
	}
	if !check.NoSequential {
		score -= penaltySequential
	}
	if !check.NoRepeated {
		score -= penaltyRepeated
	}
	if !check.NoCommonWords {
		score -= penaltyCommon
	}
	if float64(distinct(password))/float64(length) > uniqueRatio {
		score += bonusUnique
	}
	score = max(0, min(score, maxScore))

	label := labelFor(score)
	allClasses := check.Uppercase && check.Lowercase && check.Numbers && check.Symbols

	return Assessment{
		Score:       score,
		Label:       label,
		CrackTime:   crackTime(label, length, allClasses),
		Checklist:   check,
		Suggestions: suggestions(check),
	}
}

func lengthScore(length int) int {
	switch {
	case length >= 16:
		return scoreLength16
	case length >= 12:
		return scoreLength12
	case length >= MinLength:
		return scoreLength8
	default:
		return 0
	}
}

func labelFor(score int) Label {
	switch {
	case score < 20:
		return VeryWeak
	case score < 40:
		return Weak
	case score < 60:
		return Moderate
	case score < 80:
		return Strong
	default:
		return VeryStrong
	}
}

func containsCommon(lower string) bool {
	for _, common := range commonPasswords {
		if strings.Contains(lower, common) {
			return true
		}
	}
	return false
}

// hasSequence ищет подстроку длины sequenceRunLength из алфавита, цифр или
// рядов клавиатуры в прямом или обратном порядке.
func hasSequence(lower string) bool {
	for _, seq := range sequences {
		reversed := reverse(seq)
		for i := 0; i+sequenceRunLength <= len(seq); i++ {
			if strings.Contains(lower, seq[i:i+sequenceRunLength]) ||
				strings.Contains(lower, reversed[i:i+sequenceRunLength]) {
				return true
			}
		}
	}
	return false
}

func hasRepeated(password string) bool {
	run := 0
	var prev rune
	for i, r := range password {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= repeatedRunLength {
			return true
		}
		prev = r
	}
	return false
}

func distinct(password string) int {
	seen := make(map[rune]struct{}, len(password))
	for _, r := range password {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

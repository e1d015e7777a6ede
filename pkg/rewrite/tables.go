package rewrite

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// ErrInvalidTables возвращается при ошибке в таблицах замен.
var ErrInvalidTables = errors.New("invalid rewrite tables")

// Rule - одна замена. Threshold 0 означает, что замена применяется всегда.
type Rule struct {
	Find      string  `yaml:"find"`
	Replace   string  `yaml:"replace"`
	Threshold float64 `yaml:"threshold"`

	re *regexp.Regexp
}

// ModeTable - упорядоченные правила режима и параметры обработки предложений.
type ModeTable struct {
	SplitAfter    int     `yaml:"split_after"`
	SwapClauses   bool    `yaml:"swap_clauses"`
	SwapThreshold float64 `yaml:"swap_threshold"`
	Rules         []Rule  `yaml:"rules"`
}

// Tables содержит таблицы всех режимов.
type Tables struct {
	Modes map[Mode]*ModeTable `yaml:"modes"`
}

// LoadTables разбирает YAML с таблицами и компилирует выражения.
func LoadTables(r io.Reader) (*Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Tables
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTables, err)
	}
	if len(t.Modes) == 0 {
		return nil, fmt.Errorf("%w: no modes defined", ErrInvalidTables)
	}

	for mode, table := range t.Modes {
		if table == nil {
			return nil, fmt.Errorf("%w: mode %q is empty", ErrInvalidTables, mode)
		}
		if table.SplitAfter < 0 {
			return nil, fmt.Errorf("%w: mode %q: negative split_after", ErrInvalidTables, mode)
		}
		if !validThreshold(table.SwapThreshold) {
			return nil, fmt.Errorf("%w: mode %q: swap_threshold %v", ErrInvalidTables, mode, table.SwapThreshold)
		}
		for i := range table.Rules {
			rule := &table.Rules[i]
			if !validThreshold(rule.Threshold) {
				return nil, fmt.Errorf("%w: mode %q rule %d: threshold %v", ErrInvalidTables, mode, i, rule.Threshold)
			}
			re, err := regexp.Compile("(?i)" + rule.Find)
			if err != nil {
				return nil, fmt.Errorf("%w: mode %q rule %d: %w", ErrInvalidTables, mode, i, err)
			}
			rule.re = re
		}
	}
	return &t, nil
}

// LoadTablesFile читает таблицы из файла.
func LoadTablesFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rewrite tables: %w", err)
	}
	defer f.Close()

	return LoadTables(f)
}

// DefaultTables возвращает встроенные таблицы.
func DefaultTables() *Tables {
	t, err := LoadTables(bytes.NewReader(defaultTables))
	if err != nil {
		panic(err)
	}
	return t
}

func validThreshold(v float64) bool {
	return v >= 0 && v < 1
}

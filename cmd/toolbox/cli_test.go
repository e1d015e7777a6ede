package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/pkg/cardgen"
	"toolbox/pkg/identity"
	"toolbox/pkg/passgen"
	"toolbox/pkg/random"
	"toolbox/pkg/roman"
	"toolbox/pkg/strength"
	"toolbox/pkg/units"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(random.NewSeeded(7), random.NewSeeded(11), func() time.Time {
		return time.Date(2023, time.April, 30, 12, 0, 0, 0, time.UTC)
	})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "", "convert", "1", "hour", "minute", "--category", "time")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "60", lines[0])

	out, err = run(t, "", "convert", "100", "C", "F", "-c", "temperature", "--json")
	require.NoError(t, err)
	var res conversionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 212, res.Value, 1e-9)
	assert.Equal(t, "212", res.FormattedValue)
	assert.Equal(t, units.Temperature, res.Category)
}

func TestConvertCommandErrors(t *testing.T) {
	_, err := run(t, "", "convert", "abc", "m", "km", "-c", "length")
	require.ErrorIs(t, err, units.ErrInvalidValue)

	_, err = run(t, "", "convert", "1", "m", "km", "-c", "speed")
	require.ErrorIs(t, err, units.ErrUnknownCategory)

	_, err = run(t, "", "convert", "1", "m", "km")
	require.Error(t, err, "category flag is required")

	_, err = run(t, "", "convert", "1", "m")
	require.Error(t, err)
}

func TestConvertCommandNegativeValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "value flag", args: []string{"convert", "--value=-40", "C", "F", "-c", "temperature"}},
		{name: "after double dash", args: []string{"convert", "-c", "temperature", "--", "-40", "C", "F"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "-40", strings.Split(out, "\n")[0])
		})
	}

	_, err := run(t, "", "convert", "--value=1", "m", "km", "cm", "-c", "length")
	require.Error(t, err, "value flag leaves exactly two arguments")
}

func TestUnitsCommand(t *testing.T) {
	out, err := run(t, "", "convert", "units", "power")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "power:\n"))
	assert.Regexp(t, `(?m)^  dBm\s+decibel-milliwatt\s+formula$`, out)
	assert.Regexp(t, `(?m)^  kW\s+kilowatt\s+1000$`, out)
	assert.NotContains(t, out, "length:")
}

func TestRomanCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "encode", args: []string{"roman", "encode", "1994"}, want: "MCMXCIV"},
		{name: "decode", args: []string{"roman", "decode", "MMXXIII"}, want: "2023"},
		{name: "date encode", args: []string{"roman", "date-encode", "30", "4", "2023"}, want: "XXX.IV.MMXXIII"},
		{name: "date decode", args: []string{"roman", "date-decode", "XXX.IV.MMXXIII"}, want: "30.04.2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestRomanCommandErrors(t *testing.T) {
	_, err := run(t, "", "roman", "encode", "4000")
	require.ErrorIs(t, err, roman.ErrOutOfRange)

	_, err = run(t, "", "roman", "encode", "ten")
	require.Error(t, err)

	_, err = run(t, "", "roman", "date-encode", "1", "2")
	require.Error(t, err)

	_, err = run(t, "", "roman", "date-decode", "XXX.XIII.MMXXIII")
	require.ErrorIs(t, err, roman.ErrMonthOutOfRange)
}

func TestRomanDateEncodeToday(t *testing.T) {
	out, err := run(t, "", "roman", "date-encode")
	require.NoError(t, err)
	assert.Equal(t, "XXX.IV.MMXXIII", strings.TrimSpace(out))

	out, err = run(t, "", "roman", "date-encode", "--json")
	require.NoError(t, err)
	var res romanDateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, romanDateOutput{Date: "XXX.IV.MMXXIII", Day: 30, Month: 4, Year: 2023}, res)
}

func TestCardCommand(t *testing.T) {
	out, err := run(t, "", "card", "--brand", "amex", "--count", "3", "--json")
	require.NoError(t, err)

	var res cardsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Cards, 3)
	assert.Equal(t, cardgen.Notice, res.Notice)
	for _, card := range res.Cards {
		assert.Equal(t, cardgen.Amex, card.Brand)
		assert.Len(t, card.Number, 15)
		assert.True(t, cardgen.Valid(card.Number))
	}

	out, err = run(t, "", "card")
	require.NoError(t, err)
	assert.Contains(t, out, cardgen.Notice)

	_, err = run(t, "", "card", "-n", "51")
	require.ErrorIs(t, err, cardgen.ErrBatchSize)
}

func TestIdentityCommand(t *testing.T) {
	out, err := run(t, "", "identity", "--gender", "female", "-n", "4", "--json")
	require.NoError(t, err)

	var people []identity.Identity
	require.NoError(t, json.Unmarshal([]byte(out), &people))
	require.Len(t, people, 4)
	for _, p := range people {
		assert.Equal(t, identity.Female, p.Gender)
		assert.Contains(t, p.Email, "@")
	}

	_, err = run(t, "", "identity", "-n", "0")
	require.ErrorIs(t, err, identity.ErrBatchSize)
}

func TestPasswordAssessCommand(t *testing.T) {
	out, err := run(t, "", "password", "assess", "password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0/100 Very Weak"), out)

	out, err = run(t, "", "password", "assess", "CorrectHorse#Battery9!", "--json")
	require.NoError(t, err)
	var a strength.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, strength.VeryStrong, a.Label)
}

func TestPasswordGenerateCommand(t *testing.T) {
	out, err := run(t, "", "password", "generate", "--length", "24", "--no-symbols", "--json")
	require.NoError(t, err)

	var res passwordOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 24, res.Length)
	assert.Len(t, res.Password, 24)
	assert.NotContains(t, res.Password, "!")

	out, err = run(t, "", "password", "generate", "-n", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	_, err = run(t, "", "password", "generate", "--no-upper", "--no-lower", "--no-numbers", "--no-symbols")
	require.ErrorIs(t, err, passgen.ErrNoCharacterClass)

	_, err = run(t, "", "password", "generate", "--length", "2")
	require.ErrorIs(t, err, passgen.ErrLength)
}

func TestRewriteCommand(t *testing.T) {
	out, err := run(t, "", "rewrite", "--mode", "academic", "--json", "The", "results", "show", "a", "lot", "of", "change.")
	require.NoError(t, err)

	var res rewriteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "academic", res.Mode)
	assert.NotEmpty(t, res.Text)

	out, err = run(t, "Plain text from stdin.", "rewrite", "--mode", "pirate", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "standard", res.Mode)
	assert.NotEmpty(t, res.Text)

	_, err = run(t, "", "rewrite", "--tables", "/does/not/exist.yaml", "text")
	require.Error(t, err)
}

package passgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/pkg/passgen"
	"toolbox/pkg/random"
)

func TestGenerateClasses(t *testing.T) {
	tests := []struct {
		name string
		opts passgen.Options
		want []string
		deny []string
	}{
		{
			name: "all classes",
			opts: passgen.DefaultOptions(),
			want: []string{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", "abcdefghijklmnopqrstuvwxyz", "0123456789", "!@#$%^&*()-_=+[]{};:,.<>?"},
		},
		{
			name: "digits only",
			opts: passgen.Options{Length: 6, Numbers: true},
			want: []string{"0123456789"},
			deny: []string{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", "abcdefghijklmnopqrstuvwxyz"},
		},
		{
			name: "letters without symbols",
			opts: passgen.Options{Length: 4, Upper: true, Lower: true},
			want: []string{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", "abcdefghijklmnopqrstuvwxyz"},
			deny: []string{"0123456789", "!@#$%^&*()-_=+[]{};:,.<>?"},
		},
	}

	gen := passgen.NewGenerator(random.NewSeeded(7))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 200 {
				password, err := gen.Generate(tt.opts)
				require.NoError(t, err)
				assert.Len(t, password, tt.opts.Length)
				for _, chars := range tt.want {
					assert.True(t, strings.ContainsAny(password, chars), "%q lacks one of %q", password, chars)
				}
				for _, chars := range tt.deny {
					assert.False(t, strings.ContainsAny(password, chars), "%q contains one of %q", password, chars)
				}
			}
		})
	}
}

func TestGenerateDefaultLength(t *testing.T) {
	password, err := passgen.NewGenerator(nil).Generate(passgen.Options{Lower: true})
	require.NoError(t, err)
	assert.Len(t, password, passgen.DefaultLength)
}

func TestGenerateErrors(t *testing.T) {
	gen := passgen.NewGenerator(random.NewSeeded(1))

	_, err := gen.Generate(passgen.Options{Length: 12})
	require.ErrorIs(t, err, passgen.ErrNoCharacterClass)

	for _, length := range []int{-1, 3, 129} {
		_, err := gen.Generate(passgen.Options{Length: length, Lower: true})
		assert.ErrorIs(t, err, passgen.ErrLength, "length %d", length)
	}
}

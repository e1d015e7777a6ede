package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/pkg/config"
)

type sampleConfig struct {
	Name  string `yaml:"name" env:"TOOLBOX_TEST_NAME" env-default:"toolbox"`
	Port  int    `yaml:"port" env:"TOOLBOX_TEST_PORT" env-default:"8080"`
	Debug bool   `yaml:"debug" env:"TOOLBOX_TEST_DEBUG" env-default:"false"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults from tags", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.NoError(t, err)
		assert.Equal(t, "toolbox", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.False(t, cfg.Debug)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TOOLBOX_TEST_PORT", "9090")
		t.Setenv("TOOLBOX_TEST_DEBUG", "true")

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.True(t, cfg.Debug)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: from-file\nport: 7000\n"), 0o600))

		cfg, err := config.Load[sampleConfig](ctx, "test", path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 7000, cfg.Port)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "test", filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("malformed environment value", func(t *testing.T) {
		t.Setenv("TOOLBOX_TEST_PORT", "not-a-port")

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

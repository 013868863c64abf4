package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userprofile/pkg/config"
	"github.com/dmitrymomot/userprofile/pkg/environment"
)

type successConfig struct {
	Lang    string `env:"TEST_LANG_SUCCESS" envDefault:"en"`
	Workers int    `env:"TEST_WORKERS_SUCCESS" envDefault:"4"`
	Strict  bool   `env:"TEST_STRICT_SUCCESS" envDefault:"true"`
}

type defaultConfig struct {
	Lang    string `env:"TEST_LANG_DEFAULT" envDefault:"en"`
	Workers int    `env:"TEST_WORKERS_DEFAULT" envDefault:"4"`
}

type singletonConfig struct {
	Value string `env:"TEST_VALUE_SINGLETON" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type envConfig struct {
	Env environment.Environment `env:"TEST_APP_ENV" envDefault:"development"`
}

type dotenvConfig struct {
	Value string `env:"TEST_DOTENV_VALUE"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_LANG_SUCCESS", "es")
	t.Setenv("TEST_WORKERS_SUCCESS", "8")
	t.Setenv("TEST_STRICT_SUCCESS", "false")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, 8, cfg.Workers)
	assert.False(t, cfg.Strict)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_LANG_DEFAULT")
	os.Unsetenv("TEST_WORKERS_DEFAULT")

	var cfg defaultConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_MissingRequiredThenRetry(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("TEST_REQUIRED_VALUE", "set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "set", cfg.Required)
}

func TestLoad_CachedUntilReset(t *testing.T) {
	t.Setenv("TEST_VALUE_SINGLETON", "first")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_VALUE_SINGLETON", "second")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()

	var third singletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.Panics(t, func() { config.MustLoad(cfg) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("reads from map", func(t *testing.T) {
		var cfg successConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{"TEST_WORKERS_SUCCESS": "2"}))
		assert.Equal(t, 2, cfg.Workers)
		assert.Equal(t, "en", cfg.Lang)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg successConfig
		err := config.Parse(&cfg, map[string]string{"TEST_WORKERS_SUCCESS": "many"})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("environment type", func(t *testing.T) {
		var cfg envConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{"TEST_APP_ENV": "prod"}))
		assert.Equal(t, environment.Production, cfg.Env)

		require.NoError(t, config.Parse(&cfg, map[string]string{}))
		assert.Equal(t, environment.Development, cfg.Env)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *envConfig
		assert.ErrorIs(t, config.Parse(cfg, nil), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_DOTENV_VALUE")
	t.Cleanup(func() { os.Unsetenv("TEST_DOTENV_VALUE") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_VALUE=from_file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg dotenvConfig
	require.NoError(t, config.Parse(&cfg, nil))
	assert.Equal(t, "from_file", cfg.Value)

	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

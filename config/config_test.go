package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/lospec/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	t.Run("reads values from an explicit file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
[catalog]
base_url = "http://localhost:8080"
timeout = "5s"

[download]
format = "png"
size = 8
workers = 2

[ui]
theme = "light"
labels = true

[log]
file = "/tmp/lospec.log"
`)

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.Catalog.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, "png", cfg.Download.Format)
		assert.Equal(t, 8, cfg.Download.Size)
		assert.Equal(t, 2, cfg.Download.Workers)
		assert.Equal(t, "light", cfg.UI.Theme)
		assert.True(t, cfg.UI.Labels)
		assert.Equal(t, "/tmp/lospec.log", cfg.Log.File)
	})

	t.Run("unset keys keep their defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[ui]\ntheme = \"light\"\n")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		defaults := config.Defaults()
		assert.Equal(t, defaults.Catalog, cfg.Catalog)
		assert.Equal(t, defaults.Download, cfg.Download)
		assert.Equal(t, "light", cfg.UI.Theme)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))

		assert.Error(t, err)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[catalog\nbase_url = ")

		_, err := config.Load(path)

		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"catalog.base_url": "[catalog]\nbase_url = \"ftp://example.com\"\n",
			"download.format":  "[download]\nformat = \"svg\"\n",
			"download.size":    "[download]\nsize = 0\n",
			"download.workers": "[download]\nworkers = -1\n",
		}
		for key, content := range cases {
			_, err := config.Load(writeConfig(t, content))
			assert.ErrorContains(t, err, key)
		}
	})
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LOSPEC_CATALOG_BASE_URL", "https://mirror.example.com")
	t.Setenv("LOSPEC_DOWNLOAD_WORKERS", "3")

	path := writeConfig(t, "[catalog]\nbase_url = \"http://localhost:8080\"\n")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 3, cfg.Download.Workers)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOSPEC_UI_THEME=light\nLOSPEC_TEST_PRESET=fromfile\n"), 0o644))
	t.Setenv("LOSPEC_TEST_PRESET", "fromenv")
	t.Setenv("LOSPEC_UI_THEME", "")
	require.NoError(t, os.Unsetenv("LOSPEC_UI_THEME"))

	require.NoError(t, config.LoadDotEnv(envFile, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "light", os.Getenv("LOSPEC_UI_THEME"))
	assert.Equal(t, "fromenv", os.Getenv("LOSPEC_TEST_PRESET"))
}

func TestDefaults_AreValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, config.Defaults().Validate())
}

// Package config loads lospec settings from a TOML file, the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/fwojciec/lospec"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppName names the config and state directories.
const AppName = "lospec"

// EnvPrefix prefixes environment overrides, e.g. LOSPEC_CATALOG_BASE_URL.
const EnvPrefix = "LOSPEC"

// Config holds application configuration.
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Download DownloadConfig `mapstructure:"download"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// CatalogConfig holds catalog host settings.
type CatalogConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DownloadConfig holds export defaults.
type DownloadConfig struct {
	Format  string `mapstructure:"format"`
	Size    int    `mapstructure:"size"`
	Workers int    `mapstructure:"workers"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme  string `mapstructure:"theme"`
	Labels bool   `mapstructure:"labels"` // Print hex values inside swatches
}

// LogConfig holds log sink settings.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Catalog: CatalogConfig{
			BaseURL: lospec.DefaultBaseURL,
			Timeout: 30 * time.Second,
		},
		Download: DownloadConfig{
			Format:  string(lospec.FormatHex),
			Size:    lospec.DefaultSize,
			Workers: 8,
		},
		UI: UIConfig{Theme: "dark"},
	}
}

// Dir returns the directory holding config.toml.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Load reads configuration from path, or from config.toml in Dir when path
// is empty. A missing default file is not an error; a missing explicit file
// is. Environment variables with prefix LOSPEC_ override file values.
func Load(path string) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("catalog.base_url", d.Catalog.BaseURL)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("download.format", d.Download.Format)
	v.SetDefault("download.size", d.Download.Size)
	v.SetDefault("download.workers", d.Download.Workers)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.labels", d.UI.Labels)
	v.SetDefault("log.file", d.Log.File)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	u, err := url.Parse(c.Catalog.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("catalog.base_url: want an http(s) URL, got %q", c.Catalog.BaseURL)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout: must be positive, got %s", c.Catalog.Timeout)
	}
	if _, err := lospec.ParseFormat(c.Download.Format); err != nil {
		return fmt.Errorf("download.format: %w", err)
	}
	if c.Download.Size < 1 {
		return fmt.Errorf("download.size: must be at least 1, got %d", c.Download.Size)
	}
	if c.Download.Workers < 1 {
		return fmt.Errorf("download.workers: must be at least 1, got %d", c.Download.Workers)
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Files
// that do not exist are skipped. With no arguments, ".env" in the working
// directory is tried.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

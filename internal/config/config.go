package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	State     StateConfig     `mapstructure:"state"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Downloads DownloadsConfig `mapstructure:"downloads"`
	Stub      StubConfig      `mapstructure:"stub"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// APIConfig holds remote reservation API configuration. The base URL has
// moved across deployments, so it is never hardcoded outside the defaults.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StateConfig holds where the session token and profile are persisted.
type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

// CacheConfig holds the local lookup cache database.
type CacheConfig struct {
	Path string `mapstructure:"path"`
}

// DownloadsConfig holds where receipt/file downloads and exports land.
type DownloadsConfig struct {
	Dir string `mapstructure:"dir"`
}

// StubConfig holds the development stub server binding.
type StubConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from an optional file plus environment variables.
// A missing file is fine; defaults and env cover everything.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvVars(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".reservas")

	v.SetDefault("api.base_url", "http://34.232.0.139/compele-api")
	v.SetDefault("api.timeout", 30*time.Second)

	v.SetDefault("state.dir", base)
	v.SetDefault("cache.path", filepath.Join(base, "cache.db"))
	v.SetDefault("downloads.dir", filepath.Join(base, "downloads"))

	v.SetDefault("stub.host", "127.0.0.1")
	v.SetDefault("stub.port", 8085)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.format", "console")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("api.base_url", "RESERVAS_API_BASE_URL")
	v.BindEnv("api.timeout", "RESERVAS_API_TIMEOUT")
	v.BindEnv("state.dir", "RESERVAS_STATE_DIR")
	v.BindEnv("cache.path", "RESERVAS_CACHE_PATH")
	v.BindEnv("downloads.dir", "RESERVAS_DOWNLOADS_DIR")
	v.BindEnv("logger.level", "RESERVAS_LOG_LEVEL")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.State.Dir == "" {
		return fmt.Errorf("state.dir is required")
	}
	return nil
}

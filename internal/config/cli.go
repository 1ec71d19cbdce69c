package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/license"
	"github.com/ytget/png-sorter/internal/model"
)

// Config file and environment naming
const (
	ConfigName = "png-sorter"
	ConfigType = "yaml"
	EnvPrefix  = "PNGSORTER"
	DotEnvFile = ".env"
)

// Config keys
const (
	KeyLang           = "lang"
	KeyLogLevel       = "log_level"
	KeyLicenseBaseURL = "license.base_url"
	KeyLicenseTimeout = "license.timeout"
	KeyLicenseKey     = "license.key"
	KeyAppVersion     = "app.version"
	KeyOutTransparent = "output.transparent"
	KeyOutOpaque      = "output.opaque"
)

// DefaultAppVersion is reported to the license server
const DefaultAppVersion = "1.0"

// Config is the resolved command line configuration
type Config struct {
	Lang     string        `mapstructure:"lang"`
	LogLevel string        `mapstructure:"log_level"`
	License  LicenseConfig `mapstructure:"license"`
	App      AppConfig     `mapstructure:"app"`
	Output   OutputConfig  `mapstructure:"output"`
}

// LicenseConfig configures the license client
type LicenseConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Key     string        `mapstructure:"key"`
}

// AppConfig holds application identity values
type AppConfig struct {
	Version string `mapstructure:"version"`
}

// OutputConfig holds the output directories
type OutputConfig struct {
	Transparent string `mapstructure:"transparent"`
	Opaque      string `mapstructure:"opaque"`
}

// flagKeys maps command line flag names onto config keys
var flagKeys = map[string]string{
	"lang":        KeyLang,
	"log-level":   KeyLogLevel,
	"base-url":    KeyLicenseBaseURL,
	"key":         KeyLicenseKey,
	"app-version": KeyAppVersion,
	"transparent": KeyOutTransparent,
	"opaque":      KeyOutOpaque,
}

// Defaults returns the built-in configuration values
func Defaults() map[string]any {
	return map[string]any{
		KeyLang:           i18n.LangSystem,
		KeyLogLevel:       "info",
		KeyLicenseBaseURL: license.DefaultBaseURL,
		KeyLicenseTimeout: license.DefaultTimeout,
		KeyLicenseKey:     "",
		KeyAppVersion:     DefaultAppVersion,
		KeyOutTransparent: model.DefaultTransparentDir,
		KeyOutOpaque:      model.DefaultOpaqueDir,
	}
}

// Load resolves configuration with increasing precedence: defaults, the
// config file, .env, PNGSORTER_* environment variables, then flags that were
// set on the command line. configFile, when given, must exist.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	// .env is optional and never overrides variables already set
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, ConfigName))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

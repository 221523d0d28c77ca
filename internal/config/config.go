// Package config loads the postpipe settings from viper.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
)

// ErrInvalidConfig reports a setting outside of its allowed values.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes the environment variables overriding settings.
const EnvPrefix = "POSTPIPE"

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig holds the result loading settings.
type LoadConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// DrawerConfig holds the pipeline drawing settings.
type DrawerConfig struct {
	// Output is the DOT file written when the pipeline is closed. Empty disables drawing.
	Output string `mapstructure:"output"`
}

// WatchConfig holds the file watching settings.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration.
// Values are populated from .postpipe.yaml, POSTPIPE_* env vars, and CLI flags.
type Config struct {
	Mode   string       `mapstructure:"mode"`
	Log    LogConfig    `mapstructure:"log"`
	Load   LoadConfig   `mapstructure:"load"`
	Drawer DrawerConfig `mapstructure:"drawer"`
	Watch  WatchConfig  `mapstructure:"watch"`
}

// SetDefaults registers the built-in defaults and the environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mode", model.Serial.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("load.concurrency", 1)
	v.SetDefault("drawer.output", "")
	v.SetDefault("watch.debounce", 100*time.Millisecond)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v, applying built-in defaults for any values
// not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to decode configuration")
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	_, err := model.ParseMode(c.Mode)
	if err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log format %q", c.Log.Format)
	}

	if c.Load.Concurrency < 1 {
		return errors.Wrapf(ErrInvalidConfig, "load concurrency %d", c.Load.Concurrency)
	}

	if c.Watch.Debounce <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "watch debounce %s", c.Watch.Debounce)
	}

	return nil
}

// PipelineMode returns the configured mode. The configuration must be valid.
func (c Config) PipelineMode() model.Mode {
	mode, _ := model.ParseMode(c.Mode)

	return mode
}

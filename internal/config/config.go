package config

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/propman/internal/errors"
	"github.com/thoreinstein/propman/internal/paths"
)

// EnvPrefix prefixes every environment variable read by Viper.
const EnvPrefix = "PROPMAN"

// Keys understood in the configuration file.
const (
	KeyVersion   = "version"
	KeyAll       = "all"
	KeyMove      = "move"
	KeyRemove    = "remove"
	KeyColor     = "color"
	KeyStyle     = "style"
	KeyLogFormat = "log_format"
)

// Default values.
const (
	DefaultVersion   = 1
	DefaultColor     = "auto"
	DefaultStyle     = "monokai"
	DefaultLogFormat = "text"
)

// Config is the decoded configuration.
type Config struct {
	Version   int      `mapstructure:"version" yaml:"version" toml:"version" json:"version"`
	All       bool     `mapstructure:"all" yaml:"all" toml:"all" json:"all"`
	Move      []string `mapstructure:"move" yaml:"move" toml:"move" json:"move"`
	Remove    []string `mapstructure:"remove" yaml:"remove" toml:"remove" json:"remove"`
	Color     string   `mapstructure:"color" yaml:"color" toml:"color" json:"color"`
	Style     string   `mapstructure:"style" yaml:"style" toml:"style" json:"style"`
	LogFormat string   `mapstructure:"log_format" yaml:"log_format" toml:"log_format" json:"log_format"`
}

// Keys lists every configuration key in file order.
func Keys() []string {
	return []string{KeyVersion, KeyAll, KeyMove, KeyRemove, KeyColor, KeyStyle, KeyLogFormat}
}

// Init resets the global Viper instance and registers search paths,
// environment binding and defaults. Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, DefaultVersion)
	viper.SetDefault(KeyAll, false)
	viper.SetDefault(KeyMove, []string{})
	viper.SetDefault(KeyRemove, []string{})
	viper.SetDefault(KeyColor, DefaultColor)
	viper.SetDefault(KeyStyle, DefaultStyle)
	viper.SetDefault(KeyLogFormat, DefaultLogFormat)
}

// Load reads and validates the configuration. An explicit path must exist;
// with an empty path a missing file just means defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(filepath.Clean(path))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		switch {
		case missing && path == "":
		case missing:
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.WithHint(err, "check "+Used()), "validating config")
	}
	return &cfg, nil
}

// Used returns the file Viper loaded, or the default location when none was
// found.
func Used() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	return paths.ConfigFile()
}

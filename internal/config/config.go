// Package config loads the ambient settings that sit outside the fixed
// one-positional-argument CLI contract: the readline history path/size
// and the diagnostic log level.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds settings not covered by the required DB filename
// argument or the storage engine's own on-disk format.
type Config struct {
	History struct {
		Path string `mapstructure:"path"`
		Max  int    `mapstructure:"max"`
	} `mapstructure:"history"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Default returns a Config populated with the built-in defaults used
// when no --config flag is given.
func Default(historyPath string) Config {
	var c Config
	c.History.Path = historyPath
	c.History.Max = 2000
	c.Log.Level = "warn"
	return c
}

// Load reads a YAML file at path into a Config seeded with defaults, so
// a config file only needs to name the fields it wants to override.
func Load(path string, defaults Config) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("history.path", defaults.History.Path)
	v.SetDefault("history.max", defaults.History.Max)
	v.SetDefault("log.level", defaults.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %q: %w", path, err)
	}

	return cfg, nil
}

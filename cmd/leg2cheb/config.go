package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "LEG2CHEB"

// Config is the configuration of the command, resolved from the flags, the
// environment and the optional configuration file, in this order of priority.
type Config struct {
	Format    string `mapstructure:"format"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`

	In     string `mapstructure:"in"`
	Out    string `mapstructure:"out"`
	Digest bool   `mapstructure:"digest"`

	Size int    `mapstructure:"size"`
	Seed uint64 `mapstructure:"seed"`

	Function string `mapstructure:"function"`
	Degree   int    `mapstructure:"degree"`
	Basis    string `mapstructure:"basis"`
}

// loadConfig resolves the Config of a command from its parsed flags.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("viper.BindPFlags: %w", err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	return cfg, nil
}

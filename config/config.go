// Package config loads run settings from an optional file and KALAH_*
// environment variables.
package config

import (
	"fmt"
	"kalah/game"
	"kalah/meta"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "KALAH"

type Config struct {
	SearchDepth int    `mapstructure:"SEARCH_DEPTH"`
	EvalMethod  string `mapstructure:"EVAL_METHOD"`
	PreferWin   bool   `mapstructure:"PREFER_WIN"`
	DataDir     string `mapstructure:"DATA_DIR"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	ListenAddr  string `mapstructure:"LISTEN_ADDR"`
	Games       int    `mapstructure:"GAMES"`
	MaxTurns    int    `mapstructure:"MAX_TURNS"`
	ResultsDir  string `mapstructure:"RESULTS_DIR"`
}

var defaults = map[string]any{
	"SEARCH_DEPTH": meta.SEARCH_DEPTH,
	"EVAL_METHOD":  game.ByDifference.String(),
	"PREFER_WIN":   true,
	"DATA_DIR":     "",
	"LOG_LEVEL":    "info",
	"LISTEN_ADDR":  ":8080",
	"GAMES":        meta.GAMES,
	"MAX_TURNS":    meta.MAX_TURNS,
	"RESULTS_DIR":  "results",
}

// Setup reads cfgPath when given, then lets environment variables override
// file values and defaults.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SearchDepth < 1 {
		return fmt.Errorf("search depth must be positive, got %d", c.SearchDepth)
	}
	if _, err := game.ParseEvalMethod(c.EvalMethod); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	return nil
}

// Method is the parsed evaluation method. Setup has already validated it.
func (c *Config) Method() game.EvalMethod {
	method, _ := game.ParseEvalMethod(c.EvalMethod)
	return method
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

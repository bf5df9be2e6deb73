// Package config loads service settings from a config file and
// SUDOKU_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string   `mapstructure:"addr"`
	LogLevel    string   `mapstructure:"log_level"`
	CORSOrigins []string `mapstructure:"cors_origins"`

	DBDriver string `mapstructure:"db_driver"` // sqlite | postgres
	DBDSN    string `mapstructure:"db_dsn"`

	JWTSecret       string `mapstructure:"jwt_secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`

	SeedAPIURL string `mapstructure:"seed_api_url"`
	SeedTarget int    `mapstructure:"seed_target"` // boards per difficulty
}

// TokenTTL returns the access-token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Load reads configuration. cfgFile may be empty, in which case only
// defaults and environment variables apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sudoku")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("SUDOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "sudoku.db")
	v.SetDefault("jwt_secret", "default-secret-key")
	v.SetDefault("token_ttl_minutes", 30)
	v.SetDefault("seed_api_url", "https://sudoku-api.vercel.app/api/dosuku")
	v.SetDefault("seed_target", 50)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported db_driver %q", cfg.DBDriver)
	}
	return &cfg, nil
}

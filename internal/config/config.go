// Package config loads server settings from flags, the environment, and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings for serving equations.
type Config struct {
	// Addr is the listen address.
	Addr string `mapstructure:"addr"`
	// DatabaseURL is a PostgreSQL connection string. If empty, equations are
	// kept in memory.
	DatabaseURL string `mapstructure:"database-url"`
	// RateLimit is the number of requests per second to allow. Zero means no
	// limit.
	RateLimit float64 `mapstructure:"rate-limit"`
	// RateBurst is the number of requests allowed at once when limiting.
	RateBurst int `mapstructure:"rate-burst"`
	// Mode is the gin mode: debug, release, or test.
	Mode string `mapstructure:"mode"`
}

// Default is the configuration used when nothing else is given.
var Default = Config{
	Addr:      ":8080",
	RateLimit: 0,
	RateBurst: 1,
	Mode:      "release",
}

// EnvPrefix prefixes the environment variables that override settings. Dashes
// in setting names become underscores, so the database URL is read from
// EQUATIONS_DATABASE_URL.
const EnvPrefix = "EQUATIONS"

// Flags adds a flag for each setting to fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("addr", Default.Addr, "listen address")
	fs.String("database-url", Default.DatabaseURL, "PostgreSQL connection string (default in-memory storage)")
	fs.Float64("rate-limit", Default.RateLimit, "requests per second to allow, 0 for unlimited")
	fs.Int("rate-burst", Default.RateBurst, "requests allowed at once when rate limiting")
	fs.String("mode", Default.Mode, "gin mode (debug, release, test)")
}

// Load reads the configuration. Later sources override earlier ones: defaults,
// the config file, environment variables, then flags in fs that were set
// explicitly. If file is empty, equations.yaml (or any extension viper
// supports) is searched for in the working directory and then $HOME, and it
// is not an error for none to exist. fs may be nil.
func Load(fs *pflag.FlagSet, file string) (Config, error) {
	v := viper.New()
	v.SetDefault("addr", Default.Addr)
	v.SetDefault("database-url", Default.DatabaseURL)
	v.SetDefault("rate-limit", Default.RateLimit)
	v.SetDefault("rate-burst", Default.RateBurst)
	v.SetDefault("mode", Default.Mode)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("equations")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("couldn't read config: %w", err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("couldn't bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is empty")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit (%g) must not be negative", c.RateLimit)
	}
	if c.RateBurst < 0 {
		return fmt.Errorf("rate burst (%d) must not be negative", c.RateBurst)
	}
	if c.RateLimit > 0 && c.RateBurst == 0 {
		return errors.New("rate burst must be positive when rate limiting")
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

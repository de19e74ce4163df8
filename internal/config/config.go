// Package config loads lottoctl settings from an optional YAML file and
// LOTTO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"lottogen/internal/logging"
	"lottogen/internal/lotto"
	"lottogen/internal/storage"
)

// Config represents the application configuration
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Store     StoreConfig     `mapstructure:"store"`
	Display   DisplayConfig   `mapstructure:"display"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type GeneratorConfig struct {
	NumberCount  int  `mapstructure:"number_count"`
	MaxNumber    int  `mapstructure:"max_number"`
	BonusNumber  int  `mapstructure:"bonus_number"`
	SmartFilters bool `mapstructure:"smart_filters"`
}

type StoreConfig struct {
	Kind       string      `mapstructure:"kind"`
	SQLitePath string      `mapstructure:"sqlite_path"`
	Redis      RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	KeyPrefix   string        `mapstructure:"key_prefix"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

type DisplayConfig struct {
	Locale   string `mapstructure:"locale"`
	Timezone string `mapstructure:"timezone"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// New returns a viper instance with defaults and the environment bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("generator.number_count", lotto.DefaultNumberCount)
	v.SetDefault("generator.max_number", lotto.DefaultMaxNumber)
	v.SetDefault("generator.bonus_number", lotto.DefaultBonusNumber)
	v.SetDefault("generator.smart_filters", true)
	v.SetDefault("store.kind", storage.DefaultStoreKind())
	v.SetDefault("store.sqlite_path", "lotto.db")
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.key_prefix", "lottogen:")
	v.SetDefault("store.redis.dial_timeout", 5*time.Second)
	v.SetDefault("display.locale", lotto.DefaultLocale)
	v.SetDefault("display.timezone", "Local")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.development", false)

	v.SetEnvPrefix("LOTTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile when given, otherwise looks for an optional
// lotto.yaml in the working directory, and unmarshals the result.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("lotto")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// LottoConfig converts the generator section for lotto.WithConfig.
func (c Config) LottoConfig() lotto.Config {
	return lotto.Config{
		NumberCount:  c.Generator.NumberCount,
		MaxNumber:    c.Generator.MaxNumber,
		BonusNumber:  c.Generator.BonusNumber,
		SmartFilters: c.Generator.SmartFilters,
	}
}

func (c Config) StoreOptions() storage.Options {
	return storage.Options{
		Kind:       c.Store.Kind,
		SQLitePath: c.Store.SQLitePath,
		Redis: storage.RedisOptions{
			Addr:        c.Store.Redis.Addr,
			Password:    c.Store.Redis.Password,
			DB:          c.Store.Redis.DB,
			KeyPrefix:   c.Store.Redis.KeyPrefix,
			DialTimeout: c.Store.Redis.DialTimeout,
		},
	}
}

func (c Config) LoggingConfig() logging.Config {
	return logging.Config{
		Level:       c.Logging.Level,
		Development: c.Logging.Development,
	}
}

// Location resolves the display timezone. "Local" and "" mean time.Local.
func (c DisplayConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

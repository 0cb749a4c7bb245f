package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. POLICYDESK_LISTEN_ADDR
// or POLICYDESK_AUTH_JWT_SECRET.
const EnvPrefix = "POLICYDESK"

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env         string        `mapstructure:"env"`
	ListenAddr  string        `mapstructure:"listen_addr"`
	DatabaseURL string        `mapstructure:"database_url"`
	Store       string        `mapstructure:"store"`
	Auth        AuthConfig    `mapstructure:"auth"`
	Workers     WorkersConfig `mapstructure:"workers"`
	Quotes      QuotesConfig  `mapstructure:"quotes"`
	Log         LogConfig     `mapstructure:"log"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type WorkersConfig struct {
	// PaymentNotices is the number of notice workers; zero disables them.
	PaymentNotices int           `mapstructure:"payment_notices"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
}

type QuotesConfig struct {
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("store", StorePostgres)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("workers.payment_notices", 1)
	v.SetDefault("workers.poll_interval", 500*time.Millisecond)
	v.SetDefault("quotes.rate_per_second", 5.0)
	v.SetDefault("quotes.burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// flagKeys maps command-line flags onto the config keys they override.
var flagKeys = map[string]string{
	"store":  "store",
	"listen": "listen_addr",
}

// Load reads defaults, then the optional config file at path, then the
// environment, then any flags in fs that were set. It fails only on values
// nothing could run with.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("database_url is required for the postgres store"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("store must be %q or %q, got %q", StorePostgres, StoreMemory, c.Store))
	}
	if c.Workers.PaymentNotices < 0 {
		errs = append(errs, errors.New("workers.payment_notices must not be negative"))
	}
	if c.Workers.PaymentNotices > 0 && c.Workers.PollInterval <= 0 {
		errs = append(errs, errors.New("workers.poll_interval must be positive"))
	}
	if c.Quotes.RatePerSecond < 0 || c.Quotes.Burst < 0 {
		errs = append(errs, errors.New("quotes rate limit must not be negative"))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// RequireSecret is checked by commands that verify tokens.
func (c Config) RequireSecret() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	return nil
}

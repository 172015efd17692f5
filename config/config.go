package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	API      APIConfig      `mapstructure:"api"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Orders   OrdersConfig   `mapstructure:"orders"`
	Hooks    HooksConfig    `mapstructure:"hooks"`
	Events   EventsConfig   `mapstructure:"events"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
	Debug  bool   `mapstructure:"debug"`  // verbose sync and webhook detail
}

// EffectiveLevel returns "debug" when the debug flag is on, otherwise Level.
func (l LogConfig) EffectiveLevel() string {
	if l.Debug {
		return "debug"
	}
	return l.Level
}

// WebhookConfig controls the inbound Karla webhook receiver.
type WebhookConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Secret     string        `mapstructure:"secret"`
	Tolerance  time.Duration `mapstructure:"tolerance"`
	RateLimit  int64         `mapstructure:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window"`
}

// APIConfig holds Karla API credentials.
type APIConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	ShopSlug string        `mapstructure:"shop_slug"`
	Username string        `mapstructure:"username"`
	Key      string        `mapstructure:"key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type CatalogConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	BatchSize int           `mapstructure:"batch_size"`
	Cooldown  time.Duration `mapstructure:"cooldown"`
	QueueKey  string        `mapstructure:"queue_key"`
}

type OrdersConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// HooksConfig holds the bearer-token settings for shop-side hooks.
type HooksConfig struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	Expiry time.Duration `mapstructure:"expiry"`
}

type EventsConfig struct {
	Stream string `mapstructure:"stream"`
	MaxLen int64  `mapstructure:"max_len"`
}

// Validate reports required values that are missing.
func (c *Config) Validate() error {
	var missing []string
	if c.Webhook.Enabled && c.Webhook.Secret == "" {
		missing = append(missing, "webhook.secret")
	}
	if c.Hooks.Secret == "" {
		missing = append(missing, "hooks.secret")
	}
	if c.Catalog.BatchSize <= 0 {
		missing = append(missing, "catalog.batch_size")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: KARLA_.
// Nested keys use underscore: KARLA_WEBHOOK_SECRET, KARLA_API_BASE_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "shop")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("webhook.enabled", true)
	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.tolerance", "300s")
	v.SetDefault("webhook.rate_limit", 600)
	v.SetDefault("webhook.rate_window", "1m")
	v.SetDefault("api.base_url", "https://api.gokarla.io")
	v.SetDefault("api.shop_slug", "")
	v.SetDefault("api.username", "")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("catalog.enabled", false)
	v.SetDefault("catalog.batch_size", 50)
	v.SetDefault("catalog.cooldown", "5m")
	v.SetDefault("catalog.queue_key", "karla:catalog_sync")
	v.SetDefault("orders.enabled", true)
	v.SetDefault("hooks.secret", "")
	v.SetDefault("hooks.issuer", "karla-connector")
	v.SetDefault("hooks.expiry", "8760h")
	v.SetDefault("events.stream", "karla:events")
	v.SetDefault("events.max_len", 10000)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// KARLA_API_BASE_URL -> api.base_url
	v.SetEnvPrefix("KARLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

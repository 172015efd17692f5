package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "shop", cfg.Database.DBName)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.True(t, cfg.Webhook.Enabled)
	assert.Equal(t, 300*time.Second, cfg.Webhook.Tolerance)
	assert.Equal(t, int64(600), cfg.Webhook.RateLimit)
	assert.Equal(t, time.Minute, cfg.Webhook.RateWindow)

	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Catalog.Enabled)
	assert.Equal(t, 50, cfg.Catalog.BatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.Cooldown)
	assert.Equal(t, "karla:catalog_sync", cfg.Catalog.QueueKey)
	assert.True(t, cfg.Orders.Enabled)

	assert.Equal(t, "karla-connector", cfg.Hooks.Issuer)
	assert.Equal(t, "karla:events", cfg.Events.Stream)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.False(t, cfg.Log.Debug)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  port: 9090
  mode: "release"
webhook:
  enabled: false
  secret: "whsec_test"
  tolerance: "120s"
api:
  base_url: "https://api.example.com"
  shop_slug: "my-shop"
  username: "shop-user"
  key: "api-key"
  timeout: "3s"
catalog:
  enabled: true
  batch_size: 100
  cooldown: "10m"
orders:
  enabled: false
hooks:
  secret: "hook-secret"
log:
  level: "warn"
  debug: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.False(t, cfg.Webhook.Enabled)
	assert.Equal(t, "whsec_test", cfg.Webhook.Secret)
	assert.Equal(t, 120*time.Second, cfg.Webhook.Tolerance)

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "my-shop", cfg.API.ShopSlug)
	assert.Equal(t, "shop-user", cfg.API.Username)
	assert.Equal(t, "api-key", cfg.API.Key)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)

	assert.True(t, cfg.Catalog.Enabled)
	assert.Equal(t, 100, cfg.Catalog.BatchSize)
	assert.Equal(t, 10*time.Minute, cfg.Catalog.Cooldown)
	assert.False(t, cfg.Orders.Enabled)
	assert.Equal(t, "hook-secret", cfg.Hooks.Secret)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "debug", cfg.Log.EffectiveLevel())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KARLA_SERVER_PORT", "3000")
	t.Setenv("KARLA_WEBHOOK_SECRET", "env-secret")
	t.Setenv("KARLA_API_SHOP_SLUG", "env-shop")
	t.Setenv("KARLA_CATALOG_BATCH_SIZE", "25")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Webhook.Secret)
	assert.Equal(t, "env-shop", cfg.API.ShopSlug)
	assert.Equal(t, 25, cfg.Catalog.BatchSize)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing webhook secret", func(c *Config) { c.Webhook.Secret = "" }, "webhook.secret"},
		{"webhook disabled without secret", func(c *Config) {
			c.Webhook.Enabled = false
			c.Webhook.Secret = ""
		}, ""},
		{"missing hook secret", func(c *Config) { c.Hooks.Secret = "" }, "hooks.secret"},
		{"zero batch size", func(c *Config) { c.Catalog.BatchSize = 0 }, "catalog.batch_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Webhook: WebhookConfig{Enabled: true, Secret: "s"},
				Hooks:   HooksConfig{Secret: "h"},
				Catalog: CatalogConfig{BatchSize: 50},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "shop",
		Password: "pw",
		DBName:   "catalog",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://shop:pw@localhost:5432/catalog?sslmode=disable", dbCfg.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "redis.local:6380", RedisConfig{Host: "redis.local", Port: 6380}.Addr())
}

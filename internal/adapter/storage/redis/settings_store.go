package redis

import (
	"context"
	"fmt"
	"strconv"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	SettingsKey = "karla:settings"

	fieldWebhookEnabled = "webhook_enabled"
	fieldCatalogEnabled = "catalog_enabled"
	fieldOrdersEnabled  = "orders_enabled"
)

var _ ports.SettingsStore = (*SettingsStore)(nil)

// SettingsStore overrides the configured enable flags with a redis hash.
// Missing or unparsable fields fall back to the defaults.
type SettingsStore struct {
	client   *goredis.Client
	key      string
	defaults domain.Settings
}

func NewSettingsStore(client *goredis.Client, defaults domain.Settings) *SettingsStore {
	return &SettingsStore{client: client, key: SettingsKey, defaults: defaults}
}

func (s *SettingsStore) Get(ctx context.Context) (domain.Settings, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("redis get settings: %w", err)
	}

	settings := s.defaults
	settings.WebhookEnabled = boolField(fields, fieldWebhookEnabled, settings.WebhookEnabled)
	settings.CatalogEnabled = boolField(fields, fieldCatalogEnabled, settings.CatalogEnabled)
	settings.OrdersEnabled = boolField(fields, fieldOrdersEnabled, settings.OrdersEnabled)
	return settings, nil
}

// Update writes the set fields of patch and returns the effective settings.
func (s *SettingsStore) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	values := map[string]interface{}{}
	if patch.WebhookEnabled != nil {
		values[fieldWebhookEnabled] = strconv.FormatBool(*patch.WebhookEnabled)
	}
	if patch.CatalogEnabled != nil {
		values[fieldCatalogEnabled] = strconv.FormatBool(*patch.CatalogEnabled)
	}
	if patch.OrdersEnabled != nil {
		values[fieldOrdersEnabled] = strconv.FormatBool(*patch.OrdersEnabled)
	}

	if len(values) > 0 {
		if err := s.client.HSet(ctx, s.key, values).Err(); err != nil {
			return domain.Settings{}, fmt.Errorf("redis update settings: %w", err)
		}
	}
	return s.Get(ctx)
}

func boolField(fields map[string]string, name string, fallback bool) bool {
	raw, ok := fields[name]
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

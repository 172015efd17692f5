package redis

import (
	"context"

	"karla-connector/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

var _ ports.HealthChecker = (*HealthCheck)(nil)

// HealthCheck reports whether redis answers.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

func (h *HealthCheck) Name() string {
	return "redis"
}

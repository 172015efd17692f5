package postgres

import (
	"context"

	"karla-connector/internal/core/ports"
)

var _ ports.HealthChecker = (*HealthCheck)(nil)

// HealthCheck reports whether the shop database answers.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}

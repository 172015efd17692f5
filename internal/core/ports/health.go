package ports

import "context"

// HealthChecker reports the reachability of one backing store.
type HealthChecker interface {
	// Ping returns nil when the dependency answers.
	Ping(ctx context.Context) error
	// Name is the label shown in /health ("postgresql", "redis").
	Name() string
}

package ports

import (
	"context"

	"karla-connector/internal/core/domain"
)

// CatalogRepository is the read-only product source of the shop.
type CatalogRepository interface {
	// ListActiveTopLevel returns active items without a parent, ordered by id,
	// together with the total number of such items.
	ListActiveTopLevel(ctx context.Context, offset, limit int) ([]domain.CatalogItem, int, error)
	// ListActiveVariantsByParentIDs returns every active variant of the given parents.
	ListActiveVariantsByParentIDs(ctx context.Context, parentIDs []string) ([]domain.CatalogItem, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.CatalogItem, error)
	// GetByID returns nil, nil when the item does not exist.
	GetByID(ctx context.Context, id string) (*domain.CatalogItem, error)
}

// WebhookLogRepository persists accepted webhooks.
type WebhookLogRepository interface {
	Create(ctx context.Context, log *domain.WebhookLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.WebhookLog, error)
}

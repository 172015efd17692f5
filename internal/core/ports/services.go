package ports

import (
	"context"
	"time"

	"karla-connector/internal/core/domain"
)

// SignatureService signs and verifies Karla-Signature headers.
type SignatureService interface {
	Sign(secret string, timestamp int64, payload []byte) string
	BuildHeader(secret string, timestamp int64, payload []byte) string
	Verify(header string, payload []byte, secret string, now time.Time, tolerance time.Duration) (*domain.ParsedSignature, error)
}

// TokenService issues and validates bearer tokens for shop-side hooks.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// EventDispatcher hands accepted webhook events to platform consumers.
type EventDispatcher interface {
	Dispatch(ctx context.Context, evt domain.DispatchedEvent) error
}

// CatalogSink is the Karla catalog API.
type CatalogSink interface {
	BulkUpsert(ctx context.Context, payloads []domain.VariantPayload) error
	UpsertVariant(ctx context.Context, productID, variantID string, payload domain.VariantPayload) error
	DeleteProduct(ctx context.Context, productID string) error
}

// OrderSink is the Karla order API.
type OrderSink interface {
	PlaceOrder(ctx context.Context, payload domain.OrderPayload) error
}

// BatchQueue accepts sync batches for asynchronous processing.
type BatchQueue interface {
	Enqueue(ctx context.Context, batch domain.SyncBatch) error
}

// BatchConsumer is the worker side of the batch queue.
type BatchConsumer interface {
	// Dequeue blocks up to timeout and returns nil, nil when nothing arrived.
	Dequeue(ctx context.Context, timeout time.Duration) (*domain.QueuedBatch, error)
	Ack(ctx context.Context, msg *domain.QueuedBatch) error
	// Recover moves entries left in flight by a crashed worker back to pending.
	Recover(ctx context.Context) (int, error)
}

// SyncStatusStore persists the state of the full catalog sync.
type SyncStatusStore interface {
	// Get returns "" when no sync ran yet.
	Get(ctx context.Context) (domain.SyncStatus, error)
	Set(ctx context.Context, status domain.SyncStatus) error
}

// CooldownStore gates full syncs.
type CooldownStore interface {
	// Acquire returns true when no cooldown was active and starts a new one.
	Acquire(ctx context.Context, ttl time.Duration) (bool, error)
}

// SettingsStore reads and updates the runtime enable flags.
type SettingsStore interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
}

// Metrics records connector counters.
type Metrics interface {
	WebhookReceived(group domain.EventGroup, outcome string)
	BatchProcessed(outcome string, items int)
	SinkCall(operation string, elapsed time.Duration, err error)
}

// --- Service Ports (Business Logic) ---

// WebhookService verifies, classifies and dispatches inbound webhooks.
type WebhookService interface {
	Handle(ctx context.Context, signatureHeader string, payload []byte) (*domain.WebhookEvent, error)
}

// CatalogSyncService mirrors the shop catalog to Karla.
type CatalogSyncService interface {
	SyncBatch(ctx context.Context, batch domain.SyncBatch) (bool, error)
	HandleBatch(ctx context.Context, batch domain.SyncBatch) error
	StartFullSync(ctx context.Context) error
	Status(ctx context.Context) (domain.SyncStatus, error)
	SyncProduct(ctx context.Context, id string)
	UpsertProduct(ctx context.Context, item *domain.CatalogItem, parent *domain.CatalogItem)
	DeleteProduct(ctx context.Context, id string)
}

// OrderService pushes placed orders to Karla.
type OrderService interface {
	PlaceOrder(ctx context.Context, order *domain.Order)
}

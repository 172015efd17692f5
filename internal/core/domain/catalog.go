package domain

import (
	"fmt"
	"time"
)

// UnknownProductTitle is the last resort in the display-name fallback chain.
const UnknownProductTitle = "Unknown Product"

// DefaultBatchSize is the page size of a full catalog sync.
const DefaultBatchSize = 50

type Locale struct {
	Code string `json:"code"`
}

type Language struct {
	Locale *Locale `json:"locale,omitempty"`
}

// Translation is one localized name of a catalog item.
type Translation struct {
	Language *Language `json:"language,omitempty"`
	Name     string    `json:"name"`
}

// CatalogItem is a standalone product, a grouping parent or a variant.
type CatalogItem struct {
	ID            string        `json:"id"`
	ParentID      *string       `json:"parent_id,omitempty"`
	ChildCount    int           `json:"child_count"`
	Active        bool          `json:"active"`
	Name          string        `json:"name"`
	SKU           string        `json:"sku"`
	Price         *float64      `json:"price,omitempty"`
	CoverImageURL *string       `json:"cover_image_url,omitempty"`
	Translations  []Translation `json:"translations,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsGroupingParent reports whether the item only groups variants and is
// never synced itself.
func (i *CatalogItem) IsGroupingParent() bool {
	return i.ParentID == nil && i.ChildCount > 0
}

// IsVariant reports whether the item has a parent.
func (i *CatalogItem) IsVariant() bool {
	return i.ParentID != nil
}

// DisplayName falls back from name to SKU to UnknownProductTitle.
func (i *CatalogItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.SKU != "" {
		return i.SKU
	}
	return UnknownProductTitle
}

// ProductID is the Karla product identity: the parent id for variants.
func (i *CatalogItem) ProductID() string {
	if i.ParentID != nil {
		return *i.ParentID
	}
	return i.ID
}

// SyncBatch is one page of the full catalog walk.
type SyncBatch struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Validate checks offset >= 0 and limit > 0.
func (b SyncBatch) Validate() error {
	if b.Offset < 0 {
		return fmt.Errorf("sync batch offset must be >= 0, got %d", b.Offset)
	}
	if b.Limit <= 0 {
		return fmt.Errorf("sync batch limit must be > 0, got %d", b.Limit)
	}
	return nil
}

// Next returns the following page.
func (b SyncBatch) Next() SyncBatch {
	return SyncBatch{Offset: b.Offset + b.Limit, Limit: b.Limit}
}

// HasMore reports whether pages remain after this one.
func (b SyncBatch) HasMore(total int) bool {
	return b.Offset+b.Limit < total
}

// SyncStatus is the persisted state of a full catalog sync.
type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

// IsTerminal returns true for completed and failed.
func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusCompleted || s == SyncStatusFailed
}

// TranslationPayload is one localized title sent to Karla.
type TranslationPayload struct {
	Title string `json:"title"`
}

// VariantPayload is the Karla catalog representation of one syncable item.
// VariantTitle and Price serialize as null when unset; ImageURL and
// Translations are omitted.
type VariantPayload struct {
	ProductID    string                        `json:"product_id,omitempty"`
	VariantID    string                        `json:"variant_id,omitempty"`
	Title        string                        `json:"title"`
	VariantTitle *string                       `json:"variant_title"`
	Price        *float64                      `json:"price"`
	ImageURL     *string                       `json:"image_url,omitempty"`
	Translations map[string]TranslationPayload `json:"translations,omitempty"`
}

// WithoutIdentity returns a copy for the single-variant PUT, where the ids
// travel in the URL.
func (p VariantPayload) WithoutIdentity() VariantPayload {
	p.ProductID = ""
	p.VariantID = ""
	return p
}

// Settings are the runtime enable flags.
type Settings struct {
	WebhookEnabled bool `json:"webhook_enabled"`
	CatalogEnabled bool `json:"catalog_enabled"`
	OrdersEnabled  bool `json:"orders_enabled"`
}

// SettingsPatch flips individual flags; nil fields are left unchanged.
type SettingsPatch struct {
	WebhookEnabled *bool `json:"webhook_enabled,omitempty"`
	CatalogEnabled *bool `json:"catalog_enabled,omitempty"`
	OrdersEnabled  *bool `json:"orders_enabled,omitempty"`
}

// QueuedBatch is a SyncBatch taken off the batch queue.
type QueuedBatch struct {
	ID         string    `json:"id"`
	Batch      SyncBatch `json:"batch"`
	EnqueuedAt time.Time `json:"enqueued_at"`

	// Receipt identifies the in-flight entry for Ack.
	Receipt string `json:"-"`
}

package service

import (
	"context"
	"fmt"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"
	"karla-connector/pkg/apperror"
	"karla-connector/pkg/logger"

	"github.com/rs/zerolog"
)

// Sink operation labels used for metrics and logs.
const (
	opBulkUpsert    = "bulk_upsert"
	opUpsertVariant = "upsert_variant"
	opDeleteProduct = "delete_product"
	opPlaceOrder    = "place_order"
)

// CatalogSyncConfig tunes the full sync.
type CatalogSyncConfig struct {
	BatchSize int
	Cooldown  time.Duration
	Debug     bool
}

// CatalogSyncDeps holds the collaborators of CatalogSyncService.
type CatalogSyncDeps struct {
	Repo     ports.CatalogRepository
	Sink     ports.CatalogSink
	Queue    ports.BatchQueue
	Status   ports.SyncStatusStore
	Cooldown ports.CooldownStore
	Settings ports.SettingsStore
	Metrics  ports.Metrics
	Logger   zerolog.Logger
}

// CatalogSyncService implements ports.CatalogSyncService.
type CatalogSyncService struct {
	repo     ports.CatalogRepository
	sink     ports.CatalogSink
	queue    ports.BatchQueue
	status   ports.SyncStatusStore
	cooldown ports.CooldownStore
	settings ports.SettingsStore
	metrics  ports.Metrics
	cfg      CatalogSyncConfig
	log      zerolog.Logger
}

// NewCatalogSyncService creates the catalog sync engine.
func NewCatalogSyncService(deps CatalogSyncDeps, cfg CatalogSyncConfig) *CatalogSyncService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = domain.DefaultBatchSize
	}
	return &CatalogSyncService{
		repo:     deps.Repo,
		sink:     deps.Sink,
		queue:    deps.Queue,
		status:   deps.Status,
		cooldown: deps.Cooldown,
		settings: deps.Settings,
		metrics:  deps.Metrics,
		cfg:      cfg,
		log:      logger.Component(deps.Logger, "catalog_sync"),
	}
}

// SyncBatch pushes one page of the catalog to Karla and reports whether
// pages remain. Errors from the catalog source are returned; errors from the
// sink are logged and swallowed.
func (s *CatalogSyncService) SyncBatch(ctx context.Context, batch domain.SyncBatch) (bool, error) {
	if err := batch.Validate(); err != nil {
		return false, err
	}

	items, total, err := s.repo.ListActiveTopLevel(ctx, batch.Offset, batch.Limit)
	if err != nil {
		return false, fmt.Errorf("listing catalog page at offset %d: %w", batch.Offset, err)
	}
	if len(items) == 0 {
		s.log.Info().Int("offset", batch.Offset).Int("total", total).Msg("no catalog items at offset, sync walk ends")
		return false, nil
	}

	var syncSet []domain.CatalogItem
	var groupingIDs []string
	for _, item := range items {
		if item.IsGroupingParent() {
			groupingIDs = append(groupingIDs, item.ID)
			continue
		}
		syncSet = append(syncSet, item)
	}

	parents := map[string]*domain.CatalogItem{}
	if len(groupingIDs) > 0 {
		variants, err := s.repo.ListActiveVariantsByParentIDs(ctx, groupingIDs)
		if err != nil {
			return false, fmt.Errorf("listing variants of %d grouping parents: %w", len(groupingIDs), err)
		}
		if len(variants) > 0 {
			parents, err = s.loadParents(ctx, variants)
			if err != nil {
				return false, err
			}
			syncSet = append(syncSet, variants...)
		}
	}

	hasMore := batch.HasMore(total)

	if len(syncSet) == 0 {
		s.log.Debug().
			Int("offset", batch.Offset).
			Int("grouping_parents", len(groupingIDs)).
			Msg("page holds nothing to sync, skipping bulk upsert")
		s.metrics.BatchProcessed("empty", 0)
		return hasMore, nil
	}

	payloads := BuildVariantPayloads(syncSet, parents)

	start := time.Now()
	err = s.sink.BulkUpsert(ctx, payloads)
	s.metrics.SinkCall(opBulkUpsert, time.Since(start), err)
	if err != nil {
		s.log.Error().Err(err).
			Int("offset", batch.Offset).
			Int("limit", batch.Limit).
			Int("items", len(payloads)).
			Msg("bulk upsert failed, continuing with next page")
		s.metrics.BatchProcessed("sink_failed", len(payloads))
		return hasMore, nil
	}

	s.metrics.BatchProcessed("synced", len(payloads))
	if s.cfg.Debug {
		s.log.Debug().
			Int("offset", batch.Offset).
			Int("limit", batch.Limit).
			Int("total", total).
			Int("items", len(payloads)).
			Bool("has_more", hasMore).
			Msg("catalog page synced")
	}
	return hasMore, nil
}

// loadParents fetches the parent records of variants keyed by id.
func (s *CatalogSyncService) loadParents(ctx context.Context, variants []domain.CatalogItem) (map[string]*domain.CatalogItem, error) {
	seen := make(map[string]struct{}, len(variants))
	var ids []string
	for _, v := range variants {
		if v.ParentID == nil {
			continue
		}
		if _, ok := seen[*v.ParentID]; ok {
			continue
		}
		seen[*v.ParentID] = struct{}{}
		ids = append(ids, *v.ParentID)
	}

	found, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading %d variant parents: %w", len(ids), err)
	}

	parents := make(map[string]*domain.CatalogItem, len(found))
	for i := range found {
		parents[found[i].ID] = &found[i]
	}
	return parents, nil
}

// HandleBatch runs one queued batch and enqueues the next page while pages
// remain. Any returned error has already marked the sync failed.
func (s *CatalogSyncService) HandleBatch(ctx context.Context, batch domain.SyncBatch) error {
	enabled, err := s.batchEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		s.log.Info().Int("offset", batch.Offset).Msg("catalog sync disabled, dropping batch")
		s.setStatus(ctx, domain.SyncStatusFailed)
		return nil
	}

	hasMore, err := s.SyncBatch(ctx, batch)
	if err != nil {
		s.log.Error().Err(err).Int("offset", batch.Offset).Msg("catalog batch failed, sync halted")
		s.metrics.BatchProcessed("failed", 0)
		s.setStatus(ctx, domain.SyncStatusFailed)
		return err
	}

	if !hasMore {
		s.log.Info().Int("offset", batch.Offset).Msg("catalog sync completed")
		s.setStatus(ctx, domain.SyncStatusCompleted)
		return nil
	}

	enabled, err = s.batchEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		s.log.Info().Int("next_offset", batch.Next().Offset).Msg("catalog sync disabled, not continuing")
		s.setStatus(ctx, domain.SyncStatusFailed)
		return nil
	}

	if err := s.queue.Enqueue(ctx, batch.Next()); err != nil {
		s.log.Error().Err(err).Int("next_offset", batch.Next().Offset).Msg("failed to enqueue next catalog batch")
		s.setStatus(ctx, domain.SyncStatusFailed)
		return fmt.Errorf("enqueueing batch at offset %d: %w", batch.Next().Offset, err)
	}
	return nil
}

// StartFullSync begins a new walk from offset 0 unless a walk is still
// running or the cooldown is active.
func (s *CatalogSyncService) StartFullSync(ctx context.Context) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return apperror.InternalError(err)
	}
	if !settings.CatalogEnabled {
		return apperror.ErrSyncDisabled()
	}

	// One walk at a time: batches of a single walk arrive in offset order.
	current, err := s.status.Get(ctx)
	if err != nil {
		return apperror.InternalError(err)
	}
	if current == domain.SyncStatusRunning {
		return apperror.ErrSyncCooldown()
	}

	acquired, err := s.cooldown.Acquire(ctx, s.cfg.Cooldown)
	if err != nil {
		return apperror.InternalError(err)
	}
	if !acquired {
		return apperror.ErrSyncCooldown()
	}

	if err := s.status.Set(ctx, domain.SyncStatusRunning); err != nil {
		return apperror.InternalError(err)
	}

	first := domain.SyncBatch{Offset: 0, Limit: s.cfg.BatchSize}
	if err := s.queue.Enqueue(ctx, first); err != nil {
		s.setStatus(ctx, domain.SyncStatusFailed)
		return apperror.InternalError(err)
	}

	s.log.Info().Int("batch_size", first.Limit).Msg("full catalog sync started")
	return nil
}

// Status returns the state of the last full sync.
func (s *CatalogSyncService) Status(ctx context.Context) (domain.SyncStatus, error) {
	status, err := s.status.Get(ctx)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	return status, nil
}

// SyncProduct pushes a single written product. Grouping parents fan out to
// their active variants. Failures are only logged.
func (s *CatalogSyncService) SyncProduct(ctx context.Context, id string) {
	if !s.catalogEnabled(ctx) {
		return
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", id).Msg("failed to load product for sync")
		return
	}
	if item == nil {
		s.log.Warn().Str("product_id", id).Msg("product not found, skipping sync")
		return
	}
	if !item.Active {
		s.log.Debug().Str("product_id", id).Msg("product inactive, skipping sync")
		return
	}

	switch {
	case item.IsGroupingParent():
		variants, err := s.repo.ListActiveVariantsByParentIDs(ctx, []string{item.ID})
		if err != nil {
			s.log.Error().Err(err).Str("product_id", id).Msg("failed to load variants for sync")
			return
		}
		for i := range variants {
			s.upsert(ctx, &variants[i], item)
		}
	case item.IsVariant():
		parent, err := s.repo.GetByID(ctx, *item.ParentID)
		if err != nil {
			s.log.Warn().Err(err).Str("product_id", id).Msg("failed to load parent, syncing variant alone")
			parent = nil
		}
		s.upsert(ctx, item, parent)
	default:
		s.upsert(ctx, item, nil)
	}
}

// UpsertProduct pushes one variant payload. It never fails observably.
func (s *CatalogSyncService) UpsertProduct(ctx context.Context, item *domain.CatalogItem, parent *domain.CatalogItem) {
	if item == nil || !s.catalogEnabled(ctx) {
		return
	}
	s.upsert(ctx, item, parent)
}

func (s *CatalogSyncService) upsert(ctx context.Context, item *domain.CatalogItem, parent *domain.CatalogItem) {
	if item.IsGroupingParent() {
		s.log.Debug().Str("product_id", item.ID).Msg("grouping parent is not synced directly")
		return
	}

	payload := BuildVariantPayload(item, parent)

	start := time.Now()
	err := s.sink.UpsertVariant(ctx, payload.ProductID, payload.VariantID, payload.WithoutIdentity())
	s.metrics.SinkCall(opUpsertVariant, time.Since(start), err)
	if err != nil {
		s.log.Error().Err(err).
			Str("product_id", payload.ProductID).
			Str("variant_id", payload.VariantID).
			Msg("variant upsert failed")
		return
	}
	s.log.Debug().Str("product_id", payload.ProductID).Str("variant_id", payload.VariantID).Msg("variant upserted")
}

// DeleteProduct removes a product and all its variants. It never fails observably.
func (s *CatalogSyncService) DeleteProduct(ctx context.Context, id string) {
	if id == "" || !s.catalogEnabled(ctx) {
		return
	}

	start := time.Now()
	err := s.sink.DeleteProduct(ctx, id)
	s.metrics.SinkCall(opDeleteProduct, time.Since(start), err)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", id).Msg("product delete failed")
		return
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
}

// batchEnabled reads the enable flag inside the batch loop, where a
// settings failure halts the walk like any other error.
func (s *CatalogSyncService) batchEnabled(ctx context.Context) (bool, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read settings, sync halted")
		s.setStatus(ctx, domain.SyncStatusFailed)
		return false, fmt.Errorf("reading settings: %w", err)
	}
	return settings.CatalogEnabled, nil
}

func (s *CatalogSyncService) catalogEnabled(ctx context.Context) bool {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read settings, treating catalog sync as disabled")
		return false
	}
	return settings.CatalogEnabled
}

func (s *CatalogSyncService) setStatus(ctx context.Context, status domain.SyncStatus) {
	if err := s.status.Set(ctx, status); err != nil {
		s.log.Error().Err(err).Str("status", string(status)).Msg("failed to persist sync status")
	}
}

package service

import (
	"context"
	"errors"
	"time"

	"karla-connector/internal/core/ports"
	"karla-connector/pkg/logger"

	"github.com/rs/zerolog"
)

const (
	defaultDequeueTimeout = time.Second
	dequeueErrorBackoff   = time.Second
)

// BatchWorker consumes queued sync batches one at a time.
type BatchWorker struct {
	consumer ports.BatchConsumer
	sync     ports.CatalogSyncService
	timeout  time.Duration
	backoff  time.Duration
	log      zerolog.Logger
}

// NewBatchWorker creates a worker for the catalog batch queue.
func NewBatchWorker(consumer ports.BatchConsumer, sync ports.CatalogSyncService, log zerolog.Logger) *BatchWorker {
	return &BatchWorker{
		consumer: consumer,
		sync:     sync,
		timeout:  defaultDequeueTimeout,
		backoff:  dequeueErrorBackoff,
		log:      logger.Component(log, "batch_worker"),
	}
}

// Run recovers batches left in flight and then processes the queue until ctx
// is cancelled.
func (w *BatchWorker) Run(ctx context.Context) {
	if n, err := w.consumer.Recover(ctx); err != nil {
		w.log.Error().Err(err).Msg("failed to recover in-flight batches")
	} else if n > 0 {
		w.log.Warn().Int("count", n).Msg("requeued in-flight batches")
	}

	w.log.Info().Msg("batch worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("batch worker stopping")
			return
		default:
		}

		if !w.processNext(ctx) {
			select {
			case <-ctx.Done():
			case <-time.After(w.backoff):
			}
		}
	}
}

// processNext handles at most one batch. It returns false when dequeueing
// failed and the caller should back off.
func (w *BatchWorker) processNext(ctx context.Context) bool {
	msg, err := w.consumer.Dequeue(ctx, w.timeout)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return true
		}
		w.log.Error().Err(err).Msg("failed to dequeue batch")
		return false
	}
	if msg == nil {
		return true
	}

	log := w.log.With().Str("batch_id", msg.ID).Int("offset", msg.Batch.Offset).Int("limit", msg.Batch.Limit).Logger()

	// A failed batch has already marked the sync failed; it is acked so
	// redelivery does not resume a halted walk.
	if err := w.sync.HandleBatch(ctx, msg.Batch); err != nil {
		log.Error().Err(err).Msg("batch handler failed")
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		log.Error().Err(err).Msg("failed to ack batch")
	}
	return true
}

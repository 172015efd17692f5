package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var (
	_ ports.BatchQueue    = (*BatchQueue)(nil)
	_ ports.BatchConsumer = (*BatchQueue)(nil)
)

// BatchQueue is an at-least-once list queue. Dequeued entries sit in a
// processing list until acked.
type BatchQueue struct {
	client        *goredis.Client
	pendingKey    string
	processingKey string
	now           func() time.Time
}

// NewBatchQueue creates the queue under key; key+":processing" holds
// in-flight entries.
func NewBatchQueue(client *goredis.Client, key string) *BatchQueue {
	return &BatchQueue{
		client:        client,
		pendingKey:    key,
		processingKey: key + ":processing",
		now:           time.Now,
	}
}

func (q *BatchQueue) Enqueue(ctx context.Context, batch domain.SyncBatch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	msg := domain.QueuedBatch{
		ID:         uuid.New().String(),
		Batch:      batch,
		EnqueuedAt: q.now().UTC(),
	}
	data, err := go_json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	if err := q.client.LPush(ctx, q.pendingKey, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue batch: %w", err)
	}
	return nil
}

// Dequeue moves the oldest pending entry to the processing list. It returns
// nil, nil when nothing arrived within timeout.
func (q *BatchQueue) Dequeue(ctx context.Context, timeout time.Duration) (*domain.QueuedBatch, error) {
	raw, err := q.client.BLMove(ctx, q.pendingKey, q.processingKey, "RIGHT", "LEFT", timeout).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue batch: %w", err)
	}

	var msg domain.QueuedBatch
	if err := go_json.Unmarshal([]byte(raw), &msg); err != nil {
		// poison entry, drop it so it is not recovered forever
		q.client.LRem(ctx, q.processingKey, 1, raw)
		return nil, fmt.Errorf("failed to unmarshal batch: %w", err)
	}
	msg.Receipt = raw
	return &msg, nil
}

func (q *BatchQueue) Ack(ctx context.Context, msg *domain.QueuedBatch) error {
	if msg == nil || msg.Receipt == "" {
		return nil
	}
	if err := q.client.LRem(ctx, q.processingKey, 1, msg.Receipt).Err(); err != nil {
		return fmt.Errorf("failed to ack batch %s: %w", msg.ID, err)
	}
	return nil
}

// Recover moves every in-flight entry back to pending. Only call it while no
// worker is running.
func (q *BatchQueue) Recover(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := q.client.RPopLPush(ctx, q.processingKey, q.pendingKey).Err()
		if errors.Is(err, goredis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, fmt.Errorf("failed to recover batches: %w", err)
		}
		moved++
	}
}

// Len reports pending and in-flight entries.
func (q *BatchQueue) Len(ctx context.Context) (pending int64, processing int64, err error) {
	pipe := q.client.Pipeline()
	p := pipe.LLen(ctx, q.pendingKey)
	r := pipe.LLen(ctx, q.processingKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to read queue length: %w", err)
	}
	return p.Val(), r.Val(), nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBatchWorker_ProcessNext(t *testing.T) {
	msg := &domain.QueuedBatch{ID: "m1", Batch: domain.SyncBatch{Offset: 50, Limit: 50}, Receipt: "raw"}

	t.Run("handles and acks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		consumer := mocks.NewMockBatchConsumer(ctrl)
		sync := mocks.NewMockCatalogSyncService(ctrl)

		gomock.InOrder(
			consumer.EXPECT().Dequeue(gomock.Any(), time.Second).Return(msg, nil),
			sync.EXPECT().HandleBatch(gomock.Any(), msg.Batch).Return(nil),
			consumer.EXPECT().Ack(gomock.Any(), msg).Return(nil),
		)

		w := NewBatchWorker(consumer, sync, zerolog.Nop())
		assert.True(t, w.processNext(context.Background()))
	})

	t.Run("failed batch is still acked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		consumer := mocks.NewMockBatchConsumer(ctrl)
		sync := mocks.NewMockCatalogSyncService(ctrl)

		consumer.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(msg, nil)
		sync.EXPECT().HandleBatch(gomock.Any(), msg.Batch).Return(errors.New("db down"))
		consumer.EXPECT().Ack(gomock.Any(), msg).Return(nil)

		w := NewBatchWorker(consumer, sync, zerolog.Nop())
		assert.True(t, w.processNext(context.Background()))
	})

	t.Run("empty queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		consumer := mocks.NewMockBatchConsumer(ctrl)

		consumer.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := NewBatchWorker(consumer, mocks.NewMockCatalogSyncService(ctrl), zerolog.Nop())
		assert.True(t, w.processNext(context.Background()))
	})

	t.Run("dequeue error backs off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		consumer := mocks.NewMockBatchConsumer(ctrl)

		consumer.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn refused"))

		w := NewBatchWorker(consumer, mocks.NewMockCatalogSyncService(ctrl), zerolog.Nop())
		assert.False(t, w.processNext(context.Background()))
	})
}

func TestBatchWorker_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	consumer := mocks.NewMockBatchConsumer(ctrl)
	sync := mocks.NewMockCatalogSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	consumer.EXPECT().Recover(gomock.Any()).Return(2, nil)
	consumer.EXPECT().Dequeue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Duration) (*domain.QueuedBatch, error) {
			cancel()
			return nil, nil
		}).MinTimes(1)

	done := make(chan struct{})
	go func() {
		NewBatchWorker(consumer, sync, zerolog.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

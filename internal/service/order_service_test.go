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

func sampleOrder() *domain.Order {
	return &domain.Order{
		ExternalID:    "ord-1",
		OrderNumber:   "10001",
		PlacedAt:      time.Date(2026, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600)),
		Currency:      "EUR",
		CustomerEmail: "jane@example.com",
		LineItems: []domain.OrderLineItem{
			{SKU: "MUG-1", Title: "Mug", Quantity: 2, Price: 9.5},
		},
		Totals: domain.OrderTotals{Subtotal: 19, Shipping: 4.9, Tax: 3.61, Total: 23.9},
	}
}

func TestPlaceOrder_SendsPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockOrderSink(ctrl)
	settings := mocks.NewMockSettingsStore(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(domain.Settings{OrdersEnabled: true}, nil)
	sink.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.OrderPayload) error {
			assert.Equal(t, "ord-1", p.ExternalID)
			assert.Equal(t, "2026-03-01T11:30:00Z", p.PlacedAt)
			assert.Len(t, p.LineItems, 1)
			assert.NotNil(t, p.Discounts)
			return nil
		})
	metrics.EXPECT().SinkCall("place_order", gomock.Any(), nil)

	svc := NewOrderService(sink, settings, metrics, zerolog.Nop())
	svc.PlaceOrder(context.Background(), sampleOrder())
}

func TestPlaceOrder_NeverFails(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sink *mocks.MockOrderSink, settings *mocks.MockSettingsStore, metrics *mocks.MockMetrics)
	}{
		{"disabled", func(_ *mocks.MockOrderSink, settings *mocks.MockSettingsStore, _ *mocks.MockMetrics) {
			settings.EXPECT().Get(gomock.Any()).Return(domain.Settings{OrdersEnabled: false}, nil)
		}},
		{"settings error", func(_ *mocks.MockOrderSink, settings *mocks.MockSettingsStore, _ *mocks.MockMetrics) {
			settings.EXPECT().Get(gomock.Any()).Return(domain.Settings{}, errors.New("redis down"))
		}},
		{"sink error", func(sink *mocks.MockOrderSink, settings *mocks.MockSettingsStore, metrics *mocks.MockMetrics) {
			settings.EXPECT().Get(gomock.Any()).Return(domain.Settings{OrdersEnabled: true}, nil)
			sink.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(errors.New("502"))
			metrics.EXPECT().SinkCall("place_order", gomock.Any(), gomock.Not(nil))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sink := mocks.NewMockOrderSink(ctrl)
			settings := mocks.NewMockSettingsStore(ctrl)
			metrics := mocks.NewMockMetrics(ctrl)
			tt.setup(sink, settings, metrics)

			svc := NewOrderService(sink, settings, metrics, zerolog.Nop())
			assert.NotPanics(t, func() {
				svc.PlaceOrder(context.Background(), sampleOrder())
			})
		})
	}

	t.Run("nil order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewOrderService(mocks.NewMockOrderSink(ctrl), mocks.NewMockSettingsStore(ctrl), mocks.NewMockMetrics(ctrl), zerolog.Nop())
		svc.PlaceOrder(context.Background(), nil)
	})
}

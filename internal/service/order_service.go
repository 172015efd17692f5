package service

import (
	"context"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"
	"karla-connector/pkg/logger"

	"github.com/rs/zerolog"
)

// orderService implements ports.OrderService.
type orderService struct {
	sink     ports.OrderSink
	settings ports.SettingsStore
	metrics  ports.Metrics
	log      zerolog.Logger
}

// NewOrderService creates the order placement sink.
func NewOrderService(sink ports.OrderSink, settings ports.SettingsStore, metrics ports.Metrics, log zerolog.Logger) ports.OrderService {
	return &orderService{
		sink:     sink,
		settings: settings,
		metrics:  metrics,
		log:      logger.Component(log, "orders"),
	}
}

// PlaceOrder forwards a placed order to Karla. It is called from the shop's
// write path and never fails observably.
func (s *orderService) PlaceOrder(ctx context.Context, order *domain.Order) {
	if order == nil {
		return
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("external_id", order.ExternalID).Msg("failed to read settings, order not sent")
		return
	}
	if !settings.OrdersEnabled {
		s.log.Debug().Str("external_id", order.ExternalID).Msg("order sync disabled")
		return
	}

	start := time.Now()
	err = s.sink.PlaceOrder(ctx, order.ToPayload())
	s.metrics.SinkCall(opPlaceOrder, time.Since(start), err)
	if err != nil {
		s.log.Error().Err(err).
			Str("external_id", order.ExternalID).
			Str("order_number", order.OrderNumber).
			Msg("order placement failed")
		return
	}

	s.log.Info().
		Str("external_id", order.ExternalID).
		Int("line_items", len(order.LineItems)).
		Msg("order sent to karla")
}

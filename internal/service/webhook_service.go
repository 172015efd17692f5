package service

import (
	"context"
	"errors"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"
	"karla-connector/pkg/apperror"
	"karla-connector/pkg/logger"

	"github.com/rs/zerolog"
)

// WebhookConfig carries the static receiver settings.
type WebhookConfig struct {
	Secret    string
	Tolerance time.Duration
}

// WebhookDeps holds the collaborators of the webhook receiver.
type WebhookDeps struct {
	Signatures ports.SignatureService
	Settings   ports.SettingsStore
	Dispatcher ports.EventDispatcher
	Logs       ports.WebhookLogRepository
	Metrics    ports.Metrics
	Logger     zerolog.Logger
}

// webhookService implements ports.WebhookService.
type webhookService struct {
	sig        ports.SignatureService
	settings   ports.SettingsStore
	dispatcher ports.EventDispatcher
	logs       ports.WebhookLogRepository
	metrics    ports.Metrics
	secret     string
	tolerance  time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewWebhookService creates the inbound webhook receiver.
func NewWebhookService(deps WebhookDeps, cfg WebhookConfig) ports.WebhookService {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}
	return &webhookService{
		sig:        deps.Signatures,
		settings:   deps.Settings,
		dispatcher: deps.Dispatcher,
		logs:       deps.Logs,
		metrics:    deps.Metrics,
		secret:     cfg.Secret,
		tolerance:  cfg.Tolerance,
		now:        time.Now,
		log:        logger.Component(deps.Logger, "webhook"),
	}
}

// Handle verifies the signature over the raw body, parses the event and
// dispatches it when the group is known. Unknown groups are acknowledged and
// ignored.
func (s *webhookService) Handle(ctx context.Context, signatureHeader string, payload []byte) (*domain.WebhookEvent, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read settings")
		return nil, apperror.InternalError(err)
	}
	if !settings.WebhookEnabled {
		s.reject("", apperror.ErrWebhookDisabled())
		return nil, apperror.ErrWebhookDisabled()
	}
	if s.secret == "" {
		s.log.Error().Msg("webhook secret is not configured")
		return nil, apperror.ErrConfigurationMissing("webhook.secret")
	}

	now := s.now()
	if _, err := s.sig.Verify(signatureHeader, payload, s.secret, now, s.tolerance); err != nil {
		s.reject("", err)
		return nil, err
	}

	evt, err := domain.ParseWebhookEvent(payload)
	if err != nil {
		s.reject("", err)
		return nil, err
	}

	outcome := domain.WebhookOutcomeAccepted
	if evt.EventGroup.IsKnown() {
		if err := s.dispatcher.Dispatch(ctx, domain.NewDispatchedEvent(evt)); err != nil {
			s.log.Error().Err(err).
				Str("event_group", string(evt.EventGroup)).
				Msg("failed to dispatch webhook event")
			s.metrics.WebhookReceived(evt.EventGroup, "dispatch_failed")
			return nil, apperror.InternalError(err)
		}
	} else {
		outcome = domain.WebhookOutcomeIgnored
		s.log.Info().Str("event_group", string(evt.EventGroup)).Msg("unknown event group, ignoring")
	}

	if err := s.logs.Create(ctx, domain.NewWebhookLog(evt, outcome, now)); err != nil {
		s.log.Error().Err(err).Str("event_group", string(evt.EventGroup)).Msg("failed to record webhook log")
	}
	s.metrics.WebhookReceived(evt.EventGroup, string(outcome))

	s.log.Info().
		Str("event_name", evt.EventName()).
		Str("outcome", string(outcome)).
		Int("payload_size", len(payload)).
		Msg("webhook accepted")
	return evt, nil
}

// reject logs the internal reason code. The caller only sees the generic
// message of the returned error.
func (s *webhookService) reject(group domain.EventGroup, err error) {
	code := apperror.CodeOf(err)
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		s.log.Warn().Err(appErr.Err).Str("reason", code).Msg("webhook rejected")
	} else {
		s.log.Warn().Str("reason", code).Msg("webhook rejected")
	}
	s.metrics.WebhookReceived(group, code)
}

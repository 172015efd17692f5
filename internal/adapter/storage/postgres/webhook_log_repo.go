package postgres

import (
	"context"
	"fmt"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"
)

var _ ports.WebhookLogRepository = (*WebhookLogRepo)(nil)

// WebhookLogRepo stores one row per accepted webhook in karla_webhook_logs.
type WebhookLogRepo struct {
	pool Pool
}

func NewWebhookLogRepo(pool Pool) *WebhookLogRepo {
	return &WebhookLogRepo{pool: pool}
}

func (r *WebhookLogRepo) Create(ctx context.Context, l *domain.WebhookLog) error {
	query := `INSERT INTO karla_webhook_logs (id, event_name, event_group, ref, source, outcome, payload_size, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.EventName, string(l.EventGroup), l.Ref, l.Source,
		string(l.Outcome), l.PayloadSize, l.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries first.
func (r *WebhookLogRepo) ListRecent(ctx context.Context, limit int) ([]domain.WebhookLog, error) {
	query := `SELECT id, event_name, event_group, ref, source, outcome, payload_size, received_at
		FROM karla_webhook_logs
		ORDER BY received_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list webhook logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.WebhookLog
	for rows.Next() {
		var l domain.WebhookLog
		var group, outcome string
		if err := rows.Scan(&l.ID, &l.EventName, &group, &l.Ref, &l.Source, &outcome, &l.PayloadSize, &l.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan webhook log: %w", err)
		}
		l.EventGroup = domain.EventGroup(group)
		l.Outcome = domain.WebhookOutcome(outcome)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"karla-connector/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookReceived(t *testing.T) {
	c := New()

	c.WebhookReceived(domain.ShipmentInTransit, "accepted")
	c.WebhookReceived(domain.ShipmentDelivered, "accepted")
	c.WebhookReceived(domain.ClaimCreated, "accepted")
	c.WebhookReceived(domain.EventGroup("shipment_teleported"), "ignored")
	c.WebhookReceived("", "SEC_002")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.webhooks.WithLabelValues("shipment", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.webhooks.WithLabelValues("claim", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.webhooks.WithLabelValues("unknown", "ignored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.webhooks.WithLabelValues("unknown", "SEC_002")))
}

func TestBatchProcessed(t *testing.T) {
	c := New()

	c.BatchProcessed("synced", 50)
	c.BatchProcessed("synced", 20)
	c.BatchProcessed("empty", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.batches.WithLabelValues("synced")))
	assert.Equal(t, 70.0, testutil.ToFloat64(c.batchItems.WithLabelValues("synced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.batches.WithLabelValues("empty")))
}

func TestSinkCall(t *testing.T) {
	c := New()

	c.SinkCall("bulk_upsert", 120*time.Millisecond, nil)
	c.SinkCall("bulk_upsert", time.Second, errors.New("timeout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.sinkCalls.WithLabelValues("bulk_upsert", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sinkCalls.WithLabelValues("bulk_upsert", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.sinkLatency))
}

func TestHandler(t *testing.T) {
	c := New()
	c.WebhookReceived(domain.ClaimCreated, "accepted")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `karla_webhooks_total{family="claim",outcome="accepted"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

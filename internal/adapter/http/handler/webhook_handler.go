package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"karla-connector/internal/core/ports"
	"karla-connector/pkg/apperror"
	"karla-connector/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderSignature carries the Karla webhook signature.
const HeaderSignature = "Karla-Signature"

// WebhookHandler receives Karla webhooks.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// Receive handles POST /webhooks/:id. The signature is checked over the raw
// body, so the body is read before any decoding.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return
		}
		response.Error(c, apperror.ErrInvalidPayload(err))
		return
	}

	if _, err := h.webhookSvc.Handle(c.Request.Context(), c.GetHeader(HeaderSignature), body); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

// WebhookLogHandler lists recently accepted webhooks.
type WebhookLogHandler struct {
	logs ports.WebhookLogRepository
}

// NewWebhookLogHandler creates a new WebhookLogHandler.
func NewWebhookLogHandler(logs ports.WebhookLogRepository) *WebhookLogHandler {
	return &WebhookLogHandler{logs: logs}
}

// ListRecent handles GET /api/v1/webhooks/logs?limit=N.
func (h *WebhookLogHandler) ListRecent(c *gin.Context) {
	limit := defaultLogLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = min(n, maxLogLimit)
	}

	entries, err := h.logs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, entries)
}

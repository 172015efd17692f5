package handler

import (
	"errors"
	"net/http"

	"karla-connector/internal/adapter/http/dto"
	"karla-connector/internal/core/ports"
	"karla-connector/pkg/apperror"
	"karla-connector/pkg/response"

	"github.com/gin-gonic/gin"
)

// HookHandler receives shop-side lifecycle hooks. Product and order hooks
// answer 202 once the request is accepted; Karla failures are only logged.
type HookHandler struct {
	catalogSvc ports.CatalogSyncService
	orderSvc   ports.OrderService
}

// NewHookHandler creates a new HookHandler.
func NewHookHandler(catalogSvc ports.CatalogSyncService, orderSvc ports.OrderService) *HookHandler {
	return &HookHandler{catalogSvc: catalogSvc, orderSvc: orderSvc}
}

// ProductWritten handles POST /hooks/products/:id.
func (h *HookHandler) ProductWritten(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	h.catalogSvc.SyncProduct(c.Request.Context(), id)
	response.Accepted(c, gin.H{"product_id": id})
}

// ProductDeleted handles DELETE /hooks/products/:id.
func (h *HookHandler) ProductDeleted(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	h.catalogSvc.DeleteProduct(c.Request.Context(), id)
	response.Accepted(c, gin.H{"product_id": id})
}

// OrderPlaced handles POST /hooks/orders.
func (h *HookHandler) OrderPlaced(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	h.orderSvc.PlaceOrder(c.Request.Context(), req.ToDomain())
	response.Accepted(c, gin.H{"external_id": req.ExternalID})
}

func productID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !dto.ValidEntityID(id) {
		response.Error(c, apperror.Validation("invalid product id"))
		return "", false
	}
	return id, true
}

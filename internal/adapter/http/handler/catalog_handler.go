package handler

import (
	"karla-connector/internal/adapter/http/dto"
	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"
	"karla-connector/pkg/apperror"
	"karla-connector/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the full catalog sync.
type CatalogHandler struct {
	catalogSvc ports.CatalogSyncService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogSvc ports.CatalogSyncService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// StartSync handles POST /api/v1/catalog/sync.
func (h *CatalogHandler) StartSync(c *gin.Context) {
	if err := h.catalogSvc.StartFullSync(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.SyncStatusResponse{Status: domain.SyncStatusRunning})
}

// GetStatus handles GET /api/v1/catalog/sync.
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	status, err := h.catalogSvc.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SyncStatusResponse{Status: status})
}

// SettingsHandler reads and flips the runtime enable flags.
type SettingsHandler struct {
	settings ports.SettingsStore
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings ports.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/v1/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, s)
}

// Update handles PUT /api/v1/settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	s, err := h.settings.Update(c.Request.Context(), req.ToPatch())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, s)
}

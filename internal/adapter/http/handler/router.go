package handler

import (
	"net/http"

	"karla-connector/internal/adapter/http/middleware"
	"karla-connector/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WebhookSvc     ports.WebhookService
	CatalogSvc     ports.CatalogSyncService
	OrderSvc       ports.OrderService
	Settings       ports.SettingsStore
	WebhookLogs    ports.WebhookLogRepository // nil = log listing not exposed
	TokenSvc       ports.TokenService
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	WebhookLimit   middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Metrics        http.Handler // nil = /metrics not exposed
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(MaxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	rl := func(c *gin.Context) { c.Next() }
	if deps.RateLimitStore != nil {
		rl = middleware.RateLimiter(deps.RateLimitStore, "webhooks", deps.WebhookLimit, deps.Logger)
	}

	// --- Karla webhooks (signature-authenticated) ---
	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	r.POST("/webhooks/:id", rl, webhookHandler.Receive)

	// --- Shop hooks (bearer token) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	hookHandler := NewHookHandler(deps.CatalogSvc, deps.OrderSvc)
	hooks := r.Group("/hooks", jwtAuth)
	{
		hooks.POST("/products/:id", hookHandler.ProductWritten)
		hooks.DELETE("/products/:id", hookHandler.ProductDeleted)
		hooks.POST("/orders", hookHandler.OrderPlaced)
	}

	v1 := r.Group("/api/v1", jwtAuth)
	catalogHandler := NewCatalogHandler(deps.CatalogSvc)
	{
		v1.POST("/catalog/sync", catalogHandler.StartSync)
		v1.GET("/catalog/sync", catalogHandler.GetStatus)
	}
	settingsHandler := NewSettingsHandler(deps.Settings)
	{
		v1.GET("/settings", settingsHandler.Get)
		v1.PUT("/settings", settingsHandler.Update)
	}
	if deps.WebhookLogs != nil {
		v1.GET("/webhooks/logs", NewWebhookLogHandler(deps.WebhookLogs).ListRecent)
	}

	return r
}

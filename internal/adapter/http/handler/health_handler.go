package handler

import (
	"net/http"

	"karla-connector/internal/adapter/http/dto"
	"karla-connector/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck pings every dependency and answers 503 when one is down.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HealthResponse{Status: "healthy", Dependencies: make(map[string]string, len(checkers))}
		httpCode := http.StatusOK

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				resp.Dependencies[checker.Name()] = "down"
				resp.Status = "degraded"
				httpCode = http.StatusServiceUnavailable
				continue
			}
			resp.Dependencies[checker.Name()] = "up"
		}

		c.JSON(httpCode, resp)
	}
}

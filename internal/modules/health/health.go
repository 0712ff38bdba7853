package health

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Karimk94/translator-core/internal/pkg/response"
)

// RegisterRoutes mounts the liveness endpoint. The relay has no dependencies
// to probe besides the backend, and probing the backend on every health poll
// would generate load, so this reports process state only.
func RegisterRoutes(rg *gin.RouterGroup, model string) {
	start := time.Now()
	rg.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status": "ok",
			"uptime": time.Since(start).Round(time.Second).String(),
			"model":  model,
		})
	})
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/izmirulasim/talep-takip-api/internal/service"
)

// Metrics returns middleware that captures request metrics using the
// provided service. The scrape and probe endpoints are not recorded.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		switch path {
		case "/metrics", "/health", "/ready":
			return
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

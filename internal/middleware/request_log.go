package middleware

import (
	"time"

	"restaurant-review-server/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger 为每个请求分配 ID 并在结束时记录耗时
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set("request_id", id)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status >= 500 {
			logger.Warningf("[%s] %s %s -> %d (%s)", id, c.Request.Method, c.Request.URL.Path, status, time.Since(start))
			return
		}
		logger.Debugf("[%s] %s %s -> %d (%s)", id, c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}

package middleware

import (
	"restaurant-review-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为静态资源添加 Cache-Control 头
// 缓存策略由 server.static_cache_control 配置决定
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := appService.Config().Server.StaticCacheControl; cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"restaurant-review-server/internal/locale"
	"restaurant-review-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const (
	MsgRequestTooLarge = "Request body too large."
	MsgPhotoTooLarge   = "Photo is too large."
)

// uploadFormAllowanceMB 照片之外的表单字段预留
const uploadFormAllowanceMB = 1

// BodyLimitMiddleware 限制请求体大小，skipPaths 中的路由交给 UploadBodyLimitMiddleware
func BodyLimitMiddleware(appService *service.AppService, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		maxBytes := int64(appService.Config().Server.MaxBodyMB) * 1024 * 1024
		if maxBytes <= 0 {
			maxBytes = 2 * 1024 * 1024
		}
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": locale.T(c, MsgRequestTooLarge)})
			return
		}

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制带照片表单的请求体大小
func UploadBodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := appService.Config().Upload.MaxPhotoMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB+uploadFormAllowanceMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": locale.T(c, MsgPhotoTooLarge)})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

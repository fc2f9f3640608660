package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders 添加安全相关的 HTTP 响应头
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 防止浏览器猜测内容类型
		c.Header("X-Content-Type-Options", "nosniff")

		// 防止点击劫持 (Clickjacking)
		c.Header("X-Frame-Options", "DENY")

		c.Header("Referrer-Policy", "same-origin")

		// Content Security Policy (CSP)
		// default-src 'self': 默认只允许加载同源资源
		// img-src: 同源图片、data: 以及 https 地图瓦片
		// style-src / script-src: 额外放行 unpkg 上的 Leaflet
		c.Header("Content-Security-Policy", "default-src 'self'; img-src 'self' data: https:; style-src 'self' 'unsafe-inline' https://unpkg.com; script-src 'self' https://unpkg.com; form-action 'self'; frame-ancestors 'none';")

		c.Next()
	}
}

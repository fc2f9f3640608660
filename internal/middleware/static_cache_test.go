package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-review-server/internal/config"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证静态资源按配置写入 Cache-Control，未配置时不写。
func TestStaticCacheMiddleware_SetsCacheControl(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		value string
		want  string
	}{
		{value: "public, max-age=60", want: "public, max-age=60"},
		{value: "", want: ""},
	} {
		svc := newTestService(func(cfg *config.Config) { cfg.Server.StaticCacheControl = tc.value })

		r := gin.New()
		r.Use(StaticCacheMiddleware(svc))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if got := w.Header().Get("Cache-Control"); got != tc.want {
			t.Fatalf("期望 Cache-Control 为 %q，实际为 %q", tc.want, got)
		}
	}
}

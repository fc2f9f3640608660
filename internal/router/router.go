package router

import (
	"net/http"

	"restaurant-review-server/internal/locale"
	"restaurant-review-server/internal/middleware"
	"restaurant-review-server/internal/modules"
	"restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/web"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// 照片已是 JPEG，不再压缩
var gzipExcludedPaths = []string{`^/panel/reviews/\d+/photo$`}

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs(gzipExcludedPaths)),
		// 带照片的表单由 UploadBodyLimitMiddleware 单独限制
		middleware.BodyLimitMiddleware(rt.service, addReviewPath),
		session.Middleware(rt.service.Config().Session),
		locale.Middleware(),
	)

	static := r.Group("/static", middleware.StaticCacheMiddleware(rt.service))
	static.StaticFS("/", web.Static())

	r.GET("/", func(c *gin.Context) {
		if session.StateOf(c, false) == session.StateAuthenticated {
			c.Redirect(http.StatusFound, "/panel")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})
	r.GET("/lang/:code", locale.SwitchHandler)

	// 认证限流：登录与注册共用同一个实例
	authLimiter := middleware.RateLimitMiddleware(rt.service)

	registerAuthRoutes(r, authLimiter, rt.modules.Auth.Handler)
	registerPanelRoutes(r, rt.modules, rt.service)
}

package router

import (
	authhandler "restaurant-review-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(r *gin.Engine, authLimiter gin.HandlerFunc, h *authhandler.Handler) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", authLimiter, h.Login)
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", authLimiter, h.Signup)
	r.POST("/logout", h.Logout)
}

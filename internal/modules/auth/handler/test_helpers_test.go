package handler

import (
	"testing"

	"restaurant-review-server/internal/modules/auth/repo"
	authservice "restaurant-review-server/internal/modules/auth/service"
	platformservice "restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupEngine(t *testing.T) (*gin.Engine, *authservice.Service) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	svc := authservice.New(platformservice.NewStaticAppService(testutils.TestConfig()), repo.NewUserRepository(gdb))
	h := New(svc)

	r := testutils.NewEngine(t)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", h.Signup)
	r.POST("/logout", h.Logout)
	r.GET("/panel", session.RequireLogin(), func(c *gin.Context) {
		sc, _ := session.From(c)
		c.String(200, "panel:%s", sc.Username)
	})
	return r, svc
}

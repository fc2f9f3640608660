// Package session 保存登录态的签名 Cookie 会话，以及每个请求显式构造的会话上下文。
package session

import (
	"encoding/gob"
	"net/http"

	"restaurant-review-server/internal/config"
	"restaurant-review-server/internal/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const loginUserKey = "LOGIN_USER"

// LoginUser 会话中保存的最小用户信息，不包含口令摘要
type LoginUser struct {
	ID       uint
	Username string
}

func init() {
	gob.Register(LoginUser{})
}

// Middleware 挂载基于 Cookie 的会话存储
func Middleware(cfg config.SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cfg.CookieName, store)
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	return SetLoginUserID(c, user.ID, user.Username)
}

func SetLoginUserID(c *gin.Context, id uint, username string) error {
	s := sessions.Default(c)
	s.Set(loginUserKey, LoginUser{ID: id, Username: username})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *LoginUser {
	s := sessions.Default(c)
	if obj := s.Get(loginUserKey); obj != nil {
		if user, ok := obj.(LoginUser); ok && user.ID != 0 {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// ClearSession 注销：清空会话并让浏览器删除 Cookie
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.Save()
}

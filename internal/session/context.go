package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextKey = "session_context"

// Context 单次请求的会话上下文，由 RequireLogin 构造后向下传递给各处理器
type Context struct {
	UserID   uint
	Username string
	Task     Task
}

// RequireLogin 未登录时跳转到登录页；登录时在 gin.Context 中放入 Context
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetLoginUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(contextKey, Context{
			UserID:   user.ID,
			Username: user.Username,
			Task:     ParseTask(c.Query("task")),
		})
		c.Next()
	}
}

// From 取出 RequireLogin 放入的会话上下文
func From(c *gin.Context) (Context, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Context{}, false
	}
	sc, ok := v.(Context)
	return sc, ok
}

// WithTask 返回切换到指定任务后的副本
func (sc Context) WithTask(task Task) Context {
	sc.Task = task
	return sc
}

// MarkTask 将当前请求的会话上下文标记为指定任务，需在 RequireLogin 之后使用
func MarkTask(task Task) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc, ok := From(c); ok {
			c.Set(contextKey, sc.WithTask(task))
		}
		c.Next()
	}
}
